package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ftracker/internal/models"
)

// ExportToTOML writes every stored workout to outputPath.
func (s *Storage) ExportToTOML(outputPath string) error {
	workouts, err := s.ListWorkouts("", 0)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer f.Close()

	if err := EncodeWorkouts(f, workouts); err != nil {
		return err
	}
	return f.Close()
}

func EncodeWorkouts(w io.Writer, workouts []models.Workout) error {
	dump := models.WorkoutDumpTOML{Workouts: workouts}
	if err := toml.NewEncoder(w).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}
