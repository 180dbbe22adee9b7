package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ftracker/internal/models"
	"github.com/misterclayt0n/ftracker/internal/training"
)

// NewWorkout turns a summary into a history record with a fresh id.
func NewWorkout(msg training.InfoMessage, now time.Time) models.Workout {
	return models.Workout{
		ID:          uuid.New().String(),
		WorkoutType: msg.TrainingType,
		Duration:    msg.Duration,
		Distance:    msg.Distance,
		Speed:       msg.Speed,
		Calories:    msg.Calories,
		CreatedAt:   now.UTC(),
	}
}

func (s *Storage) SaveWorkout(msg training.InfoMessage) (string, error) {
	w := NewWorkout(msg, time.Now())
	if err := s.insertWorkout(w); err != nil {
		return "", err
	}
	return w.ID, nil
}

func (s *Storage) insertWorkout(w models.Workout) error {
	_, err := s.DB.Exec(
		`INSERT INTO workouts (id, workout_type, duration, distance, speed, calories, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		w.WorkoutType,
		w.Duration,
		w.Distance,
		w.Speed,
		w.Calories,
		w.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save workout: %w", err)
	}
	return nil
}

// ListWorkouts returns stored workouts, newest first. An empty filterType
// matches every type, and limit <= 0 means no limit.
func (s *Storage) ListWorkouts(filterType string, limit int) ([]models.Workout, error) {
	query, args := listQuery(filterType, limit)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		var createdAt string

		err := rows.Scan(
			&w.ID,
			&w.WorkoutType,
			&w.Duration,
			&w.Distance,
			&w.Speed,
			&w.Calories,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}

		w.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at for workout %s: %w", w.ID, err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}

	return workouts, nil
}

func listQuery(filterType string, limit int) (string, []any) {
	var sb strings.Builder
	var args []any

	sb.WriteString(`SELECT id, workout_type, duration, distance, speed, calories, created_at FROM workouts`)
	if filterType != "" {
		sb.WriteString(` WHERE lower(workout_type) = lower(?)`)
		args = append(args, filterType)
	}
	sb.WriteString(` ORDER BY created_at DESC`)
	if limit > 0 {
		sb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	return sb.String(), args
}
