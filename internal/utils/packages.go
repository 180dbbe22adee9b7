package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ftracker/internal/models"
)

// DefaultPackages is used when no input is given.
func DefaultPackages() []models.WorkoutPackage {
	return []models.WorkoutPackage{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

func ParsePackagesFromTOML(path string) ([]models.WorkoutPackage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed models.PackagesTOML
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid TOML format: %w", err)
	}

	return parsed.Packages, nil
}

// ParsePackagesText reads one package per line: a workout code followed by
// its numeric parameters. Blank lines and lines starting with # are skipped.
func ParsePackagesText(r io.Reader) ([]models.WorkoutPackage, error) {
	var packages []models.WorkoutPackage

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		pkg := models.WorkoutPackage{Type: fields[0], Data: make([]float64, 0, len(fields)-1)}
		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number %q", lineNo, f)
			}
			pkg.Data = append(pkg.Data, v)
		}
		packages = append(packages, pkg)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
