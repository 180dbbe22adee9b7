package models

import "time"

// Workout is a stored training summary.
type Workout struct {
	ID          string    `json:"id" toml:"id"`
	WorkoutType string    `json:"workout_type" toml:"workout_type"`
	Duration    float64   `json:"duration" toml:"duration"`
	Distance    float64   `json:"distance" toml:"distance"`
	Speed       float64   `json:"speed" toml:"speed"`
	Calories    float64   `json:"calories" toml:"calories"`
	CreatedAt   time.Time `json:"created_at" toml:"created_at"`
}

// WorkoutPackage is one raw sensor package.
type WorkoutPackage struct {
	Type string    `toml:"type"`
	Data []float64 `toml:"data"`
}

//
// For TOML parsing only
//

type PackagesTOML struct {
	Packages []WorkoutPackage `toml:"package"`
}

type WorkoutDumpTOML struct {
	Workouts []Workout `toml:"workout"`
}
