package training

import (
	"fmt"
	"math"
	"sort"
)

type builder struct {
	name   string
	params []string
	build  func(data []float64) (Trainer, error)
}

// Positional parameter layout per workout code. Integer positions are
// checked by toInt before binding.
var trainingTypes = map[string]builder{
	"SWM": {
		name:   "Swimming",
		params: []string{"action", "duration", "weight", "length_pool", "count_pool"},
		build: func(data []float64) (Trainer, error) {
			action, err := toInt(data[0], "action")
			if err != nil {
				return nil, err
			}
			count, err := toInt(data[4], "count_pool")
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, data[1], data[2], data[3], count)
		},
	},
	"RUN": {
		name:   "Running",
		params: []string{"action", "duration", "weight"},
		build: func(data []float64) (Trainer, error) {
			action, err := toInt(data[0], "action")
			if err != nil {
				return nil, err
			}
			return NewRunning(action, data[1], data[2])
		},
	},
	"WLK": {
		name:   "SportsWalking",
		params: []string{"action", "duration", "weight", "height"},
		build: func(data []float64) (Trainer, error) {
			action, err := toInt(data[0], "action")
			if err != nil {
				return nil, err
			}
			return NewSportsWalking(action, data[1], data[2], data[3])
		},
	},
}

// ReadPackage builds the workout for a sensor package.
func ReadPackage(workoutType string, data []float64) (Trainer, error) {
	b, ok := trainingTypes[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, workoutType)
	}

	if len(data) != len(b.params) {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrArityMismatch, workoutType, len(b.params), len(data))
	}

	t, err := b.build(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", workoutType, err)
	}
	return t, nil
}

// WorkoutTypes returns the known workout codes in sorted order.
func WorkoutTypes() []string {
	codes := make([]string, 0, len(trainingTypes))
	for code := range trainingTypes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Params returns the parameter names expected for a workout code.
func Params(workoutType string) ([]string, bool) {
	b, ok := trainingTypes[workoutType]
	if !ok {
		return nil, false
	}
	return append([]string(nil), b.params...), true
}

// TypeName returns the training type label produced for a workout code.
func TypeName(workoutType string) (string, bool) {
	b, ok := trainingTypes[workoutType]
	return b.name, ok
}

func toInt(v float64, name string) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidParameter, name, v)
	}
	return int(v), nil
}
