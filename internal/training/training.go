package training

import "math"

const (
	LenStep = 0.65 // Step length in meters.
	MInKm   = 1000
	MinInH  = 60
)

// Trainer is implemented by every concrete workout type.
type Trainer interface {
	TrainingType() string
	Hours() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// Training holds the inputs shared by all workouts. It has no calorie
// formula of its own, so it is not a Trainer.
type Training struct {
	Action   int     // Steps or strokes.
	Duration float64 // Hours.
	Weight   float64 // Kilograms.
}

func newTraining(action int, duration, weight float64) (Training, error) {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return Training{}, ErrInvalidDuration
	}
	return Training{Action: action, Duration: duration, Weight: weight}, nil
}

func (t Training) Hours() float64 {
	return t.Duration
}

// Distance returns the distance in kilometers.
func (t Training) Distance() float64 {
	return float64(t.Action) * LenStep / MInKm
}

// MeanSpeed returns the average speed in km/h.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

// ShowTrainingInfo builds the summary for t. Nothing is cached.
func ShowTrainingInfo(t Trainer) InfoMessage {
	return InfoMessage{
		TrainingType: t.TrainingType(),
		Duration:     t.Hours(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
