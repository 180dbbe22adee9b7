package training

import (
	"fmt"
	"math"
)

const (
	swimmingLenStep                  = 1.38 // Stroke length in meters.
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

type Swimming struct {
	Training
	LengthPool float64 // Meters.
	CountPool  int
}

func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if !(lengthPool >= 0) || math.IsInf(lengthPool, 0) {
		return nil, fmt.Errorf("%w: length_pool must be a non-negative number of meters, got %v", ErrInvalidParameter, lengthPool)
	}
	return &Swimming{Training: t, LengthPool: lengthPool, CountPool: countPool}, nil
}

func (s *Swimming) TrainingType() string {
	return "Swimming"
}

func (s *Swimming) Distance() float64 {
	return float64(s.Action) * swimmingLenStep / MInKm
}

func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.Weight * s.Duration
}
