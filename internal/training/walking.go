package training

import (
	"fmt"
	"math"
)

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 3.6
	cmInM                           = 100
)

// SportsWalking takes the walker's height in centimeters.
type SportsWalking struct {
	Training
	Height float64
}

func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if !(height > 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: height must be a positive number of centimeters, got %v", ErrInvalidParameter, height)
	}
	return &SportsWalking{Training: t, Height: height}, nil
}

func (w *SportsWalking) TrainingType() string {
	return "SportsWalking"
}

func (w *SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.Duration
}

// SpentCalories uses speed in m/s and height in meters.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed() / kmhInMsec
	height := w.Height / cmInM
	return (walkingCaloriesWeightMultiplier*w.Weight +
		(math.Pow(speed, 2)/height)*walkingSpeedHeightMultiplier*w.Weight) *
		w.Duration * MinInH
}
