package training

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) (*Running, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{Training: t}, nil
}

func (r *Running) TrainingType() string {
	return "Running"
}

func (r *Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.Weight / MInKm * r.Duration * MinInH
}
