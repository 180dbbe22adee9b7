package training

import "errors"

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrArityMismatch      = errors.New("wrong number of parameters")
	ErrInvalidDuration    = errors.New("duration must be greater than zero")
	ErrInvalidParameter   = errors.New("invalid parameter")
)
