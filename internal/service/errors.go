package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrDriverUnavailable  = errors.New("driver unavailable")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvalidInput       = errors.New("invalid input")
)
