package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource conflict")
	ErrNoSleepData       = errors.New("no sleep snapshot recorded")
	ErrDuplicateRequest  = errors.New("duplicate client request")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDeviceUnavailable = errors.New("device channel unavailable")
)
