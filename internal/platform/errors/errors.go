package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrInsufficientData   = errors.New("insufficient data")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStageIncomplete    = errors.New("stage incomplete")
	ErrNoActiveSession    = errors.New("no active session")
	ErrSpeechUnavailable  = errors.New("speech unavailable")
)
