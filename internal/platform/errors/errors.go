package apperrors

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrNoPlan               = errors.New("no training plan configured")
	ErrOnboardingIncomplete = errors.New("onboarding not completed")
	ErrMalformedBackup      = errors.New("malformed backup document")
)
