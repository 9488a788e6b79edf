package utils

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDatabaseError         = errors.New("database error")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrItineraryNotFound     = errors.New("itinerary not found")
	ErrGenerationUnavailable = errors.New("text generation unavailable")
)
