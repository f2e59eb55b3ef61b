package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrCountryRequired    = errors.New("country is required")
	ErrDatabaseError      = errors.New("database error")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidGoogleToken = errors.New("invalid google token")
	ErrUserNotFound       = errors.New("user not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrLLMFailure         = errors.New("language model request failed")
)
