package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")

	// ErrParsing is returned when environment variables cannot be parsed
	// into the destination struct.
	ErrParsing = errors.New("config: failed to parse environment variables")
)
