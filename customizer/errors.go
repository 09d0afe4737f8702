package customizer

import "errors"

var (
	ErrConfigurationNil     = errors.New("compiler configuration is nil")
	ErrCustomizerNil        = errors.New("customizer is nil")
	ErrInvalidConfiguration = errors.New("invalid compiler configuration option")
	ErrInvalidTimeout       = errors.New("timed interrupt must be positive")
)
