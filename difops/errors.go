package difops

import "errors"

var (
	// ErrUnsupportedConfiguration is returned when no kernel exists for the
	// requested rank, locations and method
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")
	// ErrPreconditionViolation is returned when the inputs do not satisfy what the
	// selected kernel assumes: cell location, guard cells, shape or connectivity
	ErrPreconditionViolation = errors.New("precondition violation")
	// ErrInvalidConfigurationValue is returned when a configured method name is not recognised
	ErrInvalidConfigurationValue = errors.New("invalid configuration value")
)
