package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrJobNotFound is returned when no job matches (process_order, department).
	ErrJobNotFound = errors.New("job not found")
	// ErrProcessOrderRequired is returned when a targeted operation is missing its key.
	ErrProcessOrderRequired = errors.New("process_order is required")
	// ErrInvalidDepartment is returned when a department value is not recognized.
	ErrInvalidDepartment = errors.New("invalid department")
	// ErrMachineRequired is returned when a settings operation is missing the machine name.
	ErrMachineRequired = errors.New("machine is required")
)
