package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrJobNotFound is returned when no job row matches the given id.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobIDRequired is returned when a job operation is called without an id.
	ErrJobIDRequired = errors.New("job_id is required")
	// ErrTableRequired is returned when a count is requested without a table.
	ErrTableRequired = errors.New("table is required")
)
