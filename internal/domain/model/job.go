// Package model defines the core data types shared by the chroniker monitor command.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidJobID is returned when a job identifier is not a UUID.
var ErrInvalidJobID = errors.New("invalid job id")

// Job is the tracking record of a scheduled job run.
// The monitor command only writes MonitorRecords.
type Job struct {
	ID             string    `json:"id"                        db:"id"`
	Name           string    `json:"name"                      db:"name"`
	Command        string    `json:"command"                   db:"command"`
	MonitorRecords *int64    `json:"monitor_records,omitempty" db:"monitor_records"`
	CreatedAt      time.Time `json:"created_at"                db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"                db:"updated_at"`
}

// NormalizeJobID trims and validates a job identifier and returns its canonical form.
func NormalizeJobID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidJobID, trimmed, err)
	}
	return id.String(), nil
}

// NewJobID returns a fresh random job identifier.
func NewJobID() string {
	return uuid.NewString()
}
