package model

import (
	"errors"
	"fmt"
	"time"
)

// Limits on task fields.
const (
	MaxEmployeeLen = 60
	MaxTitleLen    = 140
	MinDuration    = 1
)

// DateLayout is the only textual date format accepted or displayed.
const DateLayout = "01/02/2006"

// ErrInvalid is wrapped by every error returned for a task that breaks
// a field constraint.
var ErrInvalid = errors.New("invalid task")

// Task is one logged unit of work.
type Task struct {
	ID        int64     `json:"id" yaml:"id"`
	Employee  string    `json:"employee" yaml:"employee"`
	Duration  int       `json:"duration" yaml:"duration"` // minutes
	Title     string    `json:"title" yaml:"title"`
	Notes     string    `json:"notes" yaml:"notes"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Date renders CreatedAt in DateLayout, dropping the time of day.
func (t Task) Date() string {
	return t.CreatedAt.Local().Format(DateLayout)
}

// NewTask carries the fields needed to create a task. A zero CreatedAt
// means "now" and is filled in by the store.
type NewTask struct {
	Employee  string
	Duration  int
	Title     string
	Notes     string
	CreatedAt time.Time
}

// Validate checks the record invariants.
func (n NewTask) Validate() error {
	if err := ValidateEmployee(n.Employee); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := ValidateDuration(n.Duration); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := ValidateTitle(n.Title); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
