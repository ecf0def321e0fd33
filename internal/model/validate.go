package model

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ValidationError is a user-facing complaint about one field value.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field.String() + ": " + e.Message
}

// ValidateEmployee accepts any name of at most MaxEmployeeLen characters,
// including the empty string.
func ValidateEmployee(s string) error {
	if utf8.RuneCountInString(s) > MaxEmployeeLen {
		return &ValidationError{Field: FieldEmployee, Message: "Name must be 60 or fewer characters."}
	}
	return nil
}

// ValidateTitle accepts any title of at most MaxTitleLen characters.
func ValidateTitle(s string) error {
	if utf8.RuneCountInString(s) > MaxTitleLen {
		return &ValidationError{Field: FieldTitle, Message: "Task title must be 140 or fewer characters."}
	}
	return nil
}

// ValidateDuration rejects durations below MinDuration.
func ValidateDuration(minutes int) error {
	if minutes < MinDuration {
		return errDuration
	}
	return nil
}

var errDuration = &ValidationError{Field: FieldDuration, Message: "Duration must be a positive whole number."}

// ParseDuration reads a whole number of minutes.
func ParseDuration(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errDuration
	}
	if err := ValidateDuration(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ParseDate reads a DateLayout date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, &ValidationError{Field: FieldCreatedAt, Message: "Couldn't convert input into date. Try again."}
	}
	return d, nil
}

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
