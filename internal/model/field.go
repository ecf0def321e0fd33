package model

import (
	"fmt"
	"time"
)

// Field names one editable column of a task.
type Field int

const (
	FieldEmployee Field = iota
	FieldDuration
	FieldTitle
	FieldNotes
	FieldCreatedAt
)

// Fields lists every editable field in menu order.
var Fields = []Field{FieldEmployee, FieldDuration, FieldTitle, FieldNotes, FieldCreatedAt}

func (f Field) String() string {
	switch f {
	case FieldEmployee:
		return "employee"
	case FieldDuration:
		return "duration"
	case FieldTitle:
		return "title"
	case FieldNotes:
		return "notes"
	case FieldCreatedAt:
		return "created_at"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Update is a partial change to a task. Nil members are left alone.
type Update struct {
	Employee  *string
	Duration  *int
	Title     *string
	Notes     *string
	CreatedAt *time.Time
}

// Fields reports which fields the update touches, in menu order.
func (u Update) Fields() []Field {
	var out []Field
	if u.Employee != nil {
		out = append(out, FieldEmployee)
	}
	if u.Duration != nil {
		out = append(out, FieldDuration)
	}
	if u.Title != nil {
		out = append(out, FieldTitle)
	}
	if u.Notes != nil {
		out = append(out, FieldNotes)
	}
	if u.CreatedAt != nil {
		out = append(out, FieldCreatedAt)
	}
	return out
}

// IsEmpty reports whether the update changes nothing.
func (u Update) IsEmpty() bool { return len(u.Fields()) == 0 }

// Validate applies the same constraints as NewTask.Validate to the
// fields that are set.
func (u Update) Validate() error {
	if u.Employee != nil {
		if err := ValidateEmployee(*u.Employee); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if u.Duration != nil {
		if err := ValidateDuration(*u.Duration); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if u.Title != nil {
		if err := ValidateTitle(*u.Title); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Apply returns t with the update's fields copied over.
func (u Update) Apply(t Task) Task {
	if u.Employee != nil {
		t.Employee = *u.Employee
	}
	if u.Duration != nil {
		t.Duration = *u.Duration
	}
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Notes != nil {
		t.Notes = *u.Notes
	}
	if u.CreatedAt != nil {
		t.CreatedAt = *u.CreatedAt
	}
	return t
}
