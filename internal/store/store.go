// Package store defines the record store contract the work log runs on.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/idilsaglam/worklog/internal/model"
)

// ErrNotFound is returned for an id that has no task.
var ErrNotFound = errors.New("task not found")

// Store is the persistence boundary for task records. Every mutation is
// a single atomic operation. Sequences come back in insertion order.
type Store interface {
	Create(ctx context.Context, t model.NewTask) (int64, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	Update(ctx context.Context, id int64, u model.Update) error
	Delete(ctx context.Context, id int64) error
	All(ctx context.Context) ([]model.Task, error)
	Employees(ctx context.Context, preds ...Predicate) ([]string, error)
	Select(ctx context.Context, preds ...Predicate) ([]model.Task, error)
	Count(ctx context.Context) (int, error)
}

// Op selects the comparison a Predicate performs.
type Op int

const (
	OpEmployeeEquals Op = iota + 1
	OpEmployeeContains
	OpDurationEquals
	OpKeyword // title or notes contains
	OpCreatedBetween
)

// Predicate is one filter condition. Select ANDs all predicates it is
// given. Build them with the constructors below.
type Predicate struct {
	Op     Op
	Text   string
	Number int
	From   time.Time
	To     time.Time
}

// EmployeeEquals matches one employee name exactly.
func EmployeeEquals(name string) Predicate {
	return Predicate{Op: OpEmployeeEquals, Text: name}
}

// EmployeeContains matches names containing s, ignoring case.
func EmployeeContains(s string) Predicate {
	return Predicate{Op: OpEmployeeContains, Text: s}
}

// DurationEquals matches tasks of exactly minutes.
func DurationEquals(minutes int) Predicate {
	return Predicate{Op: OpDurationEquals, Number: minutes}
}

// Keyword matches tasks whose title or notes contain s, ignoring case.
func Keyword(s string) Predicate {
	return Predicate{Op: OpKeyword, Text: s}
}

// CreatedBetween matches created_at in [from, to], both ends inclusive.
func CreatedBetween(from, to time.Time) Predicate {
	return Predicate{Op: OpCreatedBetween, From: from, To: to}
}
