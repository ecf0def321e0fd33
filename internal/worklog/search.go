package worklog

import (
	"context"
	"fmt"
	"time"

	"github.com/idilsaglam/worklog/internal/model"
	"github.com/idilsaglam/worklog/internal/store"
)

// Strategy is one way of searching for tasks.
type Strategy int

const (
	StrategyEmployee Strategy = iota + 1
	StrategyDuration
	StrategyKeyword
	StrategyDate
	StrategyDateRange
)

// Strategies lists every strategy in menu order.
var Strategies = []Strategy{StrategyEmployee, StrategyDuration, StrategyKeyword, StrategyDate, StrategyDateRange}

// Key is the menu selection for st.
func (st Strategy) Key() string {
	switch st {
	case StrategyEmployee:
		return "e"
	case StrategyDuration:
		return "t"
	case StrategyKeyword:
		return "k"
	case StrategyDate:
		return "d"
	case StrategyDateRange:
		return "r"
	}
	return ""
}

func (st Strategy) label() string {
	switch st {
	case StrategyEmployee:
		return "Search by (E)mployee name"
	case StrategyDuration:
		return "Search by Dura(t)ion"
	case StrategyKeyword:
		return "Search by (K)eyword"
	case StrategyDate:
		return "Search by (D)ate"
	case StrategyDateRange:
		return "Search by Date (R)ange"
	}
	return fmt.Sprintf("strategy(%d)", int(st))
}

func strategyForKey(key string) (Strategy, bool) {
	for _, st := range Strategies {
		if st.Key() == key {
			return st, true
		}
	}
	return 0, false
}

const (
	searchPrompt  = "Enter criteria below:"
	searchBackKey = "b"
)

// Search asks for a strategy, runs it and browses the result, until the
// user goes back. Empty results never reach the browser.
func (s *Session) Search(ctx context.Context) (string, error) {
	message := searchPrompt
	for {
		s.ui.Println("What criteria would you like to use for searching?")
		s.ui.Println()
		for _, st := range Strategies {
			s.ui.Println(st.label())
		}
		s.ui.Println("Or go (B)ack")
		s.ui.Println()
		s.ui.Println(s.ui.Accent(message))
		s.ui.Println()

		choice, err := s.prompt.Choice()
		if err != nil {
			return "", err
		}
		if choice == searchBackKey {
			return "", nil
		}
		st, ok := strategyForKey(choice)
		if !ok {
			message = "Entry not recognized. Try again."
			continue
		}

		tasks, err := s.runStrategy(ctx, st)
		if err != nil {
			return "", err
		}
		if len(tasks) == 0 {
			message = "No tasks found by that criteria. Try again."
			continue
		}
		if err := s.Browse(ctx, tasks); err != nil {
			return "", err
		}
		message = searchPrompt
	}
}

// runStrategy reads the strategy's input and queries the store.
func (s *Session) runStrategy(ctx context.Context, st Strategy) ([]model.Task, error) {
	switch st {
	case StrategyEmployee:
		return s.employeeSearch(ctx)

	case StrategyDuration:
		minutes, err := s.prompt.Duration()
		if err != nil {
			return nil, err
		}
		return s.store.Select(ctx, durationQuery(minutes)...)

	case StrategyKeyword:
		keyword, err := s.prompt.Ask("What keyword would you like to search by?")
		if err != nil {
			return nil, err
		}
		return s.store.Select(ctx, keywordQuery(keyword)...)

	case StrategyDate:
		day, err := s.prompt.Date("")
		if err != nil {
			return nil, err
		}
		return s.store.Select(ctx, dayQuery(day)...)

	case StrategyDateRange:
		start, err := s.prompt.Date("Enter the beginning date in the date range.")
		if err != nil {
			return nil, err
		}
		end, err := s.prompt.Date("Enter the end date in the date range.")
		if err != nil {
			return nil, err
		}
		return s.store.Select(ctx, rangeQuery(start, end)...)
	}
	return nil, fmt.Errorf("worklog: unknown search strategy %d", int(st))
}

func durationQuery(minutes int) []store.Predicate {
	return []store.Predicate{store.DurationEquals(minutes)}
}

func keywordQuery(keyword string) []store.Predicate {
	return []store.Predicate{store.Keyword(keyword)}
}

func dayQuery(day time.Time) []store.Predicate {
	return []store.Predicate{store.CreatedBetween(model.StartOfDay(day), model.EndOfDay(day))}
}

// rangeQuery covers whole calendar days from the earlier date to the
// later one, whichever order they were given in.
func rangeQuery(a, b time.Time) []store.Predicate {
	if b.Before(a) {
		a, b = b, a
	}
	return []store.Predicate{store.CreatedBetween(model.StartOfDay(a), model.EndOfDay(b))}
}

func (s *Session) employeeSearch(ctx context.Context) ([]model.Task, error) {
	message := ""
	for {
		s.ui.Println("Search through employees by:")
		s.ui.Println("  Picking from a (L)ist of employees")
		s.ui.Println("  (E)ntering an employee's name")
		s.ui.Println()
		if message != "" {
			s.ui.Println(s.ui.Error(message))
			s.ui.Println()
		}

		choice, err := s.prompt.Choice()
		if err != nil {
			return nil, err
		}
		switch choice {
		case "l":
			return s.employeeFromList(ctx)
		case "e":
			return s.employeeByEntry(ctx)
		}
		message = "Entry not recognized. Try again."
	}
}

func (s *Session) employeeFromList(ctx context.Context) ([]model.Task, error) {
	names, err := s.store.Employees(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		// Nothing could ever be selected from an empty list.
		return nil, nil
	}
	return s.employeeFromSelection(ctx, names, "Which employee's tasks do you want to view?")
}

// employeeByEntry matches the typed text against employee names. One
// match resolves directly; several are offered as a list.
func (s *Session) employeeByEntry(ctx context.Context) ([]model.Task, error) {
	typed, err := s.prompt.Employee()
	if err != nil {
		return nil, err
	}
	names, err := s.store.Employees(ctx, store.EmployeeContains(typed))
	if err != nil {
		return nil, err
	}
	switch len(names) {
	case 0:
		return nil, nil
	case 1:
		return s.store.Select(ctx, store.EmployeeEquals(names[0]))
	}
	return s.employeeFromSelection(ctx, names, "Multiple employees found with similar name.")
}

func (s *Session) employeeFromSelection(ctx context.Context, names []string, header string) ([]model.Task, error) {
	i, err := s.prompt.Select(header, names)
	if err != nil {
		return nil, err
	}
	return s.store.Select(ctx, store.EmployeeEquals(names[i]))
}
