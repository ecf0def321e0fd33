package worklog

import (
	"context"
	"slices"
	"strings"

	"github.com/idilsaglam/worklog/internal/model"
)

// Action is a browser selection.
type Action string

const (
	ActionEdit     Action = "e"
	ActionDelete   Action = "d"
	ActionNext     Action = "n"
	ActionPrevious Action = "p"
	ActionBack     Action = "b"
)

// Actions returns the legal actions at index in a list of n tasks.
func Actions(index, n int) []Action {
	switch {
	case n == 1:
		return []Action{ActionEdit, ActionDelete, ActionBack}
	case index == 0:
		return []Action{ActionEdit, ActionDelete, ActionNext, ActionBack}
	case index == n-1:
		return []Action{ActionEdit, ActionDelete, ActionPrevious, ActionBack}
	default:
		return []Action{ActionEdit, ActionDelete, ActionNext, ActionPrevious, ActionBack}
	}
}

func actionHint(actions []Action) string {
	var parts []string
	for _, a := range actions {
		switch a {
		case ActionEdit:
			parts = append(parts, "(E)dit")
		case ActionDelete:
			parts = append(parts, "(D)elete")
		case ActionNext:
			parts = append(parts, "view (N)ext")
		case ActionPrevious:
			parts = append(parts, "view (P)revious")
		}
	}
	return strings.Join(parts, ", ") + ",\nOr go (B)ack."
}

const browsePrompt = "What would you like to do?"

// Browse shows tasks one at a time. The list is fixed for the whole
// walk; an edited task is re-read so its card shows the new values. A
// confirmed delete ends the walk.
func (s *Session) Browse(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	list := slices.Clone(tasks)
	index := 0
	message := browsePrompt
	for {
		task := list[index]
		s.ui.Println(s.ui.TaskCard(task))
		s.ui.Println()
		s.ui.Println(s.ui.Accent(message))
		s.ui.Println()

		actions := Actions(index, len(list))
		s.ui.Println(actionHint(actions))
		choice, err := s.prompt.Choice()
		if err != nil {
			return err
		}
		action := Action(choice)
		if !slices.Contains(actions, action) {
			message = "Choice not recognized. Try again."
			continue
		}
		message = browsePrompt

		switch action {
		case ActionEdit:
			edited, err := s.Edit(ctx, task.ID)
			if err != nil {
				return err
			}
			if edited {
				fresh, err := s.store.Get(ctx, task.ID)
				if err != nil {
					return err
				}
				list[index] = fresh
			}
		case ActionDelete:
			deleted, err := s.Delete(ctx, task.ID)
			if err != nil {
				return err
			}
			if deleted {
				return nil
			}
		case ActionNext:
			index++
		case ActionPrevious:
			index--
		case ActionBack:
			return nil
		}
	}
}

// Delete removes the task after an explicit "y". It reports whether the
// task was deleted.
func (s *Session) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.prompt.Confirm("Are you sure? [yN]")
	if err != nil || !ok {
		return false, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return false, err
	}
	s.logger.Debug("task deleted", "id", id)
	return true, s.prompt.Pause("Entry deleted! Press Enter to continue.")
}
