package worklog

import (
	"context"

	"github.com/idilsaglam/worklog/internal/model"
)

func fieldKey(f model.Field) string {
	switch f {
	case model.FieldEmployee:
		return "e"
	case model.FieldDuration:
		return "u"
	case model.FieldTitle:
		return "t"
	case model.FieldNotes:
		return "n"
	case model.FieldCreatedAt:
		return "d"
	}
	return ""
}

func fieldLabel(f model.Field) string {
	switch f {
	case model.FieldEmployee:
		return "(E)mployee"
	case model.FieldDuration:
		return "D(u)ration"
	case model.FieldTitle:
		return "(T)itle"
	case model.FieldNotes:
		return "(N)otes"
	case model.FieldCreatedAt:
		return "(D)ate"
	}
	return f.String()
}

func fieldForKey(key string) (model.Field, bool) {
	for _, f := range model.Fields {
		if fieldKey(f) == key {
			return f, true
		}
	}
	return 0, false
}

// Edit lets the user replace one field of task id. It reports whether
// the task was changed; going back changes nothing.
func (s *Session) Edit(ctx context.Context, id int64) (bool, error) {
	message := "What do you want to update?"
	for {
		s.ui.Println(s.ui.Accent(message))
		s.ui.Println()
		for _, f := range model.Fields {
			s.ui.Println(fieldLabel(f))
		}
		s.ui.Println()
		s.ui.Println("Or go (B)ack.")

		choice, err := s.prompt.Choice()
		if err != nil {
			return false, err
		}
		if choice == "b" {
			return false, nil
		}
		f, ok := fieldForKey(choice)
		if !ok {
			message = "Choice not recognized. Try again."
			continue
		}

		u, err := s.readField(f)
		if err != nil {
			return false, err
		}
		if err := s.store.Update(ctx, id, u); err != nil {
			return false, err
		}
		s.logger.Debug("task updated", "id", id, "field", f.String())
		return true, s.prompt.Pause("Task has been updated. Press Enter to continue.")
	}
}

// readField prompts for a new value of f and wraps it as an update.
func (s *Session) readField(f model.Field) (model.Update, error) {
	var u model.Update
	switch f {
	case model.FieldEmployee:
		v, err := s.prompt.Employee()
		if err != nil {
			return u, err
		}
		u.Employee = &v
	case model.FieldDuration:
		v, err := s.prompt.Duration()
		if err != nil {
			return u, err
		}
		u.Duration = &v
	case model.FieldTitle:
		v, err := s.prompt.Title()
		if err != nil {
			return u, err
		}
		u.Title = &v
	case model.FieldNotes:
		v, err := s.prompt.Notes()
		if err != nil {
			return u, err
		}
		u.Notes = &v
	case model.FieldCreatedAt:
		v, err := s.prompt.Date("")
		if err != nil {
			return u, err
		}
		u.CreatedAt = &v
	}
	return u, nil
}
