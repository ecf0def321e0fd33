package worklog

import (
	"context"
	"fmt"

	"github.com/idilsaglam/worklog/internal/model"
)

// Command is a main menu selection.
type Command string

const (
	CommandAdd    Command = "a"
	CommandView   Command = "v"
	CommandSearch Command = "s"
	CommandQuit   Command = "q"
)

// Handler runs one menu command. The returned message, if any, is shown
// the next time the menu is drawn.
type Handler func(ctx context.Context) (string, error)

// Commands maps each menu selection to its handler.
type Commands map[Command]Handler

// Commands returns the standard command table for s.
func (s *Session) Commands() Commands {
	return Commands{
		CommandAdd:    s.Add,
		CommandView:   s.ViewAll,
		CommandSearch: s.Search,
		CommandQuit:   s.Quit,
	}
}

// Run runs the main menu with the standard commands until the user quits.
func (s *Session) Run(ctx context.Context) error {
	return s.MenuLoop(ctx, s.Commands())
}

// MenuLoop shows the main menu and dispatches selections through cmds
// until CommandQuit has run. Unknown selections re-prompt.
func (s *Session) MenuLoop(ctx context.Context, cmds Commands) error {
	message := ""
	for {
		n, err := s.store.Count(ctx)
		if err != nil {
			return err
		}
		s.showMenu(message, n > 0)

		choice, err := s.prompt.Choice()
		if err != nil {
			return err
		}
		cmd := Command(choice)
		handler, ok := cmds[cmd]
		if !ok {
			message = "Selection not recognized. Try again."
			continue
		}
		message, err = handler(ctx)
		if err != nil {
			return err
		}
		if cmd == CommandQuit {
			return nil
		}
	}
}

// showMenu hides View and Search while the store is empty; their
// handlers stay reachable.
func (s *Session) showMenu(message string, haveTasks bool) {
	s.ui.Println(s.ui.Heading("WORK LOG"))
	s.ui.Println()
	if message != "" {
		s.ui.Println(s.ui.Accent(message))
	} else {
		s.ui.Println("What would you like to do?")
	}
	s.ui.Println()
	s.ui.Println("(A)dd a task")
	if haveTasks {
		s.ui.Println("(V)iew all tasks")
		s.ui.Println("(S)earch for a task")
	}
	s.ui.Println("(Q)uit")
}

// Add reads every field and creates a task.
func (s *Session) Add(ctx context.Context) (string, error) {
	var t model.NewTask
	var err error
	if t.Employee, err = s.prompt.Employee(); err != nil {
		return "", err
	}
	if t.Duration, err = s.prompt.Duration(); err != nil {
		return "", err
	}
	if t.Title, err = s.prompt.Title(); err != nil {
		return "", err
	}
	if t.Notes, err = s.prompt.Notes(); err != nil {
		return "", err
	}

	id, err := s.store.Create(ctx, t)
	if err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}
	s.logger.Debug("task created", "id", id)

	return "", s.prompt.Pause("Task created!  Press Enter to return to main menu.")
}

// ViewAll browses every task, or reports that there are none.
func (s *Session) ViewAll(ctx context.Context) (string, error) {
	tasks, err := s.store.All(ctx)
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "There are no tasks to view yet.", nil
	}
	return "", s.Browse(ctx, tasks)
}

// Quit says goodbye; MenuLoop returns after it.
func (s *Session) Quit(context.Context) (string, error) {
	s.ui.Println("Thanks for using the work log!")
	s.ui.Println()
	return "", nil
}
