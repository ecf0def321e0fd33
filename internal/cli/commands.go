package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/worklog/internal/model"
	"github.com/idilsaglam/worklog/internal/prompt"
	"github.com/idilsaglam/worklog/internal/store"
	"github.com/idilsaglam/worklog/internal/store/jsonfile"
	"github.com/idilsaglam/worklog/internal/tui"
	"github.com/idilsaglam/worklog/internal/ui"
	"github.com/idilsaglam/worklog/internal/worklog"
)

// runInteractive runs the main menu on the app's streams.
func (a *App) runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer a.closeStore(st)

	p := prompt.New(a.in, a.ui)
	if err := worklog.New(st, p, a.logger).Run(ctx); err != nil {
		if errors.Is(err, prompt.ErrInputClosed) {
			fmt.Fprintln(a.out)
		}
		return err
	}
	return nil
}

func (a *App) addCmd() *cobra.Command {
	var (
		task model.NewTask
		date string
	)
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a task without the interactive menu",
		Example: `  worklog add --employee "Ann Lee" --duration 45 --title "Quarterly report"`,
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range []string{"employee", "duration", "title"} {
				if !cmd.Flags().Changed(name) {
					return usagef("add: --%s is required", name)
				}
			}
			if date != "" {
				d, err := model.ParseDate(date, time.Local)
				if err != nil {
					return usagef("add: %v", err)
				}
				task.CreatedAt = d
			}

			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer a.closeStore(st)

			id, err := st.Create(ctx, task)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			a.logger.Debug("task created", "id", id)
			a.ui.OK(fmt.Sprintf("added task #%d", id))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&task.Employee, "employee", "e", "", "who completed the task")
	f.IntVarP(&task.Duration, "duration", "d", 0, "minutes spent")
	f.StringVarP(&task.Title, "title", "t", "", "short description")
	f.StringVarP(&task.Notes, "notes", "n", "", "additional notes")
	f.StringVar(&date, "date", "", "completion date as MM/DD/YYYY (default now)")
	return cmd
}

func (a *App) lsCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List every task",
		Long:  "List every task. On a terminal the list is browsable and filterable; use --plain for a static listing.",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			tasks, err := st.All(ctx)
			a.closeStore(st)
			if err != nil {
				return fmt.Errorf("ls: %w", err)
			}

			if plain || !isTerminal(a.out) {
				a.ui.Println(listPanel(a.ui, tasks))
				return nil
			}
			return tui.Run(tasks, a.ui)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print a static list instead of the interactive browser")
	return cmd
}

// listPanel renders tasks with a total line.
func listPanel(u *ui.UI, tasks []model.Task) string {
	lines := []string{u.Heading("WORK LOG"), ""}
	if len(tasks) == 0 {
		lines = append(lines, u.Muted("There are no tasks to view yet."))
	}
	total := 0
	for _, t := range tasks {
		lines = append(lines, u.TaskLine(t))
		total += t.Duration
	}
	lines = append(lines, "", u.Muted(fmt.Sprintf("%d tasks, %d min", len(tasks), total)))
	return u.Panel(lines)
}

func (a *App) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task by id",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id < 1 {
				return usagef("rm: not a task id: %s", args[0])
			}

			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer a.closeStore(st)

			if err := st.Delete(ctx, id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("rm: no task #%d: %w", id, store.ErrNotFound)
				}
				return fmt.Errorf("rm: %w", err)
			}
			a.logger.Debug("task deleted", "id", id)
			a.ui.OK(fmt.Sprintf("removed task #%d", id))
			return nil
		},
	}
}

func (a *App) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write every task to a JSON or YAML file",
		Long:  "Write every task to file. Files ending in .yaml or .yml are written as YAML, anything else as JSON.",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer a.closeStore(st)

			tasks, err := st.All(ctx)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := jsonfile.Save(args[0], tasks); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			a.ui.OK(fmt.Sprintf("exported %d tasks to %s", len(tasks), args[0]))
			return nil
		},
	}
}

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add every task from a JSON or YAML file",
		Long: `Add every task in file, as written by export. Creation dates are kept;
ids are not, each imported task gets a fresh one. Nothing is added if any
record is invalid.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			tasks, err := jsonfile.Load(path)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			records := make([]model.NewTask, 0, len(tasks))
			for i, t := range tasks {
				nt := model.NewTask{
					Employee:  t.Employee,
					Duration:  t.Duration,
					Title:     t.Title,
					Notes:     t.Notes,
					CreatedAt: t.CreatedAt,
				}
				if err := nt.Validate(); err != nil {
					return fmt.Errorf("import: record %d: %w", i+1, err)
				}
				records = append(records, nt)
			}

			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer a.closeStore(st)

			for _, nt := range records {
				id, err := st.Create(ctx, nt)
				if err != nil {
					return fmt.Errorf("import: %w", err)
				}
				a.logger.Debug("task imported", "id", id)
			}
			a.ui.OK(fmt.Sprintf("imported %d tasks from %s", len(records), path))
			return nil
		},
	}
}
