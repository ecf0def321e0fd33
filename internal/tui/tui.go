// Package tui is a read-only, filterable full-screen list of tasks.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/idilsaglam/worklog/internal/model"
	"github.com/idilsaglam/worklog/internal/ui"
)

// taskItem adapts model.Task to list.Item.
type taskItem struct{ task model.Task }

func (i taskItem) Title() string { return i.task.Title }
func (i taskItem) Description() string {
	return fmt.Sprintf("%s, %d min, %s", i.task.Employee, i.task.Duration, i.task.Date())
}
func (i taskItem) FilterValue() string {
	return i.task.Employee + " " + i.task.Title + " " + i.task.Notes
}

// itemDelegate renders one task per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	line := fmt.Sprintf("%s %s  %s %s %s",
		mutedStyle.Render(fmt.Sprintf("#%-4d", it.task.ID)),
		it.task.Date(),
		accentStyle.Render(it.task.Employee),
		it.task.Title,
		mutedStyle.Render(fmt.Sprintf("(%d min)", it.task.Duration)),
	)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

var detailBind = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details"))

// Model is the bubbletea model behind Run.
type Model struct {
	list   list.Model
	ui     *ui.UI
	detail bool
}

// New builds the list for tasks. Cards in the detail view are rendered
// with u.
func New(tasks []model.Task, u *ui.UI, width, height int) Model {
	items := make([]list.Item, 0, len(tasks))
	total := 0
	for _, t := range tasks {
		items = append(items, taskItem{task: t})
		total += t.Duration
	}

	l := list.New(items, itemDelegate{}, width, height)
	l.Title = fmt.Sprintf("%s   %d tasks, %d min", "Work log", len(tasks), total)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{detailBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{detailBind} }

	return Model{list: l, ui: u}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		// keys belong to the filter input while it is open
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			if m.detail {
				m.detail = false
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			if _, ok := m.list.SelectedItem().(taskItem); ok {
				m.detail = !m.detail
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.detail {
		if it, ok := m.list.SelectedItem().(taskItem); ok {
			return m.ui.TaskCard(it.task) + "\n" + helpStyle.Render("esc back")
		}
	}
	return frameStyle.Render(m.list.View())
}

// Run shows tasks full screen until the user quits.
func Run(tasks []model.Task, u *ui.UI) error {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	p := tea.NewProgram(New(tasks, u, w-4, h-2), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
