package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/worklog/internal/model"
	"github.com/idilsaglam/worklog/internal/ui"
)

func newTestModel() Model {
	var out bytes.Buffer
	tasks := []model.Task{
		{ID: 1, Employee: "Ann", Duration: 15, Title: "Write report", CreatedAt: time.Date(2018, 12, 12, 9, 0, 0, 0, time.Local)},
		{ID: 2, Employee: "Bob", Duration: 30, Title: "Review", CreatedAt: time.Date(2018, 12, 13, 9, 0, 0, 0, time.Local)},
	}
	return New(tasks, ui.New(&out, &out, "mono"), 80, 20)
}

func press(m tea.Model, k string) (tea.Model, tea.Cmd) {
	switch k {
	case "enter":
		return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	}
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func TestModel_EnterShowsDetail(t *testing.T) {
	var m tea.Model = newTestModel()

	m, _ = press(m, "enter")
	if !m.(Model).detail {
		t.Fatal("detail = false after enter, want true")
	}
	if v := m.View(); !strings.Contains(v, "Employee: Ann") {
		t.Fatalf("View() in detail mode missing card:\n%s", v)
	}

	m, cmd := press(m, "esc")
	if m.(Model).detail {
		t.Fatal("detail = true after esc, want false")
	}
	if cmd != nil {
		t.Fatal("esc in detail mode returned a command, want nil")
	}
}

func TestModel_QuitFromList(t *testing.T) {
	var m tea.Model = newTestModel()

	_, cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q returned nil command, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q command produced %T, want tea.QuitMsg", cmd())
	}
}

func TestItem_FilterValue(t *testing.T) {
	it := taskItem{task: model.Task{Employee: "Ann", Title: "Write", Notes: "quarterly"}}
	if got := it.FilterValue(); got != "Ann Write quarterly" {
		t.Fatalf("FilterValue() = %q, want %q", got, "Ann Write quarterly")
	}
}
