// Package ui renders work log output: headings, status lines and the
// framed record card. All styling goes through a lipgloss renderer bound
// to the output writer, so color is dropped automatically when the
// writer is not a terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/worklog/internal/model"
)

// UI writes styled text to out and failures to errOut.
type UI struct {
	out, errOut io.Writer
	theme       Theme

	title, muted, accent, success, failure, panel lipgloss.Style
}

// New builds a UI for the named theme, falling back to DefaultTheme for
// unknown names.
func New(out, errOut io.Writer, themeName string) *UI {
	theme, ok := ThemeByName(themeName)
	if !ok {
		theme, _ = ThemeByName(DefaultTheme)
	}

	var r *lipgloss.Renderer
	if theme.Plain {
		r = lipgloss.NewRenderer(out, termenv.WithProfile(termenv.Ascii))
	} else {
		r = lipgloss.NewRenderer(out)
	}

	return &UI{
		out:     out,
		errOut:  errOut,
		theme:   theme,
		title:   r.NewStyle().Bold(true).Foreground(theme.Title),
		muted:   r.NewStyle().Foreground(theme.Muted),
		accent:  r.NewStyle().Foreground(theme.Accent),
		success: r.NewStyle().Foreground(theme.Success),
		failure: r.NewStyle().Foreground(theme.Error).Bold(true),
		panel: r.NewStyle().
			Border(theme.Border).
			BorderForeground(theme.BorderColor).
			Padding(0, 1),
	}
}

// Theme reports the active theme.
func (u *UI) Theme() Theme { return u.theme }

func (u *UI) Println(a ...any)               { fmt.Fprintln(u.out, a...) }
func (u *UI) Printf(format string, a ...any) { fmt.Fprintf(u.out, format, a...) }
func (u *UI) Print(s string)                 { io.WriteString(u.out, s) }

// Heading renders s underlined with '=' the width of s.
func (u *UI) Heading(s string) string {
	return u.title.Render(s) + "\n" + u.muted.Render(strings.Repeat("=", len(s)))
}

func (u *UI) Error(s string) string  { return u.failure.Render(s) }
func (u *UI) Muted(s string) string  { return u.muted.Render(s) }
func (u *UI) Accent(s string) string { return u.accent.Render(s) }

func (u *UI) OK(msg string) {
	fmt.Fprintln(u.out, u.success.Render(u.theme.SymOK+" "+msg))
}

func (u *UI) Fail(msg string) {
	fmt.Fprintln(u.errOut, u.failure.Render(u.theme.SymFail+" "+msg))
}

// Panel frames lines in the theme border.
func (u *UI) Panel(lines []string) string {
	return u.panel.Render(strings.Join(lines, "\n"))
}

// TaskCard renders every field of t inside a panel.
func (u *UI) TaskCard(t model.Task) string {
	return u.Panel([]string{
		u.Heading("TASK"),
		"",
		fmt.Sprintf("Task ID# %d", t.ID),
		"Employee: " + t.Employee,
		"Title: " + t.Title,
		fmt.Sprintf("Duration: %d", t.Duration),
		"Notes: " + t.Notes,
		"Date Created: " + t.Date(),
	})
}

// TaskLine is the one-line summary used by list views.
func (u *UI) TaskLine(t model.Task) string {
	return fmt.Sprintf("%s %s  %s %s",
		u.muted.Render(fmt.Sprintf("#%-4d", t.ID)),
		t.Date(),
		u.accent.Render(t.Employee),
		t.Title+u.muted.Render(fmt.Sprintf(" (%d min)", t.Duration)),
	)
}
