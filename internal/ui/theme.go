package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and the card border.
type Theme struct {
	Name                                 string
	Title, Muted, Accent, Success, Error lipgloss.TerminalColor
	Border                               lipgloss.Border
	BorderColor                          lipgloss.TerminalColor
	SymOK, SymFail                       string
	Plain                                bool // force an uncolored profile
}

var themes = map[string]Theme{
	"classic": {
		Name:        "classic",
		Title:       lipgloss.NoColor{},
		Muted:       lipgloss.Color("8"),
		Accent:      lipgloss.Color("12"),
		Success:     lipgloss.Color("42"),
		Error:       lipgloss.Color("9"),
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("8"),
		SymOK:       "✔",
		SymFail:     "✖",
	},
	"neon": {
		Name:        "neon",
		Title:       lipgloss.Color("13"),
		Muted:       lipgloss.Color("8"),
		Accent:      lipgloss.Color("14"),
		Success:     lipgloss.Color("10"),
		Error:       lipgloss.Color("9"),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("14"),
		SymOK:       "✔",
		SymFail:     "✖",
	},
	"mono": {
		Name:        "mono",
		Title:       lipgloss.NoColor{},
		Muted:       lipgloss.NoColor{},
		Accent:      lipgloss.NoColor{},
		Success:     lipgloss.NoColor{},
		Error:       lipgloss.NoColor{},
		Border:      asciiBorder,
		BorderColor: lipgloss.NoColor{},
		SymOK:       "ok",
		SymFail:     "error:",
		Plain:       true,
	},
}

var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "classic"

// ThemeByName looks a theme up case-insensitively.
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(name)]
	return t, ok
}

// ThemeNames lists the known themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
