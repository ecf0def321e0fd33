// Package worklog is the interactive work log: the main menu, the search
// strategies, the paginated task browser and the single-field editor.
//
// Everything runs on one goroutine as a sequence of prompt/answer
// exchanges. Bad answers are handled where they are read, by asking
// again; only store failures and a closed input end a Session early.
package worklog

import (
	"io"
	"log/slog"

	"github.com/idilsaglam/worklog/internal/prompt"
	"github.com/idilsaglam/worklog/internal/store"
	"github.com/idilsaglam/worklog/internal/ui"
)

// Session is one interactive run against a store.
type Session struct {
	store  store.Store
	prompt *prompt.Prompter
	ui     *ui.UI
	logger *slog.Logger
}

// New returns a Session. A nil logger discards.
func New(st store.Store, p *prompt.Prompter, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{store: st, prompt: p, ui: p.UI(), logger: logger}
}
