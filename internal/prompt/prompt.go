// Package prompt reads line-oriented answers from the terminal.
//
// Every question is written as one or more lines of text followed by a
// "> " marker, and every answer consumes exactly one input line. The
// field readers loop until the answer validates; a rejected answer
// repeats the question with the problem printed above it.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/worklog/internal/model"
	"github.com/idilsaglam/worklog/internal/ui"
)

// ErrInputClosed is returned by every read once the input is exhausted.
var ErrInputClosed = errors.New("prompt: input closed")

// Marker ends every prompt.
const Marker = "> "

// Prompter pairs an input stream with the UI that questions are
// written to.
type Prompter struct {
	in *bufio.Reader
	ui *ui.UI
}

// New returns a Prompter reading from in. Dates are read in time.Local,
// the zone model.Task renders them in.
func New(in io.Reader, u *ui.UI) *Prompter {
	return &Prompter{in: bufio.NewReader(in), ui: u}
}

// UI returns the output side of the prompter.
func (p *Prompter) UI() *ui.UI { return p.ui }

// Ask writes question and the marker, then reads one line with its line
// ending removed.
func (p *Prompter) Ask(question string) (string, error) {
	if question != "" {
		p.ui.Println(question)
	}
	p.ui.Print(Marker)
	return p.readLine()
}

// Choice reads a menu selection: trimmed and lower-cased.
func (p *Prompter) Choice() (string, error) {
	line, err := p.Ask("")
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// Pause shows msg and waits for any line.
func (p *Prompter) Pause(msg string) error {
	_, err := p.Ask(msg)
	return err
}

// Confirm asks question and reports whether the answer was "y" in any
// case. Anything else, including an empty line, is a no.
func (p *Prompter) Confirm(question string) (bool, error) {
	line, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// Select lists names with zero-based indexes under header and reads an
// index until one is in range. There is no way to back out once the
// list is shown.
func (p *Prompter) Select(header string, names []string) (int, error) {
	problem := ""
	for {
		p.ui.Println(header)
		p.ui.Println()
		for i, name := range names {
			p.ui.Printf("(%d) %s\n", i, name)
		}
		p.ui.Println()
		if problem != "" {
			p.ui.Println(p.ui.Error(problem))
			p.ui.Println()
		}
		line, err := p.Ask("")
		if err != nil {
			return 0, err
		}
		i, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || i < 0 || i > len(names)-1 {
			problem = "Entry not recognized. Try again."
			continue
		}
		return i, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// retry asks question until accept returns nil. Validation failures are
// shown above the repeated question; prefix is kept on every attempt.
func (p *Prompter) retry(prefix, question string, accept func(string) error) error {
	problem := ""
	for {
		if problem != "" {
			p.ui.Println(p.ui.Error(problem))
			p.ui.Println()
		}
		if prefix != "" {
			p.ui.Println(prefix)
			p.ui.Println()
		}
		line, err := p.Ask(question)
		if err != nil {
			return err
		}
		err = accept(line)
		if err == nil {
			return nil
		}
		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		problem = verr.Message
	}
}
