package prompt

import (
	"time"

	"github.com/idilsaglam/worklog/internal/model"
)

// Employee reads a name of at most model.MaxEmployeeLen characters.
// An empty name is accepted.
func (p *Prompter) Employee() (string, error) {
	var name string
	err := p.retry("", "Which employee completed the task?", func(s string) error {
		name = s
		return model.ValidateEmployee(s)
	})
	return name, err
}

// Duration reads a positive whole number of minutes.
func (p *Prompter) Duration() (int, error) {
	var minutes int
	err := p.retry("", "How long did it take to complete the task? (in minutes)", func(s string) error {
		n, err := model.ParseDuration(s)
		minutes = n
		return err
	})
	return minutes, err
}

// Title reads a title of at most model.MaxTitleLen characters.
func (p *Prompter) Title() (string, error) {
	var title string
	err := p.retry("", "Enter a short description of the task:", func(s string) error {
		title = s
		return model.ValidateTitle(s)
	})
	return title, err
}

// Notes reads free text; every answer is accepted.
func (p *Prompter) Notes() (string, error) {
	return p.Ask("Enter any additional notes related to the task (optional)")
}

// Date reads an MM/DD/YYYY date. label, when set, is shown above the
// question on every attempt. The loop only ends on a valid date.
func (p *Prompter) Date(label string) (time.Time, error) {
	var date time.Time
	err := p.retry(label, "When was the task completed? (MM/DD/YYYY)", func(s string) error {
		d, err := model.ParseDate(s, time.Local)
		date = d
		return err
	})
	return date, err
}
