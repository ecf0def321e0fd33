package worklog

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/worklog/internal/clock"
	"github.com/idilsaglam/worklog/internal/model"
	"github.com/idilsaglam/worklog/internal/prompt"
	"github.com/idilsaglam/worklog/internal/store/sqlitestore"
	"github.com/idilsaglam/worklog/internal/ui"
)

var testDay = time.Date(2018, time.December, 12, 10, 0, 0, 0, time.Local)

type harness struct {
	session *Session
	store   *sqlitestore.Store
	clock   *clock.FakeClock
	out     *bytes.Buffer
}

// newHarness opens a fresh store and a session whose input is answers,
// one per line.
func newHarness(t *testing.T, answers ...string) *harness {
	t.Helper()
	clk := clock.Fake(testDay)
	st, err := sqlitestore.Open(context.Background(), sqlitestore.Config{
		Path:  filepath.Join(t.TempDir(), "work_log.db"),
		Clock: clk,
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	p := prompt.New(in, ui.New(&out, &out, "mono"))
	return &harness{session: New(st, p, nil), store: st, clock: clk, out: &out}
}

func (h *harness) create(t *testing.T, n model.NewTask) model.Task {
	t.Helper()
	ctx := context.Background()
	id, err := h.store.Create(ctx, n)
	if err != nil {
		t.Fatalf("Create(%+v): %v", n, err)
	}
	task, err := h.store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get(%d): %v", id, err)
	}
	return task
}

func (h *harness) count(t *testing.T) int {
	t.Helper()
	n, err := h.store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	return n
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s, time.Local)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func ids(tasks []model.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func task(employee string, minutes int, title, notes string) model.NewTask {
	return model.NewTask{Employee: employee, Duration: minutes, Title: title, Notes: notes}
}
