package worklog

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/idilsaglam/worklog/internal/model"
	"github.com/idilsaglam/worklog/internal/store"
)

func TestActions(t *testing.T) {
	tests := []struct {
		name     string
		index, n int
		want     []Action
	}{
		{"single", 0, 1, []Action{ActionEdit, ActionDelete, ActionBack}},
		{"first of three", 0, 3, []Action{ActionEdit, ActionDelete, ActionNext, ActionBack}},
		{"middle of three", 1, 3, []Action{ActionEdit, ActionDelete, ActionNext, ActionPrevious, ActionBack}},
		{"last of three", 2, 3, []Action{ActionEdit, ActionDelete, ActionPrevious, ActionBack}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Actions(tc.index, tc.n)
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Actions(%d, %d) = %v, want %v", tc.index, tc.n, got, tc.want)
			}
		})
	}
}

func TestBrowse_Pagination(t *testing.T) {
	// previous at the start and next at the end are both illegal
	h := newHarness(t, "p", "n", "n", "n", "p", "b")
	a := h.create(t, task("Ann", 5, "first", ""))
	b := h.create(t, task("Bob", 5, "second", ""))
	c := h.create(t, task("Cid", 5, "third", ""))

	if err := h.session.Browse(context.Background(), []model.Task{a, b, c}); err != nil {
		t.Fatalf("Browse() err = %v, want nil", err)
	}

	out := h.out.String()
	if n := strings.Count(out, "Choice not recognized. Try again."); n != 2 {
		t.Fatalf("rejection shown %d times, want 2", n)
	}
	var order []string
	for _, line := range strings.Split(out, "\n") {
		if i := strings.Index(line, "Title: "); i >= 0 {
			order = append(order, strings.TrimSpace(strings.Trim(line[i+len("Title: "):], " |")))
		}
	}
	want := []string{"first", "first", "second", "third", "third", "second"}
	if !slices.Equal(order, want) {
		t.Fatalf("cards shown = %v, want %v", order, want)
	}
	if !strings.Contains(out, "(E)dit, (D)elete, view (N)ext,\nOr go (B)ack.") {
		t.Fatalf("first position hint missing:\n%s", out)
	}
	if !strings.Contains(out, "(E)dit, (D)elete, view (P)revious,\nOr go (B)ack.") {
		t.Fatalf("last position hint missing:\n%s", out)
	}
}

func TestBrowse_SingleTaskHasNoNavigation(t *testing.T) {
	h := newHarness(t, "n", "p", "b")
	a := h.create(t, task("Ann", 5, "only", ""))

	if err := h.session.Browse(context.Background(), []model.Task{a}); err != nil {
		t.Fatalf("Browse() err = %v, want nil", err)
	}
	if n := strings.Count(h.out.String(), "Choice not recognized. Try again."); n != 2 {
		t.Fatalf("rejection shown %d times, want 2", n)
	}
}

func TestBrowse_DeleteDeclined(t *testing.T) {
	for _, answer := range []string{"n", ""} {
		h := newHarness(t, "d", answer, "b")
		a := h.create(t, task("Ann", 5, "keep me", ""))

		if err := h.session.Browse(context.Background(), []model.Task{a}); err != nil {
			t.Fatalf("Browse() err = %v, want nil", err)
		}
		if h.count(t) != 1 {
			t.Fatalf("Count() after declining with %q = %d, want 1", answer, h.count(t))
		}
		if n := strings.Count(h.out.String(), "Title: keep me"); n != 2 {
			t.Fatalf("card shown %d times after declining with %q, want 2", n, answer)
		}
	}
}

func TestBrowse_DeleteConfirmedExits(t *testing.T) {
	// nothing follows the acknowledgement: any further read would fail
	h := newHarness(t, "n", "d", "Y", "")
	a := h.create(t, task("Ann", 5, "first", ""))
	b := h.create(t, task("Bob", 5, "second", ""))

	if err := h.session.Browse(context.Background(), []model.Task{a, b}); err != nil {
		t.Fatalf("Browse() err = %v, want nil", err)
	}
	if h.count(t) != 1 {
		t.Fatalf("Count() = %d, want 1", h.count(t))
	}
	if _, err := h.store.Get(context.Background(), b.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get(deleted) err = %v, want %v", err, store.ErrNotFound)
	}
	if !strings.Contains(h.out.String(), "Entry deleted!") {
		t.Fatalf("delete not acknowledged:\n%s", h.out.String())
	}
}

func TestBrowse_EditRerendersSameTask(t *testing.T) {
	h := newHarness(t, "n", "e", "u", "45", "", "b")
	a := h.create(t, task("Ann", 5, "first", ""))
	b := h.create(t, task("Bob", 5, "second", ""))

	if err := h.session.Browse(context.Background(), []model.Task{a, b}); err != nil {
		t.Fatalf("Browse() err = %v, want nil", err)
	}
	got, err := h.store.Get(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("Get() err = %v, want nil", err)
	}
	if got.Duration != 45 {
		t.Fatalf("Duration = %d, want 45", got.Duration)
	}
	out := h.out.String()
	after := out[strings.Index(out, "Task has been updated."):]
	if !strings.Contains(after, "Title: second") || !strings.Contains(after, "Duration: 45") {
		t.Fatalf("edited task not re-rendered with new value:\n%s", after)
	}
}

func TestBrowse_StaleTaskFailsLoudly(t *testing.T) {
	h := newHarness(t, "d", "y")
	a := h.create(t, task("Ann", 5, "gone", ""))
	if err := h.store.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("Delete() err = %v", err)
	}

	err := h.session.Browse(context.Background(), []model.Task{a})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Browse() err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestBrowse_EmptyListIsNoop(t *testing.T) {
	h := newHarness(t)

	if err := h.session.Browse(context.Background(), nil); err != nil {
		t.Fatalf("Browse(nil) err = %v, want nil", err)
	}
	if h.out.Len() != 0 {
		t.Fatalf("Browse(nil) wrote %q, want nothing", h.out.String())
	}
}
