package worklog

import (
	"context"
	"strings"
	"testing"
)

func TestEdit_ChangesExactlyOneField(t *testing.T) {
	h := newHarness(t, "x", "t", "Renamed", "")
	a := h.create(t, task("Ann", 5, "Original", "notes"))

	edited, err := h.session.Edit(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Edit() err = %v, want nil", err)
	}
	if !edited {
		t.Fatal("Edit() = false, want true")
	}
	got, err := h.store.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Get() err = %v, want nil", err)
	}
	if got.Title != "Renamed" || got.Employee != "Ann" || got.Duration != 5 || got.Notes != "notes" {
		t.Fatalf("after Edit() = %+v, want only the title changed", got)
	}
	if !strings.Contains(h.out.String(), "Choice not recognized. Try again.") {
		t.Fatalf("unknown field not rejected:\n%s", h.out.String())
	}
}

func TestEdit_Date(t *testing.T) {
	h := newHarness(t, "d", "02/30/2018", "01/01/2018", "")
	a := h.create(t, task("Ann", 5, "t", ""))

	if _, err := h.session.Edit(context.Background(), a.ID); err != nil {
		t.Fatalf("Edit() err = %v, want nil", err)
	}
	got, err := h.store.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Get() err = %v, want nil", err)
	}
	if got.Date() != "01/01/2018" {
		t.Fatalf("Date() = %s, want 01/01/2018", got.Date())
	}
}

func TestEdit_FarDateRoundTrips(t *testing.T) {
	h := newHarness(t, "d", "01/01/3000", "")
	a := h.create(t, task("Ann", 5, "t", ""))

	if _, err := h.session.Edit(context.Background(), a.ID); err != nil {
		t.Fatalf("Edit() err = %v, want nil", err)
	}
	got, err := h.store.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Get() err = %v, want nil", err)
	}
	if got.Date() != "01/01/3000" {
		t.Fatalf("Date() = %s, want 01/01/3000", got.Date())
	}
}

func TestEdit_BackChangesNothing(t *testing.T) {
	h := newHarness(t, "b")
	a := h.create(t, task("Ann", 5, "t", ""))

	edited, err := h.session.Edit(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Edit() err = %v, want nil", err)
	}
	if edited {
		t.Fatal("Edit() = true, want false")
	}
	got, _ := h.store.Get(context.Background(), a.ID)
	if got != a {
		t.Fatalf("after back = %+v, want %+v", got, a)
	}
	if strings.Contains(h.out.String(), "Task has been updated.") {
		t.Fatalf("back acknowledged an update:\n%s", h.out.String())
	}
}
