package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/db"
	"github.com/javiermolinar/rango/internal/pick"
	"github.com/javiermolinar/rango/internal/selection"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// newPicker builds a picker over a two-year universe.
func newPicker(t *testing.T, opts ...selection.PickerOption) *selection.Picker {
	t.Helper()
	bounds, err := selection.NewBounds(
		calendar.NewDate(2026, 1, 1),
		calendar.NewDate(2027, 12, 31),
	)
	if err != nil {
		t.Fatalf("failed to build bounds: %v", err)
	}
	p, err := selection.NewPicker(bounds, opts...)
	if err != nil {
		t.Fatalf("failed to build picker: %v", err)
	}
	return p
}

// TestSelectConfirmPersist walks the full flow: two taps select a
// range, the confirmed dates become a pick, and the pick survives a
// round trip through storage.
func TestSelectConfirmPersist(t *testing.T) {
	repo := openRepo(t)
	picker := newPicker(t)
	ctx := context.Background()

	picker.TapDay(calendar.NewDate(2026, 3, 10))
	picker.TapDay(calendar.NewDate(2026, 3, 14))

	p, err := pick.FromDates(picker.Confirm(), "spring trip")
	if err != nil {
		t.Fatalf("FromDates failed: %v", err)
	}
	if err := repo.SavePick(ctx, p); err != nil {
		t.Fatalf("SavePick failed: %v", err)
	}

	got, err := repo.GetPick(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPick failed: %v", err)
	}
	if got == nil {
		t.Fatal("saved pick not found")
	}
	if got.Start != calendar.NewDate(2026, 3, 10) || got.End != calendar.NewDate(2026, 3, 14) {
		t.Errorf("round trip gave %s .. %s, want 2026-03-10 .. 2026-03-14", got.Start, got.End)
	}
	if got.Note != "spring trip" {
		t.Errorf("note = %q, want %q", got.Note, "spring trip")
	}
	if got.Days() != 5 {
		t.Errorf("Days() = %d, want 5", got.Days())
	}
}

// TestSingleDayPickPersists confirms an open range saves as a one-day
// pick.
func TestSingleDayPickPersists(t *testing.T) {
	repo := openRepo(t)
	picker := newPicker(t)
	ctx := context.Background()

	picker.TapDay(calendar.NewDate(2026, 7, 4))

	p, err := pick.FromDates(picker.Confirm(), "")
	if err != nil {
		t.Fatalf("FromDates failed: %v", err)
	}
	if err := repo.SavePick(ctx, p); err != nil {
		t.Fatalf("SavePick failed: %v", err)
	}

	got, err := repo.GetPick(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPick failed: %v", err)
	}
	if !got.IsSingleDay() {
		t.Errorf("pick %s .. %s should be a single day", got.Start, got.End)
	}
}

// TestYearRelocationFlow reselects a year mid-flight and confirms the
// relocated range persists.
func TestYearRelocationFlow(t *testing.T) {
	repo := openRepo(t)
	picker := newPicker(t)
	ctx := context.Background()

	picker.TapDay(calendar.NewDate(2026, 5, 20))
	picker.TapDay(calendar.NewDate(2026, 5, 25))

	// Moving to 2027 reopens the range at the relocated start.
	r := picker.SelectYear(2027)
	if r.IsClosed() {
		t.Fatal("year relocation should reopen the range")
	}
	if want := calendar.NewDate(2027, 5, 20); r.Start() != want {
		t.Fatalf("relocated start = %s, want %s", r.Start(), want)
	}

	picker.TapDay(calendar.NewDate(2027, 5, 22))
	p, err := pick.FromDates(picker.Confirm(), "moved a year out")
	if err != nil {
		t.Fatalf("FromDates failed: %v", err)
	}
	if err := repo.SavePick(ctx, p); err != nil {
		t.Fatalf("SavePick failed: %v", err)
	}

	got, err := repo.GetPick(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPick failed: %v", err)
	}
	if got.Start != calendar.NewDate(2027, 5, 20) || got.End != calendar.NewDate(2027, 5, 22) {
		t.Errorf("round trip gave %s .. %s, want 2027-05-20 .. 2027-05-22", got.Start, got.End)
	}
}

// TestHistoryListingAndClear exercises list, delete and clear against
// several saved picks.
func TestHistoryListingAndClear(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	ranges := [][2]calendar.Date{
		{calendar.NewDate(2026, 1, 5), calendar.NewDate(2026, 1, 9)},
		{calendar.NewDate(2026, 2, 1), calendar.NewDate(2026, 2, 1)},
		{calendar.NewDate(2026, 4, 10), calendar.NewDate(2026, 4, 20)},
	}
	for _, r := range ranges {
		p := &pick.Pick{Start: r[0], End: r[1]}
		if err := repo.SavePick(ctx, p); err != nil {
			t.Fatalf("SavePick failed: %v", err)
		}
	}

	picks, err := repo.ListPicks(ctx, 0)
	if err != nil {
		t.Fatalf("ListPicks failed: %v", err)
	}
	if len(picks) != 3 {
		t.Fatalf("listed %d picks, want 3", len(picks))
	}

	if err := repo.DeletePick(ctx, picks[0].ID); err != nil {
		t.Fatalf("DeletePick failed: %v", err)
	}

	n, err := repo.ClearPicks(ctx)
	if err != nil {
		t.Fatalf("ClearPicks failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearPicks removed %d, want 2", n)
	}
}
