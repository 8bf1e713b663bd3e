package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/pick"
)

func TestSavePick(t *testing.T) {
	repo := newTestRepo(t)

	p := &pick.Pick{
		Start: calendar.NewDate(2025, 1, 9),
		End:   calendar.NewDate(2025, 1, 12),
		Note:  "team offsite",
	}

	if err := repo.SavePick(context.Background(), p); err != nil {
		t.Fatalf("SavePick failed: %v", err)
	}

	if p.ID == 0 {
		t.Error("expected ID to be set after insert")
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set on save")
	}
}

func TestSavePick_Inverted(t *testing.T) {
	repo := newTestRepo(t)

	p := &pick.Pick{
		Start: calendar.NewDate(2025, 1, 12),
		End:   calendar.NewDate(2025, 1, 9),
	}

	err := repo.SavePick(context.Background(), p)
	if !errors.Is(err, pick.ErrInvertedPick) {
		t.Fatalf("SavePick error = %v, want ErrInvertedPick", err)
	}
}

func TestGetPick(t *testing.T) {
	repo := newTestRepo(t)

	saved := &pick.Pick{
		Start:     calendar.NewDate(2025, 2, 1),
		End:       calendar.NewDate(2025, 2, 1),
		Note:      "single day",
		CreatedAt: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
	}
	if err := repo.SavePick(context.Background(), saved); err != nil {
		t.Fatalf("SavePick failed: %v", err)
	}

	got, err := repo.GetPick(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("GetPick failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetPick returned nil for existing pick")
	}
	if got.Start != saved.Start || got.End != saved.End {
		t.Errorf("GetPick dates = %v..%v, want %v..%v", got.Start, got.End, saved.Start, saved.End)
	}
	if got.Note != saved.Note {
		t.Errorf("GetPick note = %q, want %q", got.Note, saved.Note)
	}
	if !got.IsSingleDay() {
		t.Error("expected single-day pick")
	}
}

func TestGetPick_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetPick(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetPick failed: %v", err)
	}
	if got != nil {
		t.Errorf("GetPick(42) = %v, want nil", got)
	}
}

func TestListPicks(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		p := &pick.Pick{
			Start:     calendar.NewDate(2025, 3, 1+i),
			End:       calendar.NewDate(2025, 3, 5+i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.SavePick(context.Background(), p); err != nil {
			t.Fatalf("SavePick failed: %v", err)
		}
	}

	picks, err := repo.ListPicks(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListPicks failed: %v", err)
	}
	if len(picks) != 3 {
		t.Fatalf("ListPicks returned %d picks, want 3", len(picks))
	}

	// Newest first.
	if picks[0].Start != calendar.NewDate(2025, 3, 3) {
		t.Errorf("first listed pick starts %v, want 2025-03-03", picks[0].Start)
	}

	limited, err := repo.ListPicks(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListPicks with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListPicks(2) returned %d picks, want 2", len(limited))
	}
}

func TestDeletePick(t *testing.T) {
	repo := newTestRepo(t)

	p := &pick.Pick{
		Start: calendar.NewDate(2025, 4, 1),
		End:   calendar.NewDate(2025, 4, 2),
	}
	if err := repo.SavePick(context.Background(), p); err != nil {
		t.Fatalf("SavePick failed: %v", err)
	}

	if err := repo.DeletePick(context.Background(), p.ID); err != nil {
		t.Fatalf("DeletePick failed: %v", err)
	}

	got, err := repo.GetPick(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetPick failed: %v", err)
	}
	if got != nil {
		t.Error("pick still present after delete")
	}

	if err := repo.DeletePick(context.Background(), p.ID); err == nil {
		t.Error("deleting a missing pick should fail")
	}
}

func TestClearPicks(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 2; i++ {
		p := &pick.Pick{
			Start: calendar.NewDate(2025, 5, 1+i),
			End:   calendar.NewDate(2025, 5, 1+i),
		}
		if err := repo.SavePick(context.Background(), p); err != nil {
			t.Fatalf("SavePick failed: %v", err)
		}
	}

	n, err := repo.ClearPicks(context.Background())
	if err != nil {
		t.Fatalf("ClearPicks failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearPicks removed %d picks, want 2", n)
	}

	picks, err := repo.ListPicks(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListPicks failed: %v", err)
	}
	if len(picks) != 0 {
		t.Errorf("ListPicks after clear returned %d picks, want 0", len(picks))
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
