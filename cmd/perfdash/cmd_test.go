// ABOUTME: Tests for CLI helpers.
// ABOUTME: Covers padRight and session lookup by date.
package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/scurfo/perfdash/internal/models"
	"github.com/scurfo/perfdash/internal/storage"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"jane", 6, "jane  "},
		{"jane", 4, "jane"},
		{"longername", 4, "longername"},
	}

	for _, tt := range tests {
		if got := padRight(tt.in, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestFindSession(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "perfdash.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	oldRepo := repo
	repo = db
	defer func() { repo = oldRepo }()

	older := models.NewSession("jane", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 70)
	newer := models.NewSession("jane", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 70)
	for _, s := range []*models.Session{older, newer} {
		if err := db.CreateSession(s); err != nil {
			t.Fatal(err)
		}
	}

	got, err := findSession("jane", "")
	if err != nil {
		t.Fatalf("findSession latest: %v", err)
	}
	if got.ID != newer.ID {
		t.Errorf("latest = %s, want %s", got.ID, newer.ID)
	}

	got, err = findSession("jane", "2024-02-01")
	if err != nil {
		t.Fatalf("findSession by date: %v", err)
	}
	if got.ID != older.ID {
		t.Errorf("by date = %s, want %s", got.ID, older.ID)
	}

	if _, err := findSession("jane", "2020-01-01"); err == nil {
		t.Error("expected error for missing date")
	}
	if _, err := findSession("jane", "01/02/2024"); err == nil {
		t.Error("expected error for bad date format")
	}
}
