// ABOUTME: Tests for perfdash configuration.
// ABOUTME: Covers defaults, path expansion, and the storage factory.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scurfo/perfdash/internal/models"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %s, want sqlite", got)
	}

	cfg.Backend = "badger"
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %s, want badger", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenStorageBackends(t *testing.T) {
	for _, backend := range []string{"sqlite", "badger"} {
		t.Run(backend, func(t *testing.T) {
			cfg := &Config{Backend: backend, DataDir: t.TempDir()}
			repo, err := cfg.OpenStorage()
			if err != nil {
				t.Fatalf("OpenStorage: %v", err)
			}
			defer repo.Close()

			if _, err := repo.ListAthletes(); err != nil {
				t.Errorf("ListAthletes on fresh store: %v", err)
			}
		})
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestLoadTargets(t *testing.T) {
	cfg := &Config{}
	table, err := cfg.LoadTargets()
	if err != nil {
		t.Fatalf("LoadTargets: %v", err)
	}
	if tgt, err := table.Get(models.TestKneeExtension); err != nil || tgt.Value != 3.3 {
		t.Errorf("default knee_extension = %+v (%v), want 3.3", tgt, err)
	}

	path := filepath.Join(t.TempDir(), "targets.yaml")
	if err := os.WriteFile(path, []byte("knee_extension:\n  value: 3.6\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg.Targets = path
	table, err = cfg.LoadTargets()
	if err != nil {
		t.Fatalf("LoadTargets with override: %v", err)
	}
	if tgt, _ := table.Get(models.TestKneeExtension); tgt.Value != 3.6 {
		t.Errorf("overridden knee_extension = %v, want 3.6", tgt.Value)
	}
}
