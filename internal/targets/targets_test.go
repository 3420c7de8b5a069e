// ABOUTME: Tests for the clinical target table.
// ABOUTME: Covers defaults, YAML overlay loading, and validation errors.
package targets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scurfo/perfdash/internal/models"
)

func TestDefaults(t *testing.T) {
	table := Defaults()

	tests := []struct {
		testType models.TestType
		want     float64
	}{
		{models.TestKneeExtension, 3.3},
		{models.TestKneeFlexion, 2.0},
		{models.TestCalfStrength, 200},
		{models.TestJumpHeight, 17.0},
		{models.TestRSID, 0.52},
	}

	for _, tt := range tests {
		t.Run(string(tt.testType), func(t *testing.T) {
			tgt, err := table.Get(tt.testType)
			if err != nil {
				t.Fatalf("Get(%s): %v", tt.testType, err)
			}
			if tgt.Value != tt.want {
				t.Errorf("target = %v, want %v", tgt.Value, tt.want)
			}
			if tgt.GetThreshold() != DefaultThreshold {
				t.Errorf("threshold = %v, want %v", tgt.GetThreshold(), DefaultThreshold)
			}
		})
	}
}

func TestGetUnknownType(t *testing.T) {
	table := Defaults()
	if _, err := table.Get(models.TestType("bench_press")); err == nil {
		t.Error("expected error for unknown test type")
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	content := `knee_extension:
  value: 3.5
  threshold: 0.8
jump_height:
  value: 20
  unit: cm
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ke, _ := table.Get(models.TestKneeExtension)
	if ke.Value != 3.5 {
		t.Errorf("knee_extension = %v, want 3.5", ke.Value)
	}
	if ke.GetThreshold() != 0.8 {
		t.Errorf("knee_extension threshold = %v, want 0.8", ke.GetThreshold())
	}
	if ke.Unit != "N.m.kg⁻¹" {
		t.Errorf("knee_extension unit = %q, want default unit", ke.Unit)
	}

	// Unnamed entries keep their defaults.
	kf, _ := table.Get(models.TestKneeFlexion)
	if kf.Value != 2.0 {
		t.Errorf("knee_flexion = %v, want default 2.0", kf.Value)
	}
}

func TestLoadRejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	if err := os.WriteFile(path, []byte("bench_press:\n  value: 100\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown test type")
	}
}

func TestLoadRejectsNonPositiveTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	if err := os.WriteFile(path, []byte("rsid:\n  value: 0\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for non-positive target")
	}
}
