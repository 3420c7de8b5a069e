// ABOUTME: Tests for the pure derived-metric functions.
// ABOUTME: Covers formulas, error cases, antisymmetry, and date math.
package engine

import (
	"errors"
	"math"
	"testing"
	"time"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNormalizeTorque(t *testing.T) {
	got, err := NormalizeTorque(231, 0.3, 70)
	if err != nil {
		t.Fatalf("NormalizeTorque: %v", err)
	}
	if !approxEqual(got, 0.99, 1e-9) {
		t.Errorf("NormalizeTorque(231, 0.3, 70) = %v, want 0.99", got)
	}
}

func TestNormalizeTorqueScalesLinearly(t *testing.T) {
	base, err := NormalizeTorque(150, 0.25, 80)
	if err != nil {
		t.Fatal(err)
	}
	doubledForce, _ := NormalizeTorque(300, 0.25, 80)
	if !approxEqual(doubledForce, 2*base, 1e-9) {
		t.Errorf("doubling force: got %v, want %v", doubledForce, 2*base)
	}
	doubledLever, _ := NormalizeTorque(150, 0.5, 80)
	if !approxEqual(doubledLever, 2*base, 1e-9) {
		t.Errorf("doubling lever: got %v, want %v", doubledLever, 2*base)
	}
	doubledMass, _ := NormalizeTorque(150, 0.25, 160)
	if !approxEqual(doubledMass, base/2, 1e-9) {
		t.Errorf("doubling mass: got %v, want %v", doubledMass, base/2)
	}
}

func TestNormalizeTorqueInvalidMass(t *testing.T) {
	for _, mass := range []float64{0, -70} {
		if _, err := NormalizeTorque(231, 0.3, mass); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("mass %v: err = %v, want ErrInvalidInput", mass, err)
		}
	}
}

func TestNormalizeCalfStrength(t *testing.T) {
	got, err := NormalizeCalfStrength(500, 70)
	if err != nil {
		t.Fatalf("NormalizeCalfStrength: %v", err)
	}
	if !approxEqual(got, 72.84, 0.01) {
		t.Errorf("NormalizeCalfStrength(500, 70) = %v, want ~72.84", got)
	}

	if _, err := NormalizeCalfStrength(500, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero mass: err = %v, want ErrInvalidInput", err)
	}
}

func TestAsymmetryIndex(t *testing.T) {
	tests := []struct {
		name        string
		left, right float64
		want        float64
	}{
		{"right dominant", 10, 20, 33.333333333},
		{"left dominant", 20, 10, -33.333333333},
		{"equal sides", 15, 15, 0},
		{"end to end pair", 0.99, 1.1, 10.526315789},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsymmetryIndex(tt.left, tt.right)
			if err != nil {
				t.Fatalf("AsymmetryIndex(%v, %v): %v", tt.left, tt.right, err)
			}
			if !approxEqual(got, tt.want, 1e-6) {
				t.Errorf("AsymmetryIndex(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestAsymmetryIndexAntisymmetric(t *testing.T) {
	pairs := [][2]float64{{10, 20}, {1.8, 1.7}, {55.2, 58.1}, {0.17, 0.165}}
	for _, p := range pairs {
		forward, err := AsymmetryIndex(p[0], p[1])
		if err != nil {
			t.Fatal(err)
		}
		backward, err := AsymmetryIndex(p[1], p[0])
		if err != nil {
			t.Fatal(err)
		}
		if forward != -backward {
			t.Errorf("AsymmetryIndex(%v, %v) = %v, swap = %v; want exact negation",
				p[0], p[1], forward, backward)
		}
	}
}

func TestAsymmetryIndexZeroPair(t *testing.T) {
	if _, err := AsymmetryIndex(0, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("err = %v, want ErrDivisionByZero", err)
	}
}

func TestMagnitudeAsymmetry(t *testing.T) {
	got, err := MagnitudeAsymmetry(2.9, 3.1)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Abs(2.9-3.1) / 3.1 * 100
	if !approxEqual(got, want, 1e-9) {
		t.Errorf("MagnitudeAsymmetry(2.9, 3.1) = %v, want %v", got, want)
	}

	// Symmetric under swap, unlike the signed index.
	swapped, _ := MagnitudeAsymmetry(3.1, 2.9)
	if got != swapped {
		t.Errorf("swap changed result: %v vs %v", got, swapped)
	}

	if _, err := MagnitudeAsymmetry(0, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("zero pair: err = %v, want ErrDivisionByZero", err)
	}
}

func TestPercentOfTarget(t *testing.T) {
	tests := []struct {
		name          string
		value, target float64
		want          float64
	}{
		{"at target", 3.3, 3.3, 100},
		{"zero value", 0, 2.0, 0},
		{"over target unclamped", 220, 200, 110},
		{"below target", 1.4, 2.0, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PercentOfTarget(tt.value, tt.target)
			if err != nil {
				t.Fatalf("PercentOfTarget(%v, %v): %v", tt.value, tt.target, err)
			}
			if !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("PercentOfTarget(%v, %v) = %v, want %v", tt.value, tt.target, got, tt.want)
			}
		})
	}

	if _, err := PercentOfTarget(5, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero target: err = %v, want ErrInvalidInput", err)
	}
}

func TestWeeksSince(t *testing.T) {
	injury := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got := WeeksSince(injury.AddDate(0, 0, 14), injury)
	if got != 2.0 {
		t.Errorf("14 days = %v weeks, want 2.0", got)
	}

	// Test before injury is representable as negative, not an error.
	got = WeeksSince(injury.AddDate(0, 0, -7), injury)
	if got != -1.0 {
		t.Errorf("-7 days = %v weeks, want -1.0", got)
	}
}

func TestAgeYears(t *testing.T) {
	dob := time.Date(1998, 6, 1, 0, 0, 0, 0, time.UTC)
	asOf := dob.AddDate(0, 0, 9131) // 25 years at 365.25 days/year, minus a bit

	got := AgeYears(dob, asOf)
	if !approxEqual(got, 9131.0/365.25, 1e-9) {
		t.Errorf("AgeYears = %v, want %v", got, 9131.0/365.25)
	}
}
