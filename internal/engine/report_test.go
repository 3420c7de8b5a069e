// ABOUTME: Tests for session report assembly and indicator bands.
// ABOUTME: Covers the end-to-end derivation scenario and degenerate pairs.
package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/scurfo/perfdash/internal/models"
	"github.com/scurfo/perfdash/internal/targets"
)

func sampleSession() *models.Session {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	s := models.NewSession("jane", date, 70).
		WithBirthDate(time.Date(1998, 6, 1, 0, 0, 0, 0, time.UTC)).
		WithInjuryDate(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	s.KneeExtension = models.Lift{
		Force: models.Pair{Left: 231, Right: 256.67},
		Lever: models.Pair{Left: 0.3, Right: 0.3},
	}
	s.KneeFlexion = models.Lift{
		Force: models.Pair{Left: 420, Right: 406},
		Lever: models.Pair{Left: 0.3, Right: 0.3},
	}
	s.CalfForce = models.Pair{Left: 1236, Right: 1201}
	s.JumpHeight = models.Pair{Left: 14.2, Right: 15.1}
	s.RSID = models.Pair{Left: 0.44, Right: 0.47}
	return s
}

func TestComputeSession(t *testing.T) {
	report, err := ComputeSession(sampleSession(), targets.Defaults())
	if err != nil {
		t.Fatalf("ComputeSession: %v", err)
	}

	ke := report.Test(models.TestKneeExtension)
	if ke == nil {
		t.Fatal("missing knee_extension report")
	}
	if !approxEqual(ke.Left.Metric.Value, 0.99, 1e-9) {
		t.Errorf("knee extension left = %v, want 0.99", ke.Left.Metric.Value)
	}
	if ke.Left.Metric.Unit != "N.m.kg⁻¹" {
		t.Errorf("unit = %q, want N.m.kg⁻¹", ke.Left.Metric.Unit)
	}
	if ke.Asymmetry == nil {
		t.Fatal("expected asymmetry for knee extension")
	}
	if !approxEqual(*ke.Asymmetry, 10.52, 0.05) {
		t.Errorf("knee extension asymmetry = %v, want ~10.52", *ke.Asymmetry)
	}
	if ke.AsymmetryBand != BandAmber {
		t.Errorf("asymmetry band = %s, want amber", ke.AsymmetryBand)
	}

	if got := ke.Left.Score.Raw; !approxEqual(got, 0.99/3.3*100, 1e-9) {
		t.Errorf("left raw score = %v, want %v", got, 0.99/3.3*100)
	}

	if report.WeeksSinceInjury <= 0 {
		t.Errorf("weeks since injury = %v, want positive", report.WeeksSinceInjury)
	}
	if report.AgeYears < 25 || report.AgeYears > 26 {
		t.Errorf("age = %v, want between 25 and 26", report.AgeYears)
	}
	if len(report.Problems) != 0 {
		t.Errorf("unexpected problems: %v", report.Problems)
	}
}

func TestComputeSessionInvalidBodyMass(t *testing.T) {
	s := sampleSession()
	s.BodyMass = 0
	if _, err := ComputeSession(s, targets.Defaults()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestComputeSessionZeroPairSkipsAsymmetry(t *testing.T) {
	s := sampleSession()
	s.RSID = models.Pair{}

	report, err := ComputeSession(s, targets.Defaults())
	if err != nil {
		t.Fatalf("ComputeSession: %v", err)
	}

	rsid := report.Test(models.TestRSID)
	if rsid == nil {
		t.Fatal("rsid report should still be present")
	}
	if rsid.Asymmetry != nil {
		t.Errorf("asymmetry = %v, want nil for zero pair", *rsid.Asymmetry)
	}
	if len(report.Problems) == 0 {
		t.Error("expected a recorded problem for the zero pair")
	}
	// The degenerate pair must surface as an error note, never as NaN.
	for name, m := range report.Metrics() {
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			t.Errorf("metric %s is %v", name, m.Value)
		}
	}
}

func TestTargetScoreOverTarget(t *testing.T) {
	score, err := NewTargetScore(220, targets.Target{Value: 200, Unit: "% BW"})
	if err != nil {
		t.Fatal(err)
	}
	if score.Raw != 110 {
		t.Errorf("Raw = %v, want 110", score.Raw)
	}
	if score.Clamped != 100 {
		t.Errorf("Clamped = %v, want 100", score.Clamped)
	}
	if score.Remaining != 0 {
		t.Errorf("Remaining = %v, want 0", score.Remaining)
	}
	if score.Band != BandGreen {
		t.Errorf("Band = %s, want green", score.Band)
	}
}

func TestTargetBandThresholds(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Band
	}{
		{"at target", 3.3, BandGreen},
		{"above target", 3.5, BandGreen},
		{"at threshold", 2.31, BandAmber},
		{"below threshold", 2.0, BandRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetBand(tt.value, 3.3, 0.7); got != tt.want {
				t.Errorf("TargetBand(%v, 3.3, 0.7) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestAsymmetryBands(t *testing.T) {
	tests := []struct {
		percent float64
		want    Band
	}{
		{0, BandGreen},
		{9.9, BandGreen},
		{-9.9, BandGreen},
		{10, BandAmber},
		{19.9, BandAmber},
		{20, BandRed},
		{-35, BandRed},
	}

	for _, tt := range tests {
		if got := AsymmetryBand(tt.percent); got != tt.want {
			t.Errorf("AsymmetryBand(%v) = %s, want %s", tt.percent, got, tt.want)
		}
	}
}

func TestComputeTablePartialFailure(t *testing.T) {
	good := sampleSession()
	bad := sampleSession()
	bad.BodyMass = -1

	reports, err := ComputeTable([]*models.Session{good, bad}, targets.Defaults())
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want to wrap ErrInvalidInput", err)
	}
}

func TestSessionReportMetricsMap(t *testing.T) {
	report, err := ComputeSession(sampleSession(), targets.Defaults())
	if err != nil {
		t.Fatal(err)
	}

	metrics := report.Metrics()
	if m, ok := metrics["calf_strength_left"]; !ok || m.Unit != "% BW" {
		t.Errorf("calf_strength_left = %+v, want present with %% BW unit", m)
	}
	if _, ok := metrics["jump_height_asymmetry"]; !ok {
		t.Error("missing jump_height_asymmetry")
	}
}
