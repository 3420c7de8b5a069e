// ABOUTME: Session-level report assembly from the pure metric functions.
// ABOUTME: Derives all test metrics, asymmetries, bands, and target scores.
package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/scurfo/perfdash/internal/models"
	"github.com/scurfo/perfdash/internal/targets"
)

// Band is a traffic-light indicator for a result.
type Band string

const (
	BandGreen Band = "green"
	BandAmber Band = "amber"
	BandRed   Band = "red"
)

// AsymmetryBand classifies an asymmetry percentage by magnitude.
// Under 10% is green, under 20% amber, anything larger red.
func AsymmetryBand(percent float64) Band {
	abs := math.Abs(percent)
	switch {
	case abs < targets.AsymmetryAmber:
		return BandGreen
	case abs < targets.AsymmetryRed:
		return BandAmber
	default:
		return BandRed
	}
}

// TargetBand classifies a value against its target. At or above the target
// is green, at or above threshold*target amber, below that red.
func TargetBand(value, target, threshold float64) Band {
	switch {
	case value >= target:
		return BandGreen
	case value >= target*threshold:
		return BandAmber
	default:
		return BandRed
	}
}

// TargetScore carries both the true percent-of-target and the
// display-clamped variant, so renderers can choose which to show.
type TargetScore struct {
	Raw       float64 `json:"raw" yaml:"raw"`             // unclamped percent
	Clamped   float64 `json:"clamped" yaml:"clamped"`     // capped at 100 for gauges
	Remaining float64 `json:"remaining" yaml:"remaining"` // max(0, target-value), gauge remainder
	Band      Band    `json:"band" yaml:"band"`
}

// NewTargetScore scores a value against a target.
func NewTargetScore(value float64, tgt targets.Target) (TargetScore, error) {
	raw, err := PercentOfTarget(value, tgt.Value)
	if err != nil {
		return TargetScore{}, err
	}
	return TargetScore{
		Raw:       raw,
		Clamped:   math.Min(100, raw),
		Remaining: math.Max(0, tgt.Value-value),
		Band:      TargetBand(value, tgt.Value, tgt.GetThreshold()),
	}, nil
}

// SideScore is one side's derived metric with its target score.
type SideScore struct {
	Metric models.Metric `json:"metric" yaml:"metric"`
	Score  TargetScore   `json:"score" yaml:"score"`
}

// TestReport holds both sides of one test plus the between-side comparison.
// Asymmetry is nil when it is undefined for the pair.
type TestReport struct {
	Test          models.TestType `json:"test" yaml:"test"`
	Left          SideScore       `json:"left" yaml:"left"`
	Right         SideScore       `json:"right" yaml:"right"`
	Asymmetry     *float64        `json:"asymmetry,omitempty" yaml:"asymmetry,omitempty"`
	AsymmetryBand Band            `json:"asymmetry_band,omitempty" yaml:"asymmetry_band,omitempty"`
}

// SessionReport is the full derived output for one session.
type SessionReport struct {
	Athlete          string        `json:"athlete" yaml:"athlete"`
	Date             time.Time     `json:"date" yaml:"date"`
	AgeYears         float64       `json:"age_years" yaml:"age_years"`
	WeeksSinceInjury float64       `json:"weeks_since_injury" yaml:"weeks_since_injury"`
	Tests            []*TestReport `json:"tests" yaml:"tests"`
	Problems         []string      `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// Test returns the report for one test type, or nil if absent.
func (r *SessionReport) Test(tt models.TestType) *TestReport {
	for _, t := range r.Tests {
		if t.Test == tt {
			return t
		}
	}
	return nil
}

// Metrics flattens the report into a name -> metric map, one entry per side
// plus one per asymmetry, for consumers that want a flat table.
func (r *SessionReport) Metrics() map[string]models.Metric {
	out := make(map[string]models.Metric)
	for _, t := range r.Tests {
		out[string(t.Test)+"_left"] = t.Left.Metric
		out[string(t.Test)+"_right"] = t.Right.Metric
		if t.Asymmetry != nil {
			out[string(t.Test)+"_asymmetry"] = models.Metric{Value: *t.Asymmetry, Unit: "%"}
		}
	}
	return out
}

// ComputeSession derives the full report for one session. A non-positive
// body mass fails the whole session; a degenerate zero pair only skips that
// pair's asymmetry and records the reason in Problems.
func ComputeSession(s *models.Session, table targets.Table) (*SessionReport, error) {
	if s.BodyMass <= 0 {
		return nil, fmt.Errorf("%w: session %s: body mass must be positive, got %v",
			ErrInvalidInput, s.ID, s.BodyMass)
	}

	report := &SessionReport{
		Athlete: s.Athlete,
		Date:    s.Date,
	}
	if !s.DateOfBirth.IsZero() {
		report.AgeYears = AgeYears(s.DateOfBirth, s.Date)
	}
	if !s.InjuryDate.IsZero() {
		report.WeeksSinceInjury = WeeksSince(s.Date, s.InjuryDate)
	}

	for _, tt := range models.AllTestTypes {
		left, right, err := derivePair(s, tt)
		if err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("%s: %v", tt, err))
			continue
		}

		tr := &TestReport{
			Test:  tt,
			Left:  SideScore{Metric: models.Metric{Value: left, Unit: models.TestUnits[tt]}},
			Right: SideScore{Metric: models.Metric{Value: right, Unit: models.TestUnits[tt]}},
		}

		if tgt, err := table.Get(tt); err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("%s: %v", tt, err))
		} else {
			if tr.Left.Score, err = NewTargetScore(left, tgt); err != nil {
				report.Problems = append(report.Problems, fmt.Sprintf("%s left: %v", tt, err))
			}
			if tr.Right.Score, err = NewTargetScore(right, tgt); err != nil {
				report.Problems = append(report.Problems, fmt.Sprintf("%s right: %v", tt, err))
			}
		}

		if asym, err := AsymmetryIndex(left, right); err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("%s: %v", tt, err))
		} else {
			tr.Asymmetry = &asym
			tr.AsymmetryBand = AsymmetryBand(asym)
		}

		report.Tests = append(report.Tests, tr)
	}

	return report, nil
}

// derivePair maps one test's raw measurements to its derived left/right pair.
func derivePair(s *models.Session, tt models.TestType) (left, right float64, err error) {
	switch tt {
	case models.TestKneeExtension:
		return deriveTorque(s.KneeExtension, s.BodyMass)
	case models.TestKneeFlexion:
		return deriveTorque(s.KneeFlexion, s.BodyMass)
	case models.TestCalfStrength:
		if left, err = NormalizeCalfStrength(s.CalfForce.Left, s.BodyMass); err != nil {
			return 0, 0, err
		}
		right, err = NormalizeCalfStrength(s.CalfForce.Right, s.BodyMass)
		return left, right, err
	case models.TestJumpHeight:
		return s.JumpHeight.Left, s.JumpHeight.Right, nil
	case models.TestRSID:
		return s.RSID.Left, s.RSID.Right, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown test type %q", ErrInvalidInput, tt)
	}
}

func deriveTorque(l models.Lift, bodyMass float64) (left, right float64, err error) {
	if left, err = NormalizeTorque(l.Force.Left, l.Lever.Left, bodyMass); err != nil {
		return 0, 0, err
	}
	right, err = NormalizeTorque(l.Force.Right, l.Lever.Right, bodyMass)
	return left, right, err
}

// ComputeTable derives reports for a whole table of sessions. Sessions that
// fail validation are skipped; their errors are joined and returned alongside
// the reports that did compute.
func ComputeTable(sessions []*models.Session, table targets.Table) ([]*SessionReport, error) {
	var reports []*SessionReport
	var errs []error
	for _, s := range sessions {
		r, err := ComputeSession(s, table)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reports = append(reports, r)
	}
	return reports, errors.Join(errs...)
}
