// ABOUTME: Session model and TestType enum for athlete performance data.
// ABOUTME: One session per (athlete, date) with paired left/right measurements.
package models

import (
	"time"

	"github.com/google/uuid"
)

// TestType identifies a left/right paired performance test.
type TestType string

const (
	// Strength
	TestKneeExtension TestType = "knee_extension"
	TestKneeFlexion   TestType = "knee_flexion"
	TestCalfStrength  TestType = "calf_strength"

	// Jump / reactive
	TestJumpHeight TestType = "jump_height"
	TestRSID       TestType = "rsid"
)

// TestUnits maps test types to the unit of their derived metric.
var TestUnits = map[TestType]string{
	TestKneeExtension: "N.m.kg⁻¹",
	TestKneeFlexion:   "N.m.kg⁻¹",
	TestCalfStrength:  "% BW",
	TestJumpHeight:    "cm",
	TestRSID:          "m/s",
}

// AllTestTypes returns all valid test types.
var AllTestTypes = []TestType{
	TestKneeExtension, TestKneeFlexion, TestCalfStrength,
	TestJumpHeight, TestRSID,
}

// IsValidTestType checks if a string is a valid test type.
func IsValidTestType(s string) bool {
	for _, tt := range AllTestTypes {
		if string(tt) == s {
			return true
		}
	}
	return false
}

// Pair holds a left/right measurement pair.
type Pair struct {
	Left  float64 `json:"left" yaml:"left"`
	Right float64 `json:"right" yaml:"right"`
}

// Lift holds paired force readings plus the lever arms they were taken at.
type Lift struct {
	Force Pair `json:"force" yaml:"force"`
	Lever Pair `json:"lever" yaml:"lever"`
}

// Session is one testing session for an athlete. Immutable once recorded.
type Session struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Athlete     string    `json:"athlete" yaml:"athlete"`
	Date        time.Time `json:"date" yaml:"date"`
	DateOfBirth time.Time `json:"date_of_birth" yaml:"date_of_birth"`
	InjuryDate  time.Time `json:"injury_date" yaml:"injury_date"`
	BodyMass    float64   `json:"body_mass" yaml:"body_mass"` // kg

	KneeExtension Lift `json:"knee_extension" yaml:"knee_extension"` // force N, lever m
	KneeFlexion   Lift `json:"knee_flexion" yaml:"knee_flexion"`     // force N, lever m
	CalfForce     Pair `json:"calf_force" yaml:"calf_force"`         // N
	JumpHeight    Pair `json:"jump_height" yaml:"jump_height"`       // cm, single-leg
	RSID          Pair `json:"rsid" yaml:"rsid"`                     // reactive strength index

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NewSession creates a Session with a generated UUID and current timestamp.
func NewSession(athlete string, date time.Time, bodyMass float64) *Session {
	return &Session{
		ID:        uuid.New(),
		Athlete:   athlete,
		Date:      date,
		BodyMass:  bodyMass,
		CreatedAt: time.Now(),
	}
}

// WithBirthDate sets the athlete's date of birth.
func (s *Session) WithBirthDate(t time.Time) *Session {
	s.DateOfBirth = t
	return s
}

// WithInjuryDate sets the injury date the rehab timeline is measured from.
func (s *Session) WithInjuryDate(t time.Time) *Session {
	s.InjuryDate = t
	return s
}
