// ABOUTME: Pure derived-metric functions for athlete performance data.
// ABOUTME: Normalized strength, asymmetry indices, and target percentages.
package engine

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors for the validation failures a computation can hit.
// All are local to the metric being computed and safe to skip past.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDivisionByZero = errors.New("division by zero")
)

// Gravity is standard gravitational acceleration in m/s².
const Gravity = 9.81

// NormalizeTorque converts a raw force reading (N) taken at a lever arm (m)
// into body-mass-normalized torque (N.m/kg).
func NormalizeTorque(force, leverArm, bodyMass float64) (float64, error) {
	if bodyMass <= 0 {
		return 0, fmt.Errorf("%w: body mass must be positive, got %v", ErrInvalidInput, bodyMass)
	}
	return (force * leverArm) / bodyMass, nil
}

// NormalizeCalfStrength converts a raw plantarflexion force (N) into percent
// of bodyweight.
func NormalizeCalfStrength(force, bodyMass float64) (float64, error) {
	if bodyMass <= 0 {
		return 0, fmt.Errorf("%w: body mass must be positive, got %v", ErrInvalidInput, bodyMass)
	}
	return (force / Gravity) / bodyMass * 100, nil
}

// AsymmetryIndex returns the signed percentage difference between a
// left/right pair, relative to the pair mean. Positive means right dominant.
// Swapping the arguments negates the result exactly.
func AsymmetryIndex(left, right float64) (float64, error) {
	if left+right == 0 {
		return 0, fmt.Errorf("%w: symmetric zero pair", ErrDivisionByZero)
	}
	return (right - left) / ((left + right) / 2) * 100, nil
}

// MagnitudeAsymmetry returns the unsigned deficit of the weaker side as a
// percentage of the stronger side.
func MagnitudeAsymmetry(left, right float64) (float64, error) {
	larger := math.Max(left, right)
	if larger == 0 {
		return 0, fmt.Errorf("%w: both sides zero", ErrDivisionByZero)
	}
	return math.Abs(left-right) / larger * 100, nil
}

// PercentOfTarget returns value as a percentage of target, unclamped.
// Values over the target exceed 100; clamping for display is the caller's
// concern (see TargetScore).
func PercentOfTarget(value, target float64) (float64, error) {
	if target <= 0 {
		return 0, fmt.Errorf("%w: target must be positive, got %v", ErrInvalidInput, target)
	}
	return value / target * 100, nil
}

// WeeksSince returns the number of weeks between reference and date.
// Negative when date precedes reference.
func WeeksSince(date, reference time.Time) float64 {
	return daysBetween(reference, date) / 7
}

// AgeYears returns age in fractional years at asOf.
func AgeYears(dateOfBirth, asOf time.Time) float64 {
	return daysBetween(dateOfBirth, asOf) / 365.25
}

func daysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}
