// ABOUTME: Clinical target table for performance tests.
// ABOUTME: Single source of truth for targets, thresholds, and asymmetry bands.
package targets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scurfo/perfdash/internal/models"
)

// Target is the clinical goal for one test, with the fraction of the goal
// below which a result drops from amber to red.
type Target struct {
	Value     float64 `yaml:"value"`
	Unit      string  `yaml:"unit"`
	Threshold float64 `yaml:"threshold,omitempty"` // fraction of Value, defaults to DefaultThreshold
}

// DefaultThreshold is the amber-zone cutoff as a fraction of the target.
const DefaultThreshold = 0.7

// Asymmetry band cutoffs in percent of the larger side.
const (
	AsymmetryAmber = 10.0
	AsymmetryRed   = 20.0
)

// Table maps each test type to its target.
type Table map[models.TestType]Target

// Defaults returns the built-in target table.
func Defaults() Table {
	return Table{
		models.TestKneeExtension: {Value: 3.3, Unit: "N.m.kg⁻¹"},
		models.TestKneeFlexion:   {Value: 2.0, Unit: "N.m.kg⁻¹"},
		models.TestCalfStrength:  {Value: 200, Unit: "% BW"},
		models.TestJumpHeight:    {Value: 17.0, Unit: "cm"},
		models.TestRSID:          {Value: 0.52, Unit: "m/s"},
	}
}

// Get returns the target for a test type.
func (t Table) Get(tt models.TestType) (Target, error) {
	tgt, ok := t[tt]
	if !ok {
		return Target{}, fmt.Errorf("no target defined for test type %q", tt)
	}
	return tgt, nil
}

// GetThreshold returns the amber cutoff for a target, applying the default
// when the table entry does not set one.
func (tgt Target) GetThreshold() float64 {
	if tgt.Threshold > 0 {
		return tgt.Threshold
	}
	return DefaultThreshold
}

// Load reads a target table from a YAML file and overlays it on the
// defaults, so a partial file only overrides the tests it names.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	var overrides map[string]Target
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse targets file: %w", err)
	}

	table := Defaults()
	for name, tgt := range overrides {
		if !models.IsValidTestType(name) {
			return nil, fmt.Errorf("unknown test type in targets file: %q", name)
		}
		if tgt.Value <= 0 {
			return nil, fmt.Errorf("target for %q must be positive, got %v", name, tgt.Value)
		}
		if tgt.Unit == "" {
			tgt.Unit = models.TestUnits[models.TestType(name)]
		}
		table[models.TestType(name)] = tgt
	}
	return table, nil
}
