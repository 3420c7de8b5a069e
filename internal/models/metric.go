// ABOUTME: Metric value type returned by the derived-metrics engine.
// ABOUTME: A unit-tagged scalar, the output shape consumed by renderers.
package models

// Metric is a derived, unit-normalized scalar.
type Metric struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}
