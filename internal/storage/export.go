// ABOUTME: Export and import functionality for session data.
// ABOUTME: Supports JSON and YAML export formats.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/scurfo/perfdash/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for session data.
type ExportData struct {
	Version    string            `json:"version" yaml:"version"`
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool       string            `json:"tool" yaml:"tool"`
	Sessions   []*models.Session `json:"sessions" yaml:"sessions"`
}

func newExportData(sessions []*models.Session) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "perfdash",
		Sessions:   sessions,
	}
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	sessions, err := d.ListSessions("", 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return newExportData(sessions), nil
}

// ImportData imports data from an export file, skipping duplicates by ID.
func (d *DB) ImportData(data *ExportData) error {
	for _, s := range data.Sessions {
		_, err := d.GetSession(s.ID.String())
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("import session %s: %w", s.ID, err)
		}
		if err := d.CreateSession(s); err != nil {
			return fmt.Errorf("import session %s: %w", s.ID, err)
		}
	}
	return nil
}

// ExportJSON serializes a repository's full contents as indented JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return out, nil
}

// ExportYAML serializes a repository's full contents as YAML.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

// ImportJSON reads a JSON export into a repository.
func ImportJSON(repo Repository, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return repo.ImportData(&data)
}
