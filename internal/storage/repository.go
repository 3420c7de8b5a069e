// ABOUTME: Repository interface for session storage.
// ABOUTME: Defines the contract shared by the SQLite and Badger backends.
package storage

import (
	"errors"

	"github.com/scurfo/perfdash/internal/models"
)

// ErrNotFound is returned when no session matches a lookup.
var ErrNotFound = errors.New("session not found")

// ErrAmbiguousPrefix is returned when an ID prefix matches several sessions.
var ErrAmbiguousPrefix = errors.New("ambiguous id prefix")

// Repository defines the storage interface for session data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Session operations
	CreateSession(s *models.Session) error
	GetSession(idOrPrefix string) (*models.Session, error)
	ListSessions(athlete string, limit int) ([]*models.Session, error)
	LatestSession(athlete string) (*models.Session, error)
	ListAthletes() ([]string, error)
	DeleteSession(idOrPrefix string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
