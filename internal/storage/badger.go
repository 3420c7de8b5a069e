// ABOUTME: Badger key-value backend for session storage.
// ABOUTME: JSON-encoded sessions under session:<uuid> keys.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v3"
	"github.com/scurfo/perfdash/internal/models"
)

const sessionPrefix = "session:"

// BadgerStore implements Repository on top of a local Badger database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates a Badger database in the given directory.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (b *BadgerStore) Close() error {
	return b.db.Close()
}

// CreateSession stores a new session.
func (b *BadgerStore) CreateSession(s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sessionPrefix+s.ID.String()), data)
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID or ID prefix.
func (b *BadgerStore) GetSession(idOrPrefix string) (*models.Session, error) {
	var matches []*models.Session
	err := b.scanPrefix(sessionPrefix+idOrPrefix, func(s *models.Session) {
		matches = append(matches, s)
	})
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s matches %d sessions", ErrAmbiguousPrefix, idOrPrefix, len(matches))
	}
}

// ListSessions retrieves sessions, optionally filtered by athlete,
// sorted by date descending.
func (b *BadgerStore) ListSessions(athlete string, limit int) ([]*models.Session, error) {
	var sessions []*models.Session
	err := b.scanPrefix(sessionPrefix, func(s *models.Session) {
		if athlete == "" || s.Athlete == athlete {
			sessions = append(sessions, s)
		}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// LatestSession returns the most recent session for an athlete.
func (b *BadgerStore) LatestSession(athlete string) (*models.Session, error) {
	sessions, err := b.ListSessions(athlete, 1)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("%w: no sessions for athlete %q", ErrNotFound, athlete)
	}
	return sessions[0], nil
}

// ListAthletes returns the distinct athlete names, sorted.
func (b *BadgerStore) ListAthletes() ([]string, error) {
	seen := make(map[string]bool)
	err := b.scanPrefix(sessionPrefix, func(s *models.Session) {
		seen[s.Athlete] = true
	})
	if err != nil {
		return nil, err
	}

	athletes := make([]string, 0, len(seen))
	for a := range seen {
		athletes = append(athletes, a)
	}
	sort.Strings(athletes)
	return athletes, nil
}

// DeleteSession removes a session by ID or prefix.
func (b *BadgerStore) DeleteSession(idOrPrefix string) error {
	s, err := b.GetSession(idOrPrefix)
	if err != nil {
		return err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionPrefix + s.ID.String()))
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// GetAllData retrieves all data for export.
func (b *BadgerStore) GetAllData() (*ExportData, error) {
	sessions, err := b.ListSessions("", 0)
	if err != nil {
		return nil, err
	}
	return newExportData(sessions), nil
}

// ImportData imports data from an export file, skipping duplicates by ID.
func (b *BadgerStore) ImportData(data *ExportData) error {
	for _, s := range data.Sessions {
		key := []byte(sessionPrefix + s.ID.String())
		exists := false
		err := b.db.View(func(txn *badger.Txn) error {
			_, err := txn.Get(key)
			if err == nil {
				exists = true
				return nil
			}
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		})
		if err != nil {
			return fmt.Errorf("import session %s: %w", s.ID, err)
		}
		if exists {
			continue
		}
		if err := b.CreateSession(s); err != nil {
			return fmt.Errorf("import session %s: %w", s.ID, err)
		}
	}
	return nil
}

// scanPrefix decodes every session whose key starts with prefix.
func (b *BadgerStore) scanPrefix(prefix string, fn func(*models.Session)) error {
	// Prefix matching happens on the raw key, so an ID prefix works the
	// same way it does in the SQLite backend's LIKE query.
	if !strings.HasPrefix(prefix, sessionPrefix) {
		prefix = sessionPrefix + prefix
	}

	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			if !bytes.HasPrefix(item.Key(), []byte(prefix)) {
				continue
			}
			data, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			var s models.Session
			if err := json.Unmarshal(data, &s); err != nil {
				return fmt.Errorf("decode session %s: %w", item.Key(), err)
			}
			fn(&s)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan sessions: %w", err)
	}
	return nil
}
