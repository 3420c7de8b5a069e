// ABOUTME: Session CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for sessions.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scurfo/perfdash/internal/models"
)

const sessionColumns = `id, athlete, date, date_of_birth, injury_date, body_mass,
	knee_extension_force_left, knee_extension_lever_left,
	knee_extension_force_right, knee_extension_lever_right,
	knee_flexion_force_left, knee_flexion_lever_left,
	knee_flexion_force_right, knee_flexion_lever_right,
	calf_force_left, calf_force_right,
	sl_jump_height_left, sl_jump_height_right,
	rsid_left, rsid_right, created_at`

// CreateSession stores a new session in the database.
func (d *DB) CreateSession(s *models.Session) error {
	query := `
		INSERT INTO sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		s.ID.String(),
		s.Athlete,
		s.Date.Format(time.RFC3339),
		nullableDate(s.DateOfBirth),
		nullableDate(s.InjuryDate),
		s.BodyMass,
		s.KneeExtension.Force.Left, s.KneeExtension.Lever.Left,
		s.KneeExtension.Force.Right, s.KneeExtension.Lever.Right,
		s.KneeFlexion.Force.Left, s.KneeFlexion.Lever.Left,
		s.KneeFlexion.Force.Right, s.KneeFlexion.Lever.Right,
		s.CalfForce.Left, s.CalfForce.Right,
		s.JumpHeight.Left, s.JumpHeight.Right,
		s.RSID.Left, s.RSID.Right,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID or ID prefix.
func (d *DB) GetSession(idOrPrefix string) (*models.Session, error) {
	id, err := d.resolveSessionID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	return scanSession(d.db.QueryRow(query, id))
}

// ListSessions retrieves sessions, optionally filtered by athlete.
// Results are sorted by date descending (most recent first).
func (d *DB) ListSessions(athlete string, limit int) ([]*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions`
	var args []interface{}

	if athlete != "" {
		query += " WHERE athlete = ?"
		args = append(args, athlete)
	}
	query += " ORDER BY date DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// LatestSession returns the most recent session for an athlete.
func (d *DB) LatestSession(athlete string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE athlete = ? ORDER BY date DESC LIMIT 1`
	s, err := scanSession(d.db.QueryRow(query, athlete))
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: no sessions for athlete %q", ErrNotFound, athlete)
	}
	return s, err
}

// ListAthletes returns the distinct athlete names, sorted.
func (d *DB) ListAthletes() ([]string, error) {
	rows, err := d.db.Query("SELECT DISTINCT athlete FROM sessions ORDER BY athlete")
	if err != nil {
		return nil, fmt.Errorf("list athletes: %w", err)
	}
	defer rows.Close()

	var athletes []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan athlete: %w", err)
		}
		athletes = append(athletes, a)
	}
	return athletes, rows.Err()
}

// DeleteSession removes a session by ID or prefix.
func (d *DB) DeleteSession(idOrPrefix string) error {
	id, err := d.resolveSessionID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// resolveSessionID expands an ID prefix to a full session ID.
func (d *DB) resolveSessionID(idOrPrefix string) (string, error) {
	if _, err := uuid.Parse(idOrPrefix); err == nil {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query("SELECT id FROM sessions WHERE id LIKE ?", idOrPrefix+"%")
	if err != nil {
		return "", fmt.Errorf("resolve session id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan session id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d sessions", ErrAmbiguousPrefix, idOrPrefix, len(ids))
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*models.Session, error) {
	var s models.Session
	var id, date, createdAt string
	var dob, injury sql.NullString

	err := row.Scan(
		&id, &s.Athlete, &date, &dob, &injury, &s.BodyMass,
		&s.KneeExtension.Force.Left, &s.KneeExtension.Lever.Left,
		&s.KneeExtension.Force.Right, &s.KneeExtension.Lever.Right,
		&s.KneeFlexion.Force.Left, &s.KneeFlexion.Lever.Left,
		&s.KneeFlexion.Force.Right, &s.KneeFlexion.Lever.Right,
		&s.CalfForce.Left, &s.CalfForce.Right,
		&s.JumpHeight.Left, &s.JumpHeight.Right,
		&s.RSID.Left, &s.RSID.Right,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	if s.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse session id: %w", err)
	}
	if s.Date, err = time.Parse(time.RFC3339, date); err != nil {
		return nil, fmt.Errorf("parse session date: %w", err)
	}
	if dob.Valid && dob.String != "" {
		if s.DateOfBirth, err = time.Parse(time.RFC3339, dob.String); err != nil {
			return nil, fmt.Errorf("parse date of birth: %w", err)
		}
	}
	if injury.Valid && injury.String != "" {
		if s.InjuryDate, err = time.Parse(time.RFC3339, injury.String); err != nil {
			return nil, fmt.Errorf("parse injury date: %w", err)
		}
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parse created at: %w", err)
	}

	return &s, nil
}

func scanSessions(rows *sql.Rows) ([]*models.Session, error) {
	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func nullableDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}
