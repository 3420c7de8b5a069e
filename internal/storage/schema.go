// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the sessions table with paired left/right measurements.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		athlete TEXT NOT NULL,
		date DATETIME NOT NULL,
		date_of_birth DATETIME,
		injury_date DATETIME,
		body_mass REAL NOT NULL,
		knee_extension_force_left REAL NOT NULL DEFAULT 0,
		knee_extension_lever_left REAL NOT NULL DEFAULT 0,
		knee_extension_force_right REAL NOT NULL DEFAULT 0,
		knee_extension_lever_right REAL NOT NULL DEFAULT 0,
		knee_flexion_force_left REAL NOT NULL DEFAULT 0,
		knee_flexion_lever_left REAL NOT NULL DEFAULT 0,
		knee_flexion_force_right REAL NOT NULL DEFAULT 0,
		knee_flexion_lever_right REAL NOT NULL DEFAULT 0,
		calf_force_left REAL NOT NULL DEFAULT 0,
		calf_force_right REAL NOT NULL DEFAULT 0,
		sl_jump_height_left REAL NOT NULL DEFAULT 0,
		sl_jump_height_right REAL NOT NULL DEFAULT 0,
		rsid_left REAL NOT NULL DEFAULT 0,
		rsid_right REAL NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_athlete ON sessions(athlete);
	CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date DESC);
	CREATE INDEX IF NOT EXISTS idx_sessions_athlete_date ON sessions(athlete, date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
