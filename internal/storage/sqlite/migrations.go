package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Each row holds one JSON-encoded snapshot; version is duplicated out of the
// payload so incompatible records can be rejected without decoding them.
const schema = `
CREATE TABLE IF NOT EXISTS roster_state (
    key TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    state TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
