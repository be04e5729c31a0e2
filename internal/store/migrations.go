package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the initial scan-history tables.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at     TEXT NOT NULL,
			scene_file   TEXT NOT NULL,
			scope        TEXT NOT NULL,
			status       TEXT NOT NULL,
			object_count INTEGER NOT NULL,
			error_count  INTEGER NOT NULL,
			warn_count   INTEGER NOT NULL,
			info_count   INTEGER NOT NULL,
			version      TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS scan_objects (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id     INTEGER NOT NULL REFERENCES scans(id),
			object_name TEXT NOT NULL,
			status      TEXT NOT NULL,
			error_count INTEGER NOT NULL,
			warn_count  INTEGER NOT NULL,
			excluded    BOOLEAN NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_scan_objects_scan
			ON scan_objects(scan_id)`,

		`DELETE FROM schema_version`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	_, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion)
	return err
}
