// Package database provides a SQL-backed catalog store. Designers keep
// ability, archetype, and gear tables in SQLite (or a shared PostgreSQL
// instance) and the simulator loads them at startup; simulation results are
// never persisted here.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database wraps the SQL connection for catalog storage.
type Database struct {
	db      *sql.DB
	dialect Dialect
}

// Open opens the catalog database. For SQLite, dsn is a file path and the
// parent directory is created if needed; for PostgreSQL it is a connection
// string.
func Open(dialectType DialectType, dsn string) (*Database, error) {
	dialect := NewDialect(dialectType)

	if dialectType == DialectSQLite {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run init statement %q: %w", stmt, err)
		}
	}

	d := &Database{db: db, dialect: dialect}

	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return d, nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// migrate creates the catalog schema if it doesn't exist.
func (d *Database) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS abilities (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			base_damage REAL NOT NULL DEFAULT 0,
			attack_power_scaling REAL NOT NULL DEFAULT 0,
			mana_cost REAL NOT NULL DEFAULT 0,
			cooldown REAL NOT NULL DEFAULT 0,
			cast_time REAL NOT NULL DEFAULT 0,
			attack_range REAL NOT NULL DEFAULT 0,
			aoe_radius REAL NOT NULL DEFAULT 0,
			stun_duration REAL NOT NULL DEFAULT 0,
			invuln_duration REAL NOT NULL DEFAULT 0,
			buff_attribute TEXT NOT NULL DEFAULT '',
			buff_amount REAL NOT NULL DEFAULT 0,
			buff_duration REAL NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS archetypes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			attributes TEXT NOT NULL,
			per_level TEXT NOT NULL,
			abilities TEXT NOT NULL,
			attack_interval REAL NOT NULL DEFAULT 2.0,
			aggro_range REAL NOT NULL DEFAULT 10,
			xp_reward INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS gear (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			bonuses TEXT NOT NULL
		)`,
	}

	for _, migration := range migrations {
		if _, err := d.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// placeholders returns "?, ?, ..." or "$1, $2, ..." for n parameters.
func (d *Database) placeholders(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = d.dialect.Placeholder(i + 1)
	}
	return strings.Join(parts, ", ")
}
