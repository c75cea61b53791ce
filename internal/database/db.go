// Package database persists focusclock state in a local sqlite file.
//
// The schema is a single key/value table. Presets, settings and the timer
// snapshot are stored as JSON-compatible strings under well-known keys.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 2 * time.Second

type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (or creates) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	// sqlite serialises writers; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	d := &Database{DB: db, dbFile: path}
	pingCtx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, &OpError{Op: "ping", Resource: "database", Err: err}
	}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file the database was opened from.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) createTables(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS schema_meta (
			version INTEGER NOT NULL
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "create table", Resource: "schema", Err: fmt.Errorf("%w: %s", err, query)}
		}
	}
	return nil
}

const schemaVersion = 1

// migrate records the schema version. Later versions add their steps here.
func (d *Database) migrate(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var current int
	err := d.DB.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_meta").Scan(&current)
	if err != nil {
		return &OpError{Op: "migrate", Resource: "schema", Err: err}
	}
	if current >= schemaVersion {
		return nil
	}
	if _, err := d.DB.ExecContext(ctx, "INSERT INTO schema_meta (version) VALUES (?)", schemaVersion); err != nil {
		return &OpError{Op: "migrate", Resource: "schema", Err: err}
	}
	log.Printf("database: migrated schema %d -> %d", current, schemaVersion)
	return nil
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return &OpError{Op: "begin", Resource: "tx", Err: err}
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return &OpError{Op: "commit", Resource: "tx", Err: err}
	}
	return nil
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		log.Printf("database: rollback failed: %v", rbErr)
	}
	return err
}
