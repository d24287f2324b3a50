package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const memoryDSN = ":memory:"

// DB owns the connection pool for the process.
type DB struct {
	*sql.DB
	dialect dialect
}

// New opens a pool for databaseURL. postgres:// and postgresql:// (with an
// optional +driver suffix) use pgx; sqlite://, sqlite3:// and file: use SQLite,
// with paths read the way SQLAlchemy reads them.
// New does not contact a Postgres server; call Ping or Migrate for that.
func New(databaseURL string) (*DB, error) {
	d, dsn, err := parseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	if d.name == "sqlite3" && dsn != memoryDSN && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(d.name, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	if dsn == memoryDSN {
		// Every SQLite connection to :memory: is its own empty database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxIdleTime(0)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	if d.name == "sqlite3" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return &DB{DB: db, dialect: d}, nil
}

func parseURL(databaseURL string) (dialect, string, error) {
	if strings.HasPrefix(databaseURL, "file:") {
		return sqliteDialect, databaseURL, nil
	}

	u, err := url.Parse(databaseURL)
	if err != nil {
		return dialect{}, "", fmt.Errorf("invalid database url: %w", err)
	}

	// SQLAlchemy-style URLs carry the driver after a plus sign
	scheme, _, _ := strings.Cut(strings.ToLower(u.Scheme), "+")

	switch scheme {
	case "postgres", "postgresql":
		u.Scheme = scheme
		return postgresDialect, u.String(), nil
	case "sqlite", "sqlite3":
		// sqlite:///rel.db is relative, sqlite:////abs.db is absolute and a
		// bare sqlite:// is in-memory
		_, path, _ := strings.Cut(databaseURL, "://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			path = memoryDSN
		}
		return sqliteDialect, path, nil
	default:
		return dialect{}, "", fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}

// Driver returns the database/sql driver name in use.
func (db *DB) Driver() string {
	return db.dialect.name
}

// Migrate creates the notes table if it does not exist. It never drops or
// alters existing tables.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, db.dialect.createNotesTable); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Now asks the database for its current time.
func (db *DB) Now(ctx context.Context) (time.Time, error) {
	now, err := db.dialect.now(ctx, db.DB)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query database time: %w", err)
	}
	return now, nil
}

// Conn takes one connection out of the pool. The caller must Close it.
func (db *DB) Conn(ctx context.Context) (*sql.Conn, error) {
	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return conn, nil
}

// Repository returns a repository bound to q, which is usually a *sql.Conn
// taken with Conn.
func (db *DB) Repository(q Querier) *Repository {
	return &Repository{q: q, dialect: db.dialect}
}

func (db *DB) Close() error {
	return db.DB.Close()
}
