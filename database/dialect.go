package database

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// dialect holds the SQL that differs between Postgres and SQLite.
type dialect struct {
	name             string
	createNotesTable string
	numbered         bool
	now              func(ctx context.Context, q Querier) (time.Time, error)
}

var postgresDialect = dialect{
	name: "pgx",
	createNotesTable: `CREATE TABLE IF NOT EXISTS notes (
		id BIGSERIAL PRIMARY KEY,
		text TEXT NOT NULL
	)`,
	numbered: true,
	now: func(ctx context.Context, q Querier) (time.Time, error) {
		var now time.Time
		err := q.QueryRowContext(ctx, "SELECT NOW()").Scan(&now)
		return now, err
	},
}

var sqliteDialect = dialect{
	name: "sqlite3",
	createNotesTable: `CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL
	)`,
	now: func(ctx context.Context, q Querier) (time.Time, error) {
		var raw string
		if err := q.QueryRowContext(ctx, "SELECT strftime('%Y-%m-%dT%H:%M:%fZ', 'now')").Scan(&raw); err != nil {
			return time.Time{}, err
		}
		return time.Parse(time.RFC3339Nano, raw)
	},
}

// rebind rewrites ? placeholders to $n for drivers that need numbered ones.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
