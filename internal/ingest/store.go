// SPDX-License-Identifier: MIT

// Package ingest writes decoded rows into the relational store. The
// writer batches rows per table and flushes each table in one
// transaction, so a crashed cycle leaves whole tables either updated
// or untouched.
package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/keibalab/jvsync/internal/jvlink"
	"github.com/keibalab/jvsync/internal/log"
	"github.com/keibalab/jvsync/internal/schema"
)

// ErrUnknownDriver rejects store drivers outside sqlite and postgres.
var ErrUnknownDriver = errors.New("ingest: unknown store driver")

// Open connects to the configured store and returns the matching
// dialect.
func Open(driver, dsn string) (*sql.DB, Dialect, error) {
	switch driver {
	case "sqlite":
		db, err := sql.Open("sqlite", sqliteDSN(dsn))
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: open sqlite: %w", err)
		}
		// The file store serializes writers anyway; one connection
		// avoids SQLITE_BUSY churn.
		db.SetMaxOpenConns(1)
		return db, sqliteDialect{}, nil
	case "postgres":
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: open postgres: %w", err)
		}
		return db, postgresDialect{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// CreateSchema creates every catalog table for the given flavor.
// Existing tables are left alone.
func CreateSchema(ctx context.Context, db *sql.DB, d Dialect, catalog *schema.Catalog, flavor jvlink.Flavor) error {
	logger := log.WithComponent("ingest")
	for _, tab := range catalog.Tables() {
		ddl := createTableSQL(d, tab, flavor)
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ingest: create %s: %w", tab.Name(flavor), err)
		}
		for _, idx := range createIndexSQL(tab, flavor) {
			if _, err := db.ExecContext(ctx, idx); err != nil {
				return fmt.Errorf("ingest: index %s: %w", tab.Name(flavor), err)
			}
		}
	}
	logger.Info().
		Int("tables", len(catalog.Tables())).
		Str("driver", d.Name()).
		Str("event", "schema.created").
		Msg("schema ensured")
	return nil
}

func createTableSQL(d Dialect, tab *schema.Table, flavor jvlink.Flavor) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(quoteIdent(tab.Name(flavor)))
	b.WriteString(" (")
	for i, col := range tab.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteIdent(col.Name))
		b.WriteString(" ")
		b.WriteString(d.ColumnType(col.Kind))
	}
	b.WriteString(", PRIMARY KEY (")
	for i, k := range tab.PrimaryKey {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteIdent(k))
	}
	b.WriteString("))")
	return b.String()
}

func createIndexSQL(tab *schema.Table, flavor jvlink.Flavor) []string {
	name := tab.Name(flavor)
	stmts := make([]string, 0, len(tab.Indexes))
	for _, cols := range tab.Indexes {
		var b strings.Builder
		b.WriteString("CREATE INDEX IF NOT EXISTS ")
		b.WriteString(quoteIdent("idx_" + name + "_" + strings.Join(cols, "_")))
		b.WriteString(" ON ")
		b.WriteString(quoteIdent(name))
		b.WriteString(" (")
		for i, c := range cols {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(quoteIdent(c))
		}
		b.WriteString(")")
		stmts = append(stmts, b.String())
	}
	return stmts
}

// VerifyIntegrity runs a cheap store health check.
func VerifyIntegrity(ctx context.Context, db *sql.DB, d Dialect) error {
	if d.Name() == "sqlite" {
		var result string
		if err := db.QueryRowContext(ctx, "PRAGMA quick_check").Scan(&result); err != nil {
			return fmt.Errorf("ingest: quick_check: %w", err)
		}
		if result != "ok" {
			return fmt.Errorf("ingest: quick_check reported %q", result)
		}
		return nil
	}
	return db.PingContext(ctx)
}
