// SPDX-License-Identifier: MIT

package ingest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/keibalab/jvsync/internal/jvlink"
	"github.com/keibalab/jvsync/internal/log"
	"github.com/keibalab/jvsync/internal/metrics"
	"github.com/keibalab/jvsync/internal/record"
	"github.com/keibalab/jvsync/internal/schema"
)

// SchemaDrift marks a row carrying a column the catalog does not know.
// It means the layouts and the deployed schema have diverged, which is
// a programmer error: callers fail the cycle instead of silently
// truncating the row.
type SchemaDrift struct {
	Table  string
	Column string
}

func (e *SchemaDrift) Error() string {
	return fmt.Sprintf("ingest: schema drift: table %s has no column %s", e.Table, e.Column)
}

type tableKey struct {
	fam    schema.Family
	suffix string
}

// Writer buffers decoded rows and flushes them table by table, one
// transaction per table.
type Writer struct {
	db      *sql.DB
	dialect Dialect
	catalog *schema.Catalog
	flavor  jvlink.Flavor
	logger  zerolog.Logger

	buf   map[tableKey][]map[string]any
	order []tableKey
}

// NewWriter wraps an open store.
func NewWriter(db *sql.DB, d Dialect, catalog *schema.Catalog, flavor jvlink.Flavor) *Writer {
	return &Writer{
		db:      db,
		dialect: d,
		catalog: catalog,
		flavor:  flavor,
		logger:  log.WithComponent("ingest"),
		buf:     make(map[tableKey][]map[string]any),
	}
}

// Add buffers one row for its family table.
func (w *Writer) Add(fam schema.Family, row record.Row) error {
	tab := w.catalog.Table(fam, row.Suffix)
	if tab == nil {
		return fmt.Errorf("ingest: no %s table for suffix %q", fam, row.Suffix)
	}
	known := make(map[string]bool, len(tab.Columns))
	for _, col := range tab.Columns {
		known[col.Name] = true
	}
	for col := range row.Values {
		if !known[col] {
			return &SchemaDrift{Table: tab.Name(w.flavor), Column: col}
		}
	}

	key := tableKey{fam: fam, suffix: row.Suffix}
	if _, ok := w.buf[key]; !ok {
		w.order = append(w.order, key)
	}
	w.buf[key] = append(w.buf[key], row.Values)
	return nil
}

// Pending returns the number of buffered rows.
func (w *Writer) Pending() int {
	n := 0
	for _, rows := range w.buf {
		n += len(rows)
	}
	return n
}

// Flush upserts all buffered rows. Each table commits independently;
// the first failing table aborts the flush and keeps its buffer.
func (w *Writer) Flush(ctx context.Context) (int, error) {
	total := 0
	for len(w.order) > 0 {
		key := w.order[0]
		tab := w.catalog.Table(key.fam, key.suffix)
		n, err := w.flushTable(ctx, tab, w.buf[key])
		if err != nil {
			return total, err
		}
		total += n
		delete(w.buf, key)
		w.order = w.order[1:]
	}
	return total, nil
}

func (w *Writer) flushTable(ctx context.Context, tab *schema.Table, rows []map[string]any) (int, error) {
	name := tab.Name(w.flavor)
	cols := make([]string, 0, len(tab.Columns))
	for _, col := range tab.Columns {
		cols = append(cols, col.Name)
	}
	query := upsertSQL(w.dialect, name, cols, tab.PrimaryKey)

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ingest: begin %s: %w", name, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("ingest: prepare %s: %w", name, err)
	}
	defer stmt.Close()

	args := make([]any, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			args[i] = row[col]
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("ingest: upsert %s: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ingest: commit %s: %w", name, err)
	}

	metrics.AddRowsWritten(name, len(rows))
	w.logger.Debug().
		Str("table", name).
		Int("rows", len(rows)).
		Str("event", "ingest.flush").
		Msg("table flushed")
	return len(rows), nil
}

// Close releases the underlying store. Buffered rows are discarded;
// callers flush first.
func (w *Writer) Close() error {
	return w.db.Close()
}
