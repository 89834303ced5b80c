// SPDX-License-Identifier: MIT

package ingest

import (
	"strconv"
	"strings"

	"github.com/keibalab/jvsync/internal/record"
)

// Dialect abstracts the SQL differences between the supported stores.
type Dialect interface {
	Name() string
	ColumnType(k record.Kind) string
	Placeholder(i int) string // 1-based argument position
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) ColumnType(k record.Kind) string {
	switch k {
	case record.Int:
		return "INTEGER"
	case record.Dec1:
		return "REAL"
	default:
		return "TEXT"
	}
}

func (sqliteDialect) Placeholder(int) string { return "?" }

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) ColumnType(k record.Kind) string {
	switch k {
	case record.Int:
		return "BIGINT"
	case record.Dec1:
		return "DOUBLE PRECISION"
	default:
		return "TEXT"
	}
}

func (postgresDialect) Placeholder(i int) string { return "$" + strconv.Itoa(i) }

// upsertSQL builds an insert that updates all non-key columns on
// conflict. Both stores speak the same ON CONFLICT clause.
func upsertSQL(d Dialect, table string, cols, pk []string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(quoteIdent(table))
	b.WriteString(" (")
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteIdent(c))
	}
	b.WriteString(") VALUES (")
	for i := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.Placeholder(i + 1))
	}
	b.WriteString(") ON CONFLICT (")
	for i, c := range pk {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteIdent(c))
	}
	b.WriteString(")")

	keys := make(map[string]bool, len(pk))
	for _, c := range pk {
		keys[c] = true
	}
	var updates []string
	for _, c := range cols {
		if !keys[c] {
			updates = append(updates, quoteIdent(c)+" = excluded."+quoteIdent(c))
		}
	}
	if len(updates) == 0 {
		b.WriteString(" DO NOTHING")
		return b.String()
	}
	b.WriteString(" DO UPDATE SET ")
	b.WriteString(strings.Join(updates, ", "))
	return b.String()
}
