// SPDX-License-Identifier: MIT

// Package record decodes the vendor's fixed-width records. Every record
// starts with a two-byte ASCII spec; a Layout maps byte slices to typed
// columns, and repeating sub-groups emit one row per occupied slot.
// Payload bytes are code page 932.
package record

import "fmt"

// Kind is the semantic type of a field.
type Kind int

const (
	Text Kind = iota // free text, CP932
	Code             // fixed code, kept verbatim (leading zeros preserved)
	Int              // integer; all-space is NULL
	Dec1             // integer stored in tenths (odds, times, weights)
	Date             // YYYYMMDD
	Time             // HHMM or MMDDhhmm publication stamps
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Code:
		return "code"
	case Int:
		return "int"
	case Dec1:
		return "dec1"
	case Date:
		return "date"
	case Time:
		return "time"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// reversible reports whether encoding a decoded value reproduces the
// original bytes. Dec1 loses the implied decimal point.
func (k Kind) reversible() bool {
	return k != Dec1
}

// Field maps one byte slice of a record to a column.
type Field struct {
	Col   string
	Start int
	Len   int
	Kind  Kind
}

// Group is a repeating sub-block. Occupied slots (any non-space byte)
// each emit one row into the companion table named by Suffix; all-space
// slots are absent, not NULL rows. Field offsets are relative to the
// slot start.
type Group struct {
	Suffix string            // companion table suffix, e.g. "H1_HYO"
	Const  map[string]string // discriminator columns, e.g. BetType
	Start  int
	Stride int
	Count  int
	Fields []Field
	// IndexCol, when set, adds the 1-based slot number to each row.
	// Needed where the slot position itself is the identity (pedigree
	// slots, WIN5 legs).
	IndexCol string
}

// Layout is the complete parse specification for one record spec. A
// spec may register several layouts distinguished by Length (H1 ships
// both a flat and a full variant).
type Layout struct {
	Spec   string
	Suffix string // base table suffix; defaults to Spec
	Length int
	// Keys are the columns copied from the flat row into every group
	// row so children carry their parent's identity.
	Keys   []string
	Fields []Field
	Groups []Group
}

// Row is one decoded row bound for the table identified by Suffix
// (family prefix and regional variant are applied by the caller).
type Row struct {
	Suffix string
	Values map[string]any
}

// Columns returns the full emitted column set of the flat row.
func (l *Layout) Columns() []string {
	cols := make([]string, 0, len(l.Fields))
	for _, f := range l.Fields {
		cols = append(cols, f.Col)
	}
	return cols
}

// GroupColumns returns the emitted column set of one group, parent keys
// and discriminators included.
func (g *Group) GroupColumns(keys []string) []string {
	cols := make([]string, 0, len(keys)+len(g.Const)+len(g.Fields)+1)
	cols = append(cols, keys...)
	for c := range g.Const {
		cols = append(cols, c)
	}
	if g.IndexCol != "" {
		cols = append(cols, g.IndexCol)
	}
	for _, f := range g.Fields {
		cols = append(cols, f.Col)
	}
	return cols
}
