// SPDX-License-Identifier: MIT

// Package schema derives the relational catalog from the record
// layouts. Each record suffix maps to one table per data family:
// NL tables hold the latest accumulated state, TS tables keep every
// odds snapshot keyed by publication time, RT tables mirror the
// realtime feed. Regional tables carry a _NAR name suffix so both
// services can share one database.
package schema

import (
	"fmt"
	"sort"

	"github.com/keibalab/jvsync/internal/jvlink"
	"github.com/keibalab/jvsync/internal/record"
)

// Family selects which copy of a table a row lands in.
type Family int

const (
	NL Family = iota // accumulated normal data
	TS               // time-series odds snapshots
	RT               // realtime feed
)

func (f Family) String() string {
	switch f {
	case NL:
		return "NL"
	case TS:
		return "TS"
	case RT:
		return "RT"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Column is one table column with its record-level kind, which the
// dialects map to SQL types.
type Column struct {
	Name string
	Kind record.Kind
}

// Table is one concrete table of the catalog.
type Table struct {
	Suffix      string // record suffix, e.g. "RA", "H1_HYO"
	Family      Family
	Description string
	Columns     []Column
	PrimaryKey  []string
	Indexes     [][]string
}

// Name returns the table name for the given service flavor.
func (t *Table) Name(flavor jvlink.Flavor) string {
	name := t.Family.String() + "_" + t.Suffix
	if flavor == jvlink.Regional {
		name += "_NAR"
	}
	return name
}

// realtimeSuffixes are the specs the realtime service can deliver.
var realtimeSuffixes = map[string]bool{
	"RA": true, "SE": true, "HR": true, "H1": true, "H6": true,
	"O1": true, "O2": true, "O3": true, "O4": true, "O5": true, "O6": true,
	"WE": true, "WH": true, "AV": true, "JC": true, "TC": true, "CC": true,
	"JG": true,
}

// timeSeriesSuffixes are the odds specs that accumulate snapshots.
var timeSeriesSuffixes = map[string]bool{
	"O1": true, "O2": true, "O3": true, "O4": true, "O5": true, "O6": true,
}

// extraPK adds identity columns beyond the layout keys. SE stores one
// row per runner, not one per race.
var extraPK = map[string][]string{
	"SE": {"Umaban"},
}

// Catalog is the full derived table set, indexed by family and suffix.
type Catalog struct {
	tables map[Family]map[string]*Table
}

// Build derives the catalog from a layout registry.
func Build(reg *record.Registry) *Catalog {
	c := &Catalog{tables: map[Family]map[string]*Table{
		NL: {}, TS: {}, RT: {},
	}}
	for _, l := range reg.All() {
		for _, fam := range familiesFor(l.Spec) {
			c.addLayout(fam, l)
		}
	}
	return c
}

func familiesFor(spec string) []Family {
	fams := []Family{NL}
	if timeSeriesSuffixes[spec] {
		fams = append(fams, TS)
	}
	if realtimeSuffixes[spec] {
		fams = append(fams, RT)
	}
	return fams
}

func (c *Catalog) addLayout(fam Family, l *record.Layout) {
	baseCols := make([]Column, 0, len(l.Fields))
	for _, f := range l.Fields {
		baseCols = append(baseCols, Column{Name: f.Col, Kind: f.Kind})
	}
	basePK := append(append([]string{}, l.Keys...), extraPK[l.Suffix]...)
	c.merge(&Table{
		Suffix:      l.Suffix,
		Family:      fam,
		Description: descriptions[l.Suffix],
		Columns:     baseCols,
		PrimaryKey:  basePK,
		Indexes:     extraIndexes[l.Suffix],
	})

	for gi := range l.Groups {
		g := &l.Groups[gi]
		cols := make([]Column, 0, len(l.Keys)+len(g.Const)+len(g.Fields)+1)
		pk := append([]string{}, l.Keys...)
		for _, k := range l.Keys {
			cols = append(cols, Column{Name: k, Kind: kindOf(l, k)})
		}
		for _, name := range sortedConstCols(g) {
			cols = append(cols, Column{Name: name, Kind: record.Code})
			pk = append(pk, name)
		}
		if g.IndexCol != "" {
			cols = append(cols, Column{Name: g.IndexCol, Kind: record.Int})
			pk = append(pk, g.IndexCol)
		}
		for _, f := range g.Fields {
			cols = append(cols, Column{Name: f.Col, Kind: f.Kind})
			if f.Col == "Kumi" {
				pk = append(pk, "Kumi")
			}
		}
		c.merge(&Table{
			Suffix:      g.Suffix,
			Family:      fam,
			Description: descriptions[g.Suffix],
			Columns:     cols,
			PrimaryKey:  pk,
			Indexes:     extraIndexes[g.Suffix],
		})
	}
}

// merge unions column sets when a suffix appears in several layouts
// (H1 registers a flat and a full variant sharing its tables).
func (c *Catalog) merge(t *Table) {
	existing, ok := c.tables[t.Family][t.Suffix]
	if !ok {
		c.tables[t.Family][t.Suffix] = t
		return
	}
	have := make(map[string]bool, len(existing.Columns))
	for _, col := range existing.Columns {
		have[col.Name] = true
	}
	for _, col := range t.Columns {
		if !have[col.Name] {
			existing.Columns = append(existing.Columns, col)
		}
	}
}

func kindOf(l *record.Layout, col string) record.Kind {
	for _, f := range l.Fields {
		if f.Col == col {
			return f.Kind
		}
	}
	return record.Code
}

func sortedConstCols(g *record.Group) []string {
	names := make([]string, 0, len(g.Const))
	for name := range g.Const {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table resolves a family and suffix to its table, or nil.
func (c *Catalog) Table(fam Family, suffix string) *Table {
	return c.tables[fam][suffix]
}

// Tables returns every table in a stable order.
func (c *Catalog) Tables() []*Table {
	var all []*Table
	for _, fam := range []Family{NL, TS, RT} {
		suffixes := make([]string, 0, len(c.tables[fam]))
		for s := range c.tables[fam] {
			suffixes = append(suffixes, s)
		}
		sort.Strings(suffixes)
		for _, s := range suffixes {
			all = append(all, c.tables[fam][s])
		}
	}
	return all
}

var defaultCatalog = Build(record.Default())

// Default returns the catalog derived from the built-in layouts.
func Default() *Catalog {
	return defaultCatalog
}
