// SPDX-License-Identifier: MIT

package record

import (
	"fmt"
	"sort"
)

// Registry maps record specs to their layouts. A spec may carry more
// than one layout, distinguished by record length.
type Registry struct {
	layouts map[string][]*Layout
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{layouts: make(map[string][]*Layout)}
}

// Register validates and adds a layout. Overlapping or out-of-range
// slices are programmer errors: the layout refuses to load.
func (r *Registry) Register(l *Layout) error {
	if len(l.Spec) != 2 {
		return fmt.Errorf("record: layout spec %q must be two bytes", l.Spec)
	}
	if l.Suffix == "" {
		l.Suffix = l.Spec
	}
	if err := validate(l); err != nil {
		return err
	}
	for _, existing := range r.layouts[l.Spec] {
		if existing.Length == l.Length {
			return fmt.Errorf("record: duplicate layout %s length %d", l.Spec, l.Length)
		}
	}
	r.layouts[l.Spec] = append(r.layouts[l.Spec], l)
	return nil
}

// Lookup resolves a spec and record length to a layout. The length
// disambiguates multi-variant specs; no match means the record cannot
// be parsed.
func (r *Registry) Lookup(spec string, length int) (*Layout, bool) {
	for _, l := range r.layouts[spec] {
		if l.Length == length {
			return l, true
		}
	}
	return nil, false
}

// Known reports whether any layout is registered for spec.
func (r *Registry) Known(spec string) bool {
	return len(r.layouts[spec]) > 0
}

// Specs returns all registered specs, sorted.
func (r *Registry) Specs() []string {
	specs := make([]string, 0, len(r.layouts))
	for s := range r.layouts {
		specs = append(specs, s)
	}
	sort.Strings(specs)
	return specs
}

// All returns every registered layout.
func (r *Registry) All() []*Layout {
	var all []*Layout
	for _, s := range r.Specs() {
		all = append(all, r.layouts[s]...)
	}
	return all
}

// Demux routes a raw payload to its layout by the two-byte ASCII spec
// at the head of the record. Unknown specs are the caller's business to
// count and drop.
func (r *Registry) Demux(payload []byte) (string, *Layout, bool) {
	if len(payload) < 2 {
		return "", nil, false
	}
	spec := string(payload[0:2])
	l, ok := r.Lookup(spec, len(payload))
	return spec, l, ok
}

type span struct {
	start, end int
	col        string
}

func validate(l *Layout) error {
	if l.Length < 4 {
		return fmt.Errorf("record: layout %s: length %d too short", l.Spec, l.Length)
	}

	spans := make([]span, 0, len(l.Fields)+len(l.Groups))
	for _, f := range l.Fields {
		if f.Len <= 0 || f.Start < 0 || f.Start+f.Len > l.Length-2 {
			return fmt.Errorf("record: layout %s: field %s out of range", l.Spec, f.Col)
		}
		spans = append(spans, span{f.Start, f.Start + f.Len, f.Col})
	}
	for gi := range l.Groups {
		g := &l.Groups[gi]
		if g.Stride <= 0 || g.Count <= 0 || g.Start < 0 ||
			g.Start+g.Stride*g.Count > l.Length-2 {
			return fmt.Errorf("record: layout %s: group %s out of range", l.Spec, g.Suffix)
		}
		for _, f := range g.Fields {
			if f.Len <= 0 || f.Start < 0 || f.Start+f.Len > g.Stride {
				return fmt.Errorf("record: layout %s: group %s field %s exceeds stride",
					l.Spec, g.Suffix, f.Col)
			}
		}
		spans = append(spans, span{g.Start, g.Start + g.Stride*g.Count, "group " + g.Suffix})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return fmt.Errorf("record: layout %s: %s overlaps %s",
				l.Spec, spans[i].col, spans[i-1].col)
		}
	}

	for _, k := range l.Keys {
		found := false
		for _, f := range l.Fields {
			if f.Col == k {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("record: layout %s: key %s is not a field", l.Spec, k)
		}
	}
	return nil
}

// defaultRegistry holds every layout in layouts_*.go, built at init.
var defaultRegistry = NewRegistry()

func mustRegister(l *Layout) {
	if err := defaultRegistry.Register(l); err != nil {
		panic(err)
	}
}

// Default returns the registry of all built-in layouts.
func Default() *Registry {
	return defaultRegistry
}
