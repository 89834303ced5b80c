// SPDX-License-Identifier: MIT

package record

import (
	"bytes"
	"fmt"
)

// ParseError marks a record whose bytes violate its layout. Parse
// errors are counted per spec by the orchestrator and never fail a
// cycle.
type ParseError struct {
	Spec   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record: parse %s: %s", e.Spec, e.Reason)
}

// Parse decodes one record against its layout. The flat row comes
// first, followed by one row per occupied group slot. Group rows carry
// the parent's key columns.
func Parse(l *Layout, payload []byte) ([]Row, error) {
	if len(payload) != l.Length {
		return nil, &ParseError{Spec: l.Spec,
			Reason: fmt.Sprintf("length %d, layout wants %d", len(payload), l.Length)}
	}

	flat := make(map[string]any, len(l.Fields))
	for _, f := range l.Fields {
		flat[f.Col] = decodeValue(payload[f.Start:f.Start+f.Len], f.Kind)
	}
	rows := []Row{{Suffix: l.Suffix, Values: flat}}

	for gi := range l.Groups {
		g := &l.Groups[gi]
		for i := 0; i < g.Count; i++ {
			slot := payload[g.Start+i*g.Stride : g.Start+(i+1)*g.Stride]
			if isBlank(slot) {
				continue
			}
			values := make(map[string]any, len(l.Keys)+len(g.Const)+len(g.Fields)+1)
			for _, k := range l.Keys {
				values[k] = flat[k]
			}
			for c, v := range g.Const {
				values[c] = v
			}
			if g.IndexCol != "" {
				values[g.IndexCol] = int64(i + 1)
			}
			for _, f := range g.Fields {
				values[f.Col] = decodeValue(slot[f.Start:f.Start+f.Len], f.Kind)
			}
			rows = append(rows, Row{Suffix: g.Suffix, Values: values})
		}
	}
	return rows, nil
}

func isBlank(slot []byte) bool {
	for _, b := range slot {
		if b != ' ' && b != 0 {
			return false
		}
	}
	return true
}

// EncodeRow renders a flat row back into record bytes. Only reversible
// kinds are written; Dec1 fields and group slots stay blank. Used by
// round-trip tests and fixture builders.
func EncodeRow(l *Layout, values map[string]any) ([]byte, error) {
	payload := bytes.Repeat([]byte(" "), l.Length)
	copy(payload[l.Length-2:], "\r\n")
	for _, f := range l.Fields {
		if !f.Kind.reversible() {
			continue
		}
		v, ok := values[f.Col]
		if !ok {
			continue
		}
		b, err := encodeValue(v, f)
		if err != nil {
			return nil, err
		}
		copy(payload[f.Start:], b)
	}
	copy(payload[0:2], l.Spec)
	return payload, nil
}
