// SPDX-License-Identifier: MIT

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsOverlap(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Layout{
		Spec:   "XX",
		Length: 32,
		Fields: []Field{
			{Col: "A", Start: 0, Len: 4, Kind: Code},
			{Col: "B", Start: 2, Len: 4, Kind: Code},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlaps")
}

func TestRegisterRejectsOutOfRange(t *testing.T) {
	r := NewRegistry()

	err := r.Register(&Layout{
		Spec:   "XX",
		Length: 16,
		Fields: []Field{{Col: "A", Start: 10, Len: 8, Kind: Code}},
	})
	require.Error(t, err, "a field may not run into the CRLF terminator")

	err = r.Register(&Layout{
		Spec:   "XX",
		Length: 32,
		Fields: []Field{{Col: "A", Start: 0, Len: 2, Kind: Code}},
		Groups: []Group{{
			Suffix: "XX_G", Start: 2, Stride: 10, Count: 4,
			Fields: []Field{{Col: "B", Start: 0, Len: 2, Kind: Code}},
		}},
	})
	require.Error(t, err, "group region past length-2 must be rejected")
}

func TestRegisterRejectsUnknownKey(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Layout{
		Spec:   "XX",
		Length: 16,
		Keys:   []string{"Missing"},
		Fields: []Field{{Col: "A", Start: 0, Len: 2, Kind: Code}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a field")
}

func TestRegisterRejectsDuplicateLength(t *testing.T) {
	r := NewRegistry()
	l := func() *Layout {
		return &Layout{
			Spec:   "XX",
			Length: 16,
			Fields: []Field{{Col: "A", Start: 0, Len: 2, Kind: Code}},
		}
	}
	require.NoError(t, r.Register(l()))
	require.Error(t, r.Register(l()))
}

func TestDemux(t *testing.T) {
	r := Default()

	payload := make([]byte, 856)
	copy(payload, "RA")
	spec, l, ok := r.Demux(payload)
	require.True(t, ok)
	assert.Equal(t, "RA", spec)
	assert.Equal(t, "RA", l.Spec)

	spec, _, ok = r.Demux(make([]byte, 100))
	assert.False(t, ok, "unknown spec is not routable")
	assert.Equal(t, "\x00\x00", spec)

	_, _, ok = r.Demux([]byte("X"))
	assert.False(t, ok, "too short for a spec")
}

func TestLookupDisambiguatesByLength(t *testing.T) {
	r := Default()

	full, ok := r.Lookup("H1", 28955)
	require.True(t, ok)
	flat, ok := r.Lookup("H1", 317)
	require.True(t, ok)
	assert.NotSame(t, full, flat)
	assert.NotEmpty(t, full.Groups)

	_, ok = r.Lookup("H1", 1000)
	assert.False(t, ok)
}

func TestDefaultRegistryCoversAllSpecs(t *testing.T) {
	r := Default()
	want := []string{
		"AV", "BN", "BR", "BT", "CC", "CH", "CK", "CS",
		"H1", "H6", "HC", "HN", "HR", "HS", "HY", "JC", "JG", "KS",
		"O1", "O2", "O3", "O4", "O5", "O6",
		"RA", "RC", "SE", "SK", "TC", "TK", "UM", "WC", "WE", "WF", "WH",
	}
	assert.Equal(t, want, r.Specs())

	for _, l := range r.All() {
		for _, k := range l.Keys {
			assert.Contains(t, l.Columns(), k, "%s key %s", l.Spec, k)
		}
	}
}
