// SPDX-License-Identifier: MIT

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keibalab/jvsync/internal/jvlink"
	"github.com/keibalab/jvsync/internal/record"
)

func TestTableNames(t *testing.T) {
	c := Default()

	ra := c.Table(NL, "RA")
	require.NotNil(t, ra)
	assert.Equal(t, "NL_RA", ra.Name(jvlink.Central))
	assert.Equal(t, "NL_RA_NAR", ra.Name(jvlink.Regional))

	odds := c.Table(TS, "O1_ODDS")
	require.NotNil(t, odds)
	assert.Equal(t, "TS_O1_ODDS", odds.Name(jvlink.Central))
}

func TestFamilyMembership(t *testing.T) {
	c := Default()

	assert.NotNil(t, c.Table(NL, "UM"), "masters live in the accumulated family")
	assert.Nil(t, c.Table(TS, "UM"), "only odds specs have time-series tables")
	assert.Nil(t, c.Table(TS, "RA"))
	assert.NotNil(t, c.Table(TS, "O6_ODDS"))
	assert.NotNil(t, c.Table(RT, "SE"))
	assert.Nil(t, c.Table(RT, "KS"), "masters are not realtime deliverables")
}

func TestPrimaryKeys(t *testing.T) {
	c := Default()

	se := c.Table(NL, "SE")
	require.NotNil(t, se)
	assert.Contains(t, se.PrimaryKey, "Umaban", "one row per runner")

	o1 := c.Table(TS, "O1")
	require.NotNil(t, o1)
	assert.Contains(t, o1.PrimaryKey, "HassoTime", "snapshots coexist per publication time")

	pay := c.Table(NL, "HR_PAY")
	require.NotNil(t, pay)
	assert.Contains(t, pay.PrimaryKey, "BetType")
	assert.Contains(t, pay.PrimaryKey, "Kumi")

	ketto := c.Table(NL, "UM_KETTO")
	require.NotNil(t, ketto)
	assert.Contains(t, ketto.PrimaryKey, "N", "pedigree slot position is identity")
}

func TestPrimaryKeyColumnsExist(t *testing.T) {
	for _, tab := range Default().Tables() {
		cols := make(map[string]bool, len(tab.Columns))
		for _, col := range tab.Columns {
			cols[col.Name] = true
		}
		require.NotEmpty(t, tab.PrimaryKey, "%s %s", tab.Family, tab.Suffix)
		for _, k := range tab.PrimaryKey {
			assert.True(t, cols[k], "%s %s: pk column %s missing", tab.Family, tab.Suffix, k)
		}
	}
}

func TestCatalogCoversEveryLayoutColumn(t *testing.T) {
	c := Default()
	for _, l := range record.Default().All() {
		tab := c.Table(NL, l.Suffix)
		require.NotNil(t, tab, "no NL table for %s", l.Suffix)
		cols := make(map[string]bool, len(tab.Columns))
		for _, col := range tab.Columns {
			cols[col.Name] = true
		}
		for _, name := range l.Columns() {
			assert.True(t, cols[name], "%s: column %s not in table", l.Suffix, name)
		}
	}
}

func TestMergedVariantColumns(t *testing.T) {
	// H1 ships a short and a full variant; the table is the union.
	h1 := Default().Table(NL, "H1")
	require.NotNil(t, h1)
	cols := make(map[string]bool)
	for _, col := range h1.Columns {
		cols[col.Name] = true
	}
	assert.True(t, cols["TanHyoTotal"], "full-variant totals present")
	assert.True(t, cols["HenkanUma"])
}

func TestDescribe(t *testing.T) {
	c := Default()

	tab, ok := c.Describe("NL_SE")
	require.True(t, ok)
	assert.Equal(t, "SE", tab.Suffix)
	assert.NotEmpty(t, tab.Description)

	tab, ok = c.Describe("TS_O1_ODDS_NAR")
	require.True(t, ok, "regional names resolve to the same entry")
	assert.Equal(t, "O1_ODDS", tab.Suffix)

	_, ok = c.Describe("TS_RA")
	assert.False(t, ok)
	_, ok = c.Describe("whatever")
	assert.False(t, ok)
}

func TestEveryTableIsDescribed(t *testing.T) {
	for _, tab := range Default().Tables() {
		assert.NotEmpty(t, tab.Description, "%s has no description", tab.Suffix)
	}
}

func TestMapFieldName(t *testing.T) {
	assert.Equal(t, "Year", MapFieldName("開催年"))
	assert.Equal(t, "HassoTime", MapFieldName("発表月日時分"))
	assert.Equal(t, "Umaban", MapFieldName("馬番"))
	assert.Equal(t, "SomethingElse", MapFieldName("SomethingElse"))
}
