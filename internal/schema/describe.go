// SPDX-License-Identifier: MIT

package schema

import "strings"

// descriptions document each record suffix for catalog consumers.
var descriptions = map[string]string{
	"RA":          "race card and result header, one row per race",
	"SE":          "runner detail and result, one row per starter",
	"HR":          "payoff header, refund and void flags per race",
	"HR_PAY":      "payoff amounts, one row per bet type and winning combination",
	"H1":          "vote-count totals for win through trio pools",
	"H1_HYO":      "vote counts, one row per bet type and combination",
	"H6":          "trifecta vote-count totals",
	"H6_HYO":      "trifecta vote counts, one row per combination",
	"O1":          "win, place and bracket odds snapshot header",
	"O1_ODDS":     "win, place and bracket odds, one row per combination",
	"O2":          "quinella odds snapshot header",
	"O2_ODDS":     "quinella odds, one row per combination",
	"O3":          "wide odds snapshot header",
	"O3_ODDS":     "wide odds range, one row per combination",
	"O4":          "exacta odds snapshot header",
	"O4_ODDS":     "exacta odds, one row per combination",
	"O5":          "trio odds snapshot header",
	"O5_ODDS":     "trio odds, one row per combination",
	"O6":          "trifecta odds snapshot header",
	"O6_ODDS":     "trifecta odds, one row per combination",
	"UM":          "horse master, one row per registered horse",
	"UM_KETTO":    "three-generation pedigree, one row per ancestor slot",
	"KS":          "jockey master",
	"CH":          "trainer master",
	"BN":          "owner master",
	"BR":          "breeder master",
	"HN":          "breeding stock master",
	"SK":          "produced foal record",
	"SK_KETTO":    "foal pedigree, one row per ancestor slot",
	"HS":          "auction sale record",
	"HY":          "horse name origin",
	"BT":          "bloodline description",
	"CS":          "course description",
	"TK":          "special race registration header",
	"TK_UMA":      "special race registrants, one row per horse",
	"RC":          "course and race records",
	"RC_UMA":      "record co-holders, one row per horse",
	"WE":          "weather and going change event",
	"WH":          "horse weight announcement header",
	"WH_BATAIJYU": "horse weights, one row per runner",
	"WF":          "WIN5 pool result",
	"WF_RACE":     "WIN5 leg races, one row per leg",
	"WF_YUKO":     "WIN5 surviving vote counts per leg",
	"TC":          "start time change event",
	"CC":          "course change event",
	"CK":          "runner career totals at race time",
	"HC":          "training time, slope course",
	"WC":          "training time, wood chip course",
	"JC":          "jockey change event",
	"JG":          "scratched or excluded runner",
	"AV":          "overweight and other runner announcements",
}

// extraIndexes lists secondary indexes on high-cardinality lookup
// columns, keyed by suffix.
var extraIndexes = map[string][][]string{
	"SE": {{"KettoNum"}, {"KisyuCode"}, {"ChokyosiCode"}},
	"RA": {{"Kyori", "TrackCD"}},
	"UM": {{"Bamei"}, {"ChokyosiCode"}},
	"CK": {{"KettoNum"}},
	"HC": {{"KettoNum"}},
	"WC": {{"KettoNum"}},
	"HN": {{"KettoNum"}},
}

// Describe resolves a concrete table name, regional variants included,
// to its catalog entry.
func (c *Catalog) Describe(name string) (*Table, bool) {
	trimmed := strings.TrimSuffix(name, "_NAR")
	for _, fam := range []Family{NL, TS, RT} {
		prefix := fam.String() + "_"
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}
		if t, ok := c.tables[fam][strings.TrimPrefix(trimmed, prefix)]; ok {
			return t, true
		}
	}
	return nil, false
}
