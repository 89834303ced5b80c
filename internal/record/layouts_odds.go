// SPDX-License-Identifier: MIT

package record

// Odds snapshots O1..O6. Every record stamps the publication time
// (HassoTime, MMDDhhmm); the time-series table family keys on it so
// successive snapshots of the same race coexist.

func init() {
	mustRegister(o1Layout())
	mustRegister(o2Layout())
	mustRegister(o3Layout())
	mustRegister(o4Layout())
	mustRegister(o5Layout())
	mustRegister(o6Layout())
}

func oddsHead() []Field {
	return fields(raceKey(),
		Field{Col: "HassoTime", Start: 27, Len: 8, Kind: Time},
		Field{Col: "TorokuTosu", Start: 35, Len: 2, Kind: Int},
		Field{Col: "SyussoTosu", Start: 37, Len: 2, Kind: Int},
	)
}

func oddsKeyCols() []string {
	return append(raceKeyCols(), "HassoTime")
}

// oddsFields is a single-price combination slot: combination, odds in
// tenths, popularity.
func oddsFields(kumiLen, oddsLen, ninkiLen int) []Field {
	return []Field{
		{Col: "Kumi", Start: 0, Len: kumiLen, Kind: Code},
		{Col: "Odds", Start: kumiLen, Len: oddsLen, Kind: Dec1},
		{Col: "Ninki", Start: kumiLen + oddsLen, Len: ninkiLen, Kind: Int},
	}
}

// rangeOddsFields is a min/max price slot (place and wide bets pay a
// range depending on the rest of the frame).
func rangeOddsFields(kumiLen, oddsLen, ninkiLen int) []Field {
	return []Field{
		{Col: "Kumi", Start: 0, Len: kumiLen, Kind: Code},
		{Col: "OddsLow", Start: kumiLen, Len: oddsLen, Kind: Dec1},
		{Col: "OddsHigh", Start: kumiLen + oddsLen, Len: oddsLen, Kind: Dec1},
		{Col: "Ninki", Start: kumiLen + 2*oddsLen, Len: ninkiLen, Kind: Int},
	}
}

func o1Layout() *Layout {
	return &Layout{
		Spec:   "O1",
		Length: 962,
		Keys:   oddsKeyCols(),
		Fields: fields(oddsHead(),
			Field{Col: "HatsubaiFlagTan", Start: 39, Len: 1, Kind: Code},
			Field{Col: "HatsubaiFlagFuku", Start: 40, Len: 1, Kind: Code},
			Field{Col: "HatsubaiFlagWaku", Start: 41, Len: 1, Kind: Code},
			Field{Col: "FukuChakuBaraiKey", Start: 42, Len: 1, Kind: Code},
			Field{Col: "TanHyoTotal", Start: 927, Len: 11, Kind: Int},
			Field{Col: "FukuHyoTotal", Start: 938, Len: 11, Kind: Int},
			Field{Col: "WakuHyoTotal", Start: 949, Len: 11, Kind: Int},
		),
		Groups: []Group{
			{
				Suffix: "O1_ODDS",
				Const:  map[string]string{"BetType": "TAN"},
				Start:  43, Stride: 8, Count: 28,
				Fields: oddsFields(2, 4, 2),
			},
			{
				Suffix: "O1_ODDS",
				Const:  map[string]string{"BetType": "FUKU"},
				Start:  267, Stride: 12, Count: 28,
				Fields: rangeOddsFields(2, 4, 2),
			},
			{
				Suffix: "O1_ODDS",
				Const:  map[string]string{"BetType": "WAKU"},
				Start:  603, Stride: 9, Count: 36,
				Fields: oddsFields(2, 5, 2),
			},
		},
	}
}

func o2Layout() *Layout {
	return &Layout{
		Spec:   "O2",
		Length: 2042,
		Keys:   oddsKeyCols(),
		Fields: fields(oddsHead(),
			Field{Col: "HatsubaiFlag", Start: 39, Len: 1, Kind: Code},
			Field{Col: "UmarenHyoTotal", Start: 2029, Len: 11, Kind: Int},
		),
		Groups: []Group{{
			Suffix: "O2_ODDS",
			Const:  map[string]string{"BetType": "UMAREN"},
			Start:  40, Stride: 13, Count: 153,
			Fields: oddsFields(4, 6, 3),
		}},
	}
}

func o3Layout() *Layout {
	return &Layout{
		Spec:   "O3",
		Length: 2654,
		Keys:   oddsKeyCols(),
		Fields: fields(oddsHead(),
			Field{Col: "HatsubaiFlag", Start: 39, Len: 1, Kind: Code},
			Field{Col: "WideHyoTotal", Start: 2641, Len: 11, Kind: Int},
		),
		Groups: []Group{{
			Suffix: "O3_ODDS",
			Const:  map[string]string{"BetType": "WIDE"},
			Start:  40, Stride: 17, Count: 153,
			Fields: rangeOddsFields(4, 5, 3),
		}},
	}
}

func o4Layout() *Layout {
	return &Layout{
		Spec:   "O4",
		Length: 4031,
		Keys:   oddsKeyCols(),
		Fields: fields(oddsHead(),
			Field{Col: "HatsubaiFlag", Start: 39, Len: 1, Kind: Code},
			Field{Col: "UmatanHyoTotal", Start: 4018, Len: 11, Kind: Int},
		),
		Groups: []Group{{
			Suffix: "O4_ODDS",
			Const:  map[string]string{"BetType": "UMATAN"},
			Start:  40, Stride: 13, Count: 306,
			Fields: oddsFields(4, 6, 3),
		}},
	}
}

func o5Layout() *Layout {
	return &Layout{
		Spec:   "O5",
		Length: 12293,
		Keys:   oddsKeyCols(),
		Fields: fields(oddsHead(),
			Field{Col: "HatsubaiFlag", Start: 39, Len: 1, Kind: Code},
			Field{Col: "SanrenpukuHyoTotal", Start: 12280, Len: 11, Kind: Int},
		),
		Groups: []Group{{
			Suffix: "O5_ODDS",
			Const:  map[string]string{"BetType": "SANRENPUKU"},
			Start:  40, Stride: 15, Count: 816,
			Fields: oddsFields(6, 6, 3),
		}},
	}
}

func o6Layout() *Layout {
	return &Layout{
		Spec:   "O6",
		Length: 83285,
		Keys:   oddsKeyCols(),
		Fields: fields(oddsHead(),
			Field{Col: "HatsubaiFlag", Start: 39, Len: 1, Kind: Code},
			Field{Col: "SanrentanHyoTotal", Start: 83272, Len: 11, Kind: Int},
		),
		Groups: []Group{{
			Suffix: "O6_ODDS",
			Const:  map[string]string{"BetType": "SANRENTAN"},
			Start:  40, Stride: 17, Count: 4896,
			Fields: oddsFields(6, 7, 4),
		}},
	}
}
