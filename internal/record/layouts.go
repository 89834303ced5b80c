// SPDX-License-Identifier: MIT

package record

// Shared slices for the common record head and the race identity block
// that most race-scoped records repeat at bytes 11..27.

func head() []Field {
	return []Field{
		{Col: "RecordSpec", Start: 0, Len: 2, Kind: Code},
		{Col: "DataKubun", Start: 2, Len: 1, Kind: Code},
		{Col: "MakeDate", Start: 3, Len: 8, Kind: Date},
	}
}

func raceKey() []Field {
	return append(head(),
		Field{Col: "Year", Start: 11, Len: 4, Kind: Int},
		Field{Col: "MonthDay", Start: 15, Len: 4, Kind: Code},
		Field{Col: "JyoCD", Start: 19, Len: 2, Kind: Code},
		Field{Col: "Kaiji", Start: 21, Len: 2, Kind: Int},
		Field{Col: "Nichiji", Start: 23, Len: 2, Kind: Int},
		Field{Col: "RaceNum", Start: 25, Len: 2, Kind: Code},
	)
}

func raceKeyCols() []string {
	return []string{"Year", "MonthDay", "JyoCD", "Kaiji", "Nichiji", "RaceNum"}
}

func fields(base []Field, more ...Field) []Field {
	return append(base, more...)
}
