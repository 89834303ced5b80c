// SPDX-License-Identifier: MIT

package record

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raceValues() map[string]any {
	return map[string]any{
		"RecordSpec": "RA",
		"DataKubun":  "7",
		"MakeDate":   "20260101",
		"Year":       int64(2026),
		"MonthDay":   "0101",
		"JyoCD":      "05",
		"Kaiji":      int64(1),
		"Nichiji":    int64(1),
		"RaceNum":    "01",
	}
}

func TestParseRaceDetail(t *testing.T) {
	l, ok := Default().Lookup("RA", 856)
	require.True(t, ok)

	values := raceValues()
	values["Hondai"] = "テストレース"
	values["Kyori"] = int64(1600)
	values["TrackCD"] = "17"
	values["GradeCD"] = "A"

	payload, err := EncodeRow(l, values)
	require.NoError(t, err)
	require.Len(t, payload, 856)
	assert.Equal(t, []byte("\r\n"), payload[854:])

	rows, err := Parse(l, payload)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "RA", row.Suffix)
	assert.Equal(t, int64(2026), row.Values["Year"])
	assert.Equal(t, "0101", row.Values["MonthDay"])
	assert.Equal(t, "05", row.Values["JyoCD"])
	assert.Equal(t, "01", row.Values["RaceNum"])
	assert.Equal(t, int64(1600), row.Values["Kyori"])
	assert.Equal(t, "テストレース", row.Values["Hondai"])
	assert.Equal(t, "A", row.Values["GradeCD"])
}

func TestParseEmptyFieldNormalization(t *testing.T) {
	l, ok := Default().Lookup("RA", 856)
	require.True(t, ok)

	payload, err := EncodeRow(l, raceValues())
	require.NoError(t, err)

	rows, err := Parse(l, payload)
	require.NoError(t, err)

	flat := rows[0].Values
	assert.Nil(t, flat["Kyori"], "blank numeric field must decode to nil")
	assert.Equal(t, "", flat["Hondai"], "blank text field must decode to empty string")
	assert.Equal(t, "", flat["TenkoCD"])
}

func TestParseLengthMismatch(t *testing.T) {
	l, ok := Default().Lookup("RA", 856)
	require.True(t, ok)

	_, err := Parse(l, []byte("RA short"))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "RA", perr.Spec)
}

// fillSlot writes one occupied group slot into a payload.
func fillSlot(t *testing.T, payload []byte, g *Group, i int, values map[string]any) {
	t.Helper()
	base := g.Start + i*g.Stride
	for _, f := range g.Fields {
		b, err := encodeValue(values[f.Col], f)
		require.NoError(t, err)
		copy(payload[base+f.Start:], b)
	}
}

func TestParseVoteGroupRows(t *testing.T) {
	l, ok := Default().Lookup("H1", 28955)
	require.True(t, ok)

	values := raceValues()
	values["RecordSpec"] = "H1"
	payload, err := EncodeRow(l, values)
	require.NoError(t, err)

	var tan *Group
	for gi := range l.Groups {
		if l.Groups[gi].Const["BetType"] == "TAN" {
			tan = &l.Groups[gi]
			break
		}
	}
	require.NotNil(t, tan)
	require.Equal(t, 28, tan.Count)

	// Ten occupied slots out of 28; the rest stay blank.
	for i := 0; i < 10; i++ {
		fillSlot(t, payload, tan, i, map[string]any{
			"Kumi":  fmt.Sprintf("%02d", i+1),
			"Hyo":   int64(1000 + i),
			"Ninki": int64(i + 1),
		})
	}

	rows, err := Parse(l, payload)
	require.NoError(t, err)
	require.Len(t, rows, 11, "one flat row plus one per occupied slot")

	assert.Equal(t, "H1", rows[0].Suffix)
	for i, row := range rows[1:] {
		assert.Equal(t, "H1_HYO", row.Suffix)
		assert.Equal(t, "TAN", row.Values["BetType"])
		assert.Equal(t, fmt.Sprintf("%02d", i+1), row.Values["Kumi"])
		assert.Equal(t, int64(1000+i), row.Values["Hyo"])
		// Group rows inherit the parent race identity.
		assert.Equal(t, int64(2026), row.Values["Year"])
		assert.Equal(t, "0101", row.Values["MonthDay"])
		assert.Equal(t, "01", row.Values["RaceNum"])
	}
}

func TestParseOddsSnapshot(t *testing.T) {
	l, ok := Default().Lookup("O1", 962)
	require.True(t, ok)

	values := raceValues()
	values["RecordSpec"] = "O1"
	values["HassoTime"] = "06011530"
	payload, err := EncodeRow(l, values)
	require.NoError(t, err)

	tan := &l.Groups[0]
	fillSlot(t, payload, tan, 0, map[string]any{
		"Kumi": "01", "Odds": "0123", "Ninki": int64(2),
	})

	rows, err := Parse(l, payload)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "06011530", rows[0].Values["HassoTime"])
	odds := rows[1]
	assert.Equal(t, "O1_ODDS", odds.Suffix)
	assert.Equal(t, "TAN", odds.Values["BetType"])
	assert.Equal(t, "01", odds.Values["Kumi"])
	assert.Equal(t, 12.3, odds.Values["Odds"], "odds are stored in tenths")
	assert.Equal(t, "06011530", odds.Values["HassoTime"],
		"snapshot rows keep the publication stamp")
}

func TestParseIndexedGroup(t *testing.T) {
	l, ok := Default().Lookup("UM", 1609)
	require.True(t, ok)

	payload, err := EncodeRow(l, map[string]any{
		"RecordSpec": "UM",
		"KettoNum":   "2023100001",
		"Bamei":      "サンプルホース",
	})
	require.NoError(t, err)

	ketto := &l.Groups[0]
	fillSlot(t, payload, ketto, 0, map[string]any{
		"HansyokuNum": "1200000001", "Bamei": "チチウマ",
	})
	fillSlot(t, payload, ketto, 2, map[string]any{
		"HansyokuNum": "1200000003",
	})

	rows, err := Parse(l, payload)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, int64(1), rows[1].Values["N"])
	assert.Equal(t, "チチウマ", rows[1].Values["Bamei"])
	assert.Equal(t, int64(3), rows[2].Values["N"], "slot position survives gaps")
	assert.Equal(t, "2023100001", rows[2].Values["KettoNum"])
}

func TestEncodeRoundTrip(t *testing.T) {
	l, ok := Default().Lookup("RA", 856)
	require.True(t, ok)

	values := raceValues()
	values["Hondai"] = "第1回テスト記念"
	values["Kyori"] = int64(2400)

	payload, err := EncodeRow(l, values)
	require.NoError(t, err)

	rows, err := Parse(l, payload)
	require.NoError(t, err)

	again, err := EncodeRow(l, rows[0].Values)
	require.NoError(t, err)
	assert.Equal(t, payload, again)
}

func TestEncodeRejectsOversizedValues(t *testing.T) {
	l, ok := Default().Lookup("RA", 856)
	require.True(t, ok)

	values := raceValues()
	values["Year"] = int64(123456)
	_, err := EncodeRow(l, values)
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, "Year", eerr.Col)
}

func TestDecodeValueKinds(t *testing.T) {
	assert.Nil(t, decodeValue([]byte("    "), Int))
	assert.Equal(t, "", decodeValue([]byte("\x00\x00"), Text))
	assert.Equal(t, "", decodeValue([]byte("  "), Code))
	assert.Nil(t, decodeValue([]byte("12ab"), Int), "malformed numerics are nil, not errors")
	assert.Equal(t, int64(42), decodeValue([]byte("0042"), Int))
	assert.Equal(t, 1.5, decodeValue([]byte("0015"), Dec1))
	assert.Equal(t, "007", decodeValue([]byte("007"), Code), "codes keep leading zeros")
	assert.Equal(t, "20260101", decodeValue([]byte("20260101"), Date))
}

func TestDecodeTextShiftJIS(t *testing.T) {
	// "馬" in CP932.
	got := decodeText([]byte{0x94, 0x6E, 0x20, 0x20})
	assert.Equal(t, "馬", got)
}
