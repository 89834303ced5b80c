// SPDX-License-Identifier: MIT

package schema

// vendorNames maps the vendor documentation's Japanese field labels to
// the canonical column names used throughout the catalog. Unknown
// labels pass through unchanged.
var vendorNames = map[string]string{
	"レコード種別":   "RecordSpec",
	"データ区分":    "DataKubun",
	"データ作成年月日": "MakeDate",
	"開催年":      "Year",
	"開催月日":     "MonthDay",
	"競馬場コード":   "JyoCD",
	"開催回":      "Kaiji",
	"開催日目":     "Nichiji",
	"レース番号":    "RaceNum",
	"発表月日時分":   "HassoTime",
	"発走時刻":     "HassoTime",
	"枠番":       "Wakuban",
	"馬番":       "Umaban",
	"血統登録番号":   "KettoNum",
	"馬名":       "Bamei",
	"騎手コード":    "KisyuCode",
	"調教師コード":   "ChokyosiCode",
	"馬主コード":    "BanusiCode",
	"生産者コード":   "BreederCode",
	"繁殖登録番号":   "HansyokuNum",
	"距離":       "Kyori",
	"トラックコード":  "TrackCD",
	"グレードコード":  "GradeCD",
	"負担重量":     "Futan",
	"馬体重":      "BaTaijyu",
	"単勝オッズ":    "Odds",
	"単勝人気順":    "Ninki",
	"組番":       "Kumi",
	"票数":       "Hyo",
	"天候コード":    "TenkoCD",
	"芝馬場状態コード": "SibaBabaCD",
	"ダート馬場状態コード": "DirtBabaCD",
}

// MapFieldName resolves a vendor field label to its canonical column
// name.
func MapFieldName(label string) string {
	if name, ok := vendorNames[label]; ok {
		return name
	}
	return label
}
