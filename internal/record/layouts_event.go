// SPDX-License-Identifier: MIT

package record

// Day-of-race event records: weather and course condition changes,
// horse weights, special registrations, course records, jockey and
// start-time changes, scratches, training times, vote counts for the
// WIN5 carryover pool.

func init() {
	mustRegister(weLayout())
	mustRegister(whLayout())
	mustRegister(wfLayout())
	mustRegister(tkLayout())
	mustRegister(rcLayout())
	mustRegister(tcLayout())
	mustRegister(ccLayout())
	mustRegister(ckLayout())
	mustRegister(hcLayout())
	mustRegister(jcLayout())
	mustRegister(jgLayout())
	mustRegister(wcLayout())
	mustRegister(avLayout())
}

// WE is scoped to a whole meeting day, not a single race.
func weLayout() *Layout {
	return &Layout{
		Spec:   "WE",
		Length: 42,
		Keys:   []string{"Year", "MonthDay", "JyoCD", "HassoTime"},
		Fields: fields(head(),
			Field{Col: "Year", Start: 11, Len: 4, Kind: Int},
			Field{Col: "MonthDay", Start: 15, Len: 4, Kind: Code},
			Field{Col: "JyoCD", Start: 19, Len: 2, Kind: Code},
			Field{Col: "Kaiji", Start: 21, Len: 2, Kind: Int},
			Field{Col: "Nichiji", Start: 23, Len: 2, Kind: Int},
			Field{Col: "HassoTime", Start: 25, Len: 8, Kind: Time},
			Field{Col: "HenkoID", Start: 33, Len: 1, Kind: Code},
			Field{Col: "AtoTenkoCD", Start: 34, Len: 1, Kind: Code},
			Field{Col: "AtoSibaBabaCD", Start: 35, Len: 1, Kind: Code},
			Field{Col: "AtoDirtBabaCD", Start: 36, Len: 1, Kind: Code},
			Field{Col: "MaeTenkoCD", Start: 37, Len: 1, Kind: Code},
			Field{Col: "MaeSibaBabaCD", Start: 38, Len: 1, Kind: Code},
			Field{Col: "MaeDirtBabaCD", Start: 39, Len: 1, Kind: Code},
		),
	}
}

func whLayout() *Layout {
	return &Layout{
		Spec:   "WH",
		Length: 847,
		Keys:   append(raceKeyCols(), "HassoTime"),
		Fields: fields(raceKey(),
			Field{Col: "HassoTime", Start: 27, Len: 8, Kind: Time},
		),
		Groups: []Group{{
			Suffix:   "WH_BATAIJYU",
			IndexCol: "N",
			Start:    35, Stride: 45, Count: 18,
			Fields: []Field{
				{Col: "Umaban", Start: 0, Len: 2, Kind: Code},
				{Col: "Bamei", Start: 2, Len: 36, Kind: Text},
				{Col: "BaTaijyu", Start: 38, Len: 3, Kind: Int},
				{Col: "ZogenFugo", Start: 41, Len: 1, Kind: Code},
				{Col: "ZogenSa", Start: 42, Len: 3, Kind: Int},
			},
		}},
	}
}

// WF is one WIN5 pool per day spanning five races.
func wfLayout() *Layout {
	return &Layout{
		Spec:   "WF",
		Length: 169,
		Keys:   []string{"Year", "MonthDay"},
		Fields: fields(head(),
			Field{Col: "Year", Start: 11, Len: 4, Kind: Int},
			Field{Col: "MonthDay", Start: 15, Len: 4, Kind: Code},
			Field{Col: "HatsubaiHyoTotal", Start: 67, Len: 11, Kind: Int},
			Field{Col: "HenkanFlag", Start: 133, Len: 1, Kind: Code},
			Field{Col: "FuseiritsuFlag", Start: 134, Len: 1, Kind: Code},
			Field{Col: "TekichuNashiFlag", Start: 135, Len: 1, Kind: Code},
			Field{Col: "COInit", Start: 136, Len: 15, Kind: Int},
			Field{Col: "COZandaka", Start: 151, Len: 15, Kind: Int},
		),
		Groups: []Group{
			{
				Suffix:   "WF_RACE",
				IndexCol: "N",
				Start:    21, Stride: 8, Count: 5,
				Fields: []Field{
					{Col: "JyoCD", Start: 0, Len: 2, Kind: Code},
					{Col: "Kaiji", Start: 2, Len: 2, Kind: Int},
					{Col: "Nichiji", Start: 4, Len: 2, Kind: Int},
					{Col: "RaceNum", Start: 6, Len: 2, Kind: Code},
				},
			},
			{
				Suffix:   "WF_YUKO",
				IndexCol: "N",
				Start:    78, Stride: 11, Count: 5,
				Fields: []Field{
					{Col: "Hyo", Start: 0, Len: 11, Kind: Int},
				},
			},
		},
	}
}

func tkLayout() *Layout {
	return &Layout{
		Spec:   "TK",
		Length: 21657,
		Keys:   raceKeyCols(),
		Fields: fields(raceKey(),
			Field{Col: "YoubiCD", Start: 27, Len: 1, Kind: Code},
			Field{Col: "TokuNum", Start: 28, Len: 4, Kind: Code},
			Field{Col: "Hondai", Start: 32, Len: 60, Kind: Text},
			Field{Col: "Fukudai", Start: 92, Len: 60, Kind: Text},
			Field{Col: "Kakko", Start: 152, Len: 60, Kind: Text},
			Field{Col: "HondaiEng", Start: 212, Len: 120, Kind: Text},
			Field{Col: "FukudaiEng", Start: 332, Len: 120, Kind: Text},
			Field{Col: "KakkoEng", Start: 452, Len: 120, Kind: Text},
			Field{Col: "Ryakusyo10", Start: 572, Len: 20, Kind: Text},
			Field{Col: "Ryakusyo6", Start: 592, Len: 12, Kind: Text},
			Field{Col: "Ryakusyo3", Start: 604, Len: 6, Kind: Text},
			Field{Col: "GradeCD", Start: 614, Len: 1, Kind: Code},
			Field{Col: "SyubetuCD", Start: 615, Len: 2, Kind: Code},
			Field{Col: "KigoCD", Start: 617, Len: 3, Kind: Code},
			Field{Col: "JyuryoCD", Start: 620, Len: 1, Kind: Code},
			Field{Col: "JyokenCD1", Start: 621, Len: 3, Kind: Code},
			Field{Col: "JyokenCD2", Start: 624, Len: 3, Kind: Code},
			Field{Col: "JyokenCD3", Start: 627, Len: 3, Kind: Code},
			Field{Col: "JyokenCD4", Start: 630, Len: 3, Kind: Code},
			Field{Col: "JyokenCD5", Start: 633, Len: 3, Kind: Code},
			Field{Col: "Kyori", Start: 636, Len: 4, Kind: Int},
			Field{Col: "TrackCD", Start: 640, Len: 2, Kind: Code},
			Field{Col: "CourseKubunCD", Start: 642, Len: 2, Kind: Code},
			Field{Col: "HandiDate", Start: 644, Len: 8, Kind: Date},
			Field{Col: "TorokuTosu", Start: 652, Len: 3, Kind: Int},
		),
		Groups: []Group{{
			Suffix:   "TK_UMA",
			IndexCol: "N",
			Start:    655, Stride: 70, Count: 300,
			Fields: []Field{
				{Col: "Num", Start: 0, Len: 3, Kind: Int},
				{Col: "KettoNum", Start: 3, Len: 10, Kind: Code},
				{Col: "Bamei", Start: 13, Len: 36, Kind: Text},
			},
		}},
	}
}

func rcLayout() *Layout {
	return &Layout{
		Spec:   "RC",
		Length: 501,
		Keys:   []string{"RecKubun", "Year", "MonthDay", "JyoCD", "RaceNum", "RecordKubun"},
		Fields: fields(head(),
			Field{Col: "RecKubun", Start: 11, Len: 1, Kind: Code},
			Field{Col: "Year", Start: 12, Len: 4, Kind: Int},
			Field{Col: "MonthDay", Start: 16, Len: 4, Kind: Code},
			Field{Col: "JyoCD", Start: 20, Len: 2, Kind: Code},
			Field{Col: "Kaiji", Start: 22, Len: 2, Kind: Int},
			Field{Col: "Nichiji", Start: 24, Len: 2, Kind: Int},
			Field{Col: "RaceNum", Start: 26, Len: 2, Kind: Code},
			Field{Col: "TokuNum", Start: 28, Len: 4, Kind: Code},
			Field{Col: "Hondai", Start: 32, Len: 60, Kind: Text},
			Field{Col: "GradeCD", Start: 92, Len: 1, Kind: Code},
			Field{Col: "SyubetuCD", Start: 93, Len: 2, Kind: Code},
			Field{Col: "Kyori", Start: 95, Len: 4, Kind: Int},
			Field{Col: "TrackCD", Start: 99, Len: 2, Kind: Code},
			Field{Col: "RecordKubun", Start: 101, Len: 1, Kind: Code},
			Field{Col: "RecordTime", Start: 102, Len: 4, Kind: Code},
			Field{Col: "TenkoCD", Start: 106, Len: 1, Kind: Code},
			Field{Col: "SibaBabaCD", Start: 107, Len: 1, Kind: Code},
			Field{Col: "DirtBabaCD", Start: 108, Len: 1, Kind: Code},
		),
		// A dead-heat record lists every co-holder.
		Groups: []Group{{
			Suffix:   "RC_UMA",
			IndexCol: "N",
			Start:    109, Stride: 130, Count: 3,
			Fields: []Field{
				{Col: "KettoNum", Start: 0, Len: 10, Kind: Code},
				{Col: "Bamei", Start: 10, Len: 36, Kind: Text},
				{Col: "UmaKigoCD", Start: 46, Len: 2, Kind: Code},
				{Col: "SexCD", Start: 48, Len: 1, Kind: Code},
				{Col: "ChokyosiCode", Start: 49, Len: 5, Kind: Code},
				{Col: "ChokyosiName", Start: 54, Len: 34, Kind: Text},
				{Col: "Futan", Start: 88, Len: 3, Kind: Dec1},
				{Col: "KisyuCode", Start: 91, Len: 5, Kind: Code},
				{Col: "KisyuName", Start: 96, Len: 34, Kind: Text},
			},
		}},
	}
}

func tcLayout() *Layout {
	return &Layout{
		Spec:   "TC",
		Length: 45,
		Keys:   append(raceKeyCols(), "HassoTime"),
		Fields: fields(raceKey(),
			Field{Col: "HassoTime", Start: 27, Len: 8, Kind: Time},
			Field{Col: "AtoHassoTime", Start: 35, Len: 4, Kind: Time},
			Field{Col: "MaeHassoTime", Start: 39, Len: 4, Kind: Time},
		),
	}
}

func ccLayout() *Layout {
	return &Layout{
		Spec:   "CC",
		Length: 50,
		Keys:   append(raceKeyCols(), "HassoTime"),
		Fields: fields(raceKey(),
			Field{Col: "HassoTime", Start: 27, Len: 8, Kind: Time},
			Field{Col: "AtoKyori", Start: 35, Len: 4, Kind: Int},
			Field{Col: "AtoTrackCD", Start: 39, Len: 2, Kind: Code},
			Field{Col: "MaeKyori", Start: 41, Len: 4, Kind: Int},
			Field{Col: "MaeTrackCD", Start: 45, Len: 2, Kind: Code},
			Field{Col: "JiyuKubun", Start: 47, Len: 1, Kind: Code},
		),
	}
}

func ckLayout() *Layout {
	return &Layout{
		Spec:   "CK",
		Length: 6870,
		Keys:   append(raceKeyCols(), "KettoNum"),
		Fields: fields(raceKey(),
			Field{Col: "KettoNum", Start: 27, Len: 10, Kind: Code},
			Field{Col: "Bamei", Start: 37, Len: 36, Kind: Text},
			Field{Col: "HonsyokinHeichi", Start: 73, Len: 9, Kind: Int},
			Field{Col: "HonsyokinSyogai", Start: 82, Len: 9, Kind: Int},
			Field{Col: "FukasyokinHeichi", Start: 91, Len: 9, Kind: Int},
			Field{Col: "FukasyokinSyogai", Start: 100, Len: 9, Kind: Int},
			Field{Col: "SyutokuHeichi", Start: 109, Len: 9, Kind: Int},
			Field{Col: "SyutokuSyogai", Start: 118, Len: 9, Kind: Int},
			Field{Col: "KisyuCode", Start: 1384, Len: 5, Kind: Code},
			Field{Col: "KisyuName", Start: 1389, Len: 34, Kind: Text},
			Field{Col: "ChokyosiCode", Start: 3863, Len: 5, Kind: Code},
			Field{Col: "ChokyosiName", Start: 3868, Len: 34, Kind: Text},
			Field{Col: "BanusiCode", Start: 6342, Len: 6, Kind: Code},
			Field{Col: "BanusiName_Co", Start: 6348, Len: 64, Kind: Text},
			Field{Col: "BanusiName", Start: 6412, Len: 64, Kind: Text},
			Field{Col: "BreederCode", Start: 6596, Len: 8, Kind: Code},
			Field{Col: "BreederName_Co", Start: 6604, Len: 72, Kind: Text},
			Field{Col: "BreederName", Start: 6676, Len: 72, Kind: Text},
		),
	}
}

func hcLayout() *Layout {
	return &Layout{
		Spec:   "HC",
		Length: 60,
		Keys:   []string{"TresenKubun", "ChokyoDate", "ChokyoTime", "KettoNum"},
		Fields: fields(head(),
			Field{Col: "TresenKubun", Start: 11, Len: 1, Kind: Code},
			Field{Col: "ChokyoDate", Start: 12, Len: 8, Kind: Date},
			Field{Col: "ChokyoTime", Start: 20, Len: 4, Kind: Time},
			Field{Col: "KettoNum", Start: 24, Len: 10, Kind: Code},
			Field{Col: "HaronTime4", Start: 34, Len: 4, Kind: Dec1},
			Field{Col: "LapTime4", Start: 38, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime3", Start: 41, Len: 4, Kind: Dec1},
			Field{Col: "LapTime3", Start: 45, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime2", Start: 48, Len: 4, Kind: Dec1},
			Field{Col: "LapTime2", Start: 52, Len: 3, Kind: Dec1},
			Field{Col: "LapTime1", Start: 55, Len: 3, Kind: Dec1},
		),
	}
}

func jcLayout() *Layout {
	return &Layout{
		Spec:   "JC",
		Length: 161,
		Keys:   append(raceKeyCols(), "HassoTime", "Umaban"),
		Fields: fields(raceKey(),
			Field{Col: "HassoTime", Start: 27, Len: 8, Kind: Time},
			Field{Col: "Umaban", Start: 35, Len: 2, Kind: Code},
			Field{Col: "Bamei", Start: 37, Len: 36, Kind: Text},
			Field{Col: "AtoFutan", Start: 73, Len: 3, Kind: Dec1},
			Field{Col: "AtoKisyuCode", Start: 76, Len: 5, Kind: Code},
			Field{Col: "AtoKisyuName", Start: 81, Len: 34, Kind: Text},
			Field{Col: "AtoMinaraiCD", Start: 115, Len: 1, Kind: Code},
			Field{Col: "MaeFutan", Start: 116, Len: 3, Kind: Dec1},
			Field{Col: "MaeKisyuCode", Start: 119, Len: 5, Kind: Code},
			Field{Col: "MaeKisyuName", Start: 124, Len: 34, Kind: Text},
			Field{Col: "MaeMinaraiCD", Start: 158, Len: 1, Kind: Code},
		),
	}
}

func jgLayout() *Layout {
	return &Layout{
		Spec:   "JG",
		Length: 80,
		Keys:   append(raceKeyCols(), "KettoNum"),
		Fields: fields(raceKey(),
			Field{Col: "KettoNum", Start: 27, Len: 10, Kind: Code},
			Field{Col: "Bamei", Start: 37, Len: 36, Kind: Text},
			Field{Col: "UketukeOrder", Start: 73, Len: 3, Kind: Int},
			Field{Col: "SyussoKubun", Start: 76, Len: 1, Kind: Code},
			Field{Col: "JogaiKubun", Start: 77, Len: 1, Kind: Code},
		),
	}
}

func wcLayout() *Layout {
	return &Layout{
		Spec:   "WC",
		Length: 105,
		Keys:   []string{"TresenKubun", "ChokyoDate", "ChokyoTime", "KettoNum"},
		Fields: fields(head(),
			Field{Col: "TresenKubun", Start: 11, Len: 1, Kind: Code},
			Field{Col: "ChokyoDate", Start: 12, Len: 8, Kind: Date},
			Field{Col: "ChokyoTime", Start: 20, Len: 4, Kind: Time},
			Field{Col: "KettoNum", Start: 24, Len: 10, Kind: Code},
			Field{Col: "Course", Start: 34, Len: 1, Kind: Code},
			Field{Col: "BabaMawari", Start: 35, Len: 1, Kind: Code},
			Field{Col: "HaronTime10", Start: 37, Len: 4, Kind: Dec1},
			Field{Col: "LapTime10", Start: 41, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime9", Start: 44, Len: 4, Kind: Dec1},
			Field{Col: "LapTime9", Start: 48, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime8", Start: 51, Len: 4, Kind: Dec1},
			Field{Col: "LapTime8", Start: 55, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime7", Start: 58, Len: 4, Kind: Dec1},
			Field{Col: "LapTime7", Start: 62, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime6", Start: 65, Len: 4, Kind: Dec1},
			Field{Col: "LapTime6", Start: 69, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime5", Start: 72, Len: 4, Kind: Dec1},
			Field{Col: "LapTime5", Start: 76, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime4", Start: 79, Len: 4, Kind: Dec1},
			Field{Col: "LapTime4", Start: 83, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime3", Start: 86, Len: 4, Kind: Dec1},
			Field{Col: "LapTime3", Start: 90, Len: 3, Kind: Dec1},
			Field{Col: "HaronTime2", Start: 93, Len: 4, Kind: Dec1},
			Field{Col: "LapTime2", Start: 97, Len: 3, Kind: Dec1},
			Field{Col: "LapTime1", Start: 100, Len: 3, Kind: Dec1},
		),
	}
}

func avLayout() *Layout {
	return &Layout{
		Spec:   "AV",
		Length: 76,
		Keys:   append(raceKeyCols(), "HassoTime", "Umaban"),
		Fields: fields(raceKey(),
			Field{Col: "HassoTime", Start: 27, Len: 8, Kind: Time},
			Field{Col: "Umaban", Start: 35, Len: 2, Kind: Code},
			Field{Col: "Bamei", Start: 37, Len: 36, Kind: Text},
			Field{Col: "JiyuKubun", Start: 73, Len: 1, Kind: Code},
		),
	}
}
