// SPDX-License-Identifier: MIT

package record

// Master records: horses, jockeys, trainers, owners, breeders, breeding
// stock, progeny, sales, name origins, bloodlines, courses.

func init() {
	mustRegister(umLayout())
	mustRegister(ksLayout())
	mustRegister(chLayout())
	mustRegister(bnLayout())
	mustRegister(brLayout())
	mustRegister(hnLayout())
	mustRegister(skLayout())
	mustRegister(hsLayout())
	mustRegister(hyLayout())
	mustRegister(btLayout())
	mustRegister(csLayout())
}

func umLayout() *Layout {
	return &Layout{
		Spec:   "UM",
		Length: 1609,
		Keys:   []string{"KettoNum"},
		Fields: fields(head(),
			Field{Col: "KettoNum", Start: 11, Len: 10, Kind: Code},
			Field{Col: "DelKubun", Start: 21, Len: 1, Kind: Code},
			Field{Col: "RegDate", Start: 22, Len: 8, Kind: Date},
			Field{Col: "DelDate", Start: 30, Len: 8, Kind: Date},
			Field{Col: "BirthDate", Start: 38, Len: 8, Kind: Date},
			Field{Col: "Bamei", Start: 46, Len: 36, Kind: Text},
			Field{Col: "BameiKana", Start: 82, Len: 36, Kind: Text},
			Field{Col: "BameiEng", Start: 118, Len: 60, Kind: Text},
			Field{Col: "ZaikyuFlag", Start: 178, Len: 1, Kind: Code},
			Field{Col: "UmaKigoCD", Start: 198, Len: 2, Kind: Code},
			Field{Col: "SexCD", Start: 200, Len: 1, Kind: Code},
			Field{Col: "HinsyuCD", Start: 201, Len: 1, Kind: Code},
			Field{Col: "KeiroCD", Start: 202, Len: 2, Kind: Code},
			Field{Col: "TozaiCD", Start: 848, Len: 1, Kind: Code},
			Field{Col: "ChokyosiCode", Start: 849, Len: 5, Kind: Code},
			Field{Col: "ChokyosiRyakusyo", Start: 854, Len: 8, Kind: Text},
			Field{Col: "InvitedArea", Start: 862, Len: 20, Kind: Text},
			Field{Col: "BreederCode", Start: 882, Len: 8, Kind: Code},
			Field{Col: "BreederName", Start: 890, Len: 72, Kind: Text},
			Field{Col: "SanchiName", Start: 962, Len: 20, Kind: Text},
			Field{Col: "BanusiCode", Start: 982, Len: 6, Kind: Code},
			Field{Col: "BanusiName", Start: 988, Len: 64, Kind: Text},
			Field{Col: "HonsyokinHeichi", Start: 1052, Len: 9, Kind: Int},
			Field{Col: "HonsyokinSyogai", Start: 1061, Len: 9, Kind: Int},
			Field{Col: "FukasyokinHeichi", Start: 1070, Len: 9, Kind: Int},
			Field{Col: "FukasyokinSyogai", Start: 1079, Len: 9, Kind: Int},
			Field{Col: "SyutokuHeichi", Start: 1088, Len: 9, Kind: Int},
			Field{Col: "SyutokuSyogai", Start: 1097, Len: 9, Kind: Int},
			Field{Col: "RaceCount", Start: 1604, Len: 3, Kind: Int},
		),
		// Three-generation pedigree, one slot per ancestor position.
		Groups: []Group{{
			Suffix:   "UM_KETTO",
			IndexCol: "N",
			Start:    204, Stride: 46, Count: 14,
			Fields: []Field{
				{Col: "HansyokuNum", Start: 0, Len: 10, Kind: Code},
				{Col: "Bamei", Start: 10, Len: 36, Kind: Text},
			},
		}},
	}
}

func ksLayout() *Layout {
	return &Layout{
		Spec:   "KS",
		Length: 4173,
		Keys:   []string{"KisyuCode"},
		Fields: fields(head(),
			Field{Col: "KisyuCode", Start: 11, Len: 5, Kind: Code},
			Field{Col: "DelKubun", Start: 16, Len: 1, Kind: Code},
			Field{Col: "IssueDate", Start: 17, Len: 8, Kind: Date},
			Field{Col: "DelDate", Start: 25, Len: 8, Kind: Date},
			Field{Col: "BirthDate", Start: 33, Len: 8, Kind: Date},
			Field{Col: "KisyuName", Start: 41, Len: 34, Kind: Text},
			Field{Col: "KisyuNameKana", Start: 109, Len: 30, Kind: Text},
			Field{Col: "KisyuRyakusyo", Start: 139, Len: 8, Kind: Text},
			Field{Col: "KisyuNameEng", Start: 147, Len: 80, Kind: Text},
			Field{Col: "SexKubun", Start: 227, Len: 1, Kind: Code},
			Field{Col: "SikakuCD", Start: 228, Len: 1, Kind: Code},
			Field{Col: "MinaraiCD", Start: 229, Len: 1, Kind: Code},
			Field{Col: "TozaiCD", Start: 230, Len: 1, Kind: Code},
			Field{Col: "InvitedArea", Start: 231, Len: 20, Kind: Text},
			Field{Col: "ChokyosiCode", Start: 251, Len: 5, Kind: Code},
			Field{Col: "ChokyosiRyakusyo", Start: 256, Len: 8, Kind: Text},
		),
	}
}

func chLayout() *Layout {
	return &Layout{
		Spec:   "CH",
		Length: 3862,
		Keys:   []string{"ChokyosiCode"},
		Fields: fields(head(),
			Field{Col: "ChokyosiCode", Start: 11, Len: 5, Kind: Code},
			Field{Col: "DelKubun", Start: 16, Len: 1, Kind: Code},
			Field{Col: "IssueDate", Start: 17, Len: 8, Kind: Date},
			Field{Col: "DelDate", Start: 25, Len: 8, Kind: Date},
			Field{Col: "BirthDate", Start: 33, Len: 8, Kind: Date},
			Field{Col: "ChokyosiName", Start: 41, Len: 34, Kind: Text},
			Field{Col: "ChokyosiNameKana", Start: 75, Len: 30, Kind: Text},
			Field{Col: "ChokyosiRyakusyo", Start: 105, Len: 8, Kind: Text},
			Field{Col: "ChokyosiNameEng", Start: 113, Len: 80, Kind: Text},
			Field{Col: "SexKubun", Start: 193, Len: 1, Kind: Code},
			Field{Col: "TozaiCD", Start: 194, Len: 1, Kind: Code},
			Field{Col: "InvitedArea", Start: 195, Len: 20, Kind: Text},
		),
	}
}

func bnLayout() *Layout {
	return &Layout{
		Spec:   "BN",
		Length: 387,
		Keys:   []string{"BanusiCode"},
		Fields: fields(head(),
			Field{Col: "BanusiCode", Start: 11, Len: 6, Kind: Code},
			Field{Col: "BanusiName_Co", Start: 17, Len: 64, Kind: Text},
			Field{Col: "BanusiName", Start: 81, Len: 64, Kind: Text},
			Field{Col: "BanusiNameKana", Start: 145, Len: 50, Kind: Text},
			Field{Col: "BanusiNameEng", Start: 195, Len: 100, Kind: Text},
			Field{Col: "Fukusyoku", Start: 295, Len: 60, Kind: Text},
		),
	}
}

func brLayout() *Layout {
	return &Layout{
		Spec:   "BR",
		Length: 545,
		Keys:   []string{"BreederCode"},
		Fields: fields(head(),
			Field{Col: "BreederCode", Start: 11, Len: 8, Kind: Code},
			Field{Col: "BreederName_Co", Start: 19, Len: 72, Kind: Text},
			Field{Col: "BreederName", Start: 91, Len: 72, Kind: Text},
			Field{Col: "BreederNameKana", Start: 163, Len: 72, Kind: Text},
			Field{Col: "BreederNameEng", Start: 235, Len: 168, Kind: Text},
			Field{Col: "Address", Start: 403, Len: 20, Kind: Text},
		),
	}
}

func hnLayout() *Layout {
	return &Layout{
		Spec:   "HN",
		Length: 251,
		Keys:   []string{"HansyokuNum"},
		Fields: fields(head(),
			Field{Col: "HansyokuNum", Start: 11, Len: 10, Kind: Code},
			Field{Col: "KettoNum", Start: 29, Len: 10, Kind: Code},
			Field{Col: "Bamei", Start: 40, Len: 36, Kind: Text},
			Field{Col: "BameiKana", Start: 76, Len: 40, Kind: Text},
			Field{Col: "BameiEng", Start: 116, Len: 80, Kind: Text},
			Field{Col: "BirthYear", Start: 196, Len: 4, Kind: Int},
			Field{Col: "SexCD", Start: 200, Len: 1, Kind: Code},
			Field{Col: "HinsyuCD", Start: 201, Len: 1, Kind: Code},
			Field{Col: "KeiroCD", Start: 202, Len: 2, Kind: Code},
			Field{Col: "MochikomiKubun", Start: 204, Len: 1, Kind: Code},
			Field{Col: "ImportYear", Start: 205, Len: 4, Kind: Int},
			Field{Col: "SanchiName", Start: 209, Len: 20, Kind: Text},
			Field{Col: "FHansyokuNum", Start: 229, Len: 10, Kind: Code},
			Field{Col: "MHansyokuNum", Start: 239, Len: 10, Kind: Code},
		),
	}
}

func skLayout() *Layout {
	return &Layout{
		Spec:   "SK",
		Length: 208,
		Keys:   []string{"KettoNum"},
		Fields: fields(head(),
			Field{Col: "KettoNum", Start: 11, Len: 10, Kind: Code},
			Field{Col: "BirthDate", Start: 21, Len: 8, Kind: Date},
			Field{Col: "SexCD", Start: 29, Len: 1, Kind: Code},
			Field{Col: "HinsyuCD", Start: 30, Len: 1, Kind: Code},
			Field{Col: "KeiroCD", Start: 31, Len: 2, Kind: Code},
			Field{Col: "MochikomiKubun", Start: 33, Len: 1, Kind: Code},
			Field{Col: "ImportYear", Start: 34, Len: 4, Kind: Int},
			Field{Col: "BreederCode", Start: 38, Len: 8, Kind: Code},
			Field{Col: "SanchiName", Start: 46, Len: 20, Kind: Text},
		),
		Groups: []Group{{
			Suffix:   "SK_KETTO",
			IndexCol: "N",
			Start:    66, Stride: 10, Count: 14,
			Fields: []Field{
				{Col: "HansyokuNum", Start: 0, Len: 10, Kind: Code},
			},
		}},
	}
}

func hsLayout() *Layout {
	return &Layout{
		Spec:   "HS",
		Length: 200,
		Keys:   []string{"KettoNum"},
		Fields: fields(head(),
			Field{Col: "KettoNum", Start: 11, Len: 10, Kind: Code},
			Field{Col: "FHansyokuNum", Start: 21, Len: 10, Kind: Code},
			Field{Col: "MHansyokuNum", Start: 31, Len: 10, Kind: Code},
			Field{Col: "BirthYear", Start: 41, Len: 4, Kind: Int},
			Field{Col: "SaleCode", Start: 45, Len: 6, Kind: Code},
			Field{Col: "SaleHostName", Start: 51, Len: 40, Kind: Text},
			Field{Col: "SaleName", Start: 91, Len: 80, Kind: Text},
			Field{Col: "FromDate", Start: 171, Len: 8, Kind: Date},
			Field{Col: "ToDate", Start: 179, Len: 8, Kind: Date},
			Field{Col: "Barei", Start: 187, Len: 1, Kind: Int},
			Field{Col: "Price", Start: 188, Len: 10, Kind: Int},
		),
	}
}

func hyLayout() *Layout {
	return &Layout{
		Spec:   "HY",
		Length: 123,
		Keys:   []string{"KettoNum"},
		Fields: fields(head(),
			Field{Col: "KettoNum", Start: 11, Len: 10, Kind: Code},
			Field{Col: "Bamei", Start: 21, Len: 36, Kind: Text},
			Field{Col: "Origin", Start: 57, Len: 64, Kind: Text},
		),
	}
}

func btLayout() *Layout {
	return &Layout{
		Spec:   "BT",
		Length: 6889,
		Keys:   []string{"HansyokuNum"},
		Fields: fields(head(),
			Field{Col: "HansyokuNum", Start: 11, Len: 10, Kind: Code},
			Field{Col: "KeitoID", Start: 21, Len: 30, Kind: Code},
			Field{Col: "KeitoName", Start: 51, Len: 36, Kind: Text},
			Field{Col: "Setsumei", Start: 87, Len: 6800, Kind: Text},
		),
	}
}

func csLayout() *Layout {
	return &Layout{
		Spec:   "CS",
		Length: 6829,
		Keys:   []string{"JyoCD"},
		Fields: fields(head(),
			Field{Col: "JyoCD", Start: 11, Len: 2, Kind: Code},
			Field{Col: "Kyori", Start: 13, Len: 4, Kind: Int},
			Field{Col: "TrackCD", Start: 17, Len: 2, Kind: Code},
			Field{Col: "KaishuDate", Start: 19, Len: 8, Kind: Date},
			Field{Col: "Setsumei", Start: 27, Len: 6800, Kind: Text},
		),
	}
}
