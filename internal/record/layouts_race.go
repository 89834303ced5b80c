// SPDX-License-Identifier: MIT

package record

// Race results family: RA (race card), SE (per-horse result), HR
// (payoffs), H1/H6 (vote counts). Offsets follow JV-Data Ver.4.9.0.1.

func init() {
	mustRegister(raceLayout())
	mustRegister(seLayout())
	mustRegister(hrLayout())
	mustRegister(h1FullLayout())
	mustRegister(h1FlatLayout())
	mustRegister(h6Layout())
}

func raceLayout() *Layout {
	return &Layout{
		Spec:   "RA",
		Length: 856,
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
			Field{Col: "KubunCD", Start: 610, Len: 1, Kind: Code},
			Field{Col: "Nkai", Start: 611, Len: 3, Kind: Int},
			Field{Col: "GradeCD", Start: 614, Len: 1, Kind: Code},
			Field{Col: "SyubetuCD", Start: 616, Len: 2, Kind: Code},
			Field{Col: "KigoCD", Start: 618, Len: 3, Kind: Code},
			Field{Col: "JyuryoCD", Start: 621, Len: 1, Kind: Code},
			Field{Col: "JyokenCD1", Start: 622, Len: 3, Kind: Code},
			Field{Col: "JyokenCD2", Start: 625, Len: 3, Kind: Code},
			Field{Col: "JyokenCD3", Start: 628, Len: 3, Kind: Code},
			Field{Col: "JyokenCD4", Start: 631, Len: 3, Kind: Code},
			Field{Col: "JyokenCD5", Start: 634, Len: 3, Kind: Code},
			Field{Col: "JyokenName", Start: 637, Len: 60, Kind: Text},
			Field{Col: "Kyori", Start: 697, Len: 4, Kind: Int},
			Field{Col: "TrackCD", Start: 705, Len: 2, Kind: Code},
			Field{Col: "CourseKubunCD", Start: 709, Len: 2, Kind: Code},
			Field{Col: "HassoTime", Start: 745, Len: 4, Kind: Time},
			Field{Col: "TorokuTosu", Start: 753, Len: 2, Kind: Int},
			Field{Col: "SyussoTosu", Start: 755, Len: 2, Kind: Int},
			Field{Col: "NyusenTosu", Start: 757, Len: 2, Kind: Int},
			Field{Col: "TenkoCD", Start: 759, Len: 1, Kind: Code},
			Field{Col: "SibaBabaCD", Start: 760, Len: 1, Kind: Code},
			Field{Col: "DirtBabaCD", Start: 761, Len: 1, Kind: Code},
		),
	}
}

func seLayout() *Layout {
	return &Layout{
		Spec:   "SE",
		Length: 463,
		Keys:   raceKeyCols(),
		Fields: fields(raceKey(),
			Field{Col: "Wakuban", Start: 27, Len: 1, Kind: Code},
			Field{Col: "Umaban", Start: 28, Len: 2, Kind: Code},
			Field{Col: "KettoNum", Start: 30, Len: 10, Kind: Code},
			Field{Col: "Bamei", Start: 40, Len: 36, Kind: Text},
			Field{Col: "UmaKigoCD", Start: 76, Len: 2, Kind: Code},
			Field{Col: "SexCD", Start: 78, Len: 1, Kind: Code},
			Field{Col: "HinsyuCD", Start: 79, Len: 1, Kind: Code},
			Field{Col: "KeiroCD", Start: 80, Len: 2, Kind: Code},
			Field{Col: "Barei", Start: 82, Len: 2, Kind: Int},
			Field{Col: "TozaiCD", Start: 84, Len: 1, Kind: Code},
			Field{Col: "ChokyosiCode", Start: 85, Len: 5, Kind: Code},
			Field{Col: "ChokyosiRyakusyo", Start: 90, Len: 8, Kind: Text},
			Field{Col: "BanusiCode", Start: 98, Len: 6, Kind: Code},
			Field{Col: "BanusiName", Start: 104, Len: 64, Kind: Text},
			Field{Col: "Fukusyoku", Start: 168, Len: 60, Kind: Text},
			Field{Col: "Futan", Start: 288, Len: 3, Kind: Dec1},
			Field{Col: "Blinker", Start: 294, Len: 1, Kind: Code},
			Field{Col: "KisyuCode", Start: 296, Len: 5, Kind: Code},
			Field{Col: "KisyuRyakusyo", Start: 306, Len: 8, Kind: Text},
			Field{Col: "MinaraiCD", Start: 322, Len: 1, Kind: Code},
			Field{Col: "BaTaijyu", Start: 324, Len: 3, Kind: Int},
			Field{Col: "ZogenFugo", Start: 327, Len: 1, Kind: Code},
			Field{Col: "ZogenSa", Start: 328, Len: 3, Kind: Int},
			Field{Col: "IJyoCD", Start: 331, Len: 1, Kind: Code},
			Field{Col: "NyusenJyuni", Start: 332, Len: 2, Kind: Int},
			Field{Col: "KakuteiJyuni", Start: 334, Len: 2, Kind: Int},
			Field{Col: "DochakuKubun", Start: 336, Len: 1, Kind: Code},
			Field{Col: "DochakuTosu", Start: 337, Len: 1, Kind: Int},
			Field{Col: "Time", Start: 338, Len: 4, Kind: Code},
			Field{Col: "ChakusaCD", Start: 342, Len: 3, Kind: Code},
			Field{Col: "Jyuni1c", Start: 351, Len: 2, Kind: Int},
			Field{Col: "Jyuni2c", Start: 353, Len: 2, Kind: Int},
			Field{Col: "Jyuni3c", Start: 355, Len: 2, Kind: Int},
			Field{Col: "Jyuni4c", Start: 357, Len: 2, Kind: Int},
			Field{Col: "Odds", Start: 359, Len: 4, Kind: Dec1},
			Field{Col: "Ninki", Start: 363, Len: 2, Kind: Int},
			Field{Col: "Honsyokin", Start: 365, Len: 8, Kind: Int},
			Field{Col: "Fukasyokin", Start: 373, Len: 8, Kind: Int},
			Field{Col: "HaronTimeL4", Start: 387, Len: 3, Kind: Dec1},
			Field{Col: "HaronTimeL3", Start: 390, Len: 3, Kind: Dec1},
		),
	}
}

// payFields is the payoff slot shape shared by HR groups: winning
// combination, payout in yen, and popularity rank.
func payFields(kumiLen, ninkiLen int) []Field {
	return []Field{
		{Col: "Kumi", Start: 0, Len: kumiLen, Kind: Code},
		{Col: "Pay", Start: kumiLen, Len: 9, Kind: Int},
		{Col: "Ninki", Start: kumiLen + 9, Len: ninkiLen, Kind: Int},
	}
}

func hrLayout() *Layout {
	pay := func(bet string, start, stride, count, kumiLen, ninkiLen int) Group {
		return Group{
			Suffix: "HR_PAY",
			Const:  map[string]string{"BetType": bet},
			Start:  start, Stride: stride, Count: count,
			Fields: payFields(kumiLen, ninkiLen),
		}
	}
	return &Layout{
		Spec:   "HR",
		Length: 719,
		Keys:   raceKeyCols(),
		Fields: fields(raceKey(),
			Field{Col: "TorokuTosu", Start: 27, Len: 2, Kind: Int},
			Field{Col: "SyussoTosu", Start: 29, Len: 2, Kind: Int},
			Field{Col: "FuseiritsuFlags", Start: 31, Len: 9, Kind: Code},
			Field{Col: "TokubaraiFlags", Start: 40, Len: 9, Kind: Code},
			Field{Col: "HenkanFlags", Start: 49, Len: 9, Kind: Code},
			Field{Col: "HenkanUma", Start: 58, Len: 28, Kind: Code},
			Field{Col: "HenkanWaku", Start: 86, Len: 8, Kind: Code},
			Field{Col: "HenkanDowaku", Start: 94, Len: 8, Kind: Code},
		),
		Groups: []Group{
			pay("TAN", 102, 13, 3, 2, 2),
			pay("FUKU", 141, 13, 5, 2, 2),
			pay("WAKU", 206, 13, 3, 2, 2),
			pay("UMAREN", 245, 16, 3, 4, 3),
			pay("WIDE", 293, 16, 7, 4, 3),
			pay("UMATAN", 453, 16, 6, 4, 3),
			pay("SANRENPUKU", 549, 18, 3, 6, 3),
			pay("SANRENTAN", 603, 19, 6, 6, 4),
		},
	}
}

// hyoFields is the vote-count slot shape shared by H1/H6 groups.
func hyoFields(kumiLen, ninkiLen int) []Field {
	return []Field{
		{Col: "Kumi", Start: 0, Len: kumiLen, Kind: Code},
		{Col: "Hyo", Start: kumiLen, Len: 11, Kind: Int},
		{Col: "Ninki", Start: kumiLen + 11, Len: ninkiLen, Kind: Int},
	}
}

func h1FullLayout() *Layout {
	hyo := func(bet string, start, stride, count, kumiLen, ninkiLen int) Group {
		return Group{
			Suffix: "H1_HYO",
			Const:  map[string]string{"BetType": bet},
			Start:  start, Stride: stride, Count: count,
			Fields: hyoFields(kumiLen, ninkiLen),
		}
	}
	return &Layout{
		Spec:   "H1",
		Length: 28955,
		Keys:   raceKeyCols(),
		Fields: fields(raceKey(),
			Field{Col: "TorokuTosu", Start: 27, Len: 2, Kind: Int},
			Field{Col: "SyussoTosu", Start: 29, Len: 2, Kind: Int},
			Field{Col: "HatsubaiFlags", Start: 31, Len: 7, Kind: Code},
			Field{Col: "FukuChakuBaraiKey", Start: 38, Len: 1, Kind: Code},
			Field{Col: "HenkanUma", Start: 39, Len: 28, Kind: Code},
			Field{Col: "HenkanWaku", Start: 67, Len: 8, Kind: Code},
			Field{Col: "HenkanDowaku", Start: 75, Len: 8, Kind: Code},
			Field{Col: "TanHyoTotal", Start: 28799, Len: 11, Kind: Int},
			Field{Col: "FukuHyoTotal", Start: 28810, Len: 11, Kind: Int},
			Field{Col: "WakuHyoTotal", Start: 28821, Len: 11, Kind: Int},
			Field{Col: "UmarenHyoTotal", Start: 28832, Len: 11, Kind: Int},
			Field{Col: "WideHyoTotal", Start: 28843, Len: 11, Kind: Int},
			Field{Col: "UmatanHyoTotal", Start: 28854, Len: 11, Kind: Int},
			Field{Col: "SanrenpukuHyoTotal", Start: 28865, Len: 11, Kind: Int},
			Field{Col: "TanHenkanTotal", Start: 28876, Len: 11, Kind: Int},
			Field{Col: "FukuHenkanTotal", Start: 28887, Len: 11, Kind: Int},
			Field{Col: "WakuHenkanTotal", Start: 28898, Len: 11, Kind: Int},
			Field{Col: "UmarenHenkanTotal", Start: 28909, Len: 11, Kind: Int},
			Field{Col: "WideHenkanTotal", Start: 28920, Len: 11, Kind: Int},
			Field{Col: "UmatanHenkanTotal", Start: 28931, Len: 11, Kind: Int},
			Field{Col: "SanrenpukuHenkanTotal", Start: 28942, Len: 11, Kind: Int},
		),
		Groups: []Group{
			hyo("TAN", 83, 15, 28, 2, 2),
			hyo("FUKU", 503, 15, 28, 2, 2),
			hyo("WAKU", 923, 15, 36, 2, 2),
			hyo("UMAREN", 1463, 18, 153, 4, 3),
			hyo("WIDE", 4217, 18, 153, 4, 3),
			hyo("UMATAN", 6971, 18, 306, 4, 3),
			hyo("SANRENPUKU", 12479, 20, 816, 6, 3),
		},
	}
}

// The Regional service delivers a short win-votes-only H1 variant.
func h1FlatLayout() *Layout {
	return &Layout{
		Spec:   "H1",
		Length: 317,
		Keys:   raceKeyCols(),
		Fields: fields(raceKey(),
			Field{Col: "TorokuTosu", Start: 27, Len: 2, Kind: Int},
			Field{Col: "SyussoTosu", Start: 29, Len: 2, Kind: Int},
			Field{Col: "HatsubaiFlags", Start: 31, Len: 7, Kind: Code},
			Field{Col: "FukuChakuBaraiKey", Start: 38, Len: 1, Kind: Code},
			Field{Col: "HenkanUma", Start: 39, Len: 3, Kind: Code},
		),
		Groups: []Group{{
			Suffix: "H1_HYO",
			Const:  map[string]string{"BetType": "TAN"},
			Start:  42, Stride: 15, Count: 18,
			Fields: hyoFields(2, 2),
		}},
	}
}

func h6Layout() *Layout {
	return &Layout{
		Spec:   "H6",
		Length: 102890,
		Keys:   raceKeyCols(),
		Fields: fields(raceKey(),
			Field{Col: "TorokuTosu", Start: 27, Len: 2, Kind: Int},
			Field{Col: "SyussoTosu", Start: 29, Len: 2, Kind: Int},
			Field{Col: "HatsubaiFlag", Start: 31, Len: 1, Kind: Code},
			Field{Col: "HenkanUma", Start: 32, Len: 18, Kind: Code},
			Field{Col: "SanrentanHyoTotal", Start: 102866, Len: 11, Kind: Int},
			Field{Col: "SanrentanHenkanTotal", Start: 102877, Len: 11, Kind: Int},
		),
		Groups: []Group{{
			Suffix: "H6_HYO",
			Const:  map[string]string{"BetType": "SANRENTAN"},
			Start:  50, Stride: 21, Count: 4896,
			Fields: hyoFields(6, 4),
		}},
	}
}
