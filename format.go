package pinin

import "strings"

// toneOffsetFinals lists the finals whose diacritic tone mark lands on the
// SECOND vowel grapheme rather than the first, per standard pinyin
// orthography (e.g. "hui" carries the mark on the "i" of "ui", not the "u").
var toneOffsetFinals = map[string]bool{
	"ui": true, "iu": true, "uan": true, "uang": true, "ian": true,
	"iang": true, "ua": true, "ie": true, "uo": true, "iong": true,
	"iao": true, "ve": true, "ia": true,
}

var toneNone = map[string]string{"a": "a", "o": "o", "e": "e", "i": "i", "u": "u", "v": "ü"}
var toneFirst = map[string]string{"a": "ā", "o": "ō", "e": "ē", "i": "ī", "u": "ū", "v": "ǖ"}
var toneSecond = map[string]string{"a": "á", "o": "ó", "e": "é", "i": "í", "u": "ú", "v": "ǘ"}
var toneThird = map[string]string{"a": "ǎ", "o": "ǒ", "e": "ě", "i": "ǐ", "u": "ǔ", "v": "ǚ"}
var toneFourth = map[string]string{"a": "à", "o": "ò", "e": "è", "i": "ì", "u": "ù", "v": "ǜ"}

var toneGroups = []map[string]string{toneNone, toneFirst, toneSecond, toneThird, toneFourth}

// zhuyinSymbols maps every initial, final, and tone digit to its Zhuyin
// (bopomofo) glyph or diacritic. The empty-string and "1" (first tone)
// entries are empty: first tone and finals with no bopomofo-distinct vowel
// carry no visible mark.
var zhuyinSymbols = map[string]string{
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "er": "ㄦ", "ai": "ㄞ", "ei": "ㄟ",
	"ao": "ㄠ", "ou": "ㄡ", "an": "ㄢ", "en": "ㄣ", "ang": "ㄤ", "eng": "ㄥ",
	"ong": "ㄨㄥ", "i": "ㄧ", "ia": "ㄧㄚ", "iao": "ㄧㄠ", "ie": "ㄧㄝ", "iu": "ㄧㄡ",
	"ian": "ㄧㄢ", "in": "ㄧㄣ", "iang": "ㄧㄤ", "ing": "ㄧㄥ", "iong": "ㄩㄥ", "u": "ㄨ",
	"ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ", "ui": "ㄨㄟ", "uan": "ㄨㄢ", "un": "ㄨㄣ",
	"uang": "ㄨㄤ", "ueng": "ㄨㄥ", "uen": "ㄩㄣ", "v": "ㄩ", "ve": "ㄩㄝ", "van": "ㄩㄢ",
	"vang": "ㄩㄤ", "vn": "ㄩㄣ", "b": "ㄅ", "p": "ㄆ", "m": "ㄇ", "f": "ㄈ",
	"d": "ㄉ", "t": "ㄊ", "n": "ㄋ", "l": "ㄌ", "g": "ㄍ", "k": "ㄎ",
	"h": "ㄏ", "j": "ㄐ", "q": "ㄑ", "x": "ㄒ", "zh": "ㄓ", "ch": "ㄔ",
	"sh": "ㄕ", "r": "ㄖ", "z": "ㄗ", "c": "ㄘ", "s": "ㄙ", "w": "ㄨ",
	"y": "ㄧ", "1": "", "2": "ˊ", "3": "ˇ", "4": "ˋ", "0": "˙", "": "",
}

// FormatRaw returns a Pinyin's raw syllable with its trailing tone digit
// stripped, e.g. "zhong1" -> "zhong".
func FormatRaw(p *Pinyin) string {
	return removeLastGrapheme(p.Raw)
}

// FormatNumber returns a Pinyin's raw syllable unchanged, tone digit and
// all, e.g. "zhong1".
func FormatNumber(p *Pinyin) string {
	return p.Raw
}

// FormatUnicode renders a Pinyin with a precomposed diacritic tone mark on
// the appropriate final vowel, e.g. "zhong1" -> "zhōng".
func FormatUnicode(p *Pinyin) string {
	s := p.Raw
	graphemes := toGraphemes(s)
	if len(graphemes) == 0 {
		return s
	}

	var initial, finale string
	if hasInitial(s) {
		cursor := 1
		if len(graphemes) > 2 && graphemes[1] == "h" {
			cursor = 2
		}
		initial = joinGraphemes(graphemes[:cursor])
		finale = joinGraphemes(graphemes[cursor : len(graphemes)-1])
	} else {
		finale = removeLastGrapheme(s)
	}

	toneDigit := graphemes[len(graphemes)-1]
	toneIdx := 0
	switch toneDigit {
	case "1":
		toneIdx = 1
	case "2":
		toneIdx = 2
	case "3":
		toneIdx = 3
	case "4":
		toneIdx = 4
	}
	group := toneGroups[toneIdx]

	offset := 0
	if toneOffsetFinals[finale] {
		offset = 1
	}

	finaleGraphemes := toGraphemes(finale)
	var b strings.Builder
	b.WriteString(initial)
	for i, g := range finaleGraphemes {
		if i == offset {
			if marked, ok := group[g]; ok {
				b.WriteString(marked)
				continue
			}
		}
		b.WriteString(g)
	}
	return b.String()
}

// FormatPhonetic renders a Pinyin in Taiwanese Zhuyin (bopomofo) notation,
// e.g. "zhong1" -> "ㄓㄨㄥ".
func FormatPhonetic(p *Pinyin) string {
	s := p.Raw
	withoutTone := removeLastGrapheme(s)
	if alt, ok := phoneticLocalKeys[withoutTone]; ok {
		s = alt + lastGrapheme(s)
	}

	graphemes := toGraphemes(s)
	var initial, finale string
	if hasInitial(s) {
		cursor := 1
		if len(graphemes) > 2 && graphemes[1] == "h" {
			cursor = 2
		}
		initial = joinGraphemes(graphemes[:cursor])
		finale = joinGraphemes(graphemes[cursor : len(graphemes)-1])
	} else {
		finale = joinGraphemes(graphemes[:len(graphemes)-1])
	}
	tone := graphemes[len(graphemes)-1]

	weak := tone == "0"
	var b strings.Builder
	if weak {
		b.WriteString(zhuyinSymbols[tone])
	}
	b.WriteString(zhuyinSymbols[initial])
	b.WriteString(zhuyinSymbols[finale])
	if !weak {
		b.WriteString(zhuyinSymbols[tone])
	}
	return b.String()
}
