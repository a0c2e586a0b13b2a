package pinin

// Keyboard describes one input layout: an optional preprocessor map for
// free-standing syllables (Daqian), an optional phoneme→keystroke map, the
// syllable cutter function, and the duo/sequence flags that drive Pinyin
// matching semantics.
type Keyboard struct {
	name     string
	local    map[string]string
	keys     map[string]string
	cutter   func(s string) []string
	Duo      bool
	Sequence bool
}

// Keys maps a single alternative spelling through the keyboard's
// phoneme→keystroke table, passing it through unchanged if absent.
func (k *Keyboard) Keys(s string) string {
	if k.keys == nil {
		return s
	}
	if mapped, ok := k.keys[s]; ok {
		return mapped
	}
	return s
}

// Split cuts a raw syllable string into its phoneme strings. If the
// keyboard has a local preprocessor map (Daqian), the syllable minus its
// final grapheme (the tone) is looked up there first; a hit splices the
// alternative spelling back in ahead of the tone before cutting.
func (k *Keyboard) Split(s string) []string {
	if k.local != nil {
		withoutTone := removeLastGrapheme(s)
		if alt, ok := k.local[withoutTone]; ok {
			return k.cutter(alt + lastGrapheme(s))
		}
	}
	return k.cutter(s)
}

// standardCutter splits s into up to three phonemes: an initial (1 char,
// or 2 when the second char is 'h', covering zh/ch/sh), a final spanning
// everything between the initial and the last grapheme, and the tone (the
// last grapheme). Syllables with no initial consonant (starting with a
// bare vowel) omit the initial phoneme.
func standardCutter(s string) []string {
	graphemes := toGraphemes(s)
	if len(graphemes) == 0 {
		return nil
	}

	var ret []string
	cursor := 0
	if hasInitial(s) {
		cursor = 1
		if len(graphemes) > 2 && graphemes[1] == "h" {
			cursor = 2
		}
		ret = append(ret, joinGraphemes(graphemes[:cursor]))
	}

	if len(graphemes) != cursor+1 {
		ret = append(ret, joinGraphemes(graphemes[cursor:len(graphemes)-1]))
	}

	ret = append(ret, graphemes[len(graphemes)-1])
	return ret
}

// zeroCutter applies standardCutter and, for double-pinyin keyboards,
// further splits a two-grapheme final into two single-grapheme phonemes
// so that each phoneme corresponds to exactly one keystroke.
func zeroCutter(s string) []string {
	ss := standardCutter(s)
	if len(ss) != 2 {
		return ss
	}
	finale := ss[0]
	fg := toGraphemes(finale)
	out := make([]string, 2, 2)
	out[0] = fg[0]
	if len(fg) == 2 {
		out[1] = fg[1]
	} else {
		out[1] = finale
	}
	return append(out, ss[1])
}

func joinGraphemes(gs []string) string {
	total := 0
	for _, g := range gs {
		total += len(g)
	}
	b := make([]byte, 0, total)
	for _, g := range gs {
		b = append(b, g...)
	}
	return string(b)
}

var daqianKeys = map[string]string{
	"": "", "0": "", "1": " ", "2": "6", "3": "3",
	"4": "4", "a": "8", "ai": "9", "an": "0", "ang": ";",
	"ao": "l", "b": "1", "c": "h", "ch": "t", "d": "2",
	"e": "k", "ei": "o", "en": "p", "eng": "/", "er": "-",
	"f": "z", "g": "e", "h": "c", "i": "u", "ia": "u8",
	"ian": "u0", "iang": "u;", "iao": "ul", "ie": "u,", "in": "up",
	"ing": "u/", "iong": "m/", "iu": "u.", "j": "r", "k": "d",
	"l": "x", "m": "a", "n": "s", "o": "i", "ong": "j/",
	"ou": ".", "p": "q", "q": "f", "r": "b", "s": "n",
	"sh": "g", "t": "w", "u": "j", "ua": "j8", "uai": "j9",
	"uan": "j0", "uang": "j;", "uen": "mp", "ueng": "j/", "ui": "jo",
	"un": "jp", "uo": "ji", "v": "m", "van": "m0", "vang": "m;",
	"ve": "m,", "vn": "mp", "w": "j", "x": "v", "y": "u",
}

var xiaoheKeys = map[string]string{
	"ai": "d", "an": "j", "ang": "h", "ao": "c", "ch": "i",
	"ei": "w", "en": "f", "eng": "g", "ia": "x", "ian": "m",
	"iang": "l", "iao": "n", "ie": "p", "in": "b", "ing": "k",
	"iong": "s", "iu": "q", "ong": "s", "ou": "z", "sh": "u",
	"ua": "x", "uai": "k", "uan": "r", "uang": "l", "ui": "v",
	"un": "y", "uo": "o", "ve": "t", "ue": "t", "vn": "y",
}

var ziranmaKeys = map[string]string{
	"ai": "l", "an": "j", "ang": "h", "ao": "k", "ch": "i",
	"ei": "z", "en": "f", "eng": "g", "ia": "w", "ian": "m",
	"iang": "d", "iao": "c", "ie": "x", "in": "n", "ing": "y",
	"iong": "s", "iu": "q", "ong": "s", "ou": "b", "sh": "u",
	"ua": "w", "uai": "y", "uan": "r", "uang": "d", "ui": "v",
	"un": "p", "uo": "o", "ve": "t", "ue": "t", "vn": "p",
	"zh": "v",
}

var phoneticLocalKeys = map[string]string{
	"yi": "i", "you": "iu", "yin": "in", "ye": "ie", "ying": "ing",
	"wu": "u", "wen": "un", "yu": "v", "yue": "ve", "yuan": "van",
	"yun": "vn", "ju": "jv", "jue": "jve", "juan": "jvan", "jun": "jvn",
	"qu": "qv", "que": "qve", "quan": "qvan", "qun": "qvn", "xu": "xv",
	"xue": "xve", "xuan": "xvan", "xun": "xvn", "shi": "sh", "si": "s",
	"chi": "ch", "ci": "c", "zhi": "zh", "zi": "z", "ri": "r",
}

// KeyboardQuanpin is the full-pinyin keyboard: no key-table remapping, the
// standard cutter, and the sequence-matching shortcut enabled.
var KeyboardQuanpin = &Keyboard{
	name:     "quanpin",
	cutter:   standardCutter,
	Duo:      false,
	Sequence: true,
}

// KeyboardDaqian is the Taiwanese Zhuyin/bopomofo keyboard: ASCII
// keystrokes mapped through daqianKeys, with a local preprocessor for
// free-standing syllables like "yi" -> "i".
var KeyboardDaqian = &Keyboard{
	name:     "daqian",
	local:    phoneticLocalKeys,
	keys:     daqianKeys,
	cutter:   standardCutter,
	Duo:      false,
	Sequence: false,
}

// KeyboardXiaohe is the Xiaohe (小鹤) double-pinyin scheme.
var KeyboardXiaohe = &Keyboard{
	name:   "xiaohe",
	keys:   xiaoheKeys,
	cutter: zeroCutter,
	Duo:    true,
}

// KeyboardZiranma is the Ziranma (自然码) double-pinyin scheme.
var KeyboardZiranma = &Keyboard{
	name:   "ziranma",
	keys:   ziranmaKeys,
	cutter: zeroCutter,
	Duo:    true,
}

// keyboardByName resolves the Context "keyboard" config option's string
// value to a Keyboard instance.
func keyboardByName(name string) (*Keyboard, bool) {
	switch name {
	case "", "quanpin", "full", "fullpinyin":
		return KeyboardQuanpin, true
	case "daqian", "zhuyin", "bopomofo":
		return KeyboardDaqian, true
	case "xiaohe":
		return KeyboardXiaohe, true
	case "ziranma":
		return KeyboardZiranma, true
	default:
		return nil, false
	}
}
