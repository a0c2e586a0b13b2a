package pinin

// Pinyin is a single interned syllable reading: a raw romanised string
// (e.g. "zhong1"), a stable dense id assigned on first sight by the
// Context, the duo/sequence flags inherited from the active keyboard at
// creation time, and its split phonemes (initial, final, tone — the
// initial may be absent).
type Pinyin struct {
	Raw       string
	ID        int
	Duo       bool
	Sequence  bool
	phonemes  []Phoneme
}

// newPinyin splits s via the keyboard's cutter and builds a Phoneme for
// each resulting piece.
func newPinyin(s string, fuzzy FuzzySettings, kb *Keyboard, id int) *Pinyin {
	parts := kb.Split(s)
	phonemes := make([]Phoneme, len(parts))
	for i, part := range parts {
		phonemes[i] = newPhoneme(part, fuzzy, kb)
	}
	return &Pinyin{
		Raw:      s,
		ID:       id,
		Duo:      kb.Duo,
		Sequence: kb.Sequence,
		phonemes: phonemes,
	}
}

// matchString composes phoneme matches against the query's grapheme
// sequence, starting at grapheme offset start.
//
// Double-pinyin keyboards (duo) encode each phoneme as a single keystroke:
// phoneme[0] then phoneme[1] apply in sequence; if a third phoneme (the
// tone) exists, it is applied to the accumulated result and unioned rather
// than chained, since in Xiaohe/Ziranma schemes the tone keystroke is
// independent of whether it was actually typed.
//
// Other keyboards enforce that later phonemes cannot match unless every
// earlier phoneme did: "active" starts at {0} and is replaced (not merely
// unioned) by each phoneme's match over the running active set, and each
// non-empty active set is unioned into the result. Matching stops the
// moment any phoneme fails to advance, keeping what was accumulated so
// far. If the keyboard's sequence flag is set and the initial phoneme
// starts with the query's first grapheme at start, bit 1 is also set in
// the result — the "just the initial letter" shortcut (e.g. "stou" for 石头).
func (p *Pinyin) matchString(query []string, start int, partial bool) IndexSet {
	if p.Duo {
		ret := ZeroSet()
		ret = p.phonemes[0].matchStringIdx(query, ret, start, partial)
		ret = p.phonemes[1].matchStringIdx(query, ret, start, partial)
		if len(p.phonemes) == 3 {
			third := p.phonemes[2].matchStringIdx(query, ret, start, partial)
			ret.Merge(third)
		}
		return ret
	}

	active := ZeroSet()
	ret := NoneSet()
	for _, phoneme := range p.phonemes {
		active = phoneme.matchStringIdx(query, active, start, partial)
		if active.Equal(NoneSet()) {
			break
		}
		ret.Merge(active)
	}

	if p.Sequence && len(p.phonemes) > 0 && start < len(query) &&
		p.phonemes[0].matchesSequenceStart(query[start]) {
		ret.Set(1)
	}

	return ret
}

// hasInitial reports whether s begins with a consonant rather than one of
// the bare vowel letters a/e/i/o/u/v.
func hasInitial(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case 'a', 'e', 'i', 'o', 'u', 'v':
		return false
	default:
		return true
	}
}
