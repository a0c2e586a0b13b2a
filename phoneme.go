package pinin

import (
	"sort"
	"strings"
)

// Phoneme holds one or more alternative keystroke spellings for a single
// initial/final/tone unit of a syllable. Alternatives beyond the original
// spelling arise from fuzzy rules and the active keyboard's key-table.
type Phoneme struct {
	alternatives []string
}

// newPhoneme builds a Phoneme from a raw phoneme string s, expanding fuzzy
// alternatives and mapping every alternative through the keyboard's
// key-table, following elements.rs's Phoneme::new.
func newPhoneme(s string, fuzzy FuzzySettings, kb *Keyboard) Phoneme {
	set := map[string]struct{}{s: {}}

	if len(s) > 0 {
		switch s[0] {
		case 'c':
			if fuzzy.Ch2c {
				set["c"] = struct{}{}
				set["ch"] = struct{}{}
			}
		case 's':
			if fuzzy.Sh2s {
				set["s"] = struct{}{}
				set["sh"] = struct{}{}
			}
		case 'z':
			if fuzzy.Zh2z {
				set["z"] = struct{}{}
				set["zh"] = struct{}{}
			}
		case 'v':
			if fuzzy.U2v {
				set["u"+s[1:]] = struct{}{}
			}
		}
	}

	if (fuzzy.Ang2an && hasSuffix(s, "ang")) ||
		(fuzzy.Eng2en && hasSuffix(s, "eng")) ||
		(fuzzy.Ing2in && hasSuffix(s, "ing")) {
		set[s[:len(s)-1]] = struct{}{}
	}

	if (fuzzy.Ang2an && hasSuffix(s, "an")) ||
		(fuzzy.Eng2en && hasSuffix(s, "en")) ||
		(fuzzy.Ing2in && hasSuffix(s, "in")) {
		set[s+"g"] = struct{}{}
	}

	alts := make([]string, 0, len(set))
	for a := range set {
		alts = append(alts, kb.Keys(a))
	}
	return Phoneme{alternatives: dedupeStrings(alts)}
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func dedupeStrings(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	out := ss[:0:0]
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// key returns a value suitable for using p as a map key (Go disallows
// slices, including the alternatives field, as map keys directly).
func (p Phoneme) key() string {
	alts := append([]string(nil), p.alternatives...)
	sort.Strings(alts)
	return strings.Join(alts, "\x00")
}

// isEmpty reports whether this phoneme is the single empty-string form,
// which match_string treats as "matched zero" without consuming input.
func (p Phoneme) isEmpty() bool {
	return len(p.alternatives) == 1 && p.alternatives[0] == ""
}

// graphemePrefixLen returns the length, in graphemes, of the common prefix
// between source (starting at grapheme index start) and alt.
func graphemePrefixLen(source []string, start int, alt []string) int {
	max := len(source) - start
	if len(alt) < max {
		max = len(alt)
	}
	n := 0
	for n < max && source[start+n] == alt[n] {
		n++
	}
	return n
}

// matchString returns the IndexSet of grapheme counts this phoneme could
// consume from source (a pre-split grapheme slice) starting at start.
// partial accepts a match that runs out of source mid-alternative.
func (p Phoneme) matchString(source []string, start int, partial bool) IndexSet {
	ret := NoneSet()
	if p.isEmpty() {
		return ret
	}
	for _, a := range p.alternatives {
		altGraphemes := toGraphemes(a)
		k := graphemePrefixLen(source, start, altGraphemes)
		if k == len(altGraphemes) || (partial && start+k == len(source)) {
			ret.Set(k)
		}
	}
	return ret
}

// matchStringIdx composes match_string over every member of idx: for each
// bit i, it matches at start+i and left-shifts the result by i, unioning
// across all members. An empty phoneme passes idx through unchanged.
func (p Phoneme) matchStringIdx(source []string, idx IndexSet, start int, partial bool) IndexSet {
	if p.isEmpty() {
		return idx
	}
	ret := NoneSet()
	idx.ForEach(func(i int) {
		set := p.matchString(source, start+i, partial)
		set.Offset(i)
		ret.Merge(set)
	})
	return ret
}

// matchesSequenceStart reports whether any alternative begins with c,
// used by full-pinyin sequence-mode's "just the initial letter" shortcut.
func (p Phoneme) matchesSequenceStart(c string) bool {
	for _, a := range p.alternatives {
		if firstGrapheme(a) == c {
			return true
		}
	}
	return false
}
