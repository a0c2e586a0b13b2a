package pinin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhonemeNewNoFuzzy(t *testing.T) {
	p := newPhoneme("zh", FuzzySettings{}, KeyboardQuanpin)
	assert.Equal(t, []string{"zh"}, p.alternatives)
}

func TestPhonemeNewZh2z(t *testing.T) {
	p := newPhoneme("zh", FuzzySettings{Zh2z: true}, KeyboardQuanpin)
	assert.ElementsMatch(t, []string{"zh", "z"}, p.alternatives)
}

func TestPhonemeNewAng2an(t *testing.T) {
	p := newPhoneme("ang", FuzzySettings{Ang2an: true}, KeyboardQuanpin)
	assert.ElementsMatch(t, []string{"ang", "an"}, p.alternatives)
}

func TestPhonemeNewU2v(t *testing.T) {
	p := newPhoneme("ve", FuzzySettings{U2v: true}, KeyboardQuanpin)
	assert.ElementsMatch(t, []string{"ve", "ue"}, p.alternatives)
}

func TestPhonemeMatchStringFullPrefix(t *testing.T) {
	p := newPhoneme("zh", FuzzySettings{}, KeyboardQuanpin)
	source := toGraphemes("zhong")
	set := p.matchString(source, 0, false)
	require.True(t, set.Get(2))
}

func TestPhonemeMatchStringPartial(t *testing.T) {
	p := newPhoneme("zhong", FuzzySettings{}, KeyboardQuanpin)
	source := toGraphemes("zho")
	set := p.matchString(source, 0, true)
	assert.True(t, set.Get(3), "partial match may end mid-alternative once source is exhausted")
}

func TestPhonemeMatchStringNoPartialFails(t *testing.T) {
	p := newPhoneme("zhong", FuzzySettings{}, KeyboardQuanpin)
	source := toGraphemes("zho")
	set := p.matchString(source, 0, false)
	assert.True(t, set.Equal(NoneSet()))
}

func TestPhonemeIsEmpty(t *testing.T) {
	p := newPhoneme("", FuzzySettings{}, KeyboardQuanpin)
	assert.True(t, p.isEmpty())
	assert.True(t, p.matchString(toGraphemes("a"), 0, false).Equal(NoneSet()))
}

func TestPhonemeKeyStable(t *testing.T) {
	a := newPhoneme("zh", FuzzySettings{Zh2z: true}, KeyboardQuanpin)
	b := newPhoneme("zh", FuzzySettings{Zh2z: true}, KeyboardQuanpin)
	assert.Equal(t, a.key(), b.key())
}
