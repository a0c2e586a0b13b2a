package pinin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pinin "github.com/lasmgratel/pinin-go"
)

func newTestPinyin(t *testing.T, raw string) *pinin.Pinyin {
	t.Helper()
	ctx := pinin.NewContext()
	ctx.LoadChar('测', []string{raw})
	ch := ctx.GetCharacter('测')
	require.Len(t, ch.Readings, 1)
	return ch.Readings[0]
}

func TestFormatRawStripsToneDigit(t *testing.T) {
	p := newTestPinyin(t, "zhong1")
	assert.Equal(t, "zhong", pinin.FormatRaw(p))
}

func TestFormatNumberKeepsToneDigit(t *testing.T) {
	p := newTestPinyin(t, "zhong1")
	assert.Equal(t, "zhong1", pinin.FormatNumber(p))
}

func TestFormatUnicodePlacesMarkOnMainVowel(t *testing.T) {
	assert.Equal(t, "zhōng", pinin.FormatUnicode(newTestPinyin(t, "zhong1")))
	assert.Equal(t, "mǎ", pinin.FormatUnicode(newTestPinyin(t, "ma3")))
}

func TestFormatUnicodeOffsetFinalPlacesMarkOnSecondVowel(t *testing.T) {
	// "hui" is one of the finals whose tone mark conventionally lands on
	// the second vowel grapheme ("i") rather than the first ("u").
	assert.Equal(t, "huì", pinin.FormatUnicode(newTestPinyin(t, "hui4")))
}

func TestFormatUnicodeNeutralToneLeavesVowelsBare(t *testing.T) {
	assert.Equal(t, "ma", pinin.FormatUnicode(newTestPinyin(t, "ma0")))
}

func TestFormatPhoneticRendersZhuyin(t *testing.T) {
	assert.Equal(t, "ㄓㄨㄥ", pinin.FormatPhonetic(newTestPinyin(t, "zhong1")))
}

func TestFormatPhoneticFirstToneCarriesNoMark(t *testing.T) {
	assert.Equal(t, "ㄧ", pinin.FormatPhonetic(newTestPinyin(t, "yi1")))
}

func TestFormatPhoneticNeutralToneMarkLeadsTheSyllable(t *testing.T) {
	got := pinin.FormatPhonetic(newTestPinyin(t, "ma0"))
	assert.Equal(t, "˙ㄇㄚ", got)
}
