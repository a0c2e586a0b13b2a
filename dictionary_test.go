package pinin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pinin "github.com/lasmgratel/pinin-go"
)

func TestLoadDictionaryParsesWellFormedLines(t *testing.T) {
	ctx := pinin.NewContext()
	src := "测: ce4\n试: shi4, shi2\n"

	summary, err := ctx.LoadDictionary(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Loaded)
	assert.Equal(t, 0, summary.Skipped)

	assert.True(t, ctx.Matches("测", "ce4"))
	assert.True(t, ctx.Matches("试", "shi4"))
	assert.True(t, ctx.Matches("试", "shi2"))
}

func TestLoadDictionarySkipsBlankLinesAndComments(t *testing.T) {
	ctx := pinin.NewContext()
	src := "\n# a comment\n测: ce4\n\n"

	summary, err := ctx.LoadDictionary(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Loaded)
	assert.Equal(t, 0, summary.Skipped)
}

func TestLoadDictionaryCountsMalformedLinesAsSkippedNotFatal(t *testing.T) {
	ctx := pinin.NewContext()
	src := "测 ce4\n试: shi4\nab: wrong4\n"

	summary, err := ctx.LoadDictionary(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Loaded)
	assert.Equal(t, 2, summary.Skipped)
}

func TestLoadDictionaryEmptyReadingListStillRegistersCharacter(t *testing.T) {
	ctx := pinin.NewContext()
	src := "测:\n"

	summary, err := ctx.LoadDictionary(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Loaded)

	assert.True(t, ctx.Matches("测", "测"), "a registered but untypable character still matches by literal code point")
	assert.False(t, ctx.Matches("测", "ce4"))
}

func TestLoadDictionarySummaryStringReflectsSkipCount(t *testing.T) {
	clean := pinin.LoadSummary{Loaded: 3}
	assert.Contains(t, clean.String(), "loaded 3 characters")
	assert.NotContains(t, clean.String(), "skipped")

	dirty := pinin.LoadSummary{Loaded: 3, Skipped: 1}
	assert.Contains(t, dirty.String(), "1 lines skipped")
}

func TestLoadFromPinyinGathersHeteronyms(t *testing.T) {
	ctx := pinin.NewContext()
	summary := pinin.LoadFromPinyin(ctx, "测")

	assert.Equal(t, 1, summary.Loaded)
	assert.Equal(t, 0, summary.NoReading)
	assert.True(t, ctx.Matches("测", "ce4"))
}

func TestLoadFromPinyinSkipsNonHanRunesAsNoReading(t *testing.T) {
	ctx := pinin.NewContext()
	summary := pinin.LoadFromPinyin(ctx, "A测")

	assert.Equal(t, 1, summary.Loaded)
	assert.Equal(t, 1, summary.NoReading)
}

func TestLoadFromPinyinDeduplicatesRepeatedRunes(t *testing.T) {
	ctx := pinin.NewContext()
	summary := pinin.LoadFromPinyin(ctx, "测测测")

	assert.Equal(t, 1, summary.Loaded, "each distinct rune is only processed once")
}
