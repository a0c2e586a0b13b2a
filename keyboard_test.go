package pinin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardCutterWithInitial(t *testing.T) {
	assert.Equal(t, []string{"zh", "ong", "1"}, standardCutter("zhong1"))
}

func TestStandardCutterSingleCharInitial(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "1"}, standardCutter("ba1"))
}

func TestStandardCutterNoInitial(t *testing.T) {
	assert.Equal(t, []string{"ang", "1"}, standardCutter("ang1"))
}

func TestStandardCutterOneGraphemeFinale(t *testing.T) {
	assert.Equal(t, []string{"zh", "i", "4"}, standardCutter("zhi4"))
}

func TestZeroCutterSplitsTwoGraphemeFinale(t *testing.T) {
	// "ao1" has no initial consonant, so standardCutter folds it into a
	// two-element ["ao", "1"] result; zeroCutter then splits the
	// two-grapheme finale "ao" into its own two keystroke slots.
	got := zeroCutter("ao1")
	assert.Equal(t, []string{"a", "o", "1"}, got)
}

func TestZeroCutterLeavesInitialFinaleToneAlone(t *testing.T) {
	// "zhong1" already has three standardCutter elements (initial, finale,
	// tone); zeroCutter only rewrites the no-initial, two-element shape.
	got := zeroCutter("zhong1")
	assert.Equal(t, standardCutter("zhong1"), got)
}

func TestHasInitial(t *testing.T) {
	assert.True(t, hasInitial("zhong1"))
	assert.False(t, hasInitial("ang1"))
	assert.False(t, hasInitial(""))
}

func TestKeyboardSplitDaqianLocalPreprocessor(t *testing.T) {
	got := KeyboardDaqian.Split("yi1")
	assert.Equal(t, standardCutter("i1"), got)
}

func TestKeyboardKeysPassesThroughUnmapped(t *testing.T) {
	assert.Equal(t, "xyz", KeyboardQuanpin.Keys("xyz"))
}

func TestKeyboardDaqianKeysMapsPhonemes(t *testing.T) {
	assert.Equal(t, "8", KeyboardDaqian.Keys("a"))
}

func TestKeyboardByName(t *testing.T) {
	kb, ok := keyboardByName("daqian")
	assert.True(t, ok)
	assert.Same(t, KeyboardDaqian, kb)

	_, ok = keyboardByName("nonexistent")
	assert.False(t, ok)
}
