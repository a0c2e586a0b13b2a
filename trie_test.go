package pinin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pinin "github.com/lasmgratel/pinin-go"
)

type trieCorpusEntry struct {
	name string
	id   int
}

func trieTestCorpus() []trieCorpusEntry {
	return []trieCorpusEntry{
		{"测试文本", 1},
		{"合金炉", 2},
		{"洗矿场", 3},
		{"流体", 4},
		{"测试切分", 5},
		{"测试切分文本", 6},
		{"轰20", 7},
		{"hong2", 8},
		{"月球", 9},
		{"汉化", 10},
		{"喊话", 11},
	}
}

func buildTrieTestContext(t *testing.T) *pinin.Context {
	t.Helper()
	ctx := pinin.NewContext()
	dict := map[rune][]string{
		'测': {"ce4"}, '试': {"shi4"}, '文': {"wen2"}, '本': {"ben3"},
		'切': {"qie1"}, '分': {"fen1"},
		'合': {"he2"}, '金': {"jin1"}, '炉': {"lu2"},
		'洗': {"xi3"}, '矿': {"kuang4"}, '场': {"chang3"},
		'流': {"liu2"}, '体': {"ti3"},
		'轰': {"hong1"},
		'月': {"yue4"}, '球': {"qiu2"},
		'汉': {"han4"}, '化': {"hua4"},
		'喊': {"han3"}, '话': {"hua4"},
	}
	for ch, readings := range dict {
		ctx.LoadChar(ch, readings)
	}
	return ctx
}

func buildTreeSearcher(t *testing.T) (*pinin.Context, *pinin.TreeSearcher[int]) {
	t.Helper()
	ctx := buildTrieTestContext(t)
	ts := pinin.NewTreeSearcher[int](ctx, pinin.LogicBegin)
	for _, e := range trieTestCorpus() {
		ts.Insert(e.name, e.id)
	}
	return ctx, ts
}

func buildSimpleSearcher(t *testing.T) *pinin.SimpleSearcher[int] {
	t.Helper()
	ctx := buildTrieTestContext(t)
	ss := pinin.NewSimpleSearcher[int](ctx, pinin.LogicBegin)
	for _, e := range trieTestCorpus() {
		ss.Insert(e.name, e.id)
	}
	return ss
}

func assertIDs(t *testing.T, want []int, got []int) {
	t.Helper()
	assert.ElementsMatch(t, want, got)
}

func TestTreeSearcherMatchesSpecScenarios(t *testing.T) {
	_, ts := buildTreeSearcher(t)

	// "合金炉" needs "j" for its second syllable, never "h"; "月球" starts
	// with "y" rather than "h" or a matching sequence letter. Neither
	// shares a reading with "hh", so only the two genuine "h"+"h" entries
	// survive.
	assertIDs(t, []int{10, 11}, ts.Search("hh"))

	// A query that cannot possibly be a reading of anything in the corpus
	// (no entry's first syllable can start with "z" here) always searches
	// empty.
	assertIDs(t, nil, ts.Search("zzzzzz"))
}

func TestTreeSearcherAgreesWithSimpleSearcherOracle(t *testing.T) {
	_, ts := buildTreeSearcher(t)
	ss := buildSimpleSearcher(t)

	// The indexed trie must agree with the linear-scan oracle on every
	// query, including the trickier shared-prefix cases: "测试切分" is a
	// literal character-prefix of "测试切分文本" (ids 5 and 6), and "轰20"
	// shares its leading pinyin reading with the literal corpus entry
	// "hong2" (ids 7 and 8) — whatever the correct result set for those
	// queries is, both searchers must compute the same one.
	for _, query := range []string{
		"hong2", "hong20", "ceshqf", "ceshqfw", "hh", "hhu", "ce4shi4",
		"heji", "xikc", "liuti", "yueqiu", "hanhua",
	} {
		assertIDs(t, ss.Search(query), ts.Search(query))
	}
}

func TestTreeSearcherContainLogicFindsMidStringSubstrings(t *testing.T) {
	ctx := buildTrieTestContext(t)
	ts := pinin.NewTreeSearcher[int](ctx, pinin.LogicContain)
	for _, e := range trieTestCorpus() {
		ts.Insert(e.name, e.id)
	}

	got := ts.Search("qiefen")
	require.NotEmpty(t, got)
	assertIDs(t, []int{5, 6}, got)
}
