package pinin

// Accelerator is a memoising matcher bound to a Context: given a CharProvider
// over some source (a plain string or a Compressor-backed trie arena) and a
// query string, it answers Matches/Begins/Contains without recomputing a
// reading's phoneme match more than once.
//
// The cache is indexed by QUERY offset (how many query graphemes have been
// consumed so far), and each row is an IndexSetStorage keyed by Pinyin.ID —
// not by source position. A reading's match against the query from a given
// offset depends only on the reading and the offset, never on which source
// character happened to carry that reading, so two different characters
// sharing a pronunciation reuse the same cached entry. This is what makes
// the accelerator worth it for the trie searcher, where many names share
// common characters.
type Accelerator struct {
	ctx      *Context
	provider CharProvider

	rawQuery string
	query    []string
	partial  bool

	cache []*IndexSetStorage
}

func newAccelerator(ctx *Context) *Accelerator {
	return &Accelerator{ctx: ctx}
}

// SetProvider installs a new source. The cache does not depend on the
// provider's identity (only on query offset and pinyin id), so it is left
// intact; callers that swap sources entirely should call Reset too.
func (a *Accelerator) SetProvider(p CharProvider) {
	a.provider = p
}

// Search installs query as the active query string, resetting the cache
// when the query text actually changes.
func (a *Accelerator) Search(query string) {
	if query == a.rawQuery {
		return
	}
	a.rawQuery = query
	a.query = toGraphemes(query)
	a.Reset()
}

// Reset drops all memoised results, e.g. when the dictionary's readings for
// an already-visited character have changed.
func (a *Accelerator) Reset() {
	a.cache = nil
}

func (a *Accelerator) row(offset int) *IndexSetStorage {
	if offset >= len(a.cache) {
		grown := make([]*IndexSetStorage, offset+1)
		copy(grown, a.cache)
		a.cache = grown
	}
	if a.cache[offset] == nil {
		a.cache[offset] = NewIndexSetStorage()
	}
	return a.cache[offset]
}

// GetPinyin returns p's match against the active query at grapheme offset,
// memoising the result per (offset, p.ID).
func (a *Accelerator) GetPinyin(p *Pinyin, offset int) IndexSet {
	row := a.row(offset)
	if cached := row.Get(p.ID); !cached.IsNull() {
		return cached
	}
	set := p.matchString(a.query, offset, a.partial)
	row.Set(set, p.ID)
	return set
}

// Get returns the IndexSet of query-grapheme counts consumable by ch at
// query offset: {1} if the query itself spells out ch's code point there,
// unioned with every one of ch's dictionary readings via GetPinyin.
func (a *Accelerator) Get(ch rune, offset int) IndexSet {
	ret := NoneSet()
	if offset < len(a.query) && firstRune(a.query[offset]) == ch {
		ret = OneSet()
	}
	for _, p := range a.ctx.GetCharacter(ch).Readings {
		ret.Merge(a.GetPinyin(p, offset))
	}
	return ret
}

// Check recursively tests whether the query, from grapheme offset, matches
// the source (via the accelerator's provider) from position start onward.
// The accelerator's partial flag (set by Matches/Begins/Contains before
// recursing) selects begins/contains semantics (true, a match may end with
// source input still unconsumed) or exact matches semantics (false, both
// must end together).
func (a *Accelerator) Check(offset, start int) bool {
	if offset == len(a.query) {
		return a.partial || a.provider.End(start)
	}
	if a.provider.End(start) {
		return false
	}

	set := a.Get(a.provider.CharAt(start), offset)

	if a.provider.End(start + 1) {
		return set.Get(len(a.query) - offset)
	}

	return set.Traverse(func(i int) bool {
		return a.Check(offset+i, start+1)
	})
}

// setPartial installs the partial flag for the call about to be made,
// dropping the cache only when the flag actually changes value — cached
// IndexSets are computed under a specific partial setting and are not
// valid once it flips, but stay valid across repeated calls that keep it
// the same (e.g. calling Contains for every candidate offset in a loop).
func (a *Accelerator) setPartial(partial bool) {
	if a.cache != nil && a.partial == partial {
		return
	}
	a.partial = partial
	a.Reset()
}

// Matches reports whether the query, applied from grapheme offset, fully
// matches the source from start to its end.
func (a *Accelerator) Matches(offset, start int) bool {
	a.setPartial(false)
	return a.Check(offset, start)
}

// Begins reports whether the source, from start, begins with a prefix
// matching the query applied from grapheme offset.
func (a *Accelerator) Begins(offset, start int) bool {
	a.setPartial(true)
	return a.Check(offset, start)
}

// Contains reports whether the query, applied from grapheme offset, matches
// the source anywhere at or after position start.
func (a *Accelerator) Contains(offset, start int) bool {
	a.setPartial(true)
	for i := start; !a.provider.End(i); i++ {
		if a.Check(offset, i) {
			return true
		}
	}
	return false
}

// Common returns how many consecutive source positions starting at s1 and
// s2 carry the same rune, capped at max and stopping early at a NUL
// terminator — used by the trie's slice nodes to find how much of a new
// name's remaining characters agree with an existing compressed run.
func (a *Accelerator) Common(s1, s2, max int) int {
	for i := 0; i < max; i++ {
		ca, cb := a.provider.CharAt(s1+i), a.provider.CharAt(s2+i)
		if ca != cb || ca == 0 {
			return i
		}
	}
	return max
}
