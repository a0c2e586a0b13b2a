package pinin

// CharProvider supplies source characters to the Accelerator by offset,
// abstracting over an ad-hoc string view and a Compressor-backed trie.
// Indexing past the provider's content returns the NUL sentinel, and End
// reports whether offset marks (or is past) the end of the source.
type CharProvider interface {
	CharAt(offset int) rune
	End(offset int) bool
}

// StringProvider is a CharProvider over a single in-memory string, used by
// the naive (non-trie) matching paths and by ad-hoc single-string queries.
type StringProvider struct {
	chars []rune
}

// NewStringProvider builds a provider over s's code points. Source strings
// are never split on graphemes: each rune is one provider slot, matching
// the reference's char-by-char provider (grapheme handling lives in the
// phoneme/pinyin matchers, which operate on the query side).
func NewStringProvider(s string) *StringProvider {
	return &StringProvider{chars: []rune(s)}
}

func (p *StringProvider) CharAt(offset int) rune {
	if offset < 0 || offset >= len(p.chars) {
		return 0
	}
	return p.chars[offset]
}

func (p *StringProvider) End(offset int) bool {
	return offset < 0 || offset >= len(p.chars)
}

// Compressor is an arena of NUL-terminated rune sequences with stable
// offsets, used by the trie so every inserted name (and, in Contain mode,
// every suffix of it) lives in one flat backing array.
type Compressor struct {
	chars   []rune
	offsets []int
}

// Push appends s's runes followed by a NUL separator and returns the offset
// at which s begins. The stored NUL doubles as the CharProvider end marker.
func (c *Compressor) Push(s string) int {
	offset := len(c.chars)
	c.offsets = append(c.offsets, offset)
	c.chars = append(c.chars, []rune(s)...)
	c.chars = append(c.chars, 0)
	return offset
}

// Offsets returns the start offset of every name pushed, in insertion order.
func (c *Compressor) Offsets() []int {
	return c.offsets
}

func (c *Compressor) CharAt(offset int) rune {
	if offset < 0 || offset >= len(c.chars) {
		return 0
	}
	return c.chars[offset]
}

func (c *Compressor) End(offset int) bool {
	return c.CharAt(offset) == 0
}
