package pinin

import (
	"fmt"
	"sync"

	"github.com/k0kubun/pp"
)

// FuzzySettings toggles the matching-expansion fuzzy rules documented in
// spec section 4.1 / 6: retroflex/non-retroflex and nasal/non-nasal final
// equivalence classes.
type FuzzySettings struct {
	Zh2z   bool
	Sh2s   bool
	Ch2c   bool
	Ang2an bool
	Eng2en bool
	Ing2in bool
	U2v    bool
}

// Context owns the char->Character dictionary, the active keyboard, fuzzy
// settings, the canonical Pinyin interning table, and (when Accelerate is
// set) a single Accelerator. A Context is not safe for concurrent mutation
// (dictionary load, fuzzy-setting change) racing a concurrent query — spec
// section 5 makes queries and mutation mutually exclusive by contract: the
// accelerator's per-query state is not locked. The configuration and
// dictionary state (Configure, the keyboard/fuzzy accessors, LoadChar,
// GetCharacter, Dump) IS behind a RWMutex, mirroring the teacher's
// common/register.go; a query takes its read lock for each dictionary
// lookup.
type Context struct {
	mu sync.RWMutex

	chars map[rune]*Character

	keyboard *Keyboard
	fuzzy    FuzzySettings

	pinyins  map[string]*Pinyin
	nextID   int

	// Accelerate selects the memoised Accelerator-backed matching path; when
	// false, Contains/Begins/Matches fall back to a naive character-by-
	// character comparison against this Context directly.
	Accelerate bool

	accelerator *Accelerator
}

// NewContext returns a Context with the full-pinyin (quanpin) keyboard, no
// fuzzy rules enabled, an empty dictionary, and acceleration off.
func NewContext() *Context {
	c := &Context{
		chars:   make(map[rune]*Character),
		keyboard: KeyboardQuanpin,
		pinyins: make(map[string]*Pinyin),
	}
	c.accelerator = newAccelerator(c)
	return c
}

// Configure applies the named options from spec section 6:
// "keyboard", "fuzzy.zh2z"..."fuzzy.u2v", "accelerate".
// Readings already loaded keep the keyboard and fuzzy settings they were
// interned under; only characters loaded afterwards use the new ones.
func (c *Context) Configure(opts map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, value := range opts {
		switch key {
		case "keyboard":
			name, _ := value.(string)
			kb, ok := keyboardByName(name)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownKeyboard, name)
			}
			c.keyboard = kb
		case "fuzzy.zh2z":
			c.fuzzy.Zh2z = truthy(value)
		case "fuzzy.sh2s":
			c.fuzzy.Sh2s = truthy(value)
		case "fuzzy.ch2c":
			c.fuzzy.Ch2c = truthy(value)
		case "fuzzy.ang2an":
			c.fuzzy.Ang2an = truthy(value)
		case "fuzzy.eng2en":
			c.fuzzy.Eng2en = truthy(value)
		case "fuzzy.ing2in":
			c.fuzzy.Ing2in = truthy(value)
		case "fuzzy.u2v":
			c.fuzzy.U2v = truthy(value)
		case "accelerate":
			c.Accelerate = truthy(value)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}
	return nil
}

func truthy(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

// SetKeyboard is a typed equivalent of Configure(map{"keyboard": name}).
func (c *Context) SetKeyboard(kb *Keyboard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keyboard = kb
}

// Keyboard returns the active keyboard.
func (c *Context) Keyboard() *Keyboard {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keyboard
}

// SetFuzzy replaces the fuzzy settings wholesale.
func (c *Context) SetFuzzy(f FuzzySettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fuzzy = f
}

// Fuzzy returns the current fuzzy settings.
func (c *Context) Fuzzy() FuzzySettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fuzzy
}

// LoadChar registers a character with its pinyin readings (already-parsed
// syllable strings, tone digit included, e.g. "zhong1"). Passing an empty
// readings slice still registers the character so it is distinguishable
// from "absent from the dictionary" (spec section 6: "Blank readings list
// means the character is present but untypable").
func (c *Context) LoadChar(ch rune, readings []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pinyins := make([]*Pinyin, 0, len(readings))
	for _, raw := range readings {
		pinyins = append(pinyins, c.internPinyinLocked(raw))
	}
	c.chars[ch] = &Character{Rune: ch, Readings: pinyins}
}

// internPinyinLocked returns the canonical *Pinyin for raw, creating and
// assigning it a stable id on first sight. Must be called with c.mu held.
func (c *Context) internPinyinLocked(raw string) *Pinyin {
	if p, ok := c.pinyins[raw]; ok {
		return p
	}
	p := newPinyin(raw, c.fuzzy, c.keyboard, c.nextID)
	c.nextID++
	c.pinyins[raw] = p
	return p
}

// GetCharacter returns the dictionary entry for ch, or a placeholder
// Character with no readings if ch was never loaded. The placeholder is
// never stored back into the dictionary.
func (c *Context) GetCharacter(ch rune) *Character {
	c.mu.RLock()
	entry, ok := c.chars[ch]
	c.mu.RUnlock()
	if ok {
		return entry
	}
	return &Character{Rune: ch}
}

// Accelerator returns the Context's shared Accelerator instance.
func (c *Context) Accelerator() *Accelerator {
	return c.accelerator
}

// Dump pretty-prints the interned Pinyin table via k0kubun/pp, mirroring
// the teacher's pp.Println debugging habit (lang/jpn's p-ichiran.go dumps
// its provider registry the same way) — a quick way to eyeball exactly
// which syllables have been interned and under what id during development.
func (c *Context) Dump() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pp.Println(c.pinyins)
}

// check is the naive (non-accelerated) recursive matcher: does query s2,
// starting at grapheme offset start2, match source s1 starting at rune
// offset start1? partial accepts a match that runs out of query input
// mid-unit (begins/contains semantics); false requires the query to be
// fully exhausted together with the source (matches semantics).
func (c *Context) check(s1 []rune, start1 int, s2 []string, start2 int, partial bool) bool {
	if start2 == len(s2) {
		return partial || start1 == len(s1)
	}
	if start1 >= len(s1) {
		return false
	}

	ch := c.GetCharacter(s1[start1])
	set := ch.matchStr(s2, start2, partial)

	if start1 == len(s1)-1 {
		return set.Get(len(s2) - start2)
	}

	return set.Traverse(func(i int) bool {
		return c.check(s1, start1+1, s2, start2+i, partial)
	})
}

// Contains reports whether query matches somewhere within source.
func (c *Context) Contains(source, query string) bool {
	if !c.Accelerate {
		runes := []rune(source)
		if len(runes) == 0 {
			return query == ""
		}
		graphemes := toGraphemes(query)
		for i := range runes {
			if c.check(runes, i, graphemes, 0, true) {
				return true
			}
		}
		return false
	}

	a := c.accelerator
	a.SetProvider(NewStringProvider(source))
	a.Search(query)
	return a.Contains(0, 0)
}

// Begins reports whether source starts with a prefix matching query.
func (c *Context) Begins(source, query string) bool {
	if !c.Accelerate {
		runes := []rune(source)
		graphemes := toGraphemes(query)
		if len(runes) == 0 {
			return len(graphemes) == 0
		}
		return c.check(runes, 0, graphemes, 0, true)
	}

	a := c.accelerator
	a.SetProvider(NewStringProvider(source))
	a.Search(query)
	return a.Begins(0, 0)
}

// Matches reports whether query fully matches source, start to end.
func (c *Context) Matches(source, query string) bool {
	if !c.Accelerate {
		runes := []rune(source)
		graphemes := toGraphemes(query)
		if len(runes) == 0 {
			return len(graphemes) == 0
		}
		return c.check(runes, 0, graphemes, 0, false)
	}

	a := c.accelerator
	a.SetProvider(NewStringProvider(source))
	a.Search(query)
	return a.Matches(0, 0)
}
