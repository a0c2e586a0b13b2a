package pinin

// trieBTreeThreshold is the dense-node entry count at which NDense promotes
// itself to NSlice: past this many linear-scan candidates sharing a trie
// position, a radix-compressed slice node pays for its own bookkeeping.
const trieBTreeThreshold = 256

// trieFanoutThreshold is the child count past which NMap promotes itself to
// NAcc: past this many distinct next-characters, probing children through a
// phoneme index is cheaper than running the accelerator against every child.
const trieFanoutThreshold = 32

// treeNode is the trie node contract shared by NDense, NMap, NAcc, and
// NSlice. offset in getOffset is always a position in the query
// (graphemes consumed so far); name/id in put are a Compressor position and
// a dense object index, respectively.
type treeNode[T any] interface {
	getOffset(ts *TreeSearcher[T], ret map[int]struct{}, offset int)
	get(ts *TreeSearcher[T], ret map[int]struct{})
	put(ts *TreeSearcher[T], name, id int) treeNode[T]
}

// TreeSearcher is the indexed searcher: every inserted name is threaded
// into a single polymorphic trie rooted at an NDense node that promotes
// itself (to NSlice, NMap, NAcc) as it grows, so small corpora stay cheap
// and large ones stay fast. Shares the same Compressor/Accelerator pairing
// as SimpleSearcher, just with a real index instead of a linear scan.
type TreeSearcher[T any] struct {
	logic SearcherLogic

	root    treeNode[T]
	objects []T
	naccs   []*nAcc[T]

	accelerator *Accelerator
	compressor  *Compressor
	ctx         *Context
}

// NewTreeSearcher returns an empty indexed searcher using logic to decide
// what a match is. Contain-logic searchers index every suffix of every
// inserted name, so substring queries can land anywhere; Begin/Equal
// searchers index only the name's start.
func NewTreeSearcher[T any](ctx *Context, logic SearcherLogic) *TreeSearcher[T] {
	ts := &TreeSearcher[T]{
		logic:      logic,
		compressor: &Compressor{},
		ctx:        ctx,
	}
	ts.root = newNDense[T]()
	ts.accelerator = newAccelerator(ctx)
	ts.accelerator.SetProvider(ts.compressor)
	return ts
}

// Insert adds name to the corpus, associated with id.
func (ts *TreeSearcher[T]) Insert(name string, id T) {
	pos := ts.compressor.Push(name)

	end := 1
	if ts.logic == LogicContain {
		end = len([]rune(name))
	}

	objectID := len(ts.objects)
	for i := 0; i < end; i++ {
		ts.root = ts.root.put(ts, pos+i, objectID)
	}
	ts.objects = append(ts.objects, id)
}

// Search returns every inserted id whose name satisfies the searcher's
// logic against query.
func (ts *TreeSearcher[T]) Search(query string) []T {
	ts.accelerator.Search(query)

	ret := make(map[int]struct{})
	ts.root.getOffset(ts, ret, 0)

	out := make([]T, 0, len(ret))
	for i := range ret {
		out = append(out, ts.objects[i])
	}
	return out
}

// Reset reloads every promoted NAcc node's phoneme index (in case the
// dictionary changed since it was built) and drops the accelerator's
// memoisation cache.
func (ts *TreeSearcher[T]) Reset() {
	for _, acc := range ts.naccs {
		acc.reload(ts)
	}
	ts.accelerator.Reset()
}

// nDense is the trie's starting node shape: a flat, unindexed list of
// (compressor offset, object id) pairs, linearly scanned. Cheap for a
// handful of siblings; promotes to NSlice once it outgrows
// trieBTreeThreshold entries.
type nDense[T any] struct {
	data []int
}

func newNDense[T any]() *nDense[T] { return &nDense[T]{} }

func (n *nDense[T]) getOffset(ts *TreeSearcher[T], ret map[int]struct{}, offset int) {
	full := ts.logic == LogicEqual
	if full && offset == len(ts.accelerator.query) {
		n.get(ts, ret)
		return
	}
	for i := 0; i < len(n.data)/2; i++ {
		start := n.data[i*2]
		id := n.data[i*2+1]
		var ok bool
		if full {
			ok = ts.accelerator.Matches(offset, start)
		} else {
			ok = ts.accelerator.Begins(offset, start)
		}
		if ok {
			ret[id] = struct{}{}
		}
	}
}

func (n *nDense[T]) get(ts *TreeSearcher[T], ret map[int]struct{}) {
	for i := 0; i < len(n.data)/2; i++ {
		ret[n.data[i*2+1]] = struct{}{}
	}
}

func (n *nDense[T]) put(ts *TreeSearcher[T], name, id int) treeNode[T] {
	if len(n.data)/2 >= trieBTreeThreshold {
		start := n.data[0]
		slice := newNSlice[T](start, start+n.matchTree(ts))
		for j := 0; j < len(n.data)/2; j++ {
			slice.put(ts, n.data[j*2], n.data[j*2+1])
		}
		return slice.put(ts, name, id)
	}
	n.data = append(n.data, name, id)
	return n
}

// matchTree finds how many leading characters every entry in n shares, so
// a promoted NSlice's range can be sized exactly.
func (n *nDense[T]) matchTree(ts *TreeSearcher[T]) int {
	i := 0
	for {
		a := ts.compressor.CharAt(n.data[0] + i)
		for j := 1; j < len(n.data)/2; j++ {
			b := ts.compressor.CharAt(n.data[j*2] + i)
			if a != b || a == 0 {
				return i
			}
		}
		i++
	}
}

// nMap is a trie branch node: one child per distinct next character, plus
// the set of object ids whose name ends exactly here. Promotes to NAcc
// once it outgrows trieFanoutThreshold children.
type nMap[T any] struct {
	children map[rune]treeNode[T]
	leaves   map[int]struct{}
}

func newNMap[T any]() *nMap[T] {
	return &nMap[T]{leaves: make(map[int]struct{})}
}

func (n *nMap[T]) putChar(ch rune, node treeNode[T]) {
	if n.children == nil {
		n.children = make(map[rune]treeNode[T])
	}
	n.children[ch] = node
}

func (n *nMap[T]) getOffset(ts *TreeSearcher[T], ret map[int]struct{}, offset int) {
	if offset == len(ts.accelerator.query) {
		if ts.logic == LogicEqual {
			for leaf := range n.leaves {
				ret[leaf] = struct{}{}
			}
		} else {
			n.get(ts, ret)
		}
		return
	}
	for ch, child := range n.children {
		ts.accelerator.Get(ch, offset).ForEach(func(i int) {
			child.getOffset(ts, ret, offset+i)
		})
	}
}

func (n *nMap[T]) get(ts *TreeSearcher[T], ret map[int]struct{}) {
	for leaf := range n.leaves {
		ret[leaf] = struct{}{}
	}
	for _, child := range n.children {
		child.get(ts, ret)
	}
}

func (n *nMap[T]) put(ts *TreeSearcher[T], name, id int) treeNode[T] {
	if ts.compressor.CharAt(name) == 0 {
		n.leaves[id] = struct{}{}
	} else {
		ch := ts.compressor.CharAt(name)
		child, ok := n.children[ch]
		if !ok {
			child = newNDense[T]()
		}
		n.putChar(ch, child.put(ts, name+1, id))
	}

	if len(n.children) > trieFanoutThreshold {
		return newNAcc(ts, n)
	}
	return n
}

// nAcc wraps an nMap whose fanout got too wide to scan child-by-child: it
// indexes children by their first reading phoneme (e.g. every child whose
// dictionary entry starts with "zh") so getOffset only probes phonemes that
// could plausibly advance the query, plus an O(1) path for the query typing
// the literal next character.
type nAcc[T any] struct {
	m     *nMap[T]
	index map[string]*nAccEntry
}

type nAccEntry struct {
	phoneme Phoneme
	chars   map[rune]struct{}
}

func newNAcc[T any](ts *TreeSearcher[T], m *nMap[T]) *nAcc[T] {
	acc := &nAcc[T]{m: m}
	acc.reload(ts)
	ts.naccs = append(ts.naccs, acc)
	return acc
}

func (a *nAcc[T]) indexChar(ts *TreeSearcher[T], ch rune) {
	for _, p := range ts.ctx.GetCharacter(ch).Readings {
		if len(p.phonemes) == 0 {
			continue
		}
		key := p.phonemes[0]
		entry, ok := a.index[key.key()]
		if !ok {
			entry = &nAccEntry{phoneme: key, chars: make(map[rune]struct{})}
			a.index[key.key()] = entry
		}
		entry.chars[ch] = struct{}{}
	}
}

// reload rebuilds the phoneme index from scratch, e.g. after dictionary
// entries for the wrapped map's children changed.
func (a *nAcc[T]) reload(ts *TreeSearcher[T]) {
	a.index = make(map[string]*nAccEntry)
	for ch := range a.m.children {
		a.indexChar(ts, ch)
	}
}

func (a *nAcc[T]) getOffset(ts *TreeSearcher[T], ret map[int]struct{}, offset int) {
	if offset == len(ts.accelerator.query) {
		if ts.logic == LogicEqual {
			for leaf := range a.m.leaves {
				ret[leaf] = struct{}{}
			}
		} else {
			a.get(ts, ret)
		}
		return
	}

	if child, ok := a.m.children[firstRune(ts.accelerator.query[offset])]; ok {
		child.getOffset(ts, ret, offset+1)
	}

	for _, entry := range a.index {
		if entry.phoneme.matchString(ts.accelerator.query, offset, true).Equal(NoneSet()) {
			continue
		}
		for ch := range entry.chars {
			ts.accelerator.Get(ch, offset).ForEach(func(j int) {
				if child, ok := a.m.children[ch]; ok {
					child.getOffset(ts, ret, offset+j)
				}
			})
		}
	}
}

func (a *nAcc[T]) get(ts *TreeSearcher[T], ret map[int]struct{}) {
	for leaf := range a.m.leaves {
		ret[leaf] = struct{}{}
	}
	for _, child := range a.m.children {
		child.get(ts, ret)
	}
}

// put updates the wrapped map in place and indexes the inserted
// character's readings, but always returns a itself: once a branch has
// promoted to NAcc it never demotes, even though nMap.put's own promotion
// check (ignored here) would otherwise wrap it in a second NAcc layer.
func (a *nAcc[T]) put(ts *TreeSearcher[T], name, id int) treeNode[T] {
	a.m.put(ts, name, id)
	if ch := ts.compressor.CharAt(name); ch != 0 {
		a.indexChar(ts, ch)
	}
	return a
}

// nSlice is a radix-compressed run of single-child nMap nodes: every
// inserted name agreeing on a shared span of characters shares one nSlice
// instead of a chain of single-child maps, and a later insert that
// disagrees partway through splits the range at the point of disagreement.
type nSlice[T any] struct {
	start int
	end   int
	exit  treeNode[T]
}

func newNSlice[T any](start, end int) *nSlice[T] {
	return &nSlice[T]{start: start, end: end, exit: newNMap[T]()}
}

func (ns *nSlice[T]) getSlice(ts *TreeSearcher[T], ret map[int]struct{}, offset, pos int) {
	if ns.start+pos == ns.end {
		ns.exit.getOffset(ts, ret, offset)
		return
	}
	if offset == len(ts.accelerator.query) {
		if ts.logic != LogicEqual {
			ns.exit.get(ts, ret)
		}
		return
	}
	ch := ts.compressor.CharAt(ns.start + pos)
	ts.accelerator.Get(ch, offset).ForEach(func(i int) {
		ns.getSlice(ts, ret, offset+i, pos+1)
	})
}

// cut splits the range at absolute compressor position splitAt, inserting
// a branch point there: everything before splitAt stays in this nSlice,
// and a new nMap branching on the character at splitAt carries on from
// there to the original exit, directly or through a sub-nSlice when more
// characters follow that one.
func (ns *nSlice[T]) cut(ts *TreeSearcher[T], splitAt int) {
	insert := newNMap[T]()
	ch := ts.compressor.CharAt(splitAt)
	if splitAt+1 == ns.end {
		insert.putChar(ch, ns.exit)
	} else {
		half := newNSlice[T](splitAt+1, ns.end)
		half.exit = ns.exit
		insert.putChar(ch, half)
	}
	ns.exit = insert
	ns.end = splitAt
}

func (ns *nSlice[T]) getOffset(ts *TreeSearcher[T], ret map[int]struct{}, offset int) {
	ns.getSlice(ts, ret, offset, 0)
}

func (ns *nSlice[T]) get(ts *TreeSearcher[T], ret map[int]struct{}) {
	ns.exit.get(ts, ret)
}

func (ns *nSlice[T]) put(ts *TreeSearcher[T], name, id int) treeNode[T] {
	length := ns.end - ns.start
	matched := ts.accelerator.Common(ns.start, name, length)

	if matched >= length {
		ns.exit = ns.exit.put(ts, name+length, id)
	} else {
		ns.cut(ts, ns.start+matched)
		ns.exit = ns.exit.put(ts, name+matched, id)
	}

	if ns.start == ns.end {
		return ns.exit
	}
	return ns
}
