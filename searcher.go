package pinin

// SearcherLogic selects which of the three matching relations a searcher
// tests candidates against.
type SearcherLogic int

const (
	LogicBegin SearcherLogic = iota
	LogicContain
	LogicEqual
)

func (l SearcherLogic) test(a *Accelerator, offset, start int) bool {
	switch l {
	case LogicBegin:
		return a.Begins(offset, start)
	case LogicContain:
		return a.Contains(offset, start)
	default:
		return a.Matches(offset, start)
	}
}

// SimpleSearcher is the linear-scan reference searcher: every inserted name
// lives in a single Compressor arena, and Search rescans all of them. It
// exists as an easy-to-trust oracle for testing the indexed TreeSearcher
// against, and is perfectly usable on its own for small corpora.
type SimpleSearcher[T any] struct {
	ctx         *Context
	accelerator *Accelerator
	compressor  *Compressor
	logic       SearcherLogic

	objects []T
}

// NewSimpleSearcher returns an empty linear searcher using logic to decide
// what a match is.
func NewSimpleSearcher[T any](ctx *Context, logic SearcherLogic) *SimpleSearcher[T] {
	s := &SimpleSearcher[T]{
		ctx:        ctx,
		compressor: &Compressor{},
		logic:      logic,
	}
	s.accelerator = newAccelerator(ctx)
	s.accelerator.SetProvider(s.compressor)
	return s
}

// Insert adds name to the corpus, associated with id.
func (s *SimpleSearcher[T]) Insert(name string, id T) {
	s.compressor.Push(name)
	for _, r := range name {
		s.ctx.GetCharacter(r)
	}
	s.objects = append(s.objects, id)
}

// Search returns every inserted id whose name satisfies the searcher's
// logic against query.
func (s *SimpleSearcher[T]) Search(query string) []T {
	s.accelerator.Search(query)

	var ret []T
	for i, start := range s.compressor.Offsets() {
		if s.logic.test(s.accelerator, 0, start) {
			ret = append(ret, s.objects[i])
		}
	}
	return ret
}

// Reset drops the accelerator's memoisation cache, e.g. after the
// dictionary backing the corpus' characters changed.
func (s *SimpleSearcher[T]) Reset() {
	s.accelerator.Reset()
}
