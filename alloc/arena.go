package alloc

const arenaPageSize = 256

// Arena allocates nodes out of fixed-size pages instead of one heap object
// per node, which is the cheapest strategy for building and rendering a
// document once and discarding it. [Arena.Reset] drops every page in one
// call, the Go-GC equivalent of freeing the whole arena at once; there is
// no per-node free.
type Arena[A any] struct {
	pages [][]Node[A]
}

// NewArena returns an empty arena allocator.
func NewArena[A any]() *Arena[A] {
	return &Arena[A]{}
}

func (a *Arena[A]) Alloc(n Node[A]) Ref[A] {
	if len(a.pages) == 0 || len(a.pages[len(a.pages)-1]) == cap(a.pages[len(a.pages)-1]) {
		a.pages = append(a.pages, make([]Node[A], 0, arenaPageSize))
	}
	page := &a.pages[len(a.pages)-1]
	*page = append(*page, n)
	return &(*page)[len(*page)-1]
}

func (a *Arena[A]) AllocColumnFn(f func(n int) Ref[A]) ColumnFn[A] {
	return f
}

// Reset releases every node allocated so far. Documents built from this
// arena must not be rendered after Reset: their Refs still point at the
// underlying arrays, but Arena makes no promise those arrays survive the
// next round of Alloc calls.
func (a *Arena[A]) Reset() {
	a.pages = a.pages[:0]
}
