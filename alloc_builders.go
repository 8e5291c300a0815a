package wl

import "github.com/teleivo/wl/alloc"

// NewBoxBuilder returns a Builder backed by [alloc.Box], the default
// allocator: every node is an ordinary heap pointer left to the garbage
// collector. Use this unless you have a specific reason to share
// subdocuments explicitly ([NewRCBuilder]) or to batch-allocate and
// bulk-release a whole rendering session ([NewArenaBuilder]).
func NewBoxBuilder[A any]() Builder[A] {
	return NewBuilder[A](alloc.NewBox[A]())
}

// NewRCBuilder returns a Builder backed by [alloc.RC], along with the
// allocator itself so callers can [alloc.RC.Retain] a subdocument before
// linking it into more than one parent and [alloc.RC.Release] it once
// every owner is done.
func NewRCBuilder[A any]() (Builder[A], *alloc.RC[A]) {
	a := alloc.NewRC[A]()
	return NewBuilder[A](a), a
}

// NewArenaBuilder returns a Builder backed by [alloc.Arena], along with the
// allocator itself so callers can [alloc.Arena.Reset] it once rendering
// completes, dropping every page it allocated in one call. Allocations
// after Reset go into fresh pages; the dropped ones are not reused.
func NewArenaBuilder[A any]() (Builder[A], *alloc.Arena[A]) {
	a := alloc.NewArena[A]()
	return NewBuilder[A](a), a
}
