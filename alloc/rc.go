package alloc

import "github.com/teleivo/wl/internal/assert"

// RC allocates nodes with an atomic reference count, letting callers share
// a built subdocument across multiple parents and release it explicitly
// with [RC.Release] once every owner is done with it. Mis-paired
// Retain/Release calls are programmer error and panic in the same style as
// [assert.That] elsewhere in this module, rather than silently corrupting a
// tree that is still being rendered.
type RC[A any] struct{}

// NewRC returns a reference-counted allocator.
func NewRC[A any]() *RC[A] {
	return &RC[A]{}
}

func (rc *RC[A]) Alloc(n Node[A]) Ref[A] {
	node := n
	node.refs.Store(1)
	return &node
}

func (rc *RC[A]) AllocColumnFn(f func(n int) Ref[A]) ColumnFn[A] {
	return f
}

// Retain increments r's reference count and returns r, so a subdocument can
// be linked into more than one parent without being allocated twice.
func (rc *RC[A]) Retain(r Ref[A]) Ref[A] {
	assert.That(r.refs.Load() > 0, "alloc: Retain on a released RC node")
	r.refs.Add(1)
	return r
}

// Release decrements r's reference count. It panics if r was already fully
// released, catching use-after-release bugs in the document graph.
func (rc *RC[A]) Release(r Ref[A]) {
	n := r.refs.Add(-1)
	assert.That(n >= 0, "alloc: Release called more times than Retain for RC node")
}
