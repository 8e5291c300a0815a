// Package alloc defines the node representation the rendering engine walks
// and the minimal allocator contract the builder surface uses to produce it.
//
// The engine only ever dereferences a [Ref] and, for [KindColumn] and
// [KindNesting] nodes, invokes a stored [ColumnFn]; it never allocates on its own. Three
// concrete strategies implement [Allocator]: [Box], [RC], and [Arena]. Go's
// garbage collector owns memory regardless of which one a caller picks, so
// the strategies differ in allocation batching and explicit lifetime
// bookkeeping rather than in who ultimately frees a node.
package alloc

import "sync/atomic"

// Kind identifies the variant carried by a [Node].
type Kind uint8

const (
	KindNil Kind = iota
	KindText
	KindLine
	KindAppend
	KindNest
	KindGroup
	KindFlatAlt
	KindUnion
	KindColumn
	KindNesting
	KindAnnotated
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindText:
		return "Text"
	case KindLine:
		return "Line"
	case KindAppend:
		return "Append"
	case KindNest:
		return "Nest"
	case KindGroup:
		return "Group"
	case KindFlatAlt:
		return "FlatAlt"
	case KindUnion:
		return "Union"
	case KindColumn:
		return "Column"
	case KindNesting:
		return "Nesting"
	case KindAnnotated:
		return "Annotated"
	default:
		return "Unknown"
	}
}

// Node is the tagged union a document tree is built from. Which fields are
// meaningful depends on Kind; see the constructors in package wl for the
// exact shape each variant produces.
type Node[A any] struct {
	Kind Kind

	Text string // KindText

	Left  Ref[A] // KindAppend (l), KindFlatAlt (a), KindUnion (a, the wide branch)
	Right Ref[A] // KindAppend (r), KindFlatAlt (b), KindUnion (b, the fallback)

	NestBy int    // KindNest
	Child  Ref[A] // KindNest, KindGroup, KindAnnotated

	Annotation A // KindAnnotated

	Fn ColumnFn[A] // KindColumn, KindNesting

	refs atomic.Int32 // reference count; meaningful only under RC, see rc.go
}

// Ref is an owned, dereferenceable reference to a [Node] produced by an
// [Allocator]. The engine treats it as opaque beyond dereferencing it.
type Ref[A any] = *Node[A]

// ColumnFn is a memoized closure stored alongside a [Node], produced by
// [Allocator.AllocColumnFn]. The engine calls it with the current column
// (for Column nodes) or the current indent (for Nesting nodes) and gets
// back an already-allocated document to splice into the tree.
type ColumnFn[A any] func(n int) Ref[A]

// Allocator produces owned [Ref]s for subdocuments and memoizes the
// dynamic-document closures behind [KindColumn] and [KindNesting]. It is the only
// contract the rendering engine requires of its caller.
type Allocator[A any] interface {
	// Alloc stores n and returns an owned reference to it.
	Alloc(n Node[A]) Ref[A]
	// AllocColumnFn stores f so it can be invoked at render time.
	AllocColumnFn(f func(n int) Ref[A]) ColumnFn[A]
}
