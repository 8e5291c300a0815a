// Package wl is a Wadler/Leijen-style pretty-printing library.
//
// A [Doc] describes text together with latent, context-dependent layout
// choices: where lines may break, how indentation should nest, and which
// of several alternative renderings to prefer. [Render] and [Pretty] turn a
// Doc into concrete text, choosing horizontal layout wherever it fits
// within a requested page width and falling back to vertical layout
// otherwise.
//
// Build documents with the methods of a [Builder] — [Builder.Text],
// [Builder.Append], [Builder.Group], [Builder.Nest], and friends — whose
// constructor ([NewBoxBuilder], [NewRCBuilder], [NewArenaBuilder]) picks the
// [alloc.Allocator]. Render them with [Pretty] for the common case or
// [Render] when you need a specific output [sink.Sink].
package wl

import (
	"github.com/teleivo/wl/alloc"
)

// Doc is an immutable document value parameterized over an annotation
// payload type A. Annotations are opaque to the layout engine; they are
// only ever handed to a [sink.Sink]'s PushAnnotation/PopAnnotation.
type Doc[A any] struct {
	a   alloc.Allocator[A]
	ref alloc.Ref[A]
}

func wrap[A any](a alloc.Allocator[A], n alloc.Node[A]) Doc[A] {
	return Doc[A]{a: a, ref: a.Alloc(n)}
}

// Ref reports the underlying allocator reference, for use by Render.
func (d Doc[A]) Ref() alloc.Ref[A] {
	return d.ref
}
