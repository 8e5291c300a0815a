package wl

import (
	"fmt"
	"strings"

	"github.com/teleivo/wl/alloc"
	"github.com/teleivo/wl/internal/assert"
)

// Builder constructs [Doc] values through an [alloc.Allocator]. All
// documents produced by one Builder share that allocator and may be freely
// combined with each other; combining documents built from different
// allocators is a usage error the allocator strategies do not detect.
type Builder[A any] struct {
	a alloc.Allocator[A]
}

// NewBuilder returns a Builder that allocates through a.
func NewBuilder[A any](a alloc.Allocator[A]) Builder[A] {
	return Builder[A]{a: a}
}

// Nil is the empty document: it renders as nothing and is the identity
// element of [Builder.Append].
func (b Builder[A]) Nil() Doc[A] {
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindNil})
}

// Text is literal text. s must not contain a newline; splitting text
// across lines is what [Builder.Line] and friends are for.
func (b Builder[A]) Text(s string) Doc[A] {
	assert.That(!strings.ContainsRune(s, '\n'), "wl: Text fragment contains a newline: %q", s)
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindText, Text: s})
}

// Stringer renders x with fmt.Sprint and wraps the result as [Builder.Text].
func (b Builder[A]) Stringer(x any) Doc[A] {
	return b.Text(fmt.Sprint(x))
}

// Space is a single literal space.
func (b Builder[A]) Space() Doc[A] {
	return b.Text(" ")
}

// HardLine is an unconditional line break: it always renders as a newline
// followed by the current indent, even inside a Group that otherwise fits
// flat.
func (b Builder[A]) HardLine() Doc[A] {
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindLine})
}

// Line is a line break that collapses to a single space when its
// enclosing group renders flat. It is defined as FlatAlt(HardLine, " ").
func (b Builder[A]) Line() Doc[A] {
	return b.FlatAlt(b.HardLine(), b.Space())
}

// LineBreak is a line break that collapses to nothing when its enclosing
// group renders flat. It is defined as FlatAlt(HardLine, Nil).
func (b Builder[A]) LineBreak() Doc[A] {
	return b.FlatAlt(b.HardLine(), b.Nil())
}

// SoftLine is Group(Line): a single space when the document fits on the
// current line, a line break otherwise.
func (b Builder[A]) SoftLine() Doc[A] {
	return b.Group(b.Line())
}

// SoftLineBreak is Group(LineBreak): nothing when the document fits, a
// line break otherwise.
func (b Builder[A]) SoftLineBreak() Doc[A] {
	return b.Group(b.LineBreak())
}

// Append concatenates x and y. Append is associative and Nil is its
// identity; the identity is applied here as a local rewrite rather than
// left for the engine to special-case.
func (b Builder[A]) Append(x, y Doc[A]) Doc[A] {
	if x.ref.Kind == alloc.KindNil {
		return y
	}
	if y.ref.Kind == alloc.KindNil {
		return x
	}
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindAppend, Left: x.ref, Right: y.ref})
}

// Concat left-folds Append over docs, starting from Nil.
func (b Builder[A]) Concat(docs ...Doc[A]) Doc[A] {
	out := b.Nil()
	for _, d := range docs {
		out = b.Append(out, d)
	}
	return out
}

// Intersperse concatenates docs with sep placed between consecutive
// elements.
func (b Builder[A]) Intersperse(sep Doc[A], docs ...Doc[A]) Doc[A] {
	out := b.Nil()
	for i, d := range docs {
		if i > 0 {
			out = b.Append(out, sep)
		}
		out = b.Append(out, d)
	}
	return out
}

// Nest adds by to the indent level in effect while rendering d. Nest(0, d)
// is d unchanged, and Nest(k, Nil) is Nil, applied here as local rewrites.
func (b Builder[A]) Nest(by int, d Doc[A]) Doc[A] {
	if by == 0 {
		return d
	}
	if d.ref.Kind == alloc.KindNil {
		return d
	}
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindNest, NestBy: by, Child: d.ref})
}

// Group marks d as a choice point: the engine renders it flat if it (and
// whatever follows it on the same line) fits within the page width, and
// falls back to breaking it otherwise.
func (b Builder[A]) Group(d Doc[A]) Doc[A] {
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindGroup, Child: d.ref})
}

// FlatAlt renders as brk when its enclosing group breaks, and as flat when
// it renders flat. Most callers want [Builder.Line] or [Builder.LineBreak]
// instead of calling FlatAlt directly.
func (b Builder[A]) FlatAlt(brk, flat Doc[A]) Doc[A] {
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindFlatAlt, Left: brk.ref, Right: flat.ref})
}

// Union tries wide first; if wide's first line does not fit within the
// remaining width, it falls back to narrow. wide's first line must never
// be shorter than narrow's — Union is meant to be reached through
// higher-level combinators that preserve this, not called with arbitrary
// alternatives.
func (b Builder[A]) Union(wide, narrow Doc[A]) Doc[A] {
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindUnion, Left: wide.ref, Right: narrow.ref})
}

// Annotate marks d with a for the output sink, which receives paired
// PushAnnotation(a)/PopAnnotation calls bracketing d's rendered output.
func (b Builder[A]) Annotate(a A, d Doc[A]) Doc[A] {
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindAnnotated, Annotation: a, Child: d.ref})
}

// Column produces a document from the current output column. f is called
// at render time, once the column is known.
func (b Builder[A]) Column(f func(col int) Doc[A]) Doc[A] {
	fn := b.a.AllocColumnFn(func(col int) alloc.Ref[A] { return f(col).ref })
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindColumn, Fn: fn})
}

// Nesting produces a document from the indent level that would apply to a
// line break at this point. f is called at render time.
func (b Builder[A]) Nesting(f func(indent int) Doc[A]) Doc[A] {
	fn := b.a.AllocColumnFn(func(ind int) alloc.Ref[A] { return f(ind).ref })
	return wrap(b.a, alloc.Node[A]{Kind: alloc.KindNesting, Fn: fn})
}

// Reflow splits s on whitespace and interspersed the words with SoftLine,
// so a long run of prose reflows to fit the page width instead of
// overrunning it as one Text fragment.
func (b Builder[A]) Reflow(s string) Doc[A] {
	words := strings.Fields(s)
	docs := make([]Doc[A], len(words))
	for i, w := range words {
		docs[i] = b.Text(w)
	}
	return b.Intersperse(b.SoftLine(), docs...)
}
