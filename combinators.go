package wl

import "strings"

// Align renders d with its nesting level reset to the current output
// column, so that any line breaks inside d indent to line up under where
// d starts rather than under the enclosing block's indent.
func (b Builder[A]) Align(d Doc[A]) Doc[A] {
	return b.Column(func(col int) Doc[A] {
		return b.Nesting(func(ind int) Doc[A] {
			return b.Nest(col-ind, d)
		})
	})
}

// Hang is Align(Nest(by, d)): it aligns d to the current column, then
// additionally indents any line breaks inside it by by columns.
func (b Builder[A]) Hang(by int, d Doc[A]) Doc[A] {
	return b.Align(b.Nest(by, d))
}

// Indent prefixes d with by spaces and hangs it by the same amount, so a
// block that breaks indents consistently under its own leading spaces.
func (b Builder[A]) Indent(by int, d Doc[A]) Doc[A] {
	return b.Append(b.Text(strings.Repeat(" ", by)), b.Hang(by, d))
}

// Width renders d, measures the output column width it occupied, and
// splices f(width) in immediately after it. This is how callers produce
// layout that depends on how wide something else ended up being, such as
// aligning a trailing comment.
func (b Builder[A]) Width(d Doc[A], f func(width int) Doc[A]) Doc[A] {
	return b.Column(func(start int) Doc[A] {
		return b.Append(d, b.Column(func(end int) Doc[A] {
			return f(end - start)
		}))
	})
}

// Enclose wraps d with before and after.
func (b Builder[A]) Enclose(before, after, d Doc[A]) Doc[A] {
	return b.Append(before, b.Append(d, after))
}

// SingleQuotes wraps d in '...'.
func (b Builder[A]) SingleQuotes(d Doc[A]) Doc[A] {
	q := b.Text("'")
	return b.Enclose(q, q, d)
}

// DoubleQuotes wraps d in "...".
func (b Builder[A]) DoubleQuotes(d Doc[A]) Doc[A] {
	q := b.Text(`"`)
	return b.Enclose(q, q, d)
}

// Parens wraps d in (...).
func (b Builder[A]) Parens(d Doc[A]) Doc[A] {
	return b.Enclose(b.Text("("), b.Text(")"), d)
}

// Angles wraps d in <...>.
func (b Builder[A]) Angles(d Doc[A]) Doc[A] {
	return b.Enclose(b.Text("<"), b.Text(">"), d)
}

// Braces wraps d in {...}.
func (b Builder[A]) Braces(d Doc[A]) Doc[A] {
	return b.Enclose(b.Text("{"), b.Text("}"), d)
}

// Brackets wraps d in [...].
func (b Builder[A]) Brackets(d Doc[A]) Doc[A] {
	return b.Enclose(b.Text("["), b.Text("]"), d)
}
