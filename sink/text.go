package sink

import (
	"io"
	"strings"
)

// Text is the text-stream output adapter. It behaves like [Bytes] but
// defaults to counting width in runes rather than bytes, which matters
// once a document's Text fragments carry non-ASCII content.
type Text[A any] struct {
	w     io.Writer
	width WidthFunc
}

// NewText returns a [Text] sink writing to w, measuring text width in
// runes unless width is non-nil.
func NewText[A any](w io.Writer, width WidthFunc) *Text[A] {
	if width == nil {
		width = RuneWidth
	}
	return &Text[A]{w: w, width: width}
}

func (t *Text[A]) WriteText(s string) error {
	_, err := io.WriteString(t.w, s)
	return err
}

func (t *Text[A]) WriteIndent(n int) error {
	_, err := io.WriteString(t.w, "\n"+strings.Repeat(" ", n))
	return err
}

func (t *Text[A]) PushAnnotation(a A) error {
	return nil
}

func (t *Text[A]) PopAnnotation() error {
	return nil
}

func (t *Text[A]) TextWidth(s string) int {
	return t.width(s)
}
