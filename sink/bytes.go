package sink

import (
	"io"
	"strings"
)

// Bytes is the byte-stream output adapter: it writes through to an
// io.Writer and ignores annotations entirely, since raw byte output has
// nowhere to put them.
type Bytes[A any] struct {
	w     io.Writer
	width WidthFunc
}

// NewBytes returns a [Bytes] sink writing to w, measuring text width in
// bytes unless width is non-nil.
func NewBytes[A any](w io.Writer, width WidthFunc) *Bytes[A] {
	if width == nil {
		width = ByteWidth
	}
	return &Bytes[A]{w: w, width: width}
}

func (b *Bytes[A]) WriteText(s string) error {
	_, err := io.WriteString(b.w, s)
	return err
}

func (b *Bytes[A]) WriteIndent(n int) error {
	_, err := io.WriteString(b.w, "\n"+strings.Repeat(" ", n))
	return err
}

func (b *Bytes[A]) PushAnnotation(a A) error {
	return nil
}

func (b *Bytes[A]) PopAnnotation() error {
	return nil
}

func (b *Bytes[A]) TextWidth(s string) int {
	return b.width(s)
}
