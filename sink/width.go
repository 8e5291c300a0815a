package sink

import "github.com/rivo/uniseg"

// GraphemeWidth measures a text fragment's terminal column width, counting
// grapheme clusters and accounting for East-Asian wide and zero-width
// characters instead of raw bytes or runes. This is the only place the
// sink package measures display columns rather than bytes or code points;
// the rendering engine
// itself has no opinion on encoding and simply calls whatever WidthFunc a
// sink reports through [Sink.TextWidth].
func GraphemeWidth(s string) int {
	return uniseg.StringWidth(s)
}
