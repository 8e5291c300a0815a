// Package sink provides the output adapters the rendering engine writes to.
//
// A [Sink] accepts plain text runs, indentation, and paired annotation
// markers; it has no notion of documents, groups, or fitting, only of
// writing and of how wide a text run is. [Bytes] and [Text] are thin
// wrappers around an [io.Writer]; [Color] additionally turns annotations
// into ANSI escape sequences.
package sink

// Sink is the contract the rendering engine writes through. Every method
// that can fail returns an error; the engine stops at the first one and
// surfaces it to the caller of Render, never retrying.
type Sink[A any] interface {
	// WriteText emits a text run verbatim.
	WriteText(s string) error
	// WriteIndent emits a newline followed by n spaces.
	WriteIndent(n int) error
	// PushAnnotation brackets the start of an annotated region.
	PushAnnotation(a A) error
	// PopAnnotation closes the most recently pushed annotation.
	PopAnnotation() error
	// TextWidth returns the column width of s. The engine calls this
	// instead of assuming a fixed encoding so byte-oriented, rune-oriented,
	// and grapheme-aware sinks can each measure text their own way.
	TextWidth(s string) int
}

// WidthFunc measures the column width of a text fragment that is
// guaranteed, by contract, to contain no newline.
type WidthFunc func(s string) int

// ByteWidth counts one column per byte. It is the default for [Bytes] and
// [Color] sinks and matches the reference behavior spec.md describes:
// display_width is, absent another choice, a byte count.
func ByteWidth(s string) int {
	return len(s)
}

// RuneWidth counts one column per UTF-8 code point instead of per byte. It
// is the default for [Text] sinks; pass it to [Bytes] or [Color] when
// rendering non-ASCII text where byte counts would under-fit the available
// width.
func RuneWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
