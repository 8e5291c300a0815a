package sink

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/btree"
)

// Style is one terminal text style: a foreground color (as an SGR
// parameter, e.g. 31 for red) and whether the text is bold. The zero value
// renders as a plain reset, which [Color] uses as the base of its stack.
type Style struct {
	FG   int
	Bold bool
}

func (s Style) sequence() string {
	if s == (Style{}) {
		return "\x1b[0m"
	}
	var sb strings.Builder
	sb.WriteString("\x1b[0")
	if s.Bold {
		sb.WriteString(";1")
	}
	if s.FG != 0 {
		fmt.Fprintf(&sb, ";%d", s.FG)
	}
	sb.WriteString("m")
	return sb.String()
}

// Registry maps names to [Style]s so callers can annotate a document with
// a name (e.g. "keyword", "string") and configure what each one looks like
// in one place. It is backed by an ordered tree so [Registry.Styles] can
// hand back a deterministic, name-sorted dump for diagnostics.
type Registry struct {
	styles btree.Map[string, Style]
}

// Set configures the style used for annotations named name.
func (r *Registry) Set(name string, s Style) {
	r.styles.Set(name, s)
}

// Lookup returns the style registered for name, or the zero Style (plain
// reset) if none was configured. It has the signature [Color] expects for
// its styleOf callback.
func (r *Registry) Lookup(name string) Style {
	s, _ := r.styles.Get(name)
	return s
}

// Styles returns every registered name and its style, sorted by name.
func (r *Registry) Styles() []struct {
	Name  string
	Style Style
} {
	var out []struct {
		Name  string
		Style Style
	}
	r.styles.Scan(func(name string, s Style) bool {
		out = append(out, struct {
			Name  string
			Style Style
		}{name, s})
		return true
	})
	return out
}

// Color is the terminal-color output adapter. Annotations of type A are
// mapped to a [Style] through styleOf; pushing an annotation emits that
// style's ANSI sequence, and popping it re-emits whichever style was
// active before, so nested annotations restore their parent's color
// instead of resetting to plain text.
type Color[A any] struct {
	w       io.Writer
	width   WidthFunc
	styleOf func(A) Style
	stack   []Style
}

// NewColor returns a [Color] sink writing to w. styleOf converts an
// annotation value to the style it should render as.
func NewColor[A any](w io.Writer, width WidthFunc, styleOf func(A) Style) *Color[A] {
	if width == nil {
		width = ByteWidth
	}
	return &Color[A]{w: w, width: width, styleOf: styleOf, stack: []Style{{}}}
}

func (c *Color[A]) WriteText(s string) error {
	_, err := io.WriteString(c.w, s)
	return err
}

func (c *Color[A]) WriteIndent(n int) error {
	_, err := io.WriteString(c.w, "\n"+strings.Repeat(" ", n))
	return err
}

func (c *Color[A]) PushAnnotation(a A) error {
	s := c.styleOf(a)
	c.stack = append(c.stack, s)
	_, err := io.WriteString(c.w, s.sequence())
	return err
}

func (c *Color[A]) PopAnnotation() error {
	if len(c.stack) <= 1 {
		return fmt.Errorf("sink: PopAnnotation without a matching PushAnnotation")
	}
	c.stack = c.stack[:len(c.stack)-1]
	parent := c.stack[len(c.stack)-1]
	_, err := io.WriteString(c.w, parent.sequence())
	return err
}

func (c *Color[A]) TextWidth(s string) int {
	return c.width(s)
}
