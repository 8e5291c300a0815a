// Command wldemo renders a handful of built-in example documents with a
// chosen allocator and output sink, mainly as a manual smoke test and a
// demonstration of the library's public surface.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/teleivo/wl"
	"github.com/teleivo/wl/sink"
)

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet(args[0], flag.ExitOnError)
	flags.SetOutput(wErr)
	width := flags.Int("width", 0, "page width in columns; 0 autodetects the terminal width when stdout is a TTY, else 80")
	allocName := flags.String("alloc", "box", "allocator strategy: box, rc, or arena")
	sinkName := flags.String("sink", "bytes", "output sink: bytes, text, or color")
	scenario := flags.String("scenario", "json", "built-in document: json, union, or tree")
	listStyles := flags.Bool("list-styles", false, "print the color sink's registered styles and exit")

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	reg := defaultRegistry()
	if *listStyles {
		for _, s := range reg.Styles() {
			fmt.Fprintf(w, "%s\t%+v\n", s.Name, s.Style)
		}
		return nil
	}

	cols := *width
	if cols == 0 {
		cols = 80
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			if c, _, err := term.GetSize(int(f.Fd())); err == nil && c > 0 {
				cols = c
			}
		}
	}

	b, err := newBuilder(*allocName)
	if err != nil {
		return err
	}

	doc, err := buildScenario(b, *scenario)
	if err != nil {
		return err
	}

	s, err := newSink(*sinkName, w, reg)
	if err != nil {
		return err
	}

	return wl.Render(doc, cols, s)
}

func newBuilder(name string) (wl.Builder[string], error) {
	switch name {
	case "box":
		return wl.NewBoxBuilder[string](), nil
	case "rc":
		b, _ := wl.NewRCBuilder[string]()
		return b, nil
	case "arena":
		b, _ := wl.NewArenaBuilder[string]()
		return b, nil
	default:
		var zero wl.Builder[string]
		return zero, fmt.Errorf("wldemo: unknown -alloc=%q, want box, rc, or arena", name)
	}
}

func newSink(name string, w io.Writer, reg *sink.Registry) (sink.Sink[string], error) {
	switch name {
	case "bytes":
		return sink.NewBytes[string](w, nil), nil
	case "text":
		return sink.NewText[string](w, sink.GraphemeWidth), nil
	case "color":
		return sink.NewColor[string](w, sink.GraphemeWidth, reg.Lookup), nil
	default:
		return nil, fmt.Errorf("wldemo: unknown -sink=%q, want bytes, text, or color", name)
	}
}

func defaultRegistry() *sink.Registry {
	reg := &sink.Registry{}
	reg.Set("keyword", sink.Style{FG: 35, Bold: true})
	reg.Set("string", sink.Style{FG: 32})
	reg.Set("number", sink.Style{FG: 33})
	reg.Set("field", sink.Style{FG: 36})
	return reg
}

func buildScenario(b wl.Builder[string], name string) (wl.Doc[string], error) {
	var zero wl.Doc[string]
	switch name {
	case "json":
		return jsonScenario(b), nil
	case "union":
		return unionScenario(b), nil
	case "tree":
		return treeScenario(b), nil
	default:
		return zero, fmt.Errorf("wldemo: unknown -scenario=%q, want json, union, or tree", name)
	}
}

// jsonScenario builds a JSON-like object literal that breaks field-per-line
// once it no longer fits flat.
func jsonScenario(b wl.Builder[string]) wl.Doc[string] {
	field := func(name, value string) wl.Doc[string] {
		return b.Append(
			b.Annotate("field", b.DoubleQuotes(b.Text(name))),
			b.Append(b.Text(": "), b.Annotate("string", b.DoubleQuotes(b.Text(value)))),
		)
	}
	fields := b.Intersperse(
		b.Append(b.Text(","), b.Line()),
		field("name", "ferris"),
		field("language", "go"),
		field("status", "compiling"),
	)
	body := b.Append(b.Nest(2, b.Append(b.Line(), fields)), b.LineBreak())
	return b.Group(b.Braces(body))
}

// unionScenario mirrors the "let x = (...)" example: a wide single-line
// rendering when it fits, falling back to one argument per line.
func unionScenario(b wl.Builder[string]) wl.Doc[string] {
	args := b.Intersperse(b.Append(b.Text(","), b.Space()),
		b.Text("1"), b.Text("2"), b.Text("3"))
	wide := b.Append(b.Annotate("keyword", b.Text("let")),
		b.Append(b.Text(" x = ("), b.Append(args, b.Text(")"))))

	argsBroken := b.Intersperse(b.Append(b.Text(","), b.HardLine()),
		b.Text("1"), b.Text("2"), b.Text("3"))
	narrow := b.Append(b.Annotate("keyword", b.Text("let")),
		b.Append(b.Text(" x = ("),
			b.Append(b.Nest(4, b.Append(b.HardLine(), argsBroken)),
				b.Append(b.HardLine(), b.Text(")")))))

	return b.Union(wide, narrow)
}

// treeScenario builds a small annotated tree to exercise the color sink's
// nested push/pop stack.
func treeScenario(b wl.Builder[string]) wl.Doc[string] {
	leaf := func(n string) wl.Doc[string] {
		return b.Annotate("string", b.Text(n))
	}
	children := b.Intersperse(b.Append(b.Text(","), b.Line()),
		leaf("left"), leaf("right"))
	body := b.Append(b.Nest(2, b.Append(b.LineBreak(), children)), b.LineBreak())
	return b.Group(b.Append(b.Annotate("keyword", b.Text("node")), b.Parens(body)))
}
