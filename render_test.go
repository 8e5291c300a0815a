package wl_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/teleivo/wl"
	"github.com/teleivo/wl/sink"
)

func TestPrettyMatchesRenderIntoBytesSink(t *testing.T) {
	b := wl.NewBoxBuilder[string]()
	doc := b.Group(b.Append(b.Text("a"), b.Append(b.Line(), b.Text("b"))))

	var sb strings.Builder
	err := wl.Render(doc, 1, sink.NewBytes[string](&sb, nil))
	require.NoError(t, err)

	want, err := wl.Pretty(doc, 1)
	require.NoError(t, err)

	assert.Equals(t, sb.String(), want)
}

func TestRenderPropagatesSinkError(t *testing.T) {
	b := wl.NewBoxBuilder[string]()
	doc := b.Text("x")

	err := wl.Render(doc, 80, failingSink{})
	if err == nil {
		t.Fatalf("Render with a failing sink: want error, got nil")
	}
}

type failingSink struct{}

func (failingSink) WriteText(s string) error    { return errBoom }
func (failingSink) WriteIndent(n int) error     { return errBoom }
func (failingSink) PushAnnotation(a string) error { return errBoom }
func (failingSink) PopAnnotation() error        { return errBoom }
func (failingSink) TextWidth(s string) int      { return len(s) }

var errBoom = boomError{}

type boomError struct{}

func (boomError) Error() string { return "boom" }

func TestRenderAllRendersEveryDocumentConcurrently(t *testing.T) {
	b := wl.NewBoxBuilder[string]()
	docs := []wl.Doc[string]{
		b.Text("one"),
		b.Text("two"),
		b.Text("three"),
	}

	bufs := make([]bytes.Buffer, len(docs))
	err := wl.RenderAll(context.Background(), docs, 80, func(i int) sink.Sink[string] {
		return sink.NewBytes[string](&bufs[i], nil)
	}, 2)
	require.NoError(t, err)

	want := []string{"one", "two", "three"}
	for i, w := range want {
		assert.Equals(t, bufs[i].String(), w, "doc %d", i)
	}
}

func TestRenderAllStopsOnFirstError(t *testing.T) {
	b := wl.NewBoxBuilder[string]()
	docs := []wl.Doc[string]{b.Text("ok"), b.Text("also-ok")}

	err := wl.RenderAll(context.Background(), docs, 80, func(i int) sink.Sink[string] {
		return failingSink{}
	}, 2)
	if err == nil {
		t.Fatalf("RenderAll with an always-failing sink: want error, got nil")
	}
}
