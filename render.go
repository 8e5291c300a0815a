package wl

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/teleivo/wl/internal/engine"
	"github.com/teleivo/wl/sink"
)

// Render writes doc to s, choosing Flat or Break layout at each Group so
// the result fits within width columns wherever that is possible. width
// must be non-negative; 0 is legal and forces every non-empty group to
// break. Render stops at the first error s returns and propagates it;
// whatever output was already written is not rolled back.
func Render[A any](doc Doc[A], width int, s sink.Sink[A]) error {
	return engine.Render(doc.Ref(), width, s)
}

// Pretty renders doc at the given width using the byte-stream sink and
// returns the result as a string. It is the convenience entry point for
// documents with no annotations worth rendering through a [sink.Sink] of
// their own.
func Pretty[A any](doc Doc[A], width int) (string, error) {
	var sb strings.Builder
	s := sink.NewBytes[A](&sb, nil)
	if err := Render(doc, width, s); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderAll renders every document in docs at width, concurrently, with at
// most concurrency renders in flight at once. newSink is called once per
// document to produce the sink it renders into — typically closing over a
// per-document destination, since documents are read-only during
// rendering and may safely be rendered on independent goroutines, but a
// sink is not. It returns the first error any render produced, and cancels
// the rest via ctx.
func RenderAll[A any](ctx context.Context, docs []Doc[A], width int, newSink func(i int) sink.Sink[A], concurrency int64) error {
	if concurrency <= 0 {
		concurrency = 1
	}
	sem := semaphore.NewWeighted(concurrency)
	g, ctx := errgroup.WithContext(ctx)

	for i, doc := range docs {
		i, doc := i, doc
		if err := sem.Acquire(ctx, 1); err != nil {
			if werr := g.Wait(); werr != nil {
				return werr
			}
			return err
		}
		g.Go(func() error {
			defer sem.Release(1)
			return Render(doc, width, newSink(i))
		})
	}

	return g.Wait()
}
