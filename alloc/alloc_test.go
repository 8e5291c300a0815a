package alloc_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/teleivo/wl/alloc"
)

func TestBoxAllocReturnsDistinctNodes(t *testing.T) {
	a := alloc.NewBox[string]()
	n1 := a.Alloc(alloc.Node[string]{Kind: alloc.KindText, Text: "x"})
	n2 := a.Alloc(alloc.Node[string]{Kind: alloc.KindText, Text: "x"})

	if n1 == n2 {
		t.Fatalf("Box.Alloc returned the same pointer for two separate calls")
	}
	assert.Equals(t, n1.Text, "x")
	assert.Equals(t, n2.Text, "x")
}

func TestArenaAllocIsPointerStableWithinAPage(t *testing.T) {
	a := alloc.NewArena[string]()
	refs := make([]alloc.Ref[string], 0, 10)
	for i := 0; i < 10; i++ {
		refs = append(refs, a.Alloc(alloc.Node[string]{Kind: alloc.KindText, Text: "x"}))
	}
	for i, r := range refs {
		assert.Equals(t, r.Text, "x", "ref %d", i)
	}
}

func TestArenaResetReleasesEveryPage(t *testing.T) {
	a := alloc.NewArena[string]()
	a.Alloc(alloc.Node[string]{Kind: alloc.KindText, Text: "x"})
	a.Reset()

	r := a.Alloc(alloc.Node[string]{Kind: alloc.KindText, Text: "y"})
	assert.Equals(t, r.Text, "y")
}

func TestRCRetainAndRelease(t *testing.T) {
	rc := alloc.NewRC[string]()
	n := rc.Alloc(alloc.Node[string]{Kind: alloc.KindText, Text: "x"})

	rc.Retain(n)
	rc.Release(n)
	rc.Release(n)
}

func TestRCReleasePastZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Release past zero: want panic, got none")
		}
	}()
	rc := alloc.NewRC[string]()
	n := rc.Alloc(alloc.Node[string]{Kind: alloc.KindText, Text: "x"})
	rc.Release(n)
	rc.Release(n)
}

func TestRCRetainAfterFullReleasePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Retain after full release: want panic, got none")
		}
	}()
	rc := alloc.NewRC[string]()
	n := rc.Alloc(alloc.Node[string]{Kind: alloc.KindText, Text: "x"})
	rc.Release(n)
	rc.Retain(n)
}

func TestKindString(t *testing.T) {
	tests := map[string]struct {
		in   alloc.Kind
		want string
	}{
		"Nil":       {alloc.KindNil, "Nil"},
		"Text":      {alloc.KindText, "Text"},
		"Line":      {alloc.KindLine, "Line"},
		"Append":    {alloc.KindAppend, "Append"},
		"Nest":      {alloc.KindNest, "Nest"},
		"Group":     {alloc.KindGroup, "Group"},
		"FlatAlt":   {alloc.KindFlatAlt, "FlatAlt"},
		"Union":     {alloc.KindUnion, "Union"},
		"Column":    {alloc.KindColumn, "Column"},
		"Nesting":   {alloc.KindNesting, "Nesting"},
		"Annotated": {alloc.KindAnnotated, "Annotated"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equals(t, tt.in.String(), tt.want)
		})
	}
}
