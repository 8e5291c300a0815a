package engine

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// clampNest adds by to indent and clamps the result to zero, per spec: Nest
// carries a signed offset, but an indent level below zero has no meaning.
// It is generic so the same arithmetic serves every integer width a caller
// might parameterize the engine's indent/column bookkeeping with.
func clampNest[T constraints.Signed](indent, by T) T {
	sum := indent + by
	if by > 0 && sum < indent {
		panic(fmt.Sprintf("engine: indent overflow adding %v to %v", by, indent))
	}
	if by < 0 && sum > indent {
		panic(fmt.Sprintf("engine: indent underflow adding %v to %v", by, indent))
	}
	if sum < 0 {
		return 0
	}
	return sum
}

// satSub computes width-pos. The result is allowed to go negative — that
// is how the fit test recognizes a line that has already overrun the page
// — but the subtraction itself must not wrap around when width is the
// platform's maximum representable value (the conventional stand-in for
// "infinite width"), so we saturate the *subtrahend's effect* rather than
// the result: an unreachably large width just means rem stays huge.
func satSub[T constraints.Signed](width, pos T) T {
	if pos < 0 {
		pos = 0
	}
	diff := width - pos
	if diff > width {
		// Only possible if the subtraction wrapped around; clamp to the
		// smallest legal remainder instead of reporting a bogus fit.
		return -1
	}
	return diff
}

// maxWidth is the conventional "render as if the page were infinitely
// wide" value: every group fits, so nothing ever breaks except a
// HardLine.
const maxWidth = math.MaxInt
