package vmath

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrDegenerate is returned when a shape would have zero or negative extent
var ErrDegenerate = errors.New("degenerate shape")

// Bounds is a possibly loose axis-aligned bounding box, inclusive on all sides
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Cells returns the integer cell range covered by b, floored on both ends
func (b Bounds) Cells() (minCol, maxCol, minRow, maxRow int) {
	return int(math.Floor(b.MinX)), int(math.Floor(b.MaxX)),
		int(math.Floor(b.MinY)), int(math.Floor(b.MaxY))
}

// Clamp restricts v to [lo, hi]
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
