package vmath

import "github.com/pkg/errors"

// Rect is an axis-aligned box with origin at its top-left corner
// Containment is half-open: X <= x < X+W, Y <= y < Y+H
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect validates extent; zero or negative width/height is rejected
func NewRect(x, y, w, h float64) (Rect, error) {
	if w <= 0 || h <= 0 {
		return Rect{}, errors.Wrapf(ErrDegenerate, "[NewRect] width %v height %v", w, h)
	}
	return Rect{X: x, Y: y, W: w, H: h}, nil
}

// ContainsPoint is true when (x, y) lies inside the box
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bounds returns the box extent; max edges are loose by at most one cell
func (r Rect) Bounds() Bounds {
	return Bounds{MinX: r.X, MaxX: r.X + r.W, MinY: r.Y, MaxY: r.Y + r.H}
}
