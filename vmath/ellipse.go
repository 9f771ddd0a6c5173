package vmath

import "github.com/pkg/errors"

// Ellipse is an axis-aligned ellipse given by center and radii
type Ellipse struct {
	CX, CY float64
	RX, RY float64
}

// NewEllipse rejects zero or negative radii
func NewEllipse(cx, cy, rx, ry float64) (Ellipse, error) {
	if rx <= 0 || ry <= 0 {
		return Ellipse{}, errors.Wrapf(ErrDegenerate, "[NewEllipse] radii %v,%v", rx, ry)
	}
	return Ellipse{CX: cx, CY: cy, RX: rx, RY: ry}, nil
}

// ContainsPoint uses the normalized distance test ((x-cx)/rx)^2 + ((y-cy)/ry)^2 <= 1
// A zero radius collapses that axis: the point must lie on the center line
func (e Ellipse) ContainsPoint(x, y float64) bool {
	dx := x - e.CX
	dy := y - e.CY

	var nx, ny float64
	if e.RX > 0 {
		nx = dx / e.RX
	} else if dx != 0 {
		return false
	}
	if e.RY > 0 {
		ny = dy / e.RY
	} else if dy != 0 {
		return false
	}

	return nx*nx+ny*ny <= 1.0
}

// Bounds returns the tight box around the ellipse
func (e Ellipse) Bounds() Bounds {
	return Bounds{
		MinX: e.CX - e.RX,
		MaxX: e.CX + e.RX,
		MinY: e.CY - e.RY,
		MaxY: e.CY + e.RY,
	}
}
