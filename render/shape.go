package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/vmath"
)

// Glyph is what a shape paints into each covered cell
type Glyph struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Style converts the glyph colors to a tcell style
func (g Glyph) Style() tcell.Style {
	return Style(g.Fg, g.Bg)
}

// Shape is a rasterizable region with a display glyph
// Bounds must contain every point for which ContainsPoint is true
type Shape interface {
	ContainsPoint(x, y float64) bool
	Bounds() vmath.Bounds
	Glyph() Glyph
}

// Rectangle is an axis-aligned filled box
type Rectangle struct {
	vmath.Rect
	Paint Glyph
}

// NewRectangle rejects zero-area boxes with vmath.ErrDegenerate
func NewRectangle(x, y, w, h float64, paint Glyph) (Rectangle, error) {
	rect, err := vmath.NewRect(x, y, w, h)
	if err != nil {
		return Rectangle{}, err
	}
	return Rectangle{Rect: rect, Paint: paint}, nil
}

func (r Rectangle) Glyph() Glyph { return r.Paint }

// Ellipse is a filled axis-aligned ellipse
type Ellipse struct {
	vmath.Ellipse
	Paint Glyph
}

// NewEllipse rejects zero radii with vmath.ErrDegenerate
func NewEllipse(cx, cy, rx, ry float64, paint Glyph) (Ellipse, error) {
	e, err := vmath.NewEllipse(cx, cy, rx, ry)
	if err != nil {
		return Ellipse{}, err
	}
	return Ellipse{Ellipse: e, Paint: paint}, nil
}

func (e Ellipse) Glyph() Glyph { return e.Paint }
