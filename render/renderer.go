package render

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Border runes for the playfield frame
const (
	borderHorizontal  = '═'
	borderVertical    = '║'
	borderTopLeft     = '╔'
	borderTopRight    = '╗'
	borderBottomLeft  = '╚'
	borderBottomRight = '╝'
)

// Renderer rasterizes shapes onto a Surface by walking their bounding boxes
// Not safe for concurrent use; the game loop is the only writer
type Renderer struct {
	surface Surface
	blank   tcell.Style
}

// NewRenderer creates a renderer that erases to the default background
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{
		surface: surface,
		blank:   Style(ColorBackground, ColorBackground),
	}
}

// Surface returns the underlying output surface
func (r *Renderer) Surface() Surface {
	return r.surface
}

// Draw writes the shape glyph into every covered cell
func (r *Renderer) Draw(shape Shape) {
	g := shape.Glyph()
	r.fill(shape, g.Rune, g.Style())
}

// Erase blanks every cell the shape covers
func (r *Renderer) Erase(shape Shape) {
	r.fill(shape, ' ', r.blank)
}

// DrawAll draws shapes in order; later shapes overdraw earlier ones
func (r *Renderer) DrawAll(shapes []Shape) {
	for _, s := range shapes {
		r.Draw(s)
	}
}

// fill walks the floored bounding box clipped to the surface and tests containment per cell
func (r *Renderer) fill(shape Shape, ch rune, style tcell.Style) {
	width, height := r.surface.Size()
	minCol, maxCol, minRow, maxRow := shape.Bounds().Cells()

	minCol = max(minCol, 0)
	minRow = max(minRow, 0)
	maxCol = min(maxCol, width-1)
	maxRow = min(maxRow, height-1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if shape.ContainsPoint(float64(col), float64(row)) {
				r.surface.SetContent(col, row, ch, nil, style)
			}
		}
	}
}

// DrawText writes an overlay string starting at (x, y)
// Returns false and writes nothing when any rune would fall off the surface
func (r *Renderer) DrawText(x, y int, text string, fg, bg tcell.Color) bool {
	width, height := r.surface.Size()
	n := utf8.RuneCountInString(text)
	if x < 0 || y < 0 || y >= height || x+n > width {
		return false
	}

	style := Style(fg, bg)
	i := 0
	for _, ch := range text {
		r.surface.SetContent(x+i, y, ch, nil, style)
		i++
	}
	return true
}

// EraseText blanks the cells a DrawText call at the same position would cover
func (r *Renderer) EraseText(x, y, n int) {
	width, height := r.surface.Size()
	if y < 0 || y >= height {
		return
	}
	for i := max(x, 0); i < x+n && i < width; i++ {
		r.surface.SetContent(i, y, ' ', nil, r.blank)
	}
}

// Frame draws a double-line border around the rectangle (0,0)-(w-1,h-1)
func (r *Renderer) Frame(w, h int, fg tcell.Color) {
	if w < 2 || h < 2 {
		return
	}
	style := Style(fg, ColorBackground)

	for x := 1; x < w-1; x++ {
		r.set(x, 0, borderHorizontal, style)
		r.set(x, h-1, borderHorizontal, style)
	}
	for y := 1; y < h-1; y++ {
		r.set(0, y, borderVertical, style)
		r.set(w-1, y, borderVertical, style)
	}
	r.set(0, 0, borderTopLeft, style)
	r.set(w-1, 0, borderTopRight, style)
	r.set(0, h-1, borderBottomLeft, style)
	r.set(w-1, h-1, borderBottomRight, style)
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	width, height := r.surface.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	r.surface.SetContent(x, y, ch, nil, style)
}

// Clear blanks the whole surface
func (r *Renderer) Clear() {
	r.surface.Clear()
}

// Flush presents the drawn batch with the cursor hidden
// Styles are per cell, so no attribute state carries over to the next batch
func (r *Renderer) Flush() {
	r.surface.HideCursor()
	r.surface.Show()
}

// Sync forces a full repaint, used after terminal resize
func (r *Renderer) Sync() {
	r.surface.HideCursor()
	r.surface.Sync()
}
