package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/vmath"
)

// overlay remembers where transient text was drawn so the next frame can erase it
type overlay struct {
	x, y, n int
}

// Scene turns a GameState into shapes and overlays on the renderer
type Scene struct {
	r   *render.Renderer
	cfg Config

	transient *overlay
}

// NewScene binds a renderer to the playfield geometry of cfg
func NewScene(r *render.Renderer, cfg Config) *Scene {
	return &Scene{r: r, cfg: cfg}
}

// Redraw repaints everything from scratch: border, snake, item, overlays
func (s *Scene) Redraw(gs *GameState) {
	s.r.Clear()
	s.transient = nil
	s.Frame(gs, TickResult{})

	switch gs.Phase() {
	case PhaseDying:
		s.DeathFrame(gs, false)
	case PhaseGameOver:
		s.GameOverFrame(gs)
	}
}

// Sync forces the terminal to repaint every cell, needed after resize
func (s *Scene) Sync() {
	s.r.Sync()
}

// Frame draws one playing tick
func (s *Scene) Frame(gs *GameState, res TickResult) {
	if res.TailDropped {
		s.r.Erase(s.segmentShape(res.Tail, render.ColorBackground))
	}
	if s.transient != nil {
		s.r.EraseText(s.transient.x, s.transient.y, s.transient.n)
		s.transient = nil
	}

	w, h := s.cfg.ScreenSize()
	s.r.Frame(w, h, render.ColorBorder)

	s.r.DrawAll(s.shapes(gs))
	s.drawEyes(gs)
	if res.Grew {
		s.drawYum(gs)
	}
	s.drawScore(gs)
	s.r.Flush()
}

// DeathFrame redraws the body in its living color or the flash color
func (s *Scene) DeathFrame(gs *GameState, living bool) {
	bg := render.ColorFlash
	if living {
		bg = gs.SnakeColor()
	}

	shapes := make([]render.Shape, 0, gs.Len())
	for _, seg := range gs.Body() {
		r := s.segmentShape(seg.Cell, bg)
		r.Paint.Fg = tcell.ColorBlack
		shapes = append(shapes, r)
	}
	s.r.DrawAll(shapes)
	s.drawHint(constants.DeathHintText)
	s.r.Flush()
}

// GameOverFrame freezes the snake and shows the board-full banner
func (s *Scene) GameOverFrame(gs *GameState) {
	s.DeathFrame(gs, true)

	w, h := s.cfg.ScreenSize()
	text := constants.BoardFullText
	x := (w - utf8.RuneCountInString(text)) / 2
	s.r.DrawText(x, h/2, text, render.ColorScoreFg, render.ColorScoreBg)
	s.r.Flush()
}

// shapes lists segments head first, then the item on top
func (s *Scene) shapes(gs *GameState) []render.Shape {
	body := gs.Body()
	out := make([]render.Shape, 0, len(body)+1)
	for _, seg := range body {
		out = append(out, s.segmentShape(seg.Cell, seg.Color))
	}
	if gs.Phase() != PhaseGameOver {
		out = append(out, s.itemShape(gs.Item()))
	}
	return out
}

// segmentShape maps a grid cell to its CellWidth x CellHeight character block
func (s *Scene) segmentShape(c core.Point, color tcell.Color) render.Rectangle {
	cw, ch := float64(s.cfg.CellWidth), float64(s.cfg.CellHeight)
	return render.Rectangle{
		Rect:  vmath.Rect{X: float64(c.X) * cw, Y: float64(c.Y) * ch, W: cw, H: ch},
		Paint: render.Glyph{Rune: ' ', Fg: color, Bg: color},
	}
}

// itemShape is an ellipse inscribed in the item's cell block
func (s *Scene) itemShape(it Item) render.Ellipse {
	cw, ch := float64(s.cfg.CellWidth), float64(s.cfg.CellHeight)
	return render.Ellipse{
		Ellipse: vmath.Ellipse{
			CX: float64(it.Cell.X)*cw + (cw-1)/2,
			CY: float64(it.Cell.Y)*ch + (ch-1)/2,
			RX: cw / 2,
			RY: ch / 2,
		},
		Paint: render.Glyph{Rune: constants.ItemDisplayRune, Fg: it.Color, Bg: it.Color},
	}
}

// cellOrigin is the top-left screen character of a grid cell
func (s *Scene) cellOrigin(c core.Point) (int, int) {
	return c.X * s.cfg.CellWidth, c.Y * s.cfg.CellHeight
}

// eyes builds the head overlay for a heading, one rune per cell column
func eyes(d core.Direction, width int) string {
	row := []rune(strings.Repeat(" ", width))
	switch d {
	case core.DirLeft:
		row[0] = 'o'
	case core.DirRight:
		row[width-1] = 'o'
	default:
		row[0] = 'o'
		row[width-1] = 'o'
	}
	return string(row)
}

func (s *Scene) drawEyes(gs *GameState) {
	if gs.Len() == 0 {
		return
	}
	x, y := s.cellOrigin(gs.Head())
	if gs.Direction() == core.DirDown {
		y += s.cfg.CellHeight - 1
	}
	s.r.DrawText(x, y, eyes(gs.Direction(), s.cfg.CellWidth), render.ColorEyes, gs.SnakeColor())
}

// drawYum places the consumed indicator one cell ahead of the head
// Skipped when it would touch the border
func (s *Scene) drawYum(gs *GameState) {
	x, y := s.cellOrigin(gs.Head())
	switch gs.Direction() {
	case core.DirUp:
		y--
	case core.DirDown:
		y += s.cfg.CellHeight
	case core.DirLeft:
		x -= s.cfg.CellWidth
	case core.DirRight:
		x += s.cfg.CellWidth
	}

	n := utf8.RuneCountInString(constants.YumText)
	w, h := s.cfg.ScreenSize()
	left, top := s.cellOrigin(core.Point{X: s.cfg.InnerLeft(), Y: s.cfg.InnerTop()})
	right, bottom := w-s.cfg.CellWidth, h-s.cfg.CellHeight
	if x < left || x+n > right || y < top || y >= bottom {
		return
	}

	if s.r.DrawText(x, y, constants.YumText, render.ColorYum, render.ColorBackground) {
		s.transient = &overlay{x: x, y: y, n: n}
	}
}

// drawScore right-aligns the score on the bottom border
func (s *Scene) drawScore(gs *GameState) {
	text := fmt.Sprintf(constants.ScoreFormat, gs.Score())
	w, h := s.cfg.ScreenSize()
	x := w - utf8.RuneCountInString(text) - constants.ScoreRightPad
	s.r.DrawText(x, h-1, text, render.ColorScoreFg, render.ColorScoreBg)
}

// drawHint writes a key hint on the bottom border, left side
func (s *Scene) drawHint(text string) {
	_, h := s.cfg.ScreenSize()
	s.r.DrawText(constants.ScoreRightPad, h-1, text, render.ColorScoreFg, render.ColorScoreBg)
}
