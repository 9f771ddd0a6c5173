package engine

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/vmath"
)

// Phase is the state machine position of a round
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseDying         // collision happened, snake blinks until restart
	PhaseGameOver      // board full, no free cell for the next item
	PhaseExited        // terminal
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "game_over"
	case PhaseExited:
		return "exited"
	}
	return "unknown"
}

// Segment is one body cell of the snake
type Segment struct {
	Cell  core.Point
	Color tcell.Color
}

// Item is the collectible the snake grows from
type Item struct {
	Cell  core.Point
	Color tcell.Color
}

// TickResult reports what a single Tick changed, for the renderer and feedback
type TickResult struct {
	Moved bool
	Head  core.Point // new head cell; the rejected cell when Died

	Grew  bool    // item consumed this tick
	Pitch float64 // feedback frequency for the consumed item

	// Tail is the cell dropped from the body when the snake did not grow
	Tail        core.Point
	TailDropped bool

	Died      bool
	BoardFull bool
}

// GameState owns the snake, item, heading and pacing of the current round
// Single owner: only the game loop goroutine may call its methods
type GameState struct {
	cfg Config
	rng *rand.Rand

	phase Phase
	round int

	body  []Segment // head first, tail last
	item  Item
	color tcell.Color // living snake color

	dir        core.Direction
	pending    core.Direction
	hasPending bool

	delay time.Duration
	pitch float64
}

// NewGameState creates a state and spawns the first round
func NewGameState(cfg Config, rng *rand.Rand) *GameState {
	gs := &GameState{
		cfg: cfg,
		rng: rng,
	}
	gs.Spawn()
	return gs
}

// resetRound restores the per-round defaults shared by every spawn path
func (gs *GameState) resetRound() {
	gs.phase = PhasePlaying
	gs.round++
	gs.color = render.ColorSnake
	gs.hasPending = false
	gs.delay = gs.cfg.InitialDelay
	gs.pitch = gs.cfg.FeedbackPitch
}

// Spawn starts a round with a random horizontal snake heading right and a random item
func (gs *GameState) Spawn() {
	n := gs.cfg.InitialLength
	lo := gs.cfg.InnerLeft() + n - 1
	hi := gs.cfg.InnerRight() - 2 // exclusive, leaves room to move right
	x := lo + gs.rng.IntN(max(hi-lo, 1))
	y := gs.cfg.InnerTop() + gs.rng.IntN(gs.cfg.InnerBottom()-gs.cfg.InnerTop()+1)

	cells := make([]core.Point, n)
	for i := range cells {
		cells[i] = core.Point{X: x - i, Y: y}
	}

	gs.resetRound()
	gs.setBody(cells)
	gs.dir = core.DirRight
	gs.item.Color = gs.randomColor()
	if cell, ok := gs.freeCell(); ok {
		gs.item.Cell = cell
	} else {
		gs.phase = PhaseGameOver
	}
}

// SpawnAt starts a round with an explicit body (head first), heading and item cell
func (gs *GameState) SpawnAt(cells []core.Point, dir core.Direction, item core.Point) {
	gs.resetRound()
	gs.setBody(cells)
	gs.dir = dir
	gs.item = Item{Cell: item, Color: gs.randomColor()}
}

func (gs *GameState) setBody(cells []core.Point) {
	gs.body = gs.body[:0]
	for _, c := range cells {
		gs.body = append(gs.body, Segment{Cell: c, Color: gs.color})
	}
}

// SetDirection queues a heading change for the next tick
// A direct reversal of the current heading is ignored; the latest accepted intent wins
func (gs *GameState) SetDirection(d core.Direction) bool {
	if gs.phase != PhasePlaying || d == gs.dir.Opposite() {
		return false
	}
	gs.pending = d
	gs.hasPending = true
	return true
}

// Tick advances the snake one cell; no-op outside PhasePlaying
func (gs *GameState) Tick() TickResult {
	var res TickResult
	if gs.phase != PhasePlaying || len(gs.body) == 0 {
		return res
	}

	// Commit pending heading, re-checked against the heading it would reverse
	if gs.hasPending {
		if gs.pending != gs.dir.Opposite() {
			gs.dir = gs.pending
		}
		gs.hasPending = false
	}

	head := gs.body[0].Cell.Step(gs.dir)
	res.Head = head

	if !gs.inner(head) || gs.Occupied(head) {
		gs.phase = PhaseDying
		res.Died = true
		return res
	}

	res.Moved = true
	grew := head == gs.item.Cell
	if grew {
		gs.color = gs.item.Color
		for i := range gs.body {
			gs.body[i].Color = gs.color
		}
		gs.item.Color = gs.randomColor()
		gs.delay = vmath.Clamp(gs.delay-gs.cfg.DelayStep, gs.cfg.MinDelay, gs.cfg.InitialDelay)

		res.Grew = true
		res.Pitch = gs.pitch
		gs.pitch *= math.Pow(2, gs.cfg.FeedbackPitchStep)
	}

	gs.body = append(gs.body, Segment{})
	copy(gs.body[1:], gs.body)
	gs.body[0] = Segment{Cell: head, Color: gs.color}

	if !grew {
		last := len(gs.body) - 1
		res.Tail = gs.body[last].Cell
		res.TailDropped = true
		gs.body = gs.body[:last]
		return res
	}

	// Relocate after the head is in the body so the item never lands under it
	if cell, ok := gs.freeCell(); ok {
		gs.item.Cell = cell
	} else {
		gs.phase = PhaseGameOver
		res.BoardFull = true
	}
	return res
}

// Restart respawns after death or a full board; ignored while playing or exited
func (gs *GameState) Restart() bool {
	if gs.phase != PhaseDying && gs.phase != PhaseGameOver {
		return false
	}
	gs.Spawn()
	return true
}

// Exit moves to the terminal phase
func (gs *GameState) Exit() {
	gs.phase = PhaseExited
}

// Occupied reports whether any segment sits on p
func (gs *GameState) Occupied(p core.Point) bool {
	for _, s := range gs.body {
		if s.Cell == p {
			return true
		}
	}
	return false
}

func (gs *GameState) inner(p core.Point) bool {
	return p.In(gs.cfg.InnerLeft(), gs.cfg.InnerTop(), gs.cfg.InnerRight(), gs.cfg.InnerBottom())
}

// freeCell rejection-samples an unoccupied inner cell
// After a bounded number of misses it scans for free cells; false means the board is full
func (gs *GameState) freeCell() (core.Point, bool) {
	left, top := gs.cfg.InnerLeft(), gs.cfg.InnerTop()
	w := gs.cfg.InnerRight() - left + 1
	h := gs.cfg.InnerBottom() - top + 1

	tries := gs.cfg.PlacementRetriesPerCell * w * h
	for range tries {
		p := core.Point{X: left + gs.rng.IntN(w), Y: top + gs.rng.IntN(h)}
		if !gs.Occupied(p) {
			return p, true
		}
	}

	var free []core.Point
	for y := top; y < top+h; y++ {
		for x := left; x < left+w; x++ {
			if p := (core.Point{X: x, Y: y}); !gs.Occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[gs.rng.IntN(len(free))], true
}

func (gs *GameState) randomColor() tcell.Color {
	return render.ItemPalette[gs.rng.IntN(len(render.ItemPalette))]
}

// Accessors for the renderer and loop

func (gs *GameState) Phase() Phase              { return gs.phase }
func (gs *GameState) Round() int                { return gs.round }
func (gs *GameState) Direction() core.Direction { return gs.dir }
func (gs *GameState) Delay() time.Duration      { return gs.delay }
func (gs *GameState) SnakeColor() tcell.Color   { return gs.color }
func (gs *GameState) Item() Item                { return gs.item }
func (gs *GameState) Len() int                  { return len(gs.body) }
func (gs *GameState) Pitch() float64            { return gs.pitch }

// Head returns the head segment cell
func (gs *GameState) Head() core.Point {
	if len(gs.body) == 0 {
		return core.Point{}
	}
	return gs.body[0].Cell
}

// Body returns the segments head first; callers must not modify it
func (gs *GameState) Body() []Segment {
	return gs.body
}

// Pending returns the queued heading, if any
func (gs *GameState) Pending() (core.Direction, bool) {
	return gs.pending, gs.hasPending
}

// Score is (length - initial length) * points per item
func (gs *GameState) Score() int {
	return (len(gs.body) - gs.cfg.InitialLength) * gs.cfg.PointsPerItem
}
