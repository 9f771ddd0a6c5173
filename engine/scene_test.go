package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/render"
)

func newTestScene(t *testing.T, cfg Config) (*Scene, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	w, h := cfg.ScreenSize()
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return NewScene(render.NewRenderer(screen), cfg), screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) (rune, tcell.Color, tcell.Color) {
	ch, _, style, _ := screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return ch, fg, bg
}

func TestSceneFrameDrawsSnakeAndItem(t *testing.T) {
	cfg := DefaultConfig()
	gs := NewGameState(cfg, rand.New(rand.NewPCG(7, 8)))
	gs.SpawnAt(startBody, core.DirRight, core.Point{X: 30, Y: 20})
	scene, screen := newTestScene(t, cfg)

	scene.Redraw(gs)

	// Second segment (9,10) fills chars 36..39 x 20..21 with the snake color
	for y := 20; y <= 21; y++ {
		for x := 36; x <= 39; x++ {
			if _, _, bg := cellAt(screen, x, y); bg != gs.SnakeColor() {
				t.Errorf("Segment char (%d,%d): bg=%v, want %v", x, y, bg, gs.SnakeColor())
			}
		}
	}

	// Item block at (30,20) is fully covered by its inscribed ellipse
	item := gs.Item()
	for y := 40; y <= 41; y++ {
		for x := 120; x <= 123; x++ {
			if _, _, bg := cellAt(screen, x, y); bg != item.Color {
				t.Errorf("Item char (%d,%d): bg=%v, want %v", x, y, bg, item.Color)
			}
		}
	}

	// Heading right puts one eye on the head's right edge
	if ch, fg, _ := cellAt(screen, 43, 20); ch != 'o' || fg != render.ColorEyes {
		t.Errorf("Expected eye at (43,20), got %q fg=%v", ch, fg)
	}

	// Border corners
	w, h := cfg.ScreenSize()
	if ch, _, _ := cellAt(screen, 0, 0); ch != '╔' {
		t.Errorf("Expected top-left corner, got %q", ch)
	}
	if ch, _, _ := cellAt(screen, w-1, h-1); ch != '╝' {
		t.Errorf("Expected bottom-right corner, got %q", ch)
	}
}

func TestSceneScoreOverlay(t *testing.T) {
	cfg := DefaultConfig()
	gs := NewGameState(cfg, rand.New(rand.NewPCG(7, 8)))
	gs.SpawnAt(startBody, core.DirRight, core.Point{X: 11, Y: 10})
	scene, screen := newTestScene(t, cfg)
	scene.Redraw(gs)

	res := gs.Tick()
	scene.Frame(gs, res)

	w, h := cfg.ScreenSize()
	text := "  SCORE: 10       "
	x0 := w - len(text) - 2
	for i, want := range text {
		ch, fg, bg := cellAt(screen, x0+i, h-1)
		if ch != want || fg != render.ColorScoreFg || bg != render.ColorScoreBg {
			t.Fatalf("Score char %d: got %q fg=%v bg=%v, want %q", i, ch, fg, bg, want)
		}
	}
}

func TestSceneErasesDroppedTail(t *testing.T) {
	cfg := DefaultConfig()
	gs := NewGameState(cfg, rand.New(rand.NewPCG(7, 8)))
	gs.SpawnAt(startBody, core.DirRight, core.Point{X: 30, Y: 20})
	scene, screen := newTestScene(t, cfg)
	scene.Redraw(gs)

	res := gs.Tick()
	scene.Frame(gs, res)

	// Old tail (8,10) covers chars 32..35 x 20..21
	for y := 20; y <= 21; y++ {
		for x := 32; x <= 35; x++ {
			ch, _, bg := cellAt(screen, x, y)
			if ch != ' ' || bg != render.ColorBackground {
				t.Errorf("Tail char (%d,%d) not erased: %q bg=%v", x, y, ch, bg)
			}
		}
	}
	// New head (11,10) starts at char 44
	if _, _, bg := cellAt(screen, 44, 20); bg != gs.SnakeColor() {
		t.Errorf("Expected new head drawn at char 44, bg=%v", bg)
	}
}

func TestSceneYumIsTransient(t *testing.T) {
	cfg := DefaultConfig()
	gs := NewGameState(cfg, rand.New(rand.NewPCG(7, 8)))
	gs.SpawnAt(startBody, core.DirRight, core.Point{X: 11, Y: 10})
	scene, screen := newTestScene(t, cfg)
	scene.Redraw(gs)

	res := gs.Tick()
	scene.Frame(gs, res)

	// Head (11,10) heading right: indicator one cell ahead at char (48,20)
	for i, want := range "YUM!" {
		if ch, fg, _ := cellAt(screen, 48+i, 20); ch != want || fg != render.ColorYum {
			t.Fatalf("Yum char %d: got %q fg=%v", i, ch, fg)
		}
	}

	gs.item.Cell = core.Point{X: 40, Y: 20}
	scene.Frame(gs, gs.Tick())
	if ch, _, _ := cellAt(screen, 48, 20); ch == 'Y' {
		t.Error("Expected yum indicator gone on the following frame")
	}
}

func TestSceneYumSkippedAtBorder(t *testing.T) {
	cfg := DefaultConfig()
	gs := NewGameState(cfg, rand.New(rand.NewPCG(7, 8)))
	right := cfg.InnerRight()
	body := []core.Point{{X: right - 1, Y: 10}, {X: right - 2, Y: 10}, {X: right - 3, Y: 10}}
	gs.SpawnAt(body, core.DirRight, core.Point{X: right, Y: 10})
	scene, screen := newTestScene(t, cfg)
	scene.Redraw(gs)

	res := gs.Tick()
	if !res.Grew {
		t.Fatalf("Expected growth at the wall, got %+v", res)
	}
	scene.Frame(gs, res)

	w, _ := cfg.ScreenSize()
	for x := w - cfg.CellWidth; x < w; x++ {
		if ch, _, _ := cellAt(screen, x, 20); ch == 'Y' || ch == 'U' || ch == 'M' {
			t.Errorf("Expected yum skipped near border, found %q at %d", ch, x)
		}
	}
	if ch, _, _ := cellAt(screen, w-1, 20); ch != '║' {
		t.Errorf("Expected border intact, got %q", ch)
	}
}

func TestSceneDeathFrameBlinks(t *testing.T) {
	cfg := DefaultConfig()
	gs := NewGameState(cfg, rand.New(rand.NewPCG(7, 8)))
	gs.SpawnAt(startBody, core.DirRight, core.Point{X: 30, Y: 20})
	scene, screen := newTestScene(t, cfg)
	scene.Redraw(gs)

	scene.DeathFrame(gs, false)
	if _, _, bg := cellAt(screen, 40, 20); bg != render.ColorFlash {
		t.Errorf("Expected flash color on head, bg=%v", bg)
	}

	scene.DeathFrame(gs, true)
	if _, _, bg := cellAt(screen, 40, 20); bg != gs.SnakeColor() {
		t.Errorf("Expected living color on head, bg=%v", bg)
	}
}

func TestSceneGameOverBanner(t *testing.T) {
	cfg := DefaultConfig()
	gs := NewGameState(cfg, rand.New(rand.NewPCG(7, 8)))
	scene, screen := newTestScene(t, cfg)
	gs.phase = PhaseGameOver

	scene.Redraw(gs)

	w, h := cfg.ScreenSize()
	found := false
	for x := 0; x < w; x++ {
		if ch, _, _ := cellAt(screen, x, h/2); ch == 'B' {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected board-full banner on the middle row")
	}
}

func TestEyesPerHeading(t *testing.T) {
	tests := []struct {
		dir  core.Direction
		want string
	}{
		{core.DirUp, "o  o"},
		{core.DirDown, "o  o"},
		{core.DirLeft, "o   "},
		{core.DirRight, "   o"},
	}
	for _, tt := range tests {
		if got := eyes(tt.dir, 4); got != tt.want {
			t.Errorf("eyes(%s) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}
