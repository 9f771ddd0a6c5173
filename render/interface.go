package render

import "github.com/gdamore/tcell/v2"

// Surface is the character grid the renderer writes to
// tcell.Screen satisfies it; tests use tcell.NewSimulationScreen
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	HideCursor()
	Show()
	Sync()
}
