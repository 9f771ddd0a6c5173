package input

import "github.com/lixenwraith/snake/core"

// IntentType discriminates what the player asked for
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentDirection // arrows, WASD, hjkl
	IntentRestart   // n, N; honored only after death or a full board
	IntentQuit      // Esc, q, Ctrl+C
	IntentRedraw    // terminal resize
)

// Intent is one semantic input event handed from the listener to the game loop
type Intent struct {
	Type IntentType
	Dir  core.Direction // valid for IntentDirection
}

func (t IntentType) String() string {
	switch t {
	case IntentDirection:
		return "direction"
	case IntentRestart:
		return "restart"
	case IntentQuit:
		return "quit"
	case IntentRedraw:
		return "redraw"
	}
	return "none"
}

// Move builds a direction intent
func Move(d core.Direction) Intent {
	return Intent{Type: IntentDirection, Dir: d}
}
