package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
)

// KeyTable maps terminal key events to intents
type KeyTable struct {
	Special map[tcell.Key]Intent
	Runes   map[rune]Intent
}

// DefaultKeyTable binds arrows, WASD and vi keys to movement
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Special: map[tcell.Key]Intent{
			tcell.KeyUp:     Move(core.DirUp),
			tcell.KeyDown:   Move(core.DirDown),
			tcell.KeyLeft:   Move(core.DirLeft),
			tcell.KeyRight:  Move(core.DirRight),
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'w': Move(core.DirUp),
			'a': Move(core.DirLeft),
			's': Move(core.DirDown),
			'd': Move(core.DirRight),
			'k': Move(core.DirUp),
			'h': Move(core.DirLeft),
			'j': Move(core.DirDown),
			'l': Move(core.DirRight),
			'q': {Type: IntentQuit},
			'n': {Type: IntentRestart},
			'N': {Type: IntentRestart},
		},
	}
}

// Translate converts a tcell event; false when the event has no binding
func (kt *KeyTable) Translate(ev tcell.Event) (Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			in, ok := kt.Runes[ev.Rune()]
			return in, ok
		}
		in, ok := kt.Special[ev.Key()]
		return in, ok
	case *tcell.EventResize:
		return Intent{Type: IntentRedraw}, true
	}
	return Intent{}, false
}
