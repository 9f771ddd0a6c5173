package input

import (
	"context"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// EventSource is the blocking poll side of a terminal; tcell.Screen satisfies it
// PollEvent must return nil once the source is closed
type EventSource interface {
	PollEvent() tcell.Event
}

// Listener polls terminal events and forwards translated intents
// It never touches game state; the loop is the sole consumer of Intents()
type Listener struct {
	src  EventSource
	keys *KeyTable
	out  chan Intent

	dropped atomic.Int64
}

// NewListener creates a listener with a buffered intent channel of size n
func NewListener(src EventSource, keys *KeyTable, n int) *Listener {
	return &Listener{
		src:  src,
		keys: keys,
		out:  make(chan Intent, n),
	}
}

// Intents is the receive side for the game loop; closed when Run returns
func (l *Listener) Intents() <-chan Intent {
	return l.out
}

// Dropped counts intents discarded because the loop fell behind
func (l *Listener) Dropped() int64 {
	return l.dropped.Load()
}

// Run blocks polling until the source closes or ctx is cancelled
// Movement intents are dropped when the buffer is full; quit always gets through
func (l *Listener) Run(ctx context.Context) error {
	defer close(l.out)

	for {
		ev := l.src.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		in, ok := l.keys.Translate(ev)
		if !ok {
			continue
		}

		if in.Type == IntentQuit {
			select {
			case l.out <- in:
			case <-ctx.Done():
				return nil
			}
			continue
		}

		select {
		case l.out <- in:
		default:
			l.dropped.Add(1)
		}
	}
}
