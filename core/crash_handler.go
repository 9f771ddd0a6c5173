package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	resetMu   sync.Mutex
	resetFunc func()
)

// SetResetHandler registers the terminal restore hook run before a crash report
// Keeps core independent of the terminal library
func SetResetHandler(fn func()) {
	resetMu.Lock()
	resetFunc = fn
	resetMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic with stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	resetMu.Lock()
	fn := resetFunc
	resetMu.Unlock()
	if fn != nil {
		fn()
	}

	// Raw mode may still be active on the tty, use \r\n to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Guard wraps fn with panic recovery routed through HandleCrash
// Intended for errgroup.Go so every goroutine shares terminal cleanup
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
