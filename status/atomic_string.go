package status

import "sync/atomic"

// AtomicString is a lock-free string cell; zero value reads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store replaces the value
func (s *AtomicString) Store(val string) {
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
