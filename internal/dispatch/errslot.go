package dispatch

import "sync"

// ErrorSlot is a single-slot error holder shared across callback
// goroutines. The first write wins; later errors are counted but never
// overwrite the attributable error of the attempt.
type ErrorSlot struct {
	mu         sync.Mutex
	err        error
	suppressed int
}

// Set records err. It returns true when err became the slot's error,
// false when another error was already recorded. nil is ignored.
func (s *ErrorSlot) Set(err error) bool {
	if err == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		s.suppressed++
		return false
	}
	s.err = err
	return true
}

// Get returns the recorded error, or nil.
func (s *ErrorSlot) Get() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Suppressed returns the number of errors that lost the race.
func (s *ErrorSlot) Suppressed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suppressed
}
