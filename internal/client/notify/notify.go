// Package notify holds the single transient status message shown to the
// user after every action.
//
// A notice moves hidden → visible → hidden. Show makes it visible and hands
// back a generation number; whoever drives the clock calls Expire with that
// number once the display window has passed. Only the latest generation can
// hide the notice, so a timer armed for an older message never cuts a newer
// one short.
package notify

import "sync"

type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
)

// Notice is what the user sees.
type Notice struct {
	Text     string
	Severity Severity
}

// Surface is safe for concurrent use.
type Surface struct {
	mu         sync.Mutex
	current    Notice
	visible    bool
	generation uint64
}

// Show replaces the current notice and makes it visible.
func (s *Surface) Show(text string, severity Severity) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Notice{Text: text, Severity: severity}
	s.visible = true
	s.generation++
	return s.generation
}

// Expire hides the notice if gen is still the latest Show. It reports
// whether anything was hidden. The text and severity are kept.
func (s *Surface) Expire(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || !s.visible {
		return false
	}
	s.visible = false
	return true
}

// Current returns the last notice and whether it is still on screen.
func (s *Surface) Current() (Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.visible
}
