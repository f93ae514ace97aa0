package sinks

import (
	"context"
	"sync"

	"github.com/Bamcane/teeworlds-teewar/logging"
)

// MemorySink records events for assertions in tests and the diagnostics
// endpoint.
type MemorySink struct {
	mu     sync.RWMutex
	events []logging.Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Write(event logging.Event) error {
	s.mu.Lock()
	s.events = append(s.events, event.Clone())
	s.mu.Unlock()
	return nil
}

func (s *MemorySink) Close(context.Context) error { return nil }

// Events returns a copy of everything recorded so far.
func (s *MemorySink) Events() []logging.Event {
	return s.filter(func(logging.Event) bool { return true })
}

// EventsOfType returns the recorded events of one type.
func (s *MemorySink) EventsOfType(eventType logging.EventType) []logging.Event {
	return s.filter(func(e logging.Event) bool { return e.Type == eventType })
}

// Since returns the events stamped at or after tick.
func (s *MemorySink) Since(tick uint64) []logging.Event {
	return s.filter(func(e logging.Event) bool { return e.Tick >= tick })
}

func (s *MemorySink) Reset() {
	s.mu.Lock()
	s.events = nil
	s.mu.Unlock()
}

func (s *MemorySink) filter(keep func(logging.Event) bool) []logging.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]logging.Event, 0, len(s.events))
	for _, event := range s.events {
		if keep(event) {
			out = append(out, event)
		}
	}
	return out
}
