package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/eventkit/internal/event"
)

// Source reads terminal events and translates them for the bus.
type Source struct {
	screen tcell.Screen
}

// NewSource creates a Source on the process's terminal.
func NewSource() (*Source, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Source{screen: screen}, nil
}

// NewSourceFromScreen creates a Source on an existing screen.
// Tests use this with tcell's simulation screen.
func NewSourceFromScreen(screen tcell.Screen) *Source {
	return &Source{screen: screen}
}

// Init puts the terminal into event-reporting mode.
func (s *Source) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableFocus()
	return nil
}

// Fini restores the terminal.
func (s *Source) Fini() {
	s.screen.Fini()
}

// Screen exposes the underlying screen for rendering.
func (s *Source) Screen() tcell.Screen {
	return s.screen
}

// Poll blocks for the next translatable terminal event. It reports
// false when the screen has been finalized and no more events will
// arrive. Terminal events the dispatcher has no type for are skipped.
func (s *Source) Poll() (event.Event, bool) {
	for {
		raw := s.screen.PollEvent()
		if raw == nil {
			return event.Event{}, false
		}
		if ev, ok := Translate(raw); ok {
			return ev, true
		}
	}
}
