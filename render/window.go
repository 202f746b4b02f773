package render

import (
	"github.com/gdamore/tcell/v2"
)

// TerminalWindow adapts tcell input to the engine's window collaborator
type TerminalWindow struct {
	screen tcell.Screen
	closed bool
	paused bool
}

// NewTerminalWindow wraps an initialized screen
func NewTerminalWindow(screen tcell.Screen) *TerminalWindow {
	return &TerminalWindow{screen: screen}
}

// ShouldClose reports whether a quit key was pressed
func (w *TerminalWindow) ShouldClose() bool {
	return w.closed
}

// Paused reports the pause toggle
func (w *TerminalWindow) Paused() bool {
	return w.paused
}

// PollEvents handles every queued event without blocking
func (w *TerminalWindow) PollEvents() {
	for w.screen.HasPendingEvent() {
		w.handleEvent(w.screen.PollEvent())
	}
}

func (w *TerminalWindow) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			w.closed = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				w.closed = true
			case 'p', 'P', ' ':
				w.paused = !w.paused
			}
		}

	case *tcell.EventResize:
		w.screen.Sync()

	case nil:
		// Screen finalized
		w.closed = true
	}
}
