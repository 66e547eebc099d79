// Package input tracks pointer state from tcell mouse events.
package input

import (
	"github.com/micro-editor/tcell/v2"
)

// Transition is what a mouse event means relative to the previous one
type Transition int

const (
	Move Transition = iota
	Press
	Drag
	Release
	Wheel
)

// Mouse remembers the last pointer position and whether the primary button
// is held. tcell only reports button state, so press and release are derived
// by comparing with the previous event.
type Mouse struct {
	X, Y    int
	pressed bool
}

// Update records ev and returns the transition it represents
func (m *Mouse) Update(ev *tcell.EventMouse) Transition {
	m.X, m.Y = ev.Position()
	buttons := ev.Buttons()

	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		return Wheel
	}

	down := buttons&tcell.Button1 != 0
	switch {
	case down && !m.pressed:
		m.pressed = true
		return Press
	case down:
		return Drag
	case m.pressed:
		m.pressed = false
		return Release
	}
	return Move
}

// Position returns the last known pointer position
func (m *Mouse) Position() (int, int) {
	return m.X, m.Y
}

// Pressed reports whether the primary button is held
func (m *Mouse) Pressed() bool {
	return m.pressed
}
