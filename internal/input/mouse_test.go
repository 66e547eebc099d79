package input

import (
	"testing"

	"github.com/micro-editor/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func mouseAt(x, y int, b tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, b, tcell.ModNone, "")
}

func TestMouse_Transitions(t *testing.T) {
	var m Mouse

	assert.Equal(t, Move, m.Update(mouseAt(1, 1, tcell.ButtonNone)))
	assert.Equal(t, Press, m.Update(mouseAt(2, 1, tcell.Button1)))
	assert.True(t, m.Pressed())
	assert.Equal(t, Drag, m.Update(mouseAt(5, 4, tcell.Button1)))
	assert.Equal(t, Release, m.Update(mouseAt(6, 4, tcell.ButtonNone)))
	assert.False(t, m.Pressed())
	assert.Equal(t, Move, m.Update(mouseAt(7, 4, tcell.ButtonNone)))

	x, y := m.Position()
	assert.Equal(t, 7, x)
	assert.Equal(t, 4, y)
}

func TestMouse_WheelDoesNotChangeButtonState(t *testing.T) {
	var m Mouse
	m.Update(mouseAt(0, 0, tcell.Button1))

	assert.Equal(t, Wheel, m.Update(mouseAt(0, 0, tcell.WheelDown)))
	assert.True(t, m.Pressed())
}
