package dnd

import (
	"testing"

	"github.com/micro-editor/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_IdleState(t *testing.T) {
	b := NewBroker()

	assert.False(t, b.IsDragInProgress())
	assert.Equal(t, TypeNone, b.DragTypeID())
	assert.Nil(t, b.DragData())
	assert.False(t, b.EndDrag(true), "ending with nothing in flight is a no-op")
}

func TestBroker_CallbackSeesPayload(t *testing.T) {
	b := NewBroker()
	payload := &struct{ name string }{"Console"}

	var gotProcessed bool
	var gotData interface{}
	var gotType TypeID
	require.NoError(t, b.StartDrag("Console", TypeEditorWidget, payload, func(processed bool) {
		gotProcessed = processed
		gotData = b.DragData()
		gotType = b.DragTypeID()
	}))

	assert.True(t, b.IsDragInProgress())
	assert.Equal(t, "Console", b.Hint())

	assert.True(t, b.EndDrag(false))

	assert.False(t, gotProcessed)
	assert.Same(t, payload, gotData, "payload must still be readable inside the callback")
	assert.Equal(t, TypeEditorWidget, gotType)

	assert.False(t, b.IsDragInProgress())
	assert.Nil(t, b.DragData())
	assert.Equal(t, TypeNone, b.DragTypeID())
}

func TestBroker_OneDragAtATime(t *testing.T) {
	b := NewBroker()
	require.NoError(t, b.StartDrag("first", TypeEditorWidget, 1, nil))

	err := b.StartDrag("second", TypeEditorWidget, 2, nil)
	assert.Equal(t, ErrDragInProgress, err)
	assert.Equal(t, 1, b.DragData(), "the first payload is untouched")

	assert.True(t, b.Cancel())
	assert.NoError(t, b.StartDrag("third", TypeEditorWidget, 3, nil))
}

func TestBroker_CallbackMayStartNewDrag(t *testing.T) {
	b := NewBroker()
	require.NoError(t, b.StartDrag("a", TypeEditorWidget, "a", func(bool) {
		// still in flight while the callback runs
		assert.Equal(t, ErrDragInProgress, b.StartDrag("b", TypeEditorWidget, "b", nil))
	}))
	b.EndDrag(true)
	assert.False(t, b.IsDragInProgress())
}

func TestBroker_DrawHint(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	defer sim.Fini()
	sim.SetSize(20, 4)

	b := NewBroker()
	require.NoError(t, b.StartDrag("Log", TypeEditorWidget, nil, nil))
	b.Draw(sim, 3, 2)

	r, _, _, _ := sim.GetContent(4, 2)
	assert.Equal(t, 'L', r)

	// Off screen rows are skipped without panicking
	assert.NotPanics(t, func() { b.Draw(sim, 0, 10) })
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "none", TypeNone.String())
	assert.Equal(t, "editor-widget", TypeEditorWidget.String())
	assert.Equal(t, "unknown", TypeID(42).String())
}
