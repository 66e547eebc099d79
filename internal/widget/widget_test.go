package widget

import (
	"testing"

	"github.com/micro-editor/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHost struct {
	destroyed []Widget
}

func (h *recordingHost) NotifyWidgetDestroyed(w Widget) {
	h.destroyed = append(h.destroyed, w)
}

func TestDestroy_NotifiesHostThenCloses(t *testing.T) {
	host := &recordingHost{}
	p := NewTextPanel("Console")
	p.ChangeParent(host)

	closed := 0
	p.OnClose = func() { closed++ }

	Destroy(p)

	require.Len(t, host.destroyed, 1)
	assert.Same(t, p, host.destroyed[0])
	assert.Equal(t, 1, closed)
	assert.True(t, p.Closed())
	assert.False(t, p.Enabled())
}

func TestDestroy_UnlistedWidget(t *testing.T) {
	p := NewTextPanel("Console")
	assert.NotPanics(t, func() { Destroy(p) })
	assert.True(t, p.Closed())

	// Closing twice does not fire OnClose again
	calls := 0
	p.OnClose = func() { calls++ }
	p.Close()
	assert.Equal(t, 0, calls)
}

func TestDestroy_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Destroy(nil) })
}

func TestTextPanel_DrawClipsToRegion(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	defer sim.Fini()
	sim.SetSize(20, 5)

	p := NewTextPanel("Notes", "helloworld", "second")
	p.SetPosition(1, 1)
	p.SetSize(5, 1)
	p.Draw(sim)

	r, _, _, _ := sim.GetContent(1, 1)
	assert.Equal(t, 'h', r)
	r, _, _, _ = sim.GetContent(5, 1)
	assert.Equal(t, 'o', r)
	r, _, _, _ = sim.GetContent(6, 1)
	assert.NotEqual(t, 'w', r, "the line is clipped at the region edge")
	r, _, _, _ = sim.GetContent(1, 2)
	assert.Equal(t, ' ', r, "only one row fits")
}

func TestTextPanel_DisabledDoesNotDraw(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	defer sim.Fini()
	sim.SetSize(10, 3)

	p := NewTextPanel("Notes", "abc")
	p.SetSize(10, 3)
	p.Disable()
	p.Draw(sim)

	r, _, _, _ := sim.GetContent(0, 0)
	assert.NotEqual(t, 'a', r)
}

func TestTextPanel_ScrollClamped(t *testing.T) {
	p := NewTextPanel("Log", "1", "2", "3", "4", "5")
	p.SetSize(10, 2)

	handled := p.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone, ""))
	assert.True(t, handled)
	assert.Equal(t, 1, p.TopLine)

	p.HandleEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone, ""))
	p.HandleEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone, ""))
	assert.Equal(t, 3, p.TopLine, "cannot scroll past the last full page")

	p.HandleEvent(tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone, ""))
	p.HandleEvent(tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone, ""))
	assert.Equal(t, 0, p.TopLine)

	assert.False(t, p.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone, "")), "already at top")
}
