package picker

import (
	"testing"

	"github.com/ellery/tabdock/internal/dnd"
	"github.com/ellery/tabdock/internal/input"
	"github.com/ellery/tabdock/internal/widget"
	"github.com/ellery/tabdock/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() (*window.Manager, *window.Window, *window.Window) {
	m := window.NewManager(dnd.NewBroker(), &input.Mouse{})
	m.TitleBarHeight = 2

	a := m.NewWindow()
	a.Widgets().Add(widget.NewTextPanel("Explorer"))
	a.Widgets().Add(widget.NewTextPanel("Console"))

	b := m.NewWindow()
	b.Widgets().Add(widget.NewTextPanel("Inspector"))
	return m, a, b
}

func TestCollect_TopWindowFirst(t *testing.T) {
	m, a, b := setup()

	entries := Collect(m)

	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Name: "Inspector", Window: b, Widget: b.Widgets().WidgetAt(0)}, entries[0])
	assert.Equal(t, Entry{Name: "Explorer", Window: a, Widget: a.Widgets().WidgetAt(0)}, entries[1])
	assert.Equal(t, Entry{Name: "Console", Window: a, Widget: a.Widgets().WidgetAt(1)}, entries[2])
}

func TestSearch_Fuzzy(t *testing.T) {
	m, _, _ := setup()

	results := Search("cns", Collect(m), 10)

	require.NotEmpty(t, results)
	assert.Equal(t, "Console", results[0].Name)
	assert.NotEmpty(t, results[0].MatchedIdx)
}

func TestSearch_EmptyQueryAndLimit(t *testing.T) {
	m, _, _ := setup()

	results := Search("", Collect(m), 2)
	require.Len(t, results, 2)
	assert.Equal(t, "Inspector", results[0].Name)

	assert.Empty(t, Search("zzz", Collect(m), 5))
}

func entryNamed(t *testing.T, entries []Entry, name string) Entry {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("no entry named %q", name)
	return Entry{}
}

func TestJump_RaisesAndActivates(t *testing.T) {
	m, a, _ := setup()

	assert.True(t, Jump(m, entryNamed(t, Collect(m), "Console")))

	assert.Same(t, a, m.Top())
	assert.Equal(t, 1, a.Widgets().ActiveIndex())
}

func TestJump_TabMovedAfterCollect(t *testing.T) {
	m, a, _ := setup()
	console := entryNamed(t, Collect(m), "Console")

	// Console slides from tab 1 to tab 2; tab 1 is now Explorer
	a.Widgets().Insert(0, widget.NewTextPanel("Output"))
	require.Equal(t, "Explorer", a.Widgets().ActiveWidget().Name())

	assert.True(t, Jump(m, console))
	assert.Equal(t, "Console", a.Widgets().ActiveWidget().Name())
	assert.Equal(t, 2, a.Widgets().ActiveIndex())
}

func TestJump_FollowsWidgetToAnotherWindow(t *testing.T) {
	m, a, b := setup()
	console := entryNamed(t, Collect(m), "Console")

	b.Widgets().Insert(0, console.Widget)
	require.False(t, a.Widgets().Contains(console.Widget))
	m.Raise(a)

	assert.True(t, Jump(m, console))
	assert.Same(t, b, m.Top())
	assert.Equal(t, "Console", b.Widgets().ActiveWidget().Name())
}

func TestJump_ClosedWidgetIgnored(t *testing.T) {
	m, a, b := setup()
	console := entryNamed(t, Collect(m), "Console")

	a.Widgets().TabStrip().Close(1)

	assert.False(t, Jump(m, console))
	assert.Same(t, b, m.Top())
	assert.Equal(t, "Explorer", a.Widgets().ActiveWidget().Name())
}

func TestJump_ClosedWindowIgnored(t *testing.T) {
	m, a, b := setup()
	console := entryNamed(t, Collect(m), "Console")
	m.Close(a)

	assert.False(t, Jump(m, console))
	assert.Same(t, b, m.Top())
}
