// Package window implements the top-level windows of the editor. Each window
// owns exactly one widget container.
package window

import (
	"log"

	"github.com/ellery/tabdock/internal/container"
	"github.com/ellery/tabdock/internal/event"
	"github.com/ellery/tabdock/internal/geom"
	"github.com/google/uuid"
	"github.com/micro-editor/tcell/v2"
)

// Window is a bordered, movable frame around a widget container
type Window struct {
	ID     uuid.UUID
	Region geom.Region

	widgets *container.Container
	manager *Manager
	handle  event.Handle
	closed  bool
}

var _ container.Window = (*Window)(nil)

func newWindow(m *Manager) *Window {
	w := &Window{
		ID:      uuid.New(),
		manager: m,
	}
	w.widgets = container.New(m.broker, m, m.pointer)
	w.widgets.SetTitleBarHeight(m.TitleBarHeight)

	// An empty window has nothing to show; close it
	w.handle = w.widgets.OnWidgetClosed.Connect(func(struct{}) {
		if w.widgets.Count() == 0 {
			log.Printf("TABDOCK: Window %s is empty, closing", w.ID)
			m.Close(w)
		}
	})
	return w
}

// Widgets returns the window's container
func (w *Window) Widgets() *container.Container {
	return w.widgets
}

// SetPosition moves the window, keeping it on screen when the screen size is
// known
func (w *Window) SetPosition(x, y int) {
	if sw, sh := w.manager.ScreenSize(); sw > 0 && sh > 0 {
		x = geom.Clamp(x, 0, max(0, sw-w.Region.Width))
		y = geom.Clamp(y, 0, max(0, sh-w.Region.Height))
	}
	w.Region.X = x
	w.Region.Y = y
	w.layout()
}

// SetSize resizes the window, border included
func (w *Window) SetSize(width, height int) {
	w.Region.Width = max(width, 2)
	w.Region.Height = max(height, 2)
	w.layout()
}

// layout gives the container everything inside the border
func (w *Window) layout() {
	w.widgets.SetPosition(w.Region.X+1, w.Region.Y+1)
	w.widgets.SetSize(w.Region.Width-2, w.Region.Height-2)
}

// Contains checks if a point is within the window frame
func (w *Window) Contains(x, y int) bool {
	return w.Region.Contains(x, y)
}

// Closed reports whether the window has been closed
func (w *Window) Closed() bool {
	return w.closed
}

func (w *Window) close() {
	if w.closed {
		return
	}
	w.closed = true
	w.widgets.OnWidgetClosed.Disconnect(w.handle)
	w.widgets.Close()
}

// Draw renders the border and the container
func (w *Window) Draw(screen tcell.Screen, focused bool) {
	r := w.Region
	if r.Empty() {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.Color240).Background(tcell.ColorBlack)
	if focused {
		style = style.Foreground(tcell.Color205)
	}

	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < right; x++ {
		screen.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		screen.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	// clear the body so windows underneath do not show through
	blank := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := r.Y + 1; y < bottom; y++ {
		for x := r.X + 1; x < right; x++ {
			screen.SetContent(x, y, ' ', nil, blank)
		}
	}

	w.widgets.SetFocused(focused)
	w.widgets.Draw(screen)
}
