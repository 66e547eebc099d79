package window

import (
	"log"

	"github.com/ellery/tabdock/internal/container"
	"github.com/ellery/tabdock/internal/dnd"
	"github.com/micro-editor/tcell/v2"
)

const (
	DefaultWidth  = 50
	DefaultHeight = 16

	// cascadeStep offsets each new window from the previous one
	cascadeStep = 2
)

// Manager owns every top-level window and their stacking order. It is the
// window factory handed to containers.
type Manager struct {
	broker  *dnd.Broker
	pointer container.Pointer

	// bottom to top
	windows []*Window

	screenW, screenH int

	// Applied to windows created after they change
	TitleBarHeight int
	DefaultWidth   int
	DefaultHeight  int

	// OnEmpty is called when the last window closes
	OnEmpty func()
}

var _ container.WindowFactory = (*Manager)(nil)

// NewManager creates a manager with no windows
func NewManager(broker *dnd.Broker, pointer container.Pointer) *Manager {
	return &Manager{
		broker:         broker,
		pointer:        pointer,
		TitleBarHeight: container.TitleBarHeight,
		DefaultWidth:   DefaultWidth,
		DefaultHeight:  DefaultHeight,
	}
}

// SetScreenSize records the screen size used to keep windows visible
func (m *Manager) SetScreenSize(width, height int) {
	m.screenW, m.screenH = width, height
	for _, w := range m.windows {
		w.SetPosition(w.Region.X, w.Region.Y)
	}
}

// ScreenSize returns the last recorded screen size
func (m *Manager) ScreenSize() (int, int) {
	return m.screenW, m.screenH
}

// CreateWindow implements container.WindowFactory
func (m *Manager) CreateWindow() container.Window {
	return m.NewWindow()
}

// NewWindow creates an empty window on top of the others, cascaded from the
// current top window
func (m *Manager) NewWindow() *Window {
	w := newWindow(m)
	w.SetSize(m.DefaultWidth, m.DefaultHeight)

	x, y := 0, 0
	if top := m.Top(); top != nil {
		x, y = top.Region.X+cascadeStep, top.Region.Y+cascadeStep
	}
	m.windows = append(m.windows, w)
	w.SetPosition(x, y)

	log.Printf("TABDOCK: Created window %s (%d windows)", w.ID, len(m.windows))
	return w
}

// Windows returns all open windows from bottom to top
func (m *Manager) Windows() []*Window {
	out := make([]*Window, len(m.windows))
	copy(out, m.windows)
	return out
}

// Top returns the focused window, nil when there are none
func (m *Manager) Top() *Window {
	if len(m.windows) == 0 {
		return nil
	}
	return m.windows[len(m.windows)-1]
}

func (m *Manager) indexOf(w *Window) int {
	for i, cur := range m.windows {
		if cur == w {
			return i
		}
	}
	return -1
}

// Raise moves w to the top of the stack and gives it focus
func (m *Manager) Raise(w *Window) {
	idx := m.indexOf(w)
	if idx < 0 || idx == len(m.windows)-1 {
		return
	}
	m.windows = append(m.windows[:idx], m.windows[idx+1:]...)
	m.windows = append(m.windows, w)
}

// WindowAt returns the topmost window under (x, y)
func (m *Manager) WindowAt(x, y int) *Window {
	for i := len(m.windows) - 1; i >= 0; i-- {
		if m.windows[i].Contains(x, y) {
			return m.windows[i]
		}
	}
	return nil
}

// StripAt returns the topmost window whose tab strip is under (x, y). A
// window covering the point hides the strips below it.
func (m *Manager) StripAt(x, y int) *Window {
	w := m.WindowAt(x, y)
	if w == nil {
		return nil
	}
	if w.Widgets().TabStrip().Region.Contains(x, y) {
		return w
	}
	return nil
}

// Close closes w and destroys the widgets it still hosts
func (m *Manager) Close(w *Window) {
	idx := m.indexOf(w)
	if idx < 0 {
		return
	}
	m.windows = append(m.windows[:idx], m.windows[idx+1:]...)
	w.close()
	log.Printf("TABDOCK: Closed window %s (%d windows)", w.ID, len(m.windows))

	if len(m.windows) == 0 && m.OnEmpty != nil {
		m.OnEmpty()
	}
}

// CloseAll closes every window, top first
func (m *Manager) CloseAll() {
	onEmpty := m.OnEmpty
	m.OnEmpty = nil
	for len(m.windows) > 0 {
		m.Close(m.windows[len(m.windows)-1])
	}
	m.OnEmpty = onEmpty
}

// Draw renders all windows bottom to top; the top one is drawn focused
func (m *Manager) Draw(screen tcell.Screen) {
	for i, w := range m.windows {
		w.Draw(screen, i == len(m.windows)-1)
	}
}
