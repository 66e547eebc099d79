// Package container implements the tabbed region that hosts editor widgets.
// A container keeps three things in step: the ordered widget list, the tab
// strip, and which widget is active (enabled and laid out). Only the UI
// goroutine may call into it.
package container

import (
	"log"

	"github.com/ellery/tabdock/internal/dnd"
	"github.com/ellery/tabdock/internal/event"
	"github.com/ellery/tabdock/internal/geom"
	"github.com/ellery/tabdock/internal/input"
	"github.com/ellery/tabdock/internal/tabstrip"
	"github.com/ellery/tabdock/internal/util"
	"github.com/ellery/tabdock/internal/widget"
	"github.com/micro-editor/tcell/v2"
)

// TitleBarHeight is the default height of the tab strip region
const TitleBarHeight = 13

// Window is a top-level window owning one container
type Window interface {
	Widgets() *Container
	SetPosition(x, y int)
}

// WindowFactory creates top-level windows for tabs dropped on empty space
type WindowFactory interface {
	CreateWindow() Window
}

// Pointer reports where the mouse is
type Pointer interface {
	Position() (int, int)
}

// Container hosts an ordered set of widgets behind a tab strip
type Container struct {
	widgets []widget.Widget
	active  int // -1 when no widget is active

	x, y          int
	width, height int

	titleBarHeight int

	strip   *tabstrip.TabStrip
	broker  *dnd.Broker
	windows WindowFactory
	pointer Pointer

	handles []event.Handle
	closed  bool

	// OnWidgetClosed fires when a widget leaves this container by being
	// closed, dragged off, destroyed elsewhere or moved to another container.
	// Subscribers re-query the container.
	OnWidgetClosed event.Notifier
}

var _ widget.Host = (*Container)(nil)

// New creates an empty container. windows and pointer are used to spawn a
// window when one of this container's tabs is dropped on empty space.
func New(broker *dnd.Broker, windows WindowFactory, pointer Pointer) *Container {
	c := &Container{
		active:         -1,
		titleBarHeight: TitleBarHeight,
		strip:          tabstrip.New(),
		broker:         broker,
		windows:        windows,
		pointer:        pointer,
	}

	c.handles = []event.Handle{
		c.strip.OnTabActivated.Connect(c.tabActivated),
		c.strip.OnTabClosed.Connect(c.tabClosed),
		c.strip.OnTabDraggedOff.Connect(c.tabDraggedOff),
		c.strip.OnTabDraggedOn.Connect(c.tabDraggedOn),
	}
	return c
}

// SetTitleBarHeight changes the height reserved for the tab strip and lays
// the container out again
func (c *Container) SetTitleBarHeight(h int) {
	if h < 0 {
		h = 0
	}
	c.titleBarHeight = h
	c.SetPosition(c.x, c.y)
	c.SetSize(c.width, c.height)
}

// TitleBarHeight returns the height reserved for the tab strip
func (c *Container) TitleBarHeight() int {
	return c.titleBarHeight
}

// TabStrip returns the container's tab strip
func (c *Container) TabStrip() *tabstrip.TabStrip {
	return c.strip
}

// =============================================================================
// Membership
// =============================================================================

// Add appends w as the last tab
func (c *Container) Add(w widget.Widget) {
	c.Insert(len(c.widgets), w)
}

// Insert puts w at tab position idx, clamped into [0, Count()]. Inserting a
// widget that is already hosted here does nothing. The first widget of an
// empty container becomes active; later ones start disabled.
func (c *Container) Insert(idx int, w widget.Widget) {
	if w == nil || c.closed {
		return
	}
	if c.IndexOf(w) >= 0 {
		return
	}

	// A widget lives in one container at a time
	if other, ok := w.Parent().(*Container); ok && other != c {
		other.Remove(w)
		event.Notify(&other.OnWidgetClosed)
	}

	idx = geom.Clamp(idx, 0, len(c.widgets))

	c.strip.InsertTab(idx, w.Name())
	c.widgets = append(c.widgets, nil)
	copy(c.widgets[idx+1:], c.widgets[idx:])
	c.widgets[idx] = w
	w.ChangeParent(c)

	if c.active == -1 {
		c.SetActiveWidget(len(c.widgets) - 1)
		return
	}

	// keep pointing at the same widget
	if idx <= c.active {
		c.active++
		c.strip.SetActiveTab(c.active)
	}
	w.Disable()
}

// Remove detaches w without destroying it. Unknown widgets are ignored. When
// the active widget goes, the new first tab becomes active.
func (c *Container) Remove(w widget.Widget) {
	idx := c.IndexOf(w)
	if idx < 0 {
		return
	}

	copy(c.widgets[idx:], c.widgets[idx+1:])
	c.widgets[len(c.widgets)-1] = nil
	c.widgets = c.widgets[:len(c.widgets)-1]
	c.strip.RemoveTab(idx)
	w.ChangeParent(nil)

	switch {
	case len(c.widgets) == 0:
		c.active = -1
		c.strip.SetActiveTab(-1)
	case idx == c.active:
		// force SetActiveWidget to enable the new first widget even when
		// the index did not change
		c.active = -1
		c.SetActiveWidget(0)
	case idx < c.active:
		c.active--
		c.strip.SetActiveTab(c.active)
	}
}

// SetActiveWidget makes the widget at idx the only enabled one and lays it
// out. Activating the active widget again does nothing.
func (c *Container) SetActiveWidget(idx int) {
	if idx == c.active {
		return
	}
	if idx < 0 || idx >= len(c.widgets) {
		util.Assert(false, "active widget index %d out of range [0, %d)", idx, len(c.widgets))
		return
	}

	c.active = idx
	for i, w := range c.widgets {
		if i != idx {
			w.Disable()
		} else {
			w.Enable()
		}
	}
	c.strip.SetActiveTab(idx)

	c.SetPosition(c.x, c.y)
	c.SetSize(c.width, c.height)
}

// Count returns the number of hosted widgets
func (c *Container) Count() int {
	return len(c.widgets)
}

// Widgets returns the hosted widgets in tab order
func (c *Container) Widgets() []widget.Widget {
	out := make([]widget.Widget, len(c.widgets))
	copy(out, c.widgets)
	return out
}

// WidgetAt returns the widget in tab idx, nil when out of range
func (c *Container) WidgetAt(idx int) widget.Widget {
	if idx < 0 || idx >= len(c.widgets) {
		return nil
	}
	return c.widgets[idx]
}

// IndexOf returns the tab index of w, -1 when not hosted
func (c *Container) IndexOf(w widget.Widget) int {
	for i, cur := range c.widgets {
		if cur == w {
			return i
		}
	}
	return -1
}

// Contains reports whether w is hosted here
func (c *Container) Contains(w widget.Widget) bool {
	return c.IndexOf(w) >= 0
}

// ActiveIndex returns the active tab, -1 when the container is empty
func (c *Container) ActiveIndex() int {
	return c.active
}

// ActiveWidget returns the active widget, nil when the container is empty
func (c *Container) ActiveWidget() widget.Widget {
	return c.WidgetAt(c.active)
}

// =============================================================================
// Layout
// =============================================================================

// SetSize resizes the tab strip and hands the rest to the active widget
func (c *Container) SetSize(width, height int) {
	c.strip.SetSize(width, c.titleBarHeight)

	if w := c.ActiveWidget(); w != nil {
		contentHeight := height - c.titleBarHeight
		if contentHeight < 0 {
			contentHeight = 0
		}
		w.SetSize(width, contentHeight)
	}

	c.width = width
	c.height = height
}

// SetPosition moves the tab strip to (x, y) and the active widget below it
func (c *Container) SetPosition(x, y int) {
	c.strip.SetPosition(x, y)

	if w := c.ActiveWidget(); w != nil {
		w.SetPosition(x, y+c.titleBarHeight)
	}

	c.x = x
	c.y = y
}

// Position returns the top-left corner of the container
func (c *Container) Position() (int, int) {
	return c.x, c.y
}

// Size returns the container's width and height, title bar included
func (c *Container) Size() (int, int) {
	return c.width, c.height
}

// Region returns the container's on-screen area
func (c *Container) Region() geom.Region {
	return geom.Region{X: c.x, Y: c.y, Width: c.width, Height: c.height}
}

// SetFocused highlights the tab strip of the focused window
func (c *Container) SetFocused(focused bool) {
	c.strip.Focused = focused
}

// =============================================================================
// Tab strip reactions
// =============================================================================

func (c *Container) tabActivated(idx int) {
	c.SetActiveWidget(idx)
}

func (c *Container) tabClosed(idx int) {
	w := c.WidgetAt(idx)
	if w == nil {
		util.Assert(false, "closed tab %d has no widget", idx)
		return
	}

	c.Remove(w)
	widget.Destroy(w)

	event.Notify(&c.OnWidgetClosed)
}

func (c *Container) tabDraggedOff(idx int) {
	w := c.WidgetAt(idx)
	if w == nil {
		util.Assert(false, "dragged tab %d has no widget", idx)
		return
	}
	if c.broker.IsDragInProgress() {
		log.Printf("TABDOCK: Ignoring drag of %q, another drag is in flight", w.Name())
		return
	}

	c.Remove(w)
	if err := c.broker.StartDrag(w.Name(), dnd.TypeEditorWidget, w, c.tabDropped); err != nil {
		log.Printf("TABDOCK: Could not start drag of %q: %v", w.Name(), err)
		c.Insert(idx, w)
		return
	}

	// The tab left this container whatever happens to the drag
	event.Notify(&c.OnWidgetClosed)
}

func (c *Container) tabDraggedOn(idx int) {
	util.Assert(c.broker.IsDragInProgress(), "tab drag and drop reported but no drag in progress")
	util.Assert(c.broker.DragTypeID() == dnd.TypeEditorWidget,
		"tab drag and drop reported but drag type %s is invalid", c.broker.DragTypeID())

	w, ok := c.broker.DragData().(widget.Widget)
	if !ok {
		log.Printf("TABDOCK: Dropped payload is not a widget, ignoring")
		return
	}

	c.Insert(idx, w)
}

// tabDropped runs when a drag started by this container ends. A widget that
// nobody accepted gets a window of its own at the pointer.
func (c *Container) tabDropped(processed bool) {
	if processed || c.broker.DragTypeID() != dnd.TypeEditorWidget {
		return
	}

	w, ok := c.broker.DragData().(widget.Widget)
	if !ok {
		return
	}

	if c.windows == nil {
		log.Printf("TABDOCK: No window factory, destroying dropped widget %q", w.Name())
		widget.Destroy(w)
		return
	}

	win := c.windows.CreateWindow()
	win.Widgets().Add(w)

	var x, y int
	if c.pointer != nil {
		x, y = c.pointer.Position()
	}
	win.SetPosition(x, y)
	log.Printf("TABDOCK: Spawned window for %q at (%d, %d)", w.Name(), x, y)
}

// NotifyWidgetDestroyed is called by widget.Destroy when a hosted widget is
// torn down by someone other than this container
func (c *Container) NotifyWidgetDestroyed(w widget.Widget) {
	if c.IndexOf(w) < 0 {
		return
	}

	c.Remove(w)
	event.Notify(&c.OnWidgetClosed)
}

// =============================================================================
// Input and drawing
// =============================================================================

// CloseActive closes the active tab as if its close mark was clicked
func (c *Container) CloseActive() {
	c.strip.Close(c.active)
}

// ActivateNext moves to the next tab, wrapping around
func (c *Container) ActivateNext() {
	if n := len(c.widgets); n > 1 {
		c.strip.Activate((c.active + 1) % n)
	}
}

// ActivatePrev moves to the previous tab, wrapping around
func (c *Container) ActivatePrev() {
	if n := len(c.widgets); n > 1 {
		c.strip.Activate((c.active - 1 + n) % n)
	}
}

// HandleMouse gives the tab strip the first look at a pointer transition;
// whatever it does not want goes to the active widget
func (c *Container) HandleMouse(ev *tcell.EventMouse, tr input.Transition) bool {
	x, y := ev.Position()
	if c.strip.HandleMouse(x, y, tr) {
		return true
	}
	if w := c.ActiveWidget(); w != nil {
		return w.HandleEvent(ev)
	}
	return false
}

// HandleEvent forwards non-mouse events to the active widget
func (c *Container) HandleEvent(ev tcell.Event) bool {
	if w := c.ActiveWidget(); w != nil {
		return w.HandleEvent(ev)
	}
	return false
}

// Draw renders the tab strip and the active widget
func (c *Container) Draw(screen tcell.Screen) {
	c.strip.Render(screen)
	if w := c.ActiveWidget(); w != nil {
		w.Draw(screen)
	}
}

// =============================================================================
// Teardown
// =============================================================================

// Close destroys every hosted widget and empties the tab strip. The container
// is unusable afterwards.
func (c *Container) Close() {
	if c.closed {
		return
	}
	c.closed = true

	c.strip.OnTabActivated.Disconnect(c.handles[0])
	c.strip.OnTabClosed.Disconnect(c.handles[1])
	c.strip.OnTabDraggedOff.Disconnect(c.handles[2])
	c.strip.OnTabDraggedOn.Disconnect(c.handles[3])

	widgets := c.widgets
	c.widgets = nil
	c.active = -1
	c.strip.Clear()

	for _, w := range widgets {
		w.ChangeParent(nil)
		widget.Destroy(w)
	}
}

// Closed reports whether Close has been called
func (c *Container) Closed() bool {
	return c.closed
}
