// Package tabstrip implements the tab header row of a widget container. It
// only knows about labels and indices; the container decides what an index
// means.
package tabstrip

import (
	"github.com/ellery/tabdock/internal/event"
	"github.com/ellery/tabdock/internal/geom"
	"github.com/ellery/tabdock/internal/input"
	"github.com/mattn/go-runewidth"
	"github.com/micro-editor/tcell/v2"
)

const closeMark = '×'

// TabStrip renders the tab headers and reports index-based events
type TabStrip struct {
	Region  geom.Region
	Focused bool // Is the owning window focused

	labels []string
	active int

	// tab index armed by a press, -1 when none
	pressed int

	OnTabActivated  event.Signal[int]
	OnTabClosed     event.Signal[int]
	OnTabDraggedOff event.Signal[int]
	OnTabDraggedOn  event.Signal[int]
}

// span is the horizontal extent of one tab header
type span struct {
	start  int // first cell
	end    int // one past the last cell
	closeX int // cell holding the close mark
}

// New creates an empty tab strip
func New() *TabStrip {
	return &TabStrip{active: -1, pressed: -1}
}

// InsertTab adds a label at idx, clamped into [0, TabCount()]
func (t *TabStrip) InsertTab(idx int, label string) {
	idx = geom.Clamp(idx, 0, len(t.labels))
	t.labels = append(t.labels, "")
	copy(t.labels[idx+1:], t.labels[idx:])
	t.labels[idx] = label
}

// RemoveTab drops the label at idx. Out of range indices are ignored.
func (t *TabStrip) RemoveTab(idx int) {
	if idx < 0 || idx >= len(t.labels) {
		return
	}
	t.labels = append(t.labels[:idx], t.labels[idx+1:]...)
	if t.active >= len(t.labels) {
		t.active = len(t.labels) - 1
	}
	t.pressed = -1
}

// Clear removes every tab
func (t *TabStrip) Clear() {
	t.labels = nil
	t.active = -1
	t.pressed = -1
}

// SetActiveTab sets which tab is highlighted, -1 for none
func (t *TabStrip) SetActiveTab(idx int) {
	if idx < -1 || idx >= len(t.labels) {
		idx = -1
	}
	t.active = idx
}

// ActiveTab returns the highlighted tab, -1 for none
func (t *TabStrip) ActiveTab() int {
	return t.active
}

func (t *TabStrip) SetSize(width, height int) {
	t.Region.Width = width
	t.Region.Height = height
}

func (t *TabStrip) SetPosition(x, y int) {
	t.Region.X = x
	t.Region.Y = y
}

// TabCount returns the number of tabs
func (t *TabStrip) TabCount() int {
	return len(t.labels)
}

// Label returns the label of tab idx
func (t *TabStrip) Label(idx int) string {
	if idx < 0 || idx >= len(t.labels) {
		return ""
	}
	return t.labels[idx]
}

// Labels returns a copy of all labels in tab order
func (t *TabStrip) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// tabText builds the header text: " name × "
func tabText(label string) string {
	return " " + label + " " + string(closeMark) + " "
}

func (t *TabStrip) spans() []span {
	spans := make([]span, len(t.labels))
	x := t.Region.X + 1
	for i, label := range t.labels {
		w := runewidth.StringWidth(tabText(label))
		spans[i] = span{
			start:  x,
			end:    x + w,
			closeX: x + w - 1 - runewidth.RuneWidth(closeMark),
		}
		x += w + 1 // one cell gap between tabs
	}
	return spans
}

// TabAt returns the tab under (x, y), -1 when there is none
func (t *TabStrip) TabAt(x, y int) int {
	if !t.Region.Contains(x, y) {
		return -1
	}
	for i, s := range t.spans() {
		if x >= s.start && x < s.end {
			return i
		}
	}
	return -1
}

// IsCloseButton reports whether (x, y) is on the close mark of tab idx
func (t *TabStrip) IsCloseButton(idx, x, y int) bool {
	if idx < 0 || idx >= len(t.labels) || y != t.Region.Y {
		return false
	}
	return x == t.spans()[idx].closeX
}

// InsertionIndexAt returns where a tab dropped at column x would go: before
// the first tab whose midpoint lies right of x, or at the end.
func (t *TabStrip) InsertionIndexAt(x int) int {
	for i, s := range t.spans() {
		if x < s.start+(s.end-s.start)/2 {
			return i
		}
	}
	return len(t.labels)
}

// Activate asks for tab idx to become active
func (t *TabStrip) Activate(idx int) {
	if idx < 0 || idx >= len(t.labels) {
		return
	}
	t.OnTabActivated.Emit(idx)
}

// Close asks for tab idx to be closed
func (t *TabStrip) Close(idx int) {
	if idx < 0 || idx >= len(t.labels) {
		return
	}
	t.OnTabClosed.Emit(idx)
}

// AcceptDrop reports a tab dragged onto the strip at column x
func (t *TabStrip) AcceptDrop(x int) {
	t.OnTabDraggedOn.Emit(t.InsertionIndexAt(x))
}

// HandleMouse reacts to a pointer transition at (x, y). A press on a header
// activates it and arms a drag; a press on its close mark closes it; dragging
// an armed tab out of the strip detaches it.
func (t *TabStrip) HandleMouse(x, y int, tr input.Transition) bool {
	switch tr {
	case input.Press:
		if !t.Region.Contains(x, y) {
			return false
		}
		idx := t.TabAt(x, y)
		if idx < 0 {
			return true
		}
		if t.IsCloseButton(idx, x, y) {
			t.pressed = -1
			t.OnTabClosed.Emit(idx)
			return true
		}
		t.pressed = idx
		t.OnTabActivated.Emit(idx)
		return true

	case input.Drag:
		if t.pressed < 0 {
			return false
		}
		if t.Region.Contains(x, y) {
			return true
		}
		idx := t.pressed
		t.pressed = -1
		t.OnTabDraggedOff.Emit(idx)
		return true

	case input.Release:
		armed := t.pressed >= 0
		t.pressed = -1
		return armed
	}
	return false
}

// Render draws the headers on the first row of the strip and a separator on
// the second row when there is room for one
func (t *TabStrip) Render(screen tcell.Screen) {
	if t.Region.Empty() {
		return
	}

	bgStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	right := t.Region.X + t.Region.Width
	for y := t.Region.Y; y < t.Region.Y+t.Region.Height; y++ {
		for x := t.Region.X; x < right; x++ {
			screen.SetContent(x, y, ' ', nil, bgStyle)
		}
	}

	activeStyle := tcell.StyleDefault.Background(tcell.Color240).Foreground(tcell.ColorWhite)
	if t.Focused {
		activeStyle = tcell.StyleDefault.
			Background(tcell.Color205). // Hot pink background
			Foreground(tcell.ColorBlack)
	}
	inactiveStyle := tcell.StyleDefault.Background(tcell.Color236).Foreground(tcell.Color250)

	for i, s := range t.spans() {
		style := inactiveStyle
		if i == t.active {
			style = activeStyle
		}
		x := s.start
		for _, r := range tabText(t.labels[i]) {
			w := runewidth.RuneWidth(r)
			if x+w > right {
				break
			}
			screen.SetContent(x, t.Region.Y, r, nil, style)
			x += w
		}
	}

	if t.Region.Height < 2 {
		return
	}
	separatorStyle := tcell.StyleDefault.
		Foreground(tcell.Color243). // Neutral gray
		Background(tcell.ColorBlack)
	for x := t.Region.X; x < right; x++ {
		screen.SetContent(x, t.Region.Y+1, '─', nil, separatorStyle)
	}
}
