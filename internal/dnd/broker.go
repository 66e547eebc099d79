// Package dnd coordinates drag and drop between UI components. There is at
// most one drag in flight at any time.
package dnd

import (
	"errors"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/micro-editor/tcell/v2"
)

// TypeID tags what kind of payload a drag carries
type TypeID uint32

const (
	// TypeNone means no drag is in progress
	TypeNone TypeID = iota
	// TypeEditorWidget payloads are widget.Widget values
	TypeEditorWidget
)

func (t TypeID) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeEditorWidget:
		return "editor-widget"
	}
	return "unknown"
}

// ErrDragInProgress is returned by StartDrag when another drag has not ended
var ErrDragInProgress = errors.New("a drag is already in progress")

// CompleteFunc is called when a drag ends. processed is true when some drop
// target accepted the payload.
type CompleteFunc func(processed bool)

// Broker tracks the payload of the current drag and who to tell when it ends.
// It is created once by the application and handed to everything that starts
// or accepts drags. Only the UI goroutine touches it.
type Broker struct {
	dragging   bool
	typeID     TypeID
	data       interface{}
	hint       string
	onComplete CompleteFunc

	// HintStyle is used to draw the hint label under the pointer
	HintStyle tcell.Style
}

// NewBroker creates an idle broker
func NewBroker() *Broker {
	return &Broker{
		HintStyle: tcell.StyleDefault.
			Background(tcell.Color205).
			Foreground(tcell.ColorBlack),
	}
}

// StartDrag begins a drag carrying data tagged with typeID. hint is a short
// label shown under the pointer while dragging.
func (b *Broker) StartDrag(hint string, typeID TypeID, data interface{}, onComplete CompleteFunc) error {
	if b.dragging {
		log.Printf("TABDOCK: Refusing drag of %q, %s drag already in flight", hint, b.typeID)
		return ErrDragInProgress
	}

	b.dragging = true
	b.typeID = typeID
	b.data = data
	b.hint = hint
	b.onComplete = onComplete
	log.Printf("TABDOCK: Drag started: %q (%s)", hint, typeID)
	return nil
}

// IsDragInProgress reports whether a drag has started and not yet ended
func (b *Broker) IsDragInProgress() bool {
	return b.dragging
}

// DragTypeID returns the type of the current payload, TypeNone when idle
func (b *Broker) DragTypeID() TypeID {
	return b.typeID
}

// DragData returns the current payload, nil when idle
func (b *Broker) DragData() interface{} {
	return b.data
}

// Hint returns the label of the current drag
func (b *Broker) Hint() string {
	return b.hint
}

// EndDrag finishes the current drag. The completion callback runs while the
// payload is still readable through DragData; the slot is cleared afterwards.
// Returns false when no drag was in progress.
func (b *Broker) EndDrag(processed bool) bool {
	if !b.dragging {
		return false
	}

	log.Printf("TABDOCK: Drag ended: %q processed=%v", b.hint, processed)
	onComplete := b.onComplete
	if onComplete != nil {
		onComplete(processed)
	}

	b.dragging = false
	b.typeID = TypeNone
	b.data = nil
	b.hint = ""
	b.onComplete = nil
	return true
}

// Cancel ends the drag without any drop target accepting it
func (b *Broker) Cancel() bool {
	return b.EndDrag(false)
}

// Draw renders the hint label with its top-left corner at the pointer
func (b *Broker) Draw(screen tcell.Screen, x, y int) {
	if !b.dragging || b.hint == "" {
		return
	}

	sw, sh := screen.Size()
	if y < 0 || y >= sh {
		return
	}

	label := " " + b.hint + " "
	for _, r := range label {
		w := runewidth.RuneWidth(r)
		if x+w > sw {
			break
		}
		screen.SetContent(x, y, r, nil, b.HintStyle)
		x += w
	}
}
