// Package widget defines the tool panels hosted by a widget container.
package widget

import (
	"github.com/ellery/tabdock/internal/geom"
	"github.com/google/uuid"
	"github.com/micro-editor/tcell/v2"
)

// Host is whatever currently lists a widget. A widget points back at its host
// without owning it.
type Host interface {
	NotifyWidgetDestroyed(w Widget)
}

// Widget is a panel that can live in a container tab
type Widget interface {
	ID() uuid.UUID
	Name() string

	// Parent returns the current host, nil when unlisted
	Parent() Host
	ChangeParent(h Host)

	Enable()
	Disable()
	Enabled() bool

	SetSize(width, height int)
	SetPosition(x, y int)
	Region() geom.Region

	Draw(screen tcell.Screen)
	HandleEvent(event tcell.Event) bool

	// Close releases the widget's own resources. Callers use Destroy.
	Close()
}

// Destroy tears a widget down. The current host, if any, is told first so it
// can drop the widget from its tab list.
func Destroy(w Widget) {
	if w == nil {
		return
	}
	if h := w.Parent(); h != nil {
		h.NotifyWidgetDestroyed(w)
	}
	w.Close()
}
