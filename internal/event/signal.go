// Package event provides the observer lists used to connect UI components
// without a global event bus.
package event

import (
	"github.com/google/uuid"
)

// Handle identifies one connected handler so it can be disconnected later
type Handle uuid.UUID

type slot[T any] struct {
	handle Handle
	fn     func(T)
}

// Signal is an ordered list of handlers for one kind of event. Handlers run
// synchronously, in connection order, on the goroutine that calls Emit.
// The zero value is ready to use.
type Signal[T any] struct {
	slots []slot[T]
}

// Connect registers fn and returns a handle for Disconnect
func (s *Signal[T]) Connect(fn func(T)) Handle {
	h := Handle(uuid.New())
	s.slots = append(s.slots, slot[T]{handle: h, fn: fn})
	return h
}

// Disconnect removes a handler. Unknown handles are ignored.
func (s *Signal[T]) Disconnect(h Handle) {
	for i, sl := range s.slots {
		if sl.handle == h {
			s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
			return
		}
	}
}

// Empty reports whether nothing is connected
func (s *Signal[T]) Empty() bool {
	return len(s.slots) == 0
}

// Len returns the number of connected handlers
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// Emit calls every handler with v. A handler may connect or disconnect
// handlers while the signal is being emitted; the change applies to the
// next Emit.
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}
	slots := make([]slot[T], len(s.slots))
	copy(slots, s.slots)
	for _, sl := range slots {
		sl.fn(v)
	}
}

// Notifier is a Signal without a payload; subscribers re-query the sender.
type Notifier = Signal[struct{}]

// Notify emits a payload-less signal
func Notify(n *Notifier) {
	n.Emit(struct{}{})
}
