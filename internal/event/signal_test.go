package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_EmitInConnectionOrder(t *testing.T) {
	var s Signal[int]
	var got []string

	s.Connect(func(i int) { got = append(got, "a") })
	s.Connect(func(i int) { got = append(got, "b") })
	s.Emit(1)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, s.Len())
}

func TestSignal_Disconnect(t *testing.T) {
	var s Signal[int]
	calls := 0

	h := s.Connect(func(int) { calls++ })
	s.Disconnect(h)
	s.Emit(5)

	assert.Equal(t, 0, calls)
	assert.True(t, s.Empty())

	// Unknown handle is harmless
	s.Disconnect(h)
}

func TestSignal_DisconnectDuringEmit(t *testing.T) {
	var s Signal[int]
	calls := 0

	var h Handle
	h = s.Connect(func(int) {
		calls++
		s.Disconnect(h)
	})
	s.Connect(func(int) { calls++ })

	s.Emit(0)
	assert.Equal(t, 2, calls, "both handlers run during the emit that disconnects one")

	s.Emit(0)
	assert.Equal(t, 3, calls)
}

func TestNotify_NoSubscribers(t *testing.T) {
	var n Notifier
	assert.NotPanics(t, func() { Notify(&n) })
}
