package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion_Contains(t *testing.T) {
	r := Region{X: 2, Y: 3, Width: 4, Height: 2}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false}, // right edge is exclusive
		{5, 5, false}, // bottom edge is exclusive
		{1, 3, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.x, tt.y), "Contains(%d, %d)", tt.x, tt.y)
	}
}

func TestRegion_Empty(t *testing.T) {
	assert.True(t, Region{Width: 0, Height: 4}.Empty())
	assert.True(t, Region{Width: 3, Height: -1}.Empty())
	assert.False(t, Region{Width: 1, Height: 1}.Empty())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 3))
	assert.Equal(t, 3, Clamp(9, 0, 3))
	assert.Equal(t, 2, Clamp(2, 0, 3))
	assert.Equal(t, 0, Clamp(4, 0, 0))
}
