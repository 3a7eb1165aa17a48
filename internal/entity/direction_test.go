package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		dx, dy   int
		expected Direction
	}{
		{0, -1, DirectionUp},
		{0, 1, DirectionDown},
		{-1, 0, DirectionLeft},
		{1, 0, DirectionRight},
		{-1, -1, DirectionUpLeft},
		{1, -1, DirectionUpRight},
		{-1, 1, DirectionDownLeft},
		{1, 1, DirectionDownRight},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			// When: the step is classified
			direction, err := DirectionOf(tt.dx, tt.dy)

			// Then: the compass label matches
			require.NoError(t, err)
			assert.Equal(t, tt.expected, direction)

			// Then: the label maps back to the same step
			offset, ok := direction.Offset()
			require.True(t, ok)
			assert.Equal(t, Offset{DX: tt.dx, DY: tt.dy}, offset)
		})
	}
}

func TestDirectionOf_NotAdjacent(t *testing.T) {
	for _, step := range []Offset{{0, 0}, {2, 0}, {0, -2}, {2, 2}, {-3, 1}} {
		// When: a non-adjacent step is classified
		_, err := DirectionOf(step.DX, step.DY)

		// Then: ErrInvalidDirection is returned
		require.ErrorIs(t, err, ErrInvalidDirection)
	}
}

func TestDirection_OffsetUnknown(t *testing.T) {
	_, ok := Direction("sideways").Offset()
	assert.False(t, ok)
}

func TestColor_Opposite(t *testing.T) {
	assert.Equal(t, ColorBlue, ColorRed.Opposite())
	assert.Equal(t, ColorRed, ColorBlue.Opposite())
	assert.Equal(t, ColorRed, DefaultTurn)
}
