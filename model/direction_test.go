package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions() {
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Offset()
		ox, oy := d.Opposite().Offset()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
	assert.Equal(t, Stay, Stay.Opposite())
}

func TestParseDirection(t *testing.T) {
	for d := Right; d <= Stay; d++ {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDirection("left")
	require.NoError(t, err)
	assert.Equal(t, Left, got)

	_, err = ParseDirection("north")
	assert.ErrorIs(t, err, ErrDirection)
	assert.False(t, Direction(9).Valid())
	assert.Equal(t, "n/a:9", Direction(9).String())
}
