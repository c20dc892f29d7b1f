package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		symbol  byte
		wantErr error
	}{
		{"origin", 0, 0, Barrier, nil},
		{"space", 5, 7, Space, nil},
		{"input", 0, 3, Input, nil},
		{"negative x", -1, 0, Barrier, ErrNegativeCoord},
		{"negative y", 0, -2, Barrier, ErrNegativeCoord},
		{"reserved symbol", 1, 1, ErrorSymbol, ErrInvalidSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPoint(tt.x, tt.y, tt.symbol)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.x, p.X())
			assert.Equal(t, tt.y, p.Y())
			assert.Equal(t, tt.symbol, p.Symbol())
			assert.False(t, p.Visited())
		})
	}
}

func TestNilPointSentinels(t *testing.T) {
	var p *Point
	assert.Equal(t, ErrorCoord, p.X())
	assert.Equal(t, ErrorCoord, p.Y())
	assert.Equal(t, ErrorSymbol, p.Symbol())
	assert.False(t, p.Visited())

	assert.ErrorIs(t, p.SetX(1), ErrNilPoint)
	assert.ErrorIs(t, p.SetY(1), ErrNilPoint)
	assert.ErrorIs(t, p.SetSymbol('#'), ErrNilPoint)
	assert.ErrorIs(t, p.SetVisited(true), ErrNilPoint)

	c, err := p.Copy()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNilPoint)

	n, err := p.Print(&bytes.Buffer{})
	assert.Equal(t, -1, n)
	assert.ErrorIs(t, err, ErrNilPoint)
}

func TestPointSetters(t *testing.T) {
	p, err := NewPoint(1, 2, '#')
	require.NoError(t, err)

	require.NoError(t, p.SetX(9))
	require.NoError(t, p.SetY(0))
	require.NoError(t, p.SetSymbol(Space))
	require.NoError(t, p.SetVisited(true))
	assert.Equal(t, 9, p.X())
	assert.Equal(t, 0, p.Y())
	assert.Equal(t, Space, p.Symbol())
	assert.True(t, p.Visited())

	assert.ErrorIs(t, p.SetX(-3), ErrNegativeCoord)
	assert.ErrorIs(t, p.SetY(-1), ErrNegativeCoord)
	assert.ErrorIs(t, p.SetSymbol(ErrorSymbol), ErrInvalidSymbol)
	assert.Equal(t, 9, p.X(), "failed setter must not mutate")
	assert.Equal(t, Space, p.Symbol())
}

func TestPointEqual(t *testing.T) {
	a, _ := NewPoint(3, 4, '#')
	b, _ := NewPoint(3, 4, '#')
	c, _ := NewPoint(3, 4, '.')
	d, _ := NewPoint(4, 3, '#')
	var none *Point

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(none))
	assert.False(t, none.Equal(a))
	assert.False(t, none.Equal(none))

	require.NoError(t, b.SetVisited(true))
	assert.True(t, a.Equal(b), "visited flag is not part of equality")
}

func TestPointCopy(t *testing.T) {
	src, _ := NewPoint(2, 5, Output)
	require.NoError(t, src.SetVisited(true))

	dst, err := src.Copy()
	require.NoError(t, err)
	assert.NotSame(t, src, dst)
	assert.True(t, src.Equal(dst))
	assert.True(t, dst.Visited())

	require.NoError(t, dst.SetX(7))
	assert.Equal(t, 2, src.X())
}

func TestPointPrint(t *testing.T) {
	p, _ := NewPoint(3, 4, '#')
	var buf bytes.Buffer
	n, err := p.Print(&buf)
	require.NoError(t, err)
	assert.Equal(t, "[(3, 4): #]", buf.String())
	assert.Equal(t, len("[(3, 4): #]"), n)
	assert.Equal(t, buf.String(), p.String())

	n, err = p.Print(nil)
	assert.Equal(t, -1, n)
	assert.ErrorIs(t, err, ErrNilWriter)
}

func TestPointPrintRawByte(t *testing.T) {
	p, err := NewPoint(0, 0, 0xe9)
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := p.Print(&buf)
	require.NoError(t, err)
	assert.Equal(t, "[(0, 0): \xe9]", buf.String())
	assert.Equal(t, 10, n)
	assert.Equal(t, buf.String(), p.String())
}

func TestEuclideanDistance(t *testing.T) {
	origin, _ := NewPoint(0, 0, Barrier)
	a, _ := NewPoint(3, 4, Barrier)
	b, _ := NewPoint(6, 8, Space)

	d, err := EuclideanDistance(origin, a)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-9)

	ab, err := EuclideanDistance(a, b)
	require.NoError(t, err)
	ba, err := EuclideanDistance(b, a)
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-12)

	self, err := EuclideanDistance(b, b)
	require.NoError(t, err)
	assert.Zero(t, self)

	_, err = EuclideanDistance(nil, a)
	assert.ErrorIs(t, err, ErrNilPoint)
	_, err = EuclideanDistance(a, nil)
	assert.ErrorIs(t, err, ErrNilPoint)
}

func TestCompareByOriginDistance(t *testing.T) {
	far, _ := NewPoint(3, 4, Barrier)
	near, _ := NewPoint(1, 0, Barrier)
	same, _ := NewPoint(5, 0, Space)

	assert.Equal(t, -1, CompareByOriginDistance(far, near), "farther first operand yields -1")
	assert.Equal(t, 1, CompareByOriginDistance(near, far))
	assert.Equal(t, 0, CompareByOriginDistance(far, same))
	assert.Equal(t, 0, CompareByOriginDistance(far, far))
	assert.Equal(t, CmpError, CompareByOriginDistance(nil, far))
	assert.Equal(t, CmpError, CompareByOriginDistance(far, nil))
}
