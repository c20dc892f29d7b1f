package stack

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/pointmap/model"
)

func TestStackLIFO(t *testing.T) {
	s := New[int]()
	assert.True(t, s.IsEmpty())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Size())

	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Size(), "Top does not remove")

	for _, want := range []int{3, 2, 1} {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, s.IsEmpty())

	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = s.Top()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestStackPrint(t *testing.T) {
	s := New[string]()
	s.Push("bottom")
	s.Push("top")

	var buf bytes.Buffer
	n, err := s.Print(&buf, func(w io.Writer, v string) (int, error) {
		return fmt.Fprint(w, v)
	})
	require.NoError(t, err)
	assert.Equal(t, "top\nbottom\n", buf.String())
	assert.Equal(t, buf.Len(), n)
}

func TestSortByKey(t *testing.T) {
	s := New[int]()
	for _, v := range []int{4, 1, 3, 5, 2, 3} {
		s.Push(v)
	}
	sorted := Sort(s, ByKey(func(v int) int { return v }))
	assert.True(t, s.IsEmpty(), "input is drained")

	got := make([]int, 0, sorted.Size())
	for !sorted.IsEmpty() {
		v, _ := sorted.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 4, 3, 3, 2, 1}, got)
}

func TestSortPointsByOriginDistance(t *testing.T) {
	s := New[*model.Point]()
	for _, c := range [][2]int{{3, 4}, {0, 1}, {6, 8}, {2, 2}} {
		p, err := model.NewPoint(c[0], c[1], model.Barrier)
		require.NoError(t, err)
		s.Push(p)
	}

	sorted := Sort(s, model.CompareByOriginDistance)

	var buf bytes.Buffer
	_, err := sorted.Print(&buf, func(w io.Writer, p *model.Point) (int, error) {
		return p.Print(w)
	})
	require.NoError(t, err)
	assert.Equal(t, "[(0, 1): +]\n[(2, 2): +]\n[(3, 4): +]\n[(6, 8): +]\n", buf.String(),
		"the inverted comparator puts the nearest point on top")
}
