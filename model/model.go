package model

const (
	MaxRows = 64
	MaxCols = 64
)

// slot addresses a grid cell by row and column. The zero value is unset.
type slot struct {
	row, col int
	set      bool
}

// Map is a bounded grid of points indexed by (row, column). It owns every
// point stored in its grid; the input and output cells are kept as slot
// references so they always resolve to whatever the grid holds there.
// A Map is not safe for concurrent use.
type Map struct {
	rows, cols int
	grid       [MaxRows][MaxCols]*Point
	input      slot
	output     slot
}

// NewMap returns an empty map of the given size.
func NewMap(rows, cols int) (*Map, error) {
	if rows < 0 || rows >= MaxRows || cols < 0 || cols >= MaxCols {
		return nil, ErrDimensions
	}
	return &Map{rows: rows, cols: cols}, nil
}
