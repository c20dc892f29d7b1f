package model

import "fmt"

func (m *Map) Rows() int {
	if m == nil {
		return -1
	}
	return m.rows
}

func (m *Map) Cols() int {
	if m == nil {
		return -1
	}
	return m.cols
}

func (m *Map) Input() *Point {
	if m == nil {
		return nil
	}
	return m.resolve(m.input)
}

func (m *Map) Output() *Point {
	if m == nil {
		return nil
	}
	return m.resolve(m.output)
}

func (m *Map) resolve(s slot) *Point {
	if !s.set {
		return nil
	}
	return m.grid[s.row][s.col]
}

// coords reads the coordinates of p, rejecting sentinel values and
// anything outside the fixed grid capacity.
func coords(p *Point) (x, y int, err error) {
	if p == nil {
		return 0, 0, ErrNilPoint
	}
	x, y = p.X(), p.Y()
	if x == ErrorCoord || y == ErrorCoord {
		return 0, 0, ErrInvalidPoint
	}
	if x < 0 || y < 0 || x >= MaxCols || y >= MaxRows {
		return 0, 0, fmt.Errorf("(%d, %d): %w", x, y, ErrOutOfRange)
	}
	return x, y, nil
}

// Insert stores p at slot (p.Y(), p.X()) and takes ownership of it. Any
// previous occupant is dropped; if it was the input or output cell, p takes
// over that role. Coordinates are only checked against the grid capacity,
// not against Rows and Cols.
//
// The returned point is the stored one, not a copy. Changing its X or Y
// afterwards leaves it in its old slot with coordinates that no longer
// match; move a point by inserting a new one instead.
func (m *Map) Insert(p *Point) (*Point, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	x, y, err := coords(p)
	if err != nil {
		return nil, err
	}
	m.grid[y][x] = p
	return m.grid[y][x], nil
}

// At returns the point stored at column x, row y.
func (m *Map) At(x, y int) (*Point, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if x < 0 || y < 0 || x >= MaxCols || y >= MaxRows {
		return nil, fmt.Errorf("(%d, %d): %w", x, y, ErrOutOfRange)
	}
	p := m.grid[y][x]
	if p == nil {
		return nil, fmt.Errorf("(%d, %d): %w", x, y, ErrEmptyCell)
	}
	return p, nil
}

// Get looks up the slot at p's coordinates. Only the coordinates of p are
// used; it need not be stored in m. The result is the stored point, with the
// same caveat as Insert.
func (m *Map) Get(p *Point) (*Point, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	x, y, err := coords(p)
	if err != nil {
		return nil, err
	}
	return m.At(x, y)
}

// Neighbor returns the point one step from p in direction d. Steps that
// leave the logical grid, on either side, fail with ErrOutOfRange.
func (m *Map) Neighbor(p *Point, d Direction) (*Point, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if p == nil {
		return nil, ErrNilPoint
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%v: %w", d, ErrDirection)
	}
	x, y, err := coords(p)
	if err != nil {
		return nil, err
	}
	dx, dy := d.Offset()
	x, y = x+dx, y+dy
	if x < 0 || y < 0 || x >= m.cols || y >= m.rows {
		return nil, fmt.Errorf("%v to (%d, %d): %w", d, x, y, ErrOutOfRange)
	}
	return m.At(x, y)
}

// stored returns the slot of p if p is the very point the grid holds there.
func (m *Map) stored(p *Point) (slot, error) {
	if m == nil {
		return slot{}, ErrNilMap
	}
	x, y, err := coords(p)
	if err != nil {
		return slot{}, err
	}
	if m.grid[y][x] != p {
		return slot{}, fmt.Errorf("%v: %w", p, ErrNotInGrid)
	}
	return slot{row: y, col: x, set: true}, nil
}

// SetInput marks the stored point p as the input cell.
func (m *Map) SetInput(p *Point) error {
	s, err := m.stored(p)
	if err != nil {
		return err
	}
	m.input = s
	return nil
}

// SetOutput marks the stored point p as the output cell.
func (m *Map) SetOutput(p *Point) error {
	s, err := m.stored(p)
	if err != nil {
		return err
	}
	m.output = s
	return nil
}

// Equal reports whether both maps have the same size, point-equal cells
// inside Rows x Cols, and input and output cells that are the same point
// objects. Maps built independently therefore differ once either has an
// input or output cell. Empty cells never compare equal.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return false
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if !m.grid[i][j].Equal(o.grid[i][j]) {
				return false
			}
		}
	}
	return m.Input() == o.Input() && m.Output() == o.Output()
}
