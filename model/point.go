package model

import (
	"fmt"
	"io"
	"math"
)

const (
	// ErrorCoord is what X and Y report for a missing point.
	ErrorCoord = math.MaxInt
	// ErrorSymbol is what Symbol reports for a missing point. No point may carry it.
	ErrorSymbol byte = 'E'
	// CmpError is what CompareByOriginDistance reports when it cannot compare.
	CmpError = math.MinInt

	Input   byte = 'i'
	Output  byte = 'o'
	Barrier byte = '+'
	Space   byte = '.'
)

// Point is a labeled cell. A nil *Point is a valid "absent" point:
// accessors return the sentinels above and mutators fail.
type Point struct {
	x, y    int
	symbol  byte
	visited bool
}

// NewPoint validates every field before anything is handed out.
func NewPoint(x, y int, symbol byte) (*Point, error) {
	p := &Point{}
	if err := p.SetX(x); err != nil {
		return nil, err
	}
	if err := p.SetY(y); err != nil {
		return nil, err
	}
	if err := p.SetSymbol(symbol); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Point) X() int {
	if p == nil {
		return ErrorCoord
	}
	return p.x
}

func (p *Point) Y() int {
	if p == nil {
		return ErrorCoord
	}
	return p.y
}

func (p *Point) Symbol() byte {
	if p == nil {
		return ErrorSymbol
	}
	return p.symbol
}

func (p *Point) Visited() bool {
	return p != nil && p.visited
}

func (p *Point) SetX(x int) error {
	if p == nil {
		return ErrNilPoint
	}
	if x < 0 {
		return fmt.Errorf("x=%d: %w", x, ErrNegativeCoord)
	}
	p.x = x
	return nil
}

func (p *Point) SetY(y int) error {
	if p == nil {
		return ErrNilPoint
	}
	if y < 0 {
		return fmt.Errorf("y=%d: %w", y, ErrNegativeCoord)
	}
	p.y = y
	return nil
}

func (p *Point) SetSymbol(symbol byte) error {
	if p == nil {
		return ErrNilPoint
	}
	if symbol == ErrorSymbol {
		return ErrInvalidSymbol
	}
	p.symbol = symbol
	return nil
}

func (p *Point) SetVisited(visited bool) error {
	if p == nil {
		return ErrNilPoint
	}
	p.visited = visited
	return nil
}

// Equal compares coordinates and symbol. The visited flag is ignored and
// a nil operand on either side never compares equal.
func (p *Point) Equal(q *Point) bool {
	if p == nil || q == nil {
		return false
	}
	return p.x == q.x && p.y == q.y && p.symbol == q.symbol
}

// Copy returns an independent point with the same fields.
func (p *Point) Copy() (*Point, error) {
	if p == nil {
		return nil, ErrNilPoint
	}
	c, err := NewPoint(p.x, p.y, p.symbol)
	if err != nil {
		return nil, err
	}
	c.visited = p.visited
	return c, nil
}

// Print writes the point as "[(x, y): s]" without a line break and returns
// the number of bytes written, or -1 on error. The symbol is written as the
// raw byte, the same as Map.Print does.
func (p *Point) Print(w io.Writer) (int, error) {
	if w == nil {
		return -1, ErrNilWriter
	}
	if p == nil {
		return -1, ErrNilPoint
	}
	n, err := io.WriteString(w, p.String())
	if err != nil {
		return -1, err
	}
	return n, nil
}

func (p *Point) String() string {
	if p == nil {
		return "[nil]"
	}
	return fmt.Sprintf("[(%d, %d): %s]", p.x, p.y, []byte{p.symbol})
}

// EuclideanDistance returns sqrt((x2-x1)^2 + (y2-y1)^2).
func EuclideanDistance(a, b *Point) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilPoint
	}
	if a.X() == ErrorCoord || a.Y() == ErrorCoord || b.X() == ErrorCoord || b.Y() == ErrorCoord {
		return 0, ErrInvalidPoint
	}
	dx := float64(b.X() - a.X())
	dy := float64(b.Y() - a.Y())
	return math.Sqrt(dx*dx + dy*dy), nil
}

// CompareByOriginDistance compares the distances of a and b to (0, 0).
// The sign is inverted with respect to ascending order: it returns -1 when a
// is farther from the origin than b, 1 when a is closer and 0 on a tie.
// CmpError is returned when either point is missing or unusable.
func CompareByOriginDistance(a, b *Point) int {
	if a == nil || b == nil {
		return CmpError
	}
	origin := &Point{symbol: Barrier}
	da, err := EuclideanDistance(a, origin)
	if err != nil {
		return CmpError
	}
	db, err := EuclideanDistance(b, origin)
	if err != nil {
		return CmpError
	}
	switch {
	case da > db:
		return -1
	case da < db:
		return 1
	default:
		return 0
	}
}
