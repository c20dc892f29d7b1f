package model

import (
	"fmt"
	"strings"
)

// Direction selects a neighbor relative to a cell. Moving directions are
// laid out so that (d+2)%4 is the opposite one.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
	Stay
)

// Directions lists the four moving directions.
func Directions() []Direction {
	return []Direction{Right, Up, Left, Down}
}

func (d Direction) Valid() bool {
	return d >= Right && d <= Stay
}

func (d Direction) Opposite() Direction {
	if d == Stay || !d.Valid() {
		return d
	}
	return (d + 2) % 4
}

// Offset returns the column and row deltas of one step in d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "RIGHT"
	case Up:
		return "UP"
	case Left:
		return "LEFT"
	case Down:
		return "DOWN"
	case Stay:
		return "STAY"
	default:
		return fmt.Sprintf("n/a:%d", int(d))
	}
}

func ParseDirection(s string) (Direction, error) {
	for d := Right; d <= Stay; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrDirection)
}
