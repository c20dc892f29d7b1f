package model

import "errors"

var (
	// ErrNilPoint is returned when an operation needs a point and got none.
	ErrNilPoint = errors.New("model: point is nil")
	// ErrNilMap is returned when an operation needs a map and got none.
	ErrNilMap = errors.New("model: map is nil")
	// ErrNilWriter is returned by the printers when there is nowhere to write.
	ErrNilWriter = errors.New("model: writer is nil")
	// ErrNegativeCoord rejects coordinates below zero.
	ErrNegativeCoord = errors.New("model: coordinate must be >= 0")
	// ErrInvalidSymbol rejects the reserved ErrorSymbol.
	ErrInvalidSymbol = errors.New("model: symbol is reserved")
	// ErrInvalidPoint means a point reads back sentinel coordinates.
	ErrInvalidPoint = errors.New("model: point has sentinel coordinates")
	// ErrDimensions rejects map sizes outside [0, MaxRows) x [0, MaxCols).
	ErrDimensions = errors.New("model: map dimensions out of range")
	// ErrOutOfRange means a coordinate falls outside the grid.
	ErrOutOfRange = errors.New("model: coordinate out of range")
	// ErrEmptyCell means the addressed slot holds no point.
	ErrEmptyCell = errors.New("model: cell is empty")
	// ErrDirection rejects unknown directions.
	ErrDirection = errors.New("model: unknown direction")
	// ErrNotInGrid means the point is not the one stored at its own slot.
	ErrNotInGrid = errors.New("model: point is not stored in the map")
	// ErrLineBreak rejects cells that the text map format cannot hold.
	ErrLineBreak = errors.New("model: line break symbol in map cell")
	// ErrHeader means the map header could not be parsed.
	ErrHeader = errors.New("model: invalid map header")
)
