// Package model holds the grid types: Point, a labeled cell, and Map, a
// bounded grid of points with designated input and output cells.
//
// Two failure conventions live side by side. Constructors and mutators
// return an error. Pure accessors never fail; they report an out-of-domain
// value instead (ErrorCoord, ErrorSymbol, CmpError, -1 for Rows and Cols)
// when asked about a missing point or map.
//
// Maps are read from and written to a line-oriented text format, see
// ReadMap and Map.Print.
package model
