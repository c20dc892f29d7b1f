// Package stack is a small generic last-in-first-out container.
package stack

import (
	"errors"
	"io"
)

var ErrEmpty = errors.New("stack: stack is empty")

// Stack holds values of T; the last pushed value is on top.
type Stack[T any] struct {
	items []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{items: make([]T, 0)}
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmpty
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return v, nil
}

// Top returns the top value without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack[T]) IsEmpty() bool {
	return s == nil || len(s.items) == 0
}

func (s *Stack[T]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Print writes the values from top to bottom, one per line, using print
// for each value. It returns the number of bytes written.
func (s *Stack[T]) Print(w io.Writer, print func(io.Writer, T) (int, error)) (int, error) {
	total := 0
	for i := s.Size() - 1; i >= 0; i-- {
		n, err := print(w, s.items[i])
		if err != nil {
			return total, err
		}
		total += n
		n, err = io.WriteString(w, "\n")
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
