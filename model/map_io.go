package model

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes m in the text map format:
//
//	rows, cols
//	one line of symbols per row
//	(blank line)
//
// It returns the number of bytes written, or -1 on error. Every cell inside
// Rows x Cols must be occupied and hold neither '\n' nor '\r', which ReadMap
// skips.
func (m *Map) Print(w io.Writer) (int, error) {
	if w == nil {
		return -1, ErrNilWriter
	}
	if m == nil {
		return -1, ErrNilMap
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d, %d\n", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			p := m.grid[i][j]
			if p == nil {
				return -1, fmt.Errorf("(%d, %d): %w", j, i, ErrEmptyCell)
			}
			if c := p.Symbol(); c == '\n' || c == '\r' {
				return -1, fmt.Errorf("(%d, %d): %w", j, i, ErrLineBreak)
			}
			buf.WriteByte(p.Symbol())
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	n, err := w.Write(buf.Bytes())
	if err != nil {
		return -1, err
	}
	return n, nil
}

// PrintPoints writes the header followed by every cell rendered with
// Point.Print, row-major, and a final line break.
func (m *Map) PrintPoints(w io.Writer) (int, error) {
	if w == nil {
		return -1, ErrNilWriter
	}
	if m == nil {
		return -1, ErrNilMap
	}
	total, err := fmt.Fprintf(w, "%d, %d\n", m.rows, m.cols)
	if err != nil {
		return -1, err
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			n, err := m.grid[i][j].Print(w)
			if err != nil {
				return -1, fmt.Errorf("(%d, %d): %w", j, i, err)
			}
			total += n
		}
	}
	n, err := io.WriteString(w, "\n")
	if err != nil {
		return -1, err
	}
	return total + n, nil
}

// ReadMap parses a map in the text format. The header holds the row and
// column counts separated by blanks or a comma. Cells follow row-major, one
// byte each; line breaks are skipped without taking up a cell. The Input and
// Output symbols mark the input and output cells.
func ReadMap(r io.Reader) (*Map, error) {
	if r == nil {
		return nil, fmt.Errorf("reader is nil: %w", ErrHeader)
	}
	br := bufio.NewReader(r)
	rows, cols, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	m, err := NewMap(rows, cols)
	if err != nil {
		return nil, err
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c, err := br.ReadByte()
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("cell (%d, %d): %w", x, y, io.ErrUnexpectedEOF)
			}
			if err != nil {
				return nil, err
			}
			if c == '\n' || c == '\r' {
				x--
				continue
			}
			p, err := NewPoint(x, y, c)
			if err != nil {
				return nil, fmt.Errorf("cell (%d, %d): %w", x, y, err)
			}
			stored, err := m.Insert(p)
			if err != nil {
				return nil, err
			}
			switch c {
			case Input:
				err = m.SetInput(stored)
			case Output:
				err = m.SetOutput(stored)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func readHeader(br *bufio.Reader) (rows, cols int, err error) {
	line, err := br.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return 0, 0, fmt.Errorf("%w: %v", ErrHeader, err)
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\r' || r == '\n'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrHeader, strings.TrimSpace(line))
	}
	if rows, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: rows: %v", ErrHeader, err)
	}
	if cols, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: cols: %v", ErrHeader, err)
	}
	return rows, cols, nil
}
