// SPDX-License-Identifier: MIT
// Dense is a concrete, row-major matrix over a ring.Ring, storing elements in a
// flat slice. Zero-sized shapes are valid (a 0×0 determinant is 1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/orlikterao/ring"
)

// Dense is an r×c matrix with entries in the fraction field of Ring().
type Dense[E any] struct {
	r, c int
	rg   ring.Ring[E]
	data []E // length r*c, row-major
}

// NewDense creates an r×c zero matrix over rg.
// Complexity: O(r*c).
func NewDense[E any](rg ring.Ring[E], rows, cols int) (*Dense[E], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}
	data := make([]E, rows*cols)
	for i := range data {
		data[i] = rg.Zero()
	}
	return &Dense[E]{r: rows, c: cols, rg: rg, data: data}, nil
}

// FromRows builds a matrix whose i-th row is rows[i]. Every row must have
// exactly cols entries. Values are copied by reference; rings never mutate them.
func FromRows[E any](rg ring.Ring[E], cols int, rows [][]E) (*Dense[E], error) {
	m, err := NewDense(rg, len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrDimensionMismatch))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Identity returns the n×n identity matrix over rg.
func Identity[E any](rg ring.Ring[E], n int) (*Dense[E], error) {
	m, err := NewDense(rg, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = rg.One()
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[E]) Cols() int { return m.c }

// Ring returns the coefficient ring.
func (m *Dense[E]) Ring() ring.Ring[E] { return m.rg }

func (m *Dense[E]) indexOf(tag string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(tag, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange))
	}
	return row*m.c + col, nil
}

// At returns the entry at (row, col).
func (m *Dense[E]) At(row, col int) (E, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		var zero E
		return zero, err
	}
	return m.data[idx], nil
}

// Set assigns the entry at (row, col).
func (m *Dense[E]) Set(row, col int, v E) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of row i; nil when out of range.
func (m *Dense[E]) Row(i int) []E {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]E, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out
}

// Col returns a copy of column j; nil when out of range.
func (m *Dense[E]) Col(j int) []E {
	if j < 0 || j >= m.c {
		return nil
	}
	out := make([]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}
	return out
}

// Columns returns all columns as fresh slices, left to right.
func (m *Dense[E]) Columns() [][]E {
	out := make([][]E, m.c)
	for j := range out {
		out[j] = m.Col(j)
	}
	return out
}

// Clone returns an independent copy.
func (m *Dense[E]) Clone() *Dense[E] {
	data := make([]E, len(m.data))
	copy(data, m.data)
	return &Dense[E]{r: m.r, c: m.c, rg: m.rg, data: data}
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense[E]) Equal(o *Dense[E]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.rg.Equal(m.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// String renders rows as "[a b c]" lines.
func (m *Dense[E]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.rg.Format(m.data[i*m.c+j]))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
