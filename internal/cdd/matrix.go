package cdd

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
)

// Sense is the optimization direction of a linear program.
type Sense uint8

const (
	Minimize Sense = iota
	Maximize
)

// Status is the outcome of a linear program.
type Status uint8

const (
	StatusUndecided Status = iota
	StatusOptimal
	StatusInconsistent
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInconsistent:
		return "inconsistent"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "undecided"
	}
}

// Matrix is a constraint system over n free rational variables. Rows follow
// the package conventions; the linear bitset marks the equality rows. The
// objective row (c0, c1, …, cn) evaluates as c0 + c·x.
type Matrix struct {
	cols int // 1 + n
	rows [][]*big.Rat
	lin  *bitset.BitSet

	objSense Sense
	obj      []*big.Rat
}

// NewMatrix returns an empty constraint system with the given number of
// columns (constant column included) and a zero minimization objective.
func NewMatrix(cols int) *Matrix {
	if cols < 1 {
		panic("cdd: matrix needs at least the constant column")
	}
	obj := make([]*big.Rat, cols)
	for i := range obj {
		obj[i] = new(big.Rat)
	}
	return &Matrix{cols: cols, lin: bitset.New(16), obj: obj}
}

// Cols returns the column count, constant column included.
func (m *Matrix) Cols() int { return m.cols }

// Rows returns the number of constraint rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// AppendRow adds a constraint row. The slice is retained; callers must not
// mutate it afterwards.
func (m *Matrix) AppendRow(row []*big.Rat, linear bool) {
	if len(row) != m.cols {
		panic("cdd: row width mismatch")
	}
	if linear {
		m.lin.Set(uint(len(m.rows)))
	}
	m.rows = append(m.rows, row)
}

// AppendRows adds several constraint rows with the same linearity.
func (m *Matrix) AppendRows(rows [][]*big.Rat, linear bool) {
	for _, row := range rows {
		m.AppendRow(row, linear)
	}
}

// SetObjective installs the objective row and the optimization sense.
func (m *Matrix) SetObjective(obj []*big.Rat, sense Sense) {
	if len(obj) != m.cols {
		panic("cdd: objective width mismatch")
	}
	m.obj = obj
	m.objSense = sense
}

// Row returns the i-th constraint row and whether it is linear.
func (m *Matrix) Row(i int) ([]*big.Rat, bool) {
	return m.rows[i], m.lin.Test(uint(i))
}

// ZeroRow returns a fresh all-zero row of matrix width.
func (m *Matrix) ZeroRow() []*big.Rat {
	row := make([]*big.Rat, m.cols)
	for i := range row {
		row[i] = new(big.Rat)
	}
	return row
}
