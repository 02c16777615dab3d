package gf2

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Matrix is an immutable square array of elements of GF(2). It has
// just enough methods to support Berlekamp factorization.
type Matrix struct {
	size int
	// rows[i] holds row i; bit j is the element at column j.
	rows []*bitset.BitSet
}

func checkSize(size int) {
	if size <= 0 {
		panic("invalid matrix size")
	}
}

// NewZeroMatrix returns a size x size matrix with every element being
// zero.
func NewZeroMatrix(size int) Matrix {
	checkSize(size)
	rows := make([]*bitset.BitSet, size)
	for i := range rows {
		rows[i] = bitset.New(uint(size))
	}
	return Matrix{size, rows}
}

// NewMatrixFromFunction returns a size x size matrix with elements
// filled in from the given function, which is passed the row index
// and the column index, and shouldn't rely on any particular call
// ordering. Only the low bit of each returned element is used.
func NewMatrixFromFunction(size int, fn func(int, int) byte) Matrix {
	m := NewZeroMatrix(size)
	for i, row := range m.rows {
		for j := 0; j < size; j++ {
			if fn(i, j)&1 != 0 {
				row.Set(uint(j))
			}
		}
	}
	return m
}

// NewMatrixFromRows returns a matrix whose ith row is rows[i]. There
// must be as many rows as each row has elements.
func NewMatrixFromRows(rows [][]byte) Matrix {
	for _, row := range rows {
		if len(row) != len(rows) {
			panic("matrix is not square")
		}
	}
	return NewMatrixFromFunction(len(rows), func(i, j int) byte {
		return rows[i][j]
	})
}

// NewIdentityMatrix returns a size x size identity matrix.
func NewIdentityMatrix(size int) Matrix {
	m := NewZeroMatrix(size)
	for i, row := range m.rows {
		row.Set(uint(i))
	}
	return m
}

func (m Matrix) checkIndex(i int) {
	if i < 0 || i >= m.size {
		panic("index out of bounds")
	}
}

// Size returns the number of rows (and columns) of m.
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at row index i and column index j.
func (m Matrix) At(i, j int) byte {
	m.checkIndex(i)
	m.checkIndex(j)
	if m.rows[i].Test(uint(j)) {
		return 1
	}
	return 0
}

// Row returns a copy of the row at index i.
func (m Matrix) Row(i int) []byte {
	m.checkIndex(i)
	row := make([]byte, m.size)
	for j := range row {
		if m.rows[i].Test(uint(j)) {
			row[j] = 1
		}
	}
	return row
}

// Plus returns the sum of m and n, which must have the same size.
func (m Matrix) Plus(n Matrix) Matrix {
	if m.size != n.size {
		panic("mismatched dimensions")
	}
	sum := m.clone()
	for i, row := range sum.rows {
		row.InPlaceSymmetricDifference(n.rows[i])
	}
	return sum
}

// Minus returns the difference of m and n, which over GF(2) is the
// same as their sum.
func (m Matrix) Minus(n Matrix) Matrix {
	return m.Plus(n)
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	return NewMatrixFromFunction(m.size, func(i, j int) byte {
		return m.At(j, i)
	})
}

// Equal returns whether m and n have the same size and elements.
func (m Matrix) Equal(n Matrix) bool {
	if m.size != n.size {
		return false
	}
	for i, row := range m.rows {
		if !row.Equal(n.rows[i]) {
			return false
		}
	}
	return true
}

// String returns m one row per line, with elements separated by
// spaces.
func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('0' + m.At(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Matrix) clone() Matrix {
	rows := make([]*bitset.BitSet, m.size)
	for i, row := range m.rows {
		rows[i] = row.Clone()
	}
	return Matrix{m.size, rows}
}

// The mutating functions below must not be called except on local
// temporary matrices.

func (m Matrix) swapRows(i, j int) {
	m.checkIndex(i)
	m.checkIndex(j)
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
}

// addRow adds row src to row dest.
func (m Matrix) addRow(dest, src int) {
	m.checkIndex(dest)
	m.checkIndex(src)
	m.rows[dest].InPlaceSymmetricDifference(m.rows[src])
}

// rowReduce converts m to reduced row echelon form in place, and
// returns the column index of the pivot of each nonzero row, in row
// order.
func (m Matrix) rowReduce() []int {
	var pivotColumns []int
	for j := 0; j < m.size; j++ {
		r := len(pivotColumns)
		// Find the first row at or below r with a nonzero jth
		// column.
		pivot := r
		for pivot < m.size && !m.rows[pivot].Test(uint(j)) {
			pivot++
		}
		if pivot == m.size {
			continue
		}
		m.swapRows(r, pivot)

		// Zero out the jth column in every other row.
		for i := 0; i < m.size; i++ {
			if i != r && m.rows[i].Test(uint(j)) {
				m.addRow(i, r)
			}
		}
		pivotColumns = append(pivotColumns, j)
	}
	return pivotColumns
}

// NullSpace returns a basis of the null space of m, i.e. of the
// vectors v with m*v = 0. There is one basis vector for each column
// of the reduced row echelon form of m without a pivot, in increasing
// order of that column; the basis vector for column k has a 1 at k
// and a 0 at every other non-pivot column.
func (m Matrix) NullSpace() [][]byte {
	a := m.clone()
	pivotColumns := a.rowReduce()

	isPivot := make([]bool, m.size)
	for _, j := range pivotColumns {
		isPivot[j] = true
	}

	var basis [][]byte
	for k := 0; k < m.size; k++ {
		if isPivot[k] {
			continue
		}
		v := make([]byte, m.size)
		v[k] = 1
		for i, j := range pivotColumns {
			v[j] = a.At(i, k)
		}
		basis = append(basis, v)
	}
	return basis
}

// Rank returns the rank of m.
func (m Matrix) Rank() int {
	return len(m.clone().rowReduce())
}
