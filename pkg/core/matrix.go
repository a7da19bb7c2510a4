package core

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrDimMismatch is returned (or panicked with, inside kernels) whenever row or
// column counts disagree.
var ErrDimMismatch = errors.New("dimension mismatch")

// FeatureMatrix is a read-only n×d design matrix. Rows are examples.
type FeatureMatrix interface {
	Dims() (r, c int)
	// RowDot returns x_i · w. len(w) must equal the column count.
	RowDot(i int, w []float64) float64
	// AddScaledRow performs dst += alpha * x_i.
	AddScaledRow(dst []float64, alpha float64, i int)
	// Rows returns a new matrix holding the given rows in order.
	Rows(idx []int) FeatureMatrix
}

// Matrix is a dense row-major matrix.
type Matrix struct {
	R, C int
	Data []float64
}

var (
	_ FeatureMatrix = (*Matrix)(nil)
	_ mat.Matrix    = (*Matrix)(nil)
)

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromSlice creates a Matrix from a nested slice (copies the data).
// Ragged input is rejected.
func FromSlice(a [][]float64) (*Matrix, error) {
	r := len(a)
	if r == 0 {
		return &Matrix{}, nil
	}

	c := len(a[0])
	m := NewMatrix(r, c)
	for i, row := range a {
		if len(row) != c {
			return nil, ErrDimMismatch
		}
		copy(m.Data[i*c:(i+1)*c], row)
	}
	return m, nil
}

// Dims returns the row and column counts.
func (m *Matrix) Dims() (r, c int) { return m.R, m.C }

// At returns element (i, j)
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.C+j] }

// Set sets element (i, j)
func (m *Matrix) Set(i, j int, v float64) { m.Data[i*m.C+j] = v }

// T returns the implicit transpose, for use with gonum routines.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Row returns row i without copying.
func (m *Matrix) Row(i int) []float64 { return m.Data[i*m.C : (i+1)*m.C] }

func (m *Matrix) RowDot(i int, w []float64) float64 {
	if len(w) != m.C {
		panic(ErrDimMismatch)
	}
	return floats.Dot(m.Row(i), w)
}

func (m *Matrix) AddScaledRow(dst []float64, alpha float64, i int) {
	if len(dst) != m.C {
		panic(ErrDimMismatch)
	}
	floats.AddScaled(dst, alpha, m.Row(i))
}

func (m *Matrix) Rows(idx []int) FeatureMatrix {
	out := NewMatrix(len(idx), m.C)
	for k, i := range idx {
		copy(out.Row(k), m.Row(i))
	}
	return out
}
