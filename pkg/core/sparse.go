package core

import (
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// CSR is a compressed sparse row matrix backed by sparse.CSR. Column indices
// within a row are stored ascending.
type CSR struct {
	m *sparse.CSR
}

var (
	_ FeatureMatrix = (*CSR)(nil)
	_ mat.Matrix    = (*CSR)(nil)
)

// SparseRow is a single row in coordinate form.
type SparseRow map[int]float64

// NewCSR builds a CSR matrix with c columns from per-row maps of nonzeros.
// Explicit zeros are dropped.
func NewCSR(rows []SparseRow, c int) (*CSR, error) {
	ia := make([]int, 1, len(rows)+1)
	var ja []int
	var data []float64
	for _, row := range rows {
		cols := make([]int, 0, len(row))
		for j, v := range row {
			if j < 0 || j >= c {
				return nil, ErrDimMismatch
			}
			if v != 0 {
				cols = append(cols, j)
			}
		}
		sort.Ints(cols)
		for _, j := range cols {
			ja = append(ja, j)
			data = append(data, row[j])
		}
		ia = append(ia, len(ja))
	}
	return &CSR{m: sparse.NewCSR(len(rows), c, ia, ja, data)}, nil
}

// SparseFrom compresses any gonum matrix.
func SparseFrom(a mat.Matrix) *CSR {
	r, c := a.Dims()
	ia := make([]int, 1, r+1)
	var ja []int
	var data []float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); v != 0 {
				ja = append(ja, j)
				data = append(data, v)
			}
		}
		ia = append(ia, len(ja))
	}
	return &CSR{m: sparse.NewCSR(r, c, ia, ja, data)}
}

func (m *CSR) Dims() (r, c int) { return m.m.Dims() }

func (m *CSR) At(i, j int) float64 { return m.m.At(i, j) }

func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return m.m.NNZ() }

func (m *CSR) RowDot(i int, w []float64) float64 {
	if _, c := m.m.Dims(); len(w) != c {
		panic(ErrDimMismatch)
	}
	var sum float64
	m.m.DoRowNonZero(i, func(_, j int, v float64) {
		sum += v * w[j]
	})
	return sum
}

func (m *CSR) AddScaledRow(dst []float64, alpha float64, i int) {
	if _, c := m.m.Dims(); len(dst) != c {
		panic(ErrDimMismatch)
	}
	m.m.DoRowNonZero(i, func(_, j int, v float64) {
		dst[j] += alpha * v
	})
}

func (m *CSR) Rows(idx []int) FeatureMatrix {
	_, c := m.m.Dims()
	ia := make([]int, 1, len(idx)+1)
	var ja []int
	var data []float64
	for _, i := range idx {
		m.m.DoRowNonZero(i, func(_, j int, v float64) {
			ja = append(ja, j)
			data = append(data, v)
		})
		ia = append(ia, len(ja))
	}
	return &CSR{m: sparse.NewCSR(len(idx), c, ia, ja, data)}
}

// ToDense expands the matrix.
func (m *CSR) ToDense() *Matrix {
	r, c := m.m.Dims()
	d := NewMatrix(r, c)
	for i := 0; i < r; i++ {
		m.m.DoRowNonZero(i, func(i, j int, v float64) {
			d.Set(i, j, v)
		})
	}
	return d
}
