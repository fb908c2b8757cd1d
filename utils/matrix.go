package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int) { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Set(i, j int, val float64) Matrix { m.M.Set(i, j, val); return m }

func (m Matrix) Row(i int) (R Vector) {
	var (
		_, nc = m.Dims()
		data  = make([]float64, nc)
	)
	for j := 0; j < nc; j++ {
		data[j] = m.At(i, j)
	}
	R = NewVector(nc, data)
	return
}

func (m Matrix) Col(j int) (R Vector) {
	var (
		nr, _ = m.Dims()
		data  = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		data[i] = m.At(i, j)
	}
	R = NewVector(nr, data)
	return
}

func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, len(data))
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Mul(a Matrix) (R Matrix) {
	var (
		nr, _ = m.Dims()
		_, nc = a.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.Mul(m.M, a.M)
	return
}

// MulVec right-multiplies by a column vector.
func (m Matrix) MulVec(v Vector) (R Vector) {
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

func (m Matrix) SumRows() (R Vector) {
	var (
		nr, nc = m.Dims()
	)
	R = NewVector(nr)
	for i := 0; i < nr; i++ {
		var s float64
		for j := 0; j < nc; j++ {
			s += m.At(i, j)
		}
		R.V.SetVec(i, s)
	}
	return
}
