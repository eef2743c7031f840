package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector is an owned, bounds-checked sequence of float64 values backed by a
// gonum VecDense. DataP aliases the VecDense storage. The zero Vector is
// empty and stands for an absent array.
type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

// NewVector allocates a Vector of length N, optionally adopting dataO[0] as
// its storage.
func NewVector(N int, dataO ...[]float64) Vector {
	if N <= 0 {
		return Vector{}
	}
	var (
		data []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			panic(fmt.Errorf("vector data length %d does not match dimension %d", len(dataO[0]), N))
		}
		data = dataO[0]
	}
	return newVector(mat.NewVecDense(N, data))
}

// NewVectorRange is [0, 1, ..., N-1].
func NewVectorRange(N int) Vector {
	v := NewVector(N)
	for i := range v.DataP {
		v.DataP[i] = float64(i)
	}
	return v
}

func newVector(V *mat.VecDense) Vector {
	return Vector{V: V, DataP: V.RawVector().Data}
}

func (v Vector) IsEmpty() bool { return v.V == nil || v.V.IsEmpty() }

func (v Vector) Len() int {
	if v.V == nil {
		return 0
	}
	return v.V.Len()
}

func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }
func (v Vector) Set(i int, val float64) Vector {
	v.V.SetVec(i, val)
	return v
}

// Last returns the final element.
func (v Vector) Last() float64 { return v.V.AtVec(v.V.Len() - 1) }

// Copy returns a Vector that shares no storage with v.
func (v Vector) Copy() Vector {
	if v.IsEmpty() {
		return Vector{}
	}
	return newVector(mat.VecDenseCopyOf(v.V))
}

// StridedView is a VecDense of n elements aliasing v at offset, offset+inc, ...
func (v Vector) StridedView(offset, inc, n int) *mat.VecDense {
	var sv mat.VecDense
	sv.SetRawVector(blas64.Vector{N: n, Inc: inc, Data: v.DataP[offset:]})
	return &sv
}

// Chainable (extended) methods
func (v Vector) Scale(a float64) Vector { v.V.ScaleVec(a, v.V); return v }
func (v Vector) AddScalar(a float64) Vector {
	floats.AddConst(a, v.DataP)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

// Diff returns the differences between consecutive elements.
func (v Vector) Diff() (d []float64) {
	var (
		data = v.DataP
		n    = len(data)
	)
	if n < 2 {
		return
	}
	return floats.SubTo(make([]float64, n-1), data[1:], data[:n-1])
}
