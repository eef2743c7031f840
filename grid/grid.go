// Package grid builds the uniform node sets the quadrature rules sample on.
package grid

import (
	"fmt"
	"math"

	"github.com/notargets/quadconv/utils"
)

var ErrInvalidArgument = utils.ErrInvalidArgument

// CheckInterval rejects intervals that are reversed, degenerate or not finite.
func CheckInterval(a, b float64) (err error) {
	switch {
	case math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0):
		err = fmt.Errorf("grid: %w: interval [%v, %v] is not finite", ErrInvalidArgument, a, b)
	case !(a < b):
		err = fmt.Errorf("grid: %w: interval bounds must satisfy a < b, have a = %v, b = %v",
			ErrInvalidArgument, a, b)
	case b-a <= utils.MachineEpsilon:
		err = fmt.Errorf("grid: %w: interval [%v, %v] is narrower than machine epsilon",
			ErrInvalidArgument, a, b)
	}
	return
}

// Step is the uniform spacing |b-a|/(countNodes-1).
func Step(a, b float64, countNodes int) (h float64, err error) {
	if err = CheckInterval(a, b); err != nil {
		return
	}
	if countNodes < 2 {
		err = fmt.Errorf("grid: %w: need at least 2 nodes, have %d", ErrInvalidArgument, countNodes)
		return
	}
	h = math.Abs(b-a) / float64(countNodes-1)
	return
}

// NewUniform returns countNodes points X[i] = a + step*i. The last point is
// set to b exactly so accumulated roundoff never moves the endpoint.
func NewUniform(step float64, countNodes int, a, b float64) (X utils.Vector, err error) {
	if countNodes < 2 {
		err = fmt.Errorf("grid: %w: need at least 2 nodes, have %d", ErrInvalidArgument, countNodes)
		return
	}
	if err = CheckInterval(a, b); err != nil {
		return
	}
	if !(step > 0) || math.IsInf(step, 0) {
		err = fmt.Errorf("grid: %w: step must be positive and finite, have %v", ErrInvalidArgument, step)
		return
	}
	X = utils.NewVectorRange(countNodes).Scale(step).AddScalar(a)
	X.Set(countNodes-1, b)
	return
}
