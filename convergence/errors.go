package convergence

import (
	"math"

	"github.com/notargets/quadconv/quadrature"
)

// Errors holds one relative error per quadrature.Rule.
type Errors [quadrature.NumRules]float64

// RelativeErrors returns |analytic-est[i]|/analytic for each rule. A zero
// analytic value yields Inf or NaN entries; callers that can meet one should
// check with utils.IsNan.
func RelativeErrors(analytic float64, est quadrature.Estimates) (e Errors) {
	for i, v := range est {
		e[i] = math.Abs(analytic-v) / analytic
	}
	return
}
