// Package sampler evaluates an integrand on uniform grids, refines sampled
// arrays by reusing coarse values, and memoizes the closed form integral.
package sampler

import (
	"fmt"
	"math"

	"github.com/notargets/quadconv/grid"
	"github.com/notargets/quadconv/utils"
)

var ErrInvalidArgument = utils.ErrInvalidArgument

type analyticCache struct {
	a, b, value float64
	valid       bool
}

// Sampler is not safe for concurrent use; the analytic integral cache and the
// evaluation counters are per instance.
type Sampler struct {
	Integrand                        Integrand
	cache                            analyticCache
	evaluations, antiderivativeCalls int
}

// Result is the output of Generate: the sampled array, its node count and the
// analytic integral over the same interval.
type Result struct {
	Values   utils.Vector
	Count    int
	Analytic float64
}

func NewSampler(f Integrand) (s *Sampler, err error) {
	if f.F == nil || f.Antiderivative == nil {
		err = fmt.Errorf("sampler: %w: integrand %q needs both a function and its antiderivative",
			ErrInvalidArgument, f.Name)
		return
	}
	s = &Sampler{Integrand: f}
	return
}

// Evaluations is the number of times the integrand has been evaluated.
func (s *Sampler) Evaluations() int { return s.evaluations }

// AntiderivativeCalls counts closed form recomputations, so cache hits are
// observable.
func (s *Sampler) AntiderivativeCalls() int { return s.antiderivativeCalls }

// Reset drops the cached analytic integral and zeroes the counters.
func (s *Sampler) Reset() {
	s.cache = analyticCache{}
	s.evaluations, s.antiderivativeCalls = 0, 0
}

func (s *Sampler) eval(x float64) float64 {
	s.evaluations++
	return s.Integrand.F(x)
}

// RefinedCount is the node count after splitting each of the n-1 intervals of
// a coarse grid into ratio pieces: ratio*(n-1)+1. For ratio 2 this is 2n-1.
func RefinedCount(countNodes, ratio int) int {
	return ratio*(countNodes-1) + 1
}

// Sample evaluates the integrand on a fresh grid of countNodes points.
func (s *Sampler) Sample(countNodes int, a, b float64) (fs utils.Vector, err error) {
	var (
		h float64
		X utils.Vector
	)
	if h, err = grid.Step(a, b, countNodes); err != nil {
		return
	}
	if X, err = grid.NewUniform(h, countNodes, a, b); err != nil {
		return
	}
	fs = X.Apply(s.eval)
	return
}

// Refine builds the sampled array on the grid refined by ratio. Coarse values
// are copied to every ratio'th slot and only the interleaved points are
// evaluated. The last slot is copied from coarse so the endpoint is identical.
// The coarse array is not modified.
func (s *Sampler) Refine(coarse utils.Vector, ratio int, a, b float64) (fine utils.Vector, err error) {
	var (
		h float64
		X utils.Vector
		n = coarse.Len()
	)
	switch {
	case coarse.IsEmpty():
		err = fmt.Errorf("sampler: %w: refinement requires a coarse array", ErrInvalidArgument)
	case ratio < 2:
		err = fmt.Errorf("sampler: %w: refinement ratio must be at least 2, have %d", ErrInvalidArgument, ratio)
	case n < 2:
		err = fmt.Errorf("sampler: %w: coarse array needs at least 2 nodes, have %d", ErrInvalidArgument, n)
	}
	if err != nil {
		return
	}
	nf := RefinedCount(n, ratio)
	if h, err = grid.Step(a, b, nf); err != nil {
		return
	}
	if X, err = grid.NewUniform(h, nf, a, b); err != nil {
		return
	}
	fine = utils.NewVector(nf)
	// coarse nodes land on every ratio'th fine node
	fine.StridedView(0, ratio, n-1).CopyVec(coarse.StridedView(0, 1, n-1))
	for k := 1; k < ratio; k++ {
		var (
			xk = X.StridedView(k, ratio, n-1)
			fk = fine.StridedView(k, ratio, n-1)
		)
		for i := 0; i < n-1; i++ {
			fk.SetVec(i, s.eval(xk.AtVec(i)))
		}
	}
	fine.Set(nf-1, coarse.Last())
	return
}

// Generate samples the integrand on [a,b]. With no coarse array, or with
// ratio 1, it samples countNodesInit fresh points. Otherwise coarse must hold
// countNodesInit values and is refined by ratio. The analytic integral is
// returned alongside.
func (s *Sampler) Generate(coarse *utils.Vector, countNodesInit, ratio int, a, b float64) (r Result, err error) {
	switch {
	case countNodesInit < 2:
		err = fmt.Errorf("sampler: %w: need at least 2 nodes, have %d", ErrInvalidArgument, countNodesInit)
	case ratio < 1:
		err = fmt.Errorf("sampler: %w: refinement ratio must be at least 1, have %d", ErrInvalidArgument, ratio)
	case ratio > 1 && (coarse == nil || coarse.IsEmpty()):
		err = fmt.Errorf("sampler: %w: refinement ratio %d requires a coarse array", ErrInvalidArgument, ratio)
	case ratio > 1 && coarse.Len() != countNodesInit:
		err = fmt.Errorf("sampler: %w: coarse array has %d nodes, expected %d",
			ErrInvalidArgument, coarse.Len(), countNodesInit)
	}
	if err == nil {
		err = grid.CheckInterval(a, b)
	}
	if err != nil {
		return
	}
	if ratio == 1 {
		r.Values, err = s.Sample(countNodesInit, a, b)
	} else {
		r.Values, err = s.Refine(*coarse, ratio, a, b)
	}
	if err != nil {
		return
	}
	r.Count = r.Values.Len()
	r.Analytic, err = s.AnalyticIntegral(a, b)
	return
}

// sameBound compares bounds to machine epsilon relative to their magnitude,
// absolute below 1.
func sameBound(cached, x float64) bool {
	return math.Abs(cached-x) <= utils.MachineEpsilon*math.Max(math.Abs(cached), 1)
}

// AnalyticIntegral is Antiderivative(b) - Antiderivative(a). The value is
// reused until a or b moves by more than machine epsilon (see sameBound).
func (s *Sampler) AnalyticIntegral(a, b float64) (v float64, err error) {
	if err = grid.CheckInterval(a, b); err != nil {
		return
	}
	c := &s.cache
	if c.valid && sameBound(c.a, a) && sameBound(c.b, b) {
		return c.value, nil
	}
	s.antiderivativeCalls++
	c.a, c.b = a, b
	c.value = s.Integrand.Antiderivative(b) - s.Integrand.Antiderivative(a)
	c.valid = true
	return c.value, nil
}
