// Package convergence runs the two level quadrature study: sample at step h,
// refine to h/ratio reusing the coarse samples, and compare relative errors.
package convergence

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/quadconv/grid"
	"github.com/notargets/quadconv/quadrature"
	"github.com/notargets/quadconv/sampler"
	"github.com/notargets/quadconv/utils"
)

// ReferenceNodes is the Gauss-Legendre order of the independent reference
// integral.
const ReferenceNodes = 24

type Study struct {
	Sampler  *sampler.Sampler
	A, B     float64
	K, Ratio int
}

// Level is one grid resolution of a study.
type Level struct {
	Step        float64
	Count       int
	Estimates   quadrature.Estimates
	Errors      Errors
	Evaluations int // fresh integrand evaluations spent on this level
}

type Result struct {
	Integrand    string
	A, B         float64
	Ratio        int
	Analytic     float64
	Reference    float64 // gonum Gauss-Legendre, independent of the antiderivative
	RefDiff      float64 // relative difference of Analytic and Reference
	Coarse, Fine Level
	Order        [quadrature.NumRules]float64 // log(e_coarse/e_fine)/log(ratio)
	// Partial marks rules whose stencils stop short of b on either level,
	// so their Order is not a convergence order.
	Partial [quadrature.NumRules]bool
}

func NewStudy(s *sampler.Sampler, a, b float64, K, ratio int) (st *Study, err error) {
	switch {
	case s == nil:
		err = fmt.Errorf("convergence: %w: no sampler", utils.ErrInvalidArgument)
	case K < quadrature.MinNodes:
		err = fmt.Errorf("convergence: %w: need at least %d base nodes, have %d",
			utils.ErrInvalidArgument, quadrature.MinNodes, K)
	case ratio < 2:
		err = fmt.Errorf("convergence: %w: refinement ratio must be at least 2, have %d",
			utils.ErrInvalidArgument, ratio)
	}
	if err == nil {
		err = grid.CheckInterval(a, b)
	}
	if err != nil {
		return
	}
	st = &Study{Sampler: s, A: a, B: b, K: K, Ratio: ratio}
	return
}

func (st *Study) level(r sampler.Result, evals int) (l Level, err error) {
	l.Count = r.Count
	l.Evaluations = evals
	if l.Step, err = grid.Step(st.A, st.B, r.Count); err != nil {
		return
	}
	if l.Estimates, err = quadrature.Integrate(r.Values, r.Count, l.Step); err != nil {
		return
	}
	l.Errors = RelativeErrors(r.Analytic, l.Estimates)
	return
}

// Run executes the coarse pass at H = |b-a|/(K-1) and the refined pass at
// H/Ratio.
func (st *Study) Run() (res *Result, err error) {
	var (
		s            = st.Sampler
		coarse, fine sampler.Result
		before       = s.Evaluations()
	)
	res = &Result{
		Integrand: s.Integrand.Name,
		A:         st.A,
		B:         st.B,
		Ratio:     st.Ratio,
	}
	if coarse, err = s.Generate(nil, st.K, 1, st.A, st.B); err != nil {
		return nil, err
	}
	if res.Coarse, err = st.level(coarse, s.Evaluations()-before); err != nil {
		return nil, err
	}
	before = s.Evaluations()
	if fine, err = s.Generate(&coarse.Values, coarse.Count, st.Ratio, st.A, st.B); err != nil {
		return nil, err
	}
	if res.Fine, err = st.level(fine, s.Evaluations()-before); err != nil {
		return nil, err
	}
	res.Analytic = fine.Analytic
	res.Reference = quad.Fixed(s.Integrand.F, st.A, st.B, ReferenceNodes, quad.Legendre{}, 0)
	res.RefDiff = utils.RelDiff(res.Analytic, res.Reference)
	lr := math.Log(float64(st.Ratio))
	for _, rule := range quadrature.Rules() {
		res.Order[rule] = math.Log(res.Coarse.Errors[rule]/res.Fine.Errors[rule]) / lr
		res.Partial[rule] = quadrature.Coverage(rule, res.Coarse.Count) < res.Coarse.Count-1 ||
			quadrature.Coverage(rule, res.Fine.Count) < res.Fine.Count-1
	}
	return
}

// Converged reports whether every rule has a strictly smaller error on the
// refined level.
func (r *Result) Converged() bool {
	for i := range r.Fine.Errors {
		if !(r.Fine.Errors[i] < r.Coarse.Errors[i]) {
			return false
		}
	}
	return true
}
