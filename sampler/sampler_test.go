package sampler

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/quadconv/grid"
	"github.com/notargets/quadconv/utils"
)

const (
	A = -5.5312
	B = 3.32
	K = 39
)

func newSine(t *testing.T) *Sampler {
	s, err := NewSampler(Sine)
	require.NoError(t, err)
	return s
}

func TestSampleColdStart(t *testing.T) {
	s := newSine(t)
	r, err := s.Generate(nil, K, 1, A, B)
	require.NoError(t, err)
	assert.Equal(t, K, r.Count)
	require.Equal(t, K, r.Values.Len())
	h, _ := grid.Step(A, B, K)
	X, _ := grid.NewUniform(h, K, A, B)
	for i, x := range X.DataP {
		assert.Equal(t, math.Sin(x), r.Values.AtVec(i))
	}
	assert.Equal(t, K, s.Evaluations())
	assert.InDelta(t, math.Cos(A)-math.Cos(B), r.Analytic, 1.e-15)
}

func TestRefine(t *testing.T) {
	for _, ratio := range []int{2, 3, 4} {
		s := newSine(t)
		coarse, err := s.Generate(nil, K, 1, A, B)
		require.NoError(t, err)
		saved := coarse.Values.Copy()

		fine, err := s.Generate(&coarse.Values, coarse.Count, ratio, A, B)
		require.NoError(t, err)
		nf := ratio*(K-1) + 1
		require.Equal(t, nf, fine.Count)
		if ratio == 2 {
			assert.Equal(t, K*ratio-1, fine.Count)
		}
		// Endpoint continuity
		assert.Equal(t, coarse.Values.Last(), fine.Values.Last())
		// Coarse aligned values are copied, not recomputed
		for i := 0; i < K-1; i++ {
			assert.Equal(t, coarse.Values.AtVec(i), fine.Values.AtVec(ratio*i))
		}
		// Only the interleaved points cost an evaluation
		assert.Equal(t, K+(K-1)*(ratio-1), s.Evaluations())
		// New points are the integrand on the refined grid
		h, _ := grid.Step(A, B, nf)
		X, _ := grid.NewUniform(h, nf, A, B)
		for j := 0; j < nf; j++ {
			assert.InDelta(t, math.Sin(X.AtVec(j)), fine.Values.AtVec(j), 1.e-14)
		}
		// Input untouched
		assert.Equal(t, saved.DataP, coarse.Values.DataP)
	}
}

func TestRefineKeepsCoarseEndpoint(t *testing.T) {
	// A coarse array with a marker endpoint shows the last slot is copied.
	s := newSine(t)
	coarse := utils.NewVector(5, []float64{0, 1, 2, 3, 42})
	fine, err := s.Refine(coarse, 2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, fine.Len())
	assert.Equal(t, 42., fine.Last())
	assert.Equal(t, []float64{0, 1, 2, 3}, []float64{fine.AtVec(0), fine.AtVec(2), fine.AtVec(4), fine.AtVec(6)})
}

func TestAnalyticIntegralCache(t *testing.T) {
	s := newSine(t)
	v1, err := s.AnalyticIntegral(A, B)
	require.NoError(t, err)
	v2, err := s.AnalyticIntegral(A, B)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, s.AntiderivativeCalls())

	// One ulp of B is below epsilon scaled by |B|, and hits the cache
	_, err = s.AnalyticIntegral(math.Nextafter(A, 0), math.Nextafter(B, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, s.AntiderivativeCalls())

	// Moving a bound past epsilon recomputes
	v3, err := s.AnalyticIntegral(A, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, s.AntiderivativeCalls())
	assert.InDelta(t, math.Cos(A)-math.Cos(3), v3, 1.e-15)

	// A separate sampler has its own cache
	other := newSine(t)
	_, _ = other.AnalyticIntegral(A, 3)
	assert.Equal(t, 1, other.AntiderivativeCalls())
	assert.Equal(t, 2, s.AntiderivativeCalls())

	s.Reset()
	assert.Equal(t, 0, s.AntiderivativeCalls())
	_, _ = s.AnalyticIntegral(A, 3)
	assert.Equal(t, 1, s.AntiderivativeCalls())
}

func TestInjectedIntegrand(t *testing.T) {
	s, err := NewSampler(Cubic)
	require.NoError(t, err)
	r, err := s.Generate(nil, 5, 1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.125, 1, 3.375, 8}, r.Values.DataP)
	assert.InDelta(t, 4., r.Analytic, 1.e-15)

	f, err := Lookup("exp")
	require.NoError(t, err)
	assert.Equal(t, "exp", f.Name)
	_, err = Lookup("tan")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, []string{"cos", "cubic", "exp", "sin"}, Names())

	_, err = NewSampler(Integrand{Name: "broken", F: math.Sin})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestGenerateInvalidArguments(t *testing.T) {
	s := newSine(t)
	coarse, err := s.Generate(nil, K, 1, A, B)
	require.NoError(t, err)

	var checks = []struct {
		name   string
		coarse *utils.Vector
		n      int
		ratio  int
		a, b   float64
	}{
		{"too few nodes", nil, 1, 1, A, B},
		{"zero ratio", nil, K, 0, A, B},
		{"refine nothing", nil, K, 2, A, B},
		{"refine empty", &utils.Vector{}, K, 2, A, B},
		{"count mismatch", &coarse.Values, K + 1, 2, A, B},
		{"reversed interval", nil, K, 1, B, A},
		{"degenerate interval", nil, K, 1, A, A},
		{"refine reversed interval", &coarse.Values, K, 2, B, A},
	}
	for _, c := range checks {
		_, err = s.Generate(c.coarse, c.n, c.ratio, c.a, c.b)
		assert.Truef(t, errors.Is(err, ErrInvalidArgument), "%s: %v", c.name, err)
		assert.Truef(t, errors.Is(err, grid.ErrInvalidArgument), "%s: %v", c.name, err)
	}
	_, err = s.Refine(coarse.Values, 1, A, B)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = s.Refine(utils.Vector{}, 2, A, B)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = s.AnalyticIntegral(1, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
