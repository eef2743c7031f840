package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestNewUniform(t *testing.T) {
	intervals := [][2]float64{{-5.5312, 3.32}, {0, 1}, {-1.e-3, 1.e-3}, {10, 1000.7}}
	for _, ab := range intervals {
		a, b := ab[0], ab[1]
		for _, n := range []int{2, 3, 5, 39, 77, 1001} {
			h, err := Step(a, b, n)
			require.NoError(t, err)
			X, err := NewUniform(h, n, a, b)
			require.NoError(t, err)
			require.Equal(t, n, X.Len())
			assert.Equal(t, a, X.AtVec(0))
			assert.Equal(t, b, X.Last(), "last node must equal b exactly")
			for _, d := range X.Diff() {
				assert.InDelta(t, h, d, 64*math.Abs(b)*1.e-16+1.e-15)
			}
			// Agrees with gonum's linear span to roundoff
			span := floats.Span(make([]float64, n), a, b)
			assert.True(t, floats.EqualApprox(span, X.DataP, 1.e-12))
		}
	}
}

func TestStep(t *testing.T) {
	h, err := Step(-5.5312, 3.32, 39)
	require.NoError(t, err)
	assert.InDelta(t, 0.2329263, h, 1.e-6)
	h2, err := Step(-5.5312, 3.32, 77)
	require.NoError(t, err)
	assert.InDelta(t, h/2, h2, 1.e-15)
}

func TestInvalidArguments(t *testing.T) {
	var err error
	_, err = NewUniform(0.1, 1, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewUniform(0.1, 0, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewUniform(0.1, 5, 1, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "a > b")
	_, err = NewUniform(0.1, 5, 1, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "a == b")
	_, err = NewUniform(0.1, 5, 1, 1+1.e-17)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "a == b within epsilon")
	_, err = NewUniform(0, 5, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "zero step")
	_, err = NewUniform(math.NaN(), 5, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "NaN step")
	_, err = NewUniform(0.1, 5, math.Inf(-1), 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Step(0, 1, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Step(2, 1, 10)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
