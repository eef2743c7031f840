package sampler

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/quadconv/utils"
)

// Integrand pairs a function with its antiderivative. The sampler evaluates F
// on the grid and uses Antiderivative for the closed form integral, so the two
// must match.
type Integrand struct {
	Name           string
	F              func(x float64) float64
	Antiderivative func(x float64) float64
}

var (
	Sine = Integrand{
		Name:           "sin",
		F:              math.Sin,
		Antiderivative: func(x float64) float64 { return -math.Cos(x) },
	}
	Cosine = Integrand{
		Name:           "cos",
		F:              math.Cos,
		Antiderivative: math.Sin,
	}
	Exponential = Integrand{
		Name:           "exp",
		F:              math.Exp,
		Antiderivative: math.Exp,
	}
	Cubic = Integrand{
		Name:           "cubic",
		F:              func(x float64) float64 { return utils.POW(x, 3) },
		Antiderivative: func(x float64) float64 { return 0.25 * utils.POW(x, 4) },
	}
)

var catalog = map[string]Integrand{
	Sine.Name:        Sine,
	Cosine.Name:      Cosine,
	Exponential.Name: Exponential,
	Cubic.Name:       Cubic,
}

// Lookup returns the named integrand from the built in catalog.
func Lookup(name string) (f Integrand, err error) {
	var ok bool
	if f, ok = catalog[name]; !ok {
		err = fmt.Errorf("sampler: %w: unknown integrand %q, have %v", ErrInvalidArgument, name, Names())
	}
	return
}

func Names() (names []string) {
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
