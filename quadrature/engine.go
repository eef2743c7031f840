// Package quadrature computes the five composite rule estimates from one
// sampled array.
package quadrature

import (
	"fmt"
	"math"

	"github.com/notargets/quadconv/utils"
)

// MinNodes is the widest stencil, NewtonCotes.
const MinNodes = 5

var ErrInvalidArgument = utils.ErrInvalidArgument

// Estimates holds one integral estimate per Rule, indexed by Rule.
type Estimates [NumRules]float64

// Integrate accumulates every rule over f in a single pass of increasing
// index. Each rule only sees the anchors its Window admits.
func Integrate(f utils.Vector, countNodes int, step float64) (est Estimates, err error) {
	switch {
	case f.IsEmpty():
		err = fmt.Errorf("quadrature: %w: no sampled array", ErrInvalidArgument)
	case countNodes < MinNodes:
		err = fmt.Errorf("quadrature: %w: need at least %d nodes, have %d", ErrInvalidArgument, MinNodes, countNodes)
	case countNodes != f.Len():
		err = fmt.Errorf("quadrature: %w: node count %d does not match array length %d",
			ErrInvalidArgument, countNodes, f.Len())
	case !(step > 0) || math.IsInf(step, 0):
		err = fmt.Errorf("quadrature: %w: step must be positive and finite, have %v", ErrInvalidArgument, step)
	}
	if err != nil {
		return
	}
	var (
		data = f.DataP
	)
	for i := 0; i < countNodes; i++ {
		for r, w := range windows {
			if w.Starts(i, countNodes) {
				est[r] += w.Panel(data, i, step)
			}
		}
	}
	return
}
