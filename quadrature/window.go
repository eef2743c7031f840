package quadrature

import "gonum.org/v1/gonum/floats"

// Window is the stencil law of a rule. A stencil anchored at i reads nodes
// i+Lo through i+Hi and contributes Scale*step*(Weights . f[i+Lo:i+Hi+1]).
// Anchors are Offset, Offset+Stride, ... for as long as the stencil stays on
// the grid.
type Window struct {
	Lo, Hi         int
	Offset, Stride int
	Scale          float64
	Weights        []float64
}

var windows = [NumRules]Window{
	// midpoint of [x(i-1), x(i+1)]
	Rectangles:  {Lo: -1, Hi: 1, Offset: 1, Stride: 2, Scale: 1, Weights: []float64{0, 2, 0}},
	Trapeze:     {Lo: 0, Hi: 1, Offset: 0, Stride: 1, Scale: 0.5, Weights: []float64{1, 1}},
	Simpson:     {Lo: 0, Hi: 2, Offset: 0, Stride: 2, Scale: 1. / 3., Weights: []float64{1, 4, 1}},
	NewtonCotes: {Lo: 0, Hi: 4, Offset: 0, Stride: 4, Scale: 2. / 45., Weights: []float64{7, 32, 12, 32, 7}},
	Gauss:       {Lo: 0, Hi: 2, Offset: 0, Stride: 2, Scale: 1. / 9., Weights: []float64{5, 8, 5}},
}

func (r Rule) Window() Window { return windows[r] }

// Width is the number of nodes in one stencil.
func (w Window) Width() int { return w.Hi - w.Lo + 1 }

// Panel is the stencil anchored at i applied to f.
func (w Window) Panel(f []float64, i int, step float64) float64 {
	return w.Scale * step * floats.Dot(w.Weights, f[i+w.Lo:i+w.Hi+1])
}

// Starts reports whether a stencil is anchored at node i of an n node grid.
func (w Window) Starts(i, n int) bool {
	return i >= w.Offset && (i-w.Offset)%w.Stride == 0 && i+w.Hi <= n-1
}

// Coverage is the index of the last node reached by the rule's stencils on
// an n node grid, or -1 when no stencil fits. Anything past it is not
// integrated; with NewtonCotes this happens whenever n-1 is not a multiple
// of 4.
func Coverage(r Rule, n int) int {
	w := r.Window()
	last := -1
	for i := w.Offset; i+w.Hi <= n-1; i += w.Stride {
		last = i + w.Hi
	}
	return last
}
