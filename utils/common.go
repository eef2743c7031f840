package utils

import "errors"

const (
	NODETOL = 1.e-12
	// MachineEpsilon is the float64 unit roundoff, 2^-52.
	MachineEpsilon = 0x1p-52
)

// ErrInvalidArgument is the single failure kind of the integration pipeline.
// The grid, sampler and quadrature packages re-export it.
var ErrInvalidArgument = errors.New("invalid argument")
