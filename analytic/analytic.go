package analytic

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gridderiv/deriv"
)

// ErrLengthMismatch is returned when the derivative components differ in length.
var ErrLengthMismatch = errors.New("analytic: derivative length mismatch")

// Result holds the pointwise products of a derivative triple.
type Result struct {
	// Horizontal is sqrt(dx²+dy²).
	Horizontal []float64
	// ASA is sqrt(dx²+dy²+dz²).
	ASA []float64
	// TDR is atan2(dz, Horizontal) in radians.
	TDR []float64
}

// Compose computes the horizontal gradient magnitude, analytic signal
// amplitude and tilt derivative of (dx, dy, dz). NaN and Inf inputs
// propagate to the outputs.
func Compose(dx, dy, dz []float64) (Result, error) {
	n := len(dx)
	if len(dy) != n || len(dz) != n {
		return Result{}, fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, len(dx), len(dy), len(dz))
	}
	if n == 0 {
		return Result{}, nil
	}

	r := Result{
		Horizontal: make([]float64, n),
		ASA:        make([]float64, n),
		TDR:        make([]float64, n),
	}
	vecmath.Magnitude(r.Horizontal, dx, dy)
	vecmath.Magnitude(r.ASA, r.Horizontal, dz)
	for i, h := range r.Horizontal {
		r.TDR[i] = math.Atan2(dz[i], h)
	}
	return r, nil
}

// ComposeTriple is Compose applied to the components of d.
func ComposeTriple(d deriv.Triple) (Result, error) {
	return Compose(d.X, d.Y, d.Z)
}
