package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Wavenumbers holds angular spatial-frequency meshes for an N×N padded grid.
// KX[i*N+j] is the x wavenumber of row i; KY[i*N+j] is the y wavenumber of
// column j.
type Wavenumbers struct {
	KX []float64
	KY []float64
	N  int
	DX float64
	DY float64
}

// FFTFreq returns the DFT sample frequencies for n bins with spacing d, in
// the conventional order: 0, positive ascending, then negative ascending
// towards -1/(n*d).
func FFTFreq(n int, d float64) []float64 {
	out := make([]float64, n)
	scale := 1 / (float64(n) * d)
	half := (n + 1) / 2
	for k := range n {
		m := k
		if k >= half {
			m = k - n
		}
		out[k] = float64(m) * scale
	}
	return out
}

// Spacing returns the mean sample spacing of g along x and y, computed from
// the coordinate extent divided by the number of intervals.
func Spacing(g Grid) (dx, dy float64, err error) {
	if err := g.Validate(); err != nil {
		return 0, 0, err
	}
	dx = (floats.Max(g.X) - floats.Min(g.X)) / float64(g.NX-1)
	dy = (floats.Max(g.Y) - floats.Min(g.Y)) / float64(g.NY-1)
	if !(dx > 0) || math.IsInf(dx, 0) || !(dy > 0) || math.IsInf(dy, 0) {
		return 0, 0, fmt.Errorf("%w: spacing (%g, %g) must be positive and finite", ErrInvalidGrid, dx, dy)
	}
	return dx, dy, nil
}

// NewWavenumbers builds the angular wavenumber meshes for g padded to n×n.
func NewWavenumbers(g Grid, n int) (Wavenumbers, error) {
	if n < max(g.NX, g.NY) {
		return Wavenumbers{}, fmt.Errorf("%w: padded size %d smaller than shape (%d, %d)", ErrInvalidGrid, n, g.NX, g.NY)
	}
	dx, dy, err := Spacing(g)
	if err != nil {
		return Wavenumbers{}, err
	}

	kx := FFTFreq(n, dx)
	ky := FFTFreq(n, dy)
	floats.Scale(2*math.Pi, kx)
	floats.Scale(2*math.Pi, ky)

	w := Wavenumbers{
		KX: make([]float64, n*n),
		KY: make([]float64, n*n),
		N:  n,
		DX: dx,
		DY: dy,
	}
	for i := range n {
		row := i * n
		for j := range n {
			w.KX[row+j] = kx[i]
			w.KY[row+j] = ky[j]
		}
	}
	return w, nil
}

// Radial returns sqrt(kx²+ky²) for every bin.
func (w Wavenumbers) Radial() []float64 {
	out := make([]float64, len(w.KX))
	for i := range out {
		out[i] = math.Hypot(w.KX[i], w.KY[i])
	}
	return out
}
