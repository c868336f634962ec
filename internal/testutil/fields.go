package testutil

import (
	"math"
	"math/rand"
)

// Mesh returns row-major coordinates for an nx×ny mesh with spacing dx, dy
// starting at the origin.
func Mesh(nx, ny int, dx, dy float64) (x, y []float64) {
	x = make([]float64, nx*ny)
	y = make([]float64, nx*ny)
	for i := range nx {
		for j := range ny {
			x[i*ny+j] = float64(i) * dx
			y[i*ny+j] = float64(j) * dy
		}
	}
	return x, y
}

// PlaneWave samples amplitude*sin(kx*x + ky*y) at each coordinate pair.
func PlaneWave(x, y []float64, kx, ky, amplitude float64) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		out[i] = amplitude * math.Sin(kx*x[i]+ky*y[i])
	}
	return out
}

// GaussianAnomaly samples a smooth bell-shaped anomaly centred at (x0, y0)
// with the given width, a stand-in for a compact buried source.
func GaussianAnomaly(x, y []float64, x0, y0, width, amplitude float64) []float64 {
	out := make([]float64, len(x))
	s := 2 * width * width
	for i := range out {
		dx := x[i] - x0
		dy := y[i] - y0
		out[i] = amplitude * math.Exp(-(dx*dx+dy*dy)/s)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// AddNoise returns field plus seeded white noise scaled to fraction of the
// field's peak absolute value.
func AddNoise(field []float64, seed int64, fraction float64) []float64 {
	peak := 0.0
	for _, v := range field {
		peak = math.Max(peak, math.Abs(v))
	}
	noise := DeterministicNoise(seed, fraction*peak, len(field))
	out := make([]float64, len(field))
	for i := range out {
		out[i] = field[i] + noise[i]
	}
	return out
}
