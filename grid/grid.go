package grid

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Errors returned by grid functions.
var (
	ErrInvalidGrid = errors.New("grid: invalid grid")
)

// Grid is a quasi-regular survey grid with NX rows along x and NY columns
// along y.
type Grid struct {
	X    []float64
	Y    []float64
	Data []float64
	NX   int
	NY   int
}

// New returns a Grid after checking that the slices agree with the shape.
func New(x, y, data []float64, nx, ny int) (Grid, error) {
	g := Grid{X: x, Y: y, Data: data, NX: nx, NY: ny}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Len returns NX*NY.
func (g Grid) Len() int {
	return g.NX * g.NY
}

// Shape returns (NX, NY).
func (g Grid) Shape() (int, int) {
	return g.NX, g.NY
}

// Validate checks the shape invariants needed for derivative computation.
// Both axes need at least two samples, otherwise the spacing is undefined.
func (g Grid) Validate() error {
	if g.NX < 2 || g.NY < 2 {
		return fmt.Errorf("%w: shape (%d, %d) needs at least 2 samples per axis", ErrInvalidGrid, g.NX, g.NY)
	}
	n := g.NX * g.NY
	if len(g.Data) != n {
		return fmt.Errorf("%w: data length %d does not match shape (%d, %d)", ErrInvalidGrid, len(g.Data), g.NX, g.NY)
	}
	if len(g.X) != n || len(g.Y) != n {
		return fmt.Errorf("%w: coordinate lengths (%d, %d) do not match shape (%d, %d)",
			ErrInvalidGrid, len(g.X), len(g.Y), g.NX, g.NY)
	}
	return nil
}

// Regular builds the coordinates of a regular mesh spanning [x1, x2] along
// the rows and [y1, y2] along the columns, laid out like Grid.Data.
func Regular(x1, x2, y1, y2 float64, nx, ny int) (x, y []float64) {
	x = make([]float64, nx*ny)
	y = make([]float64, nx*ny)
	for i := range nx {
		xi := linspace(x1, x2, nx, i)
		for j := range ny {
			x[i*ny+j] = xi
			y[i*ny+j] = linspace(y1, y2, ny, j)
		}
	}
	return x, y
}

func linspace(start, stop float64, n, i int) float64 {
	if n == 1 {
		return start
	}
	return start + (stop-start)*float64(i)/float64(n-1)
}

// NextPowerOfTwo returns the smallest power of two >= n. It returns 1 for
// n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// FirstNonFinite returns the index of the first NaN or Inf value in data,
// or -1 when every value is finite.
func FirstNonFinite(data []float64) int {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
