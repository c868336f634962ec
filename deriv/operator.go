package deriv

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-gridderiv/fft2"
	"github.com/cwbudde/algo-gridderiv/grid"
)

// Errors returned by derivative functions.
var (
	ErrInvalidInput = errors.New("deriv: non-finite input")
	ErrInvalidOrder = errors.New("deriv: derivative order must be >= 1")
	ErrInvalidAlpha = errors.New("deriv: regularization parameter must be finite and >= 0")
)

// Triple holds the x, y and z derivatives of a grid, each laid out like
// grid.Grid.Data.
type Triple struct {
	X []float64
	Y []float64
	Z []float64
}

// Len returns the number of samples per component.
func (t Triple) Len() int {
	return len(t.X)
}

// Option configures an Operator.
type Option func(*config)

type config struct {
	backend fft2.Backend
}

// WithBackend selects the 2D FFT backend. A nil backend is ignored.
func WithBackend(b fft2.Backend) Option {
	return func(cfg *config) {
		if b != nil {
			cfg.backend = b
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{backend: fft2.Default}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Operator holds the padded forward spectrum of a grid and evaluates
// derivative operators against it. All methods are safe for concurrent use.
type Operator struct {
	padded   grid.Padded
	waves    grid.Wavenumbers
	radial   []float64
	spectrum []complex128
	backend  fft2.Backend
	// proto is the transformer planned by NewOperator; pooled copies are
	// cloned from it when the backend supports that.
	proto fft2.Transformer

	transforms sync.Pool
	scratch    sync.Pool
}

// NewOperator validates g, pads it, builds its wavenumbers and computes the
// forward spectrum.
func NewOperator(g grid.Grid, opts ...Option) (*Operator, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if i := grid.FirstNonFinite(g.Data); i >= 0 {
		return nil, fmt.Errorf("%w: sample %d is %v", ErrInvalidInput, i, g.Data[i])
	}
	if grid.FirstNonFinite(g.X) >= 0 || grid.FirstNonFinite(g.Y) >= 0 {
		return nil, fmt.Errorf("%w: non-finite coordinate", grid.ErrInvalidGrid)
	}

	cfg := applyOptions(opts)

	padded, err := grid.Pad(g.Data, g.NX, g.NY)
	if err != nil {
		return nil, err
	}
	waves, err := grid.NewWavenumbers(g, padded.N)
	if err != nil {
		return nil, err
	}

	op := &Operator{
		padded:   padded,
		waves:    waves,
		radial:   waves.Radial(),
		spectrum: make([]complex128, padded.N*padded.N),
		backend:  cfg.backend,
	}

	tr, err := op.backend(padded.N, padded.N)
	if err != nil {
		return nil, fmt.Errorf("deriv: failed to create transform: %w", err)
	}
	op.proto = tr
	if _, ok := tr.(fft2.Cloner); !ok {
		defer op.transforms.Put(tr)
	}

	for i, v := range padded.Data {
		op.spectrum[i] = complex(v, 0)
	}
	if err := tr.Forward(op.spectrum, op.spectrum); err != nil {
		return nil, err
	}
	return op, nil
}

// Padded returns the padding geometry of the operator's grid.
func (op *Operator) Padded() grid.Padded {
	return op.padded
}

// Wavenumbers returns the wavenumber meshes of the padded grid.
func (op *Operator) Wavenumbers() grid.Wavenumbers {
	return op.waves
}

// Derivatives returns the non-regularized derivatives of the given order.
func (op *Operator) Derivatives(order int) (Triple, error) {
	if order < 1 {
		return Triple{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	return op.apply(func(i int) (complex128, complex128, float64) {
		return PowerKernel(order, op.waves.KX[i], op.waves.KY[i], op.radial[i])
	})
}

// Regularized returns the regularized first-order derivatives for alpha.
func (op *Operator) Regularized(alpha float64) (Triple, error) {
	if !(alpha >= 0) || math.IsInf(alpha, 0) {
		return Triple{}, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}
	return op.apply(func(i int) (complex128, complex128, float64) {
		return RegularizedKernel(alpha, op.waves.KX[i], op.waves.KY[i], op.radial[i])
	})
}

// kernelFunc returns the x, y and z operator values at flat bin index i.
type kernelFunc func(i int) (gx, gy complex128, gz float64)

func (op *Operator) apply(kernel kernelFunc) (Triple, error) {
	tr, err := op.transformer()
	if err != nil {
		return Triple{}, err
	}
	defer op.transforms.Put(tr)

	buf := op.buffer()
	defer op.scratch.Put(buf)

	m := len(op.spectrum)
	specs := [3][]complex128{(*buf)[:m], (*buf)[m : 2*m], (*buf)[2*m:]}
	for i, s := range op.spectrum {
		gx, gy, gz := kernel(i)
		specs[0][i] = s * gx
		specs[1][i] = s * gy
		specs[2][i] = s * complex(gz, 0)
	}

	n := op.padded.NX * op.padded.NY
	out := Triple{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
	for dir, dst := range [3][]float64{out.X, out.Y, out.Z} {
		if err := tr.Inverse(specs[dir], specs[dir]); err != nil {
			return Triple{}, err
		}
		op.cropReal(dst, specs[dir])
	}
	return out, nil
}

// cropReal writes the real part of the original window of spec into dst.
func (op *Operator) cropReal(dst []float64, spec []complex128) {
	p := op.padded
	for i := range p.NX {
		off := p.RowOffset(i)
		row := dst[i*p.NY : (i+1)*p.NY]
		for j := range row {
			row[j] = real(spec[off+j])
		}
	}
}

func (op *Operator) transformer() (fft2.Transformer, error) {
	if v := op.transforms.Get(); v != nil {
		return v.(fft2.Transformer), nil
	}
	if c, ok := op.proto.(fft2.Cloner); ok {
		return c.Clone(), nil
	}
	tr, err := op.backend(op.padded.N, op.padded.N)
	if err != nil {
		return nil, fmt.Errorf("deriv: failed to create transform: %w", err)
	}
	return tr, nil
}

func (op *Operator) buffer() *[]complex128 {
	if v := op.scratch.Get(); v != nil {
		return v.(*[]complex128)
	}
	buf := make([]complex128, 3*len(op.spectrum))
	return &buf
}

// NonRegularized computes the order-n derivatives of g in one shot.
func NonRegularized(g grid.Grid, order int, opts ...Option) (Triple, error) {
	if order < 1 {
		return Triple{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	op, err := NewOperator(g, opts...)
	if err != nil {
		return Triple{}, err
	}
	return op.Derivatives(order)
}

// RegularizedDerivatives computes the regularized first-order derivatives
// of g for alpha in one shot.
func RegularizedDerivatives(g grid.Grid, alpha float64, opts ...Option) (Triple, error) {
	if !(alpha >= 0) || math.IsInf(alpha, 0) {
		return Triple{}, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}
	op, err := NewOperator(g, opts...)
	if err != nil {
		return Triple{}, err
	}
	return op.Regularized(alpha)
}
