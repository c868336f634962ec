package fft2

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// AlgoFFT is a Transformer built on an algo-fft 2D plan.
type AlgoFFT struct {
	plan *algofft.Plan2D[complex128]
}

// NewAlgoFFT creates an algo-fft Transformer for a rows×cols array.
func NewAlgoFFT(rows, cols int) (Transformer, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	plan, err := algofft.NewPlan2D64(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("fft2: failed to create plan: %w", err)
	}
	return &AlgoFFT{plan: plan}, nil
}

// Rows returns the number of rows.
func (a *AlgoFFT) Rows() int { return a.plan.Rows() }

// Cols returns the number of columns.
func (a *AlgoFFT) Cols() int { return a.plan.Cols() }

// Clone returns an independent Transformer that shares the plan's
// immutable tables.
func (a *AlgoFFT) Clone() Transformer {
	return &AlgoFFT{plan: a.plan.Clone()}
}

// Forward computes the unnormalized 2D DFT.
func (a *AlgoFFT) Forward(dst, src []complex128) error {
	if err := checkLen(dst, src, a.plan.Len()); err != nil {
		return err
	}
	if err := a.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("fft2: forward FFT failed: %w", err)
	}
	return nil
}

// Inverse computes the inverse 2D DFT, normalized by rows*cols.
func (a *AlgoFFT) Inverse(dst, src []complex128) error {
	if err := checkLen(dst, src, a.plan.Len()); err != nil {
		return err
	}
	if err := a.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("fft2: inverse FFT failed: %w", err)
	}
	return nil
}
