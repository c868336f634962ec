package fft2

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by transformers.
var (
	ErrInvalidSize    = errors.New("fft2: invalid transform size")
	ErrSizeMismatch   = errors.New("fft2: buffer length mismatch")
	ErrUnknownBackend = errors.New("fft2: unknown backend")
)

// Transformer computes forward and inverse 2D DFTs of a fixed shape.
type Transformer interface {
	// Forward writes the unnormalized 2D DFT of src into dst. dst and src
	// may alias.
	Forward(dst, src []complex128) error
	// Inverse writes the normalized inverse 2D DFT of src into dst. dst and
	// src may alias.
	Inverse(dst, src []complex128) error
	Rows() int
	Cols() int
}

// Cloner is implemented by Transformers that can copy themselves for use
// on another goroutine more cheaply than planning again.
type Cloner interface {
	Clone() Transformer
}

// Backend creates a Transformer for a rows×cols array.
type Backend func(rows, cols int) (Transformer, error)

// Default is the backend used when callers do not choose one.
var Default Backend = NewAlgoFFT

// Names of the registered backends accepted by ByName.
const (
	NameAlgoFFT = "algofft"
	NameGonum   = "gonum"
)

// ByName resolves a backend from its configuration name. An empty name
// selects Default.
func ByName(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Default, nil
	case NameAlgoFFT:
		return NewAlgoFFT, nil
	case NameGonum:
		return NewGonum, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %d×%d", ErrInvalidSize, rows, cols)
	}
	return nil
}

func checkLen(dst, src []complex128, n int) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: want %d, got dst %d src %d", ErrSizeMismatch, n, len(dst), len(src))
	}
	return nil
}
