// Package fft2 provides two-dimensional complex FFTs behind a small
// capability interface so spectral code does not depend on a particular
// numerical backend.
//
// Data is row-major: element (r, c) of a rows×cols array lives at
// index r*cols+c.
//
// Forward transforms are unnormalized; Inverse divides by rows*cols, so
// Inverse(Forward(x)) reproduces x.
//
// # Backends
//
//   - [NewAlgoFFT]: 2D plans from github.com/MeKo-Christian/algo-fft (default)
//   - [NewGonum]: gonum.org/v1/gonum/dsp/fourier, as 1D transforms over
//     every row followed by every column
//
// A [Transformer] keeps scratch state and is not safe for concurrent use.
// Create one per goroutine, pool them, or copy one through [Cloner] when
// the backend supports it.
package fft2
