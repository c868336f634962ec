// Package deriv computes directional derivatives of a survey grid in the
// wavenumber domain.
//
// The grid is padded to a power-of-two square by edge replication,
// transformed once, multiplied by a per-direction operator, transformed
// back, and cropped to the original shape. Two operator families are
// provided:
//
//   - Non-regularized order n: (i·kx)^n, (i·ky)^n and |k|^n
//   - Regularized first order: i·kx/(1+α·kx²), i·ky/(1+α·ky²) and k/(1+α·k²)
//
// The regularized family damps high wavenumbers as 1/(α·k) instead of
// letting them grow, which limits noise amplification. At α = 0 it produces
// exactly the same operator values as the non-regularized first order.
//
// # Usage
//
// For a single derivative evaluation:
//
//	d, err := deriv.NonRegularized(g, 1)
//	r, err := deriv.RegularizedDerivatives(g, 1e4)
//
// When many α values are evaluated on the same grid, build an [Operator]
// once. It keeps the forward spectrum and is safe for concurrent use:
//
//	op, err := deriv.NewOperator(g)
//	for _, alpha := range alphas {
//	    d, err := op.Regularized(alpha)
//	    ...
//	}
package deriv
