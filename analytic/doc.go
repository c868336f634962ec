// Package analytic combines directional derivatives into the analytic
// signal amplitude (ASA) and the tilt derivative (TDR).
//
// Both are pointwise transforms and do not care how the derivatives were
// produced. ASA is always non-negative; TDR lies in (-π/2, π/2] because
// the horizontal magnitude it is measured against is never negative.
package analytic
