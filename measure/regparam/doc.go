// Package regparam selects a regularization parameter from an S-function.
//
// The caller names a window [Lower, Upper] of response values where the
// S-function is close to linear, and a target response v inside it. Points
// whose response, rounded to one decimal, falls in the window are fitted
// with an ordinary least-squares line norm = a·α + b against the raw α
// values, and the line is inverted at v. The result is reported as the
// base-10 exponent log10(α*); use [Alpha] to get α back.
//
// Fitting against raw α rather than log α is part of the method and is
// kept as is, even though trial values usually span many decades.
package regparam
