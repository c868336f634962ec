// Package sfunc evaluates S-functions: the normalized L2 norm of each
// regularized directional derivative as a function of the regularization
// parameter α.
//
// For a log-spaced sweep of trial α values the three curves fall from 1
// towards 0 in a staircase shape. The sloped part of each curve is where
// regularization starts to remove signal rather than noise, and is what
// the regparam package inverts to pick α.
//
// # Usage
//
//	alphas, _ := sfunc.LogSweep(-6, 14, 0.5)
//	op, _ := deriv.NewOperator(g)
//	curves, err := sfunc.Evaluate(ctx, op, alphas, sfunc.WithWorkers(4))
//
// Each trial value needs one inverse transform per direction. Trials are
// independent, so they run on a bounded set of goroutines; the output keeps
// the sweep order regardless of scheduling.
package sfunc
