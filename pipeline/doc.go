// Package pipeline runs the full regularization-parameter workflow on one
// grid: non-regularized first derivatives, the S-function sweep, parameter
// selection for every configured target and the regularized derivatives at
// each selected parameter.
//
// # Usage
//
//	cfg := pipeline.DefaultConfig()
//	report, err := pipeline.Run(ctx, g, cfg)
//	if err != nil {
//		return err
//	}
//	for _, t := range report.Targets {
//		if t.OK() {
//			fmt.Println(t.Selection.Target.Value, t.Selection.Alpha())
//		}
//	}
//
// A target that cannot be resolved is recorded with its error in
// [TargetResult.Err]; it never aborts the run. Progress is logged through
// [Logf], which [SetLogger] can redirect or mute.
package pipeline
