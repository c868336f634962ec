package sfunc_test

import (
	"fmt"

	"github.com/cwbudde/algo-gridderiv/measure/sfunc"
)

func ExampleLogSweep() {
	alphas, err := sfunc.LogSweep(-1, 1, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, a := range alphas {
		fmt.Printf("%.4g ", a)
	}
	fmt.Println()

	// Output:
	// 0.1 0.3162 1 3.162 10
}

func ExampleNormalize() {
	c, _ := sfunc.Normalize([]float64{4, 2, 1})
	fmt.Println(c)

	// Output:
	// [1 0.5 0.25]
}
