package sfunc

import (
	"fmt"
	"math"
)

// Exponents returns start, start+step, ... up to and including stop (within
// a small tolerance for accumulated rounding).
func Exponents(start, stop, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) || math.IsNaN(start) || math.IsNaN(stop) || stop < start {
		return nil, fmt.Errorf("%w: start %v stop %v step %v", ErrInvalidConfig, start, stop, step)
	}
	count := int(math.Floor((stop-start)/step+1e-9)) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

// LogSweep returns 10^e for every exponent from Exponents(start, stop, step).
func LogSweep(start, stop, step float64) ([]float64, error) {
	exps, err := Exponents(start, stop, step)
	if err != nil {
		return nil, err
	}
	for i, e := range exps {
		exps[i] = math.Pow(10, e)
	}
	return exps, nil
}
