package fft2

import (
	"strconv"
	"testing"
)

func BenchmarkForwardInverse(b *testing.B) {
	sizes := []int{64, 128, 256}
	for name, backend := range backends {
		for _, n := range sizes {
			tr, err := backend(n, n)
			if err != nil {
				b.Fatal(err)
			}
			buf := randomComplex(1, n*n)
			b.Run(name+"/"+strconv.Itoa(n), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(n * n * 16))

				for range b.N {
					_ = tr.Forward(buf, buf)
					_ = tr.Inverse(buf, buf)
				}
			})
		}
	}
}
