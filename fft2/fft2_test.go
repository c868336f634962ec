package fft2

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"github.com/cwbudde/algo-gridderiv/internal/testutil"
)

var backends = map[string]Backend{
	NameAlgoFFT: NewAlgoFFT,
	NameGonum:   NewGonum,
}

func naiveDFT2(src []complex128, rows, cols int) []complex128 {
	out := make([]complex128, rows*cols)
	for u := range rows {
		for v := range cols {
			var sum complex128
			for r := range rows {
				for c := range cols {
					phase := -2 * math.Pi * (float64(u*r)/float64(rows) + float64(v*c)/float64(cols))
					sum += src[r*cols+c] * cmplx.Exp(complex(0, phase))
				}
			}
			out[u*cols+v] = sum
		}
	}
	return out
}

func randomComplex(seed int64, n int) []complex128 {
	re := testutil.DeterministicNoise(seed, 1, n)
	im := testutil.DeterministicNoise(seed+1, 1, n)
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out
}

func maxComplexDiff(a, b []complex128) float64 {
	d := 0.0
	for i := range a {
		d = math.Max(d, cmplx.Abs(a[i]-b[i]))
	}
	return d
}

func TestForwardMatchesNaiveDFT(t *testing.T) {
	shapes := [][2]int{{4, 4}, {4, 8}, {8, 4}, {16, 16}}
	for name, backend := range backends {
		for _, s := range shapes {
			rows, cols := s[0], s[1]
			tr, err := backend(rows, cols)
			if err != nil {
				t.Fatalf("%s: backend(%d, %d): %v", name, rows, cols, err)
			}
			if tr.Rows() != rows || tr.Cols() != cols {
				t.Fatalf("%s: shape = %d×%d", name, tr.Rows(), tr.Cols())
			}

			src := randomComplex(int64(rows*cols), rows*cols)
			got := make([]complex128, len(src))
			if err := tr.Forward(got, src); err != nil {
				t.Fatalf("%s: Forward: %v", name, err)
			}
			want := naiveDFT2(src, rows, cols)
			if d := maxComplexDiff(got, want); d > 1e-9 {
				t.Fatalf("%s %d×%d: max diff %v", name, rows, cols, d)
			}
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	for name, backend := range backends {
		tr, err := backend(8, 16)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		src := randomComplex(3, 8*16)
		buf := make([]complex128, len(src))
		if err := tr.Forward(buf, src); err != nil {
			t.Fatalf("%s: Forward: %v", name, err)
		}
		// In-place inverse.
		if err := tr.Inverse(buf, buf); err != nil {
			t.Fatalf("%s: Inverse: %v", name, err)
		}
		if d := maxComplexDiff(buf, src); d > 1e-12 {
			t.Fatalf("%s: round trip max diff %v", name, d)
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	src := randomComplex(11, 32*32)
	a, err := NewAlgoFFT(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGonum(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	fa := make([]complex128, len(src))
	fg := make([]complex128, len(src))
	if err := a.Forward(fa, src); err != nil {
		t.Fatal(err)
	}
	if err := g.Forward(fg, src); err != nil {
		t.Fatal(err)
	}
	if d := maxComplexDiff(fa, fg); d > 1e-9 {
		t.Fatalf("backends disagree by %v", d)
	}
}

func TestSizeErrors(t *testing.T) {
	for name, backend := range backends {
		if _, err := backend(0, 4); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("%s: err = %v, want ErrInvalidSize", name, err)
		}
		tr, err := backend(4, 4)
		if err != nil {
			t.Fatal(err)
		}
		if err := tr.Forward(make([]complex128, 16), make([]complex128, 15)); !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("%s: err = %v, want ErrSizeMismatch", name, err)
		}
		if err := tr.Inverse(make([]complex128, 8), make([]complex128, 16)); !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("%s: err = %v, want ErrSizeMismatch", name, err)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "algofft", "GONUM", " gonum "} {
		b, err := ByName(name)
		if err != nil || b == nil {
			t.Fatalf("ByName(%q) = %v", name, err)
		}
	}
	if _, err := ByName("fftw"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestAlgoFFTCloneIsIndependent(t *testing.T) {
	tr, err := NewAlgoFFT(16, 8)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := tr.(Cloner)
	if !ok {
		t.Fatal("AlgoFFT does not implement Cloner")
	}
	clone := c.Clone()
	if clone.Rows() != 16 || clone.Cols() != 8 {
		t.Fatalf("clone shape = %d×%d", clone.Rows(), clone.Cols())
	}

	src := randomComplex(5, 16*8)
	want := make([]complex128, len(src))
	if err := tr.Forward(want, src); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	got := make([][]complex128, 4)
	errs := make([]error, len(got))
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			own := c.Clone()
			got[i] = make([]complex128, len(src))
			errs[i] = own.Forward(got[i], src)
		}()
	}
	wg.Wait()
	for i := range got {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		if d := maxComplexDiff(got[i], want); d != 0 {
			t.Fatalf("clone %d differs by %v", i, d)
		}
	}
}
