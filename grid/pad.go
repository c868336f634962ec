package grid

import "fmt"

// Padded is an N×N row-major copy of a grid extended by edge replication.
// PadX and PadY are the leading offsets of the original samples.
type Padded struct {
	Data []float64
	N    int
	PadX int
	PadY int
	NX   int
	NY   int
}

// Pad extends data (shape nx×ny, row-major) to the next power-of-two square
// by replicating edge values. The leading pad along each axis is
// (n-size)/2; the trailing pad takes the remainder, so when n-size is odd
// the trailing side gets one extra row or column.
func Pad(data []float64, nx, ny int) (Padded, error) {
	if nx < 1 || ny < 1 {
		return Padded{}, fmt.Errorf("%w: shape (%d, %d) must be positive", ErrInvalidGrid, nx, ny)
	}
	if len(data) != nx*ny {
		return Padded{}, fmt.Errorf("%w: data length %d does not match shape (%d, %d)", ErrInvalidGrid, len(data), nx, ny)
	}

	n := NextPowerOfTwo(max(nx, ny))
	p := Padded{
		Data: make([]float64, n*n),
		N:    n,
		PadX: (n - nx) / 2,
		PadY: (n - ny) / 2,
		NX:   nx,
		NY:   ny,
	}

	for i := range n {
		src := clampIndex(i-p.PadX, nx) * ny
		row := p.Data[i*n : (i+1)*n]
		for j := range n {
			row[j] = data[src+clampIndex(j-p.PadY, ny)]
		}
	}
	return p, nil
}

// Crop returns the original nx×ny samples as a new flat slice.
func (p Padded) Crop() []float64 {
	return p.CropFrom(p.Data)
}

// CropFrom extracts the original window from any N×N row-major slice laid
// out like p.Data, such as a filtered copy of it.
func (p Padded) CropFrom(src []float64) []float64 {
	out := make([]float64, p.NX*p.NY)
	p.CropInto(out, src)
	return out
}

// CropInto writes the original window of src into dst, which must hold
// NX*NY values.
func (p Padded) CropInto(dst, src []float64) {
	for i := range p.NX {
		off := p.RowOffset(i)
		copy(dst[i*p.NY:(i+1)*p.NY], src[off:off+p.NY])
	}
}

// RowOffset returns the index in the N×N array of the first sample of
// original row i. Row i occupies [RowOffset(i), RowOffset(i)+NY).
func (p Padded) RowOffset(i int) int {
	return (i+p.PadX)*p.N + p.PadY
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
