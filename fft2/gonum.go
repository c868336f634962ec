package fft2

import "gonum.org/v1/gonum/dsp/fourier"

// Gonum is a Transformer built on gonum's complex FFT.
type Gonum struct {
	rows, cols int
	rowFFT     *fourier.CmplxFFT
	colFFT     *fourier.CmplxFFT
	col        []complex128
}

// NewGonum creates a gonum Transformer for a rows×cols array.
func NewGonum(rows, cols int) (Transformer, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	rowFFT := fourier.NewCmplxFFT(cols)
	colFFT := rowFFT
	if rows != cols {
		colFFT = fourier.NewCmplxFFT(rows)
	}
	return &Gonum{
		rows:   rows,
		cols:   cols,
		rowFFT: rowFFT,
		colFFT: colFFT,
		col:    make([]complex128, rows),
	}, nil
}

// Rows returns the number of rows.
func (g *Gonum) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Gonum) Cols() int { return g.cols }

// Forward computes the unnormalized 2D DFT.
func (g *Gonum) Forward(dst, src []complex128) error {
	if err := checkLen(dst, src, g.rows*g.cols); err != nil {
		return err
	}
	copy(dst, src)
	return passes(dst, g.col, g.rows, g.cols,
		func(x []complex128) error { g.rowFFT.Coefficients(x, x); return nil },
		func(x []complex128) error { g.colFFT.Coefficients(x, x); return nil },
	)
}

// Inverse computes the inverse 2D DFT. gonum's Sequence is unnormalized,
// so the result is scaled by 1/(rows*cols).
func (g *Gonum) Inverse(dst, src []complex128) error {
	if err := checkLen(dst, src, g.rows*g.cols); err != nil {
		return err
	}
	copy(dst, src)
	err := passes(dst, g.col, g.rows, g.cols,
		func(x []complex128) error { g.rowFFT.Sequence(x, x); return nil },
		func(x []complex128) error { g.colFFT.Sequence(x, x); return nil },
	)
	if err != nil {
		return err
	}
	scale := complex(1/float64(g.rows*g.cols), 0)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}

// passes runs a 1D transform over every row and then every column of
// data, in place. col is scratch of length rows.
func passes(data, col []complex128, rows, cols int, row1D, col1D func([]complex128) error) error {
	for r := range rows {
		if err := row1D(data[r*cols : (r+1)*cols]); err != nil {
			return err
		}
	}
	for c := range cols {
		for r := range rows {
			col[r] = data[r*cols+c]
		}
		if err := col1D(col); err != nil {
			return err
		}
		for r := range rows {
			data[r*cols+c] = col[r]
		}
	}
	return nil
}
