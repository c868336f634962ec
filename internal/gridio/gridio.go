// Package gridio reads and writes grids as whitespace-separated columns,
// one sample per line, with x and y in the first two columns.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-gridderiv/grid"
)

// ErrFormat is returned for malformed column files.
var ErrFormat = errors.New("gridio: malformed grid file")

// Read parses nx*ny samples in row-major order. Column 0 is x, column 1 is
// y and column valueCol holds the field value. Blank lines and lines
// starting with '#' are skipped.
func Read(r io.Reader, nx, ny, valueCol int) (grid.Grid, error) {
	if valueCol < 2 {
		return grid.Grid{}, fmt.Errorf("%w: value column %d overlaps coordinates", ErrFormat, valueCol)
	}
	if nx < 1 || ny < 1 {
		return grid.Grid{}, fmt.Errorf("%w: shape (%d, %d)", grid.ErrInvalidGrid, nx, ny)
	}

	n := nx * ny
	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	data := make([]float64, 0, n)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) <= valueCol {
			return grid.Grid{}, fmt.Errorf("%w: line %d: %d columns, need %d", ErrFormat, line, len(fields), valueCol+1)
		}
		if len(data) == n {
			return grid.Grid{}, fmt.Errorf("%w: line %d: more than %d samples", ErrFormat, line, n)
		}

		var vals [3]float64
		for i, col := range [3]int{0, 1, valueCol} {
			v, err := strconv.ParseFloat(fields[col], 64)
			if err != nil {
				return grid.Grid{}, fmt.Errorf("%w: line %d column %d: %w", ErrFormat, line, col, err)
			}
			vals[i] = v
		}
		x = append(x, vals[0])
		y = append(y, vals[1])
		data = append(data, vals[2])
	}
	if err := sc.Err(); err != nil {
		return grid.Grid{}, fmt.Errorf("gridio: read: %w", err)
	}
	if len(data) != n {
		return grid.Grid{}, fmt.Errorf("%w: got %d samples, want %d", ErrFormat, len(data), n)
	}
	return grid.New(x, y, data, nx, ny)
}

// Write emits one line per sample of g: x, y and the matching element of
// every column. A non-empty header is written first as a '#' comment.
func Write(w io.Writer, g grid.Grid, header []string, cols ...[]float64) error {
	for i, c := range cols {
		if len(c) != len(g.X) {
			return fmt.Errorf("%w: column %d has %d values, grid has %d", ErrFormat, i, len(c), len(g.X))
		}
	}

	bw := bufio.NewWriter(w)
	if len(header) > 0 {
		fmt.Fprintf(bw, "# %s\n", strings.Join(header, " "))
	}
	buf := make([]byte, 0, 64)
	for i := range g.X {
		buf = strconv.AppendFloat(buf[:0], g.X[i], 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, g.Y[i], 'g', -1, 64)
		for _, c := range cols {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c[i], 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
