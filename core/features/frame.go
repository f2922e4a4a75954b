package features

import "gonum.org/v1/gonum/mat"

// Frame is a feature table with a fixed, ordered column set and one row per
// train. Data is stored column-major.
type Frame struct {
	IDs  []string
	Cols []string
	data [][]float64
}

func newFrame(ids []string, cols []string) *Frame {
	f := &Frame{IDs: ids, Cols: append([]string(nil), cols...)}
	f.data = make([][]float64, len(cols))
	for j := range f.data {
		f.data[j] = make([]float64, len(ids))
	}
	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.IDs) }

// Column returns the values of the named column, or nil if absent.
func (f *Frame) Column(name string) []float64 {
	for j, c := range f.Cols {
		if c == name {
			return f.data[j]
		}
	}
	return nil
}

// Row materializes row i in column order.
func (f *Frame) Row(i int) []float64 {
	row := make([]float64, len(f.Cols))
	for j := range f.Cols {
		row[j] = f.data[j][i]
	}
	return row
}

// Rows materializes the whole frame row-major.
func (f *Frame) Rows() [][]float64 {
	rows := make([][]float64, f.Len())
	for i := range rows {
		rows[i] = f.Row(i)
	}
	return rows
}

// Matrix returns the frame as a dense rows-by-columns matrix.
func (f *Frame) Matrix() *mat.Dense {
	if f.Len() == 0 || len(f.Cols) == 0 {
		return nil
	}
	m := mat.NewDense(f.Len(), len(f.Cols), nil)
	for j, col := range f.data {
		for i, v := range col {
			m.Set(i, j, v)
		}
	}
	return m
}

// Align reproduces the given column set and order: columns missing from the
// frame are zero-filled, extra columns are dropped, order follows cols. This
// is the cross-call invariant that keeps prediction inputs byte-compatible
// with whatever column set was recorded at training time.
func (f *Frame) Align(cols []string) *Frame {
	out := newFrame(f.IDs, cols)
	for j, name := range cols {
		if src := f.Column(name); src != nil {
			copy(out.data[j], src)
		}
	}
	return out
}
