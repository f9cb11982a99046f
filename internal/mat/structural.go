package mat

import "fmt"

// Diag returns a view of the matrix diagonal selected by d: 0 is the main
// diagonal, positive values pick diagonals below it, negative values above.
// The view is a single-column matrix sharing the buffer; no data is copied.
func (m *Mat) Diag(d int) (*Mat, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("%w: diag of empty matrix", ErrOutOfRange)
	}
	var n, offset int
	esz := m.elemType.ElemSize()
	switch {
	case d >= 0:
		n = minInt(m.rows-d, m.cols)
		offset = m.offset + d*m.step
	default:
		n = minInt(m.rows, m.cols+d)
		offset = m.offset - d*esz
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: diagonal %d of %dx%d matrix", ErrOutOfRange, d, m.rows, m.cols)
	}
	// Stepping one row plus one column walks the diagonal.
	return m.shareHeader(n, 1, m.step+esz, offset, m.elemType), nil
}

// Split divides the matrix into its channel planes: one single-channel
// matrix per channel, each with a fresh buffer.
func (m *Mat) Split() ([]*Mat, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("%w: split of empty matrix", ErrShapeMismatch)
	}
	if _, err := kindOf(m.elemType.Depth); err != nil {
		return nil, err
	}

	k := kinds[m.elemType.Depth]
	esz := m.elemType.ElemSize1()
	ch := m.elemType.Channels
	planes := make([]*Mat, ch)
	for c := range planes {
		p, err := New(m.rows, m.cols, m.elemType.WithChannels(1))
		if err != nil {
			releaseAll(planes[:c])
			return nil, err
		}
		planes[c] = p
	}
	for r := 0; r < m.rows; r++ {
		src := m.RowBytes(r)
		for c := 0; c < m.cols; c++ {
			for j := 0; j < ch; j++ {
				k.write(planes[j].RowBytes(r)[c*esz:], k.read(src[(c*ch+j)*esz:]))
			}
		}
	}
	return planes, nil
}

// Merge interleaves the channels of several same-shape, same-depth matrices
// into one matrix whose channel count is the sum of the inputs'.
func Merge(mv []*Mat) (*Mat, error) {
	if len(mv) == 0 {
		return nil, fmt.Errorf("%w: merge of no matrices", ErrShapeMismatch)
	}
	first := mv[0]
	if first.IsEmpty() {
		return nil, fmt.Errorf("%w: merge of empty matrix", ErrShapeMismatch)
	}
	totalCh := 0
	for i, m := range mv {
		if m.IsEmpty() || m.rows != first.rows || m.cols != first.cols ||
			m.elemType.Depth != first.elemType.Depth {
			return nil, fmt.Errorf("%w: merge input %d does not match %dx%d %s",
				ErrShapeMismatch, i, first.rows, first.cols, first.elemType.Depth)
		}
		totalCh += m.elemType.Channels
	}
	if totalCh > MaxChannels {
		return nil, fmt.Errorf("%w: merged channel count %d", ErrShapeMismatch, totalCh)
	}

	dst, err := New(first.rows, first.cols, first.elemType.WithChannels(totalCh))
	if err != nil {
		return nil, err
	}
	k := kinds[first.elemType.Depth]
	esz := first.elemType.ElemSize1()
	for r := 0; r < dst.rows; r++ {
		out := dst.RowBytes(r)
		for c := 0; c < dst.cols; c++ {
			j := 0
			for _, m := range mv {
				src := m.RowBytes(r)
				mch := m.elemType.Channels
				for s := 0; s < mch; s++ {
					k.write(out[(c*totalCh+j)*esz:], k.read(src[(c*mch+s)*esz:]))
					j++
				}
			}
		}
	}
	return dst, nil
}

// HConcat concatenates the matrices left to right. All inputs must share
// rows and element type.
func HConcat(mv []*Mat) (*Mat, error) {
	return concat(mv, true)
}

// VConcat concatenates the matrices top to bottom. All inputs must share
// cols and element type.
func VConcat(mv []*Mat) (*Mat, error) {
	return concat(mv, false)
}

func concat(mv []*Mat, horizontal bool) (*Mat, error) {
	op := "vconcat"
	if horizontal {
		op = "hconcat"
	}
	if len(mv) == 0 {
		return nil, fmt.Errorf("%w: %s of no matrices", ErrShapeMismatch, op)
	}
	first := mv[0]
	if first.IsEmpty() {
		return nil, fmt.Errorf("%w: %s of empty matrix", ErrShapeMismatch, op)
	}
	rows, cols := first.rows, first.cols
	for i, m := range mv[1:] {
		if m.IsEmpty() || m.elemType != first.elemType {
			return nil, fmt.Errorf("%w: %s input %d type %s vs %s", ErrShapeMismatch, op, i+1, m.elemType, first.elemType)
		}
		if horizontal {
			if m.rows != first.rows {
				return nil, fmt.Errorf("%w: %s input %d has %d rows, want %d", ErrShapeMismatch, op, i+1, m.rows, first.rows)
			}
			cols += m.cols
		} else {
			if m.cols != first.cols {
				return nil, fmt.Errorf("%w: %s input %d has %d cols, want %d", ErrShapeMismatch, op, i+1, m.cols, first.cols)
			}
			rows += m.rows
		}
	}

	dst, err := New(rows, cols, first.elemType)
	if err != nil {
		return nil, err
	}
	esz := first.elemType.ElemSize()
	if horizontal {
		for r := 0; r < rows; r++ {
			out := dst.RowBytes(r)
			x := 0
			for _, m := range mv {
				copy(out[x*esz:], m.RowBytes(r))
				x += m.cols
			}
		}
	} else {
		y := 0
		for _, m := range mv {
			for r := 0; r < m.rows; r++ {
				copy(dst.RowBytes(y), m.RowBytes(r))
				y++
			}
		}
	}
	return dst, nil
}

// releaseAll releases every handle in ms; used to unwind partially built
// result sets on failure paths.
func releaseAll(ms []*Mat) {
	for _, m := range ms {
		m.Release()
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
