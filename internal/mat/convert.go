package mat

import "fmt"

// ConvertTo converts the matrix to another depth with optional scaling:
// dst = src*alpha + beta, saturated to the requested depth. A negative depth
// keeps the current one. The channel count is unchanged.
func (m *Mat) ConvertTo(depth Depth, alpha, beta float64) (*Mat, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("%w: convert_to on empty matrix", ErrShapeMismatch)
	}
	if depth < 0 {
		depth = m.elemType.Depth
	}
	if _, err := kindOf(depth); err != nil {
		return nil, err
	}
	if _, err := kindOf(m.elemType.Depth); err != nil {
		return nil, err
	}
	dst, err := New(m.rows, m.cols, m.elemType.WithDepth(depth))
	if err != nil {
		return nil, err
	}
	convertKernel(dst, m, alpha, beta, false)
	return dst, nil
}

// ConvertScaleAbs scales the matrix, takes absolute values and converts the
// result to 8-bit unsigned: dst = saturate_u8(|src*alpha + beta|). The
// output depth is always U8, matching the wrapped library.
func (m *Mat) ConvertScaleAbs(alpha, beta float64) (*Mat, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("%w: convert_scale_abs on empty matrix", ErrShapeMismatch)
	}
	if _, err := kindOf(m.elemType.Depth); err != nil {
		return nil, err
	}
	dst, err := New(m.rows, m.cols, m.elemType.WithDepth(U8))
	if err != nil {
		return nil, err
	}
	convertKernel(dst, m, alpha, beta, true)
	return dst, nil
}

// AddWeighted computes the weighted sum dst = m*alpha + src2*beta + gamma.
// A negative depth keeps m's depth; otherwise the output is converted to the
// requested one. The operands must share shape and type.
func (m *Mat) AddWeighted(src2 *Mat, alpha, beta, gamma float64, depth Depth) (*Mat, error) {
	if err := m.checkOperands("add_weighted", src2); err != nil {
		return nil, err
	}
	if depth < 0 {
		depth = m.elemType.Depth
	}
	if _, err := kindOf(depth); err != nil {
		return nil, err
	}
	dst, err := New(m.rows, m.cols, m.elemType.WithDepth(depth))
	if err != nil {
		return nil, err
	}
	weightedKernel(dst, m, src2, alpha, beta, gamma)
	return dst, nil
}

// SetTo assigns the scalar to all elements, or to the elements selected by
// the mask, in place, and returns m.
func (m *Mat) SetTo(s Scalar, mask *Mat) (*Mat, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("%w: set_to on empty matrix", ErrShapeMismatch)
	}
	if _, err := kindOf(m.elemType.Depth); err != nil {
		return nil, err
	}
	if err := m.checkMask("set_to", mask); err != nil {
		return nil, err
	}
	fillKernel(m, s, mask)
	return m, nil
}

// SetIdentity sets the main diagonal to the scalar and leaves the rest of
// the matrix untouched, mutating m in place.
func (m *Mat) SetIdentity(s Scalar) error {
	if m.IsEmpty() {
		return fmt.Errorf("%w: set_identity on empty matrix", ErrShapeMismatch)
	}
	if _, err := kindOf(m.elemType.Depth); err != nil {
		return err
	}
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	k := kinds[m.elemType.Depth]
	esz := m.elemType.ElemSize1()
	ch := m.elemType.Channels
	for i := 0; i < n; i++ {
		b := m.buffer.data[m.elemOffset(i, i):]
		for c := 0; c < ch; c++ {
			var sv float64
			if c < ScalarChannels {
				sv = s[c]
			}
			k.writeSat(b[c*esz:], sv)
		}
	}
	return nil
}
