package mat

import "fmt"

// checkMask validates an optional operation mask: an 8-bit single-channel
// matrix of the same size as m, selecting the elements the bitwise kernels
// may touch.
func (m *Mat) checkMask(op string, mask *Mat) error {
	if mask == nil {
		return nil
	}
	if mask.elemType.Depth != U8 || mask.elemType.Channels != 1 {
		return fmt.Errorf("%w: %s mask must be u8C1, got %s", ErrShapeMismatch, op, mask.elemType)
	}
	if mask.rows != m.rows || mask.cols != m.cols {
		return fmt.Errorf("%w: %s mask %dx%d for %dx%d matrix", ErrShapeMismatch, op,
			mask.rows, mask.cols, m.rows, m.cols)
	}
	return nil
}

// scalarElem converts the tuple to one element's raw bytes in m's type,
// saturating each component. Used to feed scalar operands to the byte-level
// bitwise kernels.
func (m *Mat) scalarElem(s Scalar) []byte {
	k := kinds[m.elemType.Depth]
	esz := m.elemType.ElemSize1()
	out := make([]byte, m.elemType.ElemSize())
	for c := 0; c < m.elemType.Channels; c++ {
		var sv float64
		if c < ScalarChannels {
			sv = s[c]
		}
		k.writeSat(out[c*esz:], sv)
	}
	return out
}

// bitwise runs one masked bitwise operation against a matrix, scalar or
// numeric operand. Masked-out elements keep the fresh output's zero value.
func (m *Mat) bitwise(op string, operand any, mask *Mat, fn byteOp) (*Mat, error) {
	if err := m.checkMask(op, mask); err != nil {
		return nil, err
	}
	switch v := operand.(type) {
	case *Mat:
		if err := m.checkOperands(op, v); err != nil {
			return nil, err
		}
		dst, err := New(m.rows, m.cols, m.elemType)
		if err != nil {
			return nil, err
		}
		bitwiseMatKernel(dst, m, v, mask, fn)
		return dst, nil
	case Scalar:
		if err := m.checkOperands(op, nil); err != nil {
			return nil, err
		}
		dst, err := New(m.rows, m.cols, m.elemType)
		if err != nil {
			return nil, err
		}
		bitwiseScalarKernel(dst, m, m.scalarElem(v), mask, fn)
		return dst, nil
	default:
		n, ok := numericOperand(operand)
		if !ok {
			return nil, fmt.Errorf("%w: %s operand %T", ErrTypeMismatch, op, operand)
		}
		return m.bitwise(op, ScalarAll(n), mask, fn)
	}
}

// BitwiseAnd computes the per-element bitwise conjunction with a matrix or
// scalar. mask may be nil.
func (m *Mat) BitwiseAnd(operand any, mask *Mat) (*Mat, error) {
	return m.bitwise("bitwise_and", operand, mask, andBytes)
}

// BitwiseOr computes the per-element bitwise disjunction with a matrix or
// scalar. mask may be nil.
func (m *Mat) BitwiseOr(operand any, mask *Mat) (*Mat, error) {
	return m.bitwise("bitwise_or", operand, mask, orBytes)
}

// BitwiseXor computes the per-element bitwise exclusive-or with a matrix or
// scalar. mask may be nil.
func (m *Mat) BitwiseXor(operand any, mask *Mat) (*Mat, error) {
	return m.bitwise("bitwise_xor", operand, mask, xorBytes)
}

// BitwiseNot inverts every bit of the matrix elements. mask may be nil.
func (m *Mat) BitwiseNot(mask *Mat) (*Mat, error) {
	if err := m.checkOperands("bitwise_not", nil); err != nil {
		return nil, err
	}
	if err := m.checkMask("bitwise_not", mask); err != nil {
		return nil, err
	}
	dst, err := New(m.rows, m.cols, m.elemType)
	if err != nil {
		return nil, err
	}
	bitwiseNotKernel(dst, m, mask)
	return dst, nil
}
