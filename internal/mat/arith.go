package mat

import "fmt"

// Operand dispatch for the binary operators: a *Mat operand selects the
// matrix-matrix kernel, a Scalar the matrix-scalar kernel, and any Go
// numeric type is coerced to a single double applied uniformly to every
// channel. Anything else is rejected with ErrTypeMismatch.

type binFn func(x, y float64) float64

func addFn(x, y float64) float64 { return x + y }
func subFn(x, y float64) float64 { return x - y }
func mulFn(x, y float64) float64 { return x * y }

// divFnFor returns the division kernel for a depth. Integer division by zero
// yields zero; float division follows IEEE.
func divFnFor(d Depth) binFn {
	if d == F32 || d == F64 {
		return func(x, y float64) float64 { return x / y }
	}
	return func(x, y float64) float64 {
		if y == 0 {
			return 0
		}
		return x / y
	}
}

func absDiffFn(x, y float64) float64 {
	if x > y {
		return x - y
	}
	return y - x
}

// numericOperand coerces a plain Go number to float64.
func numericOperand(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// checkOperand validates m and, for a matrix operand, shape/type agreement.
func (m *Mat) checkOperands(op string, other *Mat) error {
	if m.IsEmpty() {
		return fmt.Errorf("%w: %s on empty matrix", ErrShapeMismatch, op)
	}
	if _, err := kindOf(m.elemType.Depth); err != nil {
		return err
	}
	if other != nil && !m.SameShape(other) {
		return fmt.Errorf("%w: %s %dx%d %s vs %dx%d %s", ErrShapeMismatch, op,
			m.rows, m.cols, m.elemType, other.rows, other.cols, other.elemType)
	}
	return nil
}

// binary runs one element-wise binary operation. When dst is nil a fresh
// output matrix is allocated; the in-place variants pass m itself. The
// output handle never escapes on a failure path.
func (m *Mat) binary(op string, operand any, fn binFn, dst *Mat) (*Mat, error) {
	switch v := operand.(type) {
	case *Mat:
		if err := m.checkOperands(op, v); err != nil {
			return nil, err
		}
		if dst == nil {
			var err error
			if dst, err = New(m.rows, m.cols, m.elemType); err != nil {
				return nil, err
			}
		}
		binaryMatKernel(dst, m, v, fn)
		return dst, nil
	case Scalar:
		if err := m.checkOperands(op, nil); err != nil {
			return nil, err
		}
		if dst == nil {
			var err error
			if dst, err = New(m.rows, m.cols, m.elemType); err != nil {
				return nil, err
			}
		}
		binaryScalarKernel(dst, m, v, fn)
		return dst, nil
	default:
		n, ok := numericOperand(operand)
		if !ok {
			return nil, fmt.Errorf("%w: %s operand %T", ErrTypeMismatch, op, operand)
		}
		if err := m.checkOperands(op, nil); err != nil {
			return nil, err
		}
		if dst == nil {
			var err error
			if dst, err = New(m.rows, m.cols, m.elemType); err != nil {
				return nil, err
			}
		}
		binaryScalarKernel(dst, m, ScalarAll(n), fn)
		return dst, nil
	}
}

// Add computes the per-element sum of the matrix and a matrix, scalar or
// number, returning a new matrix.
func (m *Mat) Add(operand any) (*Mat, error) {
	return m.binary("add", operand, addFn, nil)
}

// AddInPlace is Add writing the result back into m.
func (m *Mat) AddInPlace(operand any) error {
	_, err := m.binary("add", operand, addFn, m)
	return err
}

// Sub computes the per-element difference, returning a new matrix.
func (m *Mat) Sub(operand any) (*Mat, error) {
	return m.binary("sub", operand, subFn, nil)
}

// SubInPlace is Sub writing the result back into m.
func (m *Mat) SubInPlace(operand any) error {
	_, err := m.binary("sub", operand, subFn, m)
	return err
}

// Mul computes the per-element product, returning a new matrix.
func (m *Mat) Mul(operand any) (*Mat, error) {
	return m.binary("mul", operand, mulFn, nil)
}

// MulInPlace is Mul writing the result back into m.
func (m *Mat) MulInPlace(operand any) error {
	_, err := m.binary("mul", operand, mulFn, m)
	return err
}

// Div computes the per-element quotient, returning a new matrix. Integer
// division by zero yields zero.
func (m *Mat) Div(operand any) (*Mat, error) {
	return m.binary("div", operand, divFnFor(m.elemType.Depth), nil)
}

// DivInPlace is Div writing the result back into m.
func (m *Mat) DivInPlace(operand any) error {
	_, err := m.binary("div", operand, divFnFor(m.elemType.Depth), m)
	return err
}

// AbsDiff computes the per-element absolute difference between the matrix
// and another matrix or a scalar. Plain numbers are not accepted.
func (m *Mat) AbsDiff(operand any) (*Mat, error) {
	switch operand.(type) {
	case *Mat, Scalar:
		return m.binary("absdiff", operand, absDiffFn, nil)
	default:
		return nil, fmt.Errorf("%w: absdiff operand %T is neither *Mat nor Scalar", ErrTypeMismatch, operand)
	}
}

// Dot computes the dot product of two matrices of identical shape and type:
// the sum of component-wise products flattened over all elements and
// channels.
func (m *Mat) Dot(other *Mat) (float64, error) {
	if err := m.checkOperands("dot", other); err != nil {
		return 0, err
	}
	k := kinds[m.elemType.Depth]
	esz := m.elemType.ElemSize1()
	n := m.cols * m.elemType.Channels
	sum := 0.0
	for r := 0; r < m.rows; r++ {
		ra, rb := m.RowBytes(r), other.RowBytes(r)
		for i := 0; i < n; i++ {
			sum += k.read(ra[i*esz:]) * k.read(rb[i*esz:])
		}
	}
	return sum, nil
}

// Cross computes the cross product of two 3-component single-channel
// vectors, returning a vector of the same shape.
func (m *Mat) Cross(other *Mat) (*Mat, error) {
	if err := m.checkOperands("cross", other); err != nil {
		return nil, err
	}
	if m.Total() != 3 || m.elemType.Channels != 1 {
		return nil, fmt.Errorf("%w: cross requires 3-component vectors, got %dx%dC%d",
			ErrShapeMismatch, m.rows, m.cols, m.elemType.Channels)
	}
	dst, err := New(m.rows, m.cols, m.elemType)
	if err != nil {
		return nil, err
	}

	a := [3]float64{m.flatAt(0), m.flatAt(1), m.flatAt(2)}
	b := [3]float64{other.flatAt(0), other.flatAt(1), other.flatAt(2)}
	dst.flatSet(0, a[1]*b[2]-a[2]*b[1])
	dst.flatSet(1, a[2]*b[0]-a[0]*b[2])
	dst.flatSet(2, a[0]*b[1]-a[1]*b[0])
	return dst, nil
}

// MatMul computes the true matrix product of two single-channel matrices
// with compatible inner dimensions, accumulating in double precision.
func (m *Mat) MatMul(other *Mat) (*Mat, error) {
	if m.IsEmpty() || other.IsEmpty() {
		return nil, fmt.Errorf("%w: matmul on empty matrix", ErrShapeMismatch)
	}
	if m.elemType.Channels != 1 || other.elemType.Channels != 1 {
		return nil, fmt.Errorf("%w: matmul requires single-channel operands", ErrShapeMismatch)
	}
	if m.elemType.Depth != other.elemType.Depth {
		return nil, fmt.Errorf("%w: matmul %s vs %s", ErrShapeMismatch, m.elemType, other.elemType)
	}
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: matmul %dx%d by %dx%d", ErrShapeMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	dst, err := New(m.rows, other.cols, m.elemType)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			sum := 0.0
			for t := 0; t < m.cols; t++ {
				sum += m.At(i, t, 0) * other.At(t, j, 0)
			}
			dst.SetAt(i, j, 0, sum)
		}
	}
	return dst, nil
}

// flatAt reads component i of a single-channel matrix in row-major order.
func (m *Mat) flatAt(i int) float64 {
	return m.At(i/m.cols, i%m.cols, 0)
}

// flatSet writes component i of a single-channel matrix in row-major order.
func (m *Mat) flatSet(i int, v float64) {
	m.SetAt(i/m.cols, i%m.cols, 0, v)
}
