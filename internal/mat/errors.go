package mat

import "errors"

// Sentinel errors returned by all public operations. Callers match them with
// errors.Is; call sites that add context wrap with fmt.Errorf("...: %w", Err).
var (
	// ErrAllocation is returned when a buffer allocation fails or the
	// requested size overflows.
	ErrAllocation = errors.New("mat: allocation failed")

	// ErrOutOfRange is returned when an element index or a region rectangle
	// lies outside the matrix extent.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrUnsupportedDepth is returned when a handle's depth tag is not one
	// of the seven supported kinds.
	ErrUnsupportedDepth = errors.New("mat: unsupported depth")

	// ErrTypeMismatch is returned when an operand is not a matrix, scalar
	// or number where one of those was required.
	ErrTypeMismatch = errors.New("mat: operand type mismatch")

	// ErrShapeMismatch is returned on dimension or channel incompatibility
	// between operands.
	ErrShapeMismatch = errors.New("mat: shape mismatch")

	// ErrDecode is returned when the codec cannot recognize a byte stream.
	ErrDecode = errors.New("mat: image decode failed")

	// ErrEncode is returned on an unsupported extension or invalid encoder
	// parameter list.
	ErrEncode = errors.New("mat: image encode failed")

	// ErrIO is returned when an image file cannot be read or written.
	ErrIO = errors.New("mat: image i/o failed")
)
