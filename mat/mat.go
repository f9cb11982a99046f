// Copyright 2026 MatGo Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat provides the public API for dense 2-D matrices in MatGo.
//
// A Mat is a reference-counted handle over a pixel or numeric buffer:
//   - Mat: rows x cols matrix of multi-channel elements
//   - Depth, Type: element storage description (u8 .. f64, 1..512 channels)
//   - Scalar: four-lane float64 value used for per-element reads and writes
//   - Rect: rectangular region used to carve zero-copy views
//
// Example:
//
//	m, _ := mat.Zeros(480, 640, mat.U8C3)
//	defer m.Release()
//	_ = m.Set(0, 0, mat.NewScalar(255, 128, 0))
//	sum, _ := m.Add(10.0)
//	defer sum.Release()
package mat

import (
	"github.com/matgo-vision/matgo/internal/mat"
)

// Type aliases for public API

// Mat is a reference-counted dense 2-D matrix of multi-channel elements.
//
// Views created with NewRegion or Diag share the parent's buffer; Clone
// always produces an independent deep copy. Release decrements the
// buffer's reference count and empties the handle.
type Mat = mat.Mat

// Rect describes a rectangular region within a matrix, used to create
// zero-copy views.
type Rect = mat.Rect

// Depth identifies the per-channel storage type of a matrix element.
type Depth = mat.Depth

// Depth constants.
const (
	U8  Depth = mat.U8  // unsigned 8-bit
	S8  Depth = mat.S8  // signed 8-bit
	U16 Depth = mat.U16 // unsigned 16-bit
	S16 Depth = mat.S16 // signed 16-bit
	S32 Depth = mat.S32 // signed 32-bit
	F32 Depth = mat.F32 // 32-bit float
	F64 Depth = mat.F64 // 64-bit float
)

// MaxChannels is the largest channel count a Type may carry.
const MaxChannels = mat.MaxChannels

// ScalarChannels is the number of lanes in a Scalar.
const ScalarChannels = mat.ScalarChannels

// Type pairs a Depth with a channel count, fully describing an element.
type Type = mat.Type

// Common element types.
var (
	U8C1  = mat.U8C1
	U8C2  = mat.U8C2
	U8C3  = mat.U8C3
	U8C4  = mat.U8C4
	S8C1  = mat.S8C1
	S8C3  = mat.S8C3
	U16C1 = mat.U16C1
	U16C3 = mat.U16C3
	S16C1 = mat.S16C1
	S16C3 = mat.S16C3
	S32C1 = mat.S32C1
	S32C3 = mat.S32C3
	F32C1 = mat.F32C1
	F32C2 = mat.F32C2
	F32C3 = mat.F32C3
	F64C1 = mat.F64C1
	F64C3 = mat.F64C3
	F64C4 = mat.F64C4
)

// Scalar is a fixed four-lane float64 value. Reads fill unused lanes
// with zero; writes ignore lanes beyond the matrix's channel count.
type Scalar = mat.Scalar

// Sentinel errors. Operations wrap these with %w, so errors.Is works
// across the module.
var (
	ErrAllocation       = mat.ErrAllocation
	ErrOutOfRange       = mat.ErrOutOfRange
	ErrUnsupportedDepth = mat.ErrUnsupportedDepth
	ErrTypeMismatch     = mat.ErrTypeMismatch
	ErrShapeMismatch    = mat.ErrShapeMismatch
	ErrDecode           = mat.ErrDecode
	ErrEncode           = mat.ErrEncode
	ErrIO               = mat.ErrIO
)

// MakeType builds a Type from a depth and channel count. The result may
// be invalid; Type.Valid reports whether it is usable.
func MakeType(d Depth, channels int) Type {
	return mat.MakeType(d, channels)
}

// NewScalar builds a Scalar from up to four values; missing lanes are
// zero.
func NewScalar(vs ...float64) Scalar {
	return mat.NewScalar(vs...)
}

// ScalarAll returns a Scalar with every lane set to v.
func ScalarAll(v float64) Scalar {
	return mat.ScalarAll(v)
}

// New allocates a zero-initialized rows x cols matrix of the given type.
// rows or cols of zero yields an empty matrix; negative sizes fail with
// ErrAllocation.
func New(rows, cols int, t Type) (*Mat, error) {
	return mat.New(rows, cols, t)
}

// NewRegion creates a view over a rectangular region of parent. The view
// shares the parent's buffer; writes through either handle are visible
// in both.
func NewRegion(parent *Mat, r Rect) (*Mat, error) {
	return mat.NewRegion(parent, r)
}

// Zeros allocates a matrix with every channel of every element set to 0.
func Zeros(rows, cols int, t Type) (*Mat, error) {
	return mat.Zeros(rows, cols, t)
}

// Ones allocates a matrix with every channel of every element set to 1.
func Ones(rows, cols int, t Type) (*Mat, error) {
	return mat.Ones(rows, cols, t)
}

// Eye allocates a matrix with ones on the main diagonal and zeros
// elsewhere.
func Eye(rows, cols int, t Type) (*Mat, error) {
	return mat.Eye(rows, cols, t)
}

// FromFloats builds a matrix from row-major channel-interleaved data.
// len(data) must equal rows*cols*t.Channels.
func FromFloats(data []float64, rows, cols int, t Type) (*Mat, error) {
	return mat.FromFloats(data, rows, cols, t)
}

// SetIdentity writes s (default 1) along m's main diagonal, leaving
// every other element untouched.
func SetIdentity(m *Mat, s ...Scalar) error {
	v := mat.ScalarAll(1)
	if len(s) > 0 {
		v = s[0]
	}
	return m.SetIdentity(v)
}

// Merge interleaves single-channel planes of identical shape and depth
// into one multi-channel matrix.
func Merge(mv []*Mat) (*Mat, error) {
	return mat.Merge(mv)
}

// HConcat concatenates matrices left to right. All inputs must share
// rows and element type.
func HConcat(mv []*Mat) (*Mat, error) {
	return mat.HConcat(mv)
}

// VConcat concatenates matrices top to bottom. All inputs must share
// cols and element type.
func VConcat(mv []*Mat) (*Mat, error) {
	return mat.VConcat(mv)
}
