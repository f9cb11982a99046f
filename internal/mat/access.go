package mat

import (
	"encoding/binary"
	"fmt"
	"math"
)

// numKind is the single runtime type-dispatch surface of the package. Every
// element-level read or write, checked or not, goes through one of its seven
// implementations; higher-level operations never re-switch on depth for
// component access.
type numKind interface {
	// read converts the component at the start of b to double precision.
	read(b []byte) float64
	// write narrows v to the storage kind C-style: truncation toward zero,
	// then integer wraparound. Mirrors the wrapped library's element writes.
	write(b []byte, v float64)
	// writeSat narrows v with saturation (round, then clamp), the contract
	// of the bulk conversion kernels.
	writeSat(b []byte, v float64)
}

var kinds = [...]numKind{
	U8:  u8Kind{},
	S8:  s8Kind{},
	U16: u16Kind{},
	S16: s16Kind{},
	S32: s32Kind{},
	F32: f32Kind{},
	F64: f64Kind{},
}

// kindOf returns the accessor for d, or ErrUnsupportedDepth.
func kindOf(d Depth) (numKind, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: depth %d", ErrUnsupportedDepth, int(d))
	}
	return kinds[d], nil
}

type u8Kind struct{}

func (u8Kind) read(b []byte) float64      { return float64(b[0]) }
func (u8Kind) write(b []byte, v float64)  { b[0] = uint8(int64(v)) }
func (u8Kind) writeSat(b []byte, v float64) {
	b[0] = uint8(clampRound(v, 0, math.MaxUint8))
}

type s8Kind struct{}

func (s8Kind) read(b []byte) float64     { return float64(int8(b[0])) }
func (s8Kind) write(b []byte, v float64) { b[0] = byte(int8(int64(v))) }
func (s8Kind) writeSat(b []byte, v float64) {
	b[0] = byte(int8(clampRound(v, math.MinInt8, math.MaxInt8)))
}

type u16Kind struct{}

func (u16Kind) read(b []byte) float64 {
	return float64(binary.LittleEndian.Uint16(b))
}
func (u16Kind) write(b []byte, v float64) {
	binary.LittleEndian.PutUint16(b, uint16(int64(v)))
}
func (u16Kind) writeSat(b []byte, v float64) {
	binary.LittleEndian.PutUint16(b, uint16(clampRound(v, 0, math.MaxUint16)))
}

type s16Kind struct{}

func (s16Kind) read(b []byte) float64 {
	return float64(int16(binary.LittleEndian.Uint16(b)))
}
func (s16Kind) write(b []byte, v float64) {
	binary.LittleEndian.PutUint16(b, uint16(int16(int64(v))))
}
func (s16Kind) writeSat(b []byte, v float64) {
	binary.LittleEndian.PutUint16(b, uint16(int16(clampRound(v, math.MinInt16, math.MaxInt16))))
}

type s32Kind struct{}

func (s32Kind) read(b []byte) float64 {
	return float64(int32(binary.LittleEndian.Uint32(b)))
}
func (s32Kind) write(b []byte, v float64) {
	binary.LittleEndian.PutUint32(b, uint32(int32(int64(v))))
}
func (s32Kind) writeSat(b []byte, v float64) {
	binary.LittleEndian.PutUint32(b, uint32(int32(clampRound(v, math.MinInt32, math.MaxInt32))))
}

type f32Kind struct{}

func (f32Kind) read(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}
func (f32Kind) write(b []byte, v float64) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
}
func (f32Kind) writeSat(b []byte, v float64) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
}

type f64Kind struct{}

func (f64Kind) read(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}
func (f64Kind) write(b []byte, v float64) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}
func (f64Kind) writeSat(b []byte, v float64) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

// clampRound rounds v to the nearest integer and clamps it to [lo, hi].
func clampRound(v, lo, hi float64) int64 {
	v = math.Round(v)
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return int64(v)
}

// elemOffset computes the byte offset of element (row, col) inside the
// shared buffer. Both Get and Set share this computation so their bounds
// logic cannot diverge.
func (m *Mat) elemOffset(row, col int) int {
	return m.offset + row*m.step + col*m.elemType.ElemSize()
}

// checkIndex resolves a 1- or 2-component index into (row, col).
func (m *Mat) checkIndex(idx []int) (int, int, error) {
	switch len(idx) {
	case 1:
		// Flat element index in row-major order.
		if idx[0] < 0 || idx[0] >= m.rows*m.cols {
			return 0, 0, fmt.Errorf("%w: element %d of %d", ErrOutOfRange, idx[0], m.rows*m.cols)
		}
		return idx[0] / m.cols, idx[0] % m.cols, nil
	case 2:
		if idx[0] < 0 || idx[0] >= m.rows {
			return 0, 0, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, idx[0], m.rows)
		}
		if idx[1] < 0 || idx[1] >= m.cols {
			return 0, 0, fmt.Errorf("%w: col %d of %d", ErrOutOfRange, idx[1], m.cols)
		}
		return idx[0], idx[1], nil
	default:
		return 0, 0, fmt.Errorf("%w: %d index components for 2-d matrix", ErrOutOfRange, len(idx))
	}
}

// Get returns the element at the given index as a Scalar. The index is either
// a flat element index or a (row, col) pair; every component is bounds
// checked. Up to ScalarChannels channel components are read and converted to
// double precision.
func (m *Mat) Get(idx ...int) (Scalar, error) {
	if m.IsEmpty() {
		return Scalar{}, fmt.Errorf("%w: access into empty matrix", ErrOutOfRange)
	}
	k, err := kindOf(m.elemType.Depth)
	if err != nil {
		return Scalar{}, err
	}
	row, col, err := m.checkIndex(idx)
	if err != nil {
		return Scalar{}, err
	}

	var s Scalar
	esz := m.elemType.ElemSize1()
	b := m.buffer.data[m.elemOffset(row, col):]
	n := m.elemType.Channels
	if n > ScalarChannels {
		n = ScalarChannels
	}
	for c := 0; c < n; c++ {
		s[c] = k.read(b[c*esz:])
	}
	return s, nil
}

// Set writes the tuple v into element (row, col), narrowing each component
// to the element depth C-style: truncation toward zero, then wraparound for
// integer kinds. Writing 300 into a u8 element therefore stores 44.
func (m *Mat) Set(row, col int, v Scalar) error {
	if m.IsEmpty() {
		return fmt.Errorf("%w: access into empty matrix", ErrOutOfRange)
	}
	k, err := kindOf(m.elemType.Depth)
	if err != nil {
		return err
	}
	if _, _, err := m.checkIndex([]int{row, col}); err != nil {
		return err
	}

	esz := m.elemType.ElemSize1()
	b := m.buffer.data[m.elemOffset(row, col):]
	n := m.elemType.Channels
	if n > ScalarChannels {
		n = ScalarChannels
	}
	for c := 0; c < n; c++ {
		k.write(b[c*esz:], v[c])
	}
	return nil
}

// At returns channel ch of element (row, col) as a float64. It is the
// unchecked fast path used by the bulk kernels; out-of-range indices are
// programmer errors and panic via slice bounds.
func (m *Mat) At(row, col, ch int) float64 {
	k := kinds[m.elemType.Depth]
	return k.read(m.buffer.data[m.elemOffset(row, col)+ch*m.elemType.ElemSize1():])
}

// SetAt writes channel ch of element (row, col) with saturation, the
// conversion contract of the bulk kernels.
func (m *Mat) SetAt(row, col, ch int, v float64) {
	k := kinds[m.elemType.Depth]
	k.writeSat(m.buffer.data[m.elemOffset(row, col)+ch*m.elemType.ElemSize1():], v)
}
