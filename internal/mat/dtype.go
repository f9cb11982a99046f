// Package mat provides the core matrix types and operations for matgo.
package mat

import "fmt"

// Depth represents the numeric storage kind of one scalar component
// of a matrix element.
type Depth int

// Supported element depths.
const (
	U8 Depth = iota // 8-bit unsigned
	S8              // 8-bit signed
	U16             // 16-bit unsigned
	S16             // 16-bit signed
	S32             // 32-bit signed
	F32             // 32-bit float
	F64             // 64-bit float
)

// Size returns the byte size of one component of this depth.
func (d Depth) Size() int {
	switch d {
	case U8, S8:
		return 1
	case U16, S16:
		return 2
	case S32, F32:
		return 4
	case F64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether d is one of the seven supported depths.
func (d Depth) Valid() bool {
	return d >= U8 && d <= F64
}

// String returns a human-readable name for the depth.
func (d Depth) String() string {
	switch d {
	case U8:
		return "u8"
	case S8:
		return "s8"
	case U16:
		return "u16"
	case S16:
		return "s16"
	case S32:
		return "s32"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "unknown"
	}
}

// MaxChannels is the largest channel count a Type may carry. Channel counts
// above ScalarChannels are only meaningful for generic element access.
const MaxChannels = 512

// ScalarChannels is the number of components a Scalar holds.
const ScalarChannels = 4

// Type is the element-type tag of a matrix: a depth crossed with a
// channel count.
type Type struct {
	Depth    Depth
	Channels int
}

// Common element types.
var (
	U8C1  = Type{U8, 1}
	U8C2  = Type{U8, 2}
	U8C3  = Type{U8, 3}
	U8C4  = Type{U8, 4}
	S8C1  = Type{S8, 1}
	S8C3  = Type{S8, 3}
	U16C1 = Type{U16, 1}
	U16C3 = Type{U16, 3}
	S16C1 = Type{S16, 1}
	S16C3 = Type{S16, 3}
	S32C1 = Type{S32, 1}
	S32C3 = Type{S32, 3}
	F32C1 = Type{F32, 1}
	F32C2 = Type{F32, 2}
	F32C3 = Type{F32, 3}
	F64C1 = Type{F64, 1}
	F64C3 = Type{F64, 3}
	F64C4 = Type{F64, 4}
)

// MakeType builds an element-type tag from a depth and channel count.
func MakeType(d Depth, channels int) Type {
	return Type{Depth: d, Channels: channels}
}

// ElemSize returns the byte size of a full element (all channels).
func (t Type) ElemSize() int {
	return t.Depth.Size() * t.Channels
}

// ElemSize1 returns the byte size of a single channel component.
func (t Type) ElemSize1() int {
	return t.Depth.Size()
}

// Valid reports whether the tag names a supported depth and a channel
// count in [1, MaxChannels].
func (t Type) Valid() bool {
	return t.Depth.Valid() && t.Channels >= 1 && t.Channels <= MaxChannels
}

// WithChannels returns a copy of the tag with the channel count replaced.
func (t Type) WithChannels(channels int) Type {
	return Type{Depth: t.Depth, Channels: channels}
}

// WithDepth returns a copy of the tag with the depth replaced.
func (t Type) WithDepth(d Depth) Type {
	return Type{Depth: d, Channels: t.Channels}
}

// String returns a tag like "u8C3".
func (t Type) String() string {
	return fmt.Sprintf("%sC%d", t.Depth, t.Channels)
}
