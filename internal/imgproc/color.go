package imgproc

import (
	"fmt"

	"github.com/matgo-vision/matgo/internal/mat"
)

// ColorCode names a color space conversion. Color matrices use interleaved
// BGR(A) channel order.
type ColorCode int

// Supported conversions.
const (
	ColorBGR2GRAY ColorCode = iota
	ColorGRAY2BGR
	ColorBGR2RGB
	ColorRGB2BGR
	ColorBGR2BGRA
	ColorBGRA2BGR
	ColorGRAY2BGRA
	ColorBGRA2GRAY
)

// CvtColor converts the image from one color space to another. The output
// has the same depth and a channel count derived from the conversion code.
func CvtColor(src *mat.Mat, code ColorCode) (*mat.Mat, error) {
	if src.IsEmpty() {
		return nil, fmt.Errorf("%w: cvt_color on empty matrix", mat.ErrShapeMismatch)
	}
	switch code {
	case ColorBGR2GRAY:
		return bgrToGray(src, 3)
	case ColorBGRA2GRAY:
		return bgrToGray(src, 4)
	case ColorGRAY2BGR:
		return grayToBGR(src, 3)
	case ColorGRAY2BGRA:
		return grayToBGR(src, 4)
	case ColorBGR2RGB, ColorRGB2BGR:
		return swapRB(src)
	case ColorBGR2BGRA:
		return addAlpha(src)
	case ColorBGRA2BGR:
		return dropAlpha(src)
	default:
		return nil, fmt.Errorf("%w: color conversion code %d", mat.ErrOutOfRange, code)
	}
}

// CvtColorInPlace is CvtColor swapping the result into src.
func CvtColorInPlace(src *mat.Mat, code ColorCode) error {
	dst, err := CvtColor(src, code)
	if err != nil {
		return err
	}
	src.Adopt(dst)
	return nil
}

// bgrToGray applies the BT.601 luma weights.
func bgrToGray(src *mat.Mat, wantCh int) (*mat.Mat, error) {
	if src.Channels() != wantCh {
		return nil, fmt.Errorf("%w: conversion needs %d channels, got %d", mat.ErrShapeMismatch, wantCh, src.Channels())
	}
	dst, err := mat.New(src.Rows(), src.Cols(), src.ElemType().WithChannels(1))
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.Rows(); y++ {
		for x := 0; x < src.Cols(); x++ {
			b, g, r := src.At(y, x, 0), src.At(y, x, 1), src.At(y, x, 2)
			dst.SetAt(y, x, 0, 0.114*b+0.587*g+0.299*r)
		}
	}
	return dst, nil
}

func grayToBGR(src *mat.Mat, wantCh int) (*mat.Mat, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: conversion needs 1 channel, got %d", mat.ErrShapeMismatch, src.Channels())
	}
	dst, err := mat.New(src.Rows(), src.Cols(), src.ElemType().WithChannels(wantCh))
	if err != nil {
		return nil, err
	}
	maxAlpha := depthMax(src.Depth())
	for y := 0; y < src.Rows(); y++ {
		for x := 0; x < src.Cols(); x++ {
			v := src.At(y, x, 0)
			dst.SetAt(y, x, 0, v)
			dst.SetAt(y, x, 1, v)
			dst.SetAt(y, x, 2, v)
			if wantCh == 4 {
				dst.SetAt(y, x, 3, maxAlpha)
			}
		}
	}
	return dst, nil
}

func swapRB(src *mat.Mat) (*mat.Mat, error) {
	if src.Channels() < 3 {
		return nil, fmt.Errorf("%w: conversion needs 3+ channels, got %d", mat.ErrShapeMismatch, src.Channels())
	}
	dst, err := src.Clone()
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.Rows(); y++ {
		for x := 0; x < src.Cols(); x++ {
			dst.SetAt(y, x, 0, src.At(y, x, 2))
			dst.SetAt(y, x, 2, src.At(y, x, 0))
		}
	}
	return dst, nil
}

func addAlpha(src *mat.Mat) (*mat.Mat, error) {
	if src.Channels() != 3 {
		return nil, fmt.Errorf("%w: conversion needs 3 channels, got %d", mat.ErrShapeMismatch, src.Channels())
	}
	dst, err := mat.New(src.Rows(), src.Cols(), src.ElemType().WithChannels(4))
	if err != nil {
		return nil, err
	}
	maxAlpha := depthMax(src.Depth())
	for y := 0; y < src.Rows(); y++ {
		for x := 0; x < src.Cols(); x++ {
			for c := 0; c < 3; c++ {
				dst.SetAt(y, x, c, src.At(y, x, c))
			}
			dst.SetAt(y, x, 3, maxAlpha)
		}
	}
	return dst, nil
}

func dropAlpha(src *mat.Mat) (*mat.Mat, error) {
	if src.Channels() != 4 {
		return nil, fmt.Errorf("%w: conversion needs 4 channels, got %d", mat.ErrShapeMismatch, src.Channels())
	}
	dst, err := mat.New(src.Rows(), src.Cols(), src.ElemType().WithChannels(3))
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.Rows(); y++ {
		for x := 0; x < src.Cols(); x++ {
			for c := 0; c < 3; c++ {
				dst.SetAt(y, x, c, src.At(y, x, c))
			}
		}
	}
	return dst, nil
}

// depthMax is the full-scale value used for synthesized alpha channels.
func depthMax(d mat.Depth) float64 {
	switch d {
	case mat.U8:
		return 255
	case mat.S8:
		return 127
	case mat.U16:
		return 65535
	case mat.S16:
		return 32767
	case mat.S32:
		return 2147483647
	default:
		return 1
	}
}
