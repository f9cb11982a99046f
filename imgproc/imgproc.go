// Copyright 2026 MatGo Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package imgproc provides the public image-processing API for MatGo:
// derivative filters, smoothing, color conversion, geometric resizing,
// thresholding, edge detection and simple shape drawing.
//
// Every operation returns a new matrix and leaves its input untouched;
// the InPlace variants overwrite the input handle instead.
//
// Example:
//
//	gray, _ := imgproc.CvtColor(img, imgproc.ColorBGR2GRAY)
//	defer gray.Release()
//	edges, _ := imgproc.Canny(gray, 50, 150, 3, false)
//	defer edges.Release()
package imgproc

import (
	"github.com/matgo-vision/matgo/internal/imgproc"
	"github.com/matgo-vision/matgo/internal/mat"
)

// Type aliases for public API

// ColorCode selects a color-space conversion for CvtColor.
type ColorCode = imgproc.ColorCode

// Color conversion codes.
const (
	ColorBGR2GRAY  ColorCode = imgproc.ColorBGR2GRAY
	ColorGRAY2BGR  ColorCode = imgproc.ColorGRAY2BGR
	ColorBGR2RGB   ColorCode = imgproc.ColorBGR2RGB
	ColorRGB2BGR   ColorCode = imgproc.ColorRGB2BGR
	ColorBGR2BGRA  ColorCode = imgproc.ColorBGR2BGRA
	ColorBGRA2BGR  ColorCode = imgproc.ColorBGRA2BGR
	ColorGRAY2BGRA ColorCode = imgproc.ColorGRAY2BGRA
	ColorBGRA2GRAY ColorCode = imgproc.ColorBGRA2GRAY
)

// ThresholdType selects the per-pixel rule applied by Threshold.
type ThresholdType = imgproc.ThresholdType

// Threshold types. ThreshOtsu and ThreshTriangle may be OR-ed with a
// base type to compute the threshold from the image histogram.
const (
	ThreshBinary    ThresholdType = imgproc.ThreshBinary
	ThreshBinaryInv ThresholdType = imgproc.ThreshBinaryInv
	ThreshTrunc     ThresholdType = imgproc.ThreshTrunc
	ThreshToZero    ThresholdType = imgproc.ThreshToZero
	ThreshToZeroInv ThresholdType = imgproc.ThreshToZeroInv
	ThreshOtsu      ThresholdType = imgproc.ThreshOtsu
	ThreshTriangle  ThresholdType = imgproc.ThreshTriangle
)

// AdaptiveMethod selects how AdaptiveThreshold computes the local
// threshold for each pixel.
type AdaptiveMethod = imgproc.AdaptiveMethod

// Adaptive threshold methods.
const (
	AdaptiveMean     AdaptiveMethod = imgproc.AdaptiveMean
	AdaptiveGaussian AdaptiveMethod = imgproc.AdaptiveGaussian
)

// Interpolation selects the resampling filter used by Resize.
type Interpolation = imgproc.Interpolation

// Interpolation modes.
const (
	InterNearest Interpolation = imgproc.InterNearest
	InterLinear  Interpolation = imgproc.InterLinear
	InterCubic   Interpolation = imgproc.InterCubic
)

// Point is an integer pixel coordinate.
type Point = imgproc.Point

// Filled as a thickness draws a solid shape instead of an outline.
const Filled = imgproc.Filled

// Sobel computes the dx-th x-derivative and dy-th y-derivative of src
// with an aperture of ksize (1 or 3), then scales and offsets the
// result. ddepth < 0 keeps the source depth.
func Sobel(src *mat.Mat, ddepth mat.Depth, dx, dy, ksize int, scale, delta float64) (*mat.Mat, error) {
	return imgproc.Sobel(src, ddepth, dx, dy, ksize, scale, delta)
}

// SobelInPlace is Sobel writing its result back into src.
func SobelInPlace(src *mat.Mat, ddepth mat.Depth, dx, dy, ksize int, scale, delta float64) error {
	return imgproc.SobelInPlace(src, ddepth, dx, dy, ksize, scale, delta)
}

// Laplacian computes the Laplacian of src with an aperture of ksize
// (1 or 3).
func Laplacian(src *mat.Mat, ddepth mat.Depth, ksize int, scale, delta float64) (*mat.Mat, error) {
	return imgproc.Laplacian(src, ddepth, ksize, scale, delta)
}

// LaplacianInPlace is Laplacian writing its result back into src.
func LaplacianInPlace(src *mat.Mat, ddepth mat.Depth, ksize int, scale, delta float64) error {
	return imgproc.LaplacianInPlace(src, ddepth, ksize, scale, delta)
}

// Canny detects edges in a u8 single-channel image using hysteresis
// thresholding. l2gradient selects the more accurate L2 gradient
// magnitude over the default L1.
func Canny(src *mat.Mat, threshold1, threshold2 float64, apertureSize int, l2gradient bool) (*mat.Mat, error) {
	return imgproc.Canny(src, threshold1, threshold2, apertureSize, l2gradient)
}

// CannyInPlace is Canny writing its result back into src.
func CannyInPlace(src *mat.Mat, threshold1, threshold2 float64, apertureSize int, l2gradient bool) error {
	return imgproc.CannyInPlace(src, threshold1, threshold2, apertureSize, l2gradient)
}

// CvtColor converts src between color spaces.
func CvtColor(src *mat.Mat, code ColorCode) (*mat.Mat, error) {
	return imgproc.CvtColor(src, code)
}

// CvtColorInPlace is CvtColor writing its result back into src.
func CvtColorInPlace(src *mat.Mat, code ColorCode) error {
	return imgproc.CvtColorInPlace(src, code)
}

// Resize resamples a u8 image to width x height pixels.
func Resize(src *mat.Mat, width, height int, interp Interpolation) (*mat.Mat, error) {
	return imgproc.Resize(src, width, height, interp)
}

// ResizeInPlace is Resize writing its result back into src.
func ResizeInPlace(src *mat.Mat, width, height int, interp Interpolation) error {
	return imgproc.ResizeInPlace(src, width, height, interp)
}

// Blur smooths src with a normalized kw x kh box filter.
func Blur(src *mat.Mat, kw, kh int) (*mat.Mat, error) {
	return imgproc.Blur(src, kw, kh)
}

// BlurInPlace is Blur writing its result back into src.
func BlurInPlace(src *mat.Mat, kw, kh int) error {
	return imgproc.BlurInPlace(src, kw, kh)
}

// GaussianBlur smooths src with a kw x kh Gaussian kernel. Both sides
// must be odd; sigmaY <= 0 reuses sigmaX, and sigmaX <= 0 derives the
// sigma from the kernel size.
func GaussianBlur(src *mat.Mat, kw, kh int, sigmaX, sigmaY float64) (*mat.Mat, error) {
	return imgproc.GaussianBlur(src, kw, kh, sigmaX, sigmaY)
}

// GaussianBlurInPlace is GaussianBlur writing its result back into src.
func GaussianBlurInPlace(src *mat.Mat, kw, kh int, sigmaX, sigmaY float64) error {
	return imgproc.GaussianBlurInPlace(src, kw, kh, sigmaX, sigmaY)
}

// MedianBlur replaces each pixel with the median of its ksize x ksize
// neighborhood. ksize must be odd and greater than 1.
func MedianBlur(src *mat.Mat, ksize int) (*mat.Mat, error) {
	return imgproc.MedianBlur(src, ksize)
}

// MedianBlurInPlace is MedianBlur writing its result back into src.
func MedianBlurInPlace(src *mat.Mat, ksize int) error {
	return imgproc.MedianBlurInPlace(src, ksize)
}

// Threshold applies a fixed-level threshold to a single-channel image.
// With ThreshOtsu or ThreshTriangle the level is computed from the
// histogram; the second return value is always the level actually used.
func Threshold(src *mat.Mat, thresh, maxval float64, typ ThresholdType) (*mat.Mat, float64, error) {
	return imgproc.Threshold(src, thresh, maxval, typ)
}

// ThresholdInPlace is Threshold writing its result back into src.
func ThresholdInPlace(src *mat.Mat, thresh, maxval float64, typ ThresholdType) (float64, error) {
	return imgproc.ThresholdInPlace(src, thresh, maxval, typ)
}

// AdaptiveThreshold thresholds each pixel of a u8 single-channel image
// against a statistic of its blockSize x blockSize neighborhood minus
// delta. Only ThreshBinary and ThreshBinaryInv are supported.
func AdaptiveThreshold(src *mat.Mat, maxval float64, method AdaptiveMethod, typ ThresholdType, blockSize int, delta float64) (*mat.Mat, error) {
	return imgproc.AdaptiveThreshold(src, maxval, method, typ, blockSize, delta)
}

// Line draws a p1-p2 segment on a copy of m.
func Line(m *mat.Mat, p1, p2 Point, color mat.Scalar, thickness int) (*mat.Mat, error) {
	return imgproc.Line(m, p1, p2, color, thickness)
}

// LineInPlace draws a p1-p2 segment directly on m.
func LineInPlace(m *mat.Mat, p1, p2 Point, color mat.Scalar, thickness int) error {
	return imgproc.LineInPlace(m, p1, p2, color, thickness)
}

// Circle draws a circle on a copy of m. A thickness of Filled draws a
// solid disc.
func Circle(m *mat.Mat, center Point, radius int, color mat.Scalar, thickness int) (*mat.Mat, error) {
	return imgproc.Circle(m, center, radius, color, thickness)
}

// CircleInPlace draws a circle directly on m.
func CircleInPlace(m *mat.Mat, center Point, radius int, color mat.Scalar, thickness int) error {
	return imgproc.CircleInPlace(m, center, radius, color, thickness)
}

// Rectangle draws an axis-aligned rectangle with corners p1 and p2 on a
// copy of m.
func Rectangle(m *mat.Mat, p1, p2 Point, color mat.Scalar, thickness int) (*mat.Mat, error) {
	return imgproc.Rectangle(m, p1, p2, color, thickness)
}

// RectangleInPlace draws an axis-aligned rectangle directly on m.
func RectangleInPlace(m *mat.Mat, p1, p2 Point, color mat.Scalar, thickness int) error {
	return imgproc.RectangleInPlace(m, p1, p2, color, thickness)
}
