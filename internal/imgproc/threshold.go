package imgproc

import (
	"fmt"

	"github.com/matgo-vision/matgo/internal/mat"
)

// ThresholdType selects the per-element thresholding rule. ThreshOtsu and
// ThreshTriangle are flags combined with a base type; they compute the
// threshold from the image histogram instead of the caller's value.
type ThresholdType int

// Threshold types and flags.
const (
	ThreshBinary    ThresholdType = 0
	ThreshBinaryInv ThresholdType = 1
	ThreshTrunc     ThresholdType = 2
	ThreshToZero    ThresholdType = 3
	ThreshToZeroInv ThresholdType = 4
	ThreshMask      ThresholdType = 7
	ThreshOtsu      ThresholdType = 8
	ThreshTriangle  ThresholdType = 16
)

// AdaptiveMethod selects how AdaptiveThreshold computes the per-pixel
// threshold.
type AdaptiveMethod int

// Adaptive thresholding algorithms.
const (
	AdaptiveMean AdaptiveMethod = iota
	AdaptiveGaussian
)

// Threshold applies a fixed-level threshold to each element. It returns the
// output matrix and the threshold that was used: for the Otsu and Triangle
// flags that value is computed from the histogram, otherwise it echoes
// thresh.
func Threshold(src *mat.Mat, thresh, maxval float64, typ ThresholdType) (*mat.Mat, float64, error) {
	if src.IsEmpty() {
		return nil, 0, fmt.Errorf("%w: threshold on empty matrix", mat.ErrShapeMismatch)
	}
	auto := typ&(ThreshOtsu|ThreshTriangle) != 0
	if auto {
		if src.Depth() != mat.U8 || src.Channels() != 1 {
			return nil, 0, fmt.Errorf("%w: automatic threshold needs u8C1, got %s", mat.ErrShapeMismatch, src.ElemType())
		}
		hist := histogram(src)
		if typ&ThreshOtsu != 0 {
			thresh = otsuThreshold(hist, src.Total())
		} else {
			thresh = triangleThreshold(hist)
		}
	}

	base := typ & ThreshMask
	dst, err := mat.New(src.Rows(), src.Cols(), src.ElemType())
	if err != nil {
		return nil, 0, err
	}
	rows, cols, ch := src.Rows(), src.Cols(), src.Channels()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			for c := 0; c < ch; c++ {
				v := src.At(y, x, c)
				var out float64
				switch base {
				case ThreshBinary:
					if v > thresh {
						out = maxval
					}
				case ThreshBinaryInv:
					if v <= thresh {
						out = maxval
					}
				case ThreshTrunc:
					out = v
					if v > thresh {
						out = thresh
					}
				case ThreshToZero:
					if v > thresh {
						out = v
					}
				case ThreshToZeroInv:
					if v <= thresh {
						out = v
					}
				default:
					dst.Release()
					return nil, 0, fmt.Errorf("%w: threshold type %d", mat.ErrOutOfRange, typ)
				}
				dst.SetAt(y, x, c, out)
			}
		}
	}
	return dst, thresh, nil
}

// ThresholdInPlace is Threshold swapping the result into src.
func ThresholdInPlace(src *mat.Mat, thresh, maxval float64, typ ThresholdType) (float64, error) {
	dst, used, err := Threshold(src, thresh, maxval, typ)
	if err != nil {
		return 0, err
	}
	src.Adopt(dst)
	return used, nil
}

// histogram counts u8C1 values.
func histogram(src *mat.Mat) [256]int {
	var hist [256]int
	for y := 0; y < src.Rows(); y++ {
		row := src.RowBytes(y)
		for _, v := range row {
			hist[v]++
		}
	}
	return hist
}

// otsuThreshold maximizes the between-class variance.
func otsuThreshold(hist [256]int, total int) float64 {
	sum := 0.0
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}
	sumB, wB := 0.0, 0
	best, bestVar := 0.0, -1.0
	for t := 0; t < 256; t++ {
		wB += hist[t]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)
		between := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if between > bestVar {
			bestVar = between
			best = float64(t)
		}
	}
	return best
}

// triangleThreshold finds the histogram bin farthest from the line between
// the histogram peak and its far tail.
func triangleThreshold(hist [256]int) float64 {
	left, right := 0, 255
	for left < 256 && hist[left] == 0 {
		left++
	}
	for right >= 0 && hist[right] == 0 {
		right--
	}
	if left >= right {
		return float64(left)
	}
	peak := left
	for i := left; i <= right; i++ {
		if hist[i] > hist[peak] {
			peak = i
		}
	}
	// Use the longer tail of the distribution.
	far := right
	if peak-left > right-peak {
		far = left
	}
	nx := float64(hist[peak] - hist[far])
	ny := float64(far - peak)
	norm := nx*nx + ny*ny
	best, bestDist := peak, 0.0
	lo, hi := peak, far
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i <= hi; i++ {
		d := nx*float64(i-peak) + ny*float64(hist[i]-hist[peak])
		if d < 0 {
			d = -d
		}
		if norm > 0 {
			d /= norm
		}
		if d > bestDist {
			bestDist = d
			best = i
		}
	}
	return float64(best)
}

// AdaptiveThreshold thresholds each pixel against a statistic of its
// blockSize neighborhood minus delta. Only the binary threshold types are
// valid; the input must be u8C1.
func AdaptiveThreshold(src *mat.Mat, maxval float64, method AdaptiveMethod, typ ThresholdType, blockSize int, delta float64) (*mat.Mat, error) {
	if src.IsEmpty() {
		return nil, fmt.Errorf("%w: adaptive threshold on empty matrix", mat.ErrShapeMismatch)
	}
	if src.Depth() != mat.U8 || src.Channels() != 1 {
		return nil, fmt.Errorf("%w: adaptive threshold needs u8C1, got %s", mat.ErrShapeMismatch, src.ElemType())
	}
	if typ != ThreshBinary && typ != ThreshBinaryInv {
		return nil, fmt.Errorf("%w: adaptive threshold type %d", mat.ErrOutOfRange, typ)
	}
	if blockSize < 3 || blockSize%2 == 0 {
		return nil, fmt.Errorf("%w: block size %d must be odd and >= 3", mat.ErrOutOfRange, blockSize)
	}

	var local *mat.Mat
	var err error
	switch method {
	case AdaptiveMean:
		local, err = Blur(src, blockSize, blockSize)
	case AdaptiveGaussian:
		local, err = GaussianBlur(src, blockSize, blockSize, 0, 0)
	default:
		return nil, fmt.Errorf("%w: adaptive method %d", mat.ErrOutOfRange, method)
	}
	if err != nil {
		return nil, err
	}
	defer local.Release()

	dst, err := mat.New(src.Rows(), src.Cols(), src.ElemType())
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.Rows(); y++ {
		for x := 0; x < src.Cols(); x++ {
			v := src.At(y, x, 0)
			t := local.At(y, x, 0) - delta
			hit := v > t
			if typ == ThreshBinaryInv {
				hit = !hit
			}
			if hit {
				dst.SetAt(y, x, 0, maxval)
			} else {
				dst.SetAt(y, x, 0, 0)
			}
		}
	}
	return dst, nil
}
