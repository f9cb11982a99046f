package imgproc

import (
	"fmt"
	"math"
	"sort"

	"github.com/matgo-vision/matgo/internal/mat"
	"github.com/matgo-vision/matgo/internal/parallel"
)

// Blur smooths the image with the normalized box filter of size kw x kh.
func Blur(src *mat.Mat, kw, kh int) (*mat.Mat, error) {
	if kw < 1 || kh < 1 {
		return nil, fmt.Errorf("%w: blur kernel %dx%d", mat.ErrOutOfRange, kw, kh)
	}
	kx := make([]float64, kw)
	for i := range kx {
		kx[i] = 1.0 / float64(kw)
	}
	ky := make([]float64, kh)
	for i := range ky {
		ky[i] = 1.0 / float64(kh)
	}
	return sepFilter2D(src, -1, kx, ky, 1, 0)
}

// BlurInPlace is Blur swapping the result into src.
func BlurInPlace(src *mat.Mat, kw, kh int) error {
	dst, err := Blur(src, kw, kh)
	if err != nil {
		return err
	}
	src.Adopt(dst)
	return nil
}

// gaussianKernel builds a normalized 1-D Gaussian kernel. A non-positive
// sigma is derived from the kernel size the way the wrapped library does.
func gaussianKernel(ksize int, sigma float64) []float64 {
	if sigma <= 0 {
		sigma = 0.3*(float64(ksize-1)*0.5-1) + 0.8
	}
	k := make([]float64, ksize)
	mid := float64(ksize-1) / 2
	sum := 0.0
	for i := range k {
		d := float64(i) - mid
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// GaussianBlur smooths the image with a Gaussian filter. Kernel sides must
// be positive and odd. A zero sigmaY falls back to sigmaX.
func GaussianBlur(src *mat.Mat, kw, kh int, sigmaX, sigmaY float64) (*mat.Mat, error) {
	if kw < 1 || kw%2 == 0 || kh < 1 || kh%2 == 0 {
		return nil, fmt.Errorf("%w: gaussian kernel %dx%d must be odd", mat.ErrOutOfRange, kw, kh)
	}
	if sigmaY <= 0 {
		sigmaY = sigmaX
	}
	return sepFilter2D(src, -1, gaussianKernel(kw, sigmaX), gaussianKernel(kh, sigmaY), 1, 0)
}

// GaussianBlurInPlace is GaussianBlur swapping the result into src.
func GaussianBlurInPlace(src *mat.Mat, kw, kh int, sigmaX, sigmaY float64) error {
	dst, err := GaussianBlur(src, kw, kh, sigmaX, sigmaY)
	if err != nil {
		return err
	}
	src.Adopt(dst)
	return nil
}

// MedianBlur smooths the image with the median filter of an odd aperture
// greater than 1.
func MedianBlur(src *mat.Mat, ksize int) (*mat.Mat, error) {
	if ksize <= 1 || ksize%2 == 0 {
		return nil, fmt.Errorf("%w: median aperture %d must be odd and > 1", mat.ErrOutOfRange, ksize)
	}
	if src.IsEmpty() {
		return nil, fmt.Errorf("%w: median blur on empty matrix", mat.ErrShapeMismatch)
	}
	dst, err := mat.New(src.Rows(), src.Cols(), src.ElemType())
	if err != nil {
		return nil, err
	}

	rows, cols, ch := src.Rows(), src.Cols(), src.Channels()
	a := ksize / 2
	parallel.ForRows(rows, func(y int) {
		window := make([]float64, 0, ksize*ksize)
		for x := 0; x < cols; x++ {
			for c := 0; c < ch; c++ {
				window = window[:0]
				for dy := -a; dy <= a; dy++ {
					sy := borderIdx(y+dy, rows)
					for dx := -a; dx <= a; dx++ {
						window = append(window, src.At(sy, borderIdx(x+dx, cols), c))
					}
				}
				sort.Float64s(window)
				dst.SetAt(y, x, c, window[len(window)/2])
			}
		}
	}, workers)
	return dst, nil
}

// MedianBlurInPlace is MedianBlur swapping the result into src.
func MedianBlurInPlace(src *mat.Mat, ksize int) error {
	dst, err := MedianBlur(src, ksize)
	if err != nil {
		return err
	}
	src.Adopt(dst)
	return nil
}
