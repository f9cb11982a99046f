// Package imgproc implements the image-processing kernels the matrix layer
// wraps: derivative filters, blurs, geometric transforms, color conversion,
// thresholding and simple drawing.
package imgproc

import (
	"fmt"

	"github.com/matgo-vision/matgo/internal/mat"
	"github.com/matgo-vision/matgo/internal/parallel"
)

// workers is the shared configuration for the row-parallel kernels.
var workers = parallel.DefaultConfig()

// borderIdx reflects an out-of-range coordinate back into [0, n), mirroring
// without repeating the edge pixel (the wrapped library's default border).
func borderIdx(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

// sepFilter2D applies a separable filter: kx across columns, ky across rows.
// The output depth is ddepth, or the source depth when ddepth is negative.
// Accumulation is in double precision; the write saturates.
func sepFilter2D(src *mat.Mat, ddepth mat.Depth, kx, ky []float64, scale, delta float64) (*mat.Mat, error) {
	if src.IsEmpty() {
		return nil, fmt.Errorf("%w: filter on empty matrix", mat.ErrShapeMismatch)
	}
	if ddepth < 0 {
		ddepth = src.Depth()
	}
	dst, err := mat.New(src.Rows(), src.Cols(), src.ElemType().WithDepth(ddepth))
	if err != nil {
		return nil, err
	}

	rows, cols, ch := src.Rows(), src.Cols(), src.Channels()
	ax, ay := len(kx)/2, len(ky)/2

	// Horizontal pass into a float working image.
	tmp := make([]float64, rows*cols*ch)
	parallel.ForRows(rows, func(y int) {
		for x := 0; x < cols; x++ {
			for c := 0; c < ch; c++ {
				sum := 0.0
				for i, kv := range kx {
					sum += kv * src.At(y, borderIdx(x+i-ax, cols), c)
				}
				tmp[(y*cols+x)*ch+c] = sum
			}
		}
	}, workers)
	// Vertical pass into the destination.
	parallel.ForRows(rows, func(y int) {
		for x := 0; x < cols; x++ {
			for c := 0; c < ch; c++ {
				sum := 0.0
				for i, kv := range ky {
					sum += kv * tmp[(borderIdx(y+i-ay, rows)*cols+x)*ch+c]
				}
				dst.SetAt(y, x, c, sum*scale+delta)
			}
		}
	}, workers)
	return dst, nil
}

// filter2D applies a dense 2-D kernel with reflected borders.
func filter2D(src *mat.Mat, ddepth mat.Depth, kernel [][]float64, scale, delta float64) (*mat.Mat, error) {
	if src.IsEmpty() {
		return nil, fmt.Errorf("%w: filter on empty matrix", mat.ErrShapeMismatch)
	}
	if ddepth < 0 {
		ddepth = src.Depth()
	}
	dst, err := mat.New(src.Rows(), src.Cols(), src.ElemType().WithDepth(ddepth))
	if err != nil {
		return nil, err
	}

	rows, cols, ch := src.Rows(), src.Cols(), src.Channels()
	ay, ax := len(kernel)/2, len(kernel[0])/2
	parallel.ForRows(rows, func(y int) {
		for x := 0; x < cols; x++ {
			for c := 0; c < ch; c++ {
				sum := 0.0
				for ky, krow := range kernel {
					sy := borderIdx(y+ky-ay, rows)
					for kx, kv := range krow {
						sum += kv * src.At(sy, borderIdx(x+kx-ax, cols), c)
					}
				}
				dst.SetAt(y, x, c, sum*scale+delta)
			}
		}
	}, workers)
	return dst, nil
}
