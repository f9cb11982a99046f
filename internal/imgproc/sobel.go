package imgproc

import (
	"fmt"

	"github.com/matgo-vision/matgo/internal/mat"
)

// derivKernel returns the 1-D derivative kernel of the given order for the
// extended Sobel operator. Aperture 1 means no smoothing in the orthogonal
// direction.
func derivKernel(order, ksize int) ([]float64, error) {
	switch order {
	case 0:
		if ksize == 1 {
			return []float64{1}, nil
		}
		return []float64{1, 2, 1}, nil
	case 1:
		return []float64{-1, 0, 1}, nil
	case 2:
		return []float64{1, -2, 1}, nil
	default:
		return nil, fmt.Errorf("%w: derivative order %d", mat.ErrOutOfRange, order)
	}
}

// Sobel calculates the dx-th/dy-th image derivative using the extended
// Sobel operator of aperture ksize (1 or 3). ddepth selects the output
// depth; a negative value keeps the source depth.
func Sobel(src *mat.Mat, ddepth mat.Depth, dx, dy, ksize int, scale, delta float64) (*mat.Mat, error) {
	if ksize != 1 && ksize != 3 {
		return nil, fmt.Errorf("%w: sobel aperture %d (want 1 or 3)", mat.ErrOutOfRange, ksize)
	}
	if dx < 0 || dy < 0 || dx+dy == 0 || dx > 2 || dy > 2 {
		return nil, fmt.Errorf("%w: sobel orders dx=%d dy=%d", mat.ErrOutOfRange, dx, dy)
	}
	kx, err := derivKernel(dx, ksize)
	if err != nil {
		return nil, err
	}
	ky, err := derivKernel(dy, ksize)
	if err != nil {
		return nil, err
	}
	return sepFilter2D(src, ddepth, kx, ky, scale, delta)
}

// SobelInPlace is Sobel swapping the result into src.
func SobelInPlace(src *mat.Mat, ddepth mat.Depth, dx, dy, ksize int, scale, delta float64) error {
	dst, err := Sobel(src, ddepth, dx, dy, ksize, scale, delta)
	if err != nil {
		return err
	}
	src.Adopt(dst)
	return nil
}

// Laplacian calculates the Laplacian of the image with aperture 1 or 3.
func Laplacian(src *mat.Mat, ddepth mat.Depth, ksize int, scale, delta float64) (*mat.Mat, error) {
	var kernel [][]float64
	switch ksize {
	case 1:
		kernel = [][]float64{
			{0, 1, 0},
			{1, -4, 1},
			{0, 1, 0},
		}
	case 3:
		kernel = [][]float64{
			{2, 0, 2},
			{0, -8, 0},
			{2, 0, 2},
		}
	default:
		return nil, fmt.Errorf("%w: laplacian aperture %d (want 1 or 3)", mat.ErrOutOfRange, ksize)
	}
	return filter2D(src, ddepth, kernel, scale, delta)
}

// LaplacianInPlace is Laplacian swapping the result into src.
func LaplacianInPlace(src *mat.Mat, ddepth mat.Depth, ksize int, scale, delta float64) error {
	dst, err := Laplacian(src, ddepth, ksize, scale, delta)
	if err != nil {
		return err
	}
	src.Adopt(dst)
	return nil
}
