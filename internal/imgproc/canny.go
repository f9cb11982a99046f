package imgproc

import (
	"fmt"
	"math"

	"github.com/matgo-vision/matgo/internal/mat"
)

// Canny finds edges in a u8 single-channel image using the Canny algorithm:
// Sobel gradients, non-maximum suppression and double-threshold hysteresis.
// l2gradient selects the Euclidean gradient magnitude over the faster L1 sum.
func Canny(src *mat.Mat, threshold1, threshold2 float64, apertureSize int, l2gradient bool) (*mat.Mat, error) {
	if src.IsEmpty() {
		return nil, fmt.Errorf("%w: canny on empty matrix", mat.ErrShapeMismatch)
	}
	if src.Depth() != mat.U8 || src.Channels() != 1 {
		return nil, fmt.Errorf("%w: canny needs u8C1, got %s", mat.ErrShapeMismatch, src.ElemType())
	}
	if apertureSize != 1 && apertureSize != 3 {
		return nil, fmt.Errorf("%w: canny aperture %d (want 1 or 3)", mat.ErrOutOfRange, apertureSize)
	}
	low, high := threshold1, threshold2
	if low > high {
		low, high = high, low
	}

	gx, err := Sobel(src, mat.F64, 1, 0, apertureSize, 1, 0)
	if err != nil {
		return nil, err
	}
	defer gx.Release()
	gy, err := Sobel(src, mat.F64, 0, 1, apertureSize, 1, 0)
	if err != nil {
		return nil, err
	}
	defer gy.Release()

	rows, cols := src.Rows(), src.Cols()
	magnitude := make([]float64, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dx, dy := gx.At(y, x, 0), gy.At(y, x, 0)
			if l2gradient {
				magnitude[y*cols+x] = math.Hypot(dx, dy)
			} else {
				magnitude[y*cols+x] = math.Abs(dx) + math.Abs(dy)
			}
		}
	}

	// Non-maximum suppression along the quantized gradient direction,
	// then classify against the two thresholds: 2 = strong, 1 = weak.
	class := make([]uint8, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m := magnitude[y*cols+x]
			if m < low {
				continue
			}
			dx, dy := gx.At(y, x, 0), gy.At(y, x, 0)
			ox, oy := gradientDir(dx, dy)
			if m < neighborMag(magnitude, rows, cols, y+oy, x+ox) ||
				m < neighborMag(magnitude, rows, cols, y-oy, x-ox) {
				continue
			}
			if m >= high {
				class[y*cols+x] = 2
			} else {
				class[y*cols+x] = 1
			}
		}
	}

	// Hysteresis: weak pixels survive only when connected to a strong one.
	dst, err := mat.New(rows, cols, mat.U8C1)
	if err != nil {
		return nil, err
	}
	stack := make([][2]int, 0, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if class[y*cols+x] == 2 {
				stack = append(stack, [2]int{y, x})
			}
		}
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		y, x := p[0], p[1]
		if dst.At(y, x, 0) != 0 {
			continue
		}
		dst.SetAt(y, x, 0, 255)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				ny, nx := y+dy, x+dx
				if ny < 0 || ny >= rows || nx < 0 || nx >= cols {
					continue
				}
				if class[ny*cols+nx] != 0 && dst.At(ny, nx, 0) == 0 {
					stack = append(stack, [2]int{ny, nx})
				}
			}
		}
	}
	return dst, nil
}

// CannyInPlace is Canny swapping the result into src.
func CannyInPlace(src *mat.Mat, threshold1, threshold2 float64, apertureSize int, l2gradient bool) error {
	dst, err := Canny(src, threshold1, threshold2, apertureSize, l2gradient)
	if err != nil {
		return err
	}
	src.Adopt(dst)
	return nil
}

// gradientDir quantizes a gradient vector to one of four neighbor offsets.
func gradientDir(dx, dy float64) (int, int) {
	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += math.Pi
	}
	switch {
	case angle < math.Pi/8 || angle >= 7*math.Pi/8:
		return 1, 0 // horizontal gradient
	case angle < 3*math.Pi/8:
		return 1, 1
	case angle < 5*math.Pi/8:
		return 0, 1 // vertical gradient
	default:
		return -1, 1
	}
}

func neighborMag(magnitude []float64, rows, cols, y, x int) float64 {
	if y < 0 || y >= rows || x < 0 || x >= cols {
		return 0
	}
	return magnitude[y*cols+x]
}
