package imgproc

import (
	"fmt"

	"github.com/matgo-vision/matgo/internal/mat"
)

// Point is an integer pixel coordinate.
type Point struct {
	X int
	Y int
}

// Filled requests a filled shape instead of an outline.
const Filled = -1

// setPixel writes the color into (x, y), clipping silently at the image
// border like the wrapped library's drawing functions.
func setPixel(m *mat.Mat, x, y int, color mat.Scalar) {
	if x < 0 || x >= m.Cols() || y < 0 || y >= m.Rows() {
		return
	}
	n := m.Channels()
	if n > mat.ScalarChannels {
		n = mat.ScalarChannels
	}
	for c := 0; c < n; c++ {
		m.SetAt(y, x, c, color[c])
	}
}

// drawDisc fills a disc of the given radius around (x, y); radius 0 is a
// single pixel. Used to give lines thickness.
func drawDisc(m *mat.Mat, x, y, radius int, color mat.Scalar) {
	if radius <= 0 {
		setPixel(m, x, y, color)
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				setPixel(m, x+dx, y+dy, color)
			}
		}
	}
}

func checkDrawTarget(op string, m *mat.Mat, thickness int) error {
	if m.IsEmpty() {
		return fmt.Errorf("%w: %s on empty matrix", mat.ErrShapeMismatch, op)
	}
	if thickness < Filled || thickness == 0 {
		return fmt.Errorf("%w: %s thickness %d", mat.ErrOutOfRange, op, thickness)
	}
	return nil
}

// LineInPlace draws a line segment from p1 to p2 into m.
func LineInPlace(m *mat.Mat, p1, p2 Point, color mat.Scalar, thickness int) error {
	if err := checkDrawTarget("line", m, thickness); err != nil {
		return err
	}
	// Bresenham walk; thickness stamps a disc at each step.
	dx, sx := absDelta(p1.X, p2.X)
	dy, sy := absDelta(p1.Y, p2.Y)
	dy = -dy
	e := dx + dy
	x, y := p1.X, p1.Y
	for {
		drawDisc(m, x, y, thickness/2, color)
		if x == p2.X && y == p2.Y {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// Line draws a line segment on a copy of m and returns it.
func Line(m *mat.Mat, p1, p2 Point, color mat.Scalar, thickness int) (*mat.Mat, error) {
	dst, err := m.Clone()
	if err != nil {
		return nil, err
	}
	if err := LineInPlace(dst, p1, p2, color, thickness); err != nil {
		dst.Release()
		return nil, err
	}
	return dst, nil
}

// CircleInPlace draws a circle of the given radius centered on c into m.
// A Filled thickness fills the disc.
func CircleInPlace(m *mat.Mat, center Point, radius int, color mat.Scalar, thickness int) error {
	if err := checkDrawTarget("circle", m, thickness); err != nil {
		return err
	}
	if radius < 0 {
		return fmt.Errorf("%w: circle radius %d", mat.ErrOutOfRange, radius)
	}
	if thickness == Filled {
		drawDisc(m, center.X, center.Y, radius, color)
		return nil
	}
	// Midpoint circle with eight-way symmetry.
	x, y, d := radius, 0, 1-radius
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			drawDisc(m, center.X+p[0], center.Y+p[1], thickness/2, color)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return nil
}

// Circle draws a circle on a copy of m and returns it.
func Circle(m *mat.Mat, center Point, radius int, color mat.Scalar, thickness int) (*mat.Mat, error) {
	dst, err := m.Clone()
	if err != nil {
		return nil, err
	}
	if err := CircleInPlace(dst, center, radius, color, thickness); err != nil {
		dst.Release()
		return nil, err
	}
	return dst, nil
}

// RectangleInPlace draws an axis-aligned rectangle with corners p1 and p2
// into m. A Filled thickness fills the rectangle.
func RectangleInPlace(m *mat.Mat, p1, p2 Point, color mat.Scalar, thickness int) error {
	if err := checkDrawTarget("rectangle", m, thickness); err != nil {
		return err
	}
	x1, x2 := orderInt(p1.X, p2.X)
	y1, y2 := orderInt(p1.Y, p2.Y)
	if thickness == Filled {
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				setPixel(m, x, y, color)
			}
		}
		return nil
	}
	for _, seg := range [4][2]Point{
		{{x1, y1}, {x2, y1}},
		{{x2, y1}, {x2, y2}},
		{{x2, y2}, {x1, y2}},
		{{x1, y2}, {x1, y1}},
	} {
		if err := LineInPlace(m, seg[0], seg[1], color, thickness); err != nil {
			return err
		}
	}
	return nil
}

// Rectangle draws a rectangle on a copy of m and returns it.
func Rectangle(m *mat.Mat, p1, p2 Point, color mat.Scalar, thickness int) (*mat.Mat, error) {
	dst, err := m.Clone()
	if err != nil {
		return nil, err
	}
	if err := RectangleInPlace(dst, p1, p2, color, thickness); err != nil {
		dst.Release()
		return nil, err
	}
	return dst, nil
}

func absDelta(a, b int) (int, int) {
	if a < b {
		return b - a, 1
	}
	return a - b, -1
}

func orderInt(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
