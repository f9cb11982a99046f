package imgproc

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/matgo-vision/matgo/internal/mat"
)

// Interpolation selects the sampling method used by Resize.
type Interpolation int

// Supported interpolation methods.
const (
	InterNearest Interpolation = iota
	InterLinear
	InterCubic
)

// Resize scales an 8-bit image to width x height using the selected
// interpolation. Non-u8 depths are not supported by the scaler backend.
func Resize(src *mat.Mat, width, height int, interp Interpolation) (*mat.Mat, error) {
	if src.IsEmpty() {
		return nil, fmt.Errorf("%w: resize on empty matrix", mat.ErrShapeMismatch)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize target %dx%d", mat.ErrOutOfRange, width, height)
	}
	if src.Depth() != mat.U8 {
		return nil, fmt.Errorf("%w: resize supports u8, got %s", mat.ErrUnsupportedDepth, src.Depth())
	}

	var scaler draw.Scaler
	switch interp {
	case InterNearest:
		scaler = draw.NearestNeighbor
	case InterLinear:
		scaler = draw.BiLinear
	case InterCubic:
		scaler = draw.CatmullRom
	default:
		return nil, fmt.Errorf("%w: interpolation %d", mat.ErrOutOfRange, interp)
	}

	srcImg, err := matToNRGBA(src)
	if err != nil {
		return nil, err
	}
	dstImg := image.NewNRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
	return nrgbaToMat(dstImg, src.Channels())
}

// ResizeInPlace is Resize swapping the result into src.
func ResizeInPlace(src *mat.Mat, width, height int, interp Interpolation) error {
	dst, err := Resize(src, width, height, interp)
	if err != nil {
		return err
	}
	src.Adopt(dst)
	return nil
}

// matToNRGBA widens a u8 matrix of 1, 3 or 4 channels into the scaler's
// working format, preserving BGR(A) order through the round trip.
func matToNRGBA(m *mat.Mat) (*image.NRGBA, error) {
	w, h := m.Cols(), m.Rows()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	switch m.Channels() {
	case 1:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := uint8(m.At(y, x, 0))
				i := img.PixOffset(x, y)
				img.Pix[i+0] = v
				img.Pix[i+1] = v
				img.Pix[i+2] = v
				img.Pix[i+3] = 0xff
			}
		}
	case 3:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := img.PixOffset(x, y)
				img.Pix[i+0] = uint8(m.At(y, x, 0))
				img.Pix[i+1] = uint8(m.At(y, x, 1))
				img.Pix[i+2] = uint8(m.At(y, x, 2))
				img.Pix[i+3] = 0xff
			}
		}
	case 4:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := img.PixOffset(x, y)
				img.Pix[i+0] = uint8(m.At(y, x, 0))
				img.Pix[i+1] = uint8(m.At(y, x, 1))
				img.Pix[i+2] = uint8(m.At(y, x, 2))
				img.Pix[i+3] = uint8(m.At(y, x, 3))
			}
		}
	default:
		return nil, fmt.Errorf("%w: resize supports 1, 3 or 4 channels, got %d", mat.ErrShapeMismatch, m.Channels())
	}
	return img, nil
}

func nrgbaToMat(img *image.NRGBA, channels int) (*mat.Mat, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	m, err := mat.New(h, w, mat.MakeType(mat.U8, channels))
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			switch channels {
			case 1:
				m.SetAt(y, x, 0, float64(img.Pix[i]))
			case 4:
				m.SetAt(y, x, 3, float64(img.Pix[i+3]))
				fallthrough
			case 3:
				m.SetAt(y, x, 0, float64(img.Pix[i+0]))
				m.SetAt(y, x, 1, float64(img.Pix[i+1]))
				m.SetAt(y, x, 2, float64(img.Pix[i+2]))
			}
		}
	}
	return m, nil
}
