// Package imgcodec implements the image codec boundary: encoding and
// decoding matrices to and from PNG, JPEG, BMP and TIFF byte streams, and
// the thin filesystem wrappers over them.
package imgcodec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/matgo-vision/matgo/internal/mat"
)

// Flag controls the channel layout of a decoded image, following the
// wrapped library's imread convention.
type Flag int

const (
	// LoadUnchanged keeps the decoded channel count (including alpha).
	LoadUnchanged Flag = -1
	// LoadGrayscale always converts the decoded image to a single channel.
	LoadGrayscale Flag = 0
	// LoadColor always converts the decoded image to three channels.
	LoadColor Flag = 1
)

// Encoder parameter keys. Parameters are passed as flat key/value pairs.
const (
	// ParamJPEGQuality selects JPEG quality 0-100.
	ParamJPEGQuality = 1
	// ParamPNGCompression selects the PNG compression level 0-9.
	ParamPNGCompression = 16
)

// Decoded color matrices use the wrapped library's interleaved BGR(A)
// channel order, not RGB.

// Decode reads an image from an in-memory byte stream and wraps it in a
// fresh 8-bit matrix. Unrecognizable data fails with mat.ErrDecode.
func Decode(data []byte, flag Flag) (*mat.Mat, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mat.ErrDecode, err)
	}
	return fromImage(img, flag)
}

// Encode writes the matrix into an in-memory byte stream in the format named
// by the extension hint (".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff").
// params is a flat list of key/value pairs.
func Encode(ext string, m *mat.Mat, params []int) ([]byte, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("%w: empty matrix", mat.ErrEncode)
	}
	if m.Depth() != mat.U8 {
		return nil, fmt.Errorf("%w: depth %s not encodable, convert to u8 first", mat.ErrEncode, m.Depth())
	}
	if len(params)%2 != 0 {
		return nil, fmt.Errorf("%w: odd encoder parameter list length %d", mat.ErrEncode, len(params))
	}
	img, err := toImage(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch strings.ToLower(ext) {
	case ".png", "png":
		enc := png.Encoder{CompressionLevel: pngLevel(params)}
		err = enc.Encode(&buf, img)
	case ".jpg", ".jpeg", "jpg", "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality(params)})
	case ".bmp", "bmp":
		err = bmp.Encode(&buf, img)
	case ".tif", ".tiff", "tif", "tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", mat.ErrEncode, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mat.ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// Load reads and decodes an image file. Both read and decode failures
// surface as mat.ErrIO.
func Load(path string, flag Flag) (*mat.Mat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mat.ErrIO, err)
	}
	m, err := Decode(data, flag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", mat.ErrIO, path, err)
	}
	return m, nil
}

// Save encodes the matrix in the format chosen by the path's extension and
// writes it to the filesystem.
func Save(path string, m *mat.Mat, params []int) error {
	data, err := Encode(filepath.Ext(path), m, params)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", mat.ErrIO, err)
	}
	return nil
}

func jpegQuality(params []int) int {
	q := jpeg.DefaultQuality
	for i := 0; i+1 < len(params); i += 2 {
		if params[i] == ParamJPEGQuality {
			q = params[i+1]
		}
	}
	return q
}

func pngLevel(params []int) png.CompressionLevel {
	for i := 0; i+1 < len(params); i += 2 {
		if params[i] == ParamPNGCompression {
			if params[i+1] == 0 {
				return png.NoCompression
			}
			if params[i+1] >= 7 {
				return png.BestCompression
			}
			return png.BestSpeed
		}
	}
	return png.DefaultCompression
}

// fromImage converts a decoded image into a u8 matrix honoring the load
// flag. The matrix always owns a fresh buffer.
func fromImage(img image.Image, flag Flag) (*mat.Mat, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	channels := 3
	switch flag {
	case LoadGrayscale:
		channels = 1
	case LoadColor:
		channels = 3
	case LoadUnchanged:
		switch v := img.(type) {
		case *image.Gray, *image.Gray16:
			channels = 1
		case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
			channels = 4
		case *image.Paletted:
			// 8-bpp BMPs decode to a paletted image; an all-gray palette
			// is a grayscale file.
			if grayPalette(v.Palette) {
				channels = 1
			}
		}
	}

	m, err := mat.New(h, w, mat.MakeType(mat.U8, channels))
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			switch channels {
			case 1:
				m.SetAt(y, x, 0, grayValue(r, g, b))
			case 3:
				m.SetAt(y, x, 0, float64(b>>8))
				m.SetAt(y, x, 1, float64(g>>8))
				m.SetAt(y, x, 2, float64(r>>8))
			case 4:
				m.SetAt(y, x, 0, float64(b>>8))
				m.SetAt(y, x, 1, float64(g>>8))
				m.SetAt(y, x, 2, float64(r>>8))
				m.SetAt(y, x, 3, float64(a>>8))
			}
		}
	}
	return m, nil
}

// grayPalette reports whether every palette entry has equal color
// components.
func grayPalette(p color.Palette) bool {
	for _, c := range p {
		r, g, b, _ := c.RGBA()
		if r != g || g != b {
			return false
		}
	}
	return true
}

// grayValue applies the BT.601 luma weights to 16-bit color components.
func grayValue(r, g, b uint32) float64 {
	return 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
}

// toImage converts a u8 matrix back to a stdlib image for the encoders.
func toImage(m *mat.Mat) (image.Image, error) {
	w, h := m.Cols(), m.Rows()
	switch m.Channels() {
	case 1:
		img := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetGray(x, y, color.Gray{Y: uint8(m.At(y, x, 0))})
			}
		}
		return img, nil
	case 3:
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetRGBA(x, y, color.RGBA{
					R: uint8(m.At(y, x, 2)),
					G: uint8(m.At(y, x, 1)),
					B: uint8(m.At(y, x, 0)),
					A: 0xff,
				})
			}
		}
		return img, nil
	case 4:
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, color.NRGBA{
					R: uint8(m.At(y, x, 2)),
					G: uint8(m.At(y, x, 1)),
					B: uint8(m.At(y, x, 0)),
					A: uint8(m.At(y, x, 3)),
				})
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("%w: %d-channel matrix not encodable", mat.ErrEncode, m.Channels())
	}
}
