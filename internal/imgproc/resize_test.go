package imgproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matgo-vision/matgo/internal/mat"
)

func TestResizeUpscalesConstantImage(t *testing.T) {
	data := make([]float64, 2*2*3)
	for i := 0; i < len(data); i += 3 {
		data[i], data[i+1], data[i+2] = 10, 20, 30
	}
	src, err := mat.FromFloats(data, 2, 2, mat.U8C3)
	require.NoError(t, err)
	defer src.Release()

	dst, err := Resize(src, 4, 4, InterNearest)
	require.NoError(t, err)
	defer dst.Release()

	require.Equal(t, 4, dst.Rows())
	require.Equal(t, 4, dst.Cols())
	require.Equal(t, src.ElemType(), dst.ElemType())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, 10.0, dst.At(y, x, 0), "(%d,%d) channel 0", y, x)
			assert.Equal(t, 30.0, dst.At(y, x, 2), "(%d,%d) channel 2", y, x)
		}
	}
}

func TestResizeDownscalesGray(t *testing.T) {
	data := make([]float64, 16)
	for i := range data {
		data[i] = 128
	}
	src, err := mat.FromFloats(data, 4, 4, mat.U8C1)
	require.NoError(t, err)
	defer src.Release()

	for _, interp := range []Interpolation{InterNearest, InterLinear, InterCubic} {
		dst, err := Resize(src, 2, 2, interp)
		require.NoError(t, err, "interpolation %d", interp)
		assert.Equal(t, 2, dst.Rows())
		assert.Equal(t, 128.0, dst.At(0, 0, 0), "interpolation %d", interp)
		dst.Release()
	}
}

func TestResizeArgumentErrors(t *testing.T) {
	src, err := mat.New(4, 4, mat.F32C1)
	require.NoError(t, err)
	defer src.Release()

	_, err = Resize(src, 2, 2, InterNearest)
	assert.ErrorIs(t, err, mat.ErrUnsupportedDepth, "non-u8 input")

	u8, err := mat.New(4, 4, mat.U8C1)
	require.NoError(t, err)
	defer u8.Release()
	_, err = Resize(u8, 0, 2, InterNearest)
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
	_, err = Resize(u8, 2, 2, Interpolation(9))
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
}

func TestResizeInPlace(t *testing.T) {
	src, err := mat.New(4, 4, mat.U8C1)
	require.NoError(t, err)
	defer src.Release()

	require.NoError(t, ResizeInPlace(src, 8, 6, InterLinear))
	assert.Equal(t, 6, src.Rows())
	assert.Equal(t, 8, src.Cols())
}
