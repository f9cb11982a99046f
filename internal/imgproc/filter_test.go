package imgproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matgo-vision/matgo/internal/mat"
)

// columnRamp builds a rows x cols f64 image whose value is 10*x in every row.
func columnRamp(t *testing.T, rows, cols int) *mat.Mat {
	t.Helper()
	data := make([]float64, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			data[y*cols+x] = float64(10 * x)
		}
	}
	m, err := mat.FromFloats(data, rows, cols, mat.F64C1)
	require.NoError(t, err)
	return m
}

func TestSobelHorizontalGradient(t *testing.T) {
	src := columnRamp(t, 4, 5)
	defer src.Release()

	dst, err := Sobel(src, -1, 1, 0, 3, 1, 0)
	require.NoError(t, err)
	defer dst.Release()

	// A constant slope of 10/column gives (10+10)*(1+2+1) = 80 away from
	// the borders; the reflected border cancels the derivative to zero.
	assert.Equal(t, 80.0, dst.At(1, 2, 0))
	assert.Equal(t, 80.0, dst.At(2, 1, 0))
	assert.Equal(t, 0.0, dst.At(1, 0, 0))
	assert.Equal(t, 0.0, dst.At(1, 4, 0))

	// No vertical variation, so the y-derivative vanishes everywhere.
	dy, err := Sobel(src, -1, 0, 1, 3, 1, 0)
	require.NoError(t, err)
	defer dy.Release()
	assert.Equal(t, 0.0, dy.At(1, 2, 0))
}

func TestSobelScaleAndDelta(t *testing.T) {
	src := columnRamp(t, 4, 5)
	defer src.Release()

	dst, err := Sobel(src, -1, 1, 0, 3, 0.25, 2)
	require.NoError(t, err)
	defer dst.Release()

	assert.Equal(t, 22.0, dst.At(1, 2, 0))
}

func TestSobelArgumentErrors(t *testing.T) {
	src := columnRamp(t, 4, 5)
	defer src.Release()

	_, err := Sobel(src, -1, 1, 0, 5, 1, 0)
	assert.ErrorIs(t, err, mat.ErrOutOfRange, "aperture 5")
	_, err = Sobel(src, -1, 0, 0, 3, 1, 0)
	assert.ErrorIs(t, err, mat.ErrOutOfRange, "dx+dy == 0")
	_, err = Sobel(src, -1, 3, 0, 3, 1, 0)
	assert.ErrorIs(t, err, mat.ErrOutOfRange, "order 3")
}

func TestSobelInPlace(t *testing.T) {
	src := columnRamp(t, 4, 5)
	defer src.Release()

	require.NoError(t, SobelInPlace(src, -1, 1, 0, 3, 1, 0))
	assert.Equal(t, 80.0, src.At(1, 2, 0))
}

func TestLaplacianPointResponse(t *testing.T) {
	data := make([]float64, 25)
	data[2*5+2] = 100
	src, err := mat.FromFloats(data, 5, 5, mat.F64C1)
	require.NoError(t, err)
	defer src.Release()

	dst, err := Laplacian(src, -1, 1, 1, 0)
	require.NoError(t, err)
	defer dst.Release()

	assert.Equal(t, -400.0, dst.At(2, 2, 0))
	assert.Equal(t, 100.0, dst.At(2, 1, 0))
	assert.Equal(t, 100.0, dst.At(1, 2, 0))
	assert.Equal(t, 0.0, dst.At(0, 0, 0))

	_, err = Laplacian(src, -1, 5, 1, 0)
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
}

func TestBlurCenterMean(t *testing.T) {
	src, err := mat.FromFloats([]float64{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	}, 3, 3, mat.F64C1)
	require.NoError(t, err)
	defer src.Release()

	dst, err := Blur(src, 3, 3)
	require.NoError(t, err)
	defer dst.Release()

	assert.InDelta(t, 4.0, dst.At(1, 1, 0), 1e-9)

	_, err = Blur(src, 0, 3)
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
}

func TestGaussianBlurPreservesConstant(t *testing.T) {
	src, err := mat.FromFloats([]float64{
		50, 50, 50, 50,
		50, 50, 50, 50,
		50, 50, 50, 50,
	}, 3, 4, mat.U8C1)
	require.NoError(t, err)
	defer src.Release()

	dst, err := GaussianBlur(src, 3, 3, 0, 0)
	require.NoError(t, err)
	defer dst.Release()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, 50.0, dst.At(y, x, 0), "(%d,%d)", y, x)
		}
	}

	_, err = GaussianBlur(src, 4, 3, 0, 0)
	assert.ErrorIs(t, err, mat.ErrOutOfRange, "even kernel side")
}

func TestMedianBlurRemovesSpike(t *testing.T) {
	data := []float64{
		10, 10, 10,
		10, 255, 10,
		10, 10, 10,
	}
	src, err := mat.FromFloats(data, 3, 3, mat.U8C1)
	require.NoError(t, err)
	defer src.Release()

	dst, err := MedianBlur(src, 3)
	require.NoError(t, err)
	defer dst.Release()

	assert.Equal(t, 10.0, dst.At(1, 1, 0))

	_, err = MedianBlur(src, 4)
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
	_, err = MedianBlur(src, 1)
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
}

func TestBorderIdxReflects(t *testing.T) {
	assert.Equal(t, 1, borderIdx(-1, 5))
	assert.Equal(t, 2, borderIdx(-2, 5))
	assert.Equal(t, 3, borderIdx(5, 5))
	assert.Equal(t, 2, borderIdx(6, 5))
	assert.Equal(t, 0, borderIdx(3, 1))
	assert.Equal(t, 2, borderIdx(2, 5))
}
