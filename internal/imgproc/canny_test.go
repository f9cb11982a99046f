package imgproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matgo-vision/matgo/internal/mat"
)

// stepEdge builds an 8x8 u8 image: dark left half, bright right half.
func stepEdge(t *testing.T) *mat.Mat {
	t.Helper()
	data := make([]float64, 64)
	for y := 0; y < 8; y++ {
		for x := 4; x < 8; x++ {
			data[y*8+x] = 255
		}
	}
	m, err := mat.FromFloats(data, 8, 8, mat.U8C1)
	require.NoError(t, err)
	return m
}

func TestCannyFindsStepEdge(t *testing.T) {
	src := stepEdge(t)
	defer src.Release()

	edges, err := Canny(src, 50, 150, 3, false)
	require.NoError(t, err)
	defer edges.Release()

	require.Equal(t, mat.U8C1, edges.ElemType())

	// The edge runs vertically around the step; flat regions stay dark.
	edgeHits := 0
	for y := 0; y < 8; y++ {
		for x := 3; x <= 4; x++ {
			if edges.At(y, x, 0) == 255 {
				edgeHits++
			}
		}
		assert.Equal(t, 0.0, edges.At(y, 0, 0), "flat dark region row %d", y)
		assert.Equal(t, 0.0, edges.At(y, 7, 0), "flat bright region row %d", y)
	}
	assert.Greater(t, edgeHits, 4, "step edge should be detected")
}

func TestCannyL2Gradient(t *testing.T) {
	src := stepEdge(t)
	defer src.Release()

	edges, err := Canny(src, 50, 150, 3, true)
	require.NoError(t, err)
	defer edges.Release()

	found := false
	for y := 0; y < 8 && !found; y++ {
		for x := 0; x < 8; x++ {
			if edges.At(y, x, 0) == 255 {
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}

func TestCannySwappedThresholds(t *testing.T) {
	src := stepEdge(t)
	defer src.Release()

	a, err := Canny(src, 150, 50, 3, false)
	require.NoError(t, err)
	defer a.Release()
	b, err := Canny(src, 50, 150, 3, false)
	require.NoError(t, err)
	defer b.Release()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, b.At(y, x, 0), a.At(y, x, 0), "(%d,%d)", y, x)
		}
	}
}

func TestCannyArgumentErrors(t *testing.T) {
	color, err := mat.New(4, 4, mat.U8C3)
	require.NoError(t, err)
	defer color.Release()
	_, err = Canny(color, 50, 150, 3, false)
	assert.ErrorIs(t, err, mat.ErrShapeMismatch)

	f, err := mat.New(4, 4, mat.F64C1)
	require.NoError(t, err)
	defer f.Release()
	_, err = Canny(f, 50, 150, 3, false)
	assert.ErrorIs(t, err, mat.ErrShapeMismatch)

	gray, err := mat.New(4, 4, mat.U8C1)
	require.NoError(t, err)
	defer gray.Release()
	_, err = Canny(gray, 50, 150, 5, false)
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
}

func TestCannyInPlace(t *testing.T) {
	src := stepEdge(t)
	defer src.Release()

	require.NoError(t, CannyInPlace(src, 50, 150, 3, false))
	assert.Equal(t, mat.U8C1, src.ElemType())
}
