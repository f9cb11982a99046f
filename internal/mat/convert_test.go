package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToScalesAndChangesDepth(t *testing.T) {
	m, err := FromFloats([]float64{1, 2, 3, 4}, 2, 2, U8C1)
	require.NoError(t, err)
	defer m.Release()

	out, err := m.ConvertTo(F64, 0.5, 10)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, F64, out.Depth())
	assert.Equal(t, 1, out.Channels())
	for i, want := range []float64{10.5, 11, 11.5, 12} {
		g, _ := out.Get(i)
		assert.Equal(t, want, g[0], "element %d", i)
	}
}

func TestConvertToNegativeDepthKeepsCurrent(t *testing.T) {
	m, err := FromFloats([]float64{100, 200, 50, 150}, 2, 2, U8C1)
	require.NoError(t, err)
	defer m.Release()

	out, err := m.ConvertTo(-1, 2, 0)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, U8, out.Depth())
	g, _ := out.Get(0, 1)
	assert.Equal(t, 255.0, g[0], "200*2 saturates at u8 max")
}

func TestConvertScaleAbsAlwaysU8(t *testing.T) {
	m, err := FromFloats([]float64{-3, 100, -300, 2.4}, 2, 2, F64C1)
	require.NoError(t, err)
	defer m.Release()

	out, err := m.ConvertScaleAbs(1, 0)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, U8, out.Depth())
	for i, want := range []float64{3, 100, 255, 2} {
		g, _ := out.Get(i)
		assert.Equal(t, want, g[0], "element %d", i)
	}
}

func TestAddWeighted(t *testing.T) {
	a, err := FromFloats([]float64{10, 20, 30, 40}, 2, 2, F64C1)
	require.NoError(t, err)
	defer a.Release()
	b, err := FromFloats([]float64{1, 2, 3, 4}, 2, 2, F64C1)
	require.NoError(t, err)
	defer b.Release()

	out, err := a.AddWeighted(b, 0.5, 2, 1, -1)
	require.NoError(t, err)
	defer out.Release()

	for i, want := range []float64{8, 15, 22, 29} {
		g, _ := out.Get(i)
		assert.Equal(t, want, g[0], "element %d", i)
	}

	short, _ := New(1, 2, F64C1)
	defer short.Release()
	_, err = a.AddWeighted(short, 1, 1, 0, -1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSetToWithMask(t *testing.T) {
	m, err := FromFloats([]float64{1, 2, 3, 4}, 2, 2, U8C1)
	require.NoError(t, err)
	defer m.Release()

	mask, err := FromFloats([]float64{1, 0, 0, 1}, 2, 2, U8C1)
	require.NoError(t, err)
	defer mask.Release()

	out, err := m.SetTo(ScalarAll(9), mask)
	require.NoError(t, err)
	assert.Same(t, m, out, "SetTo mutates in place and returns the receiver")

	for i, want := range []float64{9, 2, 3, 9} {
		g, _ := m.Get(i)
		assert.Equal(t, want, g[0], "element %d", i)
	}
}

func TestSetIdentityLeavesOffDiagonal(t *testing.T) {
	m, err := FromFloats([]float64{7, 7, 7, 7, 7, 7}, 2, 3, F64C1)
	require.NoError(t, err)
	defer m.Release()

	require.NoError(t, m.SetIdentity(ScalarAll(3)))

	want := []float64{3, 7, 7, 7, 3, 7}
	for i, w := range want {
		g, _ := m.Get(i)
		assert.Equal(t, w, g[0], "element %d", i)
	}
}
