package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagIsView(t *testing.T) {
	m, err := FromFloats([]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3, 3, F64C1)
	require.NoError(t, err)
	defer m.Release()

	d, err := m.Diag(0)
	require.NoError(t, err)
	defer d.Release()

	require.Equal(t, 3, d.Rows())
	require.Equal(t, 1, d.Cols())
	for i, want := range []float64{1, 5, 9} {
		g, _ := d.Get(i, 0)
		assert.Equal(t, want, g[0], "diagonal element %d", i)
	}

	// Writing through the diagonal view is visible in the parent.
	require.NoError(t, d.Set(1, 0, ScalarAll(50)))
	g, _ := m.Get(1, 1)
	assert.Equal(t, 50.0, g[0])
}

func TestDiagOffsets(t *testing.T) {
	m, err := FromFloats([]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3, 3, F64C1)
	require.NoError(t, err)
	defer m.Release()

	below, err := m.Diag(1)
	require.NoError(t, err)
	defer below.Release()
	require.Equal(t, 2, below.Rows())
	for i, want := range []float64{4, 8} {
		g, _ := below.Get(i, 0)
		assert.Equal(t, want, g[0], "lower diagonal element %d", i)
	}

	above, err := m.Diag(-1)
	require.NoError(t, err)
	defer above.Release()
	require.Equal(t, 2, above.Rows())
	for i, want := range []float64{2, 6} {
		g, _ := above.Get(i, 0)
		assert.Equal(t, want, g[0], "upper diagonal element %d", i)
	}

	_, err = m.Diag(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSplitMergeIdentity(t *testing.T) {
	m, err := FromFloats([]float64{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}, 2, 2, U8C3)
	require.NoError(t, err)
	defer m.Release()

	planes, err := m.Split()
	require.NoError(t, err)
	require.Len(t, planes, 3)
	defer releaseAll(planes)

	for c, plane := range planes {
		assert.Equal(t, 1, plane.Channels(), "plane %d", c)
		assert.Equal(t, U8, plane.Depth(), "plane %d", c)
	}
	g, _ := planes[1].Get(0, 1)
	assert.Equal(t, 5.0, g[0], "second channel of (0,1)")

	back, err := Merge(planes)
	require.NoError(t, err)
	defer back.Release()

	require.Equal(t, m.ElemType(), back.ElemType())
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			want, _ := m.Get(r, c)
			got, _ := back.Get(r, c)
			assert.Equal(t, want, got, "(%d,%d)", r, c)
		}
	}

	// Split planes are copies: writing one leaves the source alone.
	_ = planes[0].Set(0, 0, ScalarAll(99))
	g, _ = m.Get(0, 0)
	assert.Equal(t, 1.0, g[0])
}

func TestMergeMismatch(t *testing.T) {
	a, _ := New(2, 2, U8C1)
	defer a.Release()
	b, _ := New(2, 3, U8C1)
	defer b.Release()
	c, _ := New(2, 2, F32C1)
	defer c.Release()

	_, err := Merge([]*Mat{a, b})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Merge([]*Mat{a, c})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Merge(nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestHConcat(t *testing.T) {
	a, err := FromFloats([]float64{1, 2, 3, 4}, 2, 2, F64C1)
	require.NoError(t, err)
	defer a.Release()
	b, err := FromFloats([]float64{5, 6}, 2, 1, F64C1)
	require.NoError(t, err)
	defer b.Release()

	out, err := HConcat([]*Mat{a, b})
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, 2, out.Rows())
	require.Equal(t, 3, out.Cols())
	want := []float64{1, 2, 5, 3, 4, 6}
	for i, w := range want {
		g, _ := out.Get(i)
		assert.Equal(t, w, g[0], "element %d", i)
	}

	tall, _ := New(3, 2, F64C1)
	defer tall.Release()
	_, err = HConcat([]*Mat{a, tall})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestVConcat(t *testing.T) {
	a, err := FromFloats([]float64{1, 2}, 1, 2, F64C1)
	require.NoError(t, err)
	defer a.Release()
	b, err := FromFloats([]float64{3, 4, 5, 6}, 2, 2, F64C1)
	require.NoError(t, err)
	defer b.Release()

	out, err := VConcat([]*Mat{a, b})
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, 3, out.Rows())
	require.Equal(t, 2, out.Cols())
	for i, w := range []float64{1, 2, 3, 4, 5, 6} {
		g, _ := out.Get(i)
		assert.Equal(t, w, g[0], "element %d", i)
	}

	wide, _ := New(1, 3, F64C1)
	defer wide.Release()
	_, err = VConcat([]*Mat{a, wide})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
