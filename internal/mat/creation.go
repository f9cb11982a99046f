package mat

import "fmt"

// Zeros returns a rows x cols matrix of the given type with every component
// set to zero. The buffer is always freshly allocated.
func Zeros(rows, cols int, t Type) (*Mat, error) {
	// New's buffer is already zero-initialized.
	return New(rows, cols, t)
}

// Ones returns a rows x cols matrix with every component set to one.
func Ones(rows, cols int, t Type) (*Mat, error) {
	m, err := New(rows, cols, t)
	if err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return m, nil
	}
	if _, err := m.SetTo(ScalarAll(1), nil); err != nil {
		m.Release()
		return nil, err
	}
	return m, nil
}

// Eye returns a rows x cols identity matrix: ones on the main diagonal,
// zeros elsewhere.
func Eye(rows, cols int, t Type) (*Mat, error) {
	m, err := New(rows, cols, t)
	if err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return m, nil
	}
	if err := m.SetIdentity(ScalarAll(1)); err != nil {
		m.Release()
		return nil, err
	}
	return m, nil
}

// FromFloats builds a matrix from row-major component data. The slice length
// must equal rows*cols*channels; each component is narrowed to the element
// depth with saturation.
func FromFloats(data []float64, rows, cols int, t Type) (*Mat, error) {
	if len(data) != rows*cols*t.Channels {
		return nil, fmt.Errorf("%w: %dx%d %s needs %d components, got %d",
			ErrShapeMismatch, rows, cols, t, rows*cols*t.Channels, len(data))
	}
	m, err := New(rows, cols, t)
	if err != nil {
		return nil, err
	}
	k := kinds[t.Depth]
	esz := t.ElemSize1()
	n := cols * t.Channels
	for r := 0; r < rows; r++ {
		row := m.RowBytes(r)
		for i := 0; i < n; i++ {
			k.writeSat(row[i*esz:], data[r*n+i])
		}
	}
	return m, nil
}
