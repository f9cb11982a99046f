package mat

import (
	"fmt"
	"math"
	"strings"
)

// Rect is a rectangular region of interest inside a matrix, in element
// coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Mat is a header over a possibly-shared, dynamically-typed dense 2-D array.
// The header never owns bytes directly; it owns a reference to a shared
// buffer, which may be aliased by other headers (views, header copies).
type Mat struct {
	buffer   *sharedBuffer
	rows     int
	cols     int
	elemType Type
	step     int // row pitch in bytes
	offset   int // byte offset of element (0,0) inside the buffer
}

// New creates a rows x cols matrix of the given element type with a freshly
// allocated, zero-initialized buffer. A zero rows or cols yields an empty
// handle with no buffer.
func New(rows, cols int, t Type) (*Mat, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrAllocation, rows, cols)
	}
	if !t.Depth.Valid() {
		return nil, fmt.Errorf("%w: depth %d", ErrUnsupportedDepth, int(t.Depth))
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: channel count %d", ErrAllocation, t.Channels)
	}
	if rows == 0 || cols == 0 {
		return &Mat{rows: rows, cols: cols, elemType: t}, nil
	}

	elemSize := t.ElemSize()
	if cols > math.MaxInt/elemSize {
		return nil, fmt.Errorf("%w: size overflow %dx%d %s", ErrAllocation, rows, cols, t)
	}
	step := cols * elemSize
	if rows > math.MaxInt/step {
		return nil, fmt.Errorf("%w: size overflow %dx%d %s", ErrAllocation, rows, cols, t)
	}

	return &Mat{
		buffer:   newSharedBuffer(rows * step),
		rows:     rows,
		cols:     cols,
		elemType: t,
		step:     step,
	}, nil
}

// NewRegion creates a view of parent restricted to the region r. No data is
// copied: the view shares parent's buffer with its origin offset into it, and
// the buffer's reference count is incremented. Mutations through the view are
// visible through the parent and vice versa.
func NewRegion(parent *Mat, r Rect) (*Mat, error) {
	if parent == nil || parent.IsEmpty() {
		return nil, fmt.Errorf("%w: region of empty matrix", ErrOutOfRange)
	}
	if r.Width < 0 || r.Height < 0 ||
		r.X < 0 || r.Y < 0 ||
		r.X+r.Width > parent.cols || r.Y+r.Height > parent.rows {
		return nil, fmt.Errorf("%w: region %+v outside %dx%d", ErrOutOfRange, r, parent.rows, parent.cols)
	}
	if r.Width == 0 || r.Height == 0 {
		return &Mat{rows: r.Height, cols: r.Width, elemType: parent.elemType}, nil
	}

	parent.buffer.addRef()
	return &Mat{
		buffer:   parent.buffer,
		rows:     r.Height,
		cols:     r.Width,
		elemType: parent.elemType,
		step:     parent.step,
		offset:   parent.offset + r.Y*parent.step + r.X*parent.elemType.ElemSize(),
	}, nil
}

// Rows returns the number of rows.
func (m *Mat) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mat) Cols() int { return m.cols }

// Dims returns the number of dimensions: 2 for a non-empty matrix, 0 for an
// empty one.
func (m *Mat) Dims() int {
	if m.IsEmpty() {
		return 0
	}
	return 2
}

// Depth returns the element depth tag.
func (m *Mat) Depth() Depth { return m.elemType.Depth }

// Channels returns the per-element channel count.
func (m *Mat) Channels() int { return m.elemType.Channels }

// ElemType returns the full element-type tag.
func (m *Mat) ElemType() Type { return m.elemType }

// Step returns the row pitch in bytes.
func (m *Mat) Step() int { return m.step }

// Total returns the number of elements (rows * cols).
func (m *Mat) Total() int { return m.rows * m.cols }

// IsEmpty reports whether the matrix has no elements.
func (m *Mat) IsEmpty() bool {
	return m == nil || m.rows == 0 || m.cols == 0 || m.buffer == nil
}

// IsContinuous reports whether the rows are stored without gaps, i.e. the
// handle is not a column-restricted view.
func (m *Mat) IsContinuous() bool {
	return m.IsEmpty() || m.step == m.cols*m.elemType.ElemSize()
}

// SameShape reports whether other has identical rows, cols and element type.
func (m *Mat) SameShape(other *Mat) bool {
	return other != nil && m.rows == other.rows && m.cols == other.cols &&
		m.elemType == other.elemType
}

// RowBytes returns the backing bytes of row r, restricted to the view's
// columns. The slice aliases the shared buffer.
func (m *Mat) RowBytes(r int) []byte {
	start := m.offset + r*m.step
	return m.buffer.data[start : start+m.cols*m.elemType.ElemSize()]
}

// Clone returns a deep copy: a fresh buffer with byte-identical contents and
// an independent lifetime. It never merely bumps the reference count.
func (m *Mat) Clone() (*Mat, error) {
	if m.IsEmpty() {
		return &Mat{rows: m.rows, cols: m.cols, elemType: m.elemType}, nil
	}
	dst, err := New(m.rows, m.cols, m.elemType)
	if err != nil {
		return nil, err
	}
	for r := 0; r < m.rows; r++ {
		copy(dst.RowBytes(r), m.RowBytes(r))
	}
	return dst, nil
}

// Release drops this header's reference to the shared buffer. The buffer is
// deallocated when the last header releases it. Release is idempotent and
// safe on an empty handle.
func (m *Mat) Release() {
	if m == nil || m.buffer == nil {
		return
	}
	m.buffer.release()
	m.buffer = nil
	m.rows = 0
	m.cols = 0
}

// Adopt replaces m's header with src's, releasing m's previous buffer. The
// buffer reference moves from src to m: src is left empty and must not be
// released again. The in-place operation variants use it to swap a freshly
// computed result into the receiver.
func (m *Mat) Adopt(src *Mat) {
	if m == src {
		return
	}
	m.buffer.release()
	*m = *src
	src.buffer = nil
	src.rows = 0
	src.cols = 0
}

// shareHeader returns a header aliasing the same buffer with the given
// geometry, incrementing the reference count. Used by diagonal and region
// construction.
func (m *Mat) shareHeader(rows, cols, step, offset int, t Type) *Mat {
	m.buffer.addRef()
	return &Mat{
		buffer:   m.buffer,
		rows:     rows,
		cols:     cols,
		elemType: t,
		step:     step,
		offset:   offset,
	}
}

// String returns a deterministic human-readable dump of the matrix header
// and its values.
func (m *Mat) String() string {
	if m.IsEmpty() {
		return fmt.Sprintf("<Mat:%dx%d,depth=%s,channels=%d,[]>", m.rows, m.cols, m.elemType.Depth, m.elemType.Channels)
	}
	k, err := kindOf(m.elemType.Depth)
	if err != nil {
		// Corrupted depth tag; dump the header only.
		return fmt.Sprintf("<Mat:%dx%d,depth=%s,channels=%d,[]>", m.rows, m.cols, m.elemType.Depth, m.elemType.Channels)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "<Mat:%dx%d,depth=%s,channels=%d,\n", m.rows, m.cols, m.elemType.Depth, m.elemType.Channels)
	esz := m.elemType.ElemSize1()
	for r := 0; r < m.rows; r++ {
		row := m.RowBytes(r)
		sb.WriteByte('[')
		for i := 0; i < m.cols*m.elemType.Channels; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatComponent(k.read(row[i*esz:]), m.elemType.Depth))
		}
		sb.WriteString("]\n")
	}
	sb.WriteByte('>')
	return sb.String()
}

func formatComponent(v float64, d Depth) string {
	if d == F32 || d == F64 {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%d", int64(v))
}
