// Copyright 2026 MatGo Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat_test

import (
	"errors"
	"testing"

	"github.com/matgo-vision/matgo/mat"
)

// TestMatAPI verifies the Mat alias exposes the expected surface.
func TestMatAPI(t *testing.T) {
	m, err := mat.New(2, 3, mat.U8C3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer m.Release()

	if m.Rows() != 2 || m.Cols() != 3 {
		t.Errorf("shape = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	if m.Depth() != mat.U8 || m.Channels() != 3 {
		t.Errorf("type = %s, want u8C3", m.ElemType())
	}
	if m.ElemType().String() != "u8C3" {
		t.Errorf("ElemType().String() = %q", m.ElemType().String())
	}

	if err := m.Set(0, 0, mat.NewScalar(1, 2, 3)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := m.Get(0, 0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Equal(mat.NewScalar(1, 2, 3)) {
		t.Errorf("Get = %v, want [1 2 3 0]", got)
	}
}

// TestFactoryFunctions exercises the package-level constructors.
func TestFactoryFunctions(t *testing.T) {
	z, err := mat.Zeros(2, 2, mat.F32C1)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	defer z.Release()

	o, err := mat.Ones(2, 2, mat.F32C1)
	if err != nil {
		t.Fatalf("Ones failed: %v", err)
	}
	defer o.Release()

	e, err := mat.Eye(3, 3, mat.F64C1)
	if err != nil {
		t.Fatalf("Eye failed: %v", err)
	}
	defer e.Release()

	g, _ := e.Get(1, 1)
	if g[0] != 1 {
		t.Errorf("Eye(1,1) = %v, want 1", g[0])
	}
	g, _ = e.Get(0, 1)
	if g[0] != 0 {
		t.Errorf("Eye(0,1) = %v, want 0", g[0])
	}

	f, err := mat.FromFloats([]float64{1, 2, 3, 4}, 2, 2, mat.F64C1)
	if err != nil {
		t.Fatalf("FromFloats failed: %v", err)
	}
	defer f.Release()
	g, _ = f.Get(1, 0)
	if g[0] != 3 {
		t.Errorf("FromFloats(1,0) = %v, want 3", g[0])
	}
}

// TestSetIdentityDefault verifies the default diagonal value of 1.
func TestSetIdentityDefault(t *testing.T) {
	m, err := mat.Zeros(2, 2, mat.F64C1)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	defer m.Release()

	if err := mat.SetIdentity(m); err != nil {
		t.Fatalf("SetIdentity failed: %v", err)
	}
	g, _ := m.Get(0, 0)
	if g[0] != 1 {
		t.Errorf("default diagonal = %v, want 1", g[0])
	}

	if err := mat.SetIdentity(m, mat.ScalarAll(5)); err != nil {
		t.Fatalf("SetIdentity with scalar failed: %v", err)
	}
	g, _ = m.Get(1, 1)
	if g[0] != 5 {
		t.Errorf("explicit diagonal = %v, want 5", g[0])
	}
}

// TestRegionAlias verifies views built through the public API.
func TestRegionAlias(t *testing.T) {
	m, _ := mat.Zeros(4, 4, mat.U8C1)
	defer m.Release()

	v, err := mat.NewRegion(m, mat.Rect{X: 1, Y: 1, Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewRegion failed: %v", err)
	}
	defer v.Release()

	_ = v.Set(0, 0, mat.ScalarAll(3))
	g, _ := m.Get(1, 1)
	if g[0] != 3 {
		t.Errorf("parent (1,1) = %v after view write, want 3", g[0])
	}
}

// TestErrorValues verifies the sentinels are re-exported.
func TestErrorValues(t *testing.T) {
	_, err := mat.New(-1, 1, mat.U8C1)
	if !errors.Is(err, mat.ErrAllocation) {
		t.Errorf("New(-1, 1) error = %v, want ErrAllocation", err)
	}

	a, _ := mat.Zeros(2, 2, mat.U8C1)
	defer a.Release()
	b, _ := mat.Zeros(3, 3, mat.U8C1)
	defer b.Release()
	if _, err := mat.HConcat([]*mat.Mat{a, b}); !errors.Is(err, mat.ErrShapeMismatch) {
		t.Errorf("HConcat mismatch error = %v, want ErrShapeMismatch", err)
	}
}

// TestStructuralWrappers exercises Merge, HConcat and VConcat.
func TestStructuralWrappers(t *testing.T) {
	p1, _ := mat.Ones(2, 2, mat.U8C1)
	defer p1.Release()
	p2, _ := mat.Zeros(2, 2, mat.U8C1)
	defer p2.Release()

	merged, err := mat.Merge([]*mat.Mat{p1, p2})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	defer merged.Release()
	if merged.Channels() != 2 {
		t.Errorf("merged channels = %d, want 2", merged.Channels())
	}

	h, err := mat.HConcat([]*mat.Mat{p1, p2})
	if err != nil {
		t.Fatalf("HConcat failed: %v", err)
	}
	defer h.Release()
	if h.Cols() != 4 {
		t.Errorf("hconcat cols = %d, want 4", h.Cols())
	}

	v, err := mat.VConcat([]*mat.Mat{p1, p2})
	if err != nil {
		t.Fatalf("VConcat failed: %v", err)
	}
	defer v.Release()
	if v.Rows() != 4 {
		t.Errorf("vconcat rows = %d, want 4", v.Rows())
	}
}
