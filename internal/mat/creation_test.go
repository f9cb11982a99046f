package mat

import (
	"errors"
	"testing"
)

// Factory Tests

func TestZerosAndOnes(t *testing.T) {
	z, err := Zeros(2, 2, F32C2)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	defer z.Release()

	o, err := Ones(2, 2, F32C2)
	if err != nil {
		t.Fatalf("Ones failed: %v", err)
	}
	defer o.Release()

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			gz, _ := z.Get(r, c)
			if gz[0] != 0 || gz[1] != 0 {
				t.Errorf("Zeros(%d,%d) = %v", r, c, gz)
			}
			g1, _ := o.Get(r, c)
			if g1[0] != 1 || g1[1] != 1 {
				t.Errorf("Ones(%d,%d) = %v", r, c, g1)
			}
		}
	}
}

func TestEye(t *testing.T) {
	m, err := Eye(3, 3, F64C1)
	if err != nil {
		t.Fatalf("Eye failed: %v", err)
	}
	defer m.Release()

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g, _ := m.Get(r, c)
			want := 0.0
			if r == c {
				want = 1
			}
			if g[0] != want {
				t.Errorf("Eye(%d,%d) = %v, want %v", r, c, g[0], want)
			}
		}
	}
}

func TestEyeRectangular(t *testing.T) {
	m, err := Eye(2, 4, U8C1)
	if err != nil {
		t.Fatalf("Eye(2, 4) failed: %v", err)
	}
	defer m.Release()

	g, _ := m.Get(1, 1)
	if g[0] != 1 {
		t.Errorf("Eye(1,1) = %v, want 1", g[0])
	}
	g, _ = m.Get(1, 3)
	if g[0] != 0 {
		t.Errorf("Eye(1,3) = %v, want 0", g[0])
	}
}

func TestFromFloatsLengthMismatch(t *testing.T) {
	if _, err := FromFloats([]float64{1, 2, 3}, 2, 2, U8C1); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("FromFloats with short data error = %v, want ErrShapeMismatch", err)
	}
}
