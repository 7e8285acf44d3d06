package gray

import "testing"

func TestReconstructPropagatesAlongMaskRidge(t *testing.T) {
	seed := mk8(t, 5, 5, [][]uint32{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 100, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	mask := mk8(t, 5, 5, [][]uint32{
		{0, 0, 150, 0, 0},
		{0, 0, 150, 0, 0},
		{150, 150, 150, 150, 150},
		{0, 0, 150, 0, 0},
		{0, 0, 150, 0, 0},
	})
	out, err := Reconstruct(seed, mask, 4)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 2, 2) != 100 {
		t.Errorf("seed value at (2,2) = %d, want 100", get8(t, out, 2, 2))
	}
	if get8(t, out, 2, 0) == 0 {
		t.Error("reconstruction should propagate along the mask ridge to (2,0)")
	}
	if get8(t, out, 0, 0) != 0 {
		t.Error("reconstruction should not leak off the mask ridge")
	}
}

func TestReconstructClampsToMask(t *testing.T) {
	seed := mk8(t, 3, 3, [][]uint32{{50, 50, 50}, {50, 50, 50}, {50, 50, 50}})
	mask := mk8(t, 3, 3, [][]uint32{{30, 30, 30}, {30, 30, 30}, {30, 30, 30}})
	out, err := Reconstruct(seed, mask, 8)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 1, 1) != 30 {
		t.Errorf("reconstruction output must never exceed mask, got %d", get8(t, out, 1, 1))
	}
}

func TestReconstructRejectsDimensionMismatch(t *testing.T) {
	seed := mk8(t, 3, 3, [][]uint32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	mask := mk8(t, 4, 4, [][]uint32{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	if _, err := Reconstruct(seed, mask, 4); err == nil {
		t.Error("expected error for mismatched dimensions")
	}
}

func TestReconstructInvPropagatesDownwardAlongRidge(t *testing.T) {
	seed := mk8(t, 5, 5, [][]uint32{
		{255, 255, 255, 255, 255},
		{255, 255, 255, 255, 255},
		{255, 255, 100, 255, 255},
		{255, 255, 255, 255, 255},
		{255, 255, 255, 255, 255},
	})
	mask := mk8(t, 5, 5, [][]uint32{
		{255, 255, 100, 255, 255},
		{255, 255, 100, 255, 255},
		{100, 100, 100, 100, 100},
		{255, 255, 100, 255, 255},
		{255, 255, 100, 255, 255},
	})
	out, err := ReconstructInv(seed, mask, 4)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 2, 2) != 100 {
		t.Errorf("seed basin value at (2,2) = %d, want 100", get8(t, out, 2, 2))
	}
	if get8(t, out, 2, 0) != 100 {
		t.Error("inverse reconstruction should propagate downward along the mask ridge to (2,0)")
	}
	if get8(t, out, 0, 0) != 255 {
		t.Error("inverse reconstruction should not leak off the mask ridge")
	}
}
