package fill

import (
	"testing"

	"github.com/docraster/pixcore"
)

func mkBin(t *testing.T, w, h int, on [][2]int) *pixcore.Raster {
	t.Helper()
	r, err := pixcore.New(w, h, 1)
	if err != nil {
		t.Fatal(err)
	}
	v := r.IntoView()
	for _, p := range on {
		v.SetPixelUnchecked(p[0], p[1], 1)
	}
	return v.IntoRaster()
}

func countOn(r *pixcore.Raster) int {
	n := 0
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if r.GetPixelUnchecked(x, y) == 1 {
				n++
			}
		}
	}
	return n
}

func TestFloodFillAllBackground(t *testing.T) {
	r := mkBin(t, 5, 5, nil)
	out, count, err := FloodFill(r, 2, 2, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if count != 25 {
		t.Errorf("count = %d, want 25", count)
	}
	if countOn(out) != 25 {
		t.Errorf("countOn = %d, want 25", countOn(out))
	}
}

func TestFloodFillNoOpSameValue(t *testing.T) {
	r := mkBin(t, 5, 5, nil)
	out, count, err := FloodFill(r, 2, 2, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 || out != r {
		t.Errorf("expected no-op, got count=%d", count)
	}
}

func TestFloodFillOutOfBounds(t *testing.T) {
	r := mkBin(t, 5, 5, nil)
	if _, _, err := FloodFill(r, 10, 10, 1, 4); err == nil {
		t.Error("expected error for out-of-bounds seed")
	}
}

func ringWithHole(t *testing.T) *pixcore.Raster {
	var on [][2]int
	for x := 1; x < 4; x++ {
		on = append(on, [2]int{x, 1}, [2]int{x, 3})
	}
	on = append(on, [2]int{1, 2}, [2]int{3, 2})
	return mkBin(t, 5, 5, on)
}

func TestFillHolesFillsInterior(t *testing.T) {
	r := ringWithHole(t)
	out, err := FillHoles(r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if out.GetPixelUnchecked(2, 2) != 1 {
		t.Error("hole at (2,2) should be filled")
	}
	if out.GetPixelUnchecked(0, 0) != 0 {
		t.Error("exterior corner should remain background")
	}
}

func TestFillHolesSolidRing5x5(t *testing.T) {
	r := ringWithHole(t)
	out, err := FillHoles(r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if countOn(out) != 9 {
		t.Errorf("count = %d, want 9 (ring(8) + hole(1))", countOn(out))
	}
}

func TestClearBorderRemovesTouchingKeepsInterior(t *testing.T) {
	var on [][2]int
	on = append(on, [2]int{0, 2}, [2]int{1, 2})
	on = append(on, [2]int{3, 3}, [2]int{4, 3}, [2]int{3, 4}, [2]int{4, 4})
	r := mkBin(t, 7, 7, on)
	out, err := ClearBorder(r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if out.GetPixelUnchecked(0, 2) != 0 || out.GetPixelUnchecked(1, 2) != 0 {
		t.Error("border-touching region should be cleared")
	}
	if out.GetPixelUnchecked(3, 3) != 1 || out.GetPixelUnchecked(4, 4) != 1 {
		t.Error("interior region should remain")
	}
}

func TestRestrictedFillRespectsManhattanLimit(t *testing.T) {
	mask := mkBin(t, 11, 1, func() [][2]int {
		var on [][2]int
		for x := 0; x < 11; x++ {
			on = append(on, [2]int{x, 0})
		}
		return on
	}())
	seed := mkBin(t, 11, 1, [][2]int{{5, 0}})
	out, err := RestrictedFill(seed, mask, 4, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if out.GetPixelUnchecked(3, 0) != 1 || out.GetPixelUnchecked(7, 0) != 1 {
		t.Error("pixels within xmax=2 of seed should be filled")
	}
	if out.GetPixelUnchecked(2, 0) != 0 || out.GetPixelUnchecked(8, 0) != 0 {
		t.Error("pixels beyond xmax=2 of seed should not be filled")
	}
}

func TestRestrictedFillNoLimitMatchesFullFill(t *testing.T) {
	mask := mkBin(t, 5, 5, func() [][2]int {
		var on [][2]int
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				on = append(on, [2]int{x, y})
			}
		}
		return on
	}())
	seed := mkBin(t, 5, 5, [][2]int{{2, 2}})
	out, err := RestrictedFill(seed, mask, 4, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if countOn(out) != 25 {
		t.Errorf("count = %d, want 25", countOn(out))
	}
}

func TestDistanceTransformZeroAtBackground(t *testing.T) {
	r := mkBin(t, 5, 5, func() [][2]int {
		var on [][2]int
		for y := 1; y < 4; y++ {
			for x := 1; x < 4; x++ {
				on = append(on, [2]int{x, y})
			}
		}
		return on
	}())
	out, err := DistanceTransform(r, 4, 8, BoundaryBackground)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.GetPixel(0, 0); v != 0 {
		t.Errorf("background pixel distance = %d, want 0", v)
	}
	if v, _ := out.GetPixel(1, 1); v != 1 {
		t.Errorf("square-edge pixel distance = %d, want 1", v)
	}
	if v, _ := out.GetPixel(2, 2); v != 2 {
		t.Errorf("center of 3x3 solid square distance = %d, want 2 (two steps to nearest background)", v)
	}
}

func TestDistanceTransformBoundsAndMonotone(t *testing.T) {
	r := mkBin(t, 5, 5, func() [][2]int {
		var on [][2]int
		for y := 1; y < 4; y++ {
			for x := 1; x < 4; x++ {
				on = append(on, [2]int{x, y})
			}
		}
		return on
	}())
	out, err := DistanceTransform(r, 4, 8, BoundaryBackground)
	if err != nil {
		t.Fatal(err)
	}
	// along row y=2, distance should fall monotonically moving from the
	// center (2,2) toward either background edge
	vals := make([]uint32, 5)
	for x := 0; x < 5; x++ {
		vals[x], _ = out.GetPixel(x, 2)
	}
	if vals[0] != 0 || vals[4] != 0 {
		t.Fatalf("background edges should be 0, got %v", vals)
	}
	if vals[2] < vals[1] || vals[1] < vals[0] {
		t.Errorf("distance should rise moving from edge to center, got %v", vals)
	}
	if vals[2] < vals[3] || vals[3] < vals[4] {
		t.Errorf("distance should fall moving from center to edge, got %v", vals)
	}
}

func TestDistanceTransformRejectsNon1bpp(t *testing.T) {
	r, _ := pixcore.New(4, 4, 8)
	if _, err := DistanceTransform(r, 4, 8, BoundaryBackground); err == nil {
		t.Error("expected error for non-1bpp input")
	}
}

func TestDistanceTransformRejectsBadOutDepth(t *testing.T) {
	r := mkBin(t, 3, 3, nil)
	if _, err := DistanceTransform(r, 4, 4, BoundaryBackground); err == nil {
		t.Error("expected error for invalid out depth")
	}
}
