package morph

import (
	"testing"

	"github.com/docraster/pixcore"
	"github.com/docraster/pixcore/sel"
)

func mkBinary(t *testing.T, w, h int, on [][2]int) *pixcore.Raster {
	t.Helper()
	r, err := pixcore.New(w, h, 1)
	if err != nil {
		t.Fatal(err)
	}
	v := r.IntoView()
	for _, p := range on {
		if err := v.SetPixel(p[0], p[1], 1); err != nil {
			t.Fatal(err)
		}
	}
	return v.IntoRaster()
}

type pixelSet map[[2]int]bool

func onPixels(t *testing.T, r *pixcore.Raster) pixelSet {
	t.Helper()
	out := pixelSet{}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			v, err := r.GetPixel(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if v == 1 {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestDilateSinglePixelWithCross(t *testing.T) {
	src := mkBinary(t, 5, 5, [][2]int{{2, 2}})
	s, err := sel.Cross(1)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Dilate(src, s)
	if err != nil {
		t.Fatal(err)
	}
	got := onPixels(t, out)
	want := map[[2]int]bool{{2, 2}: true, {1, 2}: true, {3, 2}: true, {2, 1}: true, {2, 3}: true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for p := range want {
		if !got[p] {
			t.Errorf("missing expected on pixel %v", p)
		}
	}
}

func TestErodeShrinksBlock(t *testing.T) {
	var on [][2]int
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			on = append(on, [2]int{x, y})
		}
	}
	src := mkBinary(t, 6, 6, on)
	s, err := sel.Square(3)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Erode(src, s)
	if err != nil {
		t.Fatal(err)
	}
	// Only pixels with a full 3x3 neighborhood inside the 4x4 block
	// survive: that's the 2x2 interior at (1,1)-(2,2).
	got := onPixels(t, out)
	want := map[[2]int]bool{{1, 1}: true, {2, 1}: true, {1, 2}: true, {2, 2}: true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBoundaryIsAsymmetricZero(t *testing.T) {
	src := mkBinary(t, 3, 3, [][2]int{{0, 0}})
	s, err := sel.Square(3)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Erode(src, s)
	if err != nil {
		t.Fatal(err)
	}
	got := onPixels(t, out)
	if len(got) != 0 {
		t.Errorf("expected erosion of a corner pixel by a 3x3 square to vanish at the boundary, got %v", got)
	}
}

func TestOpenRemovesIsolatedNoise(t *testing.T) {
	src := mkBinary(t, 7, 7, [][2]int{{3, 3}})
	s, err := sel.Square(3)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Open(src, s)
	if err != nil {
		t.Fatal(err)
	}
	got := onPixels(t, out)
	if len(got) != 0 {
		t.Errorf("Open should remove a single isolated pixel smaller than the SE, got %v", got)
	}
}

func TestCloseFillsSmallGap(t *testing.T) {
	var on [][2]int
	for x := 0; x < 7; x++ {
		if x == 3 {
			continue
		}
		on = append(on, [2]int{x, 3})
	}
	src := mkBinary(t, 7, 7, on)
	s, err := sel.HLine(3)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Close(src, s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := out.GetPixel(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Error("Close should fill a 1-pixel gap smaller than the SE")
	}
}

func TestHitMissIsolatedPixel(t *testing.T) {
	lib, err := sel.HitMiss()
	if err != nil {
		t.Fatal(err)
	}
	s, err := lib.Get("sel_isolated")
	if err != nil {
		t.Fatal(err)
	}
	src := mkBinary(t, 5, 5, [][2]int{{2, 2}})
	out, err := HitMiss(src, s)
	if err != nil {
		t.Fatal(err)
	}
	got := onPixels(t, out)
	want := map[[2]int]bool{{2, 2}: true}
	if len(got) != 1 || !got[[2]int{2, 2}] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBrickSeparableMatchesReference(t *testing.T) {
	var on [][2]int
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%3 == 0 {
				on = append(on, [2]int{x, y})
			}
		}
	}
	src := mkBinary(t, 8, 8, on)
	brick, err := sel.Brick(3, 4, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	fast, err := dilateBrickSeparable(src, brick)
	if err != nil {
		t.Fatal(err)
	}
	slowRef, err := dilate1D(src, brick)
	if err != nil {
		t.Fatal(err)
	}
	if !onPixels(t, fast).equal(onPixels(t, slowRef)) {
		t.Error("separable brick dilation diverges from direct reference")
	}
}

func (m pixelSet) equal(other pixelSet) bool {
	if len(m) != len(other) {
		return false
	}
	for k := range m {
		if !other[k] {
			return false
		}
	}
	return true
}

func TestReconstructFillsConnectedRegion(t *testing.T) {
	var maskOn [][2]int
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			maskOn = append(maskOn, [2]int{x, y})
		}
	}
	mask := mkBinary(t, 7, 7, maskOn)
	seed := mkBinary(t, 7, 7, [][2]int{{2, 2}})
	out, err := Reconstruct(seed, mask, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !onPixels(t, out).equal(onPixels(t, mask)) {
		t.Error("reconstruction from an interior seed should recover the whole connected mask region")
	}
}

func TestDilateCompositeMatchesDirectBrick(t *testing.T) {
	var on [][2]int
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if (x*7+y*3)%11 == 0 {
				on = append(on, [2]int{x, y})
			}
		}
	}
	src := mkBinary(t, 10, 10, on)
	composite, err := DilateComposite(src, 12, true)
	if err != nil {
		t.Fatal(err)
	}
	brick, err := sel.Brick(12, 1, 6, 0)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := Dilate(src, brick)
	if err != nil {
		t.Fatal(err)
	}
	if !onPixels(t, composite).equal(onPixels(t, direct)) {
		t.Error("composite-decomposed dilation diverges from a direct brick dilation")
	}
}

func TestReconstructDoesNotCrossGap(t *testing.T) {
	mask := mkBinary(t, 7, 7, [][2]int{{1, 1}, {5, 5}})
	seed := mkBinary(t, 7, 7, [][2]int{{1, 1}})
	out, err := Reconstruct(seed, mask, 8)
	if err != nil {
		t.Fatal(err)
	}
	got := onPixels(t, out)
	if len(got) != 1 || !got[[2]int{1, 1}] {
		t.Errorf("reconstruction should not reach the disconnected component, got %v", got)
	}
}
