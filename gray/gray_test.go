package gray

import (
	"testing"

	"github.com/docraster/pixcore"
)

func mk8(t *testing.T, w, h int, vals [][]uint32) *pixcore.Raster {
	t.Helper()
	r, err := pixcore.New(w, h, 8)
	if err != nil {
		t.Fatal(err)
	}
	v := r.IntoView()
	for y, row := range vals {
		for x, val := range row {
			if err := v.SetPixel(x, y, val); err != nil {
				t.Fatal(err)
			}
		}
	}
	return v.IntoRaster()
}

func get8(t *testing.T, r *pixcore.Raster, x, y int) uint32 {
	t.Helper()
	v, err := r.GetPixel(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestDilateIsLocalMax(t *testing.T) {
	src := mk8(t, 3, 3, [][]uint32{{0, 0, 0}, {0, 200, 0}, {0, 0, 0}})
	out, err := Dilate(src, 3, 3, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 0, 0) != 200 {
		t.Errorf("corner should pick up center's 200 via dilation, got %d", get8(t, out, 0, 0))
	}
}

func TestErodeIsLocalMin(t *testing.T) {
	src := mk8(t, 3, 3, [][]uint32{{50, 50, 50}, {50, 200, 50}, {50, 50, 50}})
	out, err := Erode(src, 3, 3, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 1, 1) != 50 {
		t.Errorf("center should pick up neighbor's 50 via erosion, got %d", get8(t, out, 1, 1))
	}
}

func TestReplicateEdgeBoundaryNoArtificialDarkening(t *testing.T) {
	src := mk8(t, 2, 2, [][]uint32{{100, 100}, {100, 100}})
	out, err := Erode(src, 3, 3, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 0, 0) != 100 {
		t.Errorf("replicate-edge erosion of a flat image should not darken corners, got %d", get8(t, out, 0, 0))
	}
}

func TestGradientIsDilateMinusErode(t *testing.T) {
	src := mk8(t, 3, 1, [][]uint32{{10, 200, 10}})
	out, err := Gradient(src, 3, 1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 1, 0) != 190 {
		t.Errorf("gradient at peak = %d, want 190", get8(t, out, 1, 0))
	}
}

func TestWhiteTopHatHighlightsPeak(t *testing.T) {
	src := mk8(t, 5, 1, [][]uint32{{10, 10, 200, 10, 10}})
	out, err := WhiteTopHat(src, 3, 1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 2, 0) != 190 {
		t.Errorf("white top-hat at peak = %d, want 190", get8(t, out, 2, 0))
	}
}

func TestBlackTopHatHighlightsDip(t *testing.T) {
	src := mk8(t, 5, 1, [][]uint32{{200, 200, 10, 200, 200}})
	out, err := BlackTopHat(src, 3, 1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 2, 0) != 190 {
		t.Errorf("black top-hat at dip = %d, want 190", get8(t, out, 2, 0))
	}
}

func TestParseSequenceBasic(t *testing.T) {
	seq, err := Parse("d3.3 + e3.3 + tw5.5")
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 3 {
		t.Fatalf("len = %d, want 3", len(seq))
	}
	if seq[0].Kind != OpDilate || seq[0].Width != 3 || seq[0].Height != 3 {
		t.Errorf("step 0 = %+v", seq[0])
	}
	if seq[2].Kind != OpWhiteTopHat || seq[2].Width != 5 {
		t.Errorf("step 2 = %+v", seq[2])
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	seq, err := Parse("D3.3+TB2.2")
	if err != nil {
		t.Fatal(err)
	}
	if seq[0].Kind != OpDilate || seq[1].Kind != OpBlackTopHat {
		t.Errorf("got %+v", seq)
	}
}

func TestParseRejectsMalformedDims(t *testing.T) {
	if _, err := Parse("d3x3"); err == nil {
		t.Error("expected parse error for missing '.'")
	}
}

func TestParseRejectsUnknownLetter(t *testing.T) {
	if _, err := Parse("z3.3"); err == nil {
		t.Error("expected parse error for unknown operation letter")
	}
}

func TestEvalAppliesStepsInOrder(t *testing.T) {
	// Dilate-then-erode keeps the spread 99 at the corner; the reverse
	// order would erase the lone bright pixel first and leave 0.
	seq, err := Parse("d3.3 + e3.3")
	if err != nil {
		t.Fatal(err)
	}
	src := mk8(t, 3, 3, [][]uint32{{0, 0, 0}, {0, 99, 0}, {0, 0, 0}})
	out, err := seq.Eval(src)
	if err != nil {
		t.Fatal(err)
	}
	if get8(t, out, 0, 0) != 99 {
		t.Errorf("got %d, want 99", get8(t, out, 0, 0))
	}
}
