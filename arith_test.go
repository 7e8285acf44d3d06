package pixcore

import "testing"

func mk8(w, h int, vals [][]uint32) *Raster {
	r, _ := New(w, h, 8)
	v := r.IntoView()
	for y, row := range vals {
		for x, val := range row {
			v.SetPixel(x, y, val)
		}
	}
	return v.IntoRaster()
}

func TestAddSaturates(t *testing.T) {
	a := mk8(1, 1, [][]uint32{{200}})
	b := mk8(1, 1, [][]uint32{{100}})
	out, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := out.GetPixel(0, 0)
	if got != 255 {
		t.Errorf("Add: got %d, want 255 (saturated)", got)
	}
}

func TestSubSaturatesAtZero(t *testing.T) {
	a := mk8(1, 1, [][]uint32{{10}})
	b := mk8(1, 1, [][]uint32{{50}})
	out, err := Sub(a, b)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := out.GetPixel(0, 0)
	if got != 0 {
		t.Errorf("Sub: got %d, want 0 (saturated)", got)
	}
}

func TestAbsDiff(t *testing.T) {
	a := mk8(1, 1, [][]uint32{{10}})
	b := mk8(1, 1, [][]uint32{{50}})
	out, _ := AbsDiff(a, b)
	got, _ := out.GetPixel(0, 0)
	if got != 40 {
		t.Errorf("AbsDiff: got %d, want 40", got)
	}
}

func TestArithRejects1bpp(t *testing.T) {
	a, _ := New(1, 1, 1)
	b, _ := New(1, 1, 1)
	if _, err := Add(a, b); err == nil {
		t.Error("expected error combining 1-bpp rasters with Add")
	}
}

func TestArithRejectsDepthMismatch(t *testing.T) {
	a := mk8(1, 1, [][]uint32{{1}})
	b, _ := New(1, 1, 16)
	if _, err := Add(a, b); err == nil {
		t.Error("expected error for mismatched depths")
	}
}

func TestAddConstantSaturates(t *testing.T) {
	a := mk8(1, 1, [][]uint32{{250}})
	out, err := AddConstant(a, 100)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := out.GetPixel(0, 0)
	if got != 255 {
		t.Errorf("got %d, want 255", got)
	}
}

func TestAddConstantNegativeOffset(t *testing.T) {
	a := mk8(1, 1, [][]uint32{{10}})
	out, err := AddConstant(a, -100)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := out.GetPixel(0, 0)
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestMultiplyConstant(t *testing.T) {
	a := mk8(1, 1, [][]uint32{{100}})
	out, err := MultiplyConstant(a, 3.0)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := out.GetPixel(0, 0)
	if got != 255 {
		t.Errorf("got %d, want 255 (saturated)", got)
	}
}

func TestMultiplyConstantRejectsNegative(t *testing.T) {
	a := mk8(1, 1, [][]uint32{{10}})
	if _, err := MultiplyConstant(a, -1); err == nil {
		t.Error("expected error for negative factor")
	}
}

func TestMultiplyGrayDefaultNorm(t *testing.T) {
	pix := mk8(1, 1, [][]uint32{{100}})
	gray := mk8(1, 1, [][]uint32{{200}})
	out, err := MultiplyGray(pix, gray, nil)
	if err != nil {
		t.Fatal(err)
	}
	// default norm = 1/max(gray) = 1/200, so out = 100*200/200 = 100.
	got, _ := out.GetPixel(0, 0)
	if got != 100 {
		t.Errorf("got %d, want 100", got)
	}
}

func TestRopAnd(t *testing.T) {
	dst, _ := New(2, 1, 1)
	dv := dst.IntoView()
	dv.SetPixel(0, 0, 1)
	dv.SetPixel(1, 0, 1)
	dst = dv.IntoRaster()

	src, _ := New(2, 1, 1)
	sv := src.IntoView()
	sv.SetPixel(0, 0, 1)
	sv.SetPixel(1, 0, 0)
	src = sv.IntoRaster()

	dv2 := dst.IntoView()
	if err := Rasterop(dv2, 0, 0, 2, 1, RopAnd, src, 0, 0); err != nil {
		t.Fatal(err)
	}
	dst = dv2.IntoRaster()
	p0, _ := dst.GetPixel(0, 0)
	p1, _ := dst.GetPixel(1, 0)
	if p0 != 1 || p1 != 0 {
		t.Errorf("RopAnd: got (%d,%d), want (1,0)", p0, p1)
	}
}

func TestRopSetAndClr(t *testing.T) {
	dst, _ := New(1, 1, 1)
	src, _ := New(1, 1, 1)
	v := dst.IntoView()
	if err := Rasterop(v, 0, 0, 1, 1, RopSet, src, 0, 0); err != nil {
		t.Fatal(err)
	}
	dst = v.IntoRaster()
	got, _ := dst.GetPixel(0, 0)
	if got != 1 {
		t.Errorf("RopSet: got %d, want 1", got)
	}

	v2 := dst.IntoView()
	Rasterop(v2, 0, 0, 1, 1, RopClr, src, 0, 0)
	dst = v2.IntoRaster()
	got, _ = dst.GetPixel(0, 0)
	if got != 0 {
		t.Errorf("RopClr: got %d, want 0", got)
	}
}
