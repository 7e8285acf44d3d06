package pixcore

import "testing"

func TestConvertTo8From1bpp(t *testing.T) {
	r, _ := New(2, 1, 1)
	v := r.IntoView()
	v.SetPixel(0, 0, 0)
	v.SetPixel(1, 0, 1)
	r = v.IntoRaster()

	out, err := ConvertTo8(r)
	if err != nil {
		t.Fatal(err)
	}
	p0, _ := out.GetPixel(0, 0)
	p1, _ := out.GetPixel(1, 0)
	if p0 != 255 || p1 != 0 {
		t.Errorf("got (%d,%d), want (255,0)", p0, p1)
	}
}

func TestConvertTo8From2bpp(t *testing.T) {
	r, _ := New(4, 1, 2)
	v := r.IntoView()
	for x := uint32(0); x < 4; x++ {
		v.SetPixel(int(x), 0, x)
	}
	r = v.IntoRaster()
	out, _ := ConvertTo8(r)
	want := []uint32{0, 85, 170, 255}
	for x := 0; x < 4; x++ {
		got, _ := out.GetPixel(x, 0)
		if got != want[x] {
			t.Errorf("x=%d: got %d, want %d", x, got, want[x])
		}
	}
}

func TestConvertTo8From16bppHighByte(t *testing.T) {
	r, _ := New(1, 1, 16)
	v := r.IntoView()
	v.SetPixel(0, 0, 0x1234)
	r = v.IntoRaster()
	out, _ := ConvertTo8(r)
	got, _ := out.GetPixel(0, 0)
	if got != 0x12 {
		t.Errorf("got %#x, want %#x", got, 0x12)
	}
}

func TestConvertTo8From32bppLuminance(t *testing.T) {
	r, _ := NewColor(1, 1, 3)
	v := r.IntoView()
	v.SetRGBA(0, 0, 100, 100, 100, 255)
	r = v.IntoRaster()
	out, _ := ConvertTo8(r)
	got, _ := out.GetPixel(0, 0)
	if got != 100 {
		t.Errorf("got %d, want 100", got)
	}
}

func TestConvertTo32ReplicatesGray(t *testing.T) {
	r, _ := New(1, 1, 8)
	v := r.IntoView()
	v.SetPixel(0, 0, 77)
	r = v.IntoRaster()
	out, err := ConvertTo32(r)
	if err != nil {
		t.Fatal(err)
	}
	rr, g, b, _, _ := out.GetRGBA(0, 0)
	if rr != 77 || g != 77 || b != 77 {
		t.Errorf("got (%d,%d,%d), want (77,77,77)", rr, g, b)
	}
}
