package pixcore

import (
	"fmt"
	"math"
)

var lut2to8 = [4]uint32{0, 85, 170, 255}

// ConvertTo8 produces an 8-bpp gray raster from any source depth, per the
// table in spec §4.3. Colormapped sources are not yet supported: expanding
// through the palette first is a documented "not supported" case, matching
// the source repository's leptonica heritage where this path was left
// unimplemented (spec §9, open question).
func ConvertTo8(src *Raster) (*Raster, error) {
	if src.HasColormap() {
		return nil, fmt.Errorf("%w: colormapped source expansion to 8-bpp", ErrNotSupported)
	}
	out, err := New(src.Width(), src.Height(), 8)
	if err != nil {
		return nil, err
	}
	view := out.IntoView()
	switch src.Depth() {
	case 1:
		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				p, _ := src.GetPixel(x, y)
				if p == 0 {
					view.SetPixel(x, y, 255)
				} else {
					view.SetPixel(x, y, 0)
				}
			}
		}
	case 2:
		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				p, _ := src.GetPixel(x, y)
				view.SetPixel(x, y, lut2to8[p])
			}
		}
	case 4:
		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				p, _ := src.GetPixel(x, y)
				view.SetPixel(x, y, p*255/15)
			}
		}
	case 8:
		view.IntoRaster()
		return src.Clone(), nil
	case 16:
		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				p, _ := src.GetPixel(x, y)
				view.SetPixel(x, y, p>>8)
			}
		}
	case 32:
		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				r, g, b, _, _ := src.GetRGBA(x, y)
				gray := math.Round(0.30*float64(r) + 0.50*float64(g) + 0.20*float64(b))
				if gray < 0 {
					gray = 0
				}
				if gray > 255 {
					gray = 255
				}
				view.SetPixel(x, y, uint32(gray))
			}
		}
	default:
		view.IntoRaster()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, src.Depth())
	}
	return view.IntoRaster(), nil
}

// ConvertTo32 packs a grayscale source replicated across R=G=B, or expands
// a colormapped source through its palette.
func ConvertTo32(src *Raster) (*Raster, error) {
	if src.Depth() == 32 {
		return src.Clone(), nil
	}
	if src.HasColormap() {
		cm := src.Colormap()
		out, err := NewColor(src.Width(), src.Height(), 4)
		if err != nil {
			return nil, err
		}
		view := out.IntoView()
		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				idx, _ := src.GetPixel(x, y)
				col, err := cm.GetRGBA(int(idx))
				if err != nil {
					view.IntoRaster()
					return nil, fmt.Errorf("%w: %v", ErrIndexOutOfBounds, err)
				}
				view.SetRGBA(x, y, col.R, col.G, col.B, col.A)
			}
		}
		return view.IntoRaster(), nil
	}
	gray, err := ConvertTo8(src)
	if err != nil {
		return nil, err
	}
	out, err := NewColor(src.Width(), src.Height(), 3)
	if err != nil {
		return nil, err
	}
	view := out.IntoView()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			v, _ := gray.GetPixel(x, y)
			view.SetRGBA(x, y, uint8(v), uint8(v), uint8(v), 255)
		}
	}
	return view.IntoRaster(), nil
}
