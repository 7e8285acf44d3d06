package gray

import (
	"fmt"

	"github.com/docraster/pixcore"
)

func clampCoord(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func checkBrick(width, height, cx, cy int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidParameter, width, height)
	}
	if cx < 0 || cx >= width || cy < 0 || cy >= height {
		return fmt.Errorf("%w: origin (%d,%d) outside %dx%d", ErrInvalidParameter, cx, cy, width, height)
	}
	return nil
}

// Dilate computes the grayscale dilation of src (8-bpp, or 32-bpp
// processed per RGB channel with alpha preserved) by a width x height
// brick with origin (cx, cy): the local maximum over the SE
// neighborhood, under replicate-edge boundary.
func Dilate(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	return brickOp(src, width, height, cx, cy, true)
}

// Erode is the local-minimum analogue of Dilate.
func Erode(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	return brickOp(src, width, height, cx, cy, false)
}

func brickOp(src *pixcore.Raster, width, height, cx, cy int, dilate bool) (*pixcore.Raster, error) {
	if err := checkBrick(width, height, cx, cy); err != nil {
		return nil, err
	}
	switch src.Depth() {
	case 8:
		return brickOp8(src, width, height, cx, cy, dilate)
	case 32:
		return brickOp32(src, width, height, cx, cy, dilate)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, src.Depth())
	}
}

func brickOp8(src *pixcore.Raster, width, height, cx, cy int, dilate bool) (*pixcore.Raster, error) {
	w, h := src.Width(), src.Height()
	out, err := pixcore.New(w, h, 8)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v.SetPixelUnchecked(x, y, reduceWindow8(src, x, y, width, height, cx, cy, dilate))
		}
	}
	return v.IntoRaster(), nil
}

func reduceWindow8(src *pixcore.Raster, x, y, width, height, cx, cy int, dilate bool) uint32 {
	w, h := src.Width(), src.Height()
	var best uint32
	first := true
	for dy := -cy; dy <= height-1-cy; dy++ {
		sy := clampCoord(y+dy, 0, h-1)
		for dx := -cx; dx <= width-1-cx; dx++ {
			sx := clampCoord(x+dx, 0, w-1)
			v := src.GetPixelUnchecked(sx, sy)
			if first {
				best = v
				first = false
				continue
			}
			if dilate && v > best {
				best = v
			} else if !dilate && v < best {
				best = v
			}
		}
	}
	return best
}

func brickOp32(src *pixcore.Raster, width, height, cx, cy int, dilate bool) (*pixcore.Raster, error) {
	w, h := src.Width(), src.Height()
	out, err := pixcore.NewColor(w, h, src.SamplesPerPixel())
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rr, g, b, a := reduceWindow32(src, x, y, width, height, cx, cy, dilate)
			if err := v.SetRGBA(x, y, rr, g, b, a); err != nil {
				return nil, err
			}
		}
	}
	return v.IntoRaster(), nil
}

func reduceWindow32(src *pixcore.Raster, x, y, width, height, cx, cy int, dilate bool) (rr, g, b, a uint8) {
	w, h := src.Width(), src.Height()
	first := true
	for dy := -cy; dy <= height-1-cy; dy++ {
		sy := clampCoord(y+dy, 0, h-1)
		for dx := -cx; dx <= width-1-cx; dx++ {
			sx := clampCoord(x+dx, 0, w-1)
			cr, cg, cb, ca, _ := src.GetRGBA(sx, sy)
			if first {
				rr, g, b, a = cr, cg, cb, ca
				first = false
				continue
			}
			if dilate {
				rr, g, b = maxU8(rr, cr), maxU8(g, cg), maxU8(b, cb)
			} else {
				rr, g, b = minU8(rr, cr), minU8(g, cg), minU8(b, cb)
			}
		}
	}
	_, _, _, origA, _ := src.GetRGBA(x, y)
	a = origA
	return rr, g, b, a
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

// Open computes erosion followed by dilation by the same brick.
func Open(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	e, err := Erode(src, width, height, cx, cy)
	if err != nil {
		return nil, err
	}
	return Dilate(e, width, height, cx, cy)
}

// Close computes dilation followed by erosion by the same brick.
func Close(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	d, err := Dilate(src, width, height, cx, cy)
	if err != nil {
		return nil, err
	}
	return Erode(d, width, height, cx, cy)
}

// Gradient computes dilation minus erosion, pointwise (8-bpp only;
// 32-bpp per-channel subtraction is not saturating-safe for a signed
// morphological gradient and is rejected).
func Gradient(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	if src.Depth() != 8 {
		return nil, fmt.Errorf("%w: gradient requires 8-bpp, got %d", ErrUnsupportedDepth, src.Depth())
	}
	d, err := Dilate(src, width, height, cx, cy)
	if err != nil {
		return nil, err
	}
	e, err := Erode(src, width, height, cx, cy)
	if err != nil {
		return nil, err
	}
	return subtract8(d, e)
}

// WhiteTopHat computes the original minus its opening, highlighting
// small bright features.
func WhiteTopHat(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	if src.Depth() != 8 {
		return nil, fmt.Errorf("%w: top-hat requires 8-bpp, got %d", ErrUnsupportedDepth, src.Depth())
	}
	o, err := Open(src, width, height, cx, cy)
	if err != nil {
		return nil, err
	}
	return subtract8(src, o)
}

// BlackTopHat computes the closing minus the original, highlighting
// small dark features.
func BlackTopHat(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	if src.Depth() != 8 {
		return nil, fmt.Errorf("%w: top-hat requires 8-bpp, got %d", ErrUnsupportedDepth, src.Depth())
	}
	c, err := Close(src, width, height, cx, cy)
	if err != nil {
		return nil, err
	}
	return subtract8(c, src)
}

func subtract8(a, b *pixcore.Raster) (*pixcore.Raster, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return nil, fmt.Errorf("%w", ErrInvalidParameter)
	}
	out, err := pixcore.New(a.Width(), a.Height(), 8)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			av := a.GetPixelUnchecked(x, y)
			bv := b.GetPixelUnchecked(x, y)
			var d uint32
			if av > bv {
				d = av - bv
			}
			v.SetPixelUnchecked(x, y, d)
		}
	}
	return v.IntoRaster(), nil
}
