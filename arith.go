package pixcore

import (
	"fmt"

	"github.com/docraster/pixcore/internal/numeric"
)

// maxValForDepth returns the largest representable per-channel value for
// depth (8 or 16 bpp gray, or a single RGB/RGBA channel of a 32-bpp
// raster, which is always byte-ranged).
func maxValForDepth(depth int) uint32 {
	switch depth {
	case 8, 32:
		return 255
	case 16:
		return 65535
	default:
		return 0
	}
}

func checkArithOperands(a, b *Raster) error {
	if a.Depth() == 1 || b.Depth() == 1 {
		return fmt.Errorf("%w: 1-bpp rasters must use Rasterop instead", ErrUnsupportedDepth)
	}
	if a.Depth() != b.Depth() {
		return fmt.Errorf("%w: %d vs %d", ErrIncompatibleDepths, a.Depth(), b.Depth())
	}
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrIncompatibleSizes, a.Width(), a.Height(), b.Width(), b.Height())
	}
	return nil
}

// binaryOp is the channel-level combinator: given operands x, y and the
// channel's saturation ceiling, return the saturated result.
type binaryOp func(x, y int64, maxVal uint32) uint32

func elementwise(a, b *Raster, op binaryOp) (*Raster, error) {
	if err := checkArithOperands(a, b); err != nil {
		return nil, err
	}
	var out *Raster
	var err error
	if a.Depth() == 32 {
		out, err = NewColor(a.Width(), a.Height(), a.SamplesPerPixel())
	} else {
		out, err = New(a.Width(), a.Height(), a.Depth())
	}
	if err != nil {
		return nil, err
	}
	view := out.IntoView()
	if a.Depth() == 32 {
		for y := 0; y < a.Height(); y++ {
			for x := 0; x < a.Width(); x++ {
				ar, ag, ab, aa, _ := a.GetRGBA(x, y)
				br, bg, bb, _, _ := b.GetRGBA(x, y)
				rr := op(int64(ar), int64(br), 255)
				gg := op(int64(ag), int64(bg), 255)
				bbv := op(int64(ab), int64(bb), 255)
				view.SetRGBA(x, y, uint8(rr), uint8(gg), uint8(bbv), aa) // alpha kept from left operand
			}
		}
	} else {
		maxVal := maxValForDepth(a.Depth())
		for y := 0; y < a.Height(); y++ {
			for x := 0; x < a.Width(); x++ {
				av, _ := a.GetPixel(x, y)
				bv, _ := b.GetPixel(x, y)
				view.SetPixel(x, y, op(int64(av), int64(bv), maxVal))
			}
		}
	}
	return view.IntoRaster(), nil
}

// Add returns a + b, saturated per channel.
func Add(a, b *Raster) (*Raster, error) {
	return elementwise(a, b, func(x, y int64, maxVal uint32) uint32 {
		return numeric.SaturateUint32(x+y, maxVal)
	})
}

// Sub returns a - b, saturated at 0 on underflow.
func Sub(a, b *Raster) (*Raster, error) {
	return elementwise(a, b, func(x, y int64, maxVal uint32) uint32 {
		return numeric.SaturateUint32(x-y, maxVal)
	})
}

// AbsDiff returns |a - b|.
func AbsDiff(a, b *Raster) (*Raster, error) {
	return elementwise(a, b, func(x, y int64, maxVal uint32) uint32 {
		d := x - y
		if d < 0 {
			d = -d
		}
		return numeric.SaturateUint32(d, maxVal)
	})
}

// MinOf returns the pointwise minimum of a and b.
func MinOf(a, b *Raster) (*Raster, error) {
	return elementwise(a, b, func(x, y int64, maxVal uint32) uint32 {
		return numeric.SaturateUint32(numeric.Min(x, y), maxVal)
	})
}

// MaxOf returns the pointwise maximum of a and b.
func MaxOf(a, b *Raster) (*Raster, error) {
	return elementwise(a, b, func(x, y int64, maxVal uint32) uint32 {
		return numeric.SaturateUint32(numeric.Max(x, y), maxVal)
	})
}

// AddConstant returns src with offset added to every sample, saturated.
// 1-bpp rasters are rejected.
func AddConstant(src *Raster, offset int) (*Raster, error) {
	out := src.Clone()
	v := out.IntoView()
	if err := v.AddConstantInPlace(offset); err != nil {
		v.IntoRaster()
		return nil, err
	}
	return v.IntoRaster(), nil
}

// AddConstantInPlace adds offset to every sample in place, saturated.
func (v *View) AddConstantInPlace(offset int) error {
	r := v.r
	if r.Depth() == 1 {
		return fmt.Errorf("%w: 1-bpp rasters must use Rasterop instead", ErrUnsupportedDepth)
	}
	if r.Depth() == 32 {
		for y := 0; y < r.Height(); y++ {
			for x := 0; x < r.Width(); x++ {
				rr, g, b, a, _ := r.GetRGBA(x, y)
				v.SetRGBA(x, y,
					uint8(numeric.SaturateUint32(int64(rr)+int64(offset), 255)),
					uint8(numeric.SaturateUint32(int64(g)+int64(offset), 255)),
					uint8(numeric.SaturateUint32(int64(b)+int64(offset), 255)),
					a)
			}
		}
		return nil
	}
	maxVal := maxValForDepth(r.Depth())
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			val, _ := r.GetPixel(x, y)
			v.SetPixel(x, y, numeric.SaturateUint32(int64(val)+int64(offset), maxVal))
		}
	}
	return nil
}

// MultiplyConstant returns src with every sample scaled by factor (>= 0),
// saturated.
func MultiplyConstant(src *Raster, factor float64) (*Raster, error) {
	out := src.Clone()
	v := out.IntoView()
	if err := v.MultiplyConstantInPlace(factor); err != nil {
		v.IntoRaster()
		return nil, err
	}
	return v.IntoRaster(), nil
}

// MultiplyConstantInPlace scales every sample by factor (>= 0) in place,
// saturated.
func (v *View) MultiplyConstantInPlace(factor float64) error {
	if factor < 0 {
		return fmt.Errorf("%w: factor %v", ErrInvalidParameter, factor)
	}
	r := v.r
	if r.Depth() == 1 {
		return fmt.Errorf("%w: 1-bpp rasters must use Rasterop instead", ErrUnsupportedDepth)
	}
	if r.Depth() == 32 {
		for y := 0; y < r.Height(); y++ {
			for x := 0; x < r.Width(); x++ {
				rr, g, b, a, _ := r.GetRGBA(x, y)
				v.SetRGBA(x, y,
					uint8(numeric.SaturateUint32(int64(float64(rr)*factor), 255)),
					uint8(numeric.SaturateUint32(int64(float64(g)*factor), 255)),
					uint8(numeric.SaturateUint32(int64(float64(b)*factor), 255)),
					a)
			}
		}
		return nil
	}
	maxVal := maxValForDepth(r.Depth())
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			val, _ := r.GetPixel(x, y)
			v.SetPixel(x, y, numeric.SaturateUint32(int64(float64(val)*factor), maxVal))
		}
	}
	return nil
}

// MultiplyGray models illumination correction: out = pix * gray * norm at
// every matching position, saturated. If norm is nil, it defaults to
// 1 / max(gray) over the mask.
func MultiplyGray(pix, grayMask *Raster, norm *float64) (*Raster, error) {
	if pix.Depth() != 8 || grayMask.Depth() != 8 {
		return nil, fmt.Errorf("%w: MultiplyGray requires 8-bpp operands", ErrUnsupportedDepth)
	}
	if pix.Width() != grayMask.Width() || pix.Height() != grayMask.Height() {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrIncompatibleSizes,
			pix.Width(), pix.Height(), grayMask.Width(), grayMask.Height())
	}
	n := 1.0
	if norm != nil {
		n = *norm
	} else {
		maxGray := uint32(0)
		for y := 0; y < grayMask.Height(); y++ {
			for x := 0; x < grayMask.Width(); x++ {
				g, _ := grayMask.GetPixel(x, y)
				if g > maxGray {
					maxGray = g
				}
			}
		}
		if maxGray == 0 {
			return nil, fmt.Errorf("%w: gray mask is all zero", ErrInvalidParameter)
		}
		n = 1.0 / float64(maxGray)
	}
	out, err := New(pix.Width(), pix.Height(), 8)
	if err != nil {
		return nil, err
	}
	view := out.IntoView()
	for y := 0; y < pix.Height(); y++ {
		for x := 0; x < pix.Width(); x++ {
			p, _ := pix.GetPixel(x, y)
			g, _ := grayMask.GetPixel(x, y)
			view.SetPixel(x, y, numeric.SaturateUint32(int64(float64(p)*float64(g)*n), 255))
		}
	}
	return view.IntoRaster(), nil
}
