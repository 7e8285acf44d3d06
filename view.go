package pixcore

import (
	"fmt"

	"github.com/docraster/pixcore/colormap"
)

// View is the mutable counterpart of Raster. At most one View may exist
// for a given backing buffer at a time; IntoView consumes the Raster that
// produced it, and IntoRaster consumes the View to produce a fresh
// immutable Raster (spec §5, §9).
type View struct {
	r *Raster
}

// IntoView converts r into a mutable View. It panics if another View over
// the same buffer is already outstanding — per spec §9, in a language
// without affine types the discipline is enforced by panicking rather
// than silently aliasing mutable state.
func (r *Raster) IntoView() *View {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if r.state.viewOut {
		panic(ErrViewAlreadyOut)
	}
	r.state.viewOut = true
	return &View{r: r}
}

// IntoRaster releases exclusive mutable access and returns the raster in
// its current (fully updated) state. The View must not be used again
// afterward.
func (v *View) IntoRaster() *Raster {
	v.r.state.mu.Lock()
	v.r.state.viewOut = false
	v.r.state.mu.Unlock()
	out := v.r
	v.r = nil
	return out
}

func (v *View) Width() int           { return v.r.width }
func (v *View) Height() int          { return v.r.height }
func (v *View) Depth() int           { return v.r.depth }
func (v *View) SamplesPerPixel() int { return v.r.samplesPerPixel }
func (v *View) StrideWords() int     { return v.r.strideWords }

// RowMutable returns a writable view of the strideWords() words backing
// row y. Callers must preserve the row's trailing-padding-is-zero
// invariant when writing to the last word directly.
func (v *View) RowMutable(y int) ([]uint32, error) {
	if y < 0 || y >= v.r.height {
		return nil, fmt.Errorf("%w: row %d", ErrIndexOutOfBounds, y)
	}
	start := y * v.r.strideWords
	return v.r.data[start : start+v.r.strideWords], nil
}

// SetPixel writes the low depth bits of value at (x, y) for any depth in
// {1, 2, 4, 8, 16}. Use SetRGBA for 32-bpp color rasters.
func (v *View) SetPixel(x, y int, value uint32) error {
	r := v.r
	if r.depth == 32 {
		return fmt.Errorf("%w: use SetRGBA for 32-bpp", ErrUnsupportedDepth)
	}
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfBounds, x, y)
	}
	setPixelRaw(r.data, r.strideWords, r.depth, x, y, value)
	return nil
}

// SetPixelUnchecked writes without bounds checking; it is a programmer
// contract that (x, y) is in range and depth != 32.
func (v *View) SetPixelUnchecked(x, y int, value uint32) {
	setPixelRaw(v.r.data, v.r.strideWords, v.r.depth, x, y, value)
}

// SetRGBA writes a 32-bpp pixel's channels. a is ignored (and stored as 0
// padding) when samplesPerPixel == 3.
func (v *View) SetRGBA(x, y int, rr, g, b, a uint8) error {
	r := v.r
	if r.depth != 32 {
		return fmt.Errorf("%w: depth %d", ErrUnsupportedDepth, r.depth)
	}
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfBounds, x, y)
	}
	word := uint32(rr)<<24 | uint32(g)<<16 | uint32(b)<<8
	if r.samplesPerPixel == 4 {
		word |= uint32(a)
	}
	r.data[y*r.strideWords+x] = word
	return nil
}

// Clear sets every data bit (including padding) to zero.
func (v *View) Clear() {
	for i := range v.r.data {
		v.r.data[i] = 0
	}
}

// Fill writes value into every in-bounds pixel of the raster, leaving
// row padding at zero.
func (v *View) Fill(value uint32) error {
	r := v.r
	if r.depth == 32 {
		return fmt.Errorf("%w: use FillRGBA for 32-bpp", ErrUnsupportedDepth)
	}
	pattern := replicate(r.depth, value)
	validBits := rowLastWordValidBits(r.width, r.depth, r.strideWords)
	lastMask := lastWordMask(validBits)
	for y := 0; y < r.height; y++ {
		row := r.data[y*r.strideWords : (y+1)*r.strideWords]
		for i := 0; i < len(row)-1; i++ {
			row[i] = pattern
		}
		row[len(row)-1] = pattern & lastMask
	}
	return nil
}

// FillRGBA fills every pixel of a 32-bpp color raster with the given
// color.
func (v *View) FillRGBA(rr, g, b, a uint8) error {
	r := v.r
	if r.depth != 32 {
		return fmt.Errorf("%w: depth %d", ErrUnsupportedDepth, r.depth)
	}
	word := uint32(rr)<<24 | uint32(g)<<16 | uint32(b)<<8
	if r.samplesPerPixel == 4 {
		word |= uint32(a)
	}
	for y := 0; y < r.height; y++ {
		row := r.data[y*r.strideWords : (y+1)*r.strideWords]
		for x := range row {
			row[x] = word
		}
	}
	return nil
}

// SetColormap clones cm and attaches it to the raster. Attachment is only
// legal at depth <= 8 (spec §3).
func (v *View) SetColormap(cm *colormap.Colormap) error {
	if v.r.depth > 8 {
		return fmt.Errorf("%w: depth %d cannot carry a colormap", ErrUnsupportedDepth, v.r.depth)
	}
	v.r.cm = cm.Clone()
	return nil
}

// ClearColormap detaches and returns any attached colormap.
func (v *View) ClearColormap() *colormap.Colormap {
	old := v.r.cm
	v.r.cm = nil
	return old
}

func (v *View) SetResolution(xres, yres int) { v.r.xres, v.r.yres = xres, yres }
func (v *View) SetInputFormat(s string)       { v.r.inputFormat = s }
func (v *View) SetText(s string)              { v.r.text = s }
func (v *View) SetSourceFormat(s string)      { v.r.sourceFormat = s }
