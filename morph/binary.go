package morph

import (
	"fmt"

	"github.com/docraster/pixcore"
	"github.com/docraster/pixcore/morph/dwa"
	"github.com/docraster/pixcore/sel"
)

// offset is a SEL cell's position relative to the SEL's origin.
type offset struct{ dx, dy int }

func hitOffsets(s *sel.Sel) []offset {
	w, h := s.Dims()
	cx, cy := s.Origin()
	var out []offset
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e, _ := s.At(x, y)
			if e == sel.Hit {
				out = append(out, offset{x - cx, y - cy})
			}
		}
	}
	return out
}

func missOffsets(s *sel.Sel) []offset {
	w, h := s.Dims()
	cx, cy := s.Origin()
	var out []offset
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e, _ := s.At(x, y)
			if e == sel.Miss {
				out = append(out, offset{x - cx, y - cy})
			}
		}
	}
	return out
}

func requireBinary(r *pixcore.Raster) error {
	if r.Depth() != 1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedDepth, r.Depth())
	}
	return nil
}

// at reads the pixel at (x, y), treating any out-of-bounds coordinate as
// 0 per the asymmetric boundary convention.
func at(r *pixcore.Raster, x, y int) uint32 {
	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return 0
	}
	return r.GetPixelUnchecked(x, y)
}

// Dilate computes the dilation of src by s: output is 1 at p iff some
// hit offset (dx,dy) has src[p-(dx,dy)] == 1.
func Dilate(src *pixcore.Raster, s *sel.Sel) (*pixcore.Raster, error) {
	if err := requireBinary(src); err != nil {
		return nil, err
	}
	if s.IsAllHit() {
		if w, h := s.Dims(); w > 1 && h > 1 {
			cx, cy := s.Origin()
			if w <= dwa.MaxSinglePassSize && h <= dwa.MaxSinglePassSize {
				return dwa.DilateBrick(src, w, h, cx, cy)
			}
			return dilateBrickSeparable(src, s)
		}
	}
	offs := hitOffsets(s)
	out, err := pixcore.New(src.Width(), src.Height(), 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			hit := uint32(0)
			for _, o := range offs {
				if at(src, x-o.dx, y-o.dy) == 1 {
					hit = 1
					break
				}
			}
			if hit == 1 {
				v.SetPixelUnchecked(x, y, 1)
			}
		}
	}
	return v.IntoRaster(), nil
}

// Erode computes the erosion of src by s: output is 1 at p iff every hit
// offset (dx,dy) has src[p+(dx,dy)] == 1.
func Erode(src *pixcore.Raster, s *sel.Sel) (*pixcore.Raster, error) {
	if err := requireBinary(src); err != nil {
		return nil, err
	}
	if s.IsAllHit() {
		if w, h := s.Dims(); w > 1 && h > 1 {
			cx, cy := s.Origin()
			if w <= dwa.MaxSinglePassSize && h <= dwa.MaxSinglePassSize {
				return dwa.ErodeBrick(src, w, h, cx, cy)
			}
			return erodeBrickSeparable(src, s)
		}
	}
	offs := hitOffsets(s)
	out, err := pixcore.New(src.Width(), src.Height(), 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			all := true
			for _, o := range offs {
				if at(src, x+o.dx, y+o.dy) != 1 {
					all = false
					break
				}
			}
			if all {
				v.SetPixelUnchecked(x, y, 1)
			}
		}
	}
	return v.IntoRaster(), nil
}

// Open computes erosion followed by dilation.
func Open(src *pixcore.Raster, s *sel.Sel) (*pixcore.Raster, error) {
	e, err := Erode(src, s)
	if err != nil {
		return nil, err
	}
	return Dilate(e, s)
}

// Close computes dilation followed by erosion.
func Close(src *pixcore.Raster, s *sel.Sel) (*pixcore.Raster, error) {
	d, err := Dilate(src, s)
	if err != nil {
		return nil, err
	}
	return Erode(d, s)
}

// HitMiss computes the hit-miss transform: output is 1 at p iff every hit
// offset finds src[p+(dx,dy)]==1 and every miss offset finds
// src[p+(dx,dy)]==0.
func HitMiss(src *pixcore.Raster, s *sel.Sel) (*pixcore.Raster, error) {
	if err := requireBinary(src); err != nil {
		return nil, err
	}
	hits := hitOffsets(s)
	misses := missOffsets(s)
	out, err := pixcore.New(src.Width(), src.Height(), 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			ok := true
			for _, o := range hits {
				if at(src, x+o.dx, y+o.dy) != 1 {
					ok = false
					break
				}
			}
			if ok {
				for _, o := range misses {
					if at(src, x+o.dx, y+o.dy) != 0 {
						ok = false
						break
					}
				}
			}
			if ok {
				v.SetPixelUnchecked(x, y, 1)
			}
		}
	}
	return v.IntoRaster(), nil
}

// dilateBrickSeparable exploits dilate_brick(w,h) = dilate(dilate(1,w),h)
// for an all-Hit rectangular SEL.
func dilateBrickSeparable(src *pixcore.Raster, s *sel.Sel) (*pixcore.Raster, error) {
	w, h := s.Dims()
	cx, cy := s.Origin()
	hsel, err := sel.Brick(w, 1, cx, 0)
	if err != nil {
		return nil, err
	}
	vsel, err := sel.Brick(1, h, 0, cy)
	if err != nil {
		return nil, err
	}
	mid, err := dilate1D(src, hsel)
	if err != nil {
		return nil, err
	}
	return dilate1D(mid, vsel)
}

func erodeBrickSeparable(src *pixcore.Raster, s *sel.Sel) (*pixcore.Raster, error) {
	w, h := s.Dims()
	cx, cy := s.Origin()
	hsel, err := sel.Brick(w, 1, cx, 0)
	if err != nil {
		return nil, err
	}
	vsel, err := sel.Brick(1, h, 0, cy)
	if err != nil {
		return nil, err
	}
	mid, err := erode1D(src, hsel)
	if err != nil {
		return nil, err
	}
	return erode1D(mid, vsel)
}

// dilate1D and erode1D are the non-recursive pixel-loop primitives used
// by the brick decomposition, avoiding re-entering the separability
// check for a SEL that is already 1-D.
func dilate1D(src *pixcore.Raster, s *sel.Sel) (*pixcore.Raster, error) {
	offs := hitOffsets(s)
	out, err := pixcore.New(src.Width(), src.Height(), 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			for _, o := range offs {
				if at(src, x-o.dx, y-o.dy) == 1 {
					v.SetPixelUnchecked(x, y, 1)
					break
				}
			}
		}
	}
	return v.IntoRaster(), nil
}

func erode1D(src *pixcore.Raster, s *sel.Sel) (*pixcore.Raster, error) {
	offs := hitOffsets(s)
	out, err := pixcore.New(src.Width(), src.Height(), 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			all := true
			for _, o := range offs {
				if at(src, x+o.dx, y+o.dy) != 1 {
					all = false
					break
				}
			}
			if all {
				v.SetPixelUnchecked(x, y, 1)
			}
		}
	}
	return v.IntoRaster(), nil
}

// DilateComposite dilates by a brick too large for a single DWA pass,
// decomposing it via sel.Comb into a solid-then-comb pair whose sizes
// multiply to exactly length, and applying each stage in turn. A length
// with no such pair (a prime) is applied as the single brick. horizontal
// selects the axis of decomposition.
func DilateComposite(src *pixcore.Raster, length int, horizontal bool) (*pixcore.Raster, error) {
	factors, err := sel.Comb(length, horizontal)
	if err != nil {
		return nil, err
	}
	cur := src
	for _, f := range factors {
		cur, err = Dilate(cur, f)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// ErodeComposite is the erosion analogue of DilateComposite.
func ErodeComposite(src *pixcore.Raster, length int, horizontal bool) (*pixcore.Raster, error) {
	factors, err := sel.Comb(length, horizontal)
	if err != nil {
		return nil, err
	}
	cur := src
	for _, f := range factors {
		cur, err = Erode(cur, f)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
