package gray

import (
	"fmt"

	"github.com/docraster/pixcore"
)

func requireGray8(r *pixcore.Raster, name string) error {
	if r.Depth() != 8 {
		return fmt.Errorf("%w: %s must be 8-bpp, got %d", ErrUnsupportedDepth, name, r.Depth())
	}
	return nil
}

func sameDims(a, b *pixcore.Raster) bool {
	return a.Width() == b.Width() && a.Height() == b.Height()
}

// causalNeighbors returns the neighbor offsets already visited by a
// raster scan moving in the given y direction: up/left for a
// top-to-bottom forward pass, down/right for a bottom-to-top backward
// pass.
func causalNeighbors(connectivity int, forward bool) ([][2]int, error) {
	sign := 1
	if !forward {
		sign = -1
	}
	switch connectivity {
	case 4:
		return [][2]int{{-sign, 0}, {0, -sign}}, nil
	case 8:
		return [][2]int{{-sign, 0}, {0, -sign}, {-sign, -sign}, {sign, -sign}}, nil
	default:
		return nil, fmt.Errorf("%w: connectivity %d", ErrInvalidParameter, connectivity)
	}
}

// Reconstruct computes grayscale morphological reconstruction of seed
// under mask: s := min(m, max(s, s dilated by the neighborhood)),
// iterated to the fixed point. Uses a forward raster-scan pass then a
// backward pass, repeated until neither changes a pixel.
func Reconstruct(seed, mask *pixcore.Raster, connectivity int) (*pixcore.Raster, error) {
	if err := requireGray8(seed, "seed"); err != nil {
		return nil, err
	}
	if err := requireGray8(mask, "mask"); err != nil {
		return nil, err
	}
	if !sameDims(seed, mask) {
		return nil, fmt.Errorf("%w: seed and mask dimensions differ", ErrInvalidParameter)
	}
	fwd, err := causalNeighbors(connectivity, true)
	if err != nil {
		return nil, err
	}
	bwd, err := causalNeighbors(connectivity, false)
	if err != nil {
		return nil, err
	}

	w, h := seed.Width(), seed.Height()
	out, err := pixcore.New(w, h, 8)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sv, mv := seed.GetPixelUnchecked(x, y), mask.GetPixelUnchecked(x, y)
			if sv > mv {
				sv = mv
			}
			v.SetPixelUnchecked(x, y, sv)
		}
	}
	cur := v.IntoRaster()

	for {
		var c1, c2 bool
		cur, c1 = reconstructPass(cur, mask, fwd, true)
		cur, c2 = reconstructPass(cur, mask, bwd, false)
		if !c1 && !c2 {
			break
		}
	}
	return cur, nil
}

// reconstructPass scans cur in raster order (or its reverse, when
// forward is false) and, at each pixel, raises it to the minimum of
// the mask value and the max of the pixel's current value and its
// already-visited neighbors. cur's backing buffer is mutated directly
// so later pixels in the same pass see earlier updates.
func reconstructPass(cur, mask *pixcore.Raster, deltas [][2]int, forward bool) (*pixcore.Raster, bool) {
	w, h := cur.Width(), cur.Height()
	v := cur.IntoView()
	changed := false

	yStart, yEnd, yStep := 0, h, 1
	if !forward {
		yStart, yEnd, yStep = h-1, -1, -1
	}
	for y := yStart; y != yEnd; y += yStep {
		xStart, xEnd, xStep := 0, w, 1
		if !forward {
			xStart, xEnd, xStep = w-1, -1, -1
		}
		for x := xStart; x != xEnd; x += xStep {
			best := cur.GetPixelUnchecked(x, y)
			for _, d := range deltas {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if nv := cur.GetPixelUnchecked(nx, ny); nv > best {
					best = nv
				}
			}
			if mv := mask.GetPixelUnchecked(x, y); best > mv {
				best = mv
			}
			if best > cur.GetPixelUnchecked(x, y) {
				v.SetPixelUnchecked(x, y, best)
				changed = true
			}
		}
	}
	return v.IntoRaster(), changed
}

// ReconstructInv is the dual of Reconstruct: given seed >= mask
// pointwise, it propagates the minimum downward, clipped from below
// by the mask, i.e. s := max(m, min(s, s eroded by the neighborhood)).
func ReconstructInv(seed, mask *pixcore.Raster, connectivity int) (*pixcore.Raster, error) {
	if err := requireGray8(seed, "seed"); err != nil {
		return nil, err
	}
	if err := requireGray8(mask, "mask"); err != nil {
		return nil, err
	}
	if !sameDims(seed, mask) {
		return nil, fmt.Errorf("%w: seed and mask dimensions differ", ErrInvalidParameter)
	}
	fwd, err := causalNeighbors(connectivity, true)
	if err != nil {
		return nil, err
	}
	bwd, err := causalNeighbors(connectivity, false)
	if err != nil {
		return nil, err
	}

	w, h := seed.Width(), seed.Height()
	out, err := pixcore.New(w, h, 8)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sv, mv := seed.GetPixelUnchecked(x, y), mask.GetPixelUnchecked(x, y)
			if sv < mv {
				sv = mv
			}
			v.SetPixelUnchecked(x, y, sv)
		}
	}
	cur := v.IntoRaster()

	for {
		var c1, c2 bool
		cur, c1 = reconstructInvPass(cur, mask, fwd, true)
		cur, c2 = reconstructInvPass(cur, mask, bwd, false)
		if !c1 && !c2 {
			break
		}
	}
	return cur, nil
}

func reconstructInvPass(cur, mask *pixcore.Raster, deltas [][2]int, forward bool) (*pixcore.Raster, bool) {
	w, h := cur.Width(), cur.Height()
	v := cur.IntoView()
	changed := false

	yStart, yEnd, yStep := 0, h, 1
	if !forward {
		yStart, yEnd, yStep = h-1, -1, -1
	}
	for y := yStart; y != yEnd; y += yStep {
		xStart, xEnd, xStep := 0, w, 1
		if !forward {
			xStart, xEnd, xStep = w-1, -1, -1
		}
		for x := xStart; x != xEnd; x += xStep {
			best := cur.GetPixelUnchecked(x, y)
			for _, d := range deltas {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if nv := cur.GetPixelUnchecked(nx, ny); nv < best {
					best = nv
				}
			}
			if mv := mask.GetPixelUnchecked(x, y); best < mv {
				best = mv
			}
			if best < cur.GetPixelUnchecked(x, y) {
				v.SetPixelUnchecked(x, y, best)
				changed = true
			}
		}
	}
	return v.IntoRaster(), changed
}
