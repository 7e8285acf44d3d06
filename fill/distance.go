package fill

import (
	"fmt"

	"github.com/docraster/pixcore"
)

// BoundaryCondition controls how DistanceTransform treats pixels
// outside the raster: as background (distance clamps toward the edge)
// or as foreground (distance keeps increasing toward the edge).
type BoundaryCondition int

const (
	BoundaryBackground BoundaryCondition = iota
	BoundaryForeground
)

// DistanceTransform computes, for every foreground pixel of a 1-bpp
// raster, the Chamfer (4- or 8-connected) distance to the nearest
// background pixel, via a forward/backward two-pass sequential scan.
// outDepth must be 8 (saturating at 254) or 16 (saturating at 65534).
func DistanceTransform(r *pixcore.Raster, connectivity, outDepth int, boundary BoundaryCondition) (*pixcore.Raster, error) {
	if err := requireBinary(r); err != nil {
		return nil, err
	}
	if outDepth != 8 && outDepth != 16 {
		return nil, fmt.Errorf("%w: out depth %d", ErrInvalidParameter, outDepth)
	}
	useDiag := false
	switch connectivity {
	case 4:
	case 8:
		useDiag = true
	default:
		return nil, fmt.Errorf("%w: connectivity %d", ErrInvalidParameter, connectivity)
	}

	w, h := r.Width(), r.Height()
	var maxVal uint32 = 254
	if outDepth == 16 {
		maxVal = 65534
	}
	initVal := uint32(0)
	if boundary == BoundaryForeground {
		initVal = maxVal
	}

	dist := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.GetPixelUnchecked(x, y) != 0 {
				dist[y*w+x] = maxVal
			}
		}
	}

	saturatingAdd1 := func(v uint32) uint32 {
		if v >= maxVal {
			return maxVal
		}
		return v + 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if dist[idx] == 0 {
				continue
			}
			minNeighbor := maxVal
			consider := func(v uint32, ok bool) {
				if ok {
					if v < minNeighbor {
						minNeighbor = v
					}
				} else if initVal < minNeighbor {
					minNeighbor = initVal
				}
			}
			consider(dist[idx-boolIdx(x > 0, 1, 0)], x > 0)
			consider(dist[idx-boolIdx(y > 0, w, 0)], y > 0)
			if useDiag {
				consider(dist[idx-boolIdx(x > 0 && y > 0, w+1, 0)], x > 0 && y > 0)
				consider(dist[idx-boolIdx(x+1 < w && y > 0, w-1, 0)], x+1 < w && y > 0)
			}
			if cand := saturatingAdd1(minNeighbor); cand < dist[idx] {
				dist[idx] = cand
			}
		}
	}

	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			idx := y*w + x
			if dist[idx] == 0 {
				continue
			}
			minNeighbor := maxVal
			consider := func(v uint32, ok bool) {
				if ok {
					if v < minNeighbor {
						minNeighbor = v
					}
				} else if initVal < minNeighbor {
					minNeighbor = initVal
				}
			}
			consider(dist[idx+boolIdx(x+1 < w, 1, 0)], x+1 < w)
			consider(dist[idx+boolIdx(y+1 < h, w, 0)], y+1 < h)
			if useDiag {
				consider(dist[idx+boolIdx(x+1 < w && y+1 < h, w+1, 0)], x+1 < w && y+1 < h)
				consider(dist[idx+boolIdx(x > 0 && y+1 < h, w-1, 0)], x > 0 && y+1 < h)
			}
			if cand := saturatingAdd1(minNeighbor); cand < dist[idx] {
				dist[idx] = cand
			}
		}
	}

	out, err := pixcore.New(w, h, outDepth)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v.SetPixelUnchecked(x, y, dist[y*w+x])
		}
	}
	return v.IntoRaster(), nil
}

func boolIdx(ok bool, ifTrue, ifFalse int) int {
	if ok {
		return ifTrue
	}
	return ifFalse
}
