package morph

import (
	"fmt"

	"github.com/docraster/pixcore"
)

// neighborOffsets returns the connectivity offsets used by Reconstruct:
// 4 gives the cardinal neighbors, 8 adds the diagonals.
func neighborOffsets(connectivity int) ([]offset, error) {
	switch connectivity {
	case 4:
		return []offset{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}, nil
	case 8:
		return []offset{{0, -1}, {-1, 0}, {1, 0}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}, nil
	default:
		return nil, fmt.Errorf("%w: connectivity %d", ErrInvalidParameter, connectivity)
	}
}

// Reconstruct expands seed within mask by iteratively dilating the seed
// and AND-ing with the mask until no further change, using a BFS queue
// over newly set pixels. seed and mask must be 1-bpp and equal in size;
// every foreground pixel of seed must already be foreground in mask.
func Reconstruct(seed, mask *pixcore.Raster, connectivity int) (*pixcore.Raster, error) {
	if err := requireBinary(seed); err != nil {
		return nil, err
	}
	if err := requireBinary(mask); err != nil {
		return nil, err
	}
	if seed.Width() != mask.Width() || seed.Height() != mask.Height() {
		return nil, ErrIncompatibleSizes
	}
	offs, err := neighborOffsets(connectivity)
	if err != nil {
		return nil, err
	}

	w, h := seed.Width(), seed.Height()
	out, err := pixcore.New(w, h, 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()

	visited := make([]bool, w*h)
	type point struct{ x, y int }
	var queue []point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if seed.GetPixelUnchecked(x, y) == 1 {
				v.SetPixelUnchecked(x, y, 1)
				visited[y*w+x] = true
				queue = append(queue, point{x, y})
			}
		}
	}

	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, o := range offs {
			nx, ny := p.x+o.dx, p.y+o.dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if visited[ny*w+nx] {
				continue
			}
			if mask.GetPixelUnchecked(nx, ny) != 1 {
				continue
			}
			visited[ny*w+nx] = true
			v.SetPixelUnchecked(nx, ny, 1)
			queue = append(queue, point{nx, ny})
		}
	}

	return v.IntoRaster(), nil
}
