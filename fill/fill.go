package fill

import (
	"fmt"

	"github.com/docraster/pixcore"
)

type offset struct{ dx, dy int }

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

func requireBinary(r *pixcore.Raster) error {
	if r.Depth() != 1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedDepth, r.Depth())
	}
	return nil
}

// FloodFill changes every pixel reachable from (seedX, seedY) through a
// connected (4- or 8-) run of the seed pixel's current value to
// newValue, consuming r and returning the updated raster plus the
// count of pixels changed. If the seed's current value already equals
// newValue it is a no-op, returning r unchanged and a count of 0.
func FloodFill(r *pixcore.Raster, seedX, seedY int, newValue uint32, connectivity int) (*pixcore.Raster, int, error) {
	if err := requireBinary(r); err != nil {
		return nil, 0, err
	}
	offs, err := neighborOffsets(connectivity)
	if err != nil {
		return nil, 0, err
	}
	w, h := r.Width(), r.Height()
	if seedX < 0 || seedX >= w || seedY < 0 || seedY >= h {
		return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, seedX, seedY)
	}

	oldValue := r.GetPixelUnchecked(seedX, seedY)
	newValue &= 1
	if oldValue == newValue {
		return r, 0, nil
	}

	v := r.IntoView()
	count := 0
	stack := []offset{{seedX, seedY}}
	v.SetPixelUnchecked(seedX, seedY, newValue)
	count++
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, o := range offs {
			nx, ny := p.dx+o.dx, p.dy+o.dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if r.GetPixelUnchecked(nx, ny) != oldValue {
				continue
			}
			v.SetPixelUnchecked(nx, ny, newValue)
			count++
			stack = append(stack, offset{nx, ny})
		}
	}
	return v.IntoRaster(), count, nil
}

// SeedFillBinary returns a copy of r with FloodFill applied from
// (seedX, seedY) using newValue, leaving r itself untouched.
func SeedFillBinary(r *pixcore.Raster, seedX, seedY int, newValue uint32, connectivity int) (*pixcore.Raster, error) {
	out, _, err := FloodFill(r.Clone(), seedX, seedY, newValue, connectivity)
	return out, err
}

// FillHoles fills every interior background cavity of a 1-bpp raster:
// background pixels not reachable from the border through a connected
// run of background become foreground. Exterior background is
// unchanged.
func FillHoles(r *pixcore.Raster, connectivity int) (*pixcore.Raster, error) {
	if err := requireBinary(r); err != nil {
		return nil, err
	}
	offs, err := neighborOffsets(connectivity)
	if err != nil {
		return nil, err
	}
	w, h := r.Width(), r.Height()

	reachable := make([]bool, w*h)
	var queue []offset
	mark := func(x, y int) {
		if !reachable[y*w+x] && r.GetPixelUnchecked(x, y) == 0 {
			reachable[y*w+x] = true
			queue = append(queue, offset{x, y})
		}
	}
	for x := 0; x < w; x++ {
		mark(x, 0)
		mark(x, h-1)
	}
	for y := 1; y < h-1; y++ {
		mark(0, y)
		mark(w-1, y)
	}

	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, o := range offs {
			nx, ny := p.dx+o.dx, p.dy+o.dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if reachable[ny*w+nx] || r.GetPixelUnchecked(nx, ny) != 0 {
				continue
			}
			reachable[ny*w+nx] = true
			queue = append(queue, offset{nx, ny})
		}
	}

	out, err := pixcore.New(w, h, 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.GetPixelUnchecked(x, y) == 1 || !reachable[y*w+x] {
				v.SetPixelUnchecked(x, y, 1)
			}
		}
	}
	return v.IntoRaster(), nil
}

// ClearBorder removes every foreground component touching the image
// border, leaving interior components untouched.
func ClearBorder(r *pixcore.Raster, connectivity int) (*pixcore.Raster, error) {
	if err := requireBinary(r); err != nil {
		return nil, err
	}
	cur := r.Clone()
	w, h := cur.Width(), cur.Height()

	clearFrom := func(x, y int) error {
		if cur.GetPixelUnchecked(x, y) != 1 {
			return nil
		}
		next, _, err := FloodFill(cur, x, y, 0, connectivity)
		if err != nil {
			return err
		}
		cur = next
		return nil
	}
	for x := 0; x < w; x++ {
		if err := clearFrom(x, 0); err != nil {
			return nil, err
		}
		if err := clearFrom(x, h-1); err != nil {
			return nil, err
		}
	}
	for y := 0; y < h; y++ {
		if err := clearFrom(0, y); err != nil {
			return nil, err
		}
		if err := clearFrom(w-1, y); err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// RestrictedFill performs a binary seedfill of mask from seed, but a
// mask pixel is only filled if it lies within (xmax, ymax) Manhattan
// offset — independently per axis — of the seed pixel from which its
// fill originated. xmax == 0 and ymax == 0 together mean no limit.
func RestrictedFill(seed, mask *pixcore.Raster, connectivity, xmax, ymax int) (*pixcore.Raster, error) {
	if err := requireBinary(seed); err != nil {
		return nil, err
	}
	if err := requireBinary(mask); err != nil {
		return nil, err
	}
	if seed.Width() != mask.Width() || seed.Height() != mask.Height() {
		return nil, ErrSizeMismatch
	}
	offs, err := neighborOffsets(connectivity)
	if err != nil {
		return nil, err
	}
	w, h := mask.Width(), mask.Height()
	noLimit := xmax == 0 && ymax == 0

	type originPoint struct{ x, y, sx, sy int }
	filled := make([]bool, w*h)
	var queue []originPoint
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if seed.GetPixelUnchecked(x, y) == 1 && mask.GetPixelUnchecked(x, y) == 1 {
				idx := y*w + x
				if !filled[idx] {
					filled[idx] = true
					queue = append(queue, originPoint{x, y, x, y})
				}
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
			idx := ny*w + nx
			if filled[idx] || mask.GetPixelUnchecked(nx, ny) != 1 {
				continue
			}
			if !noLimit {
				dx, dy := abs(nx-p.sx), abs(ny-p.sy)
				if (xmax > 0 && dx > xmax) || (ymax > 0 && dy > ymax) {
					continue
				}
			}
			filled[idx] = true
			queue = append(queue, originPoint{nx, ny, p.sx, p.sy})
		}
	}

	out, err := pixcore.New(w, h, 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if filled[y*w+x] {
				v.SetPixelUnchecked(x, y, 1)
			}
		}
	}
	return v.IntoRaster(), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
