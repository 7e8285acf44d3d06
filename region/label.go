package region

import (
	"fmt"

	"github.com/docraster/pixcore"
)

// Component is one connected foreground region, recorded in raster-scan
// order of first encounter.
type Component struct {
	Label                  int
	MinX, MinY, MaxX, MaxY int
	pixels                 [][2]int
}

// Width and Height return the component's bounding-box dimensions.
func (c *Component) Width() int  { return c.MaxX - c.MinX + 1 }
func (c *Component) Height() int { return c.MaxY - c.MinY + 1 }

// PixelCount returns the number of foreground pixels in the component.
func (c *Component) PixelCount() int { return len(c.pixels) }

// Mask extracts a 1-bpp raster the size of the component's bounding box
// containing only this component's foreground pixels.
func (c *Component) Mask() (*pixcore.Raster, error) {
	out, err := pixcore.New(c.Width(), c.Height(), 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for _, p := range c.pixels {
		v.SetPixelUnchecked(p[0]-c.MinX, p[1]-c.MinY, 1)
	}
	return v.IntoRaster(), nil
}

func fourNeighbors() [][2]int {
	return [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
}

func eightNeighbors() [][2]int {
	return [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
}

func neighborsFor(connectivity int) ([][2]int, error) {
	switch connectivity {
	case 4:
		return fourNeighbors(), nil
	case 8:
		return eightNeighbors(), nil
	default:
		return nil, fmt.Errorf("%w: connectivity %d", ErrInvalidParameter, connectivity)
	}
}

// Label produces the list of connected foreground components of r under
// the given connectivity (4 or 8), in raster-scan order of first
// encounter. Every foreground pixel belongs to exactly one component.
func Label(r *pixcore.Raster, connectivity int) ([]*Component, error) {
	if r.Depth() != 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, r.Depth())
	}
	offs, err := neighborsFor(connectivity)
	if err != nil {
		return nil, err
	}
	w, h := r.Width(), r.Height()
	labeled := make([]bool, w*h)
	var components []*Component
	nextLabel := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if labeled[y*w+x] || r.GetPixelUnchecked(x, y) != 1 {
				continue
			}
			nextLabel++
			comp := &Component{Label: nextLabel, MinX: x, MaxX: x, MinY: y, MaxY: y}
			labeled[y*w+x] = true
			queue := [][2]int{{x, y}}
			comp.pixels = append(comp.pixels, [2]int{x, y})
			for len(queue) > 0 {
				p := queue[len(queue)-1]
				queue = queue[:len(queue)-1]
				for _, o := range offs {
					nx, ny := p[0]+o[0], p[1]+o[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if labeled[ny*w+nx] || r.GetPixelUnchecked(nx, ny) != 1 {
						continue
					}
					labeled[ny*w+nx] = true
					comp.pixels = append(comp.pixels, [2]int{nx, ny})
					if nx < comp.MinX {
						comp.MinX = nx
					}
					if nx > comp.MaxX {
						comp.MaxX = nx
					}
					if ny < comp.MinY {
						comp.MinY = ny
					}
					if ny > comp.MaxY {
						comp.MaxY = ny
					}
					queue = append(queue, [2]int{nx, ny})
				}
			}
			components = append(components, comp)
		}
	}
	return components, nil
}
