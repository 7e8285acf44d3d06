package quadtree

import (
	"fmt"
	"math/bits"

	"github.com/docraster/pixcore"
)

// MaxLevels returns the greatest number of levels beyond the first that
// a quadtree over an image of the given size may legally hold: 0 for
// images with min(w,h) < 1, otherwise floor(log2(min(w,h))). Combined
// with the first (whole-image) level, the greatest legal total level
// count nlevels is therefore MaxLevels(w,h)+1, i.e.
// floor(log2(min(w,h)))+1 — spec's "the maximum legal L".
func MaxLevels(w, h int) int {
	m := w
	if h < m {
		m = h
	}
	if m < 1 {
		return 0
	}
	return bits.Len(uint(m)) - 1
}

// tileSpan splits a source dimension of length total into n tiles,
// returning the start and length of tile idx. Tiles 0..n-2 have equal
// floor(total/n) length; the last tile absorbs the remainder.
func tileSpan(total, n, idx int) (start, length int) {
	base := total / n
	start = idx * base
	if idx == n-1 {
		length = total - start
	} else {
		length = base
	}
	return
}

func tileRect(w, h, level, x, y int) Rect {
	n := 1 << uint(level)
	sx, lw := tileSpan(w, n, x)
	sy, lh := tileSpan(h, n, y)
	return Rect{X: sx, Y: sy, W: lw, H: lh}
}

// LeveledStats holds one floating-point value per tile at each
// quadtree level 0..NumLevels-1, level k sized 2^k x 2^k.
type LeveledStats struct {
	values [][]float64
}

// NumLevels returns how many levels this result holds.
func (r *LeveledStats) NumLevels() int { return len(r.values) }

// LevelSize returns the tile-grid width/height (2^level) of a level.
func (r *LeveledStats) LevelSize(level int) int { return 1 << uint(level) }

// Get returns the value at (x, y) within the given level.
func (r *LeveledStats) Get(level, x, y int) (float64, bool) {
	if level < 0 || level >= len(r.values) {
		return 0, false
	}
	n := r.LevelSize(level)
	if x < 0 || x >= n || y < 0 || y >= n {
		return 0, false
	}
	return r.values[level][y*n+x], true
}

// Parent returns the value of (x, y)'s parent tile at level-1.
func (r *LeveledStats) Parent(level, x, y int) (float64, bool) {
	return r.Get(level-1, x/2, y/2)
}

// Children returns the 4 values at level+1 that subdivide (x, y):
// top-left, top-right, bottom-left, bottom-right.
func (r *LeveledStats) Children(level, x, y int) (tl, tr, bl, br float64, ok bool) {
	cx, cy := x*2, y*2
	var ok1, ok2, ok3, ok4 bool
	tl, ok1 = r.Get(level+1, cx, cy)
	tr, ok2 = r.Get(level+1, cx+1, cy)
	bl, ok3 = r.Get(level+1, cx, cy+1)
	br, ok4 = r.Get(level+1, cx+1, cy+1)
	return tl, tr, bl, br, ok1 && ok2 && ok3 && ok4
}

func checkLevels(src *pixcore.Raster, nlevels int) error {
	if src.Depth() != 8 {
		return fmt.Errorf("%w: %d", ErrUnsupportedDepth, src.Depth())
	}
	if nlevels < 1 {
		return fmt.Errorf("%w: nlevels %d", ErrInvalidParameter, nlevels)
	}
	if nlevels-1 > MaxLevels(src.Width(), src.Height()) {
		return fmt.Errorf("%w: nlevels %d exceeds max %d for %dx%d", ErrInvalidParameter, nlevels, MaxLevels(src.Width(), src.Height()), src.Width(), src.Height())
	}
	return nil
}

// Regions returns, for each level 0..nlevels-1, the list of tile
// rectangles (in raster-scan order) that partition a w x h image at
// that level.
func Regions(w, h, nlevels int) ([][]Rect, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidParameter, w, h)
	}
	if nlevels < 1 {
		return nil, fmt.Errorf("%w: nlevels %d", ErrInvalidParameter, nlevels)
	}
	if nlevels-1 > MaxLevels(w, h) {
		return nil, fmt.Errorf("%w: nlevels %d exceeds max %d for %dx%d", ErrInvalidParameter, nlevels, MaxLevels(w, h), w, h)
	}
	levels := make([][]Rect, nlevels)
	for k := 0; k < nlevels; k++ {
		n := 1 << uint(k)
		rects := make([]Rect, 0, n*n)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				rects = append(rects, tileRect(w, h, k, x, y))
			}
		}
		levels[k] = rects
	}
	return levels, nil
}

// Mean computes per-tile means at every level 0..nlevels-1, building
// its own integral image.
func Mean(src *pixcore.Raster, nlevels int) (*LeveledStats, error) {
	integral, err := NewIntegralImage(src)
	if err != nil {
		return nil, err
	}
	return MeanWithIntegral(src, nlevels, integral)
}

// MeanWithIntegral is Mean using a precomputed integral image (for
// reuse across repeated calls on the same raster).
func MeanWithIntegral(src *pixcore.Raster, nlevels int, integral *IntegralImage) (*LeveledStats, error) {
	if err := checkLevels(src, nlevels); err != nil {
		return nil, err
	}
	w, h := src.Width(), src.Height()
	out := &LeveledStats{values: make([][]float64, nlevels)}
	for k := 0; k < nlevels; k++ {
		n := 1 << uint(k)
		level := make([]float64, n*n)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				rect := tileRect(w, h, k, x, y)
				mean, err := MeanInRect(rect, integral)
				if err != nil {
					return nil, err
				}
				level[y*n+x] = mean
			}
		}
		out.values[k] = level
	}
	return out, nil
}

// Variance computes per-tile variance and root-variance at every level
// 0..nlevels-1, building its own integral images.
func Variance(src *pixcore.Raster, nlevels int) (variance, rootVariance *LeveledStats, err error) {
	integral, err := NewIntegralImage(src)
	if err != nil {
		return nil, nil, err
	}
	sqIntegral, err := NewSquaredIntegralImage(src)
	if err != nil {
		return nil, nil, err
	}
	return VarianceWithIntegral(src, nlevels, integral, sqIntegral)
}

// VarianceWithIntegral is Variance using precomputed integral images.
func VarianceWithIntegral(src *pixcore.Raster, nlevels int, integral *IntegralImage, sqIntegral *SquaredIntegralImage) (variance, rootVariance *LeveledStats, err error) {
	if err := checkLevels(src, nlevels); err != nil {
		return nil, nil, err
	}
	w, h := src.Width(), src.Height()
	varOut := &LeveledStats{values: make([][]float64, nlevels)}
	rvarOut := &LeveledStats{values: make([][]float64, nlevels)}
	for k := 0; k < nlevels; k++ {
		n := 1 << uint(k)
		varLevel := make([]float64, n*n)
		rvarLevel := make([]float64, n*n)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				rect := tileRect(w, h, k, x, y)
				v, rv, err := VarianceInRect(rect, integral, sqIntegral)
				if err != nil {
					return nil, nil, err
				}
				varLevel[y*n+x] = v
				rvarLevel[y*n+x] = rv
			}
		}
		varOut.values[k] = varLevel
		rvarOut.values[k] = rvarLevel
	}
	return varOut, rvarOut, nil
}
