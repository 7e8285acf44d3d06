package colormap

import (
	"fmt"
	"sort"
)

// CountUniqueGrays returns the number of entries whose R, G and B channels
// are all equal.
func (c *Colormap) CountUniqueGrays() int {
	seen := make(map[uint8]bool)
	n := 0
	for _, e := range c.entries {
		if e.R == e.G && e.G == e.B {
			if !seen[e.R] {
				seen[e.R] = true
				n++
			}
		}
	}
	return n
}

// RankByIntensity sorts entries by R+G+B and returns the index of the
// entry at the given fractional rank in [0, 1] (0 = darkest, 1 = brightest)
// among the ORIGINAL indices.
func (c *Colormap) RankByIntensity(rank float64) (int, error) {
	if rank < 0 || rank > 1 {
		return 0, fmt.Errorf("%w: rank %v", ErrInvalidParameter, rank)
	}
	n := len(c.entries)
	if n == 0 {
		return 0, fmt.Errorf("%w: empty colormap", ErrInvalidParameter)
	}
	type scored struct {
		idx   int
		score int
	}
	order := make([]scored, n)
	for i, e := range c.entries {
		order[i] = scored{idx: i, score: int(e.R) + int(e.G) + int(e.B)}
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].score < order[j].score })
	pos := int(rank * float64(n-1))
	return order[pos].idx, nil
}

// RangeValues returns the minimum and maximum value of one channel across
// all entries. component must be 0 (R), 1 (G), or 2 (B).
func (c *Colormap) RangeValues(component int) (min, max uint8, err error) {
	if component < 0 || component > 2 {
		return 0, 0, fmt.Errorf("%w: component %d", ErrInvalidParameter, component)
	}
	if len(c.entries) == 0 {
		return 0, 0, fmt.Errorf("%w: empty colormap", ErrInvalidParameter)
	}
	pick := func(e Color) uint8 {
		switch component {
		case 0:
			return e.R
		case 1:
			return e.G
		default:
			return e.B
		}
	}
	min, max = pick(c.entries[0]), pick(c.entries[0])
	for _, e := range c.entries[1:] {
		v := pick(e)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, nil
}

// NearestByDistance returns the index of the entry closest to col in
// squared Euclidean RGB distance.
func (c *Colormap) NearestByDistance(col Color) (int, error) {
	if len(c.entries) == 0 {
		return 0, fmt.Errorf("%w: empty colormap", ErrInvalidParameter)
	}
	best, bestDist := 0, -1
	for i, e := range c.entries {
		dr := int(e.R) - int(col.R)
		dg := int(e.G) - int(col.G)
		db := int(e.B) - int(col.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			bestDist, best = d, i
		}
	}
	return best, nil
}
