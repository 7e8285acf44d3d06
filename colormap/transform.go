package colormap

import (
	"fmt"
	"math"
)

// buildLUT256 applies f to every gray level once and caches the result,
// the way the teacher package precomputes per-level tables rather than
// recomputing a transcendental function per pixel.
func buildLUT256(f func(i int) float64) [256]uint8 {
	var lut [256]uint8
	for i := 0; i < 256; i++ {
		lut[i] = clip8(f(i))
	}
	return lut
}

// GammaTRC applies an in-place gamma tone-reproduction-curve transform to
// every entry's R, G and B channels; alpha is left unchanged.
func (c *Colormap) GammaTRC(gamma float64) error {
	if gamma <= 0 {
		return fmt.Errorf("%w: gamma %v", ErrInvalidParameter, gamma)
	}
	lut := buildLUT256(func(i int) float64 {
		return 255.0 * math.Pow(float64(i)/255.0, 1.0/gamma)
	})
	c.applyLUT(lut)
	return nil
}

// ContrastTRC applies an in-place arctan S-curve centered at gray level 127.
// factor controls the steepness; factor == 0 is the identity transform.
func (c *Colormap) ContrastTRC(factor float64) error {
	if factor < 0 {
		return fmt.Errorf("%w: factor %v", ErrInvalidParameter, factor)
	}
	if factor == 0 {
		return nil
	}
	norm := math.Atan(factor)
	lut := buildLUT256(func(i int) float64 {
		x := float64(i-127) / 128.0
		return 127.0 + 128.0*math.Atan(factor*x)/norm
	})
	c.applyLUT(lut)
	return nil
}

// IntensityShift shifts every entry's R, G, B channels toward black (when
// towardWhite is false) or toward white (when towardWhite is true) by the
// given fraction in [0, 1].
func (c *Colormap) IntensityShift(fraction float64, towardWhite bool) error {
	if fraction < 0 || fraction > 1 {
		return fmt.Errorf("%w: fraction %v", ErrInvalidParameter, fraction)
	}
	lut := buildLUT256(func(i int) float64 {
		v := float64(i)
		if towardWhite {
			return v + (255.0-v)*fraction
		}
		return v * (1.0 - fraction)
	})
	c.applyLUT(lut)
	return nil
}

// ShiftByComponent rescales every entry's channels so that src maps to dst,
// applying the same per-channel ratio to all other entries proportionally.
func (c *Colormap) ShiftByComponent(src, dst Color) error {
	ratio := func(s, d uint8) float64 {
		if s == 0 {
			return 1
		}
		return float64(d) / float64(s)
	}
	rr, gr, br := ratio(src.R, dst.R), ratio(src.G, dst.G), ratio(src.B, dst.B)
	for i, e := range c.entries {
		c.entries[i] = Color{
			R: clip8(float64(e.R) * rr),
			G: clip8(float64(e.G) * gr),
			B: clip8(float64(e.B) * br),
			A: e.A,
		}
	}
	return nil
}

func (c *Colormap) applyLUT(lut [256]uint8) {
	for i, e := range c.entries {
		c.entries[i] = Color{R: lut[e.R], G: lut[e.G], B: lut[e.B], A: e.A}
	}
}
