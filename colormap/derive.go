package colormap

import (
	"fmt"
	"math"
)

// jetCurve builds the 64-entry tone curve C[i] = round(255 * (i/64)^(1/gamma))
// used by GrayToFalseColor to ramp each channel within its zone.
func jetCurve(gamma float64) [64]uint8 {
	var c [64]uint8
	for i := 0; i < 64; i++ {
		v := 255.0 * math.Pow(float64(i)/64.0, 1.0/gamma)
		c[i] = clip8(math.Round(v))
	}
	return c
}

// GrayToFalseColor builds a 256-entry 8-bpp colormap that maps gray value
// 0..255 through a blue -> cyan -> green -> yellow -> red "jet" spectrum,
// using gamma to shape the per-zone ramp. Zones are
// [0,32) [32,96) [96,160) [160,224) [224,256), matching spec §4.2.
func GrayToFalseColor(gamma float64) (*Colormap, error) {
	if gamma <= 0 {
		return nil, fmt.Errorf("%w: gamma %v", ErrInvalidParameter, gamma)
	}
	cm, err := New(8)
	if err != nil {
		return nil, err
	}
	c := jetCurve(gamma)
	for i := 0; i < 256; i++ {
		var r, g, b uint8
		switch {
		case i < 32:
			r, g, b = 0, 0, c[i+32]
		case i < 96:
			r, g, b = 0, c[i-32], 255
		case i < 160:
			r, g, b = c[i-96], 255, c[159-i]
		case i < 224:
			r, g, b = 255, c[223-i], 0
		default:
			r, g, b = c[287-i], 0, 0
		}
		if _, err := cm.Add(Color{R: r, G: g, B: b, A: 255}); err != nil {
			return nil, err
		}
	}
	return cm, nil
}

// GrayToColor builds a 256-entry 8-bpp colormap interpolating gray value 0
// to col and gray value 255 to white.
func GrayToColor(col Color) (*Colormap, error) {
	cm, err := New(8)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 256; i++ {
		t := float64(i) / 255.0
		r := clip8(float64(col.R) + t*(255.0-float64(col.R)))
		g := clip8(float64(col.G) + t*(255.0-float64(col.G)))
		b := clip8(float64(col.B) + t*(255.0-float64(col.B)))
		if _, err := cm.Add(Color{R: r, G: g, B: b, A: 255}); err != nil {
			return nil, err
		}
	}
	return cm, nil
}

// ColorToGray normalizes (rwt, gwt, bwt) so they sum to 1, then replaces
// every entry in place with its weighted luminance (alpha is preserved).
func (c *Colormap) ColorToGray(rwt, gwt, bwt float64) error {
	sum := rwt + gwt + bwt
	if sum <= 0 {
		return fmt.Errorf("%w: weights sum to %v", ErrInvalidParameter, sum)
	}
	rwt, gwt, bwt = rwt/sum, gwt/sum, bwt/sum
	for i, e := range c.entries {
		lum := clip8(rwt*float64(e.R) + gwt*float64(e.G) + bwt*float64(e.B))
		c.entries[i] = Color{R: lum, G: lum, B: lum, A: e.A}
	}
	return nil
}

func clip8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
