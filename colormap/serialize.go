package colormap

import (
	"fmt"
	"strings"
)

// depthForCount returns the minimum legal raster depth that can index
// ncolors palette entries: <=2 -> 1, <=4 -> 2, <=16 -> 4, else 8.
func depthForCount(ncolors int) int {
	switch {
	case ncolors <= 2:
		return 1
	case ncolors <= 4:
		return 2
	case ncolors <= 16:
		return 4
	default:
		return 8
	}
}

// MarshalBinary packs every entry into componentsPerColor bytes (3 for RGB,
// 4 for RGBA) in insertion order, red first.
func (c *Colormap) MarshalBinary(componentsPerColor int) ([]byte, error) {
	if componentsPerColor != 3 && componentsPerColor != 4 {
		return nil, fmt.Errorf("%w: componentsPerColor %d", ErrInvalidParameter, componentsPerColor)
	}
	out := make([]byte, 0, len(c.entries)*componentsPerColor)
	for _, e := range c.entries {
		out = append(out, e.R, e.G, e.B)
		if componentsPerColor == 4 {
			out = append(out, e.A)
		}
	}
	return out, nil
}

// Unmarshal reconstructs a colormap from data packed by MarshalBinary. The
// depth is derived from ncolors (see depthForCount), matching the contract
// that deserialization never needs the depth spelled out explicitly.
func Unmarshal(data []byte, componentsPerColor, ncolors int) (*Colormap, error) {
	if componentsPerColor != 3 && componentsPerColor != 4 {
		return nil, fmt.Errorf("%w: componentsPerColor %d", ErrInvalidParameter, componentsPerColor)
	}
	if ncolors < 1 || ncolors > 256 {
		return nil, fmt.Errorf("%w: ncolors %d", ErrInvalidParameter, ncolors)
	}
	want := ncolors * componentsPerColor
	if len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrIO, len(data), want)
	}
	cm, err := New(depthForCount(ncolors))
	if err != nil {
		return nil, err
	}
	for i := 0; i < ncolors; i++ {
		off := i * componentsPerColor
		e := Color{R: data[off], G: data[off+1], B: data[off+2], A: 255}
		if componentsPerColor == 4 {
			e.A = data[off+3]
		}
		cm.entries = append(cm.entries, e)
	}
	return cm, nil
}

// Hex renders the colormap in the PDF-embeddable hex form:
// "< rrggbb rrggbb ... >", lowercase, space-separated, alpha dropped.
func (c *Colormap) Hex() string {
	var b strings.Builder
	b.WriteString("< ")
	for i, e := range c.entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x%02x%02x", e.R, e.G, e.B)
	}
	b.WriteString(" >")
	return b.String()
}
