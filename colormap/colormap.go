// Package colormap implements the indexed RGBA palette attached to
// low-depth rasters (depth <= 8), along with the derived constructors,
// in-place tone-reproduction transforms, and the binary/hex serialization
// formats used to persist it.
//
// A Colormap is owned by its raster: it is cloned on raster copy and never
// shared by reference across rasters (see spec §5), which is why every
// mutating method here operates on a receiver obtained by the caller's own
// Clone, not on a shared pointer passed around implicitly.
package colormap

import "fmt"

// Color is a single RGBA palette entry, stored as four bytes in the order
// red, green, blue, alpha.
type Color struct {
	R, G, B, A uint8
}

// Colormap is an ordered sequence of up to 2^depth RGBA entries, addressed
// by insertion index.
type Colormap struct {
	depth   int
	entries []Color
}

// New creates an empty colormap for the given pixel depth. depth must be
// one of {1, 2, 4, 8}.
func New(depth int) (*Colormap, error) {
	switch depth {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("%w: depth %d", ErrUnsupportedDepth, depth)
	}
	return &Colormap{depth: depth}, nil
}

// Depth returns the pixel depth this colormap was created for.
func (c *Colormap) Depth() int { return c.depth }

// MaxEntries returns 2^depth, the largest number of entries this colormap
// may ever hold.
func (c *Colormap) MaxEntries() int { return 1 << uint(c.depth) }

// Len returns the current number of entries.
func (c *Colormap) Len() int { return len(c.entries) }

// Clone returns a deep, independent copy.
func (c *Colormap) Clone() *Colormap {
	out := &Colormap{depth: c.depth, entries: make([]Color, len(c.entries))}
	copy(out.entries, c.entries)
	return out
}

// Clear removes all entries, leaving depth unchanged.
func (c *Colormap) Clear() { c.entries = c.entries[:0] }

// Add appends a new color and returns its index. If an identical color is
// already present, Add is idempotent and returns the existing index
// instead of appending a duplicate. Add fails with ErrFull once the
// colormap holds MaxEntries() entries and no duplicate was found.
func (c *Colormap) Add(col Color) (int, error) {
	for i, e := range c.entries {
		if e == col {
			return i, nil
		}
	}
	if len(c.entries) >= c.MaxEntries() {
		return 0, ErrFull
	}
	c.entries = append(c.entries, col)
	return len(c.entries) - 1, nil
}

// Set overwrites the entry at idx.
func (c *Colormap) Set(idx int, col Color) error {
	if idx < 0 || idx >= len(c.entries) {
		return fmt.Errorf("%w: index %d", ErrIndexOutOfRange, idx)
	}
	c.entries[idx] = col
	return nil
}

// GetRGB returns the red, green and blue components at idx, ignoring alpha.
func (c *Colormap) GetRGB(idx int) (r, g, b uint8, err error) {
	if idx < 0 || idx >= len(c.entries) {
		return 0, 0, 0, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, idx)
	}
	e := c.entries[idx]
	return e.R, e.G, e.B, nil
}

// GetRGBA returns the full RGBA entry at idx.
func (c *Colormap) GetRGBA(idx int) (Color, error) {
	if idx < 0 || idx >= len(c.entries) {
		return Color{}, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, idx)
	}
	return c.entries[idx], nil
}

// Entries returns a defensive copy of the full entry slice, in insertion
// order.
func (c *Colormap) Entries() []Color {
	out := make([]Color, len(c.entries))
	copy(out, c.entries)
	return out
}

// ValidIndex reports whether idx names a stored entry. Callers holding a
// raster with an attached colormap use this to check the invariant that
// every stored pixel value is a valid palette index.
func (c *Colormap) ValidIndex(idx int) bool {
	return idx >= 0 && idx < len(c.entries)
}
