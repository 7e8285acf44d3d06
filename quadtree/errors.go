// Package quadtree computes hierarchical tile statistics (mean,
// variance, root-variance) of an 8-bpp raster via integral images,
// and exposes the parent/children index relations between levels
// (spec §4.11).
package quadtree

import "errors"

// Sentinel errors for the quadtree package.
var (
	// ErrUnsupportedDepth is returned when a non-8-bpp raster is given.
	ErrUnsupportedDepth = errors.New("quadtree: unsupported depth")

	// ErrInvalidParameter is returned for an out-of-range level count
	// or rectangle.
	ErrInvalidParameter = errors.New("quadtree: invalid parameter")
)
