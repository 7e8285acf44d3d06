// Package fill implements binary flood fill, hole filling, border
// clearing, restricted seedfill, and the Chamfer distance transform
// over 1-bpp pixcore rasters (spec §4.10).
package fill

import "errors"

// Sentinel errors for the fill package.
var (
	// ErrUnsupportedDepth is returned when an operation requires a
	// specific raster depth that the input does not have.
	ErrUnsupportedDepth = errors.New("fill: unsupported depth")

	// ErrInvalidParameter is returned for an unsupported connectivity,
	// output depth, or other out-of-range argument.
	ErrInvalidParameter = errors.New("fill: invalid parameter")

	// ErrOutOfBounds is returned when a seed coordinate falls outside
	// the raster.
	ErrOutOfBounds = errors.New("fill: seed out of bounds")

	// ErrSizeMismatch is returned when a seed/mask pair must share
	// dimensions but do not.
	ErrSizeMismatch = errors.New("fill: size mismatch")
)
