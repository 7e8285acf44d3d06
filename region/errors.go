// Package region implements connected-component labeling and
// Moore-neighbor border tracing over 1-bpp pixcore rasters (spec §4.9).
package region

import "errors"

// Sentinel errors for the region package.
var (
	// ErrUnsupportedDepth is returned when a non-1-bpp raster is given.
	ErrUnsupportedDepth = errors.New("region: unsupported depth")

	// ErrInvalidParameter is returned for an unsupported connectivity
	// value (only 4 and 8 are defined).
	ErrInvalidParameter = errors.New("region: invalid parameter")

	// ErrEmptyComponent is returned when border tracing is requested on
	// a component with no foreground pixels.
	ErrEmptyComponent = errors.New("region: empty component")
)
