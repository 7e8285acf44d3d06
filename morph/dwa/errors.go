// Package dwa implements the word-aligned ("DWA") fast path for binary
// morphology with separable brick structuring elements: a horizontal
// pass of barrel-shifted word merges followed by a vertical pass of
// whole-word row combination, instead of the per-pixel reference loop
// in package morph.
package dwa

import "errors"

// Sentinel errors for the dwa package.
var (
	// ErrUnsupportedDepth is returned when a non-1-bpp raster is given.
	ErrUnsupportedDepth = errors.New("dwa: unsupported depth")

	// ErrInvalidParameter is returned for a non-positive brick
	// dimension or an origin outside the brick's bounding box.
	ErrInvalidParameter = errors.New("dwa: invalid parameter")

	// ErrSizeTooLarge is returned when a brick dimension exceeds the
	// single-pass limit of 63 and must instead go through composite
	// decomposition (package morph's DilateComposite/ErodeComposite).
	ErrSizeTooLarge = errors.New("dwa: size exceeds single-pass limit of 63")
)
