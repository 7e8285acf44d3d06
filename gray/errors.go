// Package gray implements grayscale morphology (dilation, erosion,
// opening, closing, gradient, top-hat) over 8-bpp and per-channel 32-bpp
// pixcore rasters, plus the morphological sequence mini-language
// described in spec §4.8/§6.
package gray

import "errors"

// Sentinel errors for the gray package.
var (
	// ErrUnsupportedDepth is returned for a raster whose depth is
	// neither 8 nor 32.
	ErrUnsupportedDepth = errors.New("gray: unsupported depth")

	// ErrInvalidParameter is returned for a non-positive SE dimension.
	ErrInvalidParameter = errors.New("gray: invalid parameter")

	// ErrParse is returned for a malformed sequence-DSL string, wrapped
	// with the offending token's byte offset.
	ErrParse = errors.New("gray: parse error")

	// ErrBinaryRejected is returned when a top-hat operation (tw/tb) is
	// evaluated against a binary-only context.
	ErrBinaryRejected = errors.New("gray: top-hat is not defined for binary evaluation")
)
