package pixcore

import "errors"

// Sentinel errors for the pixcore package. Callers match with errors.Is;
// additional context is added with fmt.Errorf("pixcore: ...: %w", err).
var (
	// ErrInvalidDimension is returned for a zero or overflow-large width
	// or height.
	ErrInvalidDimension = errors.New("pixcore: invalid dimension")

	// ErrUnsupportedDepth is returned when depth is not one of
	// {1, 2, 4, 8, 16, 32}, or an operation requires a specific depth
	// that the input does not have.
	ErrUnsupportedDepth = errors.New("pixcore: unsupported depth")

	// ErrIncompatibleDepths is returned when two inputs disagree on depth
	// for an operation that requires agreement.
	ErrIncompatibleDepths = errors.New("pixcore: incompatible depths")

	// ErrIncompatibleSizes is returned when two inputs disagree on
	// dimensions for an operation that requires agreement.
	ErrIncompatibleSizes = errors.New("pixcore: incompatible sizes")

	// ErrIndexOutOfBounds is returned for an out-of-range pixel
	// coordinate.
	ErrIndexOutOfBounds = errors.New("pixcore: index out of bounds")

	// ErrInvalidParameter is returned for an out-of-domain numeric
	// argument.
	ErrInvalidParameter = errors.New("pixcore: invalid parameter")

	// ErrNullInput is returned when an empty raster is passed where a
	// nonempty one is required.
	ErrNullInput = errors.New("pixcore: null input")

	// ErrNotSupported is returned for a legitimate request whose
	// implementation is deferred (spec §4.3: colormapped conversion
	// sources).
	ErrNotSupported = errors.New("pixcore: not supported")

	// ErrViewAlreadyOut is the construction-time error raised when a
	// second mutable view of the same buffer is requested while one is
	// already outstanding (spec §5, §9).
	ErrViewAlreadyOut = errors.New("pixcore: mutable view already outstanding")
)
