package colormap

import "errors"

// Sentinel errors returned by this package. Wrap with fmt.Errorf("%w: ...")
// for added context; callers should match with errors.Is.
var (
	// ErrUnsupportedDepth is returned when a colormap is requested for a
	// depth outside {1, 2, 4, 8}.
	ErrUnsupportedDepth = errors.New("colormap: unsupported depth")

	// ErrFull is returned by Add when the colormap already holds the
	// maximum number of entries for its depth.
	ErrFull = errors.New("colormap: full")

	// ErrIndexOutOfRange is returned by Set/GetRGB/GetRGBA for an index
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("colormap: index out of range")

	// ErrInvalidParameter is returned for out-of-domain numeric arguments
	// (gamma <= 0, weights that can't be normalized, rank outside [0,1]).
	ErrInvalidParameter = errors.New("colormap: invalid parameter")

	// ErrIO is returned for serialization/deserialization faults.
	ErrIO = errors.New("colormap: io")
)
