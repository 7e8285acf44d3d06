package sel

import "errors"

// Sentinel errors for the sel package.
var (
	// ErrInvalidSel is returned for a malformed structuring element: empty,
	// an origin outside its bounding box, or an unrecognized pattern
	// character.
	ErrInvalidSel = errors.New("sel: invalid structuring element")

	// ErrInvalidParameter is returned for an out-of-domain numeric
	// argument (non-positive size, unsupported rotation angle).
	ErrInvalidParameter = errors.New("sel: invalid parameter")

	// ErrIndexOutOfBounds is returned for an out-of-range SEL coordinate.
	ErrIndexOutOfBounds = errors.New("sel: index out of bounds")

	// ErrNotFound is returned when a named SEL is not present in a
	// Library.
	ErrNotFound = errors.New("sel: not found")

	// ErrIO is returned for text serialization/deserialization faults.
	ErrIO = errors.New("sel: io")
)
