package pixcore

import "fmt"

// FPix is a dense, row-major width x height grid of 32-bit floats with no
// row padding, used for intermediates such as gradients, distance maps and
// accumulators. It carries resolution metadata but never a colormap.
type FPix struct {
	width, height int
	data          []float32
	xres, yres    int
}

// NewFPix constructs a zero-filled floating raster.
func NewFPix(width, height int) (*FPix, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	return &FPix{width: width, height: height, data: make([]float32, width*height)}, nil
}

// NewFPixFromData wraps an existing row-major buffer; its length must
// equal exactly width*height.
func NewFPixFromData(width, height int, data []float32) (*FPix, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d floats, want %d", ErrInvalidParameter, len(data), width*height)
	}
	buf := make([]float32, len(data))
	copy(buf, data)
	return &FPix{width: width, height: height, data: buf}, nil
}

func (f *FPix) Width() int  { return f.width }
func (f *FPix) Height() int { return f.height }

func (f *FPix) Resolution() (xres, yres int)  { return f.xres, f.yres }
func (f *FPix) SetResolution(xres, yres int)  { f.xres, f.yres = xres, yres }

// Clone returns a deep, independent copy.
func (f *FPix) Clone() *FPix {
	out := &FPix{width: f.width, height: f.height, xres: f.xres, yres: f.yres, data: make([]float32, len(f.data))}
	copy(out.data, f.data)
	return out
}

// Get returns the value at (x, y).
func (f *FPix) Get(x, y int) (float32, error) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfBounds, x, y)
	}
	return f.data[y*f.width+x], nil
}

// GetUnchecked returns the value at (x, y) without bounds checking.
func (f *FPix) GetUnchecked(x, y int) float32 {
	return f.data[y*f.width+x]
}

// Set writes the value at (x, y).
func (f *FPix) Set(x, y int, v float32) error {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfBounds, x, y)
	}
	f.data[y*f.width+x] = v
	return nil
}

// SetUnchecked writes the value at (x, y) without bounds checking.
func (f *FPix) SetUnchecked(x, y int, v float32) {
	f.data[y*f.width+x] = v
}

// Row returns a mutable view of row y's width contiguous values.
func (f *FPix) Row(y int) ([]float32, error) {
	if y < 0 || y >= f.height {
		return nil, fmt.Errorf("%w: row %d", ErrIndexOutOfBounds, y)
	}
	return f.data[y*f.width : (y+1)*f.width], nil
}
