package pixcore

import (
	"fmt"
	"sync"

	"github.com/docraster/pixcore/colormap"
)

// legalDepths enumerates the only depths a Raster may hold.
var legalDepths = map[int]bool{1: true, 2: true, 4: true, 8: true, 16: true, 32: true}

// bufState tracks whether a mutable View has been taken out for a given
// backing buffer, so that at most one may exist at a time (spec §5).
type bufState struct {
	mu      sync.Mutex
	viewOut bool
}

// Raster is an immutable, rectangular grid of bit-packed pixels. Obtain
// write access via IntoView.
type Raster struct {
	width, height    int
	depth            int
	samplesPerPixel  int
	strideWords      int
	data             []uint32
	cm               *colormap.Colormap
	xres, yres       int
	inputFormat      string
	text             string
	sourceFormat     string
	state            *bufState
}

// strideWordsFor returns ceil(width*depth/32), the number of 32-bit words
// needed to hold one word-aligned row at the given depth.
func strideWordsFor(width, depth int) int {
	return (width*depth + 31) / 32
}

func validateDims(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

func validateDepth(depth int) error {
	if !legalDepths[depth] {
		return fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
	}
	return nil
}

// New constructs a zero-filled raster of the given width, height and depth.
// depth must be one of {1, 2, 4, 8, 16}; use NewColor for 32-bpp rasters,
// which additionally need a samples-per-pixel count.
func New(width, height, depth int) (*Raster, error) {
	if depth == 32 {
		return nil, fmt.Errorf("%w: use NewColor for 32-bpp rasters", ErrUnsupportedDepth)
	}
	return newRaster(width, height, depth, 1)
}

// NewColor constructs a zero-filled 32-bpp raster with samplesPerPixel
// channels packed per word: 3 (RGB, one byte padding) or 4 (RGBA).
func NewColor(width, height, samplesPerPixel int) (*Raster, error) {
	if samplesPerPixel != 3 && samplesPerPixel != 4 {
		return nil, fmt.Errorf("%w: samplesPerPixel %d", ErrInvalidParameter, samplesPerPixel)
	}
	return newRaster(width, height, 32, samplesPerPixel)
}

func newRaster(width, height, depth, spp int) (*Raster, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	if err := validateDepth(depth); err != nil {
		return nil, err
	}
	stride := strideWordsFor(width, depth)
	r := &Raster{
		width:           width,
		height:          height,
		depth:           depth,
		samplesPerPixel: spp,
		strideWords:     stride,
		data:            make([]uint32, stride*height),
		state:           &bufState{},
	}
	return r, nil
}

// NewFromData constructs a raster wrapping an existing word buffer. The
// buffer's length must equal exactly strideWordsFor(width, depth) * height;
// a mismatched length is rejected rather than silently truncated or padded.
func NewFromData(width, height, depth int, data []uint32) (*Raster, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	if err := validateDepth(depth); err != nil {
		return nil, err
	}
	want := strideWordsFor(width, depth) * height
	if len(data) != want {
		return nil, fmt.Errorf("%w: got %d words, want %d", ErrInvalidParameter, len(data), want)
	}
	buf := make([]uint32, len(data))
	copy(buf, data)
	return &Raster{
		width:           width,
		height:          height,
		depth:           depth,
		samplesPerPixel: 1,
		strideWords:     strideWordsFor(width, depth),
		data:            buf,
		state:           &bufState{},
	}, nil
}

// Clone returns a deep, independent copy: a fresh backing buffer, a fresh
// mutable-view lock, and a cloned colormap if one is attached.
func (r *Raster) Clone() *Raster {
	out := &Raster{
		width:           r.width,
		height:          r.height,
		depth:           r.depth,
		samplesPerPixel: r.samplesPerPixel,
		strideWords:     r.strideWords,
		data:            make([]uint32, len(r.data)),
		xres:            r.xres,
		yres:            r.yres,
		inputFormat:     r.inputFormat,
		text:            r.text,
		sourceFormat:    r.sourceFormat,
		state:           &bufState{},
	}
	copy(out.data, r.data)
	if r.cm != nil {
		out.cm = r.cm.Clone()
	}
	return out
}

func (r *Raster) Width() int           { return r.width }
func (r *Raster) Height() int          { return r.height }
func (r *Raster) Depth() int           { return r.depth }
func (r *Raster) SamplesPerPixel() int { return r.samplesPerPixel }
func (r *Raster) StrideWords() int     { return r.strideWords }

// Resolution returns the informational x/y resolution in dots per inch.
func (r *Raster) Resolution() (xres, yres int) { return r.xres, r.yres }

func (r *Raster) InputFormat() string  { return r.inputFormat }
func (r *Raster) Text() string         { return r.text }
func (r *Raster) SourceFormat() string { return r.sourceFormat }

// Colormap returns the raster's attached palette, or nil if none is
// attached. The returned value must not be mutated directly — palette
// mutation is only valid through View.SetColormap, which clones on
// attach (spec §5: "Colormap is not shared across rasters").
func (r *Raster) Colormap() *colormap.Colormap { return r.cm }

// HasColormap reports whether a palette is attached.
func (r *Raster) HasColormap() bool { return r.cm != nil }

// Row returns a read-only view of the strideWords() words backing row y.
func (r *Raster) Row(y int) ([]uint32, error) {
	if y < 0 || y >= r.height {
		return nil, fmt.Errorf("%w: row %d", ErrIndexOutOfBounds, y)
	}
	start := y * r.strideWords
	return r.data[start : start+r.strideWords], nil
}

// RowUnchecked returns a read-only view of row y without bounds checking;
// it is a programmer contract that y is in range.
func (r *Raster) RowUnchecked(y int) []uint32 {
	start := y * r.strideWords
	return r.data[start : start+r.strideWords]
}
