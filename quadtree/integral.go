package quadtree

import (
	"fmt"
	"math"

	"github.com/docraster/pixcore"
)

// IntegralImage is a summed-area table over an 8-bpp raster: Get(x, y)
// holds the sum of every source pixel in the inclusive rectangle
// [0, x] x [0, y].
type IntegralImage struct {
	width, height int
	sums          []int64
}

// SquaredIntegralImage is the same summed-area structure built over
// squared pixel values, used alongside IntegralImage to compute
// variance in O(1) per rectangle.
type SquaredIntegralImage struct {
	IntegralImage
}

func buildIntegral(src *pixcore.Raster, square bool) (*IntegralImage, error) {
	if src.Depth() != 8 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, src.Depth())
	}
	w, h := src.Width(), src.Height()
	sums := make([]int64, w*h)
	for y := 0; y < h; y++ {
		var rowSum int64
		for x := 0; x < w; x++ {
			v := int64(src.GetPixelUnchecked(x, y))
			if square {
				v *= v
			}
			rowSum += v
			above := int64(0)
			if y > 0 {
				above = sums[(y-1)*w+x]
			}
			sums[y*w+x] = rowSum + above
		}
	}
	return &IntegralImage{width: w, height: h, sums: sums}, nil
}

// NewIntegralImage builds the summed-area table of src's raw pixel
// values.
func NewIntegralImage(src *pixcore.Raster) (*IntegralImage, error) {
	return buildIntegral(src, false)
}

// NewSquaredIntegralImage builds the summed-area table of src's
// squared pixel values.
func NewSquaredIntegralImage(src *pixcore.Raster) (*SquaredIntegralImage, error) {
	ii, err := buildIntegral(src, true)
	if err != nil {
		return nil, err
	}
	return &SquaredIntegralImage{IntegralImage: *ii}, nil
}

func (ii *IntegralImage) Width() int  { return ii.width }
func (ii *IntegralImage) Height() int { return ii.height }

// Get returns the cumulative sum of the rectangle [0,x] x [0,y].
func (ii *IntegralImage) Get(x, y int) (int64, bool) {
	if x < 0 || x >= ii.width || y < 0 || y >= ii.height {
		return 0, false
	}
	return ii.sums[y*ii.width+x], true
}

func (ii *IntegralImage) at(x, y int) int64 {
	if x < 0 || y < 0 {
		return 0
	}
	return ii.sums[y*ii.width+x]
}

// SumRect returns the sum of the w x h rectangle whose top-left corner
// is (x0, y0), via the standard four-corner integral-image formula.
func (ii *IntegralImage) SumRect(x0, y0, w, h int) (int64, error) {
	if w <= 0 || h <= 0 || x0 < 0 || y0 < 0 || x0+w > ii.width || y0+h > ii.height {
		return 0, fmt.Errorf("%w: rect (%d,%d,%d,%d) outside %dx%d", ErrInvalidParameter, x0, y0, w, h, ii.width, ii.height)
	}
	x1, y1 := x0+w-1, y0+h-1
	return ii.at(x1, y1) - ii.at(x0-1, y1) - ii.at(x1, y0-1) + ii.at(x0-1, y0-1), nil
}

// Rect is an axis-aligned pixel rectangle (half-open: [X, X+W) x
// [Y, Y+H)).
type Rect struct{ X, Y, W, H int }

// MeanInRect returns the mean source pixel value over rect.
func MeanInRect(rect Rect, integral *IntegralImage) (float64, error) {
	sum, err := integral.SumRect(rect.X, rect.Y, rect.W, rect.H)
	if err != nil {
		return 0, err
	}
	area := float64(rect.W * rect.H)
	return float64(sum) / area, nil
}

// VarianceInRect returns (variance, rootVariance) of the source pixel
// values over rect, using both integral images. Negative variance from
// floating-point rounding on a near-uniform rectangle is clamped to 0.
func VarianceInRect(rect Rect, integral *IntegralImage, sqIntegral *SquaredIntegralImage) (variance, rootVariance float64, err error) {
	sum, err := integral.SumRect(rect.X, rect.Y, rect.W, rect.H)
	if err != nil {
		return 0, 0, err
	}
	sumSq, err := sqIntegral.SumRect(rect.X, rect.Y, rect.W, rect.H)
	if err != nil {
		return 0, 0, err
	}
	area := float64(rect.W * rect.H)
	mean := float64(sum) / area
	variance = float64(sumSq)/area - mean*mean
	if variance < 0 {
		variance = 0
	}
	return variance, math.Sqrt(variance), nil
}
