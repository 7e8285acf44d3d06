package dwa

import (
	"fmt"

	"github.com/docraster/pixcore"
	"github.com/docraster/pixcore/internal/pool"
)

// MaxSinglePassSize is the largest brick dimension the single-step
// horizontal/vertical pass supports directly (spec: sizes above 63
// require composite decomposition).
const MaxSinglePassSize = 63

func checkBrick(width, cx int) error {
	if width < 1 {
		return fmt.Errorf("%w: width %d", ErrInvalidParameter, width)
	}
	if width > MaxSinglePassSize {
		return fmt.Errorf("%w: %d", ErrSizeTooLarge, width)
	}
	if cx < 0 || cx >= width {
		return fmt.Errorf("%w: origin %d outside width %d", ErrInvalidParameter, cx, width)
	}
	return nil
}

func requireBinary(r *pixcore.Raster) error {
	if r.Depth() != 1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedDepth, r.Depth())
	}
	return nil
}

// wordAt returns words[idx], or 0 if idx falls outside [0, len(words)),
// the zero-outside-the-row boundary every barrel shift here relies on.
func wordAt(words []uint32, idx int) uint32 {
	if idx < 0 || idx >= len(words) {
		return 0
	}
	return words[idx]
}

// shiftWordsLeftBy returns a copy of words shifted left by bits (>= 0,
// unbounded — a legal brick width up to MaxSinglePassSize can require a
// shift past a single word) within the full concatenated bit-row,
// merging in the high bits of the next word; positions beyond the row's
// last word zero-fill, giving the asymmetric (zero-outside) boundary.
// bits is split into a whole-word shift (wordShift) and a sub-word
// shift (bitShift < 32) so that a shift amount of 32 or more never
// reaches the undefined-by-convention "shift by the full word width"
// case that a naive single-word formula would silently corrupt.
func shiftWordsLeftBy(words []uint32, bits int) []uint32 {
	n := len(words)
	out := pool.GetWords(n)
	wordShift, bitShift := bits/32, bits%32
	for i := 0; i < n; i++ {
		out[i] = wordAt(words, i+wordShift) << uint(bitShift)
		if bitShift != 0 {
			out[i] |= wordAt(words, i+wordShift+1) >> uint(32-bitShift)
		}
	}
	return out
}

// shiftWordsRightBy is the mirror of shiftWordsLeftBy: it merges in the
// low bits of the previous word, zero-filling before the row's first
// word, with the same whole-word/sub-word split for bits >= 32.
func shiftWordsRightBy(words []uint32, bits int) []uint32 {
	n := len(words)
	out := pool.GetWords(n)
	wordShift, bitShift := bits/32, bits%32
	for i := 0; i < n; i++ {
		out[i] = wordAt(words, i-wordShift) >> uint(bitShift)
		if bitShift != 0 {
			out[i] |= wordAt(words, i-wordShift-1) << uint(32-bitShift)
		}
	}
	return out
}

// shiftRow returns words shifted so that shifted[k] == words[k+d] for
// every bit position k of the concatenated row (d may be negative),
// zero-filling positions that fall outside the row — the word-merge
// barrel shift described in spec §4.7.
func shiftRow(words []uint32, d int) []uint32 {
	switch {
	case d == 0:
		out := pool.GetWords(len(words))
		copy(out, words)
		return out
	case d > 0:
		return shiftWordsLeftBy(words, d)
	default:
		return shiftWordsRightBy(words, -d)
	}
}

// lastWordMask re-zeros the padding bits of a row's final word beyond
// validBits real pixels (spec §4.7 "Padding").
func lastWordMask(validBits int) uint32 {
	if validBits <= 0 {
		return 0
	}
	if validBits >= 32 {
		return 0xffffffff
	}
	return ^uint32(0) << uint(32-validBits)
}

func rowLastWordValidBits(width, strideWords int) int {
	return width - (strideWords-1)*32
}

// horizontalReduce runs the horizontal pass of a brick of the given
// width and origin cx over one row's words: for dilation, OR across hit
// offsets dx in [-cx, width-1-cx] of the row shifted by -dx (output
// column p reads source column p-dx, per §4.6's dilation definition);
// for erosion, AND. The result's padding bits are re-masked to zero.
func horizontalReduce(words []uint32, rowWidth int, width, cx int, dilate bool) []uint32 {
	left, right := cx, width-1-cx
	var acc []uint32
	if dilate {
		acc = make([]uint32, len(words))
	} else {
		acc = make([]uint32, len(words))
		for i := range acc {
			acc[i] = 0xffffffff
		}
	}
	for dx := -left; dx <= right; dx++ {
		// Dilation reads source column p-dx (shift by -dx); erosion
		// reads source column p+dx (shift by +dx) — spec §4.6.
		shiftAmount := -dx
		if !dilate {
			shiftAmount = dx
		}
		shifted := shiftRow(words, shiftAmount)
		for i := range acc {
			if dilate {
				acc[i] |= shifted[i]
			} else {
				acc[i] &= shifted[i]
			}
		}
		pool.PutWords(shifted)
	}
	validBits := rowLastWordValidBits(rowWidth, len(words))
	mask := lastWordMask(validBits)
	acc[len(acc)-1] &= mask
	return acc
}

// verticalReduce runs the vertical pass of a brick of the given height
// and origin cy: out row y is the OR (dilation) or AND (erosion), over
// hit offsets dy in [-cy, height-1-cy], of mid row y-dy (output row p
// reads source row p-dy, per §4.6's dilation definition), with
// out-of-range rows treated as all-zero.
func verticalReduce(mid [][]uint32, height, cy int, dilate bool) [][]uint32 {
	h := len(mid)
	strideWords := 0
	if h > 0 {
		strideWords = len(mid[0])
	}
	top, bottom := cy, height-1-cy
	out := make([][]uint32, h)
	for y := 0; y < h; y++ {
		var acc []uint32
		if dilate {
			acc = make([]uint32, strideWords)
		} else {
			acc = make([]uint32, strideWords)
			for i := range acc {
				acc[i] = 0xffffffff
			}
		}
		for dy := -top; dy <= bottom; dy++ {
			// Dilation reads source row p-dy; erosion reads source
			// row p+dy — the vertical analogue of the horizontal pass.
			sy := y - dy
			if !dilate {
				sy = y + dy
			}
			if sy < 0 || sy >= h {
				if !dilate {
					for i := range acc {
						acc[i] = 0
					}
				}
				continue
			}
			row := mid[sy]
			for i := range acc {
				if dilate {
					acc[i] |= row[i]
				} else {
					acc[i] &= row[i]
				}
			}
		}
		out[y] = acc
	}
	return out
}

// DilateBrick computes the dilation of src by an all-Hit width x height
// brick with origin (cx, cy), via the separable horizontal-then-vertical
// word-parallel pass. width and height must each be in [1, 63].
func DilateBrick(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	return brickOp(src, width, height, cx, cy, true)
}

// ErodeBrick is the erosion analogue of DilateBrick.
func ErodeBrick(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	return brickOp(src, width, height, cx, cy, false)
}

func brickOp(src *pixcore.Raster, width, height, cx, cy int, dilate bool) (*pixcore.Raster, error) {
	if err := requireBinary(src); err != nil {
		return nil, err
	}
	if err := checkBrick(width, cx); err != nil {
		return nil, err
	}
	if err := checkBrick(height, cy); err != nil {
		return nil, err
	}

	h := src.Height()
	mid := make([][]uint32, h)
	for y := 0; y < h; y++ {
		row, err := src.Row(y)
		if err != nil {
			return nil, err
		}
		mid[y] = horizontalReduce(row, src.Width(), width, cx, dilate)
	}

	final := verticalReduce(mid, height, cy, dilate)

	out, err := pixcore.New(src.Width(), src.Height(), 1)
	if err != nil {
		return nil, err
	}
	v := out.IntoView()
	for y := 0; y < h; y++ {
		dst, err := v.RowMutable(y)
		if err != nil {
			return nil, err
		}
		copy(dst, final[y])
	}
	return v.IntoRaster(), nil
}

// OpenBrick computes erosion followed by dilation by the same brick.
func OpenBrick(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	e, err := ErodeBrick(src, width, height, cx, cy)
	if err != nil {
		return nil, err
	}
	return DilateBrick(e, width, height, cx, cy)
}

// CloseBrick computes dilation followed by erosion by the same brick.
func CloseBrick(src *pixcore.Raster, width, height, cx, cy int) (*pixcore.Raster, error) {
	d, err := DilateBrick(src, width, height, cx, cy)
	if err != nil {
		return nil, err
	}
	return ErodeBrick(d, width, height, cx, cy)
}
