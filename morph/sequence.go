package morph

import (
	"github.com/docraster/pixcore"
	"github.com/docraster/pixcore/gray"
	"github.com/docraster/pixcore/sel"
)

// EvalBinarySequence applies a gray.Sequence (morphological sequence
// DSL, spec §4.8/§6) to a 1-bpp raster using the reference binary
// primitives. tw/tb steps are rejected: top-hat is defined only for
// grayscale evaluation.
func EvalBinarySequence(src *pixcore.Raster, seq gray.Sequence) (*pixcore.Raster, error) {
	if err := requireBinary(src); err != nil {
		return nil, err
	}
	cur := src
	for _, step := range seq {
		if step.Kind == gray.OpWhiteTopHat || step.Kind == gray.OpBlackTopHat {
			return nil, gray.ErrBinaryRejected
		}
		s, err := sel.Brick(step.Width, step.Height, step.Width/2, step.Height/2)
		if err != nil {
			return nil, err
		}
		var next *pixcore.Raster
		switch step.Kind {
		case gray.OpDilate:
			next, err = Dilate(cur, s)
		case gray.OpErode:
			next, err = Erode(cur, s)
		case gray.OpOpen:
			next, err = Open(cur, s)
		case gray.OpClose:
			next, err = Close(cur, s)
		}
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
