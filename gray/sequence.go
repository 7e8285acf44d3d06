package gray

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/docraster/pixcore"
)

// OpKind identifies one step of a morphological sequence.
type OpKind int

const (
	OpDilate OpKind = iota
	OpErode
	OpOpen
	OpClose
	OpWhiteTopHat
	OpBlackTopHat
)

// Step is one parsed operation of a sequence: a kind and a width x
// height brick, origin at (width/2, height/2) per the DSL grammar (the
// grammar carries no explicit origin).
type Step struct {
	Kind          OpKind
	Width, Height int
}

// Sequence is an ordered list of morphological steps, as produced by
// Parse from a string of the grammar:
//
//	Sequence := Op ('+' Op)*
//	Op       := Letter Dims
//	Letter   := [deocDEOC] | [tT][wbWB]
//	Dims     := Digits '.' Digits
type Sequence []Step

// Parse parses s into a Sequence. Whitespace is ignored; letters are
// case-insensitive. Parse errors report the offending token's byte
// offset within s after its whitespace has been removed.
func Parse(s string) (Sequence, error) {
	compact := stripWhitespace(s)
	if compact == "" {
		return nil, fmt.Errorf("%w: empty sequence", ErrParse)
	}
	tokens := strings.Split(compact, "+")
	seq := make(Sequence, 0, len(tokens))
	offset := 0
	for _, tok := range tokens {
		step, err := parseOp(tok, offset)
		if err != nil {
			return nil, err
		}
		seq = append(seq, step)
		offset += len(tok) + 1
	}
	return seq, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func parseOp(tok string, offset int) (Step, error) {
	if tok == "" {
		return Step{}, fmt.Errorf("%w: empty operation at offset %d", ErrParse, offset)
	}
	lower := strings.ToLower(tok)
	var kind OpKind
	var rest string
	switch {
	case strings.HasPrefix(lower, "tw"):
		kind, rest = OpWhiteTopHat, tok[2:]
	case strings.HasPrefix(lower, "tb"):
		kind, rest = OpBlackTopHat, tok[2:]
	case lower[0] == 'd':
		kind, rest = OpDilate, tok[1:]
	case lower[0] == 'e':
		kind, rest = OpErode, tok[1:]
	case lower[0] == 'o':
		kind, rest = OpOpen, tok[1:]
	case lower[0] == 'c':
		kind, rest = OpClose, tok[1:]
	default:
		return Step{}, fmt.Errorf("%w: unrecognized operation letter %q at offset %d", ErrParse, tok[:1], offset)
	}
	w, h, err := parseDims(rest, offset+len(tok)-len(rest))
	if err != nil {
		return Step{}, err
	}
	return Step{Kind: kind, Width: w, Height: h}, nil
}

func parseDims(s string, offset int) (w, h int, err error) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected '<w>.<h>' at offset %d, got %q", ErrParse, offset, s)
	}
	w, err = strconv.Atoi(parts[0])
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("%w: invalid width %q at offset %d", ErrParse, parts[0], offset)
	}
	h, err = strconv.Atoi(parts[1])
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("%w: invalid height %q at offset %d", ErrParse, parts[1], offset+len(parts[0])+1)
	}
	return w, h, nil
}

// Eval applies the sequence to a grayscale (8- or 32-bpp) raster in
// order, returning the final raster. Binary (1-bpp) evaluation is
// performed by package morph's EvalBinarySequence, which rejects tw/tb
// steps per spec §4.8.
func (seq Sequence) Eval(src *pixcore.Raster) (*pixcore.Raster, error) {
	cur := src
	for _, step := range seq {
		cx, cy := step.Width/2, step.Height/2
		var next *pixcore.Raster
		var err error
		switch step.Kind {
		case OpDilate:
			next, err = Dilate(cur, step.Width, step.Height, cx, cy)
		case OpErode:
			next, err = Erode(cur, step.Width, step.Height, cx, cy)
		case OpOpen:
			next, err = Open(cur, step.Width, step.Height, cx, cy)
		case OpClose:
			next, err = Close(cur, step.Width, step.Height, cx, cy)
		case OpWhiteTopHat:
			next, err = WhiteTopHat(cur, step.Width, step.Height, cx, cy)
		case OpBlackTopHat:
			next, err = BlackTopHat(cur, step.Width, step.Height, cx, cy)
		}
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
