package sel

// Reflect returns the 180-degree point reflection of s about its origin:
// Data[y][x] -> Data'[h-1-y][w-1-x], with the origin remapped to
// (w-1-cx, h-1-cy). This is the SEL used to implement erosion via
// dilation-of-complement (and vice versa).
func (s *Sel) Reflect() *Sel {
	out := &Sel{Width: s.Width, Height: s.Height, Cx: s.Width - 1 - s.Cx, Cy: s.Height - 1 - s.Cy, Data: make([]Element, len(s.Data))}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			out.set(s.Width-1-x, s.Height-1-y, s.at(x, y))
		}
	}
	return out
}

// Rotate returns s rotated about its origin by the given angle in degrees,
// which must be one of 0, 90, 180, 270 (measured clockwise).
func (s *Sel) Rotate(degrees int) (*Sel, error) {
	switch ((degrees % 360) + 360) % 360 {
	case 0:
		return s.Clone(), nil
	case 90:
		return s.rotate90(), nil
	case 180:
		return s.Reflect(), nil
	case 270:
		return s.rotate90().rotate90().rotate90(), nil
	default:
		return nil, ErrInvalidParameter
	}
}

// rotate90 rotates 90 degrees clockwise: a w x h SEL becomes h x w, with
// (x, y) -> (h-1-y, x).
func (s *Sel) rotate90() *Sel {
	out := &Sel{Width: s.Height, Height: s.Width, Cx: s.Height - 1 - s.Cy, Cy: s.Cx, Data: make([]Element, len(s.Data))}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			out.set(s.Height-1-y, x, s.at(x, y))
		}
	}
	return out
}

// PlusSign returns the same SEL as Cross(radius): a (2*radius+1) square
// whose Hit cells are the full center row and center column.
func PlusSign(radius int) (*Sel, error) {
	return Cross(radius)
}

// Comb decomposes a 1-D brick of the given length into a sequence of
// smaller SELs whose successive dilations reproduce the original: this
// is the foundation of brick separability for large structuring
// elements. It returns the factor SELs in application order. horizontal
// selects a horizontal (length x 1) decomposition; otherwise vertical
// (1 x length).
//
// The decomposition follows the standard two-factor scheme: pick n1, n2
// with n1*n2 = length (n1 as large as possible while n1 <= sqrt(length)
// rounded to make both factors exact), producing a "comb" SEL of n2
// evenly spaced hits convolved with a solid SEL of length n1. When
// length has no useful factorization (prime, or small), the single
// original brick is returned unfactored.
func Comb(length int, horizontal bool) ([]*Sel, error) {
	if length < 1 {
		return nil, ErrInvalidParameter
	}
	n1, n2 := bestFactorPair(length)
	if n1 == 1 || n2 == 1 {
		var brick *Sel
		var err error
		if horizontal {
			brick, err = HLine(length)
		} else {
			brick, err = VLine(length)
		}
		if err != nil {
			return nil, err
		}
		return []*Sel{brick}, nil
	}
	solid, comb, err := combFactors(n1, n2, horizontal)
	if err != nil {
		return nil, err
	}
	return []*Sel{solid, comb}, nil
}

// bestFactorPair returns (n1, n2) with n1*n2 == length and n1 the
// largest divisor of length not exceeding sqrt(length).
func bestFactorPair(length int) (int, int) {
	best := 1
	for d := 1; d*d <= length; d++ {
		if length%d == 0 {
			best = d
		}
	}
	return best, length / best
}

func combFactors(n1, n2 int, horizontal bool) (solid, comb *Sel, err error) {
	if horizontal {
		solid, err = HLine(n1)
		if err != nil {
			return nil, nil, err
		}
	} else {
		solid, err = VLine(n1)
		if err != nil {
			return nil, nil, err
		}
	}
	// The comb spans the full range its hits are scattered across —
	// (n2-1)*n1+1 cells, hit only every n1'th one — not a compact n2
	// cell grid, so that composing it with solid by dilation reproduces
	// exactly the same centered offset range as a direct brick of
	// length n1*n2 (origin at (n1*n2)/2).
	span := (n2-1)*n1 + 1
	origin := (n1*n2)/2 - n1/2
	w, h := span, 1
	cx, cy := origin, 0
	if !horizontal {
		w, h = 1, span
		cx, cy = 0, origin
	}
	comb, err = Empty(w, h, cx, cy)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n2; i++ {
		if horizontal {
			comb.set(i*n1, 0, Hit)
		} else {
			comb.set(0, i*n1, Hit)
		}
	}
	return solid, comb, nil
}

// IsCrossJunction reports whether s's Hit pattern forms a plus-shaped
// cross: the Hit set equals exactly the center row union center column
// of its bounding box, with no other Hits. s must be an odd square with
// its origin at the center; cells off the arms may be Miss or DontCare.
func (s *Sel) IsCrossJunction() bool {
	if s.Width != s.Height || s.Width%2 == 0 {
		return false
	}
	r := s.Width / 2
	if s.Cx != r || s.Cy != r {
		return false
	}
	for y := 0; y < s.Width; y++ {
		for x := 0; x < s.Width; x++ {
			onArm := x == r || y == r
			if onArm != (s.at(x, y) == Hit) {
				return false
			}
		}
	}
	return true
}
