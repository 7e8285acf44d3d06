package sel

// Origin returns the SEL's origin cell (cx, cy).
func (s *Sel) Origin() (int, int) {
	return s.Cx, s.Cy
}

// Dims returns the SEL's width and height.
func (s *Sel) Dims() (int, int) {
	return s.Width, s.Height
}

// HitCount returns the number of Hit elements.
func (s *Sel) HitCount() int {
	n := 0
	for _, e := range s.Data {
		if e == Hit {
			n++
		}
	}
	return n
}

// MissCount returns the number of Miss elements.
func (s *Sel) MissCount() int {
	n := 0
	for _, e := range s.Data {
		if e == Miss {
			n++
		}
	}
	return n
}

// IsAllHit reports whether every element is Hit (a pure brick, the
// common case eligible for brick separability and DWA code generation).
func (s *Sel) IsAllHit() bool {
	return s.HitCount() == len(s.Data)
}

// MaxTranslation returns the maximum offset, in each of the four
// cardinal directions, that the origin can range over within the SEL's
// bounding box: (left, right, up, down), i.e. the border width that
// must be considered when computing the boundary condition for an
// operation using this SEL.
func (s *Sel) MaxTranslation() (left, right, up, down int) {
	return s.Cx, s.Width - 1 - s.Cx, s.Cy, s.Height - 1 - s.Cy
}
