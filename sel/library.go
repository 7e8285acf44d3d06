package sel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Library is an ordered, name-indexed collection of SELs.
type Library struct {
	sels  []*Sel
	index map[string]int
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{index: make(map[string]int)}
}

// Add appends s to the library, indexed by s.Name. A duplicate name
// replaces the earlier entry's slot but preserves original ordering.
func (l *Library) Add(s *Sel) {
	if i, ok := l.index[s.Name]; ok {
		l.sels[i] = s
		return
	}
	l.index[s.Name] = len(l.sels)
	l.sels = append(l.sels, s)
}

// Get returns the named SEL, or ErrNotFound.
func (l *Library) Get(name string) (*Sel, error) {
	i, ok := l.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return l.sels[i], nil
}

// Names returns the SELs' names in insertion order.
func (l *Library) Names() []string {
	out := make([]string, len(l.sels))
	for i, s := range l.sels {
		out[i] = s.Name
	}
	return out
}

// Len returns the number of SELs in the library.
func (l *Library) Len() int {
	return len(l.sels)
}

// At returns the i'th SEL in insertion order.
func (l *Library) At(i int) (*Sel, error) {
	if i < 0 || i >= len(l.sels) {
		return nil, fmt.Errorf("%w: index %d", ErrIndexOutOfBounds, i)
	}
	return l.sels[i], nil
}

// WriteTo serializes the library in "Sela Version 1" format:
//
//	Sela Version 1
//	Number of Sels = <N>
//
//	<sel 0>
//	<sel 1>
//	...
func (l *Library) WriteTo(w io.Writer) (int64, error) {
	var total int64
	header := fmt.Sprintf("\nSela Version 1\nNumber of Sels = %d\n\n", len(l.sels))
	n, err := io.WriteString(w, header)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, s := range l.sels {
		n64, err := s.WriteTo(w)
		total += n64
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadLibrary parses a "Sela Version 1" library file.
func ReadLibrary(r io.Reader) (*Library, error) {
	sc := bufio.NewScanner(r)
	var count int
	found := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line != "Sela Version 1" {
			return nil, fmt.Errorf("%w: missing 'Sela Version 1' header", ErrIO)
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("%w: empty library file", ErrIO)
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: truncated after library header", ErrIO)
	}
	countLine := strings.TrimSpace(sc.Text())
	const prefix = "Number of Sels ="
	if !strings.HasPrefix(countLine, prefix) {
		return nil, fmt.Errorf("%w: missing sel count line", ErrIO)
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(countLine, prefix)))
	if err != nil {
		return nil, fmt.Errorf("%w: bad sel count: %v", ErrIO, err)
	}
	count = n

	lib := NewLibrary()
	for i := 0; i < count; i++ {
		s, err := readSel(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: sel %d: %v", ErrIO, i, err)
		}
		lib.Add(s)
	}
	return lib, nil
}

// Basic returns the "basic" library: 25 linear horizontal SELs (lengths
// 2..26), 25 linear vertical, 4 square bricks
// 2x2..5x5, and 4 named diagonal SELs, for 58 total.
func Basic() (*Library, error) {
	lib := NewLibrary()
	for n := 2; n <= 26; n++ {
		h, err := HLine(n)
		if err != nil {
			return nil, err
		}
		h.Name = fmt.Sprintf("sel_%d_h", n)
		lib.Add(h)
	}
	for n := 2; n <= 26; n++ {
		v, err := VLine(n)
		if err != nil {
			return nil, err
		}
		v.Name = fmt.Sprintf("sel_%d_v", n)
		lib.Add(v)
	}
	for n := 2; n <= 5; n++ {
		sq, err := Square(n)
		if err != nil {
			return nil, err
		}
		sq.Name = fmt.Sprintf("sel_%dx%d", n, n)
		lib.Add(sq)
	}
	diag2p, err := diagonal(2, true)
	if err != nil {
		return nil, err
	}
	diag2p.Name = "sel_2dp"
	lib.Add(diag2p)

	diag2m, err := diagonal(2, false)
	if err != nil {
		return nil, err
	}
	diag2m.Name = "sel_2dm"
	lib.Add(diag2m)

	diag5p, err := diagonal(5, true)
	if err != nil {
		return nil, err
	}
	diag5p.Name = "sel_5dp"
	lib.Add(diag5p)

	diag5m, err := diagonal(5, false)
	if err != nil {
		return nil, err
	}
	diag5m.Name = "sel_5dm"
	lib.Add(diag5m)

	return lib, nil
}

// diagonal builds a size x size SEL whose Hit cells run the
// anti-diagonal (plus, ascending from bottom-left to top-right) or the
// main diagonal (minus, descending from top-left to bottom-right),
// origin at the center.
func diagonal(size int, plus bool) (*Sel, error) {
	s, err := Empty(size, size, size/2, size/2)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		if plus {
			s.set(i, size-1-i, Hit)
		} else {
			s.set(i, i, Hit)
		}
	}
	return s, nil
}

// HitMiss returns the "hit-miss" library: isolated pixel, four edge
// detectors (N/S/E/W), one slanted-edge detector, and four corner
// detectors, for 10 total.
func HitMiss() (*Library, error) {
	lib := NewLibrary()

	isolated, err := FromStringOrigin("000\n010\n000", 1, 1)
	if err != nil {
		return nil, err
	}
	isolated.Name = "sel_isolated"
	lib.Add(isolated)

	edges := []struct {
		name    string
		pattern string
	}{
		{"sel_edge_n", "000\n111\n111"},
		{"sel_edge_s", "111\n111\n000"},
		{"sel_edge_e", "011\n011\n011"},
		{"sel_edge_w", "110\n110\n110"},
	}
	for _, e := range edges {
		s, err := FromStringOrigin(e.pattern, 1, 1)
		if err != nil {
			return nil, err
		}
		s.Name = e.name
		lib.Add(s)
	}

	slant, err := FromStringOrigin("001\n011\n111", 1, 1)
	if err != nil {
		return nil, err
	}
	slant.Name = "sel_edge_slant"
	lib.Add(slant)

	corners := []struct {
		name    string
		pattern string
	}{
		{"sel_corner_nw", "000\n011\n011"},
		{"sel_corner_ne", "000\n110\n110"},
		{"sel_corner_sw", "011\n011\n000"},
		{"sel_corner_se", "110\n110\n000"},
	}
	for _, c := range corners {
		s, err := FromStringOrigin(c.pattern, 1, 1)
		if err != nil {
			return nil, err
		}
		s.Name = c.name
		lib.Add(s)
	}

	return lib, nil
}

// DWALinear returns the "DWA linear" library: 62 horizontal and 62
// vertical line SELs for sizes 2..63, for 124 total — the full size
// range DWA's single-step horizontal/vertical pass supports directly.
func DWALinear() (*Library, error) {
	lib := NewLibrary()
	for n := 2; n <= 63; n++ {
		h, err := HLine(n)
		if err != nil {
			return nil, err
		}
		h.Name = fmt.Sprintf("sel_%d_h", n)
		lib.Add(h)
	}
	for n := 2; n <= 63; n++ {
		v, err := VLine(n)
		if err != nil {
			return nil, err
		}
		v.Name = fmt.Sprintf("sel_%d_v", n)
		lib.Add(v)
	}
	return lib, nil
}

// DWACombs returns the comb SELs needed to realize every composable
// brick size above 63 via §4.6's select_composable_sizes decomposition,
// up to maxSize.
func DWACombs(maxSize int) (*Library, error) {
	lib := NewLibrary()
	for n := 64; n <= maxSize; n++ {
		f1, f2 := SelectComposableSizes(n)
		hSolid, hComb, err := combFactors(f1, f2, true)
		if err != nil {
			return nil, err
		}
		hSolid.Name = fmt.Sprintf("sel_comb_%d_h_solid", n)
		hComb.Name = fmt.Sprintf("sel_comb_%d_h_comb", n)
		lib.Add(hSolid)
		lib.Add(hComb)

		vSolid, vComb, err := combFactors(f1, f2, false)
		if err != nil {
			return nil, err
		}
		vSolid.Name = fmt.Sprintf("sel_comb_%d_v_solid", n)
		vComb.Name = fmt.Sprintf("sel_comb_%d_v_comb", n)
		lib.Add(vSolid)
		lib.Add(vComb)
	}
	return lib, nil
}

// SelectComposableSizes returns the factor pair (f1, f2) with f1*f2 >= n
// minimizing f1+f2-1, used to decompose a brick of size n too large for
// a single DWA pass into a brick-then-comb composite.
func SelectComposableSizes(n int) (f1, f2 int) {
	bestSum := -1
	for a := 1; a*a <= n*2; a++ {
		b := (n + a - 1) / a
		if a*b < n {
			continue
		}
		sum := a + b - 1
		if bestSum == -1 || sum < bestSum {
			bestSum, f1, f2 = sum, a, b
		}
	}
	return f1, f2
}
