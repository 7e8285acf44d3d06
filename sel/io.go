package sel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTo writes s in the "Sel Version 1" text format:
//
//	  Sel Version 1
//	  ------  <name>  ------
//	  sy = <height>, sx = <width>, cy = <origin_y>, cx = <origin_x>
//	    <row 0>
//	    <row 1>
//	    ...
//	<blank line>
func (s *Sel) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString("  Sel Version 1\n")
	fmt.Fprintf(&b, "  ------  %s  ------\n", s.Name)
	fmt.Fprintf(&b, "  sy = %d, sx = %d, cy = %d, cx = %d\n", s.Height, s.Width, s.Cy, s.Cx)
	for y := 0; y < s.Height; y++ {
		b.WriteString("    ")
		for x := 0; x < s.Width; x++ {
			b.WriteByte(elementDigit(s.at(x, y)))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func elementDigit(e Element) byte {
	switch e {
	case Hit:
		return '1'
	case Miss:
		return '2'
	default:
		return '0'
	}
}

func digitElement(c byte) (Element, error) {
	switch c {
	case '0':
		return DontCare, nil
	case '1':
		return Hit, nil
	case '2':
		return Miss, nil
	default:
		return DontCare, fmt.Errorf("%w: bad element digit %q", ErrIO, c)
	}
}

// ReadSel parses a single SEL in "Sel Version 1" text format from r.
func ReadSel(r io.Reader) (*Sel, error) {
	sc := bufio.NewScanner(r)
	return readSel(sc)
}

// readSel consumes exactly one SEL block from sc, which must be
// positioned before its "Sel Version 1" header line (blank lines before
// the header are skipped).
func readSel(sc *bufio.Scanner) (*Sel, error) {
	var header string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		header = line
		break
	}
	if header != "Sel Version 1" {
		return nil, fmt.Errorf("%w: missing 'Sel Version 1' header", ErrIO)
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: truncated after header", ErrIO)
	}
	nameLine := strings.TrimSpace(sc.Text())
	name := parseNameLine(nameLine)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: truncated before dims line", ErrIO)
	}
	h, w, cy, cx, err := parseDimsLine(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, err
	}

	s, err := newSel(w, h, cx, cy, DontCare, name)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: truncated at row %d", ErrIO, y)
		}
		row := strings.TrimSpace(sc.Text())
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrIO, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			e, err := digitElement(row[x])
			if err != nil {
				return nil, err
			}
			s.set(x, y, e)
		}
	}
	return s, nil
}

func parseNameLine(line string) string {
	line = strings.TrimPrefix(line, "------")
	line = strings.TrimSuffix(line, "------")
	return strings.TrimSpace(line)
}

func parseDimsLine(line string) (sy, sx, cy, cx int, err error) {
	fields := map[string]int{}
	for _, part := range strings.Split(line, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			return 0, 0, 0, 0, fmt.Errorf("%w: malformed dims field %q", ErrIO, part)
		}
		key := strings.TrimSpace(kv[0])
		val, perr := strconv.Atoi(strings.TrimSpace(kv[1]))
		if perr != nil {
			return 0, 0, 0, 0, fmt.Errorf("%w: bad integer in %q: %v", ErrIO, part, perr)
		}
		fields[key] = val
	}
	var ok bool
	if sy, ok = fields["sy"]; !ok {
		return 0, 0, 0, 0, fmt.Errorf("%w: missing sy", ErrIO)
	}
	if sx, ok = fields["sx"]; !ok {
		return 0, 0, 0, 0, fmt.Errorf("%w: missing sx", ErrIO)
	}
	if cy, ok = fields["cy"]; !ok {
		return 0, 0, 0, 0, fmt.Errorf("%w: missing cy", ErrIO)
	}
	if cx, ok = fields["cx"]; !ok {
		return 0, 0, 0, 0, fmt.Errorf("%w: missing cx", ErrIO)
	}
	return sy, sx, cy, cx, nil
}
