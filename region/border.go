package region

import (
	"fmt"

	"github.com/docraster/pixcore"
)

// Direction is one of the 8 chain-code directions, indexed clockwise
// from West per spec §4.9: W=0, NW=1, N=2, NE=3, E=4, SE=5, S=6, SW=7.
type Direction int

const (
	West Direction = iota
	NorthWest
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
)

// xPosTab and yPosTab are the parallel offset tables indexed by
// Direction, per spec §9's "small enum with 8 variants and a pair of
// parallel tables" guidance.
var xPosTab = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
var yPosTab = [8]int{0, -1, -1, -1, 0, 1, 1, 1}

// qPosTab gives, for a move made in direction d, the direction at which
// the next border-pixel search should begin — the standard Moore-
// neighbor "after-move" table (spec §9).
var qPosTab = [8]int{6, 6, 0, 0, 2, 2, 4, 4}

// dirTab is the reverse lookup DIRTAB[1+dy][1+dx] -> direction index,
// or -1 for the center (0,0).
var dirTab = [3][3]int{{1, 2, 3}, {0, -1, 4}, {7, 6, 5}}

func (d Direction) Offset() (dx, dy int) { return xPosTab[d], yPosTab[d] }

// DirectionFromOffset returns the Direction matching the unit offset
// (dx, dy), or false if the offset is not one of the 8 unit steps.
func DirectionFromOffset(dx, dy int) (Direction, bool) {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return 0, false
	}
	idx := dirTab[1+dy][1+dx]
	if idx < 0 {
		return 0, false
	}
	return Direction(idx), true
}

// Point is a pixel coordinate on a traced border.
type Point struct{ X, Y int }

func inBoundsAt(w, h, x, y int) bool { return x >= 0 && x < w && y >= 0 && y < h }

// findNextBorderPixel searches clockwise from qpos for the next
// foreground pixel 8-adjacent to (px, py), returning it and the qpos to
// resume from on the following step.
func findNextBorderPixel(r *pixcore.Raster, px, py, qpos int) (Point, int, bool) {
	w, h := r.Width(), r.Height()
	for i := 1; i < 8; i++ {
		pos := (qpos + i) % 8
		nx, ny := px+xPosTab[pos], py+yPosTab[pos]
		if !inBoundsAt(w, h, nx, ny) {
			continue
		}
		if r.GetPixelUnchecked(nx, ny) == 1 {
			return Point{nx, ny}, qPosTab[pos], true
		}
	}
	return Point{}, 0, false
}

// TraceOuterBorder traces the outer border of the component's mask
// (a 1-bpp raster as returned by Component.Mask): starting at the
// top-left foreground pixel with qpos=West, it follows the standard
// Moore-neighbor contour until the traversal revisits the (first,
// second) point pair. A single-pixel mask yields a one-point border.
func TraceOuterBorder(mask *pixcore.Raster) ([]Point, error) {
	if mask.Depth() != 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, mask.Depth())
	}
	w, h := mask.Width(), mask.Height()
	var first Point
	found := false
	for y := 0; y < h && !found; y++ {
		for x := 0; x < w; x++ {
			if mask.GetPixelUnchecked(x, y) == 1 {
				first = Point{x, y}
				found = true
				break
			}
		}
	}
	if !found {
		return nil, ErrEmptyComponent
	}

	points := []Point{first}
	qpos := 0
	second, newQpos, ok := findNextBorderPixel(mask, first.X, first.Y, qpos)
	if !ok {
		return points, nil
	}
	qpos = newQpos
	points = append(points, second)

	px, py := second.X, second.Y
	for {
		next, nq, ok := findNextBorderPixel(mask, px, py, qpos)
		if !ok {
			break
		}
		if px == first.X && py == first.Y && next.X == second.X && next.Y == second.Y {
			break
		}
		points = append(points, next)
		px, py = next.X, next.Y
		qpos = nq
	}
	// On closure the walk has just stepped back onto first; drop that
	// repeat so each border pixel of the loop appears once.
	if n := len(points); n > 2 && points[n-1] == first {
		points = points[:n-1]
	}
	return points, nil
}

// ToChainCode converts a closed border's point sequence into its chain
// code: one direction per consecutive pair, wrapping from the last
// point back to the first (the traversal that TraceOuterBorder detects
// as loop closure). A single-point border has no directions.
func ToChainCode(points []Point) []Direction {
	if len(points) < 2 {
		return nil
	}
	chain := make([]Direction, 0, len(points))
	for i := 0; i < len(points); i++ {
		p1 := points[i]
		p2 := points[(i+1)%len(points)]
		dir, ok := DirectionFromOffset(p2.X-p1.X, p2.Y-p1.Y)
		if !ok {
			continue
		}
		chain = append(chain, dir)
	}
	return chain
}

// FromChainCode reconstructs the point sequence from a starting point
// and a chain code, returning len(chain)+1 points (the last being the
// point the final move lands on — for a chain produced by ToChainCode
// on a closed border, that last point equals start again).
func FromChainCode(start Point, chain []Direction) []Point {
	points := make([]Point, 0, len(chain)+1)
	points = append(points, start)
	cur := start
	for _, d := range chain {
		dx, dy := d.Offset()
		cur = Point{cur.X + dx, cur.Y + dy}
		points = append(points, cur)
	}
	return points
}
