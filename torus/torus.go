// Package torus provides position arithmetic on a grid whose edges wrap.
// All values are pure; nothing here holds state.
package torus

import "fmt"

// Dimensions is the size of a grid in character cells
type Dimensions struct {
	Rows, Cols int
}

// Position is a row/col coordinate, always in [0, Rows) x [0, Cols)
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("r%d,c%d", p.Row, p.Col)
}

// Inc returns v+1 wrapped to [0, size)
func Inc(v, size int) int {
	if v < size-1 {
		return v + 1
	}
	return 0
}

// Dec returns v-1 wrapped to [0, size)
func Dec(v, size int) int {
	if v > 0 {
		return v - 1
	}
	return size - 1
}

// Wrap folds any integer into [0, size)
func Wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// Normalize wraps both coordinates into range
func (d Dimensions) Normalize(p Position) Position {
	return Position{Row: Wrap(p.Row, d.Rows), Col: Wrap(p.Col, d.Cols)}
}

// Up returns the position one row up
func (p Position) Up(d Dimensions) Position {
	return Position{Row: Dec(p.Row, d.Rows), Col: p.Col}
}

// Down returns the position one row down
func (p Position) Down(d Dimensions) Position {
	return Position{Row: Inc(p.Row, d.Rows), Col: p.Col}
}

// Left returns the position one column left
func (p Position) Left(d Dimensions) Position {
	return Position{Row: p.Row, Col: Dec(p.Col, d.Cols)}
}

// Right returns the position one column right
func (p Position) Right(d Dimensions) Position {
	return Position{Row: p.Row, Col: Inc(p.Col, d.Cols)}
}

// Advance moves one step along every bit set in dir.
// Cancelling pairs are applied as-is and so leave that axis unchanged.
func (p Position) Advance(dir Direction, d Dimensions) Position {
	if dir&Up != 0 {
		p = p.Up(d)
	}
	if dir&Down != 0 {
		p = p.Down(d)
	}
	if dir&Left != 0 {
		p = p.Left(d)
	}
	if dir&Right != 0 {
		p = p.Right(d)
	}
	return p
}

// Retreat undoes Advance
func (p Position) Retreat(dir Direction, d Dimensions) Position {
	return p.Advance(dir.Inverse(), d)
}

// Offset moves by a signed row/col delta with wrap
func (p Position) Offset(dRow, dCol int, d Dimensions) Position {
	return Position{Row: Wrap(p.Row+dRow, d.Rows), Col: Wrap(p.Col+dCol, d.Cols)}
}

// Quad returns the 2x2 footprint anchored at p (top-left first)
func (p Position) Quad(d Dimensions) [4]Position {
	row1 := Inc(p.Row, d.Rows)
	col1 := Inc(p.Col, d.Cols)
	return [4]Position{
		p,
		{Row: p.Row, Col: col1},
		{Row: row1, Col: p.Col},
		{Row: row1, Col: col1},
	}
}

// DistanceSquared is the squared distance between two points on the torus,
// taking the shorter of the direct and wrapped path on each axis
func DistanceSquared(a, b Position, d Dimensions) int {
	dx := axisDistance(a.Col, b.Col, d.Cols)
	dy := axisDistance(a.Row, b.Row, d.Rows)
	return dx*dx + dy*dy
}

func axisDistance(a, b, size int) int {
	delta := a - b
	if delta < 0 {
		delta = -delta
	}
	if wrapped := size - delta; wrapped < delta {
		return wrapped
	}
	return delta
}

// DirectionTo returns the cardinal step from p that most reduces the torus distance
// to target. Ties resolve Up, Down, Left, Right in that order.
func DirectionTo(p, target Position, d Dimensions) Direction {
	best := None
	bestDist := 0
	for _, dir := range Cardinals {
		dist := DistanceSquared(p.Advance(dir, d), target, d)
		if best == None || dist < bestDist {
			best, bestDist = dir, dist
		}
	}
	return best
}
