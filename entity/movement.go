package entity

import (
	"github.com/lixenwraith/rats/maze"
	"github.com/lixenwraith/rats/torus"
)

// CanAdvance reports whether a 1-cell entity at pos may step along dir
func CanAdvance(m *maze.Maze, pos torus.Position, dir torus.Direction) bool {
	return !m.IsWallAt(pos.Advance(dir, m.Dimensions()))
}

// CanAdvanceQuad reports whether a 2x2 entity anchored at pos may step along dir.
// Only the cells on the leading edge of each component are sampled.
func CanAdvanceQuad(m *maze.Maze, pos torus.Position, dir torus.Direction) bool {
	dims := m.Dimensions()
	next := pos.Advance(dir, dims)
	row0, col0 := next.Row, next.Col
	row1, col1 := torus.Inc(row0, dims.Rows), torus.Inc(col0, dims.Cols)

	if dir&torus.Up != 0 && (m.IsWall(row0, col0) || m.IsWall(row0, col1)) {
		return false
	}
	if dir&torus.Down != 0 && (m.IsWall(row1, col0) || m.IsWall(row1, col1)) {
		return false
	}
	if dir&torus.Left != 0 && (m.IsWall(row0, col0) || m.IsWall(row1, col0)) {
		return false
	}
	if dir&torus.Right != 0 && (m.IsWall(row0, col1) || m.IsWall(row1, col1)) {
		return false
	}
	return true
}

// MuzzlePosition returns where a shot along dir first appears relative to a firer
// at pos. Quad firers shoot from just outside their 2x2 block.
func MuzzlePosition(pos torus.Position, dir torus.Direction, quad bool, dims torus.Dimensions) (torus.Position, bool) {
	if !quad {
		if dir == torus.None {
			return pos, false
		}
		return pos.Advance(dir, dims), true
	}

	var dRow, dCol int
	switch dir {
	case torus.Up:
		dRow, dCol = -1, 1
	case torus.Down:
		dRow, dCol = 2, 0
	case torus.Left:
		dRow, dCol = 0, -1
	case torus.Right:
		dRow, dCol = 0, 2
	case torus.UpLeft:
		dRow, dCol = -1, -1
	case torus.UpRight:
		dRow, dCol = -1, 2
	case torus.DownLeft:
		dRow, dCol = 1, -1
	case torus.DownRight:
		dRow, dCol = 1, 2
	default:
		return pos, false
	}
	return pos.Offset(dRow, dCol, dims), true
}
