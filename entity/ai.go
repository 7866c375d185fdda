package entity

import (
	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/maze"
	"github.com/lixenwraith/rats/torus"
)

// ChaseDirection returns the cardinal direction toward the player when it is
// within detection range. With sight set, the straight corridor along that
// direction must reach the player's footprint without crossing a wall.
func ChaseDirection(m *maze.Maze, from torus.Position, player *Player, sight bool) (torus.Direction, bool) {
	if player.State != Alive {
		return torus.None, false
	}
	dims := m.Dimensions()
	if torus.DistanceSquared(from, player.Pos, dims) >= constants.DetectionRadiusSquared {
		return torus.None, false
	}
	dir := torus.DirectionTo(from, player.Pos, dims)
	if sight && !LineOfSight(m, from, dir, player) {
		return torus.None, false
	}
	return dir, true
}

// LineOfSight walks from along dir until it enters the player's footprint
// (true) or meets a wall (false). The walk is bounded by one lap of the torus.
func LineOfSight(m *maze.Maze, from torus.Position, dir torus.Direction, player *Player) bool {
	dims := m.Dimensions()
	limit := dims.Rows
	if dims.Cols > limit {
		limit = dims.Cols
	}

	pos := from
	for i := 0; i < limit; i++ {
		pos = pos.Advance(dir, dims)
		if hitQuad(&player.Base, pos, dims) {
			return true
		}
		if m.IsWallAt(pos) {
			return false
		}
	}
	return false
}

// wander runs the shared rat/brat step: chase if possible, otherwise keep
// walking until the countdown expires or a wall blocks, then re-roll
func wander(b Base, distance int, w *World, sight bool) (Base, int) {
	if dir, ok := ChaseDirection(w.Maze, b.Pos, &w.Player, sight); ok {
		b.Dir = dir
	}
	if distance <= 0 || !CanAdvance(w.Maze, b.Pos, b.Dir) {
		b.Dir = randomDirection(w.Rand)
		distance = randomDistance(w.Rand)
	} else {
		b.Pos = b.Pos.Advance(b.Dir, w.Dimensions())
		distance--
	}
	b.Cycle = (b.Cycle + 1) & 0x3
	return b, distance
}
