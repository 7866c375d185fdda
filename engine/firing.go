package engine

import (
	"time"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/core"
	"github.com/lixenwraith/rats/entity"
	"github.com/lixenwraith/rats/torus"
)

// fire shoots along the effective firing direction when the player is alive
// and the fire interval has elapsed. A target already at the muzzle explodes
// at once and no bullet is created.
func (s *Session) fire(now time.Duration) bool {
	dir := s.fireDir.Effective()
	if dir == torus.None {
		return false
	}
	p := s.player()
	if p.State != entity.Alive || now < s.nextFire {
		return false
	}

	dims := s.maze.Dimensions()
	pos, ok := entity.MuzzlePosition(p.Pos, dir, true, dims)
	if !ok || s.maze.IsWallAt(pos) {
		return false
	}
	s.nextFire = now + constants.FireInterval
	s.sound.Play(core.SoundGunshot)

	for _, e := range s.entities[1:] {
		if e.Hit(pos, dims) {
			s.kill(e, true)
			return true
		}
	}
	s.add(entity.NewBullet(pos, dir, now))
	return true
}
