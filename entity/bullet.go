package entity

import (
	"time"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/torus"
)

// Bullet travels one cell per tick along a fixed direction until it meets a wall
type Bullet struct {
	Base
	Lifetime int // ticks since fired
}

func NewBullet(pos torus.Position, dir torus.Direction, now time.Duration) *Bullet {
	return &Bullet{Base: Base{Pos: pos, Dir: dir, State: Alive, NextUpdate: now + constants.BulletUpdateInterval}}
}

func (b *Bullet) Kind() Kind    { return KindBullet }
func (b *Bullet) Common() *Base { return &b.Base }
func (b *Bullet) Explode()      { explode(&b.Base) }

func (b *Bullet) Hit(pos torus.Position, _ torus.Dimensions) bool {
	return hitSingle(&b.Base, pos)
}

func (b *Bullet) Clone() Entity {
	c := *b
	return &c
}

// Harmless reports whether the bullet is still inside its grace window
// and cannot hit the player that fired it
func (b *Bullet) Harmless() bool {
	return b.Lifetime < constants.BulletHarmlessTicks
}

func (b *Bullet) Update(w *World, now time.Duration) Action {
	if !b.Due(now) {
		return Nothing()
	}

	next := *b
	switch b.State {
	case Alive:
		dest := b.Pos.Advance(b.Dir, w.Dimensions())
		if w.Maze.IsWallAt(dest) {
			return Delete()
		}
		next.Pos = dest
		next.Lifetime++
		next.NextUpdate = now + constants.BulletUpdateInterval
	case Dead:
		return Delete()
	default:
		next.Base = b.explosionStep(constants.BulletUpdateInterval, now)
	}
	return UpdateTo(&next)
}
