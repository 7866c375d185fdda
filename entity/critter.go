package entity

import (
	"time"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/torus"
)

// Rat wanders the maze, chases the player on sight, and breeds brats
type Rat struct {
	Base
	Distance int // steps left before re-rolling direction
}

// NewRat returns a rat heading right with a fresh wander distance
func NewRat(pos torus.Position, r Rand, now time.Duration) *Rat {
	return &Rat{
		Base:     Base{Pos: pos, Dir: torus.Right, State: Alive, NextUpdate: now + constants.RatUpdateInterval},
		Distance: randomDistance(r),
	}
}

func (r *Rat) Kind() Kind    { return KindRat }
func (r *Rat) Common() *Base { return &r.Base }
func (r *Rat) Explode()      { explode(&r.Base) }

func (r *Rat) Hit(pos torus.Position, _ torus.Dimensions) bool {
	return hitSingle(&r.Base, pos)
}

func (r *Rat) Clone() Entity {
	c := *r
	return &c
}

func (r *Rat) Update(w *World, now time.Duration) Action {
	if !r.Due(now) {
		return Nothing()
	}

	next := *r
	switch r.State {
	case Alive:
		if w.Player.Hit(r.Pos, w.Dimensions()) {
			return Attack(w.RatDamage)
		}
		if w.SpawnBrats && w.Rand.Intn(2) == 0 {
			return Spawn(NewBrat(r.Pos, w.Rand, now))
		}
		next.Base, next.Distance = wander(r.Base, r.Distance, w, true)
		next.NextUpdate = now + constants.RatUpdateInterval
	case Dead:
		return Delete()
	default:
		next.Base = r.explosionStep(constants.RatUpdateInterval, now)
	}
	return UpdateTo(&next)
}

// Brat is a faster rat that chases without needing line of sight
type Brat struct {
	Base
	Distance int
}

// NewBrat returns a brat heading in a random direction
func NewBrat(pos torus.Position, r Rand, now time.Duration) *Brat {
	return &Brat{
		Base:     Base{Pos: pos, Dir: randomDirection(r), State: Alive, NextUpdate: now + constants.BratUpdateInterval},
		Distance: randomDistance(r),
	}
}

func (b *Brat) Kind() Kind    { return KindBrat }
func (b *Brat) Common() *Base { return &b.Base }
func (b *Brat) Explode()      { explode(&b.Base) }

func (b *Brat) Hit(pos torus.Position, _ torus.Dimensions) bool {
	return hitSingle(&b.Base, pos)
}

func (b *Brat) Clone() Entity {
	c := *b
	return &c
}

func (b *Brat) Update(w *World, now time.Duration) Action {
	if !b.Due(now) {
		return Nothing()
	}

	next := *b
	switch b.State {
	case Alive:
		if w.Player.Hit(b.Pos, w.Dimensions()) {
			return Attack(w.BratDamage)
		}
		next.Base, next.Distance = wander(b.Base, b.Distance, w, false)
		next.NextUpdate = now + constants.BratUpdateInterval
	case Dead:
		return Delete()
	default:
		next.Base = b.explosionStep(constants.BratUpdateInterval, now)
	}
	return UpdateTo(&next)
}
