package entity

import (
	"time"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/torus"
)

// Player is the single controllable quad entity, always at index 0
type Player struct {
	Base
	StopDir torus.Direction // facing when idle
}

// NewPlayer returns an idle player facing down, eligible immediately
func NewPlayer(pos torus.Position, now time.Duration) *Player {
	return &Player{
		Base:    Base{Pos: pos, State: Alive, NextUpdate: now},
		StopDir: torus.Down,
	}
}

func (p *Player) Kind() Kind    { return KindPlayer }
func (p *Player) Common() *Base { return &p.Base }
func (p *Player) Explode()      { explode(&p.Base) }

func (p *Player) Hit(pos torus.Position, dims torus.Dimensions) bool {
	return hitQuad(&p.Base, pos, dims)
}

func (p *Player) Clone() Entity {
	c := *p
	return &c
}

// Facing returns the direction used for firing and the idle sprite
func (p *Player) Facing() torus.Direction {
	if d := p.Dir.Effective(); d != torus.None {
		return d
	}
	return p.StopDir
}

// Update moves the player along its requested direction, sliding along walls
// when the combined direction is blocked
func (p *Player) Update(w *World, now time.Duration) Action {
	if !p.Due(now) {
		return Nothing()
	}

	next := *p
	switch p.State {
	case Alive:
		dims := w.Dimensions()
		dir := p.Dir.Effective()
		if dir != torus.None {
			if CanAdvanceQuad(w.Maze, next.Pos, dir) {
				next.Pos = next.Pos.Advance(dir, dims)
			} else {
				for _, c := range dir.Components() {
					if CanAdvanceQuad(w.Maze, next.Pos, c) {
						next.Pos = next.Pos.Advance(c, dims)
					}
				}
			}
		}
		next.Cycle = (p.Cycle + 1) & 0x3
		next.NextUpdate = now + constants.PlayerUpdateInterval
	case Dead:
		next.State = Alive
		next.NextUpdate = now + 2*constants.PlayerUpdateInterval
	default:
		next.Base = p.explosionStep(constants.PlayerUpdateInterval, now)
	}
	return UpdateTo(&next)
}
