package entity

import (
	"time"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/torus"
)

// Factory is a stationary quad that emits rats when asked
type Factory struct {
	Base
}

func NewFactory(pos torus.Position, now time.Duration) *Factory {
	return &Factory{Base: Base{Pos: pos, State: Alive, NextUpdate: now}}
}

func (f *Factory) Kind() Kind    { return KindFactory }
func (f *Factory) Common() *Base { return &f.Base }
func (f *Factory) Explode()      { explode(&f.Base) }

func (f *Factory) Hit(pos torus.Position, dims torus.Dimensions) bool {
	return hitQuad(&f.Base, pos, dims)
}

func (f *Factory) Clone() Entity {
	c := *f
	return &c
}

func (f *Factory) Update(w *World, now time.Duration) Action {
	if !f.Due(now) {
		return Nothing()
	}

	next := *f
	switch f.State {
	case Alive:
		if w.SpawnRats {
			return Spawn(NewRat(f.Pos, w.Rand, now))
		}
		next.Cycle = (f.Cycle + 1) & 0x1
		next.NextUpdate = now + constants.FactoryUpdateInterval
	case Dead:
		return Delete()
	default:
		next.Base = f.explosionStep(constants.FactoryUpdateInterval, now)
	}
	return UpdateTo(&next)
}
