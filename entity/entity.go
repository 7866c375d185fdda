// Package entity defines the closed set of simulated kinds and their per-tick
// state machines. Update never mutates its receiver; it returns an Action
// describing what the engine should commit.
package entity

import (
	"fmt"
	"time"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/maze"
	"github.com/lixenwraith/rats/torus"
)

// Kind identifies an entity variant
type Kind uint8

const (
	KindPlayer Kind = iota
	KindRat
	KindBrat
	KindFactory
	KindBullet
	KindCount
)

var kindNames = [KindCount]string{"player", "rat", "brat", "factory", "bullet"}

func (k Kind) String() string {
	if k >= KindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// State is the explosion progression. Transitions only move forward,
// except a dead player which comes back Alive.
type State uint8

const (
	Alive State = iota
	Exploding1
	Exploding2
	Exploding3
	Dead
)

var stateNames = [...]string{"alive", "exploding1", "exploding2", "exploding3", "dead"}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", uint8(s))
	}
	return stateNames[s]
}

// Exploding reports whether s is one of the three explosion frames
func (s State) Exploding() bool {
	return s >= Exploding1 && s <= Exploding3
}

// next returns the following state; Dead is terminal here
func (s State) next() State {
	if s >= Dead {
		return Dead
	}
	return s + 1
}

// Base holds the fields every kind carries
type Base struct {
	Pos        torus.Position
	Dir        torus.Direction
	State      State
	Cycle      uint8         // animation phase
	NextUpdate time.Duration // since session start
}

// Due reports whether the entity is eligible for evaluation at now
func (b *Base) Due(now time.Duration) bool {
	return now >= b.NextUpdate
}

// explosionStep advances one explosion frame at twice the normal cadence
func (b Base) explosionStep(interval, now time.Duration) Base {
	b.State = b.State.next()
	b.NextUpdate = now + interval/2
	return b
}

// Entity is implemented by *Player, *Rat, *Brat, *Factory and *Bullet
type Entity interface {
	Kind() Kind
	Common() *Base

	// Hit reports whether pos falls on this entity's live footprint
	Hit(pos torus.Position, dims torus.Dimensions) bool

	// Explode starts the explosion sequence; no-op unless Alive
	Explode()

	// Update evaluates one scheduler pass
	Update(w *World, now time.Duration) Action

	// Clone returns an independent copy
	Clone() Entity
}

// Rand is the random source entities draw from
type Rand interface {
	Intn(n int) int
}

// World is the read-only context of one scheduler pass
type World struct {
	Maze   *maze.Maze
	Player Player
	Rand   Rand

	// SpawnRats asks alive factories to emit a rat instead of animating
	SpawnRats bool
	// SpawnBrats lets each alive rat breed with 50% chance instead of moving
	SpawnBrats bool

	RatDamage  int
	BratDamage int
}

// Dimensions is shorthand for the maze size
func (w *World) Dimensions() torus.Dimensions {
	return w.Maze.Dimensions()
}

// UpdateInterval returns the normal cadence of a kind
func UpdateInterval(k Kind) time.Duration {
	switch k {
	case KindPlayer:
		return constants.PlayerUpdateInterval
	case KindRat:
		return constants.RatUpdateInterval
	case KindBrat:
		return constants.BratUpdateInterval
	case KindFactory:
		return constants.FactoryUpdateInterval
	case KindBullet:
		return constants.BulletUpdateInterval
	default:
		panic(fmt.Sprintf("entity: no interval for %s", k))
	}
}

// ScoreValue is the points awarded for destroying a kind with a bullet
func ScoreValue(k Kind) int {
	switch k {
	case KindRat:
		return constants.RatScore
	case KindBrat:
		return constants.BratScore
	case KindFactory:
		return constants.FactoryScore
	default:
		return 0
	}
}

// IsQuad reports whether a kind occupies a 2x2 footprint
func IsQuad(k Kind) bool {
	return k == KindPlayer || k == KindFactory
}

// Hazard reports whether a kind is cleared by the collateral blast
func Hazard(k Kind) bool {
	return k == KindRat || k == KindBrat || k == KindBullet
}

// hitSingle and hitQuad implement the two footprint shapes

func hitSingle(b *Base, pos torus.Position) bool {
	return b.State == Alive && b.Pos == pos
}

func hitQuad(b *Base, pos torus.Position, dims torus.Dimensions) bool {
	if b.State != Alive {
		return false
	}
	for _, p := range b.Pos.Quad(dims) {
		if p == pos {
			return true
		}
	}
	return false
}

func explode(b *Base) {
	if b.State == Alive {
		b.State = Exploding1
	}
}

func randomDirection(r Rand) torus.Direction {
	return torus.Cardinals[r.Intn(len(torus.Cardinals))]
}

func randomDistance(r Rand) int {
	return constants.WanderMin + r.Intn(constants.WanderMax-constants.WanderMin+1)
}
