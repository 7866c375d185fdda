package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/maze"
	"github.com/lixenwraith/rats/torus"
)

type scriptedRand struct {
	values []int
	pos    int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func openMaze(rows, cols int) *maze.Maze {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(" ", cols)
	}
	return maze.Parse(lines)
}

// world returns a pass context with the player parked far from the origin
func world(m *maze.Maze, rng Rand) *World {
	p := NewPlayer(torus.Position{Row: m.Rows() / 2, Col: m.Cols() / 2}, 0)
	return &World{Maze: m, Player: *p, Rand: rng, RatDamage: 7, BratDamage: 3}
}

// drive applies Update decisions at each entity's due time until it asks for deletion
func drive(t *testing.T, e Entity, w *World, maxSteps int) (states []State, deleted bool) {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		now := e.Common().NextUpdate
		act := e.Update(w, now)
		switch act.Type {
		case ActionDelete:
			return states, true
		case ActionUpdate:
			e = act.Entity
			states = append(states, e.Common().State)
		default:
			t.Fatalf("unexpected action %s", act.Type)
		}
	}
	return states, false
}

func TestExplosionProgression(t *testing.T) {
	m := openMaze(20, 40)
	w := world(m, &scriptedRand{values: []int{1}})
	pos := torus.Position{Row: 1, Col: 1}

	entities := []Entity{
		NewRat(pos, w.Rand, 0),
		NewBrat(pos, w.Rand, 0),
		NewFactory(pos, 0),
		NewBullet(pos, torus.Right, 0),
	}
	for _, e := range entities {
		e.Explode()
		require.Equal(t, Exploding1, e.Common().State, e.Kind().String())

		states, deleted := drive(t, e, w, 10)
		assert.Equal(t, []State{Exploding2, Exploding3, Dead}, states, e.Kind().String())
		assert.True(t, deleted, e.Kind().String())
	}
}

func TestExplosionStepUsesHalfInterval(t *testing.T) {
	w := world(openMaze(20, 40), &scriptedRand{values: []int{0}})
	r := NewRat(torus.Position{}, w.Rand, 0)
	r.Explode()

	now := 500 * time.Millisecond
	r.NextUpdate = now
	act := r.Update(w, now)
	require.Equal(t, ActionUpdate, act.Type)
	assert.Equal(t, now+constants.RatUpdateInterval/2, act.Entity.Common().NextUpdate)
	assert.Equal(t, Exploding1, r.State, "receiver is not mutated")
}

func TestExplodeOnlyFromAlive(t *testing.T) {
	b := NewBullet(torus.Position{}, torus.Up, 0)
	b.State = Exploding3
	b.Explode()
	assert.Equal(t, Exploding3, b.State)
}

func TestPlayerRespawn(t *testing.T) {
	w := world(openMaze(20, 40), &scriptedRand{values: []int{0}})
	p := NewPlayer(torus.Position{Row: 3, Col: 5}, 0)
	p.Explode()

	states, deleted := drive(t, p, w, 4)
	assert.False(t, deleted)
	assert.Equal(t, []State{Exploding2, Exploding3, Dead, Alive}, states)

	p.State = Dead
	now := time.Second
	p.NextUpdate = now
	act := p.Update(w, now)
	require.Equal(t, ActionUpdate, act.Type)
	assert.Equal(t, Alive, act.Entity.Common().State)
	assert.Equal(t, now+2*constants.PlayerUpdateInterval, act.Entity.Common().NextUpdate)
}

func TestUpdateNotDue(t *testing.T) {
	w := world(openMaze(20, 40), &scriptedRand{values: []int{0}})
	r := NewRat(torus.Position{}, w.Rand, 0)
	assert.Equal(t, ActionNothing, r.Update(w, r.NextUpdate-time.Millisecond).Type)
	assert.NotEqual(t, ActionNothing, r.Update(w, r.NextUpdate).Type)
}

func TestHitFootprints(t *testing.T) {
	dims := torus.Dimensions{Rows: 10, Cols: 10}
	p := NewPlayer(torus.Position{Row: 9, Col: 9}, 0)
	assert.True(t, p.Hit(torus.Position{Row: 0, Col: 0}, dims), "quad wraps")
	assert.True(t, p.Hit(torus.Position{Row: 9, Col: 0}, dims))
	assert.False(t, p.Hit(torus.Position{Row: 1, Col: 1}, dims))

	r := NewRat(torus.Position{Row: 2, Col: 2}, &scriptedRand{values: []int{0}}, 0)
	assert.True(t, r.Hit(torus.Position{Row: 2, Col: 2}, dims))
	assert.False(t, r.Hit(torus.Position{Row: 2, Col: 3}, dims))

	r.Explode()
	assert.False(t, r.Hit(torus.Position{Row: 2, Col: 2}, dims), "exploding entities have no footprint")
}

func TestPlayerMovesAndSlides(t *testing.T) {
	m := maze.Parse([]string{
		"          ",
		"##########",
		"          ",
		"          ",
		"          ",
		"          ",
	})
	w := world(m, &scriptedRand{values: []int{0}})
	p := NewPlayer(torus.Position{Row: 2, Col: 2}, 0)

	p.Dir = torus.UpRight
	act := p.Update(w, 0)
	require.Equal(t, ActionUpdate, act.Type)
	assert.Equal(t, torus.Position{Row: 2, Col: 3}, act.Entity.Common().Pos, "blocked up, slides right")

	p.Dir = torus.Down
	act = p.Update(w, 0)
	assert.Equal(t, torus.Position{Row: 3, Col: 2}, act.Entity.Common().Pos)

	p.Dir = torus.Left | torus.Right
	act = p.Update(w, 0)
	assert.Equal(t, p.Pos, act.Entity.Common().Pos, "cancelling pair stays put")
	assert.Equal(t, uint8(1), act.Entity.Common().Cycle)
}

func TestCanAdvanceQuadLeadingEdge(t *testing.T) {
	m := maze.Parse([]string{
		"      ",
		"    # ",
		"      ",
		"      ",
	})
	pos := torus.Position{Row: 1, Col: 2}
	assert.False(t, CanAdvanceQuad(m, pos, torus.Right), "column 4 row 1 blocks")
	assert.True(t, CanAdvanceQuad(m, pos, torus.Down))
	assert.True(t, CanAdvanceQuad(m, pos, torus.Left))

	assert.True(t, CanAdvanceQuad(m, torus.Position{Row: 2, Col: 3}, torus.Down))
	assert.False(t, CanAdvanceQuad(m, torus.Position{Row: 2, Col: 3}, torus.Up))
	assert.True(t, CanAdvance(m, torus.Position{Row: 1, Col: 3}, torus.Up))
	assert.False(t, CanAdvance(m, torus.Position{Row: 1, Col: 3}, torus.Right))
}

func TestMuzzlePosition(t *testing.T) {
	dims := torus.Dimensions{Rows: 20, Cols: 20}
	pos := torus.Position{Row: 5, Col: 5}
	tests := []struct {
		dir  torus.Direction
		want torus.Position
	}{
		{torus.Up, torus.Position{Row: 4, Col: 6}},
		{torus.Down, torus.Position{Row: 7, Col: 5}},
		{torus.Left, torus.Position{Row: 5, Col: 4}},
		{torus.Right, torus.Position{Row: 5, Col: 7}},
		{torus.UpLeft, torus.Position{Row: 4, Col: 4}},
		{torus.UpRight, torus.Position{Row: 4, Col: 7}},
		{torus.DownLeft, torus.Position{Row: 6, Col: 4}},
		{torus.DownRight, torus.Position{Row: 6, Col: 7}},
	}
	for _, tc := range tests {
		got, ok := MuzzlePosition(pos, tc.dir, true, dims)
		assert.True(t, ok, tc.dir.String())
		assert.Equal(t, tc.want, got, tc.dir.String())
	}

	got, ok := MuzzlePosition(torus.Position{}, torus.UpLeft, false, dims)
	assert.True(t, ok)
	assert.Equal(t, torus.Position{Row: 19, Col: 19}, got)

	_, ok = MuzzlePosition(pos, torus.None, true, dims)
	assert.False(t, ok)
}

func TestRatAttacksInsideFootprint(t *testing.T) {
	w := world(openMaze(20, 40), &scriptedRand{values: []int{0}})
	pos := w.Player.Pos.Offset(1, 1, w.Dimensions())

	act := NewRat(pos, w.Rand, 0).Update(w, time.Second)
	assert.Equal(t, ActionAttack, act.Type)
	assert.Equal(t, 7, act.Damage)

	act = NewBrat(pos, w.Rand, 0).Update(w, time.Second)
	assert.Equal(t, ActionAttack, act.Type)
	assert.Equal(t, 3, act.Damage)
}

func TestRatBreeds(t *testing.T) {
	w := world(openMaze(20, 40), &scriptedRand{values: []int{0}})
	w.SpawnBrats = true
	r := NewRat(torus.Position{Row: 1, Col: 1}, w.Rand, 0)

	act := r.Update(w, time.Second)
	require.Equal(t, ActionNew, act.Type)
	assert.Equal(t, KindBrat, act.Entity.Kind())
	assert.Equal(t, r.Pos, act.Entity.Common().Pos)

	w.Rand = &scriptedRand{values: []int{1}}
	act = r.Update(w, time.Second)
	assert.Equal(t, ActionUpdate, act.Type, "odd draw moves instead")
}

func TestRatWandersAndRerolls(t *testing.T) {
	m := maze.Parse([]string{
		"     ",
		"  #  ",
		"     ",
	})
	w := &World{Maze: m, Player: Player{Base: Base{State: Dead}}, Rand: &scriptedRand{values: []int{1, 3}}}
	r := &Rat{Base: Base{Pos: torus.Position{Row: 1, Col: 0}, Dir: torus.Right, State: Alive}, Distance: 2}

	act := r.Update(w, 0)
	next := act.Entity.(*Rat)
	assert.Equal(t, torus.Position{Row: 1, Col: 1}, next.Pos)
	assert.Equal(t, 1, next.Distance)

	act = next.Update(w, next.NextUpdate)
	blocked := act.Entity.(*Rat)
	assert.Equal(t, next.Pos, blocked.Pos, "wall ahead, no move")
	assert.Equal(t, torus.Down, blocked.Dir)
	assert.Equal(t, constants.WanderMin+3, blocked.Distance)
}

func TestChaseRequiresSightForRats(t *testing.T) {
	lines := make([]string, 16)
	for i := range lines {
		lines[i] = strings.Repeat(" ", 12)
	}
	lines[4] = "     #      "
	m := maze.Parse(lines)
	player := NewPlayer(torus.Position{Row: 1, Col: 5}, 0)

	dir, ok := ChaseDirection(m, torus.Position{Row: 6, Col: 5}, player, false)
	assert.True(t, ok)
	assert.Equal(t, torus.Up, dir)

	_, ok = ChaseDirection(m, torus.Position{Row: 6, Col: 5}, player, true)
	assert.False(t, ok, "wall between")

	dir, ok = ChaseDirection(m, torus.Position{Row: 6, Col: 6}, player, true)
	assert.True(t, ok)
	assert.Equal(t, torus.Up, dir)

	player.Explode()
	_, ok = ChaseDirection(m, torus.Position{Row: 6, Col: 6}, player, false)
	assert.False(t, ok, "dying player is not chased")
}

func TestChaseOutOfRange(t *testing.T) {
	m := openMaze(60, 60)
	player := NewPlayer(torus.Position{Row: 0, Col: 0}, 0)
	_, ok := ChaseDirection(m, torus.Position{Row: 30, Col: 30}, player, false)
	assert.False(t, ok)

	dir, ok := ChaseDirection(m, torus.Position{Row: 0, Col: 57}, player, false)
	assert.True(t, ok)
	assert.Equal(t, torus.Right, dir, "shortest path wraps")
}

func TestFactorySpawnsOrAnimates(t *testing.T) {
	w := world(openMaze(20, 40), &scriptedRand{values: []int{4}})
	f := NewFactory(torus.Position{Row: 2, Col: 2}, 0)

	act := f.Update(w, 0)
	require.Equal(t, ActionUpdate, act.Type)
	assert.Equal(t, uint8(1), act.Entity.Common().Cycle)
	assert.Equal(t, constants.FactoryUpdateInterval, act.Entity.Common().NextUpdate)

	w.SpawnRats = true
	act = f.Update(w, 0)
	require.Equal(t, ActionNew, act.Type)
	rat := act.Entity.(*Rat)
	assert.Equal(t, f.Pos, rat.Pos)
	assert.Equal(t, torus.Right, rat.Dir)
	assert.Equal(t, constants.WanderMin+4, rat.Distance)
}

func TestBulletTravel(t *testing.T) {
	m := maze.Parse([]string{"   #"})
	w := world(m, &scriptedRand{values: []int{0}})
	b := NewBullet(torus.Position{Row: 0, Col: 0}, torus.Right, 0)
	assert.True(t, b.Harmless())

	act := b.Update(w, b.NextUpdate)
	require.Equal(t, ActionUpdate, act.Type)
	moved := act.Entity.(*Bullet)
	assert.Equal(t, torus.Position{Row: 0, Col: 1}, moved.Pos)
	assert.Equal(t, 1, moved.Lifetime)

	moved.Pos.Col = 2
	assert.Equal(t, ActionDelete, moved.Update(w, moved.NextUpdate).Type, "wall ahead")

	moved.Lifetime = constants.BulletHarmlessTicks
	assert.False(t, moved.Harmless())
}

func TestIntervalsAndScores(t *testing.T) {
	assert.Equal(t, 50*time.Millisecond, UpdateInterval(KindPlayer))
	assert.Equal(t, 10*time.Millisecond, UpdateInterval(KindBullet))
	assert.Panics(t, func() { UpdateInterval(KindCount) })

	assert.Equal(t, 50, ScoreValue(KindRat))
	assert.Equal(t, 25, ScoreValue(KindBrat))
	assert.Equal(t, 250, ScoreValue(KindFactory))
	assert.Zero(t, ScoreValue(KindPlayer))
	assert.Zero(t, ScoreValue(KindBullet))
}

func TestCloneIsIndependent(t *testing.T) {
	r := NewRat(torus.Position{}, &scriptedRand{values: []int{0}}, 0)
	c := r.Clone()
	c.Common().Pos.Row = 9
	assert.Equal(t, 0, r.Pos.Row)
}
