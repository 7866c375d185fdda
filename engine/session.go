package engine

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/core"
	"github.com/lixenwraith/rats/entity"
	"github.com/lixenwraith/rats/maze"
	"github.com/lixenwraith/rats/status"
	"github.com/lixenwraith/rats/torus"
)

// Session owns the maze, the entity list and every running counter.
// It is driven from a single goroutine: intents between frames, then Frame.
type Session struct {
	cfg      Config
	clock    *Clock
	provider TimeProvider
	rng      entity.Rand
	sound    core.SoundPlayer
	registry *status.Registry

	fixedMaze *maze.Maze
	start     torus.Position

	maze     *maze.Maze
	entities []entity.Entity // index 0 is always the player
	phase    Phase
	now      time.Duration
	frame    int64

	fireDir  torus.Direction
	nextFire time.Duration

	score  int
	health int
	lives  int
	live   [entity.KindCount]int
	dead   [entity.KindCount]int

	newRats       int
	newBrats      int
	nextRatSpawn  time.Duration
	nextBratSpawn time.Duration

	superBoom   int
	diagnostics bool

	pendingPause   bool
	pendingQuit    bool
	pendingRestart bool

	metrics sessionMetrics
}

// Option customizes a Session at construction
type Option func(*Session)

// WithRand replaces the seeded random source used for generation, placement and AI
func WithRand(r entity.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSound routes sound hooks to p instead of discarding them
func WithSound(p core.SoundPlayer) Option {
	return func(s *Session) { s.sound = p }
}

// WithMaze uses a fixed layout for the session and every restart
func WithMaze(m *maze.Maze) Option {
	return func(s *Session) { s.fixedMaze = m }
}

// WithPlayerStart overrides the player's spawn position
func WithPlayerStart(pos torus.Position) Option {
	return func(s *Session) { s.start = pos }
}

// WithTimeProvider drives the session clock from p
func WithTimeProvider(p TimeProvider) Option {
	return func(s *Session) { s.provider = p }
}

// WithRegistry publishes diagnostics into r
func WithRegistry(r *status.Registry) Option {
	return func(s *Session) { s.registry = r }
}

// NewSession validates cfg, builds the maze, places the player and factories,
// and returns a running session
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid session config")
	}

	s := &Session{
		cfg:      cfg,
		sound:    core.NopSound{},
		registry: status.NewRegistry(),
		start:    torus.Position{Row: maze.CellRows / 2, Col: maze.CellCols / 2},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	if s.sound == nil {
		s.sound = core.NopSound{}
	}
	s.clock = NewClock(s.provider)
	s.bindMetrics()
	s.reset()
	return s, nil
}

// reset rebuilds the whole session state; the clock restarts at zero
func (s *Session) reset() {
	s.clock.Reset()
	s.now = 0
	s.frame = 0

	if s.fixedMaze != nil {
		s.maze = s.fixedMaze
	} else {
		s.maze = maze.Generate(maze.Config{
			Rows:    s.cfg.Rows,
			Cols:    s.cfg.Cols,
			Density: s.cfg.Density,
			Rand:    s.rng,
		})
	}
	start := s.maze.Dimensions().Normalize(s.start)

	s.entities = []entity.Entity{entity.NewPlayer(start, 0)}
	s.phase = PhaseRunning
	s.fireDir = torus.None
	s.nextFire = 0
	s.score = 0
	s.health = constants.MaxHealth
	s.lives = constants.InitialLives
	s.live = [entity.KindCount]int{}
	s.dead = [entity.KindCount]int{}
	s.newRats, s.newBrats = 0, 0
	s.nextRatSpawn = 0
	s.nextBratSpawn = constants.BratSpawnInterval
	s.superBoom = 0
	s.pendingPause, s.pendingQuit, s.pendingRestart = false, false, false

	placed := s.placeFactories(0)
	log.WithFields(log.Fields{
		"rows":      s.maze.Rows(),
		"cols":      s.maze.Cols(),
		"density":   s.cfg.Density,
		"factories": placed,
	}).Info("session started")
}

// Frame advances one rendered frame at the current clock time
func (s *Session) Frame() {
	s.Step(s.clock.Elapsed())
}

// Step runs one frame at an explicit session time: lifecycle intents, then,
// when running, fire, schedule, apply, hit test, collateral blast, spawn
// timers and the end-of-game check
func (s *Session) Step(now time.Duration) {
	s.frame++
	if s.superBoom > 0 {
		s.superBoom--
	}
	if restarted := s.handleLifecycle(); restarted {
		s.publish()
		return
	}

	if s.phase == PhaseRunning {
		s.now = now
		s.fire(now)
		actions := s.schedule(now)
		s.apply(actions, now)
		s.hitTest()
		s.collateral()
		s.spawnTimers(now)
		s.checkFinished()
	}
	s.publish()
}

// handleLifecycle applies pause/quit/restart intents sampled since the last
// frame. Reports whether the session was rebuilt.
func (s *Session) handleLifecycle() bool {
	quit, pause, restart := s.pendingQuit, s.pendingPause, s.pendingRestart
	s.pendingQuit, s.pendingPause, s.pendingRestart = false, false, false

	if quit {
		s.transitionPhase(PhaseQuit)
		return false
	}
	if pause {
		switch s.phase {
		case PhaseRunning:
			if s.transitionPhase(PhasePaused) {
				s.clock.Pause()
			}
		case PhasePaused:
			if s.transitionPhase(PhaseRunning) {
				s.clock.Resume()
			}
		}
	}
	if restart && s.transitionPhase(PhaseRestart) {
		s.reset()
		log.Info("session restarted")
		return true
	}
	return false
}

// ===== INTENTS =====

// StartMoving adds dir to the player's requested movement and updates the idle facing
func (s *Session) StartMoving(dir torus.Direction) {
	p := s.player()
	p.Dir |= dir
	p.StopDir = torus.StopDirection(p.Dir.Effective())
}

// StopMoving clears dir from the player's requested movement
func (s *Session) StopMoving(dir torus.Direction) {
	s.player().Dir &^= dir
}

// StartFiring adds dir to the firing mask; the next frame fires if the interval allows
func (s *Session) StartFiring(dir torus.Direction) {
	s.fireDir |= dir
}

func (s *Session) StopFiring(dir torus.Direction) {
	s.fireDir &^= dir
}

// Pause toggles between running and paused at the next frame
func (s *Session) Pause() { s.pendingPause = true }

// Quit ends the session at the next frame
func (s *Session) Quit() { s.pendingQuit = true }

// Restart starts a fresh session at the next frame; honored only once finished
func (s *Session) Restart() { s.pendingRestart = true }

// ToggleDiagnostics flips the diagnostics overlay flag
func (s *Session) ToggleDiagnostics() { s.diagnostics = !s.diagnostics }

// ===== QUERIES =====

func (s *Session) Phase() Phase { return s.phase }

// Done reports whether the session has quit
func (s *Session) Done() bool { return s.phase == PhaseQuit }

func (s *Session) Config() Config { return s.cfg }

func (s *Session) Maze() *maze.Maze { return s.maze }

func (s *Session) Score() int { return s.score }

func (s *Session) Health() int { return s.health }

func (s *Session) Lives() int { return s.lives }

// Live returns how many entities of kind k are currently alive
func (s *Session) Live(k entity.Kind) int { return s.live[k] }

// Dead returns how many entities of kind k have been destroyed
func (s *Session) Dead(k entity.Kind) int { return s.dead[k] }

// SuperBoom returns the remaining frames of the screen-wide flash
func (s *Session) SuperBoom() int { return s.superBoom }

func (s *Session) Diagnostics() bool { return s.diagnostics }

func (s *Session) Elapsed() time.Duration { return s.now }

// EntityCount includes the player
func (s *Session) EntityCount() int { return len(s.entities) }

// Entity returns the entity at index i; index 0 is the player
func (s *Session) Entity(i int) entity.Entity { return s.entities[i] }

// Player returns a copy of the player entity
func (s *Session) Player() entity.Player { return *s.player() }

// Registry exposes the diagnostics metrics
func (s *Session) Registry() *status.Registry { return s.registry }

// player returns the entity at index 0, which must be the player
func (s *Session) player() *entity.Player {
	if len(s.entities) == 0 {
		panic("engine: entity list is empty, player missing")
	}
	p, ok := s.entities[0].(*entity.Player)
	if !ok {
		panic(fmt.Sprintf("engine: entity 0 is a %s, not the player", s.entities[0].Kind()))
	}
	return p
}

// ===== DIAGNOSTICS =====

var liveMetricNames = [entity.KindCount]string{
	entity.KindRat:     "rats",
	entity.KindBrat:    "brats",
	entity.KindFactory: "factories",
	entity.KindBullet:  "bullets",
}

type sessionMetrics struct {
	phase    *status.AtomicString
	maze     *status.AtomicString
	position *status.AtomicString
	score    *atomic.Int64
	lives    *atomic.Int64
	health   *atomic.Int64
	entities *atomic.Int64
	live     [entity.KindCount]*atomic.Int64
	frame    *atomic.Int64
}

func (s *Session) bindMetrics() {
	r := s.registry
	s.metrics.phase = r.Strings.Get("phase")
	s.metrics.maze = r.Strings.Get("maze")
	s.metrics.position = r.Strings.Get("player")
	s.metrics.score = r.Ints.Get("score")
	s.metrics.lives = r.Ints.Get("lives")
	s.metrics.health = r.Ints.Get("health")
	s.metrics.entities = r.Ints.Get("entities")
	for k := entity.KindRat; k < entity.KindCount; k++ {
		s.metrics.live[k] = r.Ints.Get(liveMetricNames[k])
	}
	s.metrics.frame = r.Ints.Get("frame")
}

// publish copies counters into the registry once per frame
func (s *Session) publish() {
	m := &s.metrics
	m.phase.Store(s.phase.String())
	m.maze.Store(fmt.Sprintf("%dx%d", s.maze.Rows(), s.maze.Cols()))
	m.position.Store(s.player().Pos.String())
	m.score.Store(int64(s.score))
	m.lives.Store(int64(s.lives))
	m.health.Store(int64(s.health))
	m.entities.Store(int64(len(s.entities)))
	for k := entity.KindRat; k < entity.KindCount; k++ {
		m.live[k].Store(int64(s.live[k]))
	}
	m.frame.Store(s.frame)
}
