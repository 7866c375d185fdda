package engine

import (
	"time"

	"github.com/lixenwraith/rats/entity"
	"github.com/lixenwraith/rats/maze"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	Phase    Phase
	Maze     *maze.Maze // shared, never mutated
	Player   entity.Player
	Entities []entity.Entity // independent copies, player first

	Score  int
	Health int
	Lives  int
	Live   [entity.KindCount]int
	Dead   [entity.KindCount]int

	SuperBoom   int
	Diagnostics bool
	Frame       int64
	Elapsed     time.Duration
}

// Snapshot copies the current state
func (s *Session) Snapshot() Snapshot {
	ents := make([]entity.Entity, len(s.entities))
	for i, e := range s.entities {
		ents[i] = e.Clone()
	}
	return Snapshot{
		Phase:       s.phase,
		Maze:        s.maze,
		Player:      *s.player(),
		Entities:    ents,
		Score:       s.score,
		Health:      s.health,
		Lives:       s.lives,
		Live:        s.live,
		Dead:        s.dead,
		SuperBoom:   s.superBoom,
		Diagnostics: s.diagnostics,
		Frame:       s.frame,
		Elapsed:     s.now,
	}
}
