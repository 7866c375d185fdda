package engine

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/entity"
	"github.com/lixenwraith/rats/torus"
)

// placeFactories drops up to the configured number of factories on random
// wall-free 2x2 blocks away from the player and from each other. Returns how
// many were placed; a shortfall is logged, not fatal.
func (s *Session) placeFactories(now time.Duration) int {
	want := s.cfg.Factories
	if want == 0 {
		return 0
	}

	dims := s.maze.Dimensions()
	start := s.player().Pos
	placed := make([]torus.Position, 0, want)

	for attempt := 0; attempt < constants.MaxPlacementAttempts && len(placed) < want; attempt++ {
		pos := torus.Position{Row: s.rng.Intn(dims.Rows), Col: s.rng.Intn(dims.Cols)}
		if s.maze.IsWallQuad(pos.Row, pos.Col) {
			continue
		}
		if torus.DistanceSquared(pos, start, dims) < constants.FactoryPlayerClearance {
			continue
		}
		if crowded(pos, placed, dims) {
			continue
		}
		placed = append(placed, pos)
		s.add(entity.NewFactory(pos, now))
	}

	if len(placed) < want {
		log.WithFields(log.Fields{
			"requested": want,
			"placed":    len(placed),
		}).Warn("could not place every factory")
	}
	return len(placed)
}

func crowded(pos torus.Position, others []torus.Position, dims torus.Dimensions) bool {
	for _, o := range others {
		if torus.DistanceSquared(pos, o, dims) < constants.FactorySpacing {
			return true
		}
	}
	return false
}
