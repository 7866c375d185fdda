package engine

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/core"
	"github.com/lixenwraith/rats/entity"
	"github.com/lixenwraith/rats/torus"
)

// schedule evaluates every entity against the same now and player snapshot
func (s *Session) schedule(now time.Duration) []entity.Action {
	w := &entity.World{
		Maze:       s.maze,
		Player:     *s.player(),
		Rand:       s.rng,
		SpawnRats:  s.newRats > 0,
		SpawnBrats: s.newBrats > 0,
		RatDamage:  s.cfg.RatDamage,
		BratDamage: s.cfg.BratDamage,
	}

	actions := make([]entity.Action, len(s.entities))
	for i, e := range s.entities {
		actions[i] = e.Update(w, now)
	}
	return actions
}

// apply commits scheduler decisions: replacements and damage in index order,
// deletions in descending index order, spawns appended last
func (s *Session) apply(actions []entity.Action, now time.Duration) {
	var deletes []int
	var spawns []entity.Entity

	for i, act := range actions {
		switch act.Type {
		case entity.ActionUpdate:
			s.replace(i, act.Entity)
		case entity.ActionDelete:
			deletes = append(deletes, i)
		case entity.ActionNew:
			s.reschedule(i, now)
			if s.claimSpawn(act.Entity.Kind()) {
				spawns = append(spawns, act.Entity)
			}
		case entity.ActionAttack:
			s.reschedule(i, now)
			s.damagePlayer(act.Damage)
		}
	}

	for j := len(deletes) - 1; j >= 0; j-- {
		s.remove(deletes[j])
	}
	for _, e := range spawns {
		s.add(e)
	}
}

// hitTest resolves every live bullet against every other footprint.
// Bullets are visited newest first; each removes itself on its first hit.
func (s *Session) hitTest() {
	dims := s.maze.Dimensions()

	var bullets []int
	for i := len(s.entities) - 1; i > 0; i-- {
		if b, ok := s.entities[i].(*entity.Bullet); ok && b.State == entity.Alive {
			bullets = append(bullets, i)
		}
	}
	if len(bullets) == 0 {
		return
	}

	var spent []int
	marked := make(map[int]bool, len(bullets))
	for _, bi := range bullets {
		b := s.entities[bi].(*entity.Bullet)
		if b.State != entity.Alive {
			// exploded by an earlier bullet this pass
			continue
		}
		for ti, target := range s.entities {
			if ti == bi || marked[ti] {
				continue
			}
			if ti == 0 && b.Harmless() {
				continue
			}
			if target.Hit(b.Pos, dims) {
				s.resolveHit(bi, ti)
				spent = append(spent, bi)
				marked[bi] = true
				break
			}
		}
	}

	// spent is collected in descending order already
	for _, i := range spent {
		s.remove(i)
	}
}

// resolveHit explodes the target of bullet bi and credits its score
func (s *Session) resolveHit(bi, ti int) {
	if bi == ti {
		panic(fmt.Sprintf("engine: bullet %d cannot hit itself", bi))
	}
	s.kill(s.entities[ti], true)
}

// collateral explodes hazards near a player that is not alive, without score
func (s *Session) collateral() {
	p := s.player()
	if p.State == entity.Alive {
		return
	}
	dims := s.maze.Dimensions()
	for _, e := range s.entities[1:] {
		b := e.Common()
		if !entity.Hazard(e.Kind()) || b.State != entity.Alive {
			continue
		}
		if torus.DistanceSquared(b.Pos, p.Pos, dims) < constants.BlastRadiusSquared {
			s.kill(e, false)
		}
	}
}

// spawnTimers raises the rat and brat spawn requests on their fixed periods
func (s *Session) spawnTimers(now time.Duration) {
	if now >= s.nextRatSpawn {
		s.newRats = constants.RatsPerFactory * s.cfg.Factories
		s.nextRatSpawn = now + constants.RatSpawnInterval
		log.WithFields(log.Fields{"rats": s.newRats, "elapsed": now}).Debug("rat spawn requested")
	}
	if now >= s.nextBratSpawn {
		s.newBrats = s.live[entity.KindRat] / constants.RatsPerBrat
		s.nextBratSpawn = now + constants.BratSpawnInterval
		log.WithFields(log.Fields{"brats": s.newBrats, "elapsed": now}).Debug("brat spawn requested")
	}
}

// checkFinished ends the game once no factory, rat or brat remains in the
// list, or the last life is spent and the player lies dead
func (s *Session) checkFinished() {
	cleared := true
	for _, e := range s.entities[1:] {
		switch e.Kind() {
		case entity.KindFactory, entity.KindRat, entity.KindBrat:
			cleared = false
		}
		if !cleared {
			break
		}
	}
	exhausted := s.lives <= 0 && s.player().State == entity.Dead

	if cleared || exhausted {
		if s.transitionPhase(PhaseFinished) {
			log.WithFields(log.Fields{
				"score":   s.score,
				"cleared": cleared,
				"lives":   s.lives,
			}).Info("game finished")
		}
	}
}

// ===== COMMIT HELPERS =====

// kill starts e's explosion and updates counters; score only for bullet hits
func (s *Session) kill(e entity.Entity, scored bool) {
	if e.Common().State != entity.Alive {
		return
	}
	k := e.Kind()
	if k == entity.KindPlayer {
		s.killPlayer()
		return
	}

	e.Explode()
	s.live[k]--
	s.dead[k]++
	if scored {
		s.score += entity.ScoreValue(k)
	}
	if k == entity.KindFactory {
		s.superBoom = constants.SuperBoomFrames
		s.sound.Play(core.SoundLongExplosion)
	} else {
		s.sound.Play(core.SoundShortExplosion)
	}
}

// killPlayer explodes the player and spends a life
func (s *Session) killPlayer() {
	p := s.player()
	if p.State != entity.Alive {
		return
	}
	p.Explode()
	s.health = 0
	s.lives--
	s.dead[entity.KindPlayer]++
	s.superBoom = constants.SuperBoomFrames
	s.sound.Play(core.SoundLongExplosion)
	log.WithFields(log.Fields{"lives": s.lives, "pos": p.Pos}).Debug("player destroyed")
}

func (s *Session) damagePlayer(damage int) {
	if s.player().State != entity.Alive {
		return
	}
	s.health -= damage
	s.sound.Play(core.SoundImpact)
	if s.health <= 0 {
		s.killPlayer()
	}
}

// reschedule pushes the entity at i one normal interval past now
func (s *Session) reschedule(i int, now time.Duration) {
	e := s.entities[i]
	e.Common().NextUpdate = now + entity.UpdateInterval(e.Kind())
}

// claimSpawn consumes one pending spawn of kind k, if any remain
func (s *Session) claimSpawn(k entity.Kind) bool {
	switch k {
	case entity.KindRat:
		if s.newRats <= 0 {
			return false
		}
		s.newRats--
	case entity.KindBrat:
		if s.newBrats <= 0 {
			return false
		}
		s.newBrats--
	}
	return true
}

func (s *Session) replace(i int, e entity.Entity) {
	if i == 0 {
		next, ok := e.(*entity.Player)
		if !ok {
			panic(fmt.Sprintf("engine: player replaced by a %s", e.Kind()))
		}
		if s.player().State == entity.Dead && next.State == entity.Alive {
			s.health = constants.MaxHealth
		}
	}
	s.entities[i] = e
}

func (s *Session) add(e entity.Entity) {
	if e.Kind() == entity.KindPlayer {
		panic("engine: only one player may exist")
	}
	if e.Common().State == entity.Alive {
		s.live[e.Kind()]++
	}
	s.entities = append(s.entities, e)
}

// remove swaps the last entity into slot i and truncates.
// Callers removing several entities must go in descending index order.
func (s *Session) remove(i int) {
	if i == 0 {
		panic("engine: the player cannot be removed")
	}
	e := s.entities[i]
	if e.Common().State == entity.Alive {
		s.live[e.Kind()]--
	}
	last := len(s.entities) - 1
	s.entities[i] = s.entities[last]
	s.entities[last] = nil
	s.entities = s.entities[:last]
}
