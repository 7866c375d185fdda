package engine

import (
	log "github.com/sirupsen/logrus"
)

// Phase is the session lifecycle state. Only PhaseRunning advances entities.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseFinished
	PhaseRestart
	PhaseQuit
)

var phaseNames = [...]string{"running", "paused", "finished", "restart", "quit"}

func (p Phase) String() string {
	if int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

var validTransitions = map[Phase][]Phase{
	PhaseRunning:  {PhasePaused, PhaseFinished, PhaseQuit},
	PhasePaused:   {PhaseRunning, PhaseQuit},
	PhaseFinished: {PhaseRestart, PhaseQuit},
	PhaseRestart:  {PhaseRunning},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// transitionPhase moves the session to a new phase if allowed
func (s *Session) transitionPhase(to Phase) bool {
	if !CanTransition(s.phase, to) {
		log.WithFields(log.Fields{"from": s.phase, "to": to}).Debug("phase transition rejected")
		return false
	}
	log.WithFields(log.Fields{"from": s.phase, "to": to, "elapsed": s.now}).Info("phase transition")
	s.phase = to
	return true
}
