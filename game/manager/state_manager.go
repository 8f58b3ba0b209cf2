package manager

import (
	"gridsnake/game/types"
)

// StateManager tracks score, speed and the run flags of the current game.
type StateManager struct {
	score   int
	speed   int
	running bool
	paused  bool
	over    bool
	reason  types.CollisionType
}

func NewStateManager() *StateManager {
	return &StateManager{
		speed: types.InitialSpeed,
	}
}

// Reset prepares a fresh running game.
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.speed = types.InitialSpeed
	sm.running = true
	sm.paused = false
	sm.over = false
	sm.reason = types.NoCollision
}

// AddFood credits one eaten food and reports whether the speed went up.
func (sm *StateManager) AddFood() bool {
	sm.score += types.PointsPerFood
	if sm.score%types.SpeedStepScore == 0 {
		sm.speed++
		return true
	}
	return false
}

// TogglePause flips the paused flag of a running game and returns the new value.
func (sm *StateManager) TogglePause() bool {
	if !sm.running {
		return sm.paused
	}
	sm.paused = !sm.paused
	return sm.paused
}

// Stop halts a game without marking it over (used by restart).
func (sm *StateManager) Stop() {
	sm.running = false
	sm.paused = false
}

// End marks the game over for the given reason.
func (sm *StateManager) End(reason types.CollisionType) {
	sm.running = false
	sm.paused = false
	sm.over = true
	sm.reason = reason
}

func (sm *StateManager) Score() int                  { return sm.score }
func (sm *StateManager) Speed() int                  { return sm.speed }
func (sm *StateManager) Running() bool               { return sm.running }
func (sm *StateManager) Paused() bool                { return sm.paused }
func (sm *StateManager) Over() bool                  { return sm.over }
func (sm *StateManager) Reason() types.CollisionType { return sm.reason }
