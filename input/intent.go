package input

import (
	"time"

	"gridsnake/game/types"

	"github.com/rs/zerolog/log"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentSteer
	IntentStart
	IntentPause
	IntentRestart
	IntentQuit
	IntentToggleMute
)

func (i IntentType) String() string {
	switch i {
	case IntentSteer:
		return "steer"
	case IntentStart:
		return "start"
	case IntentPause:
		return "pause"
	case IntentRestart:
		return "restart"
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "mute"
	default:
		return "none"
	}
}

// Intent is one decoded user action.
type Intent struct {
	Type      IntentType
	Direction types.Direction
}

// Steer builds a steering intent.
func Steer(d types.Direction) Intent {
	return Intent{Type: IntentSteer, Direction: d}
}

// Controller is the part of the game an intent can drive.
type Controller interface {
	Steer(d types.Direction) bool
	Start(now time.Time) bool
	Restart(now time.Time)
	TogglePause() (bool, error)
}

// Dispatch applies an intent to the controller. Quit and mute are left to the caller.
func Dispatch(c Controller, in Intent, now time.Time) {
	switch in.Type {
	case IntentSteer:
		c.Steer(in.Direction)
	case IntentStart:
		c.Start(now)
	case IntentPause:
		if _, err := c.TogglePause(); err != nil {
			log.Debug().Err(err).Msg("pause ignored")
		}
	case IntentRestart:
		c.Restart(now)
	}
}
