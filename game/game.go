package game

import (
	"errors"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrNotRunning is returned by controls that need a game in progress.
var ErrNotRunning = errors.New("game not running")

// SnakeColor is the body fill used by every frontend.
var SnakeColor = entity.Color{R: 0, G: 255, B: 0}

// Event describes what a single tick did.
type Event struct {
	Moved   bool
	Ate     bool
	SpeedUp bool
	Over    bool
	Reason  types.CollisionType
	Score   int
}

// GameState is a read-only copy of everything a renderer needs.
type GameState struct {
	ID        string
	Grid      types.Grid
	Snake     []types.Point
	Direction types.Point
	Color     entity.Color
	Food      types.Point
	HasFood   bool
	Score     int
	Speed     int
	Running   bool
	Paused    bool
	Over      bool
	Reason    types.CollisionType
}

type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time
	EndTime   time.Time

	snake   *entity.Snake
	pending types.Point
	hasFood bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	statsMgr     *manager.StatsManager
	clock        *Clock
}

// NewGame builds an idle game on the fixed board. src drives food placement.
func NewGame(src rand.Source) *Game {
	grid := types.Board
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		Grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, src),
		stateMgr:     manager.NewStateManager(),
		statsMgr:     manager.NewStatsManager(),
		clock:        NewClock(types.InitialSpeed),
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.snake = entity.NewSnake(types.StartPosition, SnakeColor)
	g.pending = types.Point{}
	g.hasFood = g.foodMgr.Place(g.snake)
}

// Start begins a new game unless one is already running.
func (g *Game) Start(now time.Time) bool {
	if g.stateMgr.Running() {
		return false
	}

	g.UUID = uuid.New().String()
	g.StartTime = now
	g.EndTime = time.Time{}
	g.reset()
	g.stateMgr.Reset()
	g.clock.SetRate(g.stateMgr.Speed(), now)
	g.clock.Start(now)

	log.Info().Str("game", g.UUID).Int("speed", g.stateMgr.Speed()).Msg("game started")
	return true
}

// Restart abandons the current game, if any, and starts a fresh one.
func (g *Game) Restart(now time.Time) {
	if g.stateMgr.Running() {
		log.Info().Str("game", g.UUID).Int("score", g.stateMgr.Score()).Msg("game abandoned")
		g.clock.Stop()
		g.stateMgr.Stop()
	}
	g.Start(now)
}

// TogglePause pauses or resumes a running game and returns the paused flag.
func (g *Game) TogglePause() (bool, error) {
	if !g.stateMgr.Running() {
		return false, ErrNotRunning
	}
	paused := g.stateMgr.TogglePause()
	log.Debug().Str("game", g.UUID).Bool("paused", paused).Msg("pause toggled")
	return paused, nil
}

// Steer queues a direction for the next tick. A direct reversal of the
// velocity applied on the last tick is rejected.
func (g *Game) Steer(d types.Direction) bool {
	if !g.stateMgr.Running() || d == types.None {
		return false
	}
	v := d.ToPoint()
	if v.Opposite(g.snake.Direction) {
		return false
	}
	g.pending = v
	return true
}

// Update runs a tick if the clock says one is due.
func (g *Game) Update(now time.Time) Event {
	if !g.clock.Due(now) {
		return Event{}
	}
	return g.Tick(now)
}

// Tick advances the simulation by one step.
func (g *Game) Tick(now time.Time) Event {
	if !g.stateMgr.Running() || g.stateMgr.Paused() {
		return Event{}
	}

	g.snake.Direction = g.pending
	if g.snake.Direction.IsZero() {
		return Event{}
	}

	newHead := g.snake.GetHead().Add(g.snake.Direction)
	g.snake.Move(newHead)
	ev := Event{Moved: true}

	boardFull := false
	if g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood()) {
		ev.Ate = true
		ev.SpeedUp = g.stateMgr.AddFood()
		if ev.SpeedUp {
			g.clock.SetRate(g.stateMgr.Speed(), now)
			log.Info().Str("game", g.UUID).Int("speed", g.stateMgr.Speed()).Msg("speed up")
		}
		g.hasFood = g.foodMgr.Place(g.snake)
		boardFull = !g.hasFood
	} else {
		g.snake.RemoveTail()
	}
	ev.Score = g.stateMgr.Score()

	reason := g.collisionMgr.CheckCollision(g.snake)
	if reason == types.NoCollision && boardFull {
		reason = types.BoardFull
	}
	if reason != types.NoCollision {
		g.end(reason, now)
		ev.Over = true
		ev.Reason = reason
	}
	return ev
}

func (g *Game) end(reason types.CollisionType, now time.Time) {
	g.EndTime = now
	g.clock.Stop()
	g.stateMgr.End(reason)
	g.statsMgr.AddGame(g.UUID, g.stateMgr.Score(), g.StartTime, now)

	log.Info().
		Str("game", g.UUID).
		Int("score", g.stateMgr.Score()).
		Int("length", g.snake.Len()).
		Str("reason", reason.String()).
		Dur("duration", now.Sub(g.StartTime)).
		Msg("game over")
}

// State returns a snapshot for rendering.
func (g *Game) State() GameState {
	return GameState{
		ID:        g.UUID,
		Grid:      g.Grid,
		Snake:     g.snake.Segments(),
		Direction: g.snake.Direction,
		Color:     g.snake.Color,
		Food:      g.foodMgr.GetFood(),
		HasFood:   g.hasFood,
		Score:     g.stateMgr.Score(),
		Speed:     g.stateMgr.Speed(),
		Running:   g.stateMgr.Running(),
		Paused:    g.stateMgr.Paused(),
		Over:      g.stateMgr.Over(),
		Reason:    g.stateMgr.Reason(),
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) GetStats() *manager.StatsManager {
	return g.statsMgr
}

func (g *Game) TickInterval() time.Duration {
	return g.clock.Interval()
}

// ElapsedTime returns how long the current game has run. It stops
// counting once the game is over.
func (g *Game) ElapsedTime(now time.Time) time.Duration {
	switch {
	case g.StartTime.IsZero():
		return 0
	case !g.EndTime.IsZero():
		return g.EndTime.Sub(g.StartTime)
	}
	return now.Sub(g.StartTime)
}
