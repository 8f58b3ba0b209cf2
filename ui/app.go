package ui

import (
	"time"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

const (
	windowWidth  = 640
	windowHeight = 480
)

// WindowKeys is the keyboard binding table for the raylib window.
func WindowKeys() input.KeyTable[int32] {
	start := input.Intent{Type: input.IntentStart}
	pause := input.Intent{Type: input.IntentPause}
	return input.Arrows[int32](rl.KeyUp, rl.KeyDown, rl.KeyLeft, rl.KeyRight).With(input.KeyTable[int32]{
		rl.KeyEnter: start,
		rl.KeyS:     start,
		rl.KeySpace: pause,
		rl.KeyP:     pause,
		rl.KeyR:     {Type: input.IntentRestart},
		rl.KeyM:     {Type: input.IntentToggleMute},
		rl.KeyQ:     {Type: input.IntentQuit},
	})
}

// App runs the game in a raylib window.
type App struct {
	game     *game.Game
	sfx      *audio.Player
	controls *Controls
	renderer *Renderer
	keys     input.KeyTable[int32]
	swipe    input.SwipeTracker
	touching bool
	fps      int
}

func NewApp(g *game.Game, sfx *audio.Player, fps int) *App {
	controls := NewControls()
	return &App{
		game:     g,
		sfx:      sfx,
		controls: controls,
		renderer: &Renderer{controls: controls},
		keys:     WindowKeys(),
		fps:      fps,
	}
}

// Run opens the window and blocks until it is closed.
func (a *App) Run(title string) {
	rl.InitWindow(windowWidth, windowHeight, title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(a.fps))
	a.renderer.UpdateDimensions()
	log.Info().Int("fps", a.fps).Msg("window opened")

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			a.renderer.UpdateDimensions()
		}

		now := time.Now()
		if !a.handleInput(now) {
			break
		}

		// Update game state at the clock's interval
		a.sfx.OnEvent(a.game.Update(now))

		st := a.game.State()
		a.controls.Sync(st)
		a.renderer.Draw(st, a.game.GetStats(), a.game.ElapsedTime(now))
	}
}

// handleInput drains keyboard and pointer input; false means quit.
func (a *App) handleInput(now time.Time) bool {
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		in, ok := a.keys.Lookup(k)
		if !ok {
			continue
		}
		if !a.apply(in, now) {
			return false
		}
	}

	pos, down := pointerState()
	if in, ok := a.pointer(pos, down); ok {
		return a.apply(in, now)
	}
	return true
}

// pointerState reads the first touch point, falling back to the mouse.
func pointerState() (rl.Vector2, bool) {
	if rl.GetTouchPointCount() > 0 {
		return rl.GetTouchPosition(0), true
	}
	return rl.GetMousePosition(), rl.IsMouseButtonDown(rl.MouseButtonLeft)
}

// pointer turns press / drag / release into button clicks and swipes.
// Swipes only start on the board so button clicks never steer.
func (a *App) pointer(pos rl.Vector2, down bool) (input.Intent, bool) {
	pressed := down && !a.touching
	a.touching = down

	switch {
	case pressed:
		if in, ok := a.controls.Hit(pos); ok {
			return in, true
		}
		if a.renderer.OnBoard(pos) {
			a.swipe.Begin(float64(pos.X), float64(pos.Y))
		}
	case down:
		if d, ok := a.swipe.Move(float64(pos.X), float64(pos.Y)); ok {
			return input.Steer(d), true
		}
	default:
		a.swipe.End()
	}
	return input.Intent{}, false
}

func (a *App) apply(in input.Intent, now time.Time) bool {
	log.Debug().Str("intent", in.Type.String()).Str("dir", in.Direction.String()).Msg("input")

	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		on := a.sfx.ToggleMute()
		log.Info().Bool("sound", on).Msg("sound toggled")
	default:
		input.Dispatch(a.game, in, now)
	}
	return true
}
