// Package terminal runs the game inside a terminal using tcell.
// Each board tile is two columns wide so the board stays roughly square.
package terminal

import (
	"fmt"
	"time"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/input"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

const (
	boardX    = 1 // screen column of the first tile, inside the frame
	boardY    = 1
	tileWidth = 2
)

var (
	boardStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x22, 0x22, 0x22))
	frameStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	foodStyle   = tcell.StyleDefault.Background(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
)

// Keys is the special-key binding table.
func Keys() input.KeyTable[tcell.Key] {
	return input.Arrows(tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight).With(input.KeyTable[tcell.Key]{
		tcell.KeyEnter:  {Type: input.IntentStart},
		tcell.KeyEscape: {Type: input.IntentQuit},
		tcell.KeyCtrlC:  {Type: input.IntentQuit},
	})
}

// Runes is the printable-key binding table.
func Runes() input.KeyTable[rune] {
	pause := input.Intent{Type: input.IntentPause}
	return input.KeyTable[rune]{
		's': {Type: input.IntentStart},
		' ': pause,
		'p': pause,
		'r': {Type: input.IntentRestart},
		'm': {Type: input.IntentToggleMute},
		'q': {Type: input.IntentQuit},
	}
}

type App struct {
	screen   tcell.Screen
	game     *game.Game
	sfx      *audio.Player
	keys     input.KeyTable[tcell.Key]
	runes    input.KeyTable[rune]
	swipe    input.SwipeTracker
	dragging bool
	frame    time.Duration
}

func New(screen tcell.Screen, g *game.Game, sfx *audio.Player, fps int) *App {
	if fps <= 0 {
		fps = 60
	}
	return &App{
		screen: screen,
		game:   g,
		sfx:    sfx,
		keys:   Keys(),
		runes:  Runes(),
		frame:  time.Second / time.Duration(fps),
	}
}

// Run drives the frame loop until the player quits. The screen must already be initialized.
func (a *App) Run() {
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			a.sfx.OnEvent(a.game.Update(now))
			a.draw()
		}
	}
}

func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune(), now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		return a.handleMouse(x, y, ev.Buttons()&tcell.Button1 != 0, now)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// handleKey applies a key press; false means quit.
func (a *App) handleKey(key tcell.Key, r rune, now time.Time) bool {
	var (
		in input.Intent
		ok bool
	)
	if key == tcell.KeyRune {
		in, ok = a.runes.Lookup(r)
	} else {
		in, ok = a.keys.Lookup(key)
	}
	if !ok {
		return true
	}
	return a.apply(in, now)
}

// handleMouse treats a left-button drag on the board as a swipe.
func (a *App) handleMouse(x, y int, down bool, now time.Time) bool {
	pressed := down && !a.dragging
	a.dragging = down

	switch {
	case pressed:
		if onBoard(x, y) {
			a.swipe.Begin(float64(x)/tileWidth, float64(y))
		}
	case down:
		if d, ok := a.swipe.Move(float64(x)/tileWidth, float64(y)); ok {
			return a.apply(input.Steer(d), now)
		}
	default:
		a.swipe.End()
	}
	return true
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
	a.draw()
	return true
}

func onBoard(x, y int) bool {
	return x >= boardX && x < boardX+types.BoardWidth*tileWidth &&
		y >= boardY && y < boardY+types.BoardHeight
}

func (a *App) draw() {
	a.screen.Clear()
	st := a.game.State()
	drawState(a.screen, st)
	drawStatus(a.screen, st, a.game.GetStats(), a.game.ElapsedTime(time.Now()), a.sfx.IsMuted())
	a.screen.Show()
}

// drawState renders the board from a snapshot without touching game state.
func drawState(s tcell.Screen, st game.GameState) {
	w, h := st.Grid.Width*tileWidth, st.Grid.Height
	drawFrame(s, boardX-1, boardY-1, boardX+w, boardY+h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(boardX+x, boardY+y, ' ', nil, boardStyle)
		}
	}

	if st.HasFood {
		setTile(s, st.Food, ' ', ' ', foodStyle)
	}

	color := tcell.NewRGBColor(int32(st.Color.R), int32(st.Color.G), int32(st.Color.B))
	segStyle := tcell.StyleDefault.Background(color).Foreground(tcell.ColorDarkGreen)
	for i, p := range st.Snake {
		if !st.Grid.Contains(p) {
			continue
		}
		if i == 0 {
			setTile(s, p, headRune(st.Direction), ']', segStyle)
			continue
		}
		setTile(s, p, '[', ']', segStyle)
	}

	if msg := banner(st); msg != "" {
		x := boardX + (w-len(msg))/2
		drawText(s, x, boardY+h/2, bannerStyle, msg)
	}
}

func headRune(dir types.Point) rune {
	switch types.DirectionOf(dir) {
	case types.Up:
		return '^'
	case types.Down:
		return 'v'
	case types.Left:
		return '<'
	case types.Right:
		return '>'
	default:
		return '['
	}
}

func banner(st game.GameState) string {
	switch {
	case st.Over:
		return fmt.Sprintf(" Game over! Score: %d ", st.Score)
	case st.Paused:
		return " Paused "
	case !st.Running:
		return " Press Enter to start "
	case st.Direction.IsZero():
		return " Arrows or drag to move "
	default:
		return ""
	}
}

func drawStatus(s tcell.Screen, st game.GameState, stats *manager.StatsManager, elapsed time.Duration, muted bool) {
	y := boardY + st.Grid.Height + 1
	drawText(s, 0, y, textStyle, fmt.Sprintf("Score: %d  Speed: %d  Time: %ds  Last: %d  Best: %d  Games: %d",
		st.Score, st.Speed, int(elapsed.Seconds()), stats.GetLastScore(), stats.GetMaxScore(), stats.GetGamesPlayed()))

	x := 0
	control := func(label string, enabled bool) {
		style := textStyle
		if !enabled {
			style = dimStyle
		}
		drawText(s, x, y+1, style, label)
		x += len(label) + 2
	}
	control("[Enter] Start", !st.Running)
	if st.Paused {
		control("[Space] Resume", st.Running)
	} else {
		control("[Space] Pause", st.Running)
	}
	control("[R] Restart", true)
	if muted {
		control("[M] Sound off", true)
	} else {
		control("[M] Sound on", true)
	}
	control("[Q] Quit", true)
}

func setTile(s tcell.Screen, p types.Point, left, right rune, style tcell.Style) {
	x := boardX + p.X*tileWidth
	y := boardY + p.Y
	s.SetContent(x, y, left, nil, style)
	s.SetContent(x+1, y, right, nil, style)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawFrame(s tcell.Screen, x1, y1, x2, y2 int) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, frameStyle)
		s.SetContent(col, y2, tcell.RuneHLine, nil, frameStyle)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, frameStyle)
		s.SetContent(x2, row, tcell.RuneVLine, nil, frameStyle)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, frameStyle)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, frameStyle)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, frameStyle)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, frameStyle)
}
