package ui

import (
	"gridsnake/game"
	"gridsnake/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button is a clickable control drawn under the board.
type Button struct {
	Label   string
	Rect    rl.Rectangle
	Enabled bool
	Intent  input.Intent
}

func (b *Button) contains(p rl.Vector2) bool {
	return p.X >= b.Rect.X && p.X < b.Rect.X+b.Rect.Width &&
		p.Y >= b.Rect.Y && p.Y < b.Rect.Y+b.Rect.Height
}

// Controls holds the start / pause / restart buttons.
type Controls struct {
	Start   Button
	Pause   Button
	Restart Button
}

func NewControls() *Controls {
	c := &Controls{
		Start:   Button{Label: "Start", Intent: input.Intent{Type: input.IntentStart}},
		Pause:   Button{Label: "Pause", Intent: input.Intent{Type: input.IntentPause}},
		Restart: Button{Label: "Restart", Intent: input.Intent{Type: input.IntentRestart}, Enabled: true},
	}
	c.Sync(game.GameState{})
	return c
}

// Sync updates enabled flags and labels from the game state: Start only
// while stopped, Pause only while running.
func (c *Controls) Sync(st game.GameState) {
	c.Start.Enabled = !st.Running
	c.Pause.Enabled = st.Running
	if st.Paused {
		c.Pause.Label = "Resume"
	} else {
		c.Pause.Label = "Pause"
	}
}

// Layout places the buttons in a row starting at (x, y).
func (c *Controls) Layout(x, y, width, height, gap float32) {
	for i, b := range c.buttons() {
		b.Rect = rl.Rectangle{X: x + float32(i)*(width+gap), Y: y, Width: width, Height: height}
	}
}

// Hit returns the intent of the enabled button under p.
func (c *Controls) Hit(p rl.Vector2) (input.Intent, bool) {
	for _, b := range c.buttons() {
		if b.Enabled && b.contains(p) {
			return b.Intent, true
		}
	}
	return input.Intent{}, false
}

// Over reports whether p is on any button, enabled or not.
func (c *Controls) Over(p rl.Vector2) bool {
	for _, b := range c.buttons() {
		if b.contains(p) {
			return true
		}
	}
	return false
}

func (c *Controls) buttons() []*Button {
	return []*Button{&c.Start, &c.Pause, &c.Restart}
}
