package ui

import (
	"fmt"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	controlsBar   = 50
	buttonGap     = 10
)

var (
	boardColor  = rl.NewColor(0x22, 0x22, 0x22, 0xff)
	foodColor   = rl.Red
	borderColor = rl.DarkGreen
	panelColor  = rl.DarkGray
)

// layout is where everything goes for a given window size.
type layout struct {
	cellSize        int32
	offsetX         int32
	offsetY         int32
	totalGridWidth  int32
	totalGridHeight int32
	statsX          int32
	statsWidth      int32
	controlsY       int32
}

func computeLayout(screenWidth, screenHeight int32, grid types.Grid) layout {
	var l layout
	l.statsWidth = max(screenWidth/4, 160)

	availableWidth := screenWidth - l.statsWidth - borderPadding*2
	availableHeight := screenHeight - controlsBar - borderPadding*2

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	l.cellSize = max(min(cellW, cellH), 1)

	l.totalGridWidth = l.cellSize * int32(grid.Width)
	l.totalGridHeight = l.cellSize * int32(grid.Height)
	l.offsetX = borderPadding
	l.offsetY = borderPadding
	l.statsX = l.offsetX + l.totalGridWidth + borderPadding
	l.controlsY = l.offsetY + l.totalGridHeight + borderPadding
	return l
}

// cell returns the top-left pixel of a grid cell.
func (l layout) cell(p types.Point) (int32, int32) {
	return l.offsetX + int32(p.X)*l.cellSize, l.offsetY + int32(p.Y)*l.cellSize
}

// boardCell is cell for points inside grid; anything else is not drawn.
func (l layout) boardCell(grid types.Grid, p types.Point) (int32, int32, bool) {
	if !grid.Contains(p) {
		return 0, 0, false
	}
	x, y := l.cell(p)
	return x, y, true
}

// onBoard reports whether a screen position lies over the board.
func (l layout) onBoard(p rl.Vector2) bool {
	return p.X >= float32(l.offsetX) && p.X < float32(l.offsetX+l.totalGridWidth) &&
		p.Y >= float32(l.offsetY) && p.Y < float32(l.offsetY+l.totalGridHeight)
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       layout
	controls     *Controls
}

func (r *Renderer) UpdateDimensions() {
	r.resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
}

func (r *Renderer) resize(width, height int32) {
	r.screenWidth = width
	r.screenHeight = height
	r.layout = computeLayout(r.screenWidth, r.screenHeight, types.Board)

	buttonWidth := (r.layout.totalGridWidth - 2*buttonGap) / 3
	r.controls.Layout(
		float32(r.layout.offsetX),
		float32(r.layout.controlsY),
		float32(buttonWidth),
		float32(controlsBar-buttonGap),
		buttonGap,
	)
}

// OnBoard reports whether p is over the playing field.
func (r *Renderer) OnBoard(p rl.Vector2) bool {
	return r.layout.onBoard(p)
}

// Draw renders one frame from a state snapshot.
func (r *Renderer) Draw(st game.GameState, stats *manager.StatsManager, elapsed time.Duration) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawBoard(st)
	r.drawStatsPanel(st, stats, elapsed)
	r.drawControls()
	r.drawOverlay(st)

	rl.EndDrawing()
}

func (r *Renderer) drawBoard(st game.GameState) {
	l := r.layout
	rl.DrawRectangle(l.offsetX, l.offsetY, l.totalGridWidth, l.totalGridHeight, boardColor)

	if st.HasFood {
		if x, y, ok := l.boardCell(st.Grid, st.Food); ok {
			rl.DrawRectangle(x, y, l.cellSize, l.cellSize, foodColor)
		}
	}

	fill := rl.NewColor(st.Color.R, st.Color.G, st.Color.B, 255)
	for i, p := range st.Snake {
		// A wall hit leaves the head outside the board
		x, y, ok := l.boardCell(st.Grid, p)
		if !ok {
			continue
		}
		rl.DrawRectangle(x, y, l.cellSize, l.cellSize, fill)
		rl.DrawRectangleLines(x, y, l.cellSize, l.cellSize, borderColor)
		if i == 0 {
			r.drawHeadIndicator(x, y, st.Direction)
		}
	}
}

// drawHeadIndicator marks the heading with a small triangle.
func (r *Renderer) drawHeadIndicator(headX, headY int32, direction types.Point) {
	cs := r.layout.cellSize
	half := cs / 2
	q := cs / 4
	v := func(x, y int32) rl.Vector2 { return rl.Vector2{X: float32(x), Y: float32(y)} }

	switch types.DirectionOf(direction) {
	case types.Right:
		rl.DrawTriangle(v(headX+cs-q, headY+half), v(headX+half, headY+q), v(headX+half, headY+cs-q), borderColor)
	case types.Left:
		rl.DrawTriangle(v(headX+q, headY+half), v(headX+half, headY+q), v(headX+half, headY+cs-q), borderColor)
	case types.Down:
		rl.DrawTriangle(v(headX+half, headY+cs-q), v(headX+q, headY+half), v(headX+cs-q, headY+half), borderColor)
	case types.Up:
		rl.DrawTriangle(v(headX+half, headY+q), v(headX+q, headY+half), v(headX+cs-q, headY+half), borderColor)
	}
}

func (r *Renderer) drawStatsPanel(st game.GameState, stats *manager.StatsManager, elapsed time.Duration) {
	l := r.layout
	fontSize := max(r.screenHeight/30, 12)
	lineHeight := fontSize + 6

	rl.DrawRectangle(l.statsX, 0, r.screenWidth-l.statsX, r.screenHeight, panelColor)

	x := l.statsX + 10
	y := int32(borderPadding)
	line := func(text string, col rl.Color) {
		rl.DrawText(text, x, y, fontSize, col)
		y += lineHeight
	}

	line(fmt.Sprintf("Score: %d", st.Score), rl.White)
	line(fmt.Sprintf("Speed: %d", st.Speed), rl.White)
	line(fmt.Sprintf("Length: %d", len(st.Snake)), rl.White)
	line(fmt.Sprintf("Time: %.0fs", elapsed.Seconds()), rl.White)

	y += lineHeight / 2
	line("Session", rl.LightGray)
	line(fmt.Sprintf("Games: %d", stats.GetGamesPlayed()), rl.Green)
	line(fmt.Sprintf("Last: %d", stats.GetLastScore()), rl.Green)
	line(fmt.Sprintf("Best: %d", stats.GetMaxScore()), rl.Green)
	line(fmt.Sprintf("Avg: %.1f", stats.GetAverageScore()), rl.Green)
	line(fmt.Sprintf("Median: %.1f", stats.GetMedianScore()), rl.Green)
	line(fmt.Sprintf("Avg time: %.1fs", stats.GetAverageDuration().Seconds()), rl.Purple)
}

func (r *Renderer) drawControls() {
	fontSize := int32(20)
	for _, b := range r.controls.buttons() {
		fill, text := rl.Gray, rl.Black
		if !b.Enabled {
			fill, text = rl.DarkGray, rl.Gray
		}
		rl.DrawRectangleRec(b.Rect, fill)
		rl.DrawRectangleLinesEx(b.Rect, 2, rl.LightGray)

		w := rl.MeasureText(b.Label, fontSize)
		rl.DrawText(b.Label,
			int32(b.Rect.X)+(int32(b.Rect.Width)-w)/2,
			int32(b.Rect.Y)+(int32(b.Rect.Height)-fontSize)/2,
			fontSize, text)
	}
}

func (r *Renderer) drawOverlay(st game.GameState) {
	var msg string
	switch {
	case st.Over:
		msg = fmt.Sprintf("Game over! Score: %d", st.Score)
	case st.Paused:
		msg = "Paused"
	case !st.Running:
		msg = "Press Start"
	case st.Direction.IsZero():
		msg = "Use arrows or swipe"
	default:
		return
	}

	l := r.layout
	fontSize := max(l.totalGridHeight/16, 14)
	w := rl.MeasureText(msg, fontSize)
	x := l.offsetX + (l.totalGridWidth-w)/2
	y := l.offsetY + (l.totalGridHeight-fontSize)/2
	rl.DrawRectangle(x-8, y-6, w+16, fontSize+12, rl.Fade(rl.Black, 0.6))
	rl.DrawText(msg, x, y, fontSize, rl.White)
}
