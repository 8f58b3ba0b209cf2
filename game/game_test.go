package game

import (
	"errors"
	"testing"
	"time"

	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newStartedGame(t *testing.T, seed uint64) *Game {
	t.Helper()
	g := NewGame(rand.NewSource(seed))
	if !g.Start(t0) {
		t.Fatal("Expected Start to succeed on an idle game")
	}
	return g
}

// placeNextToFood puts a one-segment snake beside the food, heading into it.
func placeNextToFood(g *Game) {
	f := g.GetFood()
	head, dir := types.Point{X: f.X - 1, Y: f.Y}, types.Right
	if f.X == 0 {
		head, dir = types.Point{X: f.X + 1, Y: f.Y}, types.Left
	}
	g.snake.Body = []types.Point{head}
	g.snake.Direction = types.Point{}
	g.Steer(dir)
}

func TestStartResetsState(t *testing.T) {
	g := newStartedGame(t, 1)
	st := g.State()

	if !st.Running || st.Paused || st.Over {
		t.Errorf("Unexpected flags: running=%v paused=%v over=%v", st.Running, st.Paused, st.Over)
	}
	if st.Score != 0 || st.Speed != types.InitialSpeed {
		t.Errorf("Expected score 0 and speed %d, got %d and %d", types.InitialSpeed, st.Score, st.Speed)
	}
	if len(st.Snake) != 1 || st.Snake[0] != types.StartPosition {
		t.Errorf("Expected single segment at %+v, got %+v", types.StartPosition, st.Snake)
	}
	if !st.Direction.IsZero() {
		t.Errorf("Expected zero velocity, got %+v", st.Direction)
	}
	if st.ID == "" {
		t.Error("Expected a game id")
	}
	if g.Start(t0) {
		t.Error("Expected Start to be ignored while running")
	}
}

func TestIdleSnakeDoesNotMove(t *testing.T) {
	g := newStartedGame(t, 1)
	ev := g.Tick(t0)
	if ev.Moved {
		t.Error("Expected no movement with zero velocity")
	}
	if g.GetSnake().GetHead() != types.StartPosition {
		t.Errorf("Expected head to stay at %+v, got %+v", types.StartPosition, g.GetSnake().GetHead())
	}
}

func TestLengthInvariantWithoutFood(t *testing.T) {
	g := newStartedGame(t, 2)
	row := (g.GetFood().Y + 1) % types.BoardHeight
	g.snake.Body = []types.Point{{X: 2, Y: row}, {X: 1, Y: row}, {X: 0, Y: row}}
	g.snake.Direction = types.Point{X: 1, Y: 0}
	g.Steer(types.Right)

	for i := 0; i < 10; i++ {
		ev := g.Tick(t0)
		if !ev.Moved || ev.Ate || ev.Over {
			t.Fatalf("tick %d: unexpected event %+v", i, ev)
		}
		if g.GetSnake().Len() != 3 {
			t.Fatalf("tick %d: expected length 3, got %d", i, g.GetSnake().Len())
		}
	}
	if head := g.GetSnake().GetHead(); head != (types.Point{X: 12, Y: row}) {
		t.Errorf("Expected head (12,%d), got %+v", row, head)
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := newStartedGame(t, 3)
	placeNextToFood(g)
	food := g.GetFood()

	ev := g.Tick(t0)
	if !ev.Ate {
		t.Fatalf("Expected to eat, got %+v", ev)
	}
	if ev.Score != 10 || g.State().Score != 10 {
		t.Errorf("Expected score 10, got %d", g.State().Score)
	}
	if g.GetSnake().Len() != 2 {
		t.Errorf("Expected length 2, got %d", g.GetSnake().Len())
	}
	if g.GetSnake().GetHead() != food {
		t.Errorf("Expected head on old food %+v, got %+v", food, g.GetSnake().GetHead())
	}
	if g.GetSnake().Occupies(g.GetFood()) {
		t.Error("Expected new food off the snake")
	}
}

func TestSpeedUpRestartsClock(t *testing.T) {
	g := newStartedGame(t, 4)
	for i := 0; i < 9; i++ {
		placeNextToFood(g)
		if ev := g.Tick(t0); ev.SpeedUp {
			t.Fatalf("unexpected speed up at score %d", ev.Score)
		}
	}

	placeNextToFood(g)
	now := t0.Add(time.Second)
	ev := g.Tick(now)
	if !ev.SpeedUp || ev.Score != 100 {
		t.Fatalf("Expected speed up at 100, got %+v", ev)
	}
	if g.State().Speed != types.InitialSpeed+1 {
		t.Errorf("Expected speed %d, got %d", types.InitialSpeed+1, g.State().Speed)
	}
	want := time.Second / time.Duration(types.InitialSpeed+1)
	if g.TickInterval() != want {
		t.Errorf("Expected interval %v, got %v", want, g.TickInterval())
	}
	if g.clock.Due(now.Add(want - time.Millisecond)) {
		t.Error("Expected the restarted timer not to fire early")
	}
	if !g.clock.Due(now.Add(want)) {
		t.Error("Expected the restarted timer to fire after one interval")
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := newStartedGame(t, 5)
	row := (g.GetFood().Y + 1) % types.BoardHeight
	g.snake.Body = []types.Point{{X: types.BoardWidth - 1, Y: row}}
	g.Steer(types.Right)

	ev := g.Tick(t0.Add(3 * time.Second))
	if !ev.Over || ev.Reason != types.WallCollision {
		t.Fatalf("Expected wall game over, got %+v", ev)
	}
	st := g.State()
	if st.Running || !st.Over {
		t.Errorf("Expected stopped game, got running=%v over=%v", st.Running, st.Over)
	}
	if g.clock.Running() {
		t.Error("Expected clock to stop on game over")
	}
	if g.GetStats().GetGamesPlayed() != 1 {
		t.Errorf("Expected one recorded game, got %d", g.GetStats().GetGamesPlayed())
	}
	if ev := g.Tick(t0); ev.Moved {
		t.Error("Expected no ticks after game over")
	}
	if !g.Start(t0) {
		t.Error("Expected Start to be allowed after game over")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newStartedGame(t, 6)
	// Head at (3,3) heading up into (3,2), which is body.
	g.snake.Body = []types.Point{
		{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1},
	}
	g.snake.Direction = types.Point{X: -1, Y: 0}
	g.pending = g.snake.Direction
	if !g.Steer(types.Up) {
		t.Fatal("Expected a turn up to be accepted")
	}
	if g.GetFood() == (types.Point{X: 3, Y: 2}) {
		t.Skip("food landed on the collision cell")
	}

	ev := g.Tick(t0)
	if !ev.Over || ev.Reason != types.SelfCollision {
		t.Fatalf("Expected self collision, got %+v", ev)
	}
}

func TestFollowingTailIsAllowed(t *testing.T) {
	g := newStartedGame(t, 7)
	// 2x2 loop: the head moves into the cell the tail leaves this tick.
	g.snake.Body = []types.Point{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}}
	g.snake.Direction = types.Point{X: -1, Y: 0}
	g.pending = g.snake.Direction
	g.Steer(types.Down)
	if g.GetFood() == (types.Point{X: 10, Y: 11}) {
		t.Skip("food landed on the tail cell")
	}

	if ev := g.Tick(t0); ev.Over {
		t.Errorf("Expected chasing the tail to be legal, got %+v", ev)
	}
}

func TestReversalRejected(t *testing.T) {
	g := newStartedGame(t, 8)
	if !g.Steer(types.Right) {
		t.Fatal("Expected first direction to be accepted")
	}
	g.Tick(t0)

	if g.Steer(types.Left) {
		t.Error("Expected direct reversal to be rejected")
	}

	// Two turns inside one tick must not sneak a reversal through.
	if !g.Steer(types.Up) {
		t.Error("Expected a perpendicular turn to be accepted")
	}
	if g.Steer(types.Left) {
		t.Error("Expected reversal of the applied velocity to be rejected")
	}
	g.Tick(t0)
	if g.State().Direction != types.Up.ToPoint() {
		t.Errorf("Expected velocity up, got %+v", g.State().Direction)
	}
}

func TestSteerIgnoredWhenIdle(t *testing.T) {
	g := NewGame(rand.NewSource(9))
	if g.Steer(types.Up) {
		t.Error("Expected input to be ignored before Start")
	}
}

func TestPauseFreezesTicks(t *testing.T) {
	g := newStartedGame(t, 10)
	g.Steer(types.Down)
	paused, err := g.TogglePause()
	if err != nil || !paused {
		t.Fatalf("Expected pause, got paused=%v err=%v", paused, err)
	}
	if ev := g.Tick(t0); ev.Moved {
		t.Error("Expected paused game not to move")
	}
	if paused, _ := g.TogglePause(); paused {
		t.Error("Expected resume")
	}
	if ev := g.Tick(t0); !ev.Moved {
		t.Error("Expected resumed game to move")
	}
}

func TestTogglePauseNotRunning(t *testing.T) {
	g := NewGame(rand.NewSource(11))
	if _, err := g.TogglePause(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Expected ErrNotRunning, got %v", err)
	}
}

func TestRestartStartsFresh(t *testing.T) {
	g := newStartedGame(t, 12)
	placeNextToFood(g)
	g.Tick(t0)
	oldID := g.UUID

	g.Restart(t0.Add(time.Second))
	st := g.State()
	if !st.Running || st.Score != 0 || len(st.Snake) != 1 {
		t.Errorf("Expected fresh running game, got %+v", st)
	}
	if st.ID == oldID {
		t.Error("Expected a new game id after restart")
	}
}

func TestUpdateFollowsClock(t *testing.T) {
	g := newStartedGame(t, 13)
	g.Steer(types.Down)
	interval := g.TickInterval()

	if ev := g.Update(t0.Add(interval / 2)); ev.Moved {
		t.Error("Expected no tick before the first interval")
	}
	if ev := g.Update(t0.Add(interval)); !ev.Moved {
		t.Error("Expected a tick after one interval")
	}
	if ev := g.Update(t0.Add(interval + interval/2)); ev.Moved {
		t.Error("Expected no overlapping tick")
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	g := newStartedGame(t, 14)

	// Fill every cell except the food, snake head next to it.
	f := g.GetFood()
	var body []types.Point
	for y := 0; y < types.BoardHeight; y++ {
		for x := 0; x < types.BoardWidth; x++ {
			p := types.Point{X: x, Y: y}
			if p != f {
				body = append(body, p)
			}
		}
	}
	// Order does not matter for occupancy; make sure the head is adjacent to the food.
	head, dir := types.Point{X: f.X - 1, Y: f.Y}, types.Right
	if f.X == 0 {
		head, dir = types.Point{X: f.X + 1, Y: f.Y}, types.Left
	}
	for i, p := range body {
		if p == head {
			body[0], body[i] = body[i], body[0]
			break
		}
	}
	g.snake.Body = body
	g.Steer(dir)

	ev := g.Tick(t0)
	if !ev.Ate || !ev.Over || ev.Reason != types.BoardFull {
		t.Errorf("Expected board full game over, got %+v", ev)
	}
}

func TestElapsedTimeStopsAtGameOver(t *testing.T) {
	g := NewGame(rand.NewSource(15))
	if g.ElapsedTime(t0) != 0 {
		t.Errorf("Expected no elapsed time before Start, got %v", g.ElapsedTime(t0))
	}

	g.Start(t0)
	if got := g.ElapsedTime(t0.Add(3 * time.Second)); got != 3*time.Second {
		t.Errorf("Expected 3s while running, got %v", got)
	}

	row := (g.GetFood().Y + 1) % types.BoardHeight
	g.snake.Body = []types.Point{{X: types.BoardWidth - 1, Y: row}}
	g.Steer(types.Right)
	if ev := g.Tick(t0.Add(5 * time.Second)); !ev.Over {
		t.Fatalf("Expected game over, got %+v", ev)
	}
	if got := g.ElapsedTime(t0.Add(time.Minute)); got != 5*time.Second {
		t.Errorf("Expected elapsed time frozen at 5s, got %v", got)
	}

	g.Start(t0.Add(time.Minute))
	if got := g.ElapsedTime(t0.Add(time.Minute)); got != 0 {
		t.Errorf("Expected a fresh clock after Start, got %v", got)
	}
}
