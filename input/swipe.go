package input

import "gridsnake/game/types"

// SwipeTracker turns a single-touch drag into a direction. A swipe is
// decided on the first move after the touch starts; the tracker then
// waits for the next touch start.
type SwipeTracker struct {
	startX, startY float64
	active         bool
}

// Begin records where a touch started.
func (s *SwipeTracker) Begin(x, y float64) {
	s.startX, s.startY = x, y
	s.active = true
}

// Move reports the swipe direction once the touch has moved.
func (s *SwipeTracker) Move(x, y float64) (types.Direction, bool) {
	if !s.active {
		return types.None, false
	}

	d := SwipeDirection(s.startX-x, s.startY-y)
	if d == types.None {
		return types.None, false
	}
	s.active = false
	return d, true
}

// End forgets an unfinished touch.
func (s *SwipeTracker) End() {
	s.active = false
}

func (s *SwipeTracker) Active() bool {
	return s.active
}

// SwipeDirection classifies a drag by its start-minus-end delta; the
// dominant axis wins and vertical wins ties.
func SwipeDirection(diffX, diffY float64) types.Direction {
	if abs(diffX) > abs(diffY) {
		if diffX > 0 {
			return types.Left
		}
		return types.Right
	}
	switch {
	case diffY > 0:
		return types.Up
	case diffY < 0:
		return types.Down
	default:
		return types.None
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
