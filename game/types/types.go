package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the number of tiles on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Point is an integer grid coordinate. It doubles as a velocity vector.
type Point struct {
	X, Y int
}

// Add returns p translated by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// IsZero reports whether p is the (0,0) vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Opposite reports whether p and q point in exactly opposite directions.
func (p Point) Opposite(q Point) bool {
	return !p.IsZero() && p.X == -q.X && p.Y == -q.Y
}

// Direction is one of the four cardinal directions
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into a unit velocity
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// DirectionOf maps a unit velocity back to its Direction.
func DirectionOf(v Point) Direction {
	switch {
	case v.Y < 0:
		return Up
	case v.X > 0:
		return Right
	case v.Y > 0:
		return Down
	case v.X < 0:
		return Left
	default:
		return None
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// Game constants
const (
	BoardWidth     = 20 // 400px canvas / 20px tiles
	BoardHeight    = 20
	TileSize       = 20
	InitialSpeed   = 7 // ticks per second
	PointsPerFood  = 10
	SpeedStepScore = 100 // speed +1 every time the score hits a multiple of this
)

// StartPosition is where a fresh snake spawns.
var StartPosition = Point{X: 5, Y: 5}

// Board is the fixed playing field.
var Board = Grid{Width: BoardWidth, Height: BoardHeight}
