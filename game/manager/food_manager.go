package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// maxSpawnTries bounds rejection sampling before falling back to a free-cell scan.
const maxSpawnTries = 64

type FoodManager struct {
	grid         types.Grid
	food         types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, src rand.Source) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(src),
		collisionMgr: collisionMgr,
	}
}

// Place moves the food to a random cell the snake does not occupy.
// It returns false when the snake covers the whole board.
func (fm *FoodManager) Place(snake *entity.Snake) bool {
	food, ok := fm.GenerateFood(snake)
	if ok {
		fm.food = food
	}
	return ok
}

func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	if snake.Len() >= fm.grid.Cells() {
		return types.Point{}, false
	}

	for i := 0; i < maxSpawnTries; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	// Crowded board: pick uniformly among the remaining free cells.
	free := make([]types.Point, 0, fm.grid.Cells()-snake.Len())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}
