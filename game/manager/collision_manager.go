package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision inspects the snake after its head has been placed.
// Wall hits win over self hits since an off-board head cannot overlap the body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(snake.GetHead()) {
		return types.WallCollision
	}
	if snake.HitsSelf() {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position lies outside the board
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a position is a free board cell
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
