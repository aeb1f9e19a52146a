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

// IsCollision is exact grid-aligned equality
func (cm *CollisionManager) IsCollision(a, b types.Vector2) bool {
	return a.Equals(b)
}

// IsFoodCollision checks if the head is on the food cell
func (cm *CollisionManager) IsFoodCollision(head types.Vector2, food *entity.Food) bool {
	return food != nil && cm.IsCollision(head, food.Position)
}

// CheckSelfCollision applies the minimum length guard before scanning the trail
func (cm *CollisionManager) CheckSelfCollision(snake *entity.Snake) bool {
	if snake.Total <= types.SelfCollisionMinTotal {
		return false
	}
	return snake.SelfCollides()
}

// ValidateSpawnPosition checks if a position is free for food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Vector2, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// FreeCells lists every cell origin not covered by the snake, row by row
func (cm *CollisionManager) FreeCells(snake *entity.Snake) []types.Vector2 {
	taken := make(map[types.Vector2]struct{}, len(snake.History)+1)
	for _, p := range snake.Cells() {
		taken[p] = struct{}{}
	}

	free := make([]types.Vector2, 0, cm.grid.CellCount()-len(taken))
	for row := 0; row < cm.grid.Cells; row++ {
		for col := 0; col < cm.grid.Cells; col++ {
			p := cm.grid.CellOrigin(col, row)
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
