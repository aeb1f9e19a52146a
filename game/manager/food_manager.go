package manager

import (
	"errors"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// ErrGridFull is returned when the snake covers every cell
var ErrGridFull = errors.New("no free cell left for food")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	retries      int
	food         *entity.Food
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, retries int, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		retries:      retries,
		food:         entity.NewFood(grid.CellSize()),
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

// Spawn moves the food to a random cell the snake does not cover. Random
// picks are tried a bounded number of times; after that a free cell is drawn
// uniformly from the complement. On ErrGridFull the food stays where it was.
func (fm *FoodManager) Spawn(snake *entity.Snake) error {
	for i := 0; i < fm.retries; i++ {
		pos := fm.randomCell()
		if fm.collisionMgr.ValidateSpawnPosition(pos, snake) {
			fm.food.Position = pos
			return nil
		}
	}

	free := fm.collisionMgr.FreeCells(snake)
	if len(free) == 0 {
		return ErrGridFull
	}
	fm.food.Position = free[fm.rng.Intn(len(free))]
	return nil
}

func (fm *FoodManager) randomCell() types.Vector2 {
	return fm.grid.CellOrigin(fm.rng.Intn(fm.grid.Cells), fm.rng.Intn(fm.grid.Cells))
}
