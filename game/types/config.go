package types

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the tunables of one game session
type Config struct {
	ArenaWidth   float64
	ArenaHeight  float64
	Cells        int
	MoveDelay    int
	BurstSize    int
	SpawnRetries int
	Seed         uint64 // 0 picks a time based seed
}

func DefaultConfig() Config {
	return Config{
		ArenaWidth:   DefaultArenaSize,
		ArenaHeight:  DefaultArenaSize,
		Cells:        DefaultCells,
		MoveDelay:    MoveDelay,
		BurstSize:    BurstSize,
		SpawnRetries: SpawnRetries,
	}
}

// Grid derives the arena geometry from the config
func (c Config) Grid() Grid {
	return NewGrid(c.ArenaWidth, c.ArenaHeight, c.Cells)
}

// Validate rejects configs the simulation cannot run on
func (c Config) Validate() error {
	switch {
	case c.Cells < 2:
		return fmt.Errorf("%w: cells must be at least 2, got %d", ErrInvalidConfig, c.Cells)
	case c.ArenaWidth <= 0 || c.ArenaHeight <= 0:
		return fmt.Errorf("%w: arena must have a positive size", ErrInvalidConfig)
	case c.ArenaWidth != c.ArenaHeight:
		return fmt.Errorf("%w: arena must be square, got %vx%v", ErrInvalidConfig, c.ArenaWidth, c.ArenaHeight)
	case math.Mod(c.ArenaWidth, float64(c.Cells)) != 0:
		// Fractional cell sizes would break exact collision equality
		return fmt.Errorf("%w: arena size %v is not divisible into %d cells", ErrInvalidConfig, c.ArenaWidth, c.Cells)
	case c.MoveDelay < 1:
		return fmt.Errorf("%w: move delay must be at least 1 frame", ErrInvalidConfig)
	case c.BurstSize < 0:
		return fmt.Errorf("%w: burst size cannot be negative", ErrInvalidConfig)
	case c.SpawnRetries < 1:
		return fmt.Errorf("%w: spawn retries must be at least 1", ErrInvalidConfig)
	}
	return nil
}
