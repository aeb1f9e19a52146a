package types

// Game constants
const (
	DefaultArenaSize = 500.0 // Arena is square, in pixels
	DefaultCells     = 20    // Cells per side
	MoveDelay        = 7     // Frames between snake movement steps
	BurstSize        = 20    // Particles spawned per food eaten
	SpawnRetries     = 64    // Random food placements tried before scanning free cells

	ParticleDecay   = 0.3  // Size lost per particle update
	ParticleGravity = -0.2 // Subtracted from vertical velocity each update
	ParticleSpeed   = 3.0  // Max absolute velocity per axis at spawn

	// Below this many segments the head cannot reach its own trail,
	// so the self-collision scan is skipped
	SelfCollisionMinTotal = 3
)
