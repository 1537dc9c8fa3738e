package core

// RuntimeConfig contains configuration passed to a round at start.
// The round uses it to size the terminal view and seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the nominal tick length in whole milliseconds.
func (c RuntimeConfig) TickInterval() int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return Max(1, 1000/rate)
}
