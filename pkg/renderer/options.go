package renderer

import "time"

// Options controls how a frame is scheduled, independently of what the camera sees
type Options struct {
	// Number of render goroutines; 0 uses one per CPU.
	NumWorkers int

	// Base seed. Each pixel draws from its own generator seeded with (Seed, pixel index).
	Seed uint64

	// How often the progress monitor reports; 0 uses DefaultProgressInterval.
	ProgressInterval time.Duration

	// Min bounces before applying russian roulette for path elimination; 0 disables it.
	RussianRouletteMinBounces int
}

// DefaultProgressInterval is the monitor's polling period when Options leaves it unset
const DefaultProgressInterval = 100 * time.Millisecond
