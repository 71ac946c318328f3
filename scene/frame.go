package scene

import (
	"math/rand"
	"time"
)

// Frame is the per-frame context handed in by the external
// application loop. Updates must derive everything they need from it
// so a frame can be replayed deterministically.
type Frame struct {
	Time  time.Time
	Delta time.Duration

	// Input is an opaque input snapshot. The core never inspects it;
	// scenes that need it assert the concrete type the loop provides.
	Input any

	// Rand is the frame-scoped randomness source. Seeding it is the
	// loop's job, which keeps updates replayable.
	Rand *rand.Rand

	// Boot carries immutable startup data built once at boot.
	Boot any
}

// Render describes what a scene or subsystem wants drawn this frame.
// The core never draws; an external renderer consumes these.
type Render struct {
	From    string
	Title   string
	Content string
}
