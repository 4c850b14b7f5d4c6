package catch

import (
	"math/rand"

	"github.com/vovakirdan/treat-catcher/internal/core"
)

// Treat is a falling object. All treats share one vertical velocity, which
// the simulation derives from the score each frame.
type Treat struct {
	ID   int // Unique within a run, in spawn order
	X, Y int // Top-left corner in field units
	W, H int
}

// Rect returns the collision box of the treat.
func (t Treat) Rect() core.Rect {
	return core.NewRect(t.X, t.Y, t.W, t.H)
}

// Spawner decides once per frame whether a new treat enters the field.
type Spawner struct {
	counter int
	nextID  int
	rng     *rand.Rand
	fieldW  int
	treatW  int
	treatH  int
}

// NewSpawner creates a spawner for a field of the given width.
func NewSpawner(seed int64, fieldW, treatW, treatH int) *Spawner {
	sp := &Spawner{
		fieldW: fieldW,
		treatW: treatW,
		treatH: treatH,
	}
	sp.Reset(seed)
	return sp
}

// Reset zeroes the frame counter and reseeds the RNG.
func (sp *Spawner) Reset(seed int64) {
	sp.counter = 0
	sp.nextID = 0
	sp.rng = rand.New(rand.NewSource(seed))
}

// Counter returns the number of frames since the last spawn.
func (sp *Spawner) Counter() int {
	return sp.counter
}

// Tick advances the frame counter. When the counter strictly exceeds
// interval it resets to zero and exactly one treat is returned, however far
// the counter overshot.
func (sp *Spawner) Tick(interval int) (Treat, bool) {
	sp.counter++
	if sp.counter <= interval {
		return Treat{}, false
	}
	sp.counter = 0
	return sp.spawn(), true
}

// spawn places a treat just above the visible field at a uniformly random x
// in [0, fieldW - treatW].
func (sp *Spawner) spawn() Treat {
	span := max(sp.fieldW-sp.treatW, 0)
	t := Treat{
		ID: sp.nextID,
		X:  sp.rng.Intn(span + 1),
		Y:  -sp.treatH,
		W:  sp.treatW,
		H:  sp.treatH,
	}
	sp.nextID++
	return t
}
