package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
)

// Gate is a pair of blocking segments with a passable gap between them.
// Top + Gap + Bottom always equals the field height the gate was spawned for.
type Gate struct {
	X      float64 // Left edge, decreases every tick
	W      float64 // Segment width
	Top    float64 // Height of the top segment
	Gap    float64 // Height of the opening
	Bottom float64 // Height of the bottom segment
	Scored bool    // Whether the actor has already passed this gate
}

// Trailing returns the x-coordinate of the gate's right edge.
func (g Gate) Trailing() float64 {
	return g.X + g.W
}

// TopRect returns the collision rectangle for the top segment.
func (g Gate) TopRect() core.Rect {
	return core.NewRect(g.X, 0, g.W, g.Top)
}

// BottomRect returns the collision rectangle for the bottom segment.
func (g Gate) BottomRect(fieldH float64) core.Rect {
	return core.NewRect(g.X, fieldH-g.Bottom, g.W, g.Bottom)
}

// Hits reports whether r overlaps either segment.
func (g Gate) Hits(r core.Rect, fieldH float64) bool {
	return r.Intersects(g.TopRect()) || r.Intersects(g.BottomRect(fieldH))
}

// RandomSource is the randomness a Generator draws from.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Generator produces gates with randomized gap size and placement.
type Generator struct {
	rng RandomSource
	cfg config.Obstacles
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng RandomSource, cfg config.Obstacles) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// Spawn creates a gate at the right edge of a fieldW x fieldH play area.
// Fields too small for the margins and the gap are clamped: the gap shrinks
// so that no segment height is ever negative.
func (gen *Generator) Spawn(fieldW, fieldH float64) Gate {
	gate := Gate{X: fieldW, W: gen.cfg.PipeWidth}
	if !(fieldH > 0) {
		return gate
	}

	gap := float64(gen.cfg.GapMin)
	if spread := gen.cfg.GapMax - gen.cfg.GapMin; spread > 0 {
		gap += float64(gen.rng.Intn(spread + 1))
	}

	marginTop := gen.cfg.MarginTop
	room := math.Max(0, fieldH-gen.cfg.MarginBottom-gap-marginTop)
	top := math.Floor(marginTop + gen.rng.Float64()*room)
	top = math.Max(top, marginTop)

	// Degenerate fields
	top = math.Min(top, fieldH)
	gap = math.Min(gap, fieldH-top)

	gate.Top = top
	gate.Gap = gap
	gate.Bottom = fieldH - top - gap
	return gate
}
