package game

import (
	"math"

	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
)

// Actor is the falling entity the player controls.
// X, W and H are fixed for a session; Y and VY change every tick.
type Actor struct {
	X, Y float64 // Top-left corner
	W, H float64 // Hitbox size
	VY   float64 // Vertical velocity, px/s (negative = up)
}

// NewActor sizes and places the actor relative to the play area.
func NewActor(field Field, cfg config.Player) Actor {
	size := core.ClampF(math.Floor(field.W*cfg.SizeFactor), cfg.SizeMin, cfg.SizeMax)
	return Actor{
		X: math.Max(cfg.XMin, math.Floor(field.W*cfg.XFactor)),
		Y: field.H * cfg.StartYFactor,
		W: size,
		H: size,
	}
}

// Bounds returns the actor's collision rectangle.
func (a Actor) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}
