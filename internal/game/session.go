package game

import (
	"github.com/vovakirdan/gatefall/internal/config"
)

// Field is the logical play area in layout pixels.
type Field struct {
	W, H float64
}

// Session holds everything that changes during one game session.
// A new Session is created on every start or restart.
type Session struct {
	Field      Field
	Actor      Actor
	Gates      []Gate   // Spawn order, which is also left-to-right screen order
	Score      int      // Gates passed
	Over       bool     // Terminal flag, never reset within a session
	Cause      EndCause // Why the session ended; CauseNone while running
	SpawnTimer float64  // Seconds since the last spawn
	Ticks      int      // Update steps applied
}

// NewSession creates a fresh session for the given play area.
func NewSession(field Field, cfg config.GameConfig) *Session {
	return &Session{
		Field: field,
		Actor: NewActor(field, cfg.Player),
		Gates: make([]Gate, 0, 8),
	}
}

// Resize changes the play area used by subsequent ticks.
// The actor keeps its size and position; only new gates see the new height.
func (s *Session) Resize(w, h float64) {
	s.Field = Field{W: w, H: h}
}

// Jump gives the actor an upward impulse, replacing its current velocity.
// It does nothing once the session is over.
func (s *Session) Jump(cfg config.Physics) {
	if s.Over {
		return
	}
	s.Actor.VY = cfg.JumpVelocity
}
