package game

import (
	"math"

	"github.com/vovakirdan/gatefall/internal/config"
)

// EndCause tells why a session ended.
type EndCause int

const (
	CauseNone  EndCause = iota
	CauseFloor          // Actor touched the bottom of the play area
	CauseGate           // Actor overlapped a gate segment
)

// String returns a human-readable name for the cause.
func (c EndCause) String() string {
	switch c {
	case CauseFloor:
		return "floor"
	case CauseGate:
		return "gate"
	default:
		return "none"
	}
}

// UpdateResult summarizes what happened during one Update.
type UpdateResult struct {
	Scored  int      // Gates passed this tick
	Spawned bool     // Whether a gate was spawned this tick
	Ended   bool     // Whether this tick set the terminal flag
	Cause   EndCause // First collision detected this tick
}

// Update advances the session by dt seconds.
// dt is clamped to [0, cfg.Loop.MaxStep]. A session that is already over is
// left untouched; the tick that ends a session still runs to completion.
func Update(s *Session, dt float64, gen *Generator, cfg config.GameConfig) UpdateResult {
	var res UpdateResult
	if s.Over {
		return res
	}
	if !(dt > 0) {
		dt = 0
	}
	dt = math.Min(dt, cfg.Loop.MaxStep)
	s.Ticks++

	a := &s.Actor
	h := s.Field.H

	// Integrate velocity, then position
	a.VY += cfg.Physics.Gravity * dt
	a.Y += a.VY * dt

	// Floor ends the session
	floor := h - cfg.Physics.FloorEpsilon
	if a.Y+a.H >= floor {
		a.Y = floor - a.H
		res.end(CauseFloor)
	}

	// Ceiling only stops the actor
	if a.Y <= 0 {
		a.Y = 0
		a.VY = 0
	}

	// Spawn on a fixed cadence; overflow past the interval is dropped
	s.SpawnTimer += dt
	if s.SpawnTimer >= cfg.Obstacles.SpawnInterval {
		s.Gates = append(s.Gates, gen.Spawn(s.Field.W, h))
		s.SpawnTimer = 0
		res.Spawned = true
	}

	bounds := a.Bounds()
	for i := range s.Gates {
		g := &s.Gates[i]
		g.X -= cfg.Physics.PipeSpeed * dt

		if g.Hits(bounds, h) {
			res.end(CauseGate)
		}

		if !g.Scored && g.Trailing() < a.X {
			g.Scored = true
			s.Score++
			res.Scored++
		}
	}

	// Drop gates that left the screen, keeping order
	kept := s.Gates[:0]
	for _, g := range s.Gates {
		if g.Trailing() > 0 {
			kept = append(kept, g)
		}
	}
	s.Gates = kept

	if res.Ended {
		s.Over = true
		s.Cause = res.Cause
	}
	return res
}

func (r *UpdateResult) end(cause EndCause) {
	if !r.Ended {
		r.Cause = cause
	}
	r.Ended = true
}
