package config

import (
	"fmt"
	"math"
)

// ValidationError describes a configuration value that cannot be used.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// MaxGap bounds obstacles.gap_max. It is far taller than any terminal play
// area and keeps the random gap draw within int range.
const MaxGap = 1 << 20

// Validate checks that the configuration describes a playable game.
// Every float must be finite. Gravity may be any finite value; everything that
// divides time or space must be positive.
func (c GameConfig) Validate() error {
	finite := []struct {
		name  string
		value float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_velocity", c.Physics.JumpVelocity},
		{"physics.pipe_speed", c.Physics.PipeSpeed},
		{"physics.floor_epsilon", c.Physics.FloorEpsilon},
		{"obstacles.spawn_interval", c.Obstacles.SpawnInterval},
		{"obstacles.pipe_width", c.Obstacles.PipeWidth},
		{"obstacles.margin_top", c.Obstacles.MarginTop},
		{"obstacles.margin_bottom", c.Obstacles.MarginBottom},
		{"player.size_factor", c.Player.SizeFactor},
		{"player.size_min", c.Player.SizeMin},
		{"player.size_max", c.Player.SizeMax},
		{"player.x_factor", c.Player.XFactor},
		{"player.x_min", c.Player.XMin},
		{"player.start_y_factor", c.Player.StartYFactor},
		{"loop.max_step", c.Loop.MaxStep},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return ValidationError{
				Code:    "NOT_FINITE",
				Message: fmt.Sprintf("%s must be a finite number, got %v", f.name, f.value),
			}
		}
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"physics.pipe_speed", c.Physics.PipeSpeed},
		{"obstacles.spawn_interval", c.Obstacles.SpawnInterval},
		{"obstacles.pipe_width", c.Obstacles.PipeWidth},
		{"loop.fps", float64(c.Loop.FPS)},
		{"loop.max_step", c.Loop.MaxStep},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
		{"player.size_min", c.Player.SizeMin},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return ValidationError{
				Code:    "NOT_POSITIVE",
				Message: fmt.Sprintf("%s must be positive, got %v", p.name, p.value),
			}
		}
	}

	if c.Physics.JumpVelocity >= 0 {
		return ValidationError{
			Code:    "JUMP_DIRECTION",
			Message: fmt.Sprintf("physics.jump_velocity must be negative (upward), got %v", c.Physics.JumpVelocity),
		}
	}
	if c.Physics.FloorEpsilon < 0 {
		return ValidationError{
			Code:    "NEGATIVE",
			Message: fmt.Sprintf("physics.floor_epsilon must not be negative, got %v", c.Physics.FloorEpsilon),
		}
	}
	if c.Obstacles.GapMin < 0 || c.Obstacles.GapMin > c.Obstacles.GapMax || c.Obstacles.GapMax > MaxGap {
		return ValidationError{
			Code:    "GAP_RANGE",
			Message: fmt.Sprintf("obstacles gap range [%d, %d] is invalid (max %d)", c.Obstacles.GapMin, c.Obstacles.GapMax, MaxGap),
		}
	}
	if c.Obstacles.MarginTop < 0 || c.Obstacles.MarginBottom < 0 {
		return ValidationError{
			Code:    "NEGATIVE",
			Message: "obstacles margins must not be negative",
		}
	}
	if c.Player.SizeMin > c.Player.SizeMax {
		return ValidationError{
			Code:    "SIZE_RANGE",
			Message: fmt.Sprintf("player size range [%v, %v] is invalid", c.Player.SizeMin, c.Player.SizeMax),
		}
	}
	return nil
}
