// Package config provides YAML-based game configuration loading for gatefall.
package config

// GameConfig contains all tunable constants of the game.
// Distances are logical layout pixels, times are seconds.
type GameConfig struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	Loop      Loop      `yaml:"loop"`
	Display   Display   `yaml:"display"`
}

// Physics defines the vertical motion of the actor and the gate scroll speed.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // px/s², downward
	JumpVelocity float64 `yaml:"jump_velocity"` // px/s, negative = up
	PipeSpeed    float64 `yaml:"pipe_speed"`    // px/s, leftward
	FloorEpsilon float64 `yaml:"floor_epsilon"` // px kept between actor and floor
}

// Obstacles defines gate geometry and cadence.
type Obstacles struct {
	SpawnInterval float64 `yaml:"spawn_interval"`
	PipeWidth     float64 `yaml:"pipe_width"`
	GapMin        int     `yaml:"gap_min"`
	GapMax        int     `yaml:"gap_max"`
	MarginTop     float64 `yaml:"margin_top"`
	MarginBottom  float64 `yaml:"margin_bottom"`
}

// Player defines how the actor is sized and placed from the play-area size.
type Player struct {
	SizeFactor   float64 `yaml:"size_factor"`
	SizeMin      float64 `yaml:"size_min"`
	SizeMax      float64 `yaml:"size_max"`
	XFactor      float64 `yaml:"x_factor"`
	XMin         float64 `yaml:"x_min"`
	StartYFactor float64 `yaml:"start_y_factor"`
	Sprite       string  `yaml:"sprite"` // PNG path; "" = embedded, "none" = fallback shape only
}

// Loop defines frame pacing.
type Loop struct {
	FPS     int     `yaml:"fps"`
	MaxStep float64 `yaml:"max_step"` // upper bound for a single dt
}

// Display maps terminal cells to logical pixels.
type Display struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}
