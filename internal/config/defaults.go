package config

import (
	_ "embed"
)

//go:embed defaults/gatefall.yaml
var defaultYAML []byte

// DefaultGameConfig returns the default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: Physics{
			Gravity:      2000,
			JumpVelocity: -520,
			PipeSpeed:    180,
			FloorEpsilon: 1,
		},
		Obstacles: Obstacles{
			SpawnInterval: 1.4,
			PipeWidth:     60,
			GapMin:        140,
			GapMax:        180,
			MarginTop:     30,
			MarginBottom:  30,
		},
		Player: Player{
			SizeFactor:   0.08,
			SizeMin:      28,
			SizeMax:      44,
			XFactor:      0.12,
			XMin:         40,
			StartYFactor: 0.45,
			Sprite:       "",
		},
		Loop: Loop{
			FPS:     60,
			MaxStep: 0.033,
		},
		Display: Display{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
