package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
	"github.com/vovakirdan/gatefall/internal/game"
)

func simRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 22, TickRate: 60, Seed: seed}
}

func TestSimulateFallsToFloor(t *testing.T) {
	r := simulate(config.DefaultGameConfig(), simOptions{Frames: 3600, Runtime: simRuntime(1)})

	if r.State != game.StateOver || r.Cause != game.CauseFloor {
		t.Fatalf("state=%v cause=%v, expected over by floor", r.State, r.Cause)
	}
	if r.Score != 0 {
		t.Errorf("score = %d, expected 0", r.Score)
	}
	// The priming frame does not tick
	if r.Ticks != r.Frames-1 {
		t.Errorf("ticks = %d, frames = %d", r.Ticks, r.Frames)
	}
	if !strings.Contains(r.Screen.String(), game.GameOverTitle) {
		t.Error("final frame should show the game-over caption")
	}
}

func TestSimulateFrameBudget(t *testing.T) {
	r := simulate(config.DefaultGameConfig(), simOptions{Frames: 10, JumpEvery: 5, Runtime: simRuntime(1)})

	if r.State != game.StateRunning {
		t.Errorf("state = %v, expected running", r.State)
	}
	if r.Frames != 10 || r.Ticks != 9 {
		t.Errorf("frames=%d ticks=%d, expected 10 and 9", r.Frames, r.Ticks)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	opts := simOptions{Frames: 2000, JumpEvery: 18, Runtime: simRuntime(42)}

	a := simulate(config.DefaultGameConfig(), opts)
	b := simulate(config.DefaultGameConfig(), opts)

	if a.State != b.State || a.Score != b.Score || a.Ticks != b.Ticks || a.Gates != b.Gates || a.Cause != b.Cause {
		t.Errorf("same seed should reproduce the run: %+v vs %+v", a, b)
	}
	if a.Screen.String() != b.Screen.String() {
		t.Error("same seed should reproduce the final frame")
	}
}
