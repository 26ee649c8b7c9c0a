package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gatefall/internal/asset"
	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
	"github.com/vovakirdan/gatefall/internal/game"
)

var (
	flagFrames    int
	flagJumpEvery int
	flagCols      int
	flagRows      int
	flagShow      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI, using a fixed frame step of 1/fps.

The simulation stops when the session ends or after --frames frames and
prints the final state. With a fixed --seed the result is reproducible.

Examples:
  gatefall sim --seed 42
  gatefall sim --frames 600 --jump-every 20 --show`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Jump every N frames (0 = never)")
	simCmd.Flags().IntVar(&flagCols, "cols", 80, "Play area width in cells")
	simCmd.Flags().IntVar(&flagRows, "rows", 22, "Play area height in cells")
	simCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final frame")
}

// simOptions control a headless run.
type simOptions struct {
	Frames    int
	JumpEvery int
	Runtime   core.RuntimeConfig
	Logger    *log.Logger
}

// simReport is the outcome of a headless run.
type simReport struct {
	State  game.State
	Score  int
	Ticks  int
	Frames int
	Gates  int
	Cause  game.EndCause
	Screen *core.Screen
}

// manualScheduler stands in for the terminal's frame timer.
type manualScheduler struct {
	pending bool
}

func (s *manualScheduler) request() {
	s.pending = true
}

// simulate runs the loop driver with a fixed frame step until the session
// ends or the frame budget runs out.
func simulate(cfg config.GameConfig, opts simOptions) simReport {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rc := opts.Runtime
	if rc.TickRate <= 0 {
		rc.TickRate = cfg.Loop.FPS
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	sprite := asset.New()
	if err := sprite.Load(context.Background(), cfg.Player.Sprite); err != nil && !errors.Is(err, asset.ErrDisabled) {
		logger.Warn("sprite unavailable, drawing fallback shape", "err", err)
	}

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	canvas := core.NewCellCanvas(screen, cfg.Display.CellWidth, cfg.Display.CellHeight)
	sched := &manualScheduler{}
	d := game.NewDriver(cfg, game.NewRandomSource(rc.Seed), game.Host{
		RequestFrame: sched.request,
		Surface:      canvas,
		Asset:        sprite,
		Logger:       logger,
	})

	d.Start(canvas.LogicalSize())

	step := time.Second / time.Duration(rc.TickRate)
	now := time.Unix(0, 0)
	frames := 0
	for frames < opts.Frames && sched.pending {
		sched.pending = false
		if opts.JumpEvery > 0 && frames > 0 && frames%opts.JumpEvery == 0 {
			d.Jump()
		}
		d.Frame(now)
		now = now.Add(step)
		frames++
	}

	s := d.Session()
	return simReport{
		State:  d.State(),
		Score:  s.Score,
		Ticks:  s.Ticks,
		Frames: frames,
		Gates:  len(s.Gates),
		Cause:  s.Cause,
		Screen: screen,
	}
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFrames <= 0 || flagCols <= 0 || flagRows <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --frames, --cols and --rows must be positive")
		os.Exit(1)
	}

	report := simulate(cfg, simOptions{
		Frames:    flagFrames,
		JumpEvery: flagJumpEvery,
		Runtime:   runtimeConfig(cfg, flagCols, flagRows),
		Logger:    logger,
	})

	out := cmd.OutOrStdout()
	if flagShow {
		fmt.Fprintln(out, report.Screen.String())
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "state:  %s\n", report.State)
	fmt.Fprintf(out, "score:  %d\n", report.Score)
	fmt.Fprintf(out, "ticks:  %d\n", report.Ticks)
	fmt.Fprintf(out, "frames: %d\n", report.Frames)
	fmt.Fprintf(out, "gates:  %d\n", report.Gates)
	fmt.Fprintf(out, "cause:  %s\n", report.Cause)
}
