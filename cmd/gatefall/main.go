// gatefall is a one-button gate-dodging game for the terminal.
//
// Usage:
//
//	gatefall                 - Play (same as "gatefall play")
//	gatefall play            - Play the game
//	gatefall config          - Print the effective configuration
//	gatefall sim             - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>       - Frame rate (default: from config)
//	--seed <value>     - RNG seed for reproducible gates
//	--config <path>    - Custom YAML configuration
//	--log-file <path>  - Write logs to a file (default: discarded)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gatefall",
	Short: "Gatefall - fly through the gates in your terminal",
	Long: `Gatefall is a one-button terminal game. Keep the bird in the air and
steer it through the gaps between the gates scrolling in from the right.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration
  sim      - Run a headless simulation

Examples:
  gatefall
  gatefall play --seed 42
  gatefall config --default > ~/.gatefall/config.yaml
  gatefall sim --frames 600 --jump-every 20 --show`,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	Run:                runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

// setupLogging points the logger at --log-file. The game owns the terminal,
// so without a file logs are discarded.
func setupLogging(cmd *cobra.Command, args []string) error {
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gatefall",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

// loadConfig resolves the game configuration and applies flag overrides.
func loadConfig() (config.GameConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}
	logger.Info("config loaded", "source", source)
	return cfg, nil
}

// runtimeConfig builds the host parameters for a cols x rows terminal.
func runtimeConfig(cfg config.GameConfig, cols, rows int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if cols > 0 && rows > 0 {
		rc.ScreenW = cols
		rc.ScreenH = rows
	}
	rc.TickRate = cfg.Loop.FPS
	rc.Seed = flagSeed
	return rc
}
