package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gatefall/internal/asset"
	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
	"github.com/vovakirdan/gatefall/internal/game"
)

// Layout constants
const (
	hudRows       = 1 // Header line above the play area
	spriteTimeout = 5 * time.Second
)

// Options configure the terminal host. ScreenW and ScreenH are the terminal
// size until the first WindowSizeMsg; a zero TickRate uses the config fps
// and a zero Seed is time based.
type Options struct {
	core.RuntimeConfig
	Logger        *log.Logger // nil = discard
	ScreenshotDir string      // "" = ~/.gatefall/screenshots
}

// assetSettledMsg reports that the sprite load finished.
type assetSettledMsg struct {
	err error
}

// Model is the Bubble Tea model for the game screen.
// State shared with the driver lives behind pointers so that value copies of
// the model made by Bubble Tea all see the same session.
type Model struct {
	cfg      config.GameConfig
	opts     Options
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	canvas   *core.CellCanvas
	sprite   *asset.Sprite
	hud      *hud
	frames   *scheduler
	driver   *game.Driver
	logger   *log.Logger
	width    int
	height   int
	started  bool
	quitting bool
}

// NewModel creates a game screen for the given configuration.
func NewModel(cfg config.GameConfig, opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.Loop.FPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		cfg:    cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(0, 0),
		sprite: asset.New(),
		hud:    &hud{},
		frames: &scheduler{},
		logger: opts.Logger,
	}
	m.canvas = core.NewCellCanvas(m.screen, cfg.Display.CellWidth, cfg.Display.CellHeight)
	m.driver = game.NewDriver(cfg, game.NewRandomSource(opts.Seed), game.Host{
		RequestFrame: m.frames.request,
		Surface:      m.canvas,
		Asset:        m.sprite,
		Score:        m.hud,
		Restart:      m.hud,
		Logger:       opts.Logger,
	})
	m.resize(opts.ScreenW, opts.ScreenH)
	return m
}

// Driver returns the loop driver run by the model.
func (m Model) Driver() *game.Driver {
	return m.driver
}

// Init starts loading the sprite. The game starts once the load settles.
func (m Model) Init() tea.Cmd {
	return loadSpriteCmd(m.sprite, m.cfg.Player.Sprite)
}

func loadSpriteCmd(s *asset.Sprite, src string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), spriteTimeout)
		defer cancel()
		return assetSettledMsg{err: s.Load(ctx, src)}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assetSettledMsg:
		return m.handleAsset(msg)

	case FrameMsg:
		m.driver.Frame(time.Time(msg))

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}

	return m, m.frames.next(m.opts.TickRate)
}

func (m Model) handleAsset(msg assetSettledMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.logger.Debug("sprite loaded", "source", spriteName(m.cfg.Player.Sprite))
	case errors.Is(msg.err, asset.ErrDisabled):
		m.logger.Debug("sprite disabled, drawing fallback shape")
	default:
		m.logger.Warn("sprite unavailable, drawing fallback shape", "err", msg.err)
	}

	if !m.started {
		m.started = true
		m.driver.Start(m.fieldSize())
	}
	return m, m.frames.next(m.opts.TickRate)
}

// handleKey processes keyboard input. A key bound to an action is consumed
// by that action only.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.driver.Jump()
	case core.ActionRestart:
		m.driver.Restart()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	}

	return m, m.frames.next(m.opts.TickRate)
}

// handleMouse maps a left press in the play area to a jump and a left press
// on the visible restart button to a restart.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	x, y := float64(msg.X), float64(msg.Y)
	switch {
	case m.playArea().Contains(x, y):
		m.driver.Jump()
	case m.hud.restart && m.restartButton().Contains(x, y):
		m.driver.Restart()
	}
}

// playArea returns the play area in terminal cells.
func (m Model) playArea() core.Rect {
	return core.NewRect(0, hudRows, float64(m.screen.Width()), float64(m.screen.Height()))
}

// restartButton returns the restart button in terminal cells. It opens the
// footer line right below the play area.
func (m Model) restartButton() core.Rect {
	w := lipgloss.Width(buttonStyle.Render(restartLabel))
	return core.NewRect(0, float64(hudRows+m.screen.Height()), float64(w), 1)
}

// resize lays out the header, play area and footer for a width x height
// terminal and hands the new logical size to the driver.
func (m *Model) resize(width, height int) {
	m.width, m.height = max(width, 0), max(height, 0)
	m.help.Width = m.width

	rows := max(m.height-hudRows-lipgloss.Height(m.footer()), 1)
	m.screen.Resize(m.width, rows)
	m.driver.Resize(m.fieldSize())

	// Frames stop after game over; keep the final picture at the new size
	if s := m.driver.Session(); s != nil && m.driver.State() == game.StateOver {
		game.Render(m.canvas, s, m.sprite)
	}
}

// fieldSize returns the logical size of the play area.
func (m Model) fieldSize() (float64, float64) {
	return m.canvas.LogicalSize()
}

func (m Model) footer() string {
	return m.hud.footer(m.help.View(m.keys))
}

// saveScreenshot writes the current play area as plain text.
func (m Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".gatefall", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("gatefall_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the header, the play area and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.header(m.width),
		RenderScreen(m.screen),
		m.footer(),
	)
}

func spriteName(src string) string {
	if src == "" {
		return "embedded"
	}
	return src
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.GameConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
