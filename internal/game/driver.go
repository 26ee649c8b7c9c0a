package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gatefall/internal/config"
)

// State is the lifecycle state of the loop driver.
type State int

const (
	StateIdle    State = iota // Waiting for Start
	StateRunning              // Frames advance the session
	StateOver                 // Session ended, waiting for Restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// ScoreDisplay receives the score whenever it changes.
type ScoreDisplay interface {
	ShowScore(score int)
}

// RestartControl is the restart affordance, visible only after game over.
type RestartControl interface {
	SetVisible(visible bool)
}

// Host bundles the capabilities the driver borrows from its environment.
// RequestFrame must arrange for exactly one later call to Driver.Frame.
// Any field may be nil.
type Host struct {
	RequestFrame func()
	Surface      Surface
	Asset        Asset
	Score        ScoreDisplay
	Restart      RestartControl
	Logger       *log.Logger
}

// Driver runs the Idle -> Running -> Over -> Running state machine on top of
// host frame callbacks. It is not safe for concurrent use; all calls must
// come from the host's single loop.
type Driver struct {
	cfg      config.GameConfig
	host     Host
	gen      *Generator
	field    Field
	session  *Session
	state    State
	last     time.Time
	primed   bool
	shown    int
	sessions int
}

// NewDriver creates an idle driver. Gates are drawn from rng.
func NewDriver(cfg config.GameConfig, rng RandomSource, host Host) *Driver {
	if host.Logger == nil {
		host.Logger = log.New(io.Discard)
	}
	return &Driver{
		cfg:  cfg,
		host: host,
		gen:  NewGenerator(rng, cfg.Obstacles),
	}
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Session returns the current session, or nil before Start.
func (d *Driver) Session() *Session {
	return d.session
}

// Start begins the first session on a w x h play area.
// It has no effect unless the driver is idle.
func (d *Driver) Start(w, h float64) {
	if d.state != StateIdle {
		return
	}
	d.field = Field{W: w, H: h}
	d.begin()
}

// Restart begins a new session after game over. It has no effect otherwise.
func (d *Driver) Restart() {
	if d.state != StateOver {
		return
	}
	d.host.Logger.Debug("restart", "previous_score", d.session.Score)
	d.begin()
}

// Jump forwards a jump command to the running session.
func (d *Driver) Jump() {
	if d.state != StateRunning {
		return
	}
	d.session.Jump(d.cfg.Physics)
}

// Resize records a new play-area size. The running session picks it up on
// its next tick; calling it repeatedly with the same size is harmless.
func (d *Driver) Resize(w, h float64) {
	d.field = Field{W: w, H: h}
	if d.session != nil {
		d.session.Resize(w, h)
	}
}

// Frame is the host's animation callback. The first frame of a session only
// starts the clock; later frames step the simulation by the elapsed time.
// Frames outside the running state are ignored.
func (d *Driver) Frame(now time.Time) {
	if d.state != StateRunning {
		return
	}

	if !d.primed {
		d.last = now
		d.primed = true
		d.render()
		d.requestFrame()
		return
	}

	dt := now.Sub(d.last).Seconds()
	d.last = now

	Update(d.session, dt, d.gen, d.cfg)
	if d.session.Score != d.shown {
		d.showScore(d.session.Score)
	}
	d.render()

	if d.session.Over {
		d.state = StateOver
		if d.host.Restart != nil {
			d.host.Restart.SetVisible(true)
		}
		d.host.Logger.Info("session over",
			"session", d.sessions,
			"score", d.session.Score,
			"cause", d.session.Cause,
			"ticks", d.session.Ticks,
		)
		return
	}
	d.requestFrame()
}

func (d *Driver) begin() {
	d.sessions++
	d.session = NewSession(d.field, d.cfg)
	d.state = StateRunning
	d.primed = false

	d.showScore(0)
	if d.host.Restart != nil {
		d.host.Restart.SetVisible(false)
	}
	d.host.Logger.Info("session started",
		"session", d.sessions,
		"width", d.field.W,
		"height", d.field.H,
	)
	d.requestFrame()
}

func (d *Driver) showScore(score int) {
	d.shown = score
	if d.host.Score != nil {
		d.host.Score.ShowScore(score)
	}
}

func (d *Driver) render() {
	if d.host.Surface != nil {
		Render(d.host.Surface, d.session, d.host.Asset)
	}
}

func (d *Driver) requestFrame() {
	if d.host.RequestFrame != nil {
		d.host.RequestFrame()
	}
}
