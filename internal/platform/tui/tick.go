// Package tui hosts the gatefall loop driver inside a Bubble Tea program.
// It turns Bubble Tea messages into driver calls and draws the driver's
// cell canvas to the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is the animation callback requested by the driver.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that delivers one FrameMsg after a
// frame interval at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// scheduler records frame requests made by the driver between messages.
// Bubble Tea only accepts commands as Update return values, so the request
// is deferred until the current message has been handled.
type scheduler struct {
	pending bool
}

func (s *scheduler) request() {
	s.pending = true
}

// next returns a frame command if one was requested since the last call.
func (s *scheduler) next(fps int) tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return frameCmd(fps)
}
