package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	hudTitle     = "GATEFALL"
	restartLabel = "Restart"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Padding(0, 1)
)

// hud is the score display and the restart affordance of the game screen.
// The driver updates it through ShowScore and SetVisible.
type hud struct {
	score   int
	restart bool
}

// ShowScore sets the displayed score.
func (h *hud) ShowScore(score int) {
	h.score = score
}

// SetVisible shows or hides the restart button.
func (h *hud) SetVisible(visible bool) {
	h.restart = visible
}

// header renders the title on the left and the score on the right.
func (h *hud) header(width int) string {
	title := titleStyle.Render(hudTitle)
	score := scoreStyle.Render(fmt.Sprintf("Score: %d", h.score))
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(score), 1)
	return title + strings.Repeat(" ", gap) + score
}

// footer renders the restart button, when visible, followed by help.
func (h *hud) footer(help string) string {
	if !h.restart {
		return help
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttonStyle.Render(restartLabel), "  ", help)
}
