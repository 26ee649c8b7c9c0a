package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gatefall/internal/core"
)

func TestHUDHeader(t *testing.T) {
	h := &hud{}
	h.ShowScore(7)

	line := h.header(40)
	if !strings.Contains(line, "Score: 7") || !strings.Contains(line, hudTitle) {
		t.Errorf("header should show title and score, got %q", line)
	}
	if w := lipgloss.Width(line); w != 40 {
		t.Errorf("header width = %d, expected 40", w)
	}

	// Too narrow still keeps both parts
	if line := h.header(5); !strings.Contains(line, "Score: 7") {
		t.Errorf("narrow header lost the score: %q", line)
	}
}

func TestHUDRestartButton(t *testing.T) {
	h := &hud{}

	if strings.Contains(h.footer("help"), restartLabel) {
		t.Error("restart button should be hidden by default")
	}

	h.SetVisible(true)
	footer := h.footer("help")
	if !strings.Contains(footer, restartLabel) || !strings.Contains(footer, "help") {
		t.Errorf("footer should show button and help, got %q", footer)
	}
	if lipgloss.Height(footer) != 1 {
		t.Errorf("footer should stay on one line, got %d", lipgloss.Height(footer))
	}

	h.SetVisible(false)
	if strings.Contains(h.footer("help"), restartLabel) {
		t.Error("restart button should hide again")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "Hi", core.ColorGreen)
	s.DrawText(0, 1, "Go", core.RGB(1, 2, 3))

	out := RenderScreen(s)
	if !strings.Contains(out, "Hi") || !strings.Contains(out, "Go") {
		t.Errorf("rendered screen lost text: %q", out)
	}
	if lipgloss.Height(out) != 2 {
		t.Errorf("rendered height = %d, expected 2", lipgloss.Height(out))
	}
}

func TestStyleFor(t *testing.T) {
	if fg := styleFor(core.RGB(1, 2, 3)).GetForeground(); fg != lipgloss.Color("#010203") {
		t.Errorf("true color foreground = %v, expected #010203", fg)
	}
	if fg := styleFor(core.ColorBrightGreen).GetForeground(); fg != lipgloss.Color("10") {
		t.Errorf("palette foreground = %v, expected 10", fg)
	}
	if fg := styleFor(core.Color(999)).GetForeground(); fg != (lipgloss.NoColor{}) {
		t.Errorf("unknown color should fall back to default, got %v", fg)
	}
}
