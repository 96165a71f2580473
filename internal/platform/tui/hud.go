package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexring/internal/game"
)

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hudValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudLivesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5050"))
	hudPhaseStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("57")).Padding(0, 1)
	hudBarStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// HUD holds the status bar widgets. It implements game.HUD and is rendered
// under the canvas.
type HUD struct {
	score    int
	level    string
	levelN   int
	levelOf  int
	steps    int
	stepsMax int
	lives    int
}

var _ game.HUD = (*HUD)(nil)

// NewHUD creates an empty status bar.
func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) Score(score int) { h.score = score }

func (h *HUD) Level(name string, n, of int) {
	h.level, h.levelN, h.levelOf = name, n, of
}

func (h *HUD) Steps(n, limit int) { h.steps, h.stepsMax = n, limit }

func (h *HUD) Lives(lives int) { h.lives = lives }

func widget(label, value string) string {
	return hudLabelStyle.Render(label+" ") + hudValueStyle.Render(value)
}

// View renders the status bar for a frame.
func (h *HUD) View(s game.Snapshot, width int) string {
	parts := []string{
		widget("LEVEL", fmt.Sprintf("%d/%d %s", h.levelN, h.levelOf, h.level)),
		widget("SCORE", fmt.Sprintf("%d", h.score)),
		widget("STEPS", fmt.Sprintf("%d/%d", h.steps, h.stepsMax)),
		hudLabelStyle.Render("LIVES ") + hudLivesStyle.Render(strings.Repeat("♥", max(h.lives, 0))),
	}
	if s.Timed {
		parts = append(parts, widget("TIME", clock(s.Remaining)))
	}
	switch s.Phase {
	case game.PhasePaused:
		parts = append(parts, hudPhaseStyle.Render("PAUSED"))
	case game.PhaseEnded:
		parts = append(parts, hudPhaseStyle.Render("GAME OVER"))
	}

	bar := strings.Join(parts, "   ")
	return hudBarStyle.Width(max(width, lipgloss.Width(bar)+2)).Render(bar)
}

// clock formats d as m:ss, rounding up so 0:00 means expired.
func clock(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
