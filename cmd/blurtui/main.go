// Command blurtui is an interactive shell for the blur overlay. It drives a
// shared overlay.Controller the way the engine's desktop demos do: start and
// stop the overlay, cycle effects, and nudge parameters live while watching
// the engine's frame rate.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glasskit/blurwindow"
	"github.com/glasskit/blurwindow/overlay"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var effectNames = map[blurwindow.EffectType]string{
	blurwindow.EffectGaussian: "gaussian",
	blurwindow.EffectBox:      "box",
	blurwindow.EffectKawase:   "kawase",
	blurwindow.EffectRadial:   "radial",
}

var noiseNames = map[blurwindow.NoiseType]string{
	blurwindow.NoiseWhite:   "white",
	blurwindow.NoiseSin:     "sin",
	blurwindow.NoiseGrid:    "grid",
	blurwindow.NoisePerlin:  "perlin",
	blurwindow.NoiseSimplex: "simplex",
	blurwindow.NoiseVoronoi: "voronoi",
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	ctrl *overlay.Controller

	effect    blurwindow.EffectType
	noise     blurwindow.NoiseType
	strength  float32
	blurParam float32
	rain      float32

	fps     float32
	lastErr error
}

func newModel(ctrl *overlay.Controller) model {
	return model{
		ctrl:      ctrl,
		strength:  1.0,
		blurParam: 8.0,
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.fps = m.ctrl.FPS()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "s":
			effect := m.effect
			m.lastErr = m.ctrl.EnsureStarted(&effect)

		case "x":
			m.ctrl.EnsureStopped()
			m.lastErr = nil

		case "e":
			m.effect = (m.effect + 1) % 4
			t := m.effect
			m.ctrl.UpdateEffect(overlay.EffectUpdate{Type: &t})

		case "n":
			m.noise = (m.noise + 1) % 6
			t := m.noise
			m.ctrl.UpdateNoise(overlay.NoiseUpdate{Type: &t})

		case "up", "down":
			if msg.String() == "up" {
				m.strength = clamp(m.strength+0.05, 0, 1)
			} else {
				m.strength = clamp(m.strength-0.05, 0, 1)
			}
			v := m.strength
			m.ctrl.UpdateEffect(overlay.EffectUpdate{Strength: &v})

		case "left", "right":
			if msg.String() == "right" {
				m.blurParam = clamp(m.blurParam+1, 0, 64)
			} else {
				m.blurParam = clamp(m.blurParam-1, 0, 64)
			}
			v := m.blurParam
			m.ctrl.UpdateEffect(overlay.EffectUpdate{Param: &v})

		case "+", "=", "-":
			if msg.String() == "-" {
				m.rain = clamp(m.rain-0.1, 0, 1)
			} else {
				m.rain = clamp(m.rain+0.1, 0, 1)
			}
			v := m.rain
			m.ctrl.UpdateRain(overlay.RainUpdate{Intensity: &v})
		}
	}
	return m, nil
}

func (m model) View() string {
	status := idleStyle.Render("stopped")
	if m.ctrl.Active() {
		status = activeStyle.Render(fmt.Sprintf("running  %.1f fps", m.fps))
	}

	s := titleStyle.Render("blurwindow") + "  " + status + "\n\n"
	s += fmt.Sprintf("  effect    %s\n", effectNames[m.effect])
	s += fmt.Sprintf("  strength  %.2f\n", m.strength)
	s += fmt.Sprintf("  param     %.0f\n", m.blurParam)
	s += fmt.Sprintf("  noise     %s\n", noiseNames[m.noise])
	s += fmt.Sprintf("  rain      %.1f\n", m.rain)

	if m.lastErr != nil {
		s += "\n" + errStyle.Render("error: "+m.lastErr.Error()) + "\n"
	}

	s += "\n" + helpStyle.Render(
		"s start · x stop · e effect · n noise · ↑↓ strength · ←→ param · +- rain · q quit")
	return s + "\n"
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	configPath := flag.String("config", "overlay.toml", "overlay configuration file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := overlay.LoadConfig(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctrl := overlay.New(cfg, logger)
	defer ctrl.Close()

	p := tea.NewProgram(newModel(ctrl))
	if _, err := p.Run(); err != nil {
		logger.Error("tui", "error", err)
		os.Exit(1)
	}
}
