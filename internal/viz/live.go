package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/atharvRsharma/Pendulums/internal/chain"
	"github.com/atharvRsharma/Pendulums/internal/metrics"
	"github.com/atharvRsharma/Pendulums/internal/motion"
	"github.com/atharvRsharma/Pendulums/internal/sim"
)

const (
	canvasWidth  = 64
	canvasHeight = 24
	graphSamples = 200

	// World window matching the original ortho projection.
	worldMin = -2.0
	worldMax = 2.0
)

var (
	canvasStyle   = lipgloss.NewStyle().Padding(1, 2)
	statsStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	divergedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model is the bubbletea view over one simulation. Each tick advances one
// fixed timestep; key presses mutate the chain between ticks, which keeps
// the input contract (edits never race an in-progress step).
type Model struct {
	sim      *sim.Simulation
	canvas   *Canvas
	fps      int
	running  bool
	xHistory []float64
}

// NewModel wraps a simulation for live terminal display at the given frame
// rate.
func NewModel(s *sim.Simulation, fps int) Model {
	return Model{
		sim:      s,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		fps:      fps,
		running:  true,
		xHistory: make([]float64, 0, graphSamples),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the simulation on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.sim.AddLink()
		case "d", "backspace":
			m.sim.RemoveLink()
		case " ":
			m.running = !m.running
		case "r":
			m.sim.Reset()
			m.xHistory = m.xHistory[:0]
		}
	case TickMsg:
		if m.running {
			m.sim.Step()
			tip := m.sim.TipPosition()
			m.xHistory = append(m.xHistory, tip.X)
			if len(m.xHistory) > graphSamples {
				m.xHistory = m.xHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// project maps a world point onto canvas sub-pixels. World y grows up,
// screen y grows down.
func project(p chain.Point) (int, int) {
	sx := (p.X - worldMin) / (worldMax - worldMin) * float64(canvasWidth*2)
	sy := (worldMax - p.Y) / (worldMax - worldMin) * float64(canvasHeight*4)
	return int(sx), int(sy)
}

func (m Model) draw() {
	m.canvas.Clear()

	for _, p := range m.sim.Trace().Points() {
		x, y := project(p)
		m.canvas.Set(x, y)
	}

	joints := chain.JointPositions(m.sim.Chain())
	px, py := project(joints[0])
	m.canvas.DrawDot(px, py)
	for _, joint := range joints[1:] {
		x, y := project(joint)
		m.canvas.DrawLine(px, py, x, y)
		m.canvas.DrawDot(x, y)
		px, py = x, y
	}
}

// View renders the chain, trace, and stats panel.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("PENDULUM CHAIN") + "\n")
	s.WriteString(status + "\n\n")

	if len(m.xHistory) > 1 {
		graph := asciigraph.Plot(m.xHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("tip x"),
		)
		s.WriteString(graphStyle.Render(graph) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.sim.Time())) + "\n")
	s.WriteString(labelStyle.Render("Links") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Chain().Len())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.3f", metrics.Total(m.sim.Chain()))) + "\n")
	s.WriteString(labelStyle.Render("Trace") + valueStyle.Render(fmt.Sprintf("%d/%d", m.sim.Trace().Len(), m.sim.Trace().Cap())) + "\n")
	if motion.Diverged(m.sim.Chain()) {
		s.WriteString(divergedStyle.Render("DIVERGED") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nA:Add link  D:Remove/Clear\nSP:Pause R:Reset Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
