package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/vec"
)

const (
	width           = 60
	height          = 30
	historyCapacity = 600
	minDt           = 1e-6
	maxDt           = 1e3
)

type TickMsg time.Time

// Model steps a population once per displayed frame.
type Model struct {
	name          string
	pop           []physics.Entity
	initial       []physics.Entity
	opts          physics.Options
	dt, initialDt float64
	t             float64
	steps         int
	totals        physics.StepStats
	running       bool
	theme         int
	frameEvery    time.Duration
	canvas        *Canvas
	keHistory     []float64
}

// NewModel copies pop, so the caller's population is never stepped.
func NewModel(name string, pop []physics.Entity, opts physics.Options, dt float64, fps int, theme string) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		name:       name,
		pop:        physics.Clone(pop),
		initial:    physics.Clone(pop),
		opts:       opts,
		dt:         dt,
		initialDt:  dt,
		running:    true,
		theme:      ThemeIndex(theme),
		frameEvery: time.Second / time.Duration(fps),
		canvas:     NewCanvas(width, height),
		keHistory:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frameEvery, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "g":
			m.opts.Gravity = !m.opts.Gravity
		case "c":
			m.opts.Collisions = !m.opts.Collisions
		case "w":
			m.opts.Walls = !m.opts.Walls
		case "+", "=":
			m.dt = min(m.dt*2, maxDt)
		case "-", "_":
			m.dt = max(m.dt/2, minDt)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.totals.Add(m.opts.Step(m.pop, m.dt))
	m.t += m.dt
	m.steps++

	m.keHistory = append(m.keHistory, physics.KineticEnergy(m.pop))
	if len(m.keHistory) > historyCapacity {
		m.keHistory = m.keHistory[1:]
	}
}

// reset restores the initial population and dt. Toggled interactions stay
// as they are.
func (m *Model) reset() {
	m.pop = physics.Clone(m.initial)
	m.dt = m.initialDt
	m.t = 0
	m.steps = 0
	m.totals = physics.StepStats{}
	m.keHistory = m.keHistory[:0]
}

// project maps unit-square coordinates onto the largest square of dots
// that fits the canvas, y down.
func (m *Model) project(p physics.Vec, r float64) (x, y, pr int) {
	cw, ch := m.canvas.Dots()
	size := float64(min(cw, ch))
	return int(p.X * size), int(p.Y * size), int(r * size)
}

func (m *Model) draw() {
	m.canvas.Clear()

	cw, ch := m.canvas.Dots()
	size := min(cw, ch) - 1
	m.canvas.SetPen("240")
	m.canvas.DrawLine(0, size, size, size)
	m.canvas.DrawLine(size, 0, size, size)

	for i := range m.pop {
		e := &m.pop[i]
		x, y, r := m.project(e.Position, e.Radius)
		m.canvas.SetPen(lipgloss.Color(MomentumHex(e)))
		m.canvas.FillCircle(x, y, r)
	}
	m.canvas.SetPen("")
}

// View renders the canvas beside a panel of run statistics.
func (m Model) View() string {
	theme := Themes[m.theme]
	st := theme.styles()

	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(st.header.Render(GradientText(strings.ToUpper(m.name), theme.Primary, theme.Accent)) + "\n")
	if m.running {
		s.WriteString(st.running.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	if len(m.keHistory) > 1 {
		chart := asciigraph.Plot(m.keHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic energy"))
		s.WriteString(graphStyle.Foreground(theme.Accent).Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.3f", m.t))
	row("Step", fmt.Sprintf("%d", m.steps))
	row("dt", fmt.Sprintf("%.4g", m.dt))
	row("Planets", fmt.Sprintf("%d", len(m.pop)))
	row("|P|", fmt.Sprintf("%.4g", vec.Length(physics.TotalMomentum(m.pop))))
	row("KE", fmt.Sprintf("%.4g", physics.KineticEnergy(m.pop)))
	row("Collisions", fmt.Sprintf("%d", m.totals.Collisions))
	row("Wall hits", fmt.Sprintf("%d", m.totals.WallHits))

	s.WriteString("\n")
	s.WriteString(st.label.Render("Gravity") + toggle(st, m.opts.Gravity) + "\n")
	s.WriteString(st.label.Render("Collisions") + toggle(st, m.opts.Collisions) + "\n")
	s.WriteString(st.label.Render("Walls") + toggle(st, m.opts.Walls) + "\n")
	s.WriteString(st.label.Render("Theme") + st.value.Render(theme.Name) + "\n\n")

	s.WriteString(Separator(30, theme.Muted) + "\n")
	s.WriteString(st.help.Render("SP:Pause R:Reset Q:Quit\nG:Gravity C:Collide W:Walls\n+/-:dt T:Theme"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// Population returns a copy of the population as currently displayed.
func (m Model) Population() []physics.Entity {
	return physics.Clone(m.pop)
}

func (m Model) Time() float64             { return m.t }
func (m Model) Options() physics.Options  { return m.opts }
func (m Model) Dt() float64               { return m.dt }
func (m Model) Totals() physics.StepStats { return m.totals }
func (m Model) Running() bool             { return m.running }
func (m Model) ThemeName() string         { return Themes[m.theme].Name }
