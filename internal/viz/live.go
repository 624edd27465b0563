package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/config"
	"github.com/san-kum/sandbox2d/internal/experiment"
	"github.com/san-kum/sandbox2d/internal/metrics"
	"github.com/san-kum/sandbox2d/internal/physics"
)

const (
	width           = 80
	height          = 24
	statsWidth      = 45
	historyCapacity = 600
	maxDt           = 0.1
	// maxDebugLines bounds the debug overlay; dense particle scenes
	// produce one line per interacting pair.
	maxDebugLines = 2000
	gifPath       = "sandbox.gif"
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model drives a scene in real time and renders it to a braille canvas.
type Model struct {
	exp           *experiment.Experiment
	canvas        *Canvas
	width, height int
	running       bool
	started       time.Time
	last          time.Time
	t             float64
	energyHistory []float64
	recorder      *Recorder
	recording     bool
	showHelp      bool
	message       string
}

func NewModel(exp *experiment.Experiment) Model {
	return Model{
		exp:           exp,
		canvas:        NewCanvas(width, height),
		width:         width,
		height:        height,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.advance(time.Time(msg))
		m.draw()
		if m.recording {
			m.recorder.Capture(m.canvas)
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scene := m.exp.Scene()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "d":
		scene.Debug = !scene.Debug
	case "r":
		m.reset()
	case "s":
		m.spawn()
	case "a":
		m.randomize()
	case "t":
		NextTheme()
	case "g":
		m.toggleRecording()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// advance steps the scene by the wall-clock time since the previous
// tick, capped at maxDt so a stalled terminal does not explode the
// integration.
func (m *Model) advance(now time.Time) {
	if m.started.IsZero() {
		m.started = now
		m.last = now.Add(-time.Second / 60)
	}
	dt := min(now.Sub(m.last).Seconds(), maxDt)
	m.last = now

	scene := m.exp.Scene()
	scene.RecordFrame(now.Sub(m.started).Seconds())
	if !m.running {
		return
	}

	scene.Tick(dt)
	m.t += dt

	m.energyHistory = append(m.energyHistory, metrics.Kinetic(scene.Bodies()))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *Model) reset() {
	if err := m.exp.Reset(); err != nil {
		m.message = err.Error()
		return
	}
	m.t = 0
	m.energyHistory = m.energyHistory[:0]
	m.message = "reset"
}

// spawn adds a random particle in particle mode and a circle at a
// random position otherwise.
func (m *Model) spawn() {
	scene, reg := m.exp.Scene(), m.exp.Particles()
	if m.exp.Mode() == physics.ModeParticle {
		if b, ok := reg.SpawnRandom(scene.Width, scene.Height); ok {
			scene.AddBody(b)
			m.message = "spawned " + b.Group
		} else {
			m.message = "no groups to spawn"
		}
		return
	}
	p := reg.RandomPoint(scene.Width, scene.Height)
	scene.AddBody(body.NewCircle(p.X, p.Y, config.DefaultRadius))
	m.message = fmt.Sprintf("spawned circle at %.0f,%.0f", p.X, p.Y)
}

func (m *Model) randomize() {
	if m.exp.Mode() != physics.ModeParticle {
		return
	}
	cfg := m.exp.Config()
	m.exp.Particles().RandomizeAttraction(cfg.Attraction.Min, cfg.Attraction.Max)
	m.message = "attraction randomized"
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording = true
		m.recorder = NewRecorder()
		return
	}
	m.recording = false
	if m.recorder.Len() == 0 {
		return
	}
	if err := m.recorder.Save(gifPath); err != nil {
		m.message = "gif: " + err.Error()
	} else {
		m.message = "saved " + gifPath
	}
	m.recorder = nil
}

func (m *Model) resize(w, h int) {
	cw := w - statsWidth - 6
	ch := h - 4
	if cw < 10 || ch < 5 {
		return
	}
	m.width, m.height = cw, ch
	m.canvas = NewCanvas(cw, ch)
}

// project maps scene coordinates to canvas dots.
func (m *Model) project(x, y float64) (int, int) {
	scene := m.exp.Scene()
	cw, ch := m.canvas.Dots()
	return int(x / scene.Width * float64(cw-1)), int(y / scene.Height * float64(ch-1))
}

func (m *Model) scale(r float64) int {
	cw, _ := m.canvas.Dots()
	return int(r / m.exp.Scene().Width * float64(cw))
}

func (m *Model) draw() {
	m.canvas.Clear()
	scene := m.exp.Scene()

	cw, ch := m.canvas.Dots()
	m.canvas.DrawPolygon([]int{0, cw - 1, cw - 1, 0}, []int{0, 0, ch - 1, ch - 1})

	for _, b := range scene.Bodies() {
		m.drawBody(b)
	}

	if scene.Debug {
		for i, l := range scene.DebugLines() {
			if i >= maxDebugLines {
				break
			}
			x0, y0 := m.project(l.A.X, l.A.Y)
			x1, y1 := m.project(l.B.X, l.B.Y)
			m.canvas.DrawLine(x0, y0, x1, y1)
		}
	}
}

func (m *Model) drawBody(b *body.Body) {
	cx, cy := m.project(b.X(), b.Y())
	switch s := b.Shape.(type) {
	case body.Circle:
		m.canvas.DrawCircle(cx, cy, m.scale(s.Radius))
	case body.Polygon:
		world := s.World(b.Position)
		xs, ys := make([]int, len(world)), make([]int, len(world))
		for i, v := range world {
			xs[i], ys[i] = m.project(v.X, v.Y)
		}
		m.canvas.DrawPolygon(xs, ys)
	default:
		m.canvas.Set(cx, cy)
	}
}

func (m Model) View() string {
	scene := m.exp.Scene()
	bodies := scene.Bodies()

	canvasView := canvasStyle.Foreground(CurrentTheme.Bodies).Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(string(m.exp.Mode()))) + "\n")

	switch {
	case m.recording:
		s.WriteString(StatusRecording.Render("● REC") + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", m.t))
	row("Bodies", fmt.Sprintf("%d", len(bodies)))
	row("FPS", fmt.Sprintf("%d", scene.FPS()))
	row("Energy", fmt.Sprintf("%.3g", metrics.Kinetic(bodies)))
	row("Momentum", fmt.Sprintf("%.3g", metrics.LinearMomentum(bodies).Magnitude()))
	debug := "off"
	if scene.Debug {
		debug = fmt.Sprintf("%d lines", len(scene.DebugLines()))
	}
	row("Debug", debug)

	if groups := m.exp.Particles().Groups(); len(groups) > 0 {
		s.WriteString("\nGROUPS\n")
		for _, g := range groups {
			s.WriteString("  " + Swatch(GroupColor(g.Color), g.Name) + "\n")
		}
	}

	if m.message != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(m.message) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause D:Debug R:Reset Q:Quit\nS:Spawn  A:Attract  G:Record ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  D        - Toggle force lines       ║
║  R        - Rebuild the scene        ║
║  S        - Spawn a body             ║
║  A        - Randomize attraction     ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run starts the live view in the alternate screen and blocks until the
// user quits.
func Run(exp *experiment.Experiment) error {
	_, err := tea.NewProgram(NewModel(exp), tea.WithAltScreen()).Run()
	return err
}
