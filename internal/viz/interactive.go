package viz

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sandbox2d/internal/config"
	"github.com/san-kum/sandbox2d/internal/experiment"
)

var modeInfo = map[string]string{
	"earth":    "uniform gravity, solid walls",
	"space":    "pairwise newtonian gravity",
	"particle": "grouped attraction rules",
	"space-bh": "barnes-hut gravity",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

var (
	menuTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuIdle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

type presetEntry struct {
	mode, name string
}

// model is the preset picker: choose a preset, tweak a few numbers,
// then hand over to the live view.
type model struct {
	state, cursor int
	entries       []presetEntry
	cfg           *config.Config
	paramNames    []string
	paramCursor   int
	editing       bool
	editBuf       string
	message       string
	termW, termH  int
	liveModel     Model
}

func NewInteractiveApp() *model {
	entries := make([]presetEntry, 0)
	modes := make([]string, 0, len(config.Presets))
	for mode := range config.Presets {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		for _, name := range config.ListPresets(mode) {
			entries = append(entries, presetEntry{mode: mode, name: name})
		}
	}
	return &model{
		state:      stateMenu,
		entries:    entries,
		paramNames: []string{"dt", "seed", "width", "height"},
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateSim {
		newLive, cmd := m.liveModel.Update(msg)
		m.liveModel = newLive.(Model)
		return m, cmd
	}
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.termW, m.termH = msg.Width, msg.Height
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateConfig:
			return m.configKey(msg)
		}
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.entries) == 0 {
			return m, nil
		}
		e := m.entries[m.cursor]
		m.cfg = config.GetPreset(e.mode, e.name)
		m.state, m.paramCursor, m.message = stateConfig, 0, ""
	}
	return m, nil
}

func (m model) param(name string) float64 {
	switch name {
	case "dt":
		return m.cfg.Dt
	case "seed":
		return float64(m.cfg.Seed)
	case "width":
		return m.cfg.Width
	case "height":
		return m.cfg.Height
	}
	return 0
}

func (m *model) setParam(name string, v float64) {
	switch name {
	case "dt":
		m.cfg.Dt = v
	case "seed":
		m.cfg.Seed = int64(v)
	case "width":
		m.cfg.Width = v
	case "height":
		m.cfg.Height = v
	}
}

// step is the h/l increment for each parameter.
func step(name string) float64 {
	switch name {
	case "dt":
		return 0.001
	case "seed":
		return 1
	}
	return 50
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	name := m.paramNames[m.paramCursor]
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				m.setParam(name, val)
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing, m.editBuf = true, fmt.Sprintf("%g", m.param(name))
	case "left", "h":
		m.setParam(name, m.param(name)-step(name))
	case "right", "l":
		m.setParam(name, m.param(name)+step(name))
	case "s":
		return m, m.start()
	}
	return m, nil
}

func (m *model) start() tea.Cmd {
	exp, err := experiment.New(m.cfg)
	if err != nil {
		m.message = err.Error()
		return nil
	}
	m.liveModel = NewModel(exp)
	if m.termW > 0 {
		m.liveModel.resize(m.termW, m.termH)
	}
	m.state = stateSim
	return m.liveModel.Init()
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.liveModel.View()
	}
	return ""
}

func header(title, sub string) string {
	return "\n\n    " + menuTitle.Render(title) + "\n    " + menuSub.Render(sub) + "\n    " + menuSub.Render("─────────────────────────") + "\n\n"
}

func hints(pairs ...string) string {
	var b strings.Builder
	b.WriteString("\n    ")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(menuKey.Render(pairs[i]) + menuIdle.Render(" "+pairs[i+1]+"  "))
	}
	return b.String() + "\n"
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString(header("SANDBOX", "2d physics sandbox"))
	for i, e := range m.entries {
		label := fmt.Sprintf("%-9s %-10s", e.mode, e.name)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuActive.Render(label), menuDesc.Render(modeInfo[e.mode])))
		} else {
			b.WriteString(fmt.Sprintf("      %s\n", menuIdle.Render(label)))
		}
	}
	b.WriteString(hints("j/k", "navigate", "enter", "select", "q", "quit"))
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder
	e := m.entries[m.cursor]
	b.WriteString(header(strings.ToUpper(e.mode+" / "+e.name), modeInfo[e.mode]))
	for i, name := range m.paramNames {
		valStr := fmt.Sprintf("%10.4g", m.param(name))
		if m.editing && i == m.paramCursor {
			valStr = fmt.Sprintf("%10s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", menuCursor.Render("▸"), menuActive.Render(fmt.Sprintf("%-8s", name)), menuDesc.Bold(true).Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", menuIdle.Render(fmt.Sprintf("%-8s", name)), menuIdle.Render(valStr)))
		}
	}
	if m.message != "" {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(CurrentTheme.Warn).Render(m.message) + "\n")
	}
	b.WriteString(hints("j/k", "select", "h/l", "adjust", "s", "start", "esc", "back"))
	return b.String()
}

func RunInteractive() error {
	_, err := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen()).Run()
	return err
}
