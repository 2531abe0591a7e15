package tui

import (
	"strings"
	"time"

	"github.com/apex/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifesim/internal/sim"
)

const (
	historyCapacity = 600
	// statusRows is the space under the board reserved for the status line.
	statusRows = 1
)

type TickMsg time.Time

// Model adapts a sim.Controller to Bubble Tea. Key, mouse and resize
// messages become controller events; TickMsg drives generations.
type Model struct {
	ctrl      *sim.Controller
	bindings  sim.Bindings
	interval  time.Duration
	theme     Theme
	styles    styles
	history   []float64
	showGraph bool
	showMap   bool
	showHelp  bool
}

// NewModel wraps ctrl. tickRate is generations per second.
func NewModel(ctrl *sim.Controller, tickRate int, themeName string) Model {
	if tickRate < 1 {
		tickRate = 1
	}
	theme := GetTheme(themeName)
	return Model{
		ctrl:     ctrl,
		bindings: sim.DefaultBindings(),
		interval: time.Second / time.Duration(tickRate),
		theme:    theme,
		styles:   newStyles(theme),
		history:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		rows := max(0, msg.Height-statusRows)
		m.ctrl.Handle(sim.ResizeEvent{Cols: msg.Width, Rows: rows})
		log.WithFields(log.Fields{"cols": msg.Width, "rows": rows}).Debug("resize")
	case TickMsg:
		before := m.ctrl.Generation()
		m.ctrl.Handle(sim.TickEvent{})
		if m.ctrl.Generation() != before {
			m.record()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "g":
		m.showGraph = !m.showGraph
		return m, nil
	case "m":
		m.showMap = !m.showMap
		return m, nil
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
		log.WithField("theme", m.theme.Name).Debug("theme changed")
		return m, nil
	case "esc":
		m.showHelp, m.showGraph, m.showMap = false, false, false
		return m, nil
	}

	action := m.bindings.Lookup(msg.String())
	if action == sim.ActionNone {
		return m, nil
	}

	before := m.ctrl.Generation()
	m.ctrl.Handle(sim.KeyEvent{Action: action})
	log.WithField("action", action.String()).Debug("input")

	switch action {
	case sim.ActionClear:
		m.history = m.history[:0]
	case sim.ActionStep:
		if m.ctrl.Generation() != before {
			m.record()
		}
	}

	if !m.ctrl.Running() {
		log.WithField("generation", m.ctrl.Generation()).Info("quit")
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	// The board is hidden behind overlays.
	if m.showHelp || m.showGraph || m.showMap {
		return
	}

	var button sim.Button
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = sim.ButtonPrimary
	case tea.MouseButtonRight:
		button = sim.ButtonSecondary
	default:
		return
	}

	// Clicks on the status line are not on the board.
	if msg.Y >= m.ctrl.Camera().ViewportHeight {
		return
	}
	m.ctrl.Handle(sim.PointerEvent{Button: button, Col: msg.X / 2, Row: msg.Y})
}

// record appends the current population to the graph history.
func (m *Model) record() {
	m.history = append(m.history, float64(m.ctrl.Grid().LiveCells()))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// View renders the board, or an overlay, above the status line.
func (m Model) View() string {
	var body string
	switch {
	case m.showHelp:
		body = m.styles.help()
	case m.showGraph:
		body = m.graph()
	case m.showMap:
		cam := m.ctrl.Camera()
		body = m.styles.alive.Render(minimap(m.ctrl.Grid(), cam, cam.ViewportWidth*2, cam.ViewportHeight).String())
	default:
		body = m.styles.renderFrame(m.ctrl)
	}
	return body + "\n" + m.styles.statusLine(m.ctrl.Status())
}

func (m Model) graph() string {
	if len(m.history) < 2 {
		return m.styles.hint.Render("population graph: waiting for generations...")
	}
	cam := m.ctrl.Camera()
	height := max(3, cam.ViewportHeight-3)
	width := max(10, cam.ViewportWidth*2-12)
	chart := asciigraph.Plot(m.history,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("population"),
	)
	return strings.TrimRight(chart, "\n")
}

// Run starts the full-screen UI and blocks until the user quits.
func Run(ctrl *sim.Controller, tickRate int, themeName string) error {
	p := tea.NewProgram(NewModel(ctrl, tickRate, themeName), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
