package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/lifesim/internal/sim"
)

// Each cell is two terminal columns wide.
const (
	glyphAlive = "██"
	glyphDead  = ". "
	glyphBlank = "  "
)

type styles struct {
	alive, dead       lipgloss.Style
	label, value      lipgloss.Style
	running, paused   lipgloss.Style
	key, hint, header lipgloss.Style
	box               lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		alive:   lipgloss.NewStyle().Foreground(t.Alive),
		dead:    lipgloss.NewStyle().Foreground(t.Dead),
		label:   lipgloss.NewStyle().Foreground(t.Muted),
		value:   lipgloss.NewStyle().Foreground(t.Text),
		running: lipgloss.NewStyle().Foreground(t.Running).Bold(true),
		paused:  lipgloss.NewStyle().Foreground(t.Paused).Bold(true),
		key:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		hint:    lipgloss.NewStyle().Foreground(t.Muted),
		header:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 2),
	}
}

func (s styles) glyph(g sim.Glyph) (string, lipgloss.Style) {
	switch g {
	case sim.GlyphAlive:
		return glyphAlive, s.alive
	case sim.GlyphDead:
		return glyphDead, s.dead
	default:
		return glyphBlank, lipgloss.NewStyle()
	}
}

// renderFrame draws the board. Runs of equal glyphs on a row are styled
// together so a wide terminal does not pay one escape sequence per cell.
func (s styles) renderFrame(c *sim.Controller) string {
	var b strings.Builder
	var run strings.Builder
	row, runGlyph := 0, sim.Glyph(-1)

	flush := func() {
		if run.Len() == 0 {
			return
		}
		_, st := s.glyph(runGlyph)
		b.WriteString(st.Render(run.String()))
		run.Reset()
	}

	for p := range c.Frame() {
		if p.Row != row {
			flush()
			b.WriteByte('\n')
			row = p.Row
		}
		if p.Glyph != runGlyph {
			flush()
			runGlyph = p.Glyph
		}
		text, _ := s.glyph(p.Glyph)
		run.WriteString(text)
	}
	flush()
	return b.String()
}

func (s styles) statusLine(st sim.Status) string {
	state := s.running.Render("RUNNING")
	if st.Paused {
		state = s.paused.Render("PAUSED ")
	}
	field := func(label string, v any) string {
		return s.label.Render(label+" ") + s.value.Render(fmt.Sprint(v))
	}
	return strings.Join([]string{
		state,
		field("pos", fmt.Sprintf("%d,%d", st.CameraX, st.CameraY)),
		field("speed", st.Speed),
		field("live", st.LiveCells),
		field("gen", st.Generation),
		s.hint.Render("?:help"),
	}, "  ")
}

var helpRows = [][2]string{
	{"w a s d / h j k l", "pan"},
	{"+ / -", "pan speed"},
	{"space", "pause / resume"},
	{"n", "step one generation while paused"},
	{"c", "clear"},
	{"r", "randomize"},
	{"mouse left / right", "paint alive / dead"},
	{"g", "population graph"},
	{"m", "minimap of the whole grid"},
	{"t", "cycle theme"},
	{"?", "toggle help"},
	{"q", "quit"},
}

func (s styles) help() string {
	var b strings.Builder
	b.WriteString(s.header.Render("KEYBOARD SHORTCUTS") + "\n\n")
	for _, r := range helpRows {
		b.WriteString(s.key.Render(fmt.Sprintf("%-20s", r[0])) + s.hint.Render(r[1]) + "\n")
	}
	return s.box.Render(strings.TrimRight(b.String(), "\n"))
}
