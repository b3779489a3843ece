package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paraglider/internal/core"
)

type cellColors struct {
	fg, bg color.RGBA
}

// Painter turns Screen buffers into styled strings for one output.
// Each SSH session gets its own Painter bound to the session's renderer.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[cellColors]lipgloss.Style
}

// NewPainter creates a painter for r. A nil renderer means the local terminal.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{renderer: r, styles: make(map[cellColors]lipgloss.Style)}
}

// Status styles dim status-line text.
func (p *Painter) Status(text string) string {
	return p.renderer.NewStyle().Foreground(lipgloss.Color("241")).Render(text)
}

func (p *Painter) style(k cellColors) lipgloss.Style {
	if st, ok := p.styles[k]; ok {
		return st
	}
	st := p.renderer.NewStyle().
		Foreground(lipgloss.Color(core.Hex(k.fg))).
		Background(lipgloss.Color(core.Hex(k.bg)))
	p.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
