package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-aquarium/internal/core"
	"github.com/vovakirdan/tui-aquarium/internal/tank"
)

// maxCachedStyles bounds the style cache; fading ink produces many shades.
const maxCachedStyles = 4096

type styleKey struct {
	fg, bg core.RGB
}

// Painter turns compositor runs into truecolor terminal output.
// Each SSH session gets its own painter bound to the session's renderer.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses the process default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{renderer: r, styles: make(map[styleKey]lipgloss.Style)}
}

func (p *Painter) style(fg, bg core.RGB) lipgloss.Style {
	k := styleKey{fg, bg}
	if s, ok := p.styles[k]; ok {
		return s
	}
	if len(p.styles) >= maxCachedStyles {
		clear(p.styles)
	}
	s := p.renderer.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	p.styles[k] = s
	return s
}

// RenderTank paints every row of the tank.
func (p *Painter) RenderTank(t *tank.Tank) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(t.Width()*t.Height()*8 + t.Height())

	for y := range t.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range t.RenderRow(y) {
			sb.WriteString(p.style(run.FG, run.BG).Render(run.Text))
		}
	}
	return sb.String()
}

// StatusLine renders plain text as the bottom bar, cut or padded to width.
func (p *Painter) StatusLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = runewidth.FillRight(runewidth.Truncate(text, width, "…"), width)
	return p.renderer.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("#191970")).
		Render(text)
}

// Screenshot returns the tank as plain text, one line per row.
func Screenshot(t *tank.Tank) string {
	lines := make([]string, t.Height())
	for y := range lines {
		lines[y] = strings.TrimRight(t.RowText(y), " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
