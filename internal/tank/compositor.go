package tank

import (
	"slices"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// Run is a horizontal stretch of one row drawn in a single style.
type Run struct {
	Text  string
	FG    core.RGB
	BG    core.RGB
	Width int // Display cells
}

// Background returns the water color of row y.
func (t *Tank) Background(y int) core.RGB {
	if t.height <= 0 {
		return t.light
	}
	return t.light.Blend(t.dark, float64(y)/float64(t.height))
}

// RenderRow composes row y into runs covering exactly Width() cells.
//
// Entities are laid out left to right. One that starts under a glyph already
// drawn is hidden rather than pushed right, so crowded rows never drift.
// The measured display width is cached on each drawn entity for the next
// tick's collision checks.
func (t *Tank) RenderRow(y int) []Run {
	bg := t.Background(y)

	var row []*Entity
	for _, e := range t.reg.order {
		if e.Y == y {
			row = append(row, e)
		}
	}
	slices.SortStableFunc(row, func(a, b *Entity) int { return a.X - b.X })

	var runs []Run
	cursor := 0
	for _, e := range row {
		if e.X < cursor {
			continue
		}
		w := uniseg.StringWidth(e.Glyph)
		if w == 0 || e.X+w > t.width {
			continue
		}

		if gap := e.X - cursor; gap > 0 {
			runs = append(runs, filler(gap, bg))
		}
		run := Run{Text: e.Glyph, FG: e.FG.Over(bg), BG: bg, Width: w}
		if e.BG != nil {
			run.BG = *e.BG
		}
		runs = append(runs, run)

		e.Width = w
		cursor = e.X + w
	}

	if gap := t.width - cursor; gap > 0 {
		runs = append(runs, filler(gap, bg))
	}
	return runs
}

// RowText returns the plain glyphs of row y, for screenshots.
func (t *Tank) RowText(y int) string {
	var sb strings.Builder
	for _, r := range t.RenderRow(y) {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func filler(n int, bg core.RGB) Run {
	return Run{Text: strings.Repeat(" ", n), FG: bg, BG: bg, Width: n}
}
