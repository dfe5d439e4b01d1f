package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/budgettrack/internal/chart"
	"github.com/theirongolddev/budgettrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	markerCategory  = '●'
	markerRemaining = '✕'
	glyphSolid      = '─'
	glyphDashed     = '╌'
	glyphGrid       = '·'
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	if lo > 0 {
		lo = 0
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

type cell struct {
	r  rune
	fg lipgloss.Color
}

// plot maps chart coordinates onto a character grid.
type plot struct {
	cells       [][]cell
	w, h        int
	floor, ceil float64
	xMin, xMax  int
}

func newPlot(w, h int, floor, ceil float64, xMin, xMax int) *plot {
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
		for j := range cells[i] {
			cells[i][j] = cell{r: ' '}
		}
	}
	return &plot{cells: cells, w: w, h: h, floor: floor, ceil: ceil, xMin: xMin, xMax: xMax}
}

func (p *plot) row(y float64) int {
	r := int(math.Round((p.ceil - y) / (p.ceil - p.floor) * float64(p.h-1)))
	return min(max(r, 0), p.h-1)
}

func (p *plot) col(x int) int {
	if p.xMax == p.xMin {
		return 0
	}
	c := int(math.Round(float64(x-p.xMin) / float64(p.xMax-p.xMin) * float64(p.w-1)))
	return min(max(c, 0), p.w-1)
}

func (p *plot) set(r, c int, ch rune, fg lipgloss.Color) {
	if r < 0 || r >= p.h || c < 0 || c >= p.w {
		return
	}
	p.cells[r][c] = cell{r: ch, fg: fg}
}

func (p *plot) hline(y float64, ch rune, fg lipgloss.Color) {
	r := p.row(y)
	for c := 0; c < p.w; c++ {
		p.set(r, c, ch, fg)
	}
}

// segment connects two grid positions left to right.
func (p *plot) segment(c0, r0, c1, r1 int, fg lipgloss.Color) {
	if c1 < c0 {
		c0, r0, c1, r1 = c1, r1, c0, r0
	}
	if c0 == c1 {
		p.vfill(c0, r0, r1, fg)
		return
	}
	at := func(c int) int {
		f := float64(c-c0) / float64(c1-c0)
		return int(math.Round(float64(r0) + f*float64(r1-r0)))
	}
	for c := c0; c < c1; c++ {
		ra, rb := at(c), at(c+1)
		switch {
		case rb == ra:
			p.set(ra, c, glyphSolid, fg)
		case rb < ra:
			if ra-rb > 1 {
				p.vfill(c, rb+1, ra-1, fg)
			}
			p.set(ra, c, '╱', fg)
		default:
			if rb-ra > 1 {
				p.vfill(c, ra+1, rb-1, fg)
			}
			p.set(ra, c, '╲', fg)
		}
	}
}

func (p *plot) vfill(c, ra, rb int, fg lipgloss.Color) {
	if ra > rb {
		ra, rb = rb, ra
	}
	for r := ra; r <= rb; r++ {
		p.set(r, c, '│', fg)
	}
}

func (p *plot) series(s chart.Series, fg lipgloss.Color) {
	for i := 0; i+1 < len(s.Points); i++ {
		a, b := s.Points[i], s.Points[i+1]
		p.segment(p.col(a.X), p.row(a.Y), p.col(b.X), p.row(b.Y), fg)
	}
}

func (p *plot) markers(s chart.Series, marker rune, fg lipgloss.Color) {
	if !s.Markers {
		return
	}
	for _, pt := range s.Points {
		p.set(p.row(pt.Y), p.col(pt.X), marker, fg)
	}
}

// LineChart renders c as a line chart filling width x height cells: title,
// y-axis label, plot area with tick labels, x axis, x label and legend.
func LineChart(c chart.Chart, width, height int) string {
	t := theme.Active

	legend := chartLegend(c, width)
	plotH := height - 5 - len(legend)
	if width < 30 || plotH < 3 {
		return c.Title + "\n" + Sparkline(c.Remaining.Values(), t.Blue)
	}

	// Y range always includes zero
	lo, hi := c.Bounds()
	if lo > 0 {
		lo = 0
	}
	if hi <= lo {
		hi = lo + 1
	}
	step := chartTickStep(hi - lo)
	maxIntervals := max(1, plotH/2)
	var floor, ceil float64
	var intervals int
	for {
		floor = math.Floor(lo/step) * step
		ceil = math.Ceil(hi/step) * step
		if ceil <= floor {
			ceil = floor + step
		}
		intervals = int(math.Round((ceil - floor) / step))
		if intervals <= maxIntervals {
			break
		}
		step *= 2
	}

	yLabelW := 4
	for i := 0; i <= intervals; i++ {
		yLabelW = max(yLabelW, len(formatChartLabel(floor+step*float64(i)))+1)
	}
	plotW := width - yLabelW - 1

	p := newPlot(plotW, plotH, floor, ceil, c.XMin, c.XMax)

	tickLabels := make(map[int]string, intervals+1)
	for i := 0; i <= intervals; i++ {
		v := floor + step*float64(i)
		tickLabels[p.row(v)] = formatChartLabel(v)
	}

	xTicks := chartXTicks(c.XMin, c.XMax, plotW)

	if c.Grid {
		for r := range tickLabels {
			for col := 0; col < plotW; col += 2 {
				p.set(r, col, glyphGrid, t.Border)
			}
		}
		for _, x := range xTicks {
			col := p.col(x)
			for r := 0; r < plotH; r++ {
				p.set(r, col, glyphGrid, t.Border)
			}
		}
	}

	p.hline(c.Income.Y, lineGlyph(c.Income.Style), t.Red)
	p.hline(c.Budget.Y, lineGlyph(c.Budget.Style), t.Green)

	for _, s := range c.Categories {
		p.series(s, t.CategoryColor(s.Name))
	}
	p.series(c.Remaining, t.Blue)

	for _, s := range c.Categories {
		p.markers(s, markerCategory, t.CategoryColor(s.Name))
	}
	p.markers(c.Remaining, markerRemaining, t.Blue)

	base := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := base.Foreground(t.TextDim)
	titleStyle := base.Foreground(t.TextPrimary).Bold(true)
	labelStyle := base.Foreground(t.TextMuted)

	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, titleStyle.Render(c.Title),
		lipgloss.WithWhitespaceBackground(t.Surface)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(c.YLabel))
	b.WriteString("\n")

	for r := 0; r < plotH; r++ {
		axis := "│"
		if _, ok := tickLabels[r]; ok {
			axis = "┤"
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[r])))
		b.WriteString(axisStyle.Render(axis))
		b.WriteString(renderCells(p.cells[r], base))
		b.WriteString("\n")
	}

	// X axis with entry index labels
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW) + "└" + strings.Repeat("─", plotW)))
	b.WriteString("\n")

	buf := []rune(strings.Repeat(" ", plotW))
	lastEnd := -1
	for _, x := range xTicks {
		lbl := strconv.Itoa(x)
		pos := p.col(x)
		if pos+len(lbl) > plotW {
			pos = plotW - len(lbl)
		}
		if pos <= lastEnd || pos < 0 {
			continue
		}
		copy(buf[pos:], []rune(lbl))
		lastEnd = pos + len(lbl)
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW+1) + strings.TrimRight(string(buf), " ")))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(lipgloss.PlaceHorizontal(plotW, lipgloss.Center, labelStyle.Render(c.XLabel),
		lipgloss.WithWhitespaceBackground(t.Surface)))

	for _, l := range legend {
		b.WriteString("\n")
		b.WriteString(l)
	}

	return b.String()
}

func lineGlyph(s chart.LineStyle) rune {
	if s == chart.Dashed {
		return glyphDashed
	}
	return glyphSolid
}

// renderCells styles runs of same-colored cells together.
func renderCells(row []cell, base lipgloss.Style) string {
	var b strings.Builder
	var run strings.Builder
	var runFg lipgloss.Color

	flush := func() {
		if run.Len() == 0 {
			return
		}
		s := base
		if runFg != "" {
			s = s.Foreground(runFg)
		}
		b.WriteString(s.Render(run.String()))
		run.Reset()
	}

	for i, c := range row {
		if i > 0 && c.fg != runFg {
			flush()
		}
		runFg = c.fg
		run.WriteRune(c.r)
	}
	flush()
	return b.String()
}

// chartLegend lays out one entry per category, both reference lines and the
// remaining-budget series, wrapping to width.
func chartLegend(c chart.Chart, width int) []string {
	t := theme.Active
	base := lipgloss.NewStyle().Background(t.Surface)
	text := base.Foreground(t.TextMuted)

	var items []string
	for _, s := range c.Categories {
		items = append(items, base.Foreground(t.CategoryColor(s.Name)).Render(string(markerCategory))+text.Render(" "+s.Name))
	}
	items = append(items,
		base.Foreground(t.Red).Render(strings.Repeat(string(lineGlyph(c.Income.Style)), 2))+text.Render(" "+c.Income.Name),
		base.Foreground(t.Green).Render(strings.Repeat(string(lineGlyph(c.Budget.Style)), 2))+text.Render(" "+c.Budget.Name),
		base.Foreground(t.Blue).Render(string(markerRemaining))+text.Render(" "+c.Remaining.Name),
	)

	sep := base.Render("   ")
	var lines []string
	line := ""
	for _, it := range items {
		switch {
		case line == "":
			line = it
		case lipgloss.Width(line)+lipgloss.Width(sep)+lipgloss.Width(it) > width:
			lines = append(lines, line)
			line = it
		default:
			line += sep + it
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// chartXTicks picks entry indices to label so labels keep a gap between them.
func chartXTicks(xMin, xMax, plotW int) []int {
	n := xMax - xMin + 1
	labelW := len(strconv.Itoa(xMax)) + 1
	step := 1
	if n > 1 {
		spacing := float64(plotW-1) / float64(n-1)
		for float64(step)*spacing < float64(labelW) && step < n {
			step++
		}
	}
	var ticks []int
	for x := xMin; x <= xMax; x += step {
		ticks = append(ticks, x)
	}
	return ticks
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v == 0:
		return "0"
	case v < 0:
		return "-" + formatChartLabel(-v)
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
