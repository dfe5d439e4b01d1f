package tui

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/budgettrack/internal/chart"
	"github.com/theirongolddev/budgettrack/internal/cli"
	"github.com/theirongolddev/budgettrack/internal/tui/components"
	"github.com/theirongolddev/budgettrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const logTableHeight = 8

func logColumns(width int) []table.Column {
	amountW := 14
	idxW := 4
	catW := width - amountW - idxW - 6 // cell padding
	if catW < 10 {
		catW = 10
	}
	return []table.Column{
		{Title: "#", Width: idxW},
		{Title: "Category", Width: catW},
		{Title: "Amount", Width: amountW},
	}
}

func newLogTable() table.Model {
	t := theme.Active

	tbl := table.New(
		table.WithColumns(logColumns(40)),
		table.WithHeight(logTableHeight),
		table.WithFocused(false),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(t.Accent).
		Background(t.Surface).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(t.TextPrimary).Background(t.Surface)
	// The table never takes focus, so the newest row is highlighted instead
	styles.Selected = styles.Selected.Foreground(t.AccentBright).Background(t.Surface).Bold(false)
	tbl.SetStyles(styles)
	return tbl
}

// refreshTable rebuilds the table rows from the session log.
func (a *App) refreshTable() {
	rows := make([]table.Row, 0, len(a.session.Log))
	for i, e := range a.session.Log {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			string(e.Category),
			cli.FormatAmount(a.currency, e.Amount.InexactFloat64()),
		})
	}
	a.table.SetRows(rows)
	a.table.GotoBottom()
}

func (a *App) resizeTable() {
	w := a.logCardWidth()
	a.table.SetColumns(logColumns(components.CardInnerWidth(w)))
	a.table.SetWidth(components.CardInnerWidth(w))
}

func (a App) logCardWidth() int {
	cw := a.contentWidth()
	if a.isCompactLayout() {
		return cw
	}
	return cw - cw*2/5
}

func (a App) renderLogCard(w int) string {
	t := theme.Active
	stats := a.session.Stats()
	innerW := components.CardInnerWidth(w)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	if len(a.session.Log) == 0 {
		b.WriteString(dimStyle.Render("No expenses yet"))
	} else {
		b.WriteString(a.table.View())
	}
	b.WriteString("\n\n")

	barW := innerW - 16
	if barW < 10 {
		barW = 10
	}
	if a.session.HasBudgetLimit() {
		b.WriteString(components.BudgetBar("Budget used", stats.BudgetUsedPercent, 11, barW))
	} else {
		b.WriteString(dimStyle.Render("Budget used  (no limit set)"))
	}

	remaining := chart.RemainingBudget(a.session.LimitOrZero(), a.session.Log)
	if len(remaining) > 0 {
		vals := make([]float64, len(remaining))
		for i, d := range remaining {
			vals[i] = d.InexactFloat64()
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Remaining   "))
		b.WriteString(components.Sparkline(vals, t.Blue))
	}

	return components.ContentCard("Expense Log", b.String(), w)
}
