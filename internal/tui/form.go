package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgettrack/internal/cli"
	"github.com/theirongolddev/budgettrack/internal/ledger"
	"github.com/theirongolddev/budgettrack/internal/model"
	"github.com/theirongolddev/budgettrack/internal/tui/components"
	"github.com/theirongolddev/budgettrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form focus order, top to bottom.
const (
	focusIncome = iota
	focusBudget
	focusCategory
	focusAmount
	focusAdd
	focusGraph
	focusCount // sentinel
)

// formState holds the expense form widgets.
type formState struct {
	income   textinput.Model
	budget   textinput.Model
	amount   textinput.Model
	category int
	focus    int
}

func newFormInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 20
	ti.Prompt = ""
	return ti
}

func newFormState(income, budget string) formState {
	f := formState{
		income: newFormInput("0"),
		budget: newFormInput("0"),
		amount: newFormInput("0.00"),
	}
	f.income.SetValue(income)
	f.budget.SetValue(budget)

	// Start on the first empty field
	switch {
	case income == "":
		f.focus = focusIncome
	case budget == "":
		f.focus = focusBudget
	default:
		f.focus = focusAmount
	}
	f.applyFocus()
	return f
}

// input snapshots the form for ledger.Submit.
func (f formState) input() ledger.Input {
	return ledger.Input{
		Income:      f.income.Value(),
		BudgetLimit: f.budget.Value(),
		Amount:      f.amount.Value(),
		Category:    f.selectedCategory(),
	}
}

func (f formState) selectedCategory() model.Category {
	cats := model.Categories()
	return cats[f.category%len(cats)]
}

// typing reports whether a text input has focus, so letter keys belong to it.
func (f formState) typing() bool {
	switch f.focus {
	case focusIncome, focusBudget, focusAmount:
		return true
	}
	return false
}

func (f *formState) focused() *textinput.Model {
	switch f.focus {
	case focusIncome:
		return &f.income
	case focusBudget:
		return &f.budget
	case focusAmount:
		return &f.amount
	}
	return nil
}

func (f *formState) applyFocus() {
	f.income.Blur()
	f.budget.Blur()
	f.amount.Blur()
	if ti := f.focused(); ti != nil {
		ti.Focus()
	}
}

func (f *formState) move(delta int) {
	f.focus = (f.focus + delta + focusCount) % focusCount
	f.applyFocus()
}

func (f *formState) cycleCategory(delta int) {
	n := len(model.Categories())
	f.category = (f.category + delta + n) % n
}

func (f formState) focusCmd() tea.Cmd {
	if f.typing() {
		return textinput.Blink
	}
	return nil
}

// update forwards non-key messages and typed characters to the focused input.
func (f formState) update(msg tea.Msg) (formState, tea.Cmd) {
	ti := f.focused()
	if ti == nil {
		return f, nil
	}
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return f, cmd
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		a.form.move(1)
		return a, a.form.focusCmd()
	case "shift+tab", "up":
		a.form.move(-1)
		return a, a.form.focusCmd()
	case "enter":
		switch a.form.focus {
		case focusAmount, focusAdd:
			return a.submit()
		case focusGraph:
			return a.openChart()
		default:
			a.form.move(1)
			return a, a.form.focusCmd()
		}
	}

	if a.form.focus == focusCategory {
		switch msg.String() {
		case "left", "h":
			a.form.cycleCategory(-1)
		case "right", "l", " ":
			a.form.cycleCategory(1)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.update(msg)
	return a, cmd
}

// ─── Rendering ──────────────────────────────────────────────────

func (a App) renderExpensesTab(cw int) string {
	t := theme.Active
	stats := a.session.Stats()

	notSet := func(ok bool, v float64) string {
		if !ok {
			return "(not set)"
		}
		return cli.FormatAmount(a.currency, v)
	}

	remainingColor := t.GreenBright
	if stats.BudgetUsedPercent >= 0.9 {
		remainingColor = t.Red
	}

	metrics := []components.Metric{
		{Label: "Income", Value: notSet(a.session.HasIncome(), stats.Income)},
		{Label: "Budget Limit", Value: notSet(a.session.HasBudgetLimit(), stats.BudgetLimit)},
		{Label: "Spent", Value: cli.FormatAmount(a.currency, stats.CurrentSpend),
			Delta: fmt.Sprintf("%d entries", stats.Entries)},
		{Label: "Remaining", Value: cli.FormatAmount(a.currency, stats.Remaining), Color: remainingColor,
			Delta: cli.FormatPercent(stats.BudgetUsedPercent) + " used"},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(a.renderFormCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderLogCard(cw))
		return b.String()
	}

	widths := []int{cw * 2 / 5, cw - cw*2/5}
	b.WriteString(components.CardRow([]string{
		a.renderFormCard(widths[0]),
		a.renderLogCard(widths[1]),
	}))
	return b.String()
}

func (a App) renderFormCard(w int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	activeLabel := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	lockedStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	row := func(idx int, label, value string) string {
		marker := space.Render("  ")
		ls := labelStyle
		if a.form.focus == idx {
			marker = markerStyle.Render("▸ ")
			ls = activeLabel
		}
		return marker + ls.Render(fmt.Sprintf("%-15s ", label)) + value
	}

	input := func(idx int, ti textinput.Model, locked bool, set string) string {
		if locked {
			return lockedStyle.Render(set + " (set)")
		}
		if a.form.focus == idx {
			return ti.View()
		}
		if ti.Value() == "" {
			return lockedStyle.Render(ti.Placeholder)
		}
		return valueStyle.Render(ti.Value())
	}

	stats := a.session.Stats()

	catColor := t.CategoryColor(string(a.form.selectedCategory()))
	catStyle := lipgloss.NewStyle().Foreground(catColor).Background(t.Surface).Bold(true)
	arrow := lockedStyle
	if a.form.focus == focusCategory {
		arrow = markerStyle
	}
	category := arrow.Render("◂ ") + catStyle.Render(string(a.form.selectedCategory())) + arrow.Render(" ▸")

	button := func(idx int, label string) string {
		if a.form.focus == idx {
			return lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true).
				Render(" " + label + " ")
		}
		return lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).
			Render(" " + label + " ")
	}

	var b strings.Builder
	b.WriteString(row(focusIncome, "Income", input(focusIncome, a.form.income,
		a.session.HasIncome(), cli.FormatAmount(a.currency, stats.Income))))
	b.WriteString("\n")
	b.WriteString(row(focusBudget, "Budget Limit", input(focusBudget, a.form.budget,
		a.session.HasBudgetLimit(), cli.FormatAmount(a.currency, stats.BudgetLimit))))
	b.WriteString("\n")
	b.WriteString(row(focusCategory, "Category", category))
	b.WriteString("\n")
	b.WriteString(row(focusAmount, "Expense Amount", input(focusAmount, a.form.amount, false, "")))
	b.WriteString("\n\n")
	b.WriteString(space.Render("  "))
	b.WriteString(button(focusAdd, "Add Expense"))
	b.WriteString(space.Render("  "))
	b.WriteString(button(focusGraph, "Show Expenses Graph"))

	return components.ContentCard("New Expense", b.String(), w)
}
