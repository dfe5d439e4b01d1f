// Package tui provides the interactive Bubble Tea expense form for budgettrack.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/theirongolddev/budgettrack/internal/chart"
	"github.com/theirongolddev/budgettrack/internal/cli"
	"github.com/theirongolddev/budgettrack/internal/ledger"
	"github.com/theirongolddev/budgettrack/internal/model"
	"github.com/theirongolddev/budgettrack/internal/tui/components"
	"github.com/theirongolddev/budgettrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabExpenses = iota
	tabSettings
)

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 160
	minContentHeight = 5
)

// Options configures a new App.
type Options struct {
	Currency string
	// Income and Budget prefill the form text. They are parsed lazily like typed input.
	Income string
	Budget string
	Logger *slog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	session  model.Session
	currency string
	log      *slog.Logger

	// Form state
	form  formState
	table table.Model

	// Modal notice (huh form), nil when no notice is open
	notice     *huh.Form
	noticeMsg  ledger.Notice
	showChart  bool
	chartData  chart.Chart
	showHelp   bool
	activeTab  int
	settings   settingsState
	statusNote string

	// UI state
	width  int
	height int
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	currency := opts.Currency
	if currency == "" {
		currency = "Rs"
	}

	a := App{
		currency: currency,
		log:      logger,
		form:     newFormState(opts.Income, opts.Budget),
		table:    newLogTable(),
	}
	a.refreshTable()
	return a
}

// Session returns the current session state.
func (a App) Session() model.Session {
	return a.session
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.focusCmd()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.notice != nil {
			a.notice = a.notice.WithWidth(noticeWidth(msg.Width))
		}
		a.resizeTable()
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Modal notice intercepts all keys until dismissed
		if a.notice != nil {
			if key == "esc" {
				a.closeNotice()
				return a, nil
			}
			return a.updateNotice(msg)
		}

		// Chart view blocks the form until dismissed
		if a.showChart {
			switch key {
			case "esc", "q", "enter":
				a.showChart = false
				return a, a.form.focusCmd()
			}
			return a, nil
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "ctrl+g" {
			return a.openChart()
		}

		if a.activeTab == tabExpenses && a.form.typing() {
			return a.updateForm(msg)
		}

		// Keys below are free to use because no text input has focus
		switch key {
		case "?":
			a.showHelp = true
			return a, nil
		case "q":
			return a, tea.Quit
		}
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, a.form.focusCmd()
			}
		}

		if a.activeTab == tabSettings {
			return a.updateSettings(msg)
		}
		return a.updateForm(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.notice != nil {
		return a.updateNotice(msg)
	}
	if a.activeTab == tabSettings && a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.form, cmd = a.form.update(msg)
	return a, cmd
}

// submit runs the expense handler against the current form values.
func (a App) submit() (tea.Model, tea.Cmd) {
	in := a.form.input()
	res, err := ledger.Submit(&a.session, in)
	if err != nil {
		a.log.Warn("submission rejected", "error", err)
		return a.openNotice(ledger.ErrorNotice(err))
	}

	a.log.Info("expense submitted",
		"outcome", res.Outcome.String(),
		"requested", res.Requested.String(),
		"amount", res.Amount.String(),
		"category", string(res.Category),
		"spent", a.session.Spent().String(),
	)

	if res.ClearAmount {
		a.form.amount.SetValue("")
	}
	a.refreshTable()

	if n, ok := res.Notice(a.currency); ok {
		return a.openNotice(n)
	}
	a.statusNote = fmt.Sprintf("Added %s to %s", cli.FormatAmount(a.currency, res.Amount.InexactFloat64()), res.Category)
	return a, nil
}

func (a App) openChart() (tea.Model, tea.Cmd) {
	a.chartData = chart.Build(a.session, chart.Options{Currency: a.currency})
	a.showChart = true
	a.log.Debug("chart opened", "entries", len(a.session.Log))
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showChart {
		return a.viewChart()
	}

	if a.notice != nil {
		return a.viewNotice()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  budgettrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewChart() string {
	t := theme.Active
	statusBar := components.RenderStatusBar(a.width, "[esc] back to form", a.chartData.Title)
	h := a.height - lipgloss.Height(statusBar)
	if h < minContentHeight {
		h = minContentHeight
	}

	body := components.LineChart(a.chartData, a.width, h)
	body = padHeight(truncateHeight(body, h), h)
	body = fillLinesWithBackground(body, a.width, t.Surface)

	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Form", []struct{ key, desc string }{
			{"Tab ↓", "Next field"},
			{"S-Tab ↑", "Previous field"},
			{"← →", "Change category"},
			{"Enter", "Add expense / press button"},
			{"^g", "Show expenses graph"},
		}},
		{"General", []struct{ key, desc string }{
			{"e x", "Expenses / Settings tab"},
			{"Esc", "Close dialog or graph"},
			{"?", "Toggle help"},
			{"q ^c", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	hints := "[tab]next  [enter]add  [^g]graph  [?]help"
	if a.activeTab == tabSettings {
		hints = "[j/k]navigate  [enter]edit  [e]expenses  [q]uit"
	}
	statusBar := components.RenderStatusBar(w, hints, a.statusNote)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabExpenses:
		content = a.renderExpensesTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
