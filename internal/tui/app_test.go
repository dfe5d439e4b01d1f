package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/budgettrack/internal/config"
	"github.com/theirongolddev/budgettrack/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlG    = tea.KeyMsg{Type: tea.KeyCtrlG}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(t *testing.T, income, budget string) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a := NewApp(Options{Currency: "Rs", Income: income, Budget: budget})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func press(a App, msgs ...tea.Msg) App {
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

// runCmd executes cmd and returns the messages it produced, expanding
// batches. Commands that block, like cursor blink ticks, are dropped.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// addExpense types amount into the focused amount field and submits it.
func addExpense(a App, amount string) App {
	return press(a, runes(amount), keyEnter)
}

func TestSubmit_AcceptedWithinLimit(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	if a.form.focus != focusAmount {
		t.Fatalf("prefilled form should focus the amount field, got %d", a.form.focus)
	}

	a = addExpense(a, "400")

	s := a.Session()
	if len(s.Log) != 1 || s.Log[0].Amount.String() != "400" || s.Log[0].Category != model.Food {
		t.Fatalf("log = %+v, want one Food entry of 400", s.Log)
	}
	if a.notice != nil {
		t.Errorf("accepted entry opened notice %q", a.noticeMsg.Title)
	}
	if v := a.form.amount.Value(); v != "" {
		t.Errorf("amount field = %q, want cleared", v)
	}
	if !s.HasIncome() || s.Income.String() != "5000" {
		t.Errorf("income = %v, want 5000", s.Income)
	}
}

func TestSubmit_AdjustedShowsNotice(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = addExpense(a, "400")

	// amount -> category, switch to Transport, back to amount
	a = press(a, keyShiftTab, keyRight, keyTab)
	if got := a.form.selectedCategory(); got != model.Transport {
		t.Fatalf("category = %s, want Transport", got)
	}
	a = addExpense(a, "700")

	s := a.Session()
	if len(s.Log) != 2 || s.Log[1].Amount.String() != "600" || s.Log[1].Category != model.Transport {
		t.Fatalf("log = %+v, want second entry clamped to 600 Transport", s.Log)
	}
	if a.notice == nil {
		t.Fatal("adjusted entry should open a notice")
	}
	if a.noticeMsg.Title != "Expense Adjusted" || !strings.Contains(a.noticeMsg.Body, "Rs600.00") {
		t.Errorf("notice = %+v", a.noticeMsg)
	}
	if !strings.Contains(a.View(), "Expense Adjusted") {
		t.Error("notice view should show the title")
	}
	if v := a.form.amount.Value(); v != "" {
		t.Errorf("amount field = %q, want cleared", v)
	}

	// Keys are swallowed by the notice until it is dismissed
	a = press(a, runes("5"))
	if v := a.form.amount.Value(); v != "" {
		t.Errorf("typing behind the notice reached the form: %q", v)
	}
	a = press(a, keyEsc)
	if a.notice != nil {
		t.Error("esc should dismiss the notice")
	}
}

func TestNoticeAcknowledgedWithEnter(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = addExpense(a, "1000")
	a = addExpense(a, "50")
	if a.notice == nil {
		t.Fatal("expected the limit notice")
	}

	m, cmd := a.Update(keyEnter)
	a = m.(App)
	for i := 0; i < 10 && a.notice != nil; i++ {
		msgs := runCmd(cmd)
		if len(msgs) == 0 {
			break
		}
		cmd = nil
		for _, msg := range msgs {
			if _, ok := msg.(tea.QuitMsg); ok {
				t.Fatal("acknowledging a notice must not quit the program")
			}
			var c tea.Cmd
			m, c = a.Update(msg)
			a = m.(App)
			cmd = tea.Batch(cmd, c)
		}
	}

	if a.notice != nil {
		t.Fatalf("enter on OK should close the notice, form state = %v", a.notice.State)
	}
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			t.Fatal("closing the notice emitted tea.Quit")
		}
	}
	if n := len(a.Session().Log); n != 1 {
		t.Errorf("log has %d entries, want 1", n)
	}

	// Back on the form, typing reaches the amount field again
	a = press(a, runes("5"))
	if v := a.form.amount.Value(); v != "5" {
		t.Errorf("amount field = %q after closing the notice, want 5", v)
	}
}

func TestSubmit_LimitReached(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = addExpense(a, "1000")
	a = addExpense(a, "50")

	if n := len(a.Session().Log); n != 1 {
		t.Fatalf("log has %d entries, want 1", n)
	}
	if a.notice == nil || a.noticeMsg.Title != "Budget Limit Reached" {
		t.Fatalf("notice = %+v, want Budget Limit Reached", a.noticeMsg)
	}
	if v := a.form.amount.Value(); v != "" {
		t.Errorf("amount field = %q, want cleared on limit reached", v)
	}
}

func TestSubmit_InvalidInput(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = addExpense(a, "abc")

	s := a.Session()
	if len(s.Log) != 0 {
		t.Fatalf("invalid amount was logged: %+v", s.Log)
	}
	if s.HasIncome() || s.HasBudgetLimit() {
		t.Error("invalid submission must not set income or budget limit")
	}
	if a.notice == nil || a.noticeMsg.Title != "Input Error" {
		t.Fatalf("notice = %+v, want Input Error", a.noticeMsg)
	}
	if v := a.form.amount.Value(); v != "abc" {
		t.Errorf("amount field = %q, invalid input should be kept", v)
	}
}

func TestSubmit_IncomeSticks(t *testing.T) {
	a := newTestApp(t, "", "")
	if a.form.focus != focusIncome {
		t.Fatalf("empty form should focus income, got %d", a.form.focus)
	}

	// income, budget, category, amount
	a = press(a, runes("5000"), keyEnter, runes("1000"), keyEnter, keyTab)
	a = addExpense(a, "100")
	if n := len(a.Session().Log); n != 1 {
		t.Fatalf("log has %d entries, want 1", n)
	}

	// Editing the income text later has no effect
	a.form.income.SetValue("9999")
	a = addExpense(a, "100")
	if got := a.Session().Income.String(); got != "5000" {
		t.Errorf("income = %s, want first value 5000", got)
	}
}

func TestTypingDoesNotTriggerShortcuts(t *testing.T) {
	a := newTestApp(t, "5000", "1000")

	a = press(a, runes("q"), runes("?"), runes("x"))
	if a.showHelp || a.activeTab != tabExpenses {
		t.Fatal("letters typed into a field should not trigger shortcuts")
	}
	if v := a.form.amount.Value(); v != "q?x" {
		t.Errorf("amount field = %q, want q?x", v)
	}
}

func TestQuitFromButton(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = press(a, keyTab) // Add button

	_, cmd := a.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q on a button should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestChartView(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = addExpense(a, "400")

	a = press(a, keyCtrlG)
	if !a.showChart {
		t.Fatal("ctrl+g should open the chart")
	}
	view := a.View()
	for _, want := range []string{"Historic Expense Tracking by Category", "Remaining Budget", "Budget Limit"} {
		if !strings.Contains(view, want) {
			t.Errorf("chart view missing %q", want)
		}
	}
	if n := len(strings.Split(view, "\n")); n != 40 {
		t.Errorf("chart view has %d lines, want 40", n)
	}

	// The form is blocked while the chart is shown
	a = press(a, runes("7"))
	if v := a.form.amount.Value(); v != "" {
		t.Errorf("typing reached the form behind the chart: %q", v)
	}

	a = press(a, keyEsc)
	if a.showChart {
		t.Error("esc should close the chart")
	}
}

func TestGraphButton(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = press(a, keyTab, keyTab, keyEnter)
	if !a.showChart {
		t.Fatal("enter on the graph button should open the chart")
	}
	if len(a.chartData.Categories) != 0 {
		t.Errorf("empty log produced %d category series", len(a.chartData.Categories))
	}
	a = press(a, keyEnter)
	if a.showChart {
		t.Error("enter should close the chart")
	}
}

func TestMainView(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = addExpense(a, "400")

	view := a.View()
	for _, want := range []string{"Expenses", "New Expense", "Expense Log", "Add Expense", "Show Expenses Graph", "Rs400.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("main view missing %q", want)
		}
	}
	if n := len(strings.Split(view, "\n")); n != 40 {
		t.Errorf("main view has %d lines, want 40", n)
	}

	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(m.(App).View(), "Terminal too narrow") {
		t.Error("narrow terminal should show a warning")
	}
}

func TestHelpOverlay(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = press(a, keyTab, runes("?"))
	if !a.showHelp || !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Fatal("? should open help")
	}
	a = press(a, runes("z"))
	if a.showHelp {
		t.Error("any key should close help")
	}
}

func TestSettingsCurrency(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = press(a, keyTab, runes("x"))
	if a.activeTab != tabSettings {
		t.Fatalf("x should open settings, tab = %d", a.activeTab)
	}

	a = press(a, runes("j"), keyEnter)
	if !a.settings.editing || a.settings.cursor != settingsFieldCurrency {
		t.Fatalf("expected to edit currency, state = %+v", a.settings)
	}
	a.settings.input.SetValue("$")
	a = press(a, keyEnter)

	if a.settings.saveErr != nil {
		t.Fatalf("save failed: %v", a.settings.saveErr)
	}
	if a.currency != "$" {
		t.Errorf("currency = %q, want $", a.currency)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("saved currency = %q, want $", cfg.General.Currency)
	}

	a = press(a, runes("e"))
	if a.activeTab != tabExpenses {
		t.Error("e should return to the expenses tab")
	}
}

func TestSettingsRejectsUnknownTheme(t *testing.T) {
	a := newTestApp(t, "5000", "1000")
	a = press(a, keyTab, runes("x"), keyEnter)
	a.settings.input.SetValue("no-such-theme")
	a = press(a, keyEnter)

	if a.settings.saveErr == nil {
		t.Fatal("unknown theme should fail to save")
	}
	if config.Exists() {
		t.Error("nothing should be written for a rejected theme")
	}
}
