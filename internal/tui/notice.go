package tui

import (
	"github.com/theirongolddev/budgettrack/internal/ledger"
	"github.com/theirongolddev/budgettrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func noticeWidth(termWidth int) int {
	w := termWidth - 20
	if w > 60 {
		w = 60
	}
	if w < 30 {
		w = 30
	}
	return w
}

// newNoticeForm builds a single-note huh form acknowledged with Enter.
func newNoticeForm(n ledger.Notice, width int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(n.Title).
				Description(n.Body).
				Next(true).
				NextLabel("OK"),
		),
	).WithTheme(huh.ThemeDracula()).
		WithShowHelp(false).
		WithWidth(width)
}

// openNotice shows n modally. The form stays blocked until it is acknowledged.
func (a App) openNotice(n ledger.Notice) (tea.Model, tea.Cmd) {
	a.noticeMsg = n
	a.notice = newNoticeForm(n, noticeWidth(a.width))
	a.statusNote = n.Title
	a.log.Debug("notice shown", "title", n.Title)
	return a, a.notice.Init()
}

func (a *App) closeNotice() {
	a.notice = nil
	a.noticeMsg = ledger.Notice{}
}

func (a App) updateNotice(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.notice.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		a.notice = f
	}

	switch a.notice.State {
	case huh.StateCompleted, huh.StateAborted:
		a.closeNotice()
		return a, a.form.focusCmd()
	}
	return a, cmd
}

func (a App) viewNotice() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Orange).
		Padding(1, 2).
		Render(a.notice.View())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
