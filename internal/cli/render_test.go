package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Plain output so assertions can match raw text
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Expense Log",
		Headers: []string{"#", "Category", "Amount"},
		Rows: [][]string{
			{"1", "Food", "Rs400.00"},
			{"2", "Transport", "Rs600.00"},
		},
		Footer: []string{"", "TOTAL", "Rs1,000.00"},
		Align:  []lipgloss.Position{lipgloss.Right, lipgloss.Left, lipgloss.Right},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "  Expense Log" {
		t.Fatalf("title line = %q", lines[0])
	}
	// title, top, header, header sep, 2 rows, footer rule, footer, bottom
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), out)
	}

	width := lipgloss.Width(lines[1])
	for i, l := range lines[1:] {
		if w := lipgloss.Width(l); w != width {
			t.Errorf("line %d width = %d, want %d: %q", i+1, w, width, l)
		}
	}
	if !strings.Contains(out, "│ Transport │") {
		t.Errorf("category column not padded as expected:\n%s", out)
	}
	if !strings.Contains(out, "│ Food      │") {
		t.Errorf("category column not left-aligned:\n%s", out)
	}
	if !strings.Contains(out, "  Rs400.00 │") {
		t.Errorf("amount column not right-aligned:\n%s", out)
	}
	if !strings.Contains(out, "│ 1 │") {
		t.Errorf("index column not right-aligned:\n%s", out)
	}
}

func TestRenderTable_DefaultAlignAndFooterOnly(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Name", "Value"},
		Footer:  []string{"TOTAL", "0"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top, header, header sep, footer, bottom: no rule between header and footer
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[3], "│ TOTAL │     0 │") {
		t.Errorf("footer = %q", lines[3])
	}
}

func TestRenderTitle(t *testing.T) {
	out := RenderTitle("BUDGETTRACK", "income 5000")
	if !strings.Contains(out, "BUDGETTRACK") || !strings.Contains(out, "income 5000") {
		t.Errorf("title = %q", out)
	}
	if h := lipgloss.Height(out); h != 4 {
		t.Errorf("title with subtitle height = %d, want 4", h)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Fatalf("empty table rendered %q", out)
	}
}

func TestRenderBudgetBar(t *testing.T) {
	if got := RenderBudgetBar(10, 0, 10); !strings.Contains(got, "no budget limit") {
		t.Errorf("zero limit: %q", got)
	}

	got := RenderBudgetBar(500, 1000, 10)
	if !strings.Contains(got, "█████░░░░░") || !strings.Contains(got, "50.0%") {
		t.Errorf("half-spent bar = %q", got)
	}

	got = RenderBudgetBar(2000, 1000, 4)
	if !strings.Contains(got, "████]") || !strings.Contains(got, "100.0%") {
		t.Errorf("overspent bar should clamp: %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("nil values = %q", got)
	}
	if got := RenderSparkline([]float64{0, 600, 1000}); got != "▁▅█" {
		t.Errorf("sparkline = %q, want ▁▅█", got)
	}
	if got := RenderSparkline([]float64{700, 0, -700}); got != "█▄▁" {
		t.Errorf("negative sparkline = %q, want █▄▁", got)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	if got := RenderHorizontalBar("Food", 5, 10, 10); got != "  Food █████" {
		t.Errorf("bar = %q", got)
	}
	if got := RenderHorizontalBar("Food", 5, 0, 10); got != "  Food" {
		t.Errorf("zero max = %q", got)
	}
}
