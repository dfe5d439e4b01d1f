package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/theirongolddev/budgettrack/internal/chart"
	"github.com/theirongolddev/budgettrack/internal/cli"
	"github.com/theirongolddev/budgettrack/internal/ledger"
	"github.com/theirongolddev/budgettrack/internal/logger"
	"github.com/theirongolddev/budgettrack/internal/model"
	"github.com/theirongolddev/budgettrack/internal/tui/components"
	"github.com/theirongolddev/budgettrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	flagReplayIncome string
	flagReplayBudget string
	flagChartWidth   int
	flagChartHeight  int
	flagNoChart      bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [amount[:category] ...]",
	Short: "Apply expenses non-interactively and print the result",
	Long: "Feed each expense through the same budget rules as the form and print\n" +
		"the outcomes, the expense log and the chart. The category defaults to Food.",
	Example: "  budgettrack replay --income 5000 --budget 1000 400:food 700:transport",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runReplayCmd,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayIncome, "income", "0", "Income")
	replayCmd.Flags().StringVar(&flagReplayBudget, "budget", "0", "Budget limit")
	replayCmd.Flags().IntVar(&flagChartWidth, "width", 80, "Chart width in columns")
	replayCmd.Flags().IntVar(&flagChartHeight, "height", 24, "Chart height in rows")
	replayCmd.Flags().BoolVar(&flagNoChart, "no-chart", false, "Skip the chart")
	rootCmd.AddCommand(replayCmd)
}

// replayEntry is one amount:category argument.
type replayEntry struct {
	Amount   string
	Category model.Category
}

// parseReplayArg splits "amount[:category]". The amount is left unparsed so
// invalid numbers surface through the same path as typed input.
func parseReplayArg(arg string) (replayEntry, error) {
	amount, name, found := strings.Cut(arg, ":")
	if !found {
		return replayEntry{Amount: amount, Category: model.Food}, nil
	}
	cat, ok := model.ParseCategory(name)
	if !ok {
		return replayEntry{}, fmt.Errorf("unknown category %q in %q", name, arg)
	}
	return replayEntry{Amount: amount, Category: cat}, nil
}

type replayOptions struct {
	Currency    string
	Income      string
	Budget      string
	ChartWidth  int
	ChartHeight int
	NoChart     bool
	Logger      *slog.Logger
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	_, err = runReplay(cmd.OutOrStdout(), args, replayOptions{
		Currency:    cfg.General.Currency,
		Income:      flagReplayIncome,
		Budget:      flagReplayBudget,
		ChartWidth:  flagChartWidth,
		ChartHeight: flagChartHeight,
		NoChart:     flagNoChart,
		Logger:      log,
	})
	return err
}

// runReplay submits every argument in order and renders the final session.
func runReplay(w io.Writer, args []string, opts replayOptions) (model.Session, error) {
	var s model.Session

	entries := make([]replayEntry, 0, len(args))
	for _, arg := range args {
		e, err := parseReplayArg(arg)
		if err != nil {
			return s, err
		}
		entries = append(entries, e)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("BUDGETTRACK  Replay",
		fmt.Sprintf("income %s  budget %s  %d expenses", opts.Income, opts.Budget, len(entries))))
	fmt.Fprintln(w)

	for i, e := range entries {
		res, err := ledger.Submit(&s, ledger.Input{
			Income:      opts.Income,
			BudgetLimit: opts.Budget,
			Amount:      e.Amount,
			Category:    e.Category,
		})
		if err != nil {
			var inErr *ledger.InputError
			if errors.As(err, &inErr) {
				fmt.Fprintf(w, "  #%d  %-14s invalid %s %q\n", i+1, e.Category, inErr.Field, inErr.Text)
			} else {
				fmt.Fprintf(w, "  #%d  %-14s %v\n", i+1, e.Category, err)
			}
			if opts.Logger != nil {
				opts.Logger.Warn("replay submission rejected", "index", i+1, "error", err)
			}
			continue
		}

		line := fmt.Sprintf("  #%d  %-14s %s", i+1, e.Category, cli.FormatAmount(opts.Currency, res.Requested.InexactFloat64()))
		switch res.Outcome {
		case ledger.Adjusted:
			line += fmt.Sprintf("  adjusted to %s", cli.FormatAmount(opts.Currency, res.Amount.InexactFloat64()))
		case ledger.LimitReached:
			line += "  rejected, limit reached"
		}
		fmt.Fprintln(w, line)
		if opts.Logger != nil {
			opts.Logger.Info("replay submission", "index", i+1, "outcome", res.Outcome.String(), "amount", res.Amount.String())
		}
	}
	fmt.Fprintln(w)

	renderSession(w, s, opts)
	return s, nil
}

func renderSession(w io.Writer, s model.Session, opts replayOptions) {
	stats := s.Stats()

	rows := make([][]string, 0, len(s.Log))
	for i, e := range s.Log {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			string(e.Category),
			cli.FormatAmount(opts.Currency, e.Amount.InexactFloat64()),
		})
	}

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Expense Log",
		Headers: []string{"#", "Category", "Amount"},
		Rows:    rows,
		Footer:  []string{"", "TOTAL", cli.FormatAmount(opts.Currency, stats.CurrentSpend)},
		Align:   []lipgloss.Position{lipgloss.Right, lipgloss.Left, lipgloss.Right},
	}))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Income     %s\n", cli.FormatAmount(opts.Currency, stats.Income))
	fmt.Fprintf(w, "  Budget     %s\n", cli.FormatAmount(opts.Currency, stats.BudgetLimit))
	fmt.Fprintf(w, "  Remaining  %s\n", cli.FormatAmount(opts.Currency, stats.Remaining))
	fmt.Fprintf(w, "  Used       %s\n", cli.RenderBudgetBar(stats.CurrentSpend, stats.BudgetLimit, 30))
	fmt.Fprintln(w)

	series := chart.CategorySeries(s.Log)
	if len(series) > 0 {
		totals := make([]float64, len(series))
		var peak float64
		for i, sr := range series {
			for _, v := range sr.Values() {
				totals[i] += v
			}
			peak = max(peak, totals[i])
		}
		fmt.Fprintln(w, "  By category")
		for i, sr := range series {
			label := fmt.Sprintf("%-14s %12s", sr.Name, cli.FormatAmount(opts.Currency, totals[i]))
			fmt.Fprintln(w, cli.RenderHorizontalBar(label, totals[i], peak, 30))
		}
		fmt.Fprintln(w)

		remaining := chart.RemainingBudget(s.LimitOrZero(), s.Log)
		vals := make([]float64, len(remaining))
		for i, d := range remaining {
			vals[i] = d.InexactFloat64()
		}
		fmt.Fprintf(w, "  Remaining budget  %s\n\n", cli.RenderSparkline(vals))
	}

	if opts.NoChart {
		return
	}
	c := chart.Build(s, chart.Options{Currency: opts.Currency})
	fmt.Fprintln(w, components.LineChart(c, opts.ChartWidth, opts.ChartHeight))
}
