// Package cmd implements the budgettrack CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/budgettrack/internal/config"
	"github.com/theirongolddev/budgettrack/internal/logger"
	"github.com/theirongolddev/budgettrack/internal/tui"
	"github.com/theirongolddev/budgettrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagIncome   string
	flagBudget   string
	flagTheme    string
	flagCurrency string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "budgettrack",
	Short: "Terminal budget and expense tracker",
	Long: "Record an income, a budget limit and categorized expenses, then chart\n" +
		"spending against both. Expenses that would overrun the budget are clamped.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagIncome, "income", "", "Prefill the income field")
	rootCmd.Flags().StringVar(&flagBudget, "budget", "", "Prefill the budget limit field")

	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency symbol (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a debug log to this file")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	if flagCurrency != "" {
		cfg.General.Currency = flagCurrency
	}
	if flagLogFile != "" {
		cfg.Log.Path = flagLogFile
	}
	return cfg, nil
}

func runTUI(_ *cobra.Command, _ []string) error {
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

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	log.Info("starting tui", "theme", theme.Active.Name, "currency", cfg.General.Currency)

	app := tui.NewApp(tui.Options{
		Currency: cfg.General.Currency,
		Income:   flagIncome,
		Budget:   flagBudget,
		Logger:   log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if a, ok := final.(tui.App); ok {
		log.Info("session ended", "entries", len(a.Session().Log), "spent", a.Session().Spent().String())
	}

	return nil
}
