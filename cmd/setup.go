package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/budgettrack/internal/config"
	"github.com/theirongolddev/budgettrack/internal/logger"
	"github.com/theirongolddev/budgettrack/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// newSetupForm builds the wizard bound to cfg's fields.
func newSetupForm(cfg *config.Config) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	levelOpts := huh.NewOptions("debug", "info", "warn", "error")

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to budgettrack!").
				Description("Let's set up a few things."),
			huh.NewInput().
				Title("Currency symbol").
				Description("Shown in front of every amount.").
				Placeholder(config.DefaultCurrency).
				Value(&cfg.General.Currency).
				Validate(func(s string) error {
					if strings.ContainsAny(s, " \t\n") {
						return errors.New("no whitespace")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Debug log file").
				Description("Leave empty to disable logging.").
				Value(&cfg.Log.Path),
			huh.NewSelect[string]().
				Title("Log level").
				Options(levelOpts...).
				Value(&cfg.Log.Level),
		),
	)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := newSetupForm(&cfg).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup: %w", err)
	}

	cfg.General.Currency = strings.TrimSpace(cfg.General.Currency)
	if cfg.General.Currency == "" {
		cfg.General.Currency = config.DefaultCurrency
	}
	cfg.Log.Level = strings.ToLower(logger.ParseLevel(cfg.Log.Level).String())

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Saved to %s\n", config.Path())
	fmt.Fprintln(w, "  Run `budgettrack setup` anytime to reconfigure.")
	fmt.Fprintln(w)

	return nil
}
