package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgettrack/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [General]")
	fmt.Fprintf(w, "    Currency: %s\n", cfg.General.Currency)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Log]")
	if cfg.Log.Path != "" {
		fmt.Fprintf(w, "    Path:  %s\n", cfg.Log.Path)
		fmt.Fprintf(w, "    Level: %s\n", cfg.Log.Level)
	} else {
		fmt.Fprintln(w, "    Path:  not set (logging disabled)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Run `budgettrack setup` to reconfigure.")
	return nil
}
