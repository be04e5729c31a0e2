// Package app contains the Cobra command tree for gamecheck.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "gamecheck",
	Short: "Validate 3D assets against game-ready delivery requirements",
	Long: `gamecheck runs deterministic checks against a scene description and
reports geometry, texture, UV, modifier, and rigging findings per object,
merged into a file-level pass/warn/fail verdict. Scene descriptions are
JSON exports produced by an editor adapter; gamecheck never opens the
editor itself.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("gamecheck", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  check     Scan a scene description and report game-readiness")
		fmt.Println("  rules     List the registered checks in evaluation order")
		fmt.Println("  history   Show previously saved scan verdicts")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/gamecheck/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
