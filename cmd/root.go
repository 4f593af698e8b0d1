// Package cmd provides the command-line interface for basket
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kedare/basket/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	dbPath   string
)

var rootCmd = &cobra.Command{
	Use:   "basket",
	Short: "Shopping lists in your terminal",
	Long: `basket keeps shopping lists in a keyboard-driven terminal UI.

Create lists in one of four categories, open them to add, check and
remove items, and search or filter the overview. Lists live for the
session; the light/dark theme choice is saved between runs.

Run without a subcommand to start the interface.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := logger.SetLevel(logLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level '%s': %v\n", logLevel, err)
			os.Exit(1)
		}
		logger.Log.Debugf("Log level set to: %s", logLevel)
	},
	RunE: runInteractive,
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set the logging level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path of the preference database (default $BASKET_DB or ~/.basket/basket.db)")
}
