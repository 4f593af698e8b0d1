package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/kedare/basket/internal/shopping"
	"github.com/kedare/basket/internal/theme"
	"github.com/kedare/basket/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("the interactive interface needs a terminal on stdout")

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"ui"},
	Short:   "Launch interactive TUI interface",
	Long: `Start the terminal UI.

- a adds a list, Enter opens it, d deletes it
- / searches list names, 1-4 filter by category, 0 clears the filter
- t toggles the light/dark theme (saved for next time)

Press '?' at any time to see keyboard shortcuts.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		return errNotTerminal
	}

	kv := openStore()
	defer closeStore(kv)

	config := &tui.Config{
		Collection: shopping.NewCollection(),
		Preference: theme.NewPreference(kv),
	}

	if err := tui.Run(cmd.Context(), config); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
