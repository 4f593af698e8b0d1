package cmd

import (
	"context"
	"io"
	"time"

	"github.com/kedare/basket/internal/output"
	"github.com/kedare/basket/internal/store"
	"github.com/kedare/basket/internal/theme"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved theme",
	Long: `Print the theme the interface will start with and where it comes from:
a saved choice, or the terminal's color scheme when nothing is saved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, err := openStoreStrict()
		if err != nil {
			return err
		}
		defer closeStore(kv)

		output.SetFormat(themeOutputFormat)

		return showTheme(cmd.Context(), cmd.OutOrStdout(), kv)
	},
}

var themeOutputFormat string

var themeSetCmd = &cobra.Command{
	Use:       "set <dark|light>",
	Short:     "Save a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.Dark), string(theme.Light)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := theme.ParseMode(args[0])
		if err != nil {
			return err
		}

		kv, err := openStoreStrict()
		if err != nil {
			return err
		}
		defer closeStore(kv)

		if err := theme.NewPreference(kv).Set(cmd.Context(), mode); err != nil {
			return err
		}

		pterm.Success.Printfln("Theme set to %s", mode)

		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between dark and light",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, err := openStoreStrict()
		if err != nil {
			return err
		}
		defer closeStore(kv)

		mode, err := toggleTheme(cmd.Context(), kv)
		if err != nil {
			return err
		}

		pterm.Success.Printfln("Theme set to %s", mode)

		return nil
	},
}

func init() {
	themeCmd.Flags().StringVarP(&themeOutputFormat, "output", "o",
		output.DefaultFormat("text", []string{"text", "json"}),
		"Output format: text, json")
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}

// toggleTheme flips the saved theme, starting from whatever Load resolves.
func toggleTheme(ctx context.Context, kv store.KeyValue) (theme.Mode, error) {
	pref := theme.NewPreference(kv)
	pref.Load(ctx)

	return pref.Toggle(ctx)
}

// themeReport is what `basket theme` prints.
type themeReport struct {
	Theme   theme.Mode   `json:"theme"`
	Source  theme.Source `json:"source"`
	Store   string       `json:"store,omitempty"`
	SavedAt *time.Time   `json:"savedAt,omitempty"`
}

func showTheme(ctx context.Context, w io.Writer, kv store.KeyValue) error {
	pref := theme.NewPreference(kv)
	report := themeReport{Theme: pref.Load(ctx), Source: pref.Source()}

	if s, ok := kv.(*store.SQLite); ok {
		report.Store = s.Path()

		updated, found, err := s.UpdatedAt(ctx, theme.PreferenceKey)
		if err != nil {
			return err
		}
		if found {
			report.SavedAt = &updated
		}
	}

	if output.IsJSONMode() {
		return output.DisplayJSON(w, report)
	}

	fields := []output.Field{
		{Label: "Theme", Value: string(report.Theme)},
		{Label: "Source", Value: string(report.Source)},
		{Label: "Store", Value: report.Store},
	}
	if report.SavedAt != nil {
		fields = append(fields, output.Field{Label: "Saved", Value: report.SavedAt.Local().Format(time.RFC3339)})
	}

	return output.DisplayFields(w, fields)
}
