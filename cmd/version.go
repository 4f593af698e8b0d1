package cmd

import (
	"fmt"

	"github.com/kedare/basket/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build metadata for this binary",
	Long:  "Display build time, commit, builder information, and target architecture embedded in the binary.",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Version:      %s\n", info.Version)
		fmt.Fprintf(out, "Commit:       %s\n", info.Commit)

		// Display build date with relative time if available
		if relTime := info.RelativeTime(); relTime != "" {
			fmt.Fprintf(out, "Built:        %s (%s)\n", info.BuildDate, relTime)
		} else {
			fmt.Fprintf(out, "Built:        %s\n", info.BuildDate)
		}

		fmt.Fprintf(out, "Built By:     %s@%s\n", info.BuildUser, info.BuildHost)
		fmt.Fprintf(out, "Architecture: %s\n", info.BuildArch)
		fmt.Fprintf(out, "Go Version:   %s\n", info.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
