package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mkt/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date and Go version of mkt.`,
	Run: func(c *cobra.Command, _ []string) {
		info := cmd.Info()
		w := c.OutOrStdout()
		fmt.Fprintf(w, "mkt version %s\n", info.Version)
		fmt.Fprintf(w, "  commit: %s\n", info.Commit)
		fmt.Fprintf(w, "  built:  %s\n", info.Date)
		fmt.Fprintf(w, "  go:     %s\n", info.GoVersion)
	},
}
