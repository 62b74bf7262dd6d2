package commands

import (
	"fmt"

	"github.com/scalecode-solutions/runestring/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "runestr version %s\n", build.Version)
			if build.Commit != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit %s built %s\n", build.Commit, build.Date)
			}
		},
	}
}
