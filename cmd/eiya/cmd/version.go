package cmd

import (
	"fmt"

	"github.com/msto63/eiya/pkg/core/version"
	"github.com/spf13/cobra"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get("eiya")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "eiya v%s\n", info.Version)
			fmt.Fprintf(out, "  Library:    %s\n", info.Library)
			fmt.Fprintf(out, "  Gregor:     %s\n", version.Gregor)
			fmt.Fprintf(out, "  Commit:     %s\n", info.Commit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		},
	}
}
