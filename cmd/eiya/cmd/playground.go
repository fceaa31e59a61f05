package cmd

import (
	"github.com/msto63/eiya/internal/tui/playground"
	"github.com/spf13/cobra"
)

func (a *app) playgroundCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "playground [PATTERN]",
		Aliases: []string{"play"},
		Short:   "Try patterns interactively",
		Long: `Start the interactive pattern playground.

The current time is rendered with the pattern as it is typed, and a
sample text is parsed with the same pattern.

Keys:
  Tab / Shift+Tab   switch between pattern and sample text
  Esc / Ctrl+C      quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := a.pattern
			if len(args) > 0 {
				pattern = args[0]
			}
			return playground.Run(playground.Config{
				Engine:  a.engine,
				Locale:  a.locale,
				Pattern: pattern,
				Now:     a.now,
			})
		},
	}
}
