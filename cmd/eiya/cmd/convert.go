package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) formatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format PATTERN [INSTANT]",
		Short: "Render an instant with a pattern",
		Long: `Render INSTANT (default: now) with PATTERN.

Examples:
  eiya format "yyyy/MM/dd EEEE"
  eiya format "MMMM d, hh:mm a" "2020/10/04 18:34:55"
  eiya format --locale de "EEEE, d. MMMM" now`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.optionalInstant(cmd.Context(), args, 1)
			if err != nil {
				return err
			}
			text, err := a.engine.Format(cmd.Context(), t, args[0], a.locale)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func (a *app) parseCommand() *cobra.Command {
	var rfc3339 bool

	cmd := &cobra.Command{
		Use:   "parse TEXT PATTERN",
		Short: "Read an instant from text",
		Long: `Read TEXT with PATTERN and print the instant with --pattern.
Fields missing from PATTERN are taken from the current time.

Examples:
  eiya parse "2020/10/04" "yyyy/MM/dd"
  eiya parse "04 Oct 2020 06:34 pm" "dd MMM yyyy hh:mm a" --rfc3339`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.engine.Parse(cmd.Context(), args[0], args[1], a.locale)
			if err != nil {
				return err
			}
			if rfc3339 {
				fmt.Fprintln(cmd.OutOrStdout(), t.Format("2006-01-02T15:04:05.000Z07:00"))
				return nil
			}
			return a.print(cmd, t)
		},
	}
	cmd.Flags().BoolVar(&rfc3339, "rfc3339", false, "print the instant in RFC 3339")
	return cmd
}
