package cmd

import (
	"fmt"
	"time"

	"github.com/msto63/eiya/internal/gregor/service"
	"github.com/spf13/cobra"
)

// compareFlags binds the comparison options shared by compare and between
func compareFlags(cmd *cobra.Command, opts *service.CompareOptions, easy *bool) {
	cmd.Flags().StringVar(&opts.Precision, "precision", "", "comparison precision (default: compare.precision)")
	cmd.Flags().BoolVar(easy, "easy", false, "compare only the field of the precision")
}

func applyEasy(cmd *cobra.Command, opts *service.CompareOptions, easy bool) {
	if cmd.Flags().Changed("easy") {
		opts.Easy = &easy
	}
}

func (a *app) compareCommand() *cobra.Command {
	var (
		opts service.CompareOptions
		easy bool
	)

	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two instants",
		Long: `Print -1, 0 or 1 as A is before, the same as or after B at
the requested precision.

Examples:
  eiya compare "2020/01/05 10:00:00" "2020/03/05 09:00:00" --precision year
  eiya compare "2020/01/05 10:00:00" "2020/03/05 09:00:00" --precision date --easy`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyEasy(cmd, &opts, easy)
			x, err := a.instant(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			y, err := a.instant(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			n, err := a.engine.Compare(cmd.Context(), x, y, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	compareFlags(cmd, &opts, &easy)
	return cmd
}

func (a *app) betweenCommand() *cobra.Command {
	var (
		opts service.CompareOptions
		easy bool
	)

	cmd := &cobra.Command{
		Use:   "between INSTANT START END",
		Short: "Test whether an instant lies between two others",
		Long: `Print true when INSTANT lies between START and END.

--boundary selects inclusive "[" "]" or exclusive "(" ")" edges.

Examples:
  eiya between now "2020/01/01 00:00:00" "2030/01/01 00:00:00"
  eiya between "2020/01/01 00:00:00" "2020/01/01 00:00:00" now --boundary "(]"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyEasy(cmd, &opts, easy)
			instants := make([]time.Time, len(args))
			for i, arg := range args {
				t, err := a.instant(cmd.Context(), arg)
				if err != nil {
					return err
				}
				instants[i] = t
			}
			ok, err := a.engine.IsBetween(cmd.Context(), instants[0], instants[1], instants[2], opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	compareFlags(cmd, &opts, &easy)
	cmd.Flags().StringVar(&opts.Boundary, "boundary", "", `boundary "[]", "[)", "(]" or "()" (default: compare.boundary)`)
	return cmd
}
