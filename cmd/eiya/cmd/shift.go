package cmd

import (
	"strconv"
	"time"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/internal/gregor/service"
	"github.com/spf13/cobra"
)

// shiftCommand builds "add" and "subtract"
func (a *app) shiftCommand(name string) *cobra.Command {
	var overstep, end bool

	cmd := &cobra.Command{
		Use:   name + " AMOUNT PRECISION [INSTANT]",
		Short: "Shift an instant by an amount of a precision",
		Long: `Shift INSTANT (default: now) by AMOUNT units of PRECISION.

PRECISION is one of year, month, date, hour, minute, second,
millisecond or week. When a month or year shift lands on a day the
target month lacks, the day is clamped to the month's last day unless
--overstep is given. --end keeps the last day of a month on the last
day of the target month.

Examples:
  eiya ` + name + ` 1 month "2020/01/31 00:00:00"
  eiya ` + name + ` 2 week`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return eiyaerror.Wrap(err, "amount must be an integer").
					WithCode(eiyaerror.CodeInvalidInput).
					WithDetail("amount", args[0])
			}
			t, err := a.optionalInstant(cmd.Context(), args, 2)
			if err != nil {
				return err
			}

			req := service.ShiftRequest{Time: t, Amount: amount, Precision: args[1]}
			if cmd.Flags().Changed("overstep") {
				req.Overstep = &overstep
			}
			if cmd.Flags().Changed("end") {
				req.End = &end
			}

			var out time.Time
			if name == "subtract" {
				out, err = a.engine.Subtract(cmd.Context(), req)
			} else {
				out, err = a.engine.Add(cmd.Context(), req)
			}
			if err != nil {
				return err
			}
			return a.print(cmd, out)
		},
	}
	cmd.Flags().BoolVar(&overstep, "overstep", false, "let overflowing days roll into the next month")
	cmd.Flags().BoolVar(&end, "end", true, "keep month ends on the target month's end")
	return cmd
}

// boundaryCommand builds "startof" and "endof"
func (a *app) boundaryCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " PRECISION [INSTANT]",
		Short: "Move an instant to the " + map[string]string{"startof": "start", "endof": "end"}[name] + " of its period",
		Long: `PRECISION is one of year, month, date, hour, minute, second or week.
Weeks run from Sunday to Saturday.

Examples:
  eiya ` + name + ` week
  eiya ` + name + ` month "2020/02/10 12:00:00"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.optionalInstant(cmd.Context(), args, 1)
			if err != nil {
				return err
			}
			if name == "endof" {
				t, err = a.engine.EndOf(cmd.Context(), t, args[0])
			} else {
				t, err = a.engine.StartOf(cmd.Context(), t, args[0])
			}
			if err != nil {
				return err
			}
			return a.print(cmd, t)
		},
	}
}
