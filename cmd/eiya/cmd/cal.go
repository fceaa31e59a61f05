package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/internal/gregor/service"
	"github.com/spf13/cobra"
)

var (
	calTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	calHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	calCellStyle    = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	calWeekendStyle = calCellStyle.Foreground(lipgloss.Color("#6B7280"))
	calTodayStyle   = calCellStyle.Bold(true).Foreground(lipgloss.Color("#10B981"))
)

func (a *app) calendarCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "cal [YEAR [MONTH]]",
		Aliases: []string{"calendar"},
		Short:   "Print a month calendar",
		Long: `Print the calendar of MONTH (1-12) in YEAR, by default the current
month, with the month and weekday names of --locale.

Examples:
  eiya cal
  eiya cal 2020 2 --locale de`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			year, month := now.Year(), int(now.Month())

			var err error
			if len(args) > 0 {
				if year, err = strconv.Atoi(args[0]); err != nil {
					return invalidArg("year", args[0], err)
				}
			}
			if len(args) > 1 {
				if month, err = strconv.Atoi(args[1]); err != nil {
					return invalidArg("month", args[1], err)
				}
			}

			info, err := a.engine.Calendar(cmd.Context(), year, month-1, a.locale)
			if err != nil {
				return err
			}

			today := 0
			if now.Year() == year && int(now.Month()) == month {
				today = now.Day()
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMonth(info, today))
			return nil
		},
	}
}

// renderMonth lays out info as a Sunday-first grid; today (1-based) is
// highlighted when non-zero
func renderMonth(info *service.CalendarInfo, today int) string {
	header := make([]string, 0, 7)
	for _, name := range info.Weekdays {
		header = append(header, calHeaderStyle.Inherit(calCellStyle).Render(name))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	week := make([]string, 0, 7)
	for i := 0; i < info.FirstWeekday; i++ {
		week = append(week, calCellStyle.Render(""))
	}
	for day := 1; day <= info.DaysInMonth; day++ {
		style := calCellStyle
		weekday := (info.FirstWeekday + day - 1) % 7
		switch {
		case day == today:
			style = calTodayStyle
		case weekday == 0 || weekday == 6:
			style = calWeekendStyle
		}
		week = append(week, style.Render(strconv.Itoa(day)))
		if weekday == 6 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = week[:0]
		}
	}
	if len(week) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	title := fmt.Sprintf("%s %d", info.MonthName, info.Year)
	if info.LeapYear && info.Month == 1 {
		title += " (leap year)"
	}
	width := lipgloss.Width(rows[0])
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, calTitleStyle.Render(title)),
		strings.Join(rows, "\n"),
	)
}

func invalidArg(name, value string, err error) error {
	return eiyaerror.Wrap(err, name+" must be an integer").
		WithCode(eiyaerror.CodeInvalidInput).
		WithDetail(name, value)
}
