package caltrack

import (
	"fmt"
	"time"

	"github.com/CodeHadIt/caltrack/internal/session"
	"github.com/CodeHadIt/caltrack/internal/store"
	"github.com/spf13/cobra"
)

var weekEndDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show calories per day for the last 7 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		end, err := parseDateOrToday(weekEndDate)
		if err != nil {
			return err
		}
		endDay, err := time.Parse("2006-01-02", end)
		if err != nil {
			return fmt.Errorf("invalid --end %q (expected YYYY-MM-DD)", end)
		}

		dates := make([]string, 7)
		for i := 0; i < 7; i++ {
			dates[i] = endDay.AddDate(0, 0, i-6).Format("2006-01-02")
		}

		return withAccessor(func(_ *session.Manager, acc *store.Accessor) error {
			week, err := acc.WeeklyCalories(cmd.Context(), dates)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tKCAL")
			for _, day := range week {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", day.Date, day.Calories)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringVar(&weekEndDate, "end", "", "Last day of the week YYYY-MM-DD (default today)")
}
