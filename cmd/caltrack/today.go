package caltrack

import (
	"fmt"

	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/session"
	"github.com/CodeHadIt/caltrack/internal/store"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's meals and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withAccessor(func(_ *session.Manager, acc *store.Accessor) error {
			if _, err := acc.FetchLogs(cmd.Context(), date); err != nil {
				return err
			}
			summary := acc.DailySummary(date)

			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", summary.Date)
			for _, meal := range model.MealTimes {
				logs := summary.Meals[meal]
				if len(logs) == 0 {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", meal)
				for _, l := range logs {
					kcal := l.FoodItem.CaloriesPer100g * l.WeightGrams / 100
					fmt.Fprintf(cmd.OutOrStdout(), "  %s (%.0fg) %.0f kcal\n", l.FoodItem.Name, l.WeightGrams, kcal)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal\n", summary.TotalCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Macros: P %.1fg | C %.1fg | F %.1fg\n",
				summary.TotalProtein, summary.TotalCarbs, summary.TotalFat)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
