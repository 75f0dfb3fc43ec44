package caltrack

import (
	"fmt"

	"github.com/CodeHadIt/caltrack/internal/session"
	"github.com/CodeHadIt/caltrack/internal/store"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log foods eaten per meal",
}

var (
	logFoodID string
	logWeight float64
	logMeal   string
	logDate   string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food eaten",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := parseMealTime(logMeal)
		if err != nil {
			return err
		}
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		weight, err := clampWeight(logWeight)
		if err != nil {
			return err
		}
		return withAccessor(func(_ *session.Manager, acc *store.Accessor) error {
			if _, err := acc.FetchLogs(cmd.Context(), date); err != nil {
				return err
			}
			created, err := acc.AddLog(cmd.Context(), logFoodID, weight, meal, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.0fg of %s for %s on %s\n",
				created.WeightGrams, created.FoodItem.Name, created.MealTime, created.Date)
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <log-id>",
	Short: "Remove a logged food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAccessor(func(_ *session.Manager, acc *store.Accessor) error {
			if err := acc.RemoveLog(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed log %s\n", args[0])
			return nil
		})
	},
}

var logListDate string

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged foods for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logListDate)
		if err != nil {
			return err
		}
		return withAccessor(func(_ *session.Manager, acc *store.Accessor) error {
			logs, err := acc.FetchLogs(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tMEAL\tFOOD\tGRAMS\tKCAL")
			for _, l := range logs {
				n := l.FoodItem.CaloriesPer100g * l.WeightGrams / 100
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.0f\n",
					l.ID, l.MealTime, l.FoodItem.Name, l.WeightGrams, n)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logRemoveCmd)
	logCmd.AddCommand(logListCmd)

	logAddCmd.Flags().StringVar(&logFoodID, "food", "", "Food item id (see food list)")
	logAddCmd.Flags().Float64Var(&logWeight, "grams", 0, "Weight eaten in grams (1-1000)")
	logAddCmd.Flags().StringVar(&logMeal, "meal", "", "breakfast, lunch, dinner, or snack")
	logAddCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = logAddCmd.MarkFlagRequired("food")
	_ = logAddCmd.MarkFlagRequired("grams")
	_ = logAddCmd.MarkFlagRequired("meal")

	logListCmd.Flags().StringVar(&logListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
