package caltrack

import (
	"database/sql"
	"fmt"

	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/nutrition"
	"github.com/CodeHadIt/caltrack/internal/session"
	"github.com/spf13/cobra"
)

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Recommend a macro split for a calorie target",
}

var (
	macrosTDEE int
	macrosGoal string
)

var macrosCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute and cache a macro split",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := parseGoal(macrosGoal)
		if err != nil {
			return err
		}
		if macrosTDEE <= 0 {
			return fmt.Errorf("tdee must be > 0")
		}
		return withSession(func(mgr *session.Manager, _ *sql.DB) error {
			rec, err := nutrition.MacroSplit(macrosTDEE, goal)
			if err != nil {
				return err
			}
			// Cache is display-only convenience; a write failure is not fatal.
			_ = mgr.Guest().SaveMacroRecommendation(rec)
			printMacros(cmd, rec)
			return nil
		})
	},
}

var macrosShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the last cached macro split",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(mgr *session.Manager, _ *sql.DB) error {
			rec := mgr.Guest().MacroRecommendation()
			if rec == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No cached recommendation. Run: caltrack macros calc")
				return nil
			}
			printMacros(cmd, *rec)
			return nil
		})
	},
}

var macrosClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the cached macro split",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(mgr *session.Manager, _ *sql.DB) error {
			return mgr.Guest().ClearMacroRecommendation()
		})
	},
}

func printMacros(cmd *cobra.Command, rec model.MacroRecommendation) {
	fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", rec.Goal)
	fmt.Fprintf(cmd.OutOrStdout(), "Target: %d kcal/day\n", rec.Calories)
	fmt.Fprintf(cmd.OutOrStdout(), "Protein: %dg (%d kcal, %d%%)\n", rec.Protein.Grams, rec.Protein.Calories, rec.Protein.Percentage)
	fmt.Fprintf(cmd.OutOrStdout(), "Carbs: %dg (%d kcal, %d%%)\n", rec.Carbs.Grams, rec.Carbs.Calories, rec.Carbs.Percentage)
	fmt.Fprintf(cmd.OutOrStdout(), "Fat: %dg (%d kcal, %d%%)\n", rec.Fat.Grams, rec.Fat.Calories, rec.Fat.Percentage)
}

func init() {
	rootCmd.AddCommand(macrosCmd)
	macrosCmd.AddCommand(macrosCalcCmd)
	macrosCmd.AddCommand(macrosShowCmd)
	macrosCmd.AddCommand(macrosClearCmd)

	macrosCalcCmd.Flags().IntVar(&macrosTDEE, "tdee", 0, "Maintenance calories (see caltrack tdee)")
	macrosCalcCmd.Flags().StringVar(&macrosGoal, "goal", "", "lose, maintain, or gain")
	_ = macrosCalcCmd.MarkFlagRequired("tdee")
	_ = macrosCalcCmd.MarkFlagRequired("goal")
}
