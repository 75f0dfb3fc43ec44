package caltrack

import (
	"fmt"

	"github.com/CodeHadIt/caltrack/internal/nutrition"
	"github.com/spf13/cobra"
)

var (
	tdeeWeight   float64
	tdeeHeight   float64
	tdeeAge      int
	tdeeGender   string
	tdeeActivity string
)

var tdeeCmd = &cobra.Command{
	Use:   "tdee",
	Short: "Estimate daily energy expenditure (Mifflin-St Jeor)",
	RunE: func(cmd *cobra.Command, args []string) error {
		gender, err := parseGender(tdeeGender)
		if err != nil {
			return err
		}
		activity, err := parseActivity(tdeeActivity)
		if err != nil {
			return err
		}
		if tdeeWeight <= 0 || tdeeHeight <= 0 || tdeeAge <= 0 {
			return fmt.Errorf("weight, height, and age must be > 0")
		}

		res, err := nutrition.TDEE(tdeeWeight, tdeeHeight, tdeeAge, gender, activity)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "BMR: %d kcal/day\n", res.BMR)
		fmt.Fprintf(cmd.OutOrStdout(), "TDEE: %d kcal/day\n", res.TDEE)
		fmt.Fprintf(cmd.OutOrStdout(), "Cut (-500): %d kcal/day\n", res.Deficit)
		fmt.Fprintf(cmd.OutOrStdout(), "Bulk (+500): %d kcal/day\n", res.Surplus)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tdeeCmd)
	tdeeCmd.Flags().Float64Var(&tdeeWeight, "weight", 0, "Weight in kg")
	tdeeCmd.Flags().Float64Var(&tdeeHeight, "height", 0, "Height in cm")
	tdeeCmd.Flags().IntVar(&tdeeAge, "age", 0, "Age in years")
	tdeeCmd.Flags().StringVar(&tdeeGender, "gender", "", "male or female")
	tdeeCmd.Flags().StringVar(&tdeeActivity, "activity", "", "sedentary, light, moderate, active, very_active")
	_ = tdeeCmd.MarkFlagRequired("weight")
	_ = tdeeCmd.MarkFlagRequired("height")
	_ = tdeeCmd.MarkFlagRequired("age")
	_ = tdeeCmd.MarkFlagRequired("gender")
	_ = tdeeCmd.MarkFlagRequired("activity")
}
