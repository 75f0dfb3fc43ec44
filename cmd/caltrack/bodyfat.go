package caltrack

import (
	"fmt"

	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/nutrition"
	"github.com/spf13/cobra"
)

var (
	bodyFatGender string
	bodyFatWaist  float64
	bodyFatNeck   float64
	bodyFatHeight float64
	bodyFatHip    float64
)

var bodyFatCmd = &cobra.Command{
	Use:   "bodyfat",
	Short: "Estimate body-fat percentage (U.S. Navy method)",
	RunE: func(cmd *cobra.Command, args []string) error {
		gender, err := parseGender(bodyFatGender)
		if err != nil {
			return err
		}

		var hip *float64
		if cmd.Flags().Changed("hip") {
			hip = &bodyFatHip
		} else if gender == model.GenderFemale {
			return fmt.Errorf("--hip is required for female body fat calculation")
		}

		res, err := nutrition.BodyFat(gender, bodyFatWaist, bodyFatNeck, bodyFatHeight, hip)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Body fat: %.1f%%\n", res.Percentage)
		fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", res.Category)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bodyFatCmd)
	bodyFatCmd.Flags().StringVar(&bodyFatGender, "gender", "", "male or female")
	bodyFatCmd.Flags().Float64Var(&bodyFatWaist, "waist", 0, "Waist circumference in cm")
	bodyFatCmd.Flags().Float64Var(&bodyFatNeck, "neck", 0, "Neck circumference in cm")
	bodyFatCmd.Flags().Float64Var(&bodyFatHeight, "height", 0, "Height in cm")
	bodyFatCmd.Flags().Float64Var(&bodyFatHip, "hip", 0, "Hip circumference in cm (female)")
	_ = bodyFatCmd.MarkFlagRequired("gender")
	_ = bodyFatCmd.MarkFlagRequired("waist")
	_ = bodyFatCmd.MarkFlagRequired("neck")
	_ = bodyFatCmd.MarkFlagRequired("height")
}
