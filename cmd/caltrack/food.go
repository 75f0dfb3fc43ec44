package caltrack

import (
	"fmt"

	"github.com/CodeHadIt/caltrack/internal/catalog"
	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/session"
	"github.com/CodeHadIt/caltrack/internal/store"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse the food database and add custom foods",
}

var foodListCategory string

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAccessor(func(_ *session.Manager, acc *store.Accessor) error {
			foods, err := acc.FetchFoods(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tCATEGORY\tNAME\tKCAL/100G\tP\tC\tF\tSOURCE")
			for _, f := range foods {
				if foodListCategory != "" && f.CategoryID != foodListCategory {
					continue
				}
				source := "custom"
				if f.IsDefault {
					source = "default"
				}
				category := f.CategoryID
				if c, ok := catalog.CategoryByID(f.CategoryID); ok {
					category = c.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%s\n",
					f.ID, category, f.Name, f.CaloriesPer100g, f.ProteinPer100g, f.CarbsPer100g, f.FatPer100g, source)
			}
			return nil
		})
	},
}

var (
	foodName     string
	foodCategory string
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodImageURL string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom food (per 100g nutrients)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := catalog.CategoryByID(foodCategory); !ok {
			return fmt.Errorf("unknown category %q", foodCategory)
		}
		return withAccessor(func(_ *session.Manager, acc *store.Accessor) error {
			if _, err := acc.FetchFoods(cmd.Context()); err != nil {
				return err
			}
			created, err := acc.AddCustomFood(cmd.Context(), model.FoodItem{
				CategoryID:      foodCategory,
				Name:            foodName,
				CaloriesPer100g: foodCalories,
				ProteinPer100g:  foodProtein,
				CarbsPer100g:    foodCarbs,
				FatPer100g:      foodFat,
				ImageURL:        foodImageURL,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added custom food %s (%s)\n", created.Name, created.ID)
			return nil
		})
	},
}

var foodCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List food categories",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME")
		for _, c := range catalog.Categories {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\n", c.ID, c.Icon, c.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodCategoriesCmd)

	foodListCmd.Flags().StringVar(&foodListCategory, "category", "", "Filter by category id")

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().StringVar(&foodCategory, "category", "", "Category id (see food categories)")
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per 100g")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein g per 100g")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs g per 100g")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat g per 100g")
	foodAddCmd.Flags().StringVar(&foodImageURL, "image-url", "", "Optional image URL")
	_ = foodAddCmd.MarkFlagRequired("name")
	_ = foodAddCmd.MarkFlagRequired("category")
}
