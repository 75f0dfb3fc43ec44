package caltrack

import (
	"fmt"

	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/session"
	"github.com/CodeHadIt/caltrack/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your body stats and goal",
}

var (
	profileHeight   float64
	profileWeight   float64
	profileAge      int
	profileGender   string
	profileActivity string
	profileGoal     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		var updates model.Profile
		changed := 0
		if cmd.Flags().Changed("height") {
			if profileHeight <= 0 {
				return fmt.Errorf("height must be > 0 cm")
			}
			updates.HeightCm = profileHeight
			changed++
		}
		if cmd.Flags().Changed("weight") {
			if profileWeight <= 0 {
				return fmt.Errorf("weight must be > 0 kg")
			}
			updates.WeightKg = profileWeight
			changed++
		}
		if cmd.Flags().Changed("age") {
			if profileAge <= 0 {
				return fmt.Errorf("age must be > 0")
			}
			updates.Age = profileAge
			changed++
		}
		if cmd.Flags().Changed("gender") {
			g, err := parseGender(profileGender)
			if err != nil {
				return err
			}
			updates.Gender = g
			changed++
		}
		if cmd.Flags().Changed("activity") {
			a, err := parseActivity(profileActivity)
			if err != nil {
				return err
			}
			updates.ActivityLevel = a
			changed++
		}
		if cmd.Flags().Changed("goal") {
			g, err := parseGoal(profileGoal)
			if err != nil {
				return err
			}
			updates.Goal = g
			changed++
		}
		if changed == 0 {
			return fmt.Errorf("set at least one flag")
		}

		return withAccessor(func(mgr *session.Manager, _ *store.Accessor) error {
			if err := mgr.UpdateProfile(cmd.Context(), updates); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d profile field(s)\n", changed)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAccessor(func(mgr *session.Manager, _ *store.Accessor) error {
			p, err := mgr.Profile(cmd.Context())
			if err != nil {
				return err
			}
			mode := "guest"
			if !mgr.IsGuest() {
				mode = mgr.Email()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account: %s\n", mode)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", p.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s\n", p.ActivityLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", p.Goal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "lose, maintain, or gain")
}
