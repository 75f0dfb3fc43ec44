package caltrack

import (
	"database/sql"
	"fmt"

	"github.com/CodeHadIt/caltrack/internal/session"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage your hosted account and session",
}

var (
	accountEmail    string
	accountPassword string
)

var accountSignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and migrate your guest data onto it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(mgr *session.Manager, _ *sql.DB) error {
			if !mgr.IsGuest() {
				return fmt.Errorf("already signed in as %s", mgr.Email())
			}
			report, err := mgr.SignUp(cmd.Context(), accountEmail, accountPassword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", accountEmail)
			if report.ProfileSynced {
				fmt.Fprintln(cmd.OutOrStdout(), "Profile migrated")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Custom foods migrated: %d (failed: %d)\n", report.FoodsSynced, report.FoodsFailed)
			fmt.Fprintf(cmd.OutOrStdout(), "Food logs migrated: %d (failed: %d)\n", report.LogsSynced, report.LogsFailed)
			return nil
		})
	},
}

var accountLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(mgr *session.Manager, _ *sql.DB) error {
			if err := mgr.SignIn(cmd.Context(), accountEmail, accountPassword); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", accountEmail)
			return nil
		})
	},
}

var accountLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and return to guest mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(mgr *session.Manager, _ *sql.DB) error {
			if err := mgr.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		})
	},
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Request account deletion (a confirmation link is emailed to you)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(mgr *session.Manager, _ *sql.DB) error {
			if err := mgr.RequestAccountDeletion(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Confirmation email sent. The link expires in 24 hours.")
			return nil
		})
	},
}

var accountConfirmDeleteCmd = &cobra.Command{
	Use:   "confirm-delete <token>",
	Short: "Confirm account deletion with the emailed token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(mgr *session.Manager, _ *sql.DB) error {
			if err := mgr.ConfirmAccountDeletion(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountSignupCmd)
	accountCmd.AddCommand(accountLoginCmd)
	accountCmd.AddCommand(accountLogoutCmd)
	accountCmd.AddCommand(accountDeleteCmd)
	accountCmd.AddCommand(accountConfirmDeleteCmd)

	for _, c := range []*cobra.Command{accountSignupCmd, accountLoginCmd} {
		c.Flags().StringVar(&accountEmail, "email", "", "Account email")
		c.Flags().StringVar(&accountPassword, "password", "", "Account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
}
