package caltrack

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "caltrack",
	Short: "caltrack tracks calories and macros, locally or against your account",
	Long: "caltrack is a calorie and macro tracking CLI. It works out of the box in " +
		"guest mode with all data stored locally, and can sign up for a hosted " +
		"account that takes over your guest data.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Optional .env for CALTRACK_API_URL; absence is fine.
	_ = godotenv.Load()
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to local SQLite database")
}
