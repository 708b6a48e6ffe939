package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/habitacasa/habitacasa_backend/cmd/http"
	systemcmd "github.com/habitacasa/habitacasa_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "habitacasa",
	Short: "HabitaCasa multi-tenant back office for real-estate agencies.",
	Long: `HabitaCasa is a multi-tenant back office for real-estate agencies.
It manages commission allocation rules: how much of each sale the agency
retains and how that share is split among brokers and staff.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
