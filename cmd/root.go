package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/syedwebdesign/intake_backend/cmd/http"
	wizardcmd "github.com/syedwebdesign/intake_backend/cmd/wizard"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "syed-intake",
	Short: "Lead-intake backend for the Syed Web Design agency site.",
	Long: `Backend for the Syed Web Design & Developers site. It exposes the
contact and onboarding form endpoints that validate, rate-limit, and relay
submissions as email, and ships an interactive intake wizard for the CLI.`,
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
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(wizardcmd.NewWizardCommand())
}
