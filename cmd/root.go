package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/alfassih/praxis_backend/cmd/http"
	systemcmd "github.com/alfassih/praxis_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "praxis",
	Short: "Praxis is the backend for a clinical practice management system.",
	Long: `Praxis is the backend for a clinical practice management system.
It manages patients, their documents, therapists and therapy sessions
for a single practice, with an admin and a therapist role.`,
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
