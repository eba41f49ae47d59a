package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "orgls",
	Short:         "List GitHub organization repositories",
	Long:          `orgls lists an organization's public repositories, filters them by license, and summarizes license usage.`,
	SilenceErrors: true,
}

var (
	verbose    bool
	configPath string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default: ./config.toml, ~/.config/orgls/config.toml, or ~/.orgls.toml)")
}
