// Package cmd implements the snakeoutgen CLI's subcommands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snakeoutgen",
	Short: "Procedural level generator for Snake-Out puzzle levels",
	Long: `snakeoutgen generates and validates Snake-Out puzzle
levels from the command line, for local testing and CI smoke checks
without standing up the HTTP server.`,
}

// Execute runs the root command; called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
}
