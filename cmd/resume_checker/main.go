// Package main provides the entry point for the resume format checker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_checker",
	Short: "Resume format checker",
	Long:  "Resume format checker validates a YAML resume against the expected structure and reports exactly which fields are missing or mistyped, with a correct example for each.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
