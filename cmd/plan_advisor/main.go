// Package main provides the entry point for the plan advisor service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "plan_advisor",
	Short: "Health insurance plan recommendation service",
	Long:  "Plan advisor filters a health-insurance benefit catalog by a user's profile, scores the candidates, and produces an AI-assisted ranked recommendation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
