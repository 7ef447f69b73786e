// Package main provides the entry point for the beauty analysis HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glowup_api",
	Short: "Beauty Analysis HTTP API Server",
	Long:  "Serves personal color and ingredient sensitivity analysis plus thin CRUD access to the hosted profile and product database.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
