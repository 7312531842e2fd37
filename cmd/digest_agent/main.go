// Package main provides the entry point for the research digest agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "digest_agent",
	Short: "Daily research digest agent",
	Long:  "digest_agent researches a rotating weekday topic with a web-search capable model, extracts a structured digest, and delivers it as an HTML email.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
