// Package main provides the entry point for the JobMatch Checker.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-checker/internal/config"
)

var (
	weightsPath    string
	thresholdsPath string
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Explainable job/resume match scoring",
	Long:  "JobMatch Checker scores a candidate resume against a job description and produces an explainable, bounded fit score with a tier and improvement suggestions.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&weightsPath, "weights", config.DefaultWeightsPath, "Path to the weights JSON document")
	rootCmd.PersistentFlags().StringVar(&thresholdsPath, "thresholds", config.DefaultThresholdsPath, "Path to the thresholds JSON document")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the two configuration documents. A load failure is fatal
// for whichever command called it; the process must not score without valid
// configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(weightsPath, thresholdsPath)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}
