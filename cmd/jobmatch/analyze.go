package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-checker/internal/embedding"
	"github.com/jonathan/jobmatch-checker/internal/engine"
	"github.com/jonathan/jobmatch-checker/internal/extract"
	"github.com/jonathan/jobmatch-checker/internal/ingest"
	"github.com/jonathan/jobmatch-checker/internal/observability"
)

var (
	analyzeJobPath    string
	analyzeJobURL     string
	analyzeResumePath string
	analyzeJSON       bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  `Analyze a job description and a resume and print the explainable match report. Without a GEMINI_API_KEY the analysis runs fully offline in deterministic fallback mode.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to the job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to the resume text file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw JSON report")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Also print the per-responsibility evidence map")
	_ = analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagsMutuallyExclusive("job", "job-url")
	analyzeCmd.MarkFlagsOneRequired("job", "job-url")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	jdText, err := readJobText(ctx)
	if err != nil {
		return err
	}
	cvBytes, err := os.ReadFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	embedder, err := embedding.NewProvider(ctx, apiKey, os.Getenv("EMBEDDING_MODEL"))
	if err != nil {
		return fmt.Errorf("failed to create embedding provider: %w", err)
	}

	eng := engine.New(cfg, embedder, extract.NewParser(apiKey))
	report, err := eng.AnalyzeTexts(ctx, jdText, string(cvBytes))
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReport(report)
	if analyzeVerbose {
		printer.PrintMatchedLines(report)
	}
	return nil
}

// readJobText loads the job description from whichever input was given.
func readJobText(ctx context.Context) (string, error) {
	if analyzeJobURL != "" {
		text, err := ingest.JobText(ctx, analyzeJobURL)
		if err != nil {
			return "", err
		}
		return text, nil
	}
	data, err := os.ReadFile(analyzeJobPath)
	if err != nil {
		return "", fmt.Errorf("failed to read job file: %w", err)
	}
	return string(data), nil
}
