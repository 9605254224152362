package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-checker/internal/embedding"
	"github.com/jonathan/jobmatch-checker/internal/engine"
	"github.com/jonathan/jobmatch-checker/internal/extract"
	"github.com/jonathan/jobmatch-checker/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis endpoint. Runs in deterministic fallback mode when no GEMINI_API_KEY is configured.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	embedder, err := embedding.NewProvider(context.Background(), apiKey, os.Getenv("EMBEDDING_MODEL"))
	if err != nil {
		return fmt.Errorf("failed to create embedding provider: %w", err)
	}

	srv := server.New(server.Config{
		Port:      servePort,
		Engine:    engine.New(cfg, embedder, extract.NewParser(apiKey)),
		APIKeySet: apiKey != "",
	})
	return srv.Start()
}
