// Package main provides the entry point for the Resume Scorer CLI and HTTP API server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/embedding"
)

var rootCmd = &cobra.Command{
	Use:   "resume_scorer",
	Short: "Resume Scorer HTTP API Server",
	Long:  "Resume Scorer computes a compatibility score between a resume and a job description using skill taxonomy matching, experience profiling and semantic similarity.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newEmbedder builds the optional embedding backend. A missing API key or
// a backend failure is not fatal: scoring degrades to lexical similarity.
func newEmbedder(ctx context.Context, apiKey, model string) embedding.Embedder {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, using lexical similarity only")
		return nil
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, apiKey, model)
	if err != nil {
		log.Printf("Failed to create embedding backend, using lexical similarity only: %v", err)
		return nil
	}
	return embedder
}
