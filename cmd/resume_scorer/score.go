package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	scoreResume  string
	scoreJob     string
	scoreCompany string
	scoreConfig  string
	scoreJSON    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  `Score reads a resume and a job description from text files and prints the compatibility score with a component breakdown.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResume, "resume", "", "Path to resume text file")
	scoreCmd.Flags().StringVar(&scoreJob, "job", "", "Path to job description text file")
	scoreCmd.Flags().StringVar(&scoreCompany, "company", "", "Target company name")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the full response as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:  scoreResume,
		Job:     scoreJob,
		Company: scoreCompany,
	}
	if scoreConfig != "" {
		loaded, err := config.LoadConfig(scoreConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*loaded)
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required")
	}

	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	ctx := context.Background()
	embedder := newEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if embedder != nil {
		defer embedder.Close()
	}

	engine := scoring.NewEngine(embedder)
	result := engine.Score(ctx, string(resumeText), string(jobText), cfg.Company)

	if scoreJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(types.NewScoreResponse(result))
	}

	fmt.Printf("Final score:         %.1f / 100\n", result.FinalScore)
	fmt.Printf("Skills match:        %.1f%%\n", result.SkillsMatch)
	fmt.Printf("Semantic similarity: %.1f%% (%s)\n", result.SemanticSimilarity, result.Breakdown.MethodUsed)
	fmt.Printf("Experience match:    %.1f%%\n", result.ExperienceMatch)
	fmt.Printf("Company adjustment:  %+.1f%%\n", result.CompanyAdjustment)
	fmt.Printf("\n%s\n", result.Explanation)

	return nil
}
