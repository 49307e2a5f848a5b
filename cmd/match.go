package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/cv"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank the job catalog against a CV or a saved analysis",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("file", "f", "", "CV file to analyze first. Default is stdin.")
	matchCmd.Flags().StringP("analysis", "a", "", "JSON file with a CV analysis, as printed by 'analyze --raw'")
	matchCmd.Flags().Int("job-id", 0, "score only this job")
	addRawFlag(matchCmd)
}

func match(cmd *cobra.Command) {
	ctx := context.Background()
	rt := setup(ctx)

	analysis, err := loadAnalysis(ctx, cmd, rt)
	if err != nil {
		rt.logger.Fatal("getting cv analysis", zap.Error(err))
	}

	var jobID *int
	if cmd.Flags().Changed("job-id") {
		id, _ := cmd.Flags().GetInt("job-id")
		jobID = &id
	}

	matches, err := rt.assistant.MatchJobs(ctx, analysis, jobID)
	if err != nil {
		rt.logger.Fatal("matching jobs", zap.Error(err))
	}

	rt.logger.Info("jobs matched", zap.Int("count", len(matches)))

	if err := printJSON(cmd, "Job matches", matches); err != nil {
		rt.logger.Fatal("printing result", zap.Error(err))
	}
}

func loadAnalysis(ctx context.Context, cmd *cobra.Command, rt *runtime) (*cv.Analysis, error) {
	path, _ := cmd.Flags().GetString("analysis")
	if path == "" {
		text, err := readCV(cmd)
		if err != nil {
			return nil, err
		}
		return rt.assistant.AnalyzeCV(ctx, text)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis file: %w", err)
	}

	var analysis cv.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("decoding analysis file %q: %w", path, err)
	}
	analysis.Normalize()

	return &analysis, nil
}
