package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CV (txt, md, pdf or docx) and print the structured profile",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("file", "f", "", "CV file to analyze. Default is stdin.")
	addRawFlag(analyzeCmd)
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()
	rt := setup(ctx)

	text, err := readCV(cmd)
	if err != nil {
		rt.logger.Fatal("reading cv", zap.Error(err))
	}

	analysis, err := rt.assistant.AnalyzeCV(ctx, text)
	if err != nil {
		rt.logger.Fatal("analyzing cv", zap.Error(err))
	}

	if err := printJSON(cmd, "CV analysis", analysis); err != nil {
		rt.logger.Fatal("printing result", zap.Error(err))
	}
}
