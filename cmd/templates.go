package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the email templates and their placeholders",
	Run: func(cmd *cobra.Command, _ []string) {
		rt := setup(context.Background())

		if err := printJSON(cmd, "Email templates", rt.store.TemplateSummaries()); err != nil {
			rt.logger.Fatal("printing result", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	addRawFlag(templatesCmd)
}
