package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default :8000)")
	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	ctx := context.Background()
	rt := setup(ctx)

	rt.logger.Info("starting the cv-assistant",
		zap.String("version", version),
		zap.Bool("assisted", rt.assistant.Assisted()),
	)

	srv := server.New(server.Config{Addr: rt.config.Listen}, server.Deps{
		Assistant: rt.assistant,
		Store:     rt.store,
		Logger:    rt.logger,
	})

	if err := srv.Run(ctx); err != nil {
		rt.logger.Fatal("server failed", zap.Error(err))
	}
}
