package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/krishna0743/careerguid-ai/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the career matching API and chat",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address (default is :5000)")

	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := bootstrap()
	env.logger.Info("starting the careerguide", zap.String("version", version))

	counselor := newCounselor(ctx, env.config.AI.Gemini, env.logger)

	srv := server.New(server.Config{
		Address:         env.config.Server.Address,
		ShutdownTimeout: env.config.Server.ShutdownTimeout,
		MaxUploadBytes:  env.config.Server.MaxUploadBytes,
	}, env.store, counselor, env.logger.Named("server"))

	if err := srv.Start(ctx); err != nil {
		env.logger.Fatal("serving", zap.Error(err))
	}
}
