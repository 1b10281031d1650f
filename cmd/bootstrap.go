package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/krishna0743/careerguid-ai/internal/ai/gemini"
	"github.com/krishna0743/careerguid-ai/internal/careers"
	"github.com/krishna0743/careerguid-ai/internal/logger"
	"github.com/krishna0743/careerguid-ai/internal/secrets"
)

const geminiProvider = "gemini"

// environment is what every command needs before doing its work.
type environment struct {
	logger *zap.Logger
	config *Config
	store  *careers.Store
}

// bootstrap builds the logger, reads the config and loads the dataset.
// It exits the process on unrecoverable errors.
func bootstrap() *environment {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	store := careers.Load(config.Dataset, logger)
	logger.Info("career dataset ready",
		zap.Int("records", store.Len()),
		zap.Bool("fallback", store.IsFallback()),
	)

	return &environment{logger: logger, config: config, store: store}
}

// newCounselor always returns a usable counselor. Missing credentials or a
// failed client produce a disabled one that answers with a fixed reply.
func newCounselor(ctx context.Context, cfg *GeminiConfig, log *zap.Logger) *gemini.Counselor {
	log = logger.WithAI(log, geminiProvider, cfg.Model)

	counselorConfig := gemini.CounselorConfig{
		MaxAttempts:       cfg.MaxAttempts,
		BackoffUnit:       cfg.BackoffUnit,
		RequestsPerMinute: cfg.RequestsPerMinute,
		MaxLogLength:      cfg.MaxLogLength,
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
	})
	switch {
	case errors.Is(err, secrets.ErrNotConfigured):
		log.Info("gemini api key is not set, relying on ambient credentials",
			zap.String("hint", "set GEMINI_API_KEY or ai.gemini.api-key-file"),
		)
	case err != nil:
		log.Warn("chat is disabled", zap.Error(err))
		return gemini.NewCounselor(nil, counselorConfig, log)
	}

	var generator gemini.ContentGenerator
	g, err := gemini.NewGenerator(ctx, apiKey, cfg.Model)
	if err != nil {
		log.Warn("chat is disabled", zap.Error(err))
	} else {
		generator = g
	}

	return gemini.NewCounselor(generator, counselorConfig, log)
}
