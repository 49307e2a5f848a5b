package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/ai"
	"github.com/spigell/cv-assistant/internal/ai/gemini"
	"github.com/spigell/cv-assistant/internal/ai/openai"
	"github.com/spigell/cv-assistant/internal/assistant"
	"github.com/spigell/cv-assistant/internal/cv"
	"github.com/spigell/cv-assistant/internal/logger"
	"github.com/spigell/cv-assistant/internal/recruitment"
	"github.com/spigell/cv-assistant/internal/secrets"
)

const (
	providerOpenAI = ai.ProviderOpenAI
	providerGemini = ai.ProviderGemini
)

// runtime is everything a command needs, built from the config.
type runtime struct {
	config    *Config
	logger    *zap.Logger
	store     *recruitment.Store
	assistant *assistant.Service
}

func setup(ctx context.Context) *runtime {
	appLog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		appLog.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redacted(config), "", "  ")
	appLog.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	store, err := recruitment.Load(config.DataDir)
	if err != nil {
		appLog.Fatal("loading fixtures", zap.String("data_dir", config.DataDir), zap.Error(err))
	}

	generator, err := newGenerator(ctx, config.AI)
	switch {
	case errors.Is(err, secrets.ErrNotConfigured):
		appLog.Info("no model credential configured, using rule-based analysis",
			zap.String(logger.FieldProvider, config.AI.Provider),
		)
	case err != nil:
		appLog.Warn("skipping model, using rule-based analysis", zap.Error(err))
	}

	svc := assistant.New(assistant.Config{
		Timeout:      config.AI.Timeout,
		MaxLogLength: config.AI.MaxLogLength,
	}, assistant.Deps{
		Generator: generator,
		Provider:  normalizeProvider(config.AI.Provider),
		Extractor: cv.NewExtractor(cv.Options{
			ReferenceSkills: config.Skills.Reference,
			PresentYear:     config.PresentYear,
		}),
		Jobs:      store.Postings(),
		Templates: store.Templates(),
		Logger:    appLog,
	})

	return &runtime{
		config:    config,
		logger:    appLog,
		store:     store,
		assistant: svc,
	}
}

// newGenerator returns a nil generator and an error when the model cannot be used.
func newGenerator(ctx context.Context, cfg *AIConfig) (ai.Generator, error) {
	switch provider := normalizeProvider(cfg.Provider); provider {
	case providerOpenAI:
		apiKey, err := secrets.Load(secrets.Source{
			Name:  "openai api key",
			Value: cfg.OpenAI.APIKey,
			File:  cfg.OpenAI.APIKeyFile,
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set ai.openai.api-key-file or OPENAI_API_KEY)", err)
		}
		generator, err := openai.NewGenerator(apiKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, nil)
		if err != nil {
			return nil, err
		}
		return generator, nil

	case providerGemini:
		apiKey, err := secrets.Load(secrets.Source{
			Name:  "gemini api key",
			Value: cfg.Gemini.APIKey,
			File:  cfg.Gemini.APIKeyFile,
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
		}
		generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		return generator, nil

	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}

func normalizeProvider(provider string) string {
	provider = strings.TrimSpace(strings.ToLower(provider))
	if provider == "" {
		return providerOpenAI
	}
	return provider
}

// redacted returns a copy of config without inline credentials.
func redacted(config *Config) *Config {
	out := *config

	aiCfg := *config.AI
	openaiCfg := *config.AI.OpenAI
	geminiCfg := *config.AI.Gemini

	if openaiCfg.APIKey != "" {
		openaiCfg.APIKey = "***"
	}
	if geminiCfg.APIKey != "" {
		geminiCfg.APIKey = "***"
	}

	aiCfg.OpenAI = &openaiCfg
	aiCfg.Gemini = &geminiCfg
	out.AI = &aiCfg

	return &out
}
