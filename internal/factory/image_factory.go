package factory

import (
	"context"
	"fmt"

	"github.com/mikey/restyle/internal/adapters/bedrock"
	"github.com/mikey/restyle/internal/adapters/gemini"
	"github.com/mikey/restyle/internal/adapters/openai"
	"github.com/mikey/restyle/internal/config"
	"github.com/mikey/restyle/internal/core"
	"go.uber.org/zap"
)

// ImageFactory creates image generators
type ImageFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewImageFactory creates a new image factory
func NewImageFactory(cfg *config.Config, logger *zap.Logger) *ImageFactory {
	return &ImageFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateImageGenerator creates the image generator selected by image.provider.
// A provider without credentials yields a nil generator and no error.
func (f *ImageFactory) CreateImageGenerator(ctx context.Context) (core.ImageGenerator, error) {
	imageCfg := f.cfg.GetImage()

	switch imageCfg.Provider {
	case gemini.ProviderName:
		geminiCfg := f.cfg.GetGemini()
		if geminiCfg.APIKey == "" {
			return f.unconfigured(imageCfg.Provider, "gemini.api_key")
		}
		return gemini.NewGeminiClient(ctx, geminiCfg.APIKey, geminiCfg.ModelName, geminiCfg.BaseURL, nil, f.logger)
	case openai.ProviderName:
		openaiCfg := f.cfg.GetOpenAI()
		if openaiCfg.APIKey == "" {
			return f.unconfigured(imageCfg.Provider, "openai.api_key")
		}
		return openai.NewOpenAIClient(openaiCfg.APIKey, openaiCfg.ModelName, openaiCfg.BaseURL, openaiCfg.Size, f.logger)
	case bedrock.ProviderName:
		bedrockCfg := f.cfg.GetBedrock()
		if bedrockCfg.Region == "" {
			return f.unconfigured(imageCfg.Provider, "bedrock.region")
		}
		return bedrock.NewBedrockClient(ctx, bedrockCfg.Region, bedrockCfg.ModelID, bedrockCfg.SimilarityStrength, f.logger)
	default:
		return nil, fmt.Errorf("unsupported image provider: %s", imageCfg.Provider)
	}
}

// TransformerConfig returns the transformer tunables
func (f *ImageFactory) TransformerConfig() core.TransformerConfig {
	return core.TransformerConfig{
		MaxStyleLength: f.cfg.GetImage().MaxStyleLength,
	}
}

func (f *ImageFactory) unconfigured(provider, key string) (core.ImageGenerator, error) {
	f.logger.Warn("Image provider credentials missing, transformations are disabled",
		zap.String("provider", provider),
		zap.String("key", key))
	return nil, nil
}
