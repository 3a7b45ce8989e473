package di

import (
	"context"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/restyle/internal/config"
	"github.com/mikey/restyle/internal/logging"
)

// CLIFlags contains the global command line flags of the CLI application
type CLIFlags struct {
	// Provider overrides
	EmailProvider string
	ImageProvider string

	// Model overrides
	GeminiModelName string
	OpenAIModelName string
	BedrockModelID  string

	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application.
// Non-empty flags override the loaded configuration.
func BuildCLIContainer(ctx context.Context, flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags) (*config.Config, error) {
		cfg, err := config.Load(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		applyFlags(cfg, flags)
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags, cfg *config.Config) (*zap.Logger, error) {
		logger, err := logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
		if err != nil {
			return nil, err
		}
		if used := cfg.GetViper().ConfigFileUsed(); used != "" {
			logger.Debug("Loaded configuration from file", zap.String("file", used))
		}
		return logger, nil
	}); err != nil {
		return nil, err
	}

	if err := provideServices(ctx, container); err != nil {
		return nil, err
	}

	return container, nil
}

func applyFlags(cfg *config.Config, flags *CLIFlags) {
	overrides := map[string]string{
		"email.provider":    flags.EmailProvider,
		"image.provider":    flags.ImageProvider,
		"gemini.model_name": flags.GeminiModelName,
		"openai.model_name": flags.OpenAIModelName,
		"bedrock.model_id":  flags.BedrockModelID,
	}
	for key, value := range overrides {
		if value != "" {
			cfg.Set(key, value)
		}
	}
}
