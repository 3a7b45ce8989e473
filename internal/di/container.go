package di

import (
	"context"

	"go.uber.org/dig"

	"github.com/mikey/restyle/internal/config"
	"github.com/mikey/restyle/internal/core"
	"github.com/mikey/restyle/internal/factory"
	"github.com/mikey/restyle/internal/logging"
	"github.com/mikey/restyle/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	if err := provideServices(ctx, container); err != nil {
		return nil, err
	}

	return container, nil
}

// provideServices registers the factories, providers and services on top of a config and logger
func provideServices(ctx context.Context, container *dig.Container) error {
	// Register factories
	if err := container.Provide(factory.NewEmailFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewImageFactory); err != nil {
		return err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return err
	}

	// Register email provider
	if err := container.Provide(func(f *factory.EmailFactory) (core.EmailProvider, error) {
		return f.CreateEmailProvider(ctx)
	}); err != nil {
		return err
	}

	// Register image generator
	if err := container.Provide(func(f *factory.ImageFactory) (core.ImageGenerator, error) {
		return f.CreateImageGenerator(ctx)
	}); err != nil {
		return err
	}

	// Register sender identity and transformer tunables
	if err := container.Provide(func(f *factory.EmailFactory) core.SenderIdentity {
		return f.SenderIdentity()
	}); err != nil {
		return err
	}
	if err := container.Provide(func(f *factory.ImageFactory) core.TransformerConfig {
		return f.TransformerConfig()
	}); err != nil {
		return err
	}

	// Register services
	if err := container.Provide(core.NewNotificationSender); err != nil {
		return err
	}
	if err := container.Provide(core.NewImageTransformer); err != nil {
		return err
	}

	return nil
}
