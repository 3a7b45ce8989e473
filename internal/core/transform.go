package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikey/restyle/internal/utils"
	"go.uber.org/zap"
)

// TransformerConfig holds the tunables of the image transformer
type TransformerConfig struct {
	MaxStyleLength int
}

// ImageTransformer applies a hairstyle to a portrait through a generative image provider
type ImageTransformer struct {
	generator     ImageGenerator
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	cfg           TransformerConfig
}

// NewImageTransformer creates a new image transformer.
// A nil generator is allowed; every call then fails with ErrProviderUnconfigured.
func NewImageTransformer(
	generator ImageGenerator,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	cfg TransformerConfig,
) *ImageTransformer {
	return &ImageTransformer{
		generator:     generator,
		textProcessor: textProcessor,
		logger:        logger,
		cfg:           cfg,
	}
}

// Transform restyles the hair of the person in the request image
func (t *ImageTransformer) Transform(ctx context.Context, req *TransformRequest) (*TransformResult, error) {
	if t.generator == nil {
		return nil, fmt.Errorf("image: %w", ErrProviderUnconfigured)
	}

	source, err := DecodeImageInput(req.Image)
	if err != nil {
		return nil, err
	}
	data, err := source.Bytes()
	if err != nil {
		return nil, err
	}

	opts := StyleOptions{
		Hairstyle: t.textProcessor.ProcessText(req.Options.Hairstyle, t.cfg.MaxStyleLength),
		HairColor: t.textProcessor.ProcessText(req.Options.HairColor, t.cfg.MaxStyleLength),
	}
	instruction := BuildInstruction(opts)

	provider := t.generator.Name()
	t.logger.Debug("Submitting image transformation",
		zap.String("provider", provider),
		zap.String("mime_type", source.MIMEType),
		zap.Int("image_size", len(data)),
		zap.String("instruction", instruction))

	startTime := time.Now()
	parts, err := t.generator.Generate(ctx, instruction, &Image{Data: data, MIMEType: source.MIMEType})
	if err != nil {
		classified := ClassifyProviderError(provider, err)
		t.logger.Error("Image transformation failed",
			zap.String("provider", provider),
			zap.Duration("duration", time.Since(startTime)),
			zap.Error(classified))
		return nil, classified
	}

	result, err := firstImage(parts)
	if err != nil {
		t.logger.Warn("Provider returned no image",
			zap.String("provider", provider),
			zap.Int("parts", len(parts)))
		return nil, fmt.Errorf("%s: %w", provider, err)
	}
	result.Provider = provider
	result.Instruction = instruction

	t.logger.Info("Image transformed",
		zap.String("provider", provider),
		zap.String("mime_type", result.Image.MIMEType),
		zap.Int("image_size", len(result.Image.Data)),
		zap.Duration("duration", time.Since(startTime)))

	return result, nil
}

// firstImage returns the first part carrying inline image data.
// Text parts that precede it are collected as the accompanying text.
func firstImage(parts []ContentPart) (*TransformResult, error) {
	var texts []string
	for _, part := range parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &TransformResult{
				Image: *part.InlineData,
				Text:  strings.Join(texts, "\n"),
			}, nil
		}
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return nil, ErrNoImageReturned
}
