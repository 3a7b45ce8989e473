package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"github.com/mikey/restyle/internal/core"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ProviderName identifies OpenAI in results and errors
const ProviderName = "openai"

// outputMIMEType is the encoding of images returned by the edits endpoint
const outputMIMEType = "image/png"

// OpenAIClient is an implementation of the ImageGenerator interface using the OpenAI image edits API
type OpenAIClient struct {
	client    *openai.Client
	modelName string
	size      string
	logger    *zap.Logger
}

// NewOpenAIClient creates a new OpenAI client.
// An empty baseURL keeps the SDK default endpoint.
func NewOpenAIClient(apiKey, modelName, baseURL, size string, logger *zap.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		modelName: modelName,
		size:      size,
		logger:    logger,
	}, nil
}

// Name returns the provider name
func (c *OpenAIClient) Name() string {
	return ProviderName
}

// Generate submits the source image to the edits endpoint.
// A revised prompt, when present, is returned as a text part ahead of the images.
func (c *OpenAIClient) Generate(ctx context.Context, instruction string, image *core.Image) ([]core.ContentPart, error) {
	req := openai.ImageEditRequest{
		Image:  openai.WrapReader(bytes.NewReader(image.Data), sourceFilename(image.MIMEType), image.MIMEType),
		Prompt: instruction,
		Model:  c.modelName,
		N:      1,
		Size:   c.size,
	}
	// gpt-image models always answer with base64 and reject response_format
	if !strings.HasPrefix(c.modelName, openai.CreateImageModelGptImage1) {
		req.ResponseFormat = openai.CreateImageResponseFormatB64JSON
	}

	resp, err := c.client.CreateEditImage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to edit image with OpenAI: %w", err)
	}

	var parts []core.ContentPart
	for i, item := range resp.Data {
		if item.RevisedPrompt != "" {
			parts = append(parts, core.ContentPart{Text: item.RevisedPrompt})
		}
		if item.B64JSON == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(item.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OpenAI image %d: %w", i, err)
		}
		parts = append(parts, core.ContentPart{
			InlineData: &core.Image{Data: data, MIMEType: outputMIMEType},
		})
	}

	c.logger.Debug("OpenAI response received",
		zap.String("model", c.modelName),
		zap.Int("images", len(resp.Data)),
		zap.Int("total_tokens", resp.Usage.TotalTokens))

	return parts, nil
}

// sourceFilename names the upload so the API can infer its format
func sourceFilename(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return "source.jpg"
	case "image/png":
		return "source.png"
	case "image/webp":
		return "source.webp"
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return "source" + exts[0]
	}
	return "source.png"
}
