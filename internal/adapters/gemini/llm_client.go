package gemini

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mikey/restyle/internal/core"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ProviderName identifies Gemini in results and errors
const ProviderName = "gemini"

// GeminiClient is an implementation of the ImageGenerator interface using Google Gemini
type GeminiClient struct {
	client    *genai.Client
	modelName string
	logger    *zap.Logger
}

// NewGeminiClient creates a new Gemini client.
// An empty baseURL keeps the SDK default endpoint.
func NewGeminiClient(
	ctx context.Context,
	apiKey string,
	modelName string,
	baseURL string,
	httpClient *http.Client,
	logger *zap.Logger,
) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
		logger:    logger,
	}, nil
}

// Name returns the provider name
func (c *GeminiClient) Name() string {
	return ProviderName
}

// Generate sends the instruction and source image and returns the response parts in order
func (c *GeminiClient) Generate(ctx context.Context, instruction string, image *core.Image) ([]core.ContentPart, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(instruction),
			genai.NewPartFromBytes(image.Data, image.MIMEType),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityText), string(genai.ModalityImage)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("prompt blocked by Gemini safety filters: %s", resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return nil, nil
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		if isSafetyStop(candidate.FinishReason) {
			return nil, fmt.Errorf("response blocked by Gemini safety filters: %s", candidate.FinishReason)
		}
		return nil, nil
	}

	parts := make([]core.ContentPart, 0, len(candidate.Content.Parts))
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		switch {
		case part.InlineData != nil:
			parts = append(parts, core.ContentPart{
				InlineData: &core.Image{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType},
			})
		case part.Text != "":
			parts = append(parts, core.ContentPart{Text: part.Text})
		}
	}

	c.logger.Debug("Gemini response received",
		zap.String("model", c.modelName),
		zap.String("finish_reason", string(candidate.FinishReason)),
		zap.Int("parts", len(parts)))

	return parts, nil
}

func isSafetyStop(reason genai.FinishReason) bool {
	switch reason {
	case genai.FinishReasonSafety, genai.FinishReasonImageSafety, genai.FinishReasonProhibitedContent:
		return true
	}
	return false
}
