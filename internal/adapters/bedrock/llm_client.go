package bedrock

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/mikey/restyle/internal/core"
	"go.uber.org/zap"
)

// ProviderName identifies Bedrock in results and errors
const ProviderName = "bedrock"

const (
	// maxPromptRunes is the Titan limit on the variation text
	maxPromptRunes = 512
	outputMIMEType = "image/png"
	imageSize      = 1024
)

// InvokeModelAPI is the subset of the Bedrock runtime client used for image variation
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockClient is an implementation of the ImageGenerator interface using Amazon Titan image models on Bedrock
type BedrockClient struct {
	client             InvokeModelAPI
	modelID            string
	similarityStrength float64
	logger             *zap.Logger
}

type titanRequest struct {
	TaskType              string                `json:"taskType"`
	ImageVariationParams  titanVariationParams  `json:"imageVariationParams"`
	ImageGenerationConfig titanGenerationConfig `json:"imageGenerationConfig"`
}

type titanVariationParams struct {
	Text               string   `json:"text"`
	Images             []string `json:"images"`
	SimilarityStrength float64  `json:"similarityStrength,omitempty"`
}

type titanGenerationConfig struct {
	NumberOfImages int    `json:"numberOfImages"`
	Quality        string `json:"quality"`
	Height         int    `json:"height"`
	Width          int    `json:"width"`
}

type titanResponse struct {
	Images []string `json:"images"`
	Error  string   `json:"error"`
}

// NewBedrockClient loads the AWS configuration for region and creates a new Bedrock client
func NewBedrockClient(ctx context.Context, region, modelID string, similarityStrength float64, logger *zap.Logger) (*BedrockClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return NewWithClient(bedrockruntime.NewFromConfig(awsCfg), modelID, similarityStrength, logger), nil
}

// NewWithClient creates a Bedrock client around an existing runtime client
func NewWithClient(client InvokeModelAPI, modelID string, similarityStrength float64, logger *zap.Logger) *BedrockClient {
	return &BedrockClient{
		client:             client,
		modelID:            modelID,
		similarityStrength: similarityStrength,
		logger:             logger,
	}
}

// Name returns the provider name
func (c *BedrockClient) Name() string {
	return ProviderName
}

// Generate runs a Titan image variation guided by the instruction
func (c *BedrockClient) Generate(ctx context.Context, instruction string, image *core.Image) ([]core.ContentPart, error) {
	if !c.isAmazonTitanModel() {
		return nil, fmt.Errorf("unsupported Bedrock image model: %s", c.modelID)
	}

	payload, err := json.Marshal(titanRequest{
		TaskType: "IMAGE_VARIATION",
		ImageVariationParams: titanVariationParams{
			Text:               truncateRunes(instruction, maxPromptRunes),
			Images:             []string{base64.StdEncoding.EncodeToString(image.Data)},
			SimilarityStrength: c.similarityStrength,
		},
		ImageGenerationConfig: titanGenerationConfig{
			NumberOfImages: 1,
			Quality:        "standard",
			Height:         imageSize,
			Width:          imageSize,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		Body:        payload,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke Bedrock model: %w", err)
	}

	var titanResp titanResponse
	if err := json.Unmarshal(resp.Body, &titanResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Titan response: %w", err)
	}
	if titanResp.Error != "" {
		return nil, fmt.Errorf("titan image generation failed: %s", titanResp.Error)
	}

	parts := make([]core.ContentPart, 0, len(titanResp.Images))
	for i, encoded := range titanResp.Images {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode Titan image %d: %w", i, err)
		}
		parts = append(parts, core.ContentPart{
			InlineData: &core.Image{Data: data, MIMEType: outputMIMEType},
		})
	}

	c.logger.Debug("Bedrock response received",
		zap.String("model", c.modelID),
		zap.Int("images", len(parts)))

	return parts, nil
}

// isAmazonTitanModel checks if the model is an Amazon Titan model
func (c *BedrockClient) isAmazonTitanModel() bool {
	return strings.HasPrefix(c.modelID, "amazon.titan")
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
