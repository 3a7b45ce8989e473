package ses

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/mikey/restyle/internal/core"
	"go.uber.org/zap"
)

// ProviderName identifies SES in receipts and errors
const ProviderName = "ses"

// SendEmailAPI is the subset of the SES v2 client used to send mail
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Options holds the SES connection settings
type Options struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	ConfigurationSet string
}

// SESClient is an implementation of the EmailProvider interface using Amazon SES v2
type SESClient struct {
	client           SendEmailAPI
	configurationSet string
	logger           *zap.Logger
}

// NewSESClient loads the AWS configuration and creates a new SES client.
// Static keys are used when both are set, otherwise the default credential chain applies.
func NewSESClient(ctx context.Context, opts Options, logger *zap.Logger) (*SESClient, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return NewWithClient(sesv2.NewFromConfig(awsCfg), opts.ConfigurationSet, logger), nil
}

// NewWithClient creates an SES client around an existing SendEmailAPI
func NewWithClient(client SendEmailAPI, configurationSet string, logger *zap.Logger) *SESClient {
	return &SESClient{
		client:           client,
		configurationSet: configurationSet,
		logger:           logger,
	}
}

// Name returns the provider name
func (c *SESClient) Name() string {
	return ProviderName
}

// Send submits a message as simple SES content
func (c *SESClient) Send(ctx context.Context, msg *core.EmailMessage) (*core.DeliveryReceipt, error) {
	input := buildSimpleInput(msg)
	if c.configurationSet != "" {
		input.ConfigurationSetName = aws.String(c.configurationSet)
	}

	out, err := c.client.SendEmail(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to send email with SES: %w", err)
	}

	receipt := &core.DeliveryReceipt{
		Accepted:   true,
		StatusCode: responseStatus(out),
		MessageID:  aws.ToString(out.MessageId),
		Provider:   ProviderName,
	}

	c.logger.Debug("SES accepted message",
		zap.String("id", receipt.MessageID),
		zap.Int("status_code", receipt.StatusCode))

	return receipt, nil
}

// responseStatus reads the HTTP status from the operation metadata, defaulting to 200
func responseStatus(out *sesv2.SendEmailOutput) int {
	if raw, ok := awsmiddleware.GetRawResponse(out.ResultMetadata).(*smithyhttp.Response); ok && raw != nil {
		return raw.StatusCode
	}
	return http.StatusOK
}

func buildSimpleInput(msg *core.EmailMessage) *sesv2.SendEmailInput {
	body := &types.Body{}
	if msg.HTML != "" {
		body.Html = &types.Content{
			Data:    aws.String(msg.HTML),
			Charset: aws.String("UTF-8"),
		}
	}
	if msg.Text != "" {
		body.Text = &types.Content{
			Data:    aws.String(msg.Text),
			Charset: aws.String("UTF-8"),
		}
	}

	return &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.Sender()),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(msg.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: body,
			},
		},
	}
}
