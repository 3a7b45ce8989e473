package resend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mikey/restyle/internal/core"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ProviderName identifies Resend in receipts and errors
const ProviderName = "resend"

// ResendClient is an implementation of the EmailProvider interface using Resend
type ResendClient struct {
	client *resend.Client
	logger *zap.Logger
}

// NewResendClient creates a new Resend client.
// An empty baseURL keeps the SDK default.
func NewResendClient(apiKey string, baseURL string, httpClient *http.Client, logger *zap.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := resend.NewCustomClient(httpClient, apiKey)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid resend base URL: %w", err)
		}
		client.BaseURL = u
	}

	return &ResendClient{
		client: client,
		logger: logger,
	}, nil
}

// Name returns the provider name
func (c *ResendClient) Name() string {
	return ProviderName
}

// Send submits a message to the Resend emails endpoint
func (c *ResendClient) Send(ctx context.Context, msg *core.EmailMessage) (*core.DeliveryReceipt, error) {
	params := &resend.SendEmailRequest{
		From:    msg.Sender(),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}

	req, err := c.client.NewRequest(ctx, http.MethodPost, "emails", params)
	if err != nil {
		return nil, fmt.Errorf("failed to build Resend request: %w", err)
	}

	sent := &resend.SendEmailResponse{}
	resp, err := c.client.Perform(req, sent)
	if err != nil {
		return nil, fmt.Errorf("failed to send email with Resend: %w", err)
	}

	c.logger.Debug("Resend accepted message",
		zap.String("id", sent.Id),
		zap.Int("status_code", resp.StatusCode))

	return &core.DeliveryReceipt{
		Accepted:   true,
		StatusCode: resp.StatusCode,
		MessageID:  sent.Id,
		Provider:   ProviderName,
	}, nil
}
