package mailgun

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/mikey/restyle/internal/core"
	"go.uber.org/zap"
)

// ProviderName identifies Mailgun in receipts and errors
const ProviderName = "mailgun"

const (
	euAPIBase   = "https://api.eu.mailgun.net/v3"
	sendTimeout = 30 * time.Second
)

// MailgunClient is an implementation of the EmailProvider interface using Mailgun
type MailgunClient struct {
	client *mailgun.MailgunImpl
	logger *zap.Logger
}

// NewMailgunClient creates a new Mailgun client.
// region "eu" selects the EU API base; apiBase, when set, overrides both.
func NewMailgunClient(apiKey, domain, region, apiBase string, logger *zap.Logger) (*MailgunClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("mailgun API key is required")
	}
	if domain == "" {
		return nil, fmt.Errorf("mailgun domain is required")
	}

	mg := mailgun.NewMailgun(domain, apiKey)
	switch {
	case apiBase != "":
		mg.SetAPIBase(apiBase)
	case region == "eu":
		mg.SetAPIBase(euAPIBase)
	}

	return &MailgunClient{
		client: mg,
		logger: logger,
	}, nil
}

// Name returns the provider name
func (c *MailgunClient) Name() string {
	return ProviderName
}

// Send submits a message through the Mailgun messages API
func (c *MailgunClient) Send(ctx context.Context, msg *core.EmailMessage) (*core.DeliveryReceipt, error) {
	m := c.client.NewMessage(msg.Sender(), msg.Subject, msg.Text, msg.To)
	if msg.HTML != "" {
		m.SetHtml(msg.HTML)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	status, id, err := c.client.Send(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to send email with Mailgun: %w", err)
	}

	c.logger.Debug("Mailgun queued message",
		zap.String("id", id),
		zap.String("status", status))

	// Mailgun only reports success through a 200 response
	return &core.DeliveryReceipt{
		Accepted:   true,
		StatusCode: http.StatusOK,
		MessageID:  id,
		Provider:   ProviderName,
	}, nil
}
