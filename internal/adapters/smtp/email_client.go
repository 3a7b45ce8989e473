package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	mail "github.com/go-mail/mail"
	"github.com/mikey/restyle/internal/core"
	"go.uber.org/zap"
)

// ProviderName identifies the SMTP relay in receipts and errors
const ProviderName = "smtp"

// statusOK is the SMTP reply code for a completed mail transaction
const statusOK = 250

const dialTimeout = 30 * time.Second

// Sender delivers composed messages; *mail.Dialer satisfies it
type Sender interface {
	DialAndSend(m ...*mail.Message) error
}

// Options holds the SMTP relay settings
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	// TLSMode is one of "starttls", "ssl" or "none"
	TLSMode string
}

// SMTPClient is an implementation of the EmailProvider interface using a plain SMTP relay
type SMTPClient struct {
	sender Sender
	logger *zap.Logger
}

// NewSMTPClient creates a new SMTP client for the relay in opts
func NewSMTPClient(opts Options, logger *zap.Logger) (*SMTPClient, error) {
	if opts.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}

	d := mail.NewDialer(opts.Host, opts.Port, opts.Username, opts.Password)
	d.Timeout = dialTimeout
	d.TLSConfig = &tls.Config{ServerName: opts.Host}

	switch opts.TLSMode {
	case "ssl":
		d.SSL = true
	case "none":
		d.StartTLSPolicy = mail.NoStartTLS
	case "starttls", "":
		d.StartTLSPolicy = mail.MandatoryStartTLS
	default:
		return nil, fmt.Errorf("unsupported smtp tls mode: %s", opts.TLSMode)
	}

	return NewWithSender(d, logger), nil
}

// NewWithSender creates an SMTP client around an existing Sender
func NewWithSender(sender Sender, logger *zap.Logger) *SMTPClient {
	return &SMTPClient{
		sender: sender,
		logger: logger,
	}
}

// Name returns the provider name
func (c *SMTPClient) Name() string {
	return ProviderName
}

// Send composes a multipart/alternative message and relays it
func (c *SMTPClient) Send(ctx context.Context, msg *core.EmailMessage) (*core.DeliveryReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := buildMessage(msg)
	if err := c.sender.DialAndSend(m); err != nil {
		return nil, fmt.Errorf("failed to send email over SMTP: %w", err)
	}

	c.logger.Debug("SMTP relay accepted message", zap.String("to", msg.To))

	return &core.DeliveryReceipt{
		Accepted:   true,
		StatusCode: statusOK,
		Provider:   ProviderName,
	}, nil
}

func buildMessage(msg *core.EmailMessage) *mail.Message {
	m := mail.NewMessage()
	if msg.FromName != "" {
		m.SetHeader("From", m.FormatAddress(msg.From, msg.FromName))
	} else {
		m.SetHeader("From", msg.From)
	}
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}

	return m
}
