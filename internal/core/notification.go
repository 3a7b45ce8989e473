package core

import (
	"context"
	"fmt"
	"time"

	"github.com/mikey/restyle/internal/templates"
	"go.uber.org/zap"
)

const (
	// VerificationLinkTTL is the lifetime stated in verification emails
	VerificationLinkTTL = 24 * time.Hour
	// PasswordResetLinkTTL is the lifetime stated in password reset emails
	PasswordResetLinkTTL = time.Hour
)

// SenderIdentity is the From identity used for every notification
type SenderIdentity struct {
	Address string
	Name    string
	AppName string
}

// NotificationSender renders and delivers the account notification emails
type NotificationSender struct {
	provider EmailProvider
	identity SenderIdentity
	logger   *zap.Logger
}

// NewNotificationSender creates a new notification sender.
// A nil provider is allowed; every send then fails with ErrProviderUnconfigured.
func NewNotificationSender(provider EmailProvider, identity SenderIdentity, logger *zap.Logger) *NotificationSender {
	return &NotificationSender{
		provider: provider,
		identity: identity,
		logger:   logger,
	}
}

// SendVerification sends the verify-email message
func (s *NotificationSender) SendVerification(ctx context.Context, recipient, verificationLink, displayName string) (*DeliveryReceipt, error) {
	return s.send(ctx, templates.KindVerifyEmail, recipient, verificationLink, displayName, VerificationLinkTTL)
}

// SendPasswordReset sends the reset-password message
func (s *NotificationSender) SendPasswordReset(ctx context.Context, recipient, resetLink, displayName string) (*DeliveryReceipt, error) {
	return s.send(ctx, templates.KindResetPassword, recipient, resetLink, displayName, PasswordResetLinkTTL)
}

func (s *NotificationSender) send(
	ctx context.Context,
	kind templates.Kind,
	recipient string,
	link string,
	displayName string,
	ttl time.Duration,
) (*DeliveryReceipt, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("email: %w", ErrProviderUnconfigured)
	}

	rendered, err := templates.Render(kind, templates.Data{
		Name:    displayName,
		Link:    link,
		Expiry:  templates.FormatExpiry(ttl),
		AppName: s.identity.AppName,
	})
	if err != nil {
		return nil, err
	}

	msg := &EmailMessage{
		To:       recipient,
		From:     s.identity.Address,
		FromName: s.identity.Name,
		Subject:  rendered.Subject,
		Text:     rendered.Text,
		HTML:     rendered.HTML,
	}

	receipt, err := s.provider.Send(ctx, msg)
	if err != nil {
		s.logger.Error("Failed to send email",
			zap.String("provider", s.provider.Name()),
			zap.String("kind", string(kind)),
			zap.String("recipient", recipient),
			zap.Error(err))
		return nil, &ProviderError{Kind: ErrDeliveryFailed, Provider: s.provider.Name(), Err: err}
	}

	s.logger.Info("Email sent",
		zap.String("provider", receipt.Provider),
		zap.String("kind", string(kind)),
		zap.String("recipient", recipient),
		zap.Int("status_code", receipt.StatusCode),
		zap.String("message_id", receipt.MessageID))

	return receipt, nil
}
