package factory

import (
	"context"
	"fmt"

	"github.com/mikey/restyle/internal/adapters/mailgun"
	"github.com/mikey/restyle/internal/adapters/resend"
	"github.com/mikey/restyle/internal/adapters/ses"
	"github.com/mikey/restyle/internal/adapters/smtp"
	"github.com/mikey/restyle/internal/config"
	"github.com/mikey/restyle/internal/core"
	"go.uber.org/zap"
)

// EmailFactory creates email providers
type EmailFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewEmailFactory creates a new email factory
func NewEmailFactory(cfg *config.Config, logger *zap.Logger) *EmailFactory {
	return &EmailFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateEmailProvider creates the email provider selected by email.provider.
// A provider without credentials yields a nil provider and no error.
func (f *EmailFactory) CreateEmailProvider(ctx context.Context) (core.EmailProvider, error) {
	emailCfg := f.cfg.GetEmail()

	switch emailCfg.Provider {
	case resend.ProviderName:
		resendCfg := f.cfg.GetResend()
		if resendCfg.APIKey == "" {
			return f.unconfigured(emailCfg.Provider, "resend.api_key")
		}
		return resend.NewResendClient(resendCfg.APIKey, resendCfg.BaseURL, nil, f.logger)
	case mailgun.ProviderName:
		mailgunCfg := f.cfg.GetMailgun()
		if mailgunCfg.APIKey == "" || mailgunCfg.Domain == "" {
			return f.unconfigured(emailCfg.Provider, "mailgun.api_key")
		}
		return mailgun.NewMailgunClient(mailgunCfg.APIKey, mailgunCfg.Domain, mailgunCfg.Region, "", f.logger)
	case ses.ProviderName:
		sesCfg := f.cfg.GetSES()
		if sesCfg.Region == "" {
			return f.unconfigured(emailCfg.Provider, "ses.region")
		}
		return ses.NewSESClient(ctx, ses.Options{
			Region:           sesCfg.Region,
			AccessKeyID:      sesCfg.AccessKeyID,
			SecretAccessKey:  sesCfg.SecretAccessKey,
			ConfigurationSet: sesCfg.ConfigurationSet,
		}, f.logger)
	case smtp.ProviderName:
		smtpCfg := f.cfg.GetSMTP()
		if smtpCfg.Host == "" {
			return f.unconfigured(emailCfg.Provider, "smtp.host")
		}
		return smtp.NewSMTPClient(smtp.Options{
			Host:     smtpCfg.Host,
			Port:     smtpCfg.Port,
			Username: smtpCfg.Username,
			Password: smtpCfg.Password,
			TLSMode:  smtpCfg.TLSMode,
		}, f.logger)
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", emailCfg.Provider)
	}
}

// SenderIdentity returns the configured From identity
func (f *EmailFactory) SenderIdentity() core.SenderIdentity {
	emailCfg := f.cfg.GetEmail()
	return core.SenderIdentity{
		Address: emailCfg.From,
		Name:    emailCfg.FromName,
		AppName: emailCfg.AppName,
	}
}

func (f *EmailFactory) unconfigured(provider, key string) (core.EmailProvider, error) {
	f.logger.Warn("Email provider credentials missing, notifications are disabled",
		zap.String("provider", provider),
		zap.String("key", key))
	return nil, nil
}
