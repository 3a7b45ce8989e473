// Package templates renders the transactional email bodies.
package templates

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

// Kind identifies one of the fixed email scenarios
type Kind string

const (
	KindVerifyEmail   Kind = "verify-email"
	KindResetPassword Kind = "reset-password"
)

// Data holds the variables available to every template
type Data struct {
	Name    string
	Link    string
	Expiry  string
	AppName string
}

// Rendered is a fully rendered email
type Rendered struct {
	Subject string
	Text    string
	HTML    string
}

type emailTemplate struct {
	subject string
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

const verifyText = `Hi {{.Name}},

Thanks for signing up for {{.AppName}}. Please confirm your email address by opening the link below:

{{.Link}}

This link expires in {{.Expiry}}.

If you didn't create an account, you can safely ignore this email.

The {{.AppName}} team
`

const verifyHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222; max-width: 560px; margin: 0 auto; padding: 24px;">
  <h2>Verify your email</h2>
  <p>Hi {{.Name}},</p>
  <p>Thanks for signing up for {{.AppName}}. Please confirm your email address by clicking the button below.</p>
  <p style="margin: 32px 0;">
    <a href="{{.Link}}" style="background: #6c47ff; color: #fff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Verify email</a>
  </p>
  <p>Or paste this link into your browser:<br><a href="{{.Link}}">{{.Link}}</a></p>
  <p>This link expires in {{.Expiry}}.</p>
  <p style="color: #888; font-size: 12px;">If you didn't create an account, you can safely ignore this email.</p>
</body>
</html>
`

const resetText = `Hi {{.Name}},

We received a request to reset the password for your {{.AppName}} account. Open the link below to choose a new password:

{{.Link}}

This link expires in {{.Expiry}}.

If you didn't request a password reset, you can safely ignore this email. Your password will not change.

The {{.AppName}} team
`

const resetHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222; max-width: 560px; margin: 0 auto; padding: 24px;">
  <h2>Reset your password</h2>
  <p>Hi {{.Name}},</p>
  <p>We received a request to reset the password for your {{.AppName}} account.</p>
  <p style="margin: 32px 0;">
    <a href="{{.Link}}" style="background: #6c47ff; color: #fff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Reset password</a>
  </p>
  <p>Or paste this link into your browser:<br><a href="{{.Link}}">{{.Link}}</a></p>
  <p>This link expires in {{.Expiry}}.</p>
  <p style="color: #888; font-size: 12px;">If you didn't request a password reset, you can safely ignore this email. Your password will not change.</p>
</body>
</html>
`

var registry = map[Kind]*emailTemplate{
	KindVerifyEmail: {
		subject: "Verify your email address",
		text:    texttemplate.Must(texttemplate.New("verify-text").Parse(verifyText)),
		html:    htmltemplate.Must(htmltemplate.New("verify-html").Parse(verifyHTML)),
	},
	KindResetPassword: {
		subject: "Reset your password",
		text:    texttemplate.Must(texttemplate.New("reset-text").Parse(resetText)),
		html:    htmltemplate.Must(htmltemplate.New("reset-html").Parse(resetHTML)),
	},
}

// Render renders the subject, text and HTML bodies for the given scenario
func Render(kind Kind, data Data) (*Rendered, error) {
	tmpl, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown email template: %s", kind)
	}

	if strings.TrimSpace(data.Name) == "" {
		data.Name = "there"
	}

	var text bytes.Buffer
	if err := tmpl.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to render %s text body: %w", kind, err)
	}

	var html bytes.Buffer
	if err := tmpl.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render %s HTML body: %w", kind, err)
	}

	subject := tmpl.subject
	if data.AppName != "" {
		subject = fmt.Sprintf("%s - %s", subject, data.AppName)
	}

	return &Rendered{
		Subject: subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

// FormatExpiry formats a link lifetime for the email body, e.g. "1 hour" or "24 hours"
func FormatExpiry(d time.Duration) string {
	hours := int(d.Hours())
	switch {
	case hours == 1:
		return "1 hour"
	case hours > 1:
		return fmt.Sprintf("%d hours", hours)
	}

	minutes := int(d.Minutes())
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
