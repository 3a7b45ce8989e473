package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testIdentity = SenderIdentity{
	Address: "noreply@restyle.app",
	Name:    "Restyle",
	AppName: "Restyle",
}

func TestSendVerification(t *testing.T) {
	t.Parallel()

	provider := &fakeEmailProvider{}
	sender := NewNotificationSender(provider, testIdentity, zap.NewNop())

	receipt, err := sender.SendVerification(context.Background(), "a@b.com", "https://x/verify?t=1", "Sam")
	require.NoError(t, err)
	assert.True(t, receipt.Accepted)
	assert.Equal(t, 200, receipt.StatusCode)

	require.Equal(t, 1, provider.calls)
	msg := provider.lastSent
	assert.Equal(t, "a@b.com", msg.To)
	assert.Equal(t, "noreply@restyle.app", msg.From)
	assert.Equal(t, "Restyle", msg.FromName)
	assert.Contains(t, msg.Subject, "Verify your email")
	assert.Contains(t, msg.Text, "https://x/verify?t=1")
	assert.Contains(t, msg.HTML, "https://x/verify?t=1")
	assert.Contains(t, msg.Text, "24 hours")
	assert.Contains(t, msg.HTML, "24 hours")
	assert.Contains(t, msg.Text, "Hi Sam,")
}

func TestSendPasswordReset(t *testing.T) {
	t.Parallel()

	provider := &fakeEmailProvider{}
	sender := NewNotificationSender(provider, testIdentity, zap.NewNop())

	_, err := sender.SendPasswordReset(context.Background(), "a@b.com", "https://x/reset?t=2", "")
	require.NoError(t, err)

	msg := provider.lastSent
	assert.Contains(t, msg.Subject, "Reset your password")
	assert.Contains(t, msg.Text, "https://x/reset?t=2")
	assert.Contains(t, msg.HTML, "https://x/reset?t=2")
	assert.Contains(t, msg.Text, "1 hour")
	assert.NotContains(t, msg.Text, "24 hours")
	assert.Contains(t, msg.Text, "Hi there,")
}

func TestNotificationSender_Unconfigured(t *testing.T) {
	t.Parallel()

	sender := NewNotificationSender(nil, testIdentity, zap.NewNop())

	_, err := sender.SendVerification(context.Background(), "a@b.com", "https://x", "Sam")
	assert.ErrorIs(t, err, ErrProviderUnconfigured)

	_, err = sender.SendPasswordReset(context.Background(), "a@b.com", "https://x", "Sam")
	assert.ErrorIs(t, err, ErrProviderUnconfigured)
}

func TestNotificationSender_DeliveryFailed(t *testing.T) {
	t.Parallel()

	rejected := errors.New("domain is not verified")
	provider := &fakeEmailProvider{
		sendFn: func(ctx context.Context, msg *EmailMessage) (*DeliveryReceipt, error) {
			return nil, rejected
		},
	}
	sender := NewNotificationSender(provider, testIdentity, zap.NewNop())

	receipt, err := sender.SendVerification(context.Background(), "a@b.com", "https://x", "Sam")
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, rejected)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "fake-email", perr.Provider)
}

func TestSendVerification_EscapesDisplayName(t *testing.T) {
	t.Parallel()

	provider := &fakeEmailProvider{}
	sender := NewNotificationSender(provider, testIdentity, zap.NewNop())

	_, err := sender.SendVerification(context.Background(), "a@b.com", "https://x", "<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, provider.lastSent.HTML, "<script>")
	assert.Contains(t, provider.lastSent.HTML, "&lt;script&gt;")
}

func TestEmailMessageSender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  EmailMessage
		want string
	}{
		{"address only", EmailMessage{From: "noreply@restyle.app"}, "noreply@restyle.app"},
		{"with name", EmailMessage{From: "noreply@restyle.app", FromName: "Restyle"}, `"Restyle" <noreply@restyle.app>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.msg.Sender())
		})
	}
}
