package core

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnconfigured is returned when no credential is configured for a provider
	ErrProviderUnconfigured = errors.New("provider not configured")
	// ErrDeliveryFailed is returned when the email provider rejects a message
	ErrDeliveryFailed = errors.New("email delivery failed")
	// ErrProvider is returned for image provider failures that match no other class
	ErrProvider = errors.New("image provider error")
	// ErrInvalidCredential is returned when the provider rejects the API key
	ErrInvalidCredential = errors.New("invalid API key")
	// ErrQuotaExceeded is returned when the provider quota is exhausted
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrContentBlocked is returned when the provider safety filters block a request
	ErrContentBlocked = errors.New("content blocked by safety filters")
	// ErrNoImageReturned is returned when a response carries no inline image
	ErrNoImageReturned = errors.New("no image returned")
	// ErrInvalidImage is returned when the source image cannot be decoded
	ErrInvalidImage = errors.New("invalid source image")
)

// ProviderError carries a classified provider failure along with the raw provider error
type ProviderError struct {
	Kind     error
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Provider, e.Kind, e.Err)
}

// Unwrap exposes both the classification and the raw error to errors.Is and errors.As
func (e *ProviderError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
