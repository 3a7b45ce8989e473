package core

import (
	"context"
)

// EmailProvider delivers rendered email messages through a transactional email API
type EmailProvider interface {
	// Send submits the message and returns the provider's receipt
	Send(ctx context.Context, msg *EmailMessage) (*DeliveryReceipt, error)

	// Name returns the provider name
	Name() string
}

// ImageGenerator submits an image plus an instruction to a generative image API
type ImageGenerator interface {
	// Generate returns the response parts in the order the provider produced them
	Generate(ctx context.Context, instruction string, image *Image) ([]ContentPart, error)

	// Name returns the provider name
	Name() string
}
