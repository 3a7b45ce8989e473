package core

import (
	"net/mail"
)

// EmailMessage represents a single transactional email
type EmailMessage struct {
	To       string
	From     string
	FromName string
	Subject  string
	Text     string
	HTML     string
}

// Sender returns the formatted From header value
func (m *EmailMessage) Sender() string {
	if m.FromName == "" {
		return m.From
	}
	addr := mail.Address{Name: m.FromName, Address: m.From}
	return addr.String()
}

// DeliveryReceipt is returned by an email provider once it accepted a message
type DeliveryReceipt struct {
	Accepted   bool
	StatusCode int
	MessageID  string
	Provider   string
}

// StyleOptions describes the requested hairstyle
type StyleOptions struct {
	Hairstyle string
	HairColor string
}

// TransformRequest is the input of a hairstyle transformation.
// Image is either a data URI or a bare base64 payload.
type TransformRequest struct {
	Image   string
	Options StyleOptions
}

// SourceImage is a decoded image input: media type plus base64 payload
type SourceImage struct {
	MIMEType string
	Payload  string
}

// Image is a binary image blob
type Image struct {
	Data     []byte
	MIMEType string
}

// ContentPart is one part of a generative provider response.
// Exactly one of Text or InlineData is set.
type ContentPart struct {
	Text       string
	InlineData *Image
}

// TransformResult is the outcome of a successful transformation
type TransformResult struct {
	Image       Image
	Text        string
	Provider    string
	Instruction string
}
