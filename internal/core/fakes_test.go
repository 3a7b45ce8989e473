package core

import (
	"context"
)

type fakeEmailProvider struct {
	sendFn   func(ctx context.Context, msg *EmailMessage) (*DeliveryReceipt, error)
	calls    int
	lastSent *EmailMessage
}

func (f *fakeEmailProvider) Send(ctx context.Context, msg *EmailMessage) (*DeliveryReceipt, error) {
	f.calls++
	f.lastSent = msg
	if f.sendFn != nil {
		return f.sendFn(ctx, msg)
	}
	return &DeliveryReceipt{Accepted: true, StatusCode: 200, MessageID: "msg-1", Provider: f.Name()}, nil
}

func (f *fakeEmailProvider) Name() string {
	return "fake-email"
}

type fakeImageGenerator struct {
	generateFn      func(ctx context.Context, instruction string, image *Image) ([]ContentPart, error)
	calls           int
	lastInstruction string
	lastImage       *Image
}

func (f *fakeImageGenerator) Generate(ctx context.Context, instruction string, image *Image) ([]ContentPart, error) {
	f.calls++
	f.lastInstruction = instruction
	f.lastImage = image
	if f.generateFn != nil {
		return f.generateFn(ctx, instruction, image)
	}
	return []ContentPart{{InlineData: &Image{Data: []byte("out"), MIMEType: "image/png"}}}, nil
}

func (f *fakeImageGenerator) Name() string {
	return "fake-image"
}
