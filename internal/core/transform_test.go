package core

import (
	"context"
	"errors"
	"testing"

	"github.com/mikey/restyle/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTransformer(generator ImageGenerator) *ImageTransformer {
	logger := zap.NewNop()
	return NewImageTransformer(generator, utils.NewTextProcessor(logger), logger, TransformerConfig{MaxStyleLength: 120})
}

func TestTransform(t *testing.T) {
	t.Parallel()

	generator := &fakeImageGenerator{
		generateFn: func(ctx context.Context, instruction string, image *Image) ([]ContentPart, error) {
			return []ContentPart{
				{Text: "Here is the new look."},
				{InlineData: &Image{Data: []byte("first"), MIMEType: "image/png"}},
				{Text: "ignored"},
				{InlineData: &Image{Data: []byte("second"), MIMEType: "image/jpeg"}},
			}, nil
		},
	}
	transformer := newTestTransformer(generator)

	result, err := transformer.Transform(context.Background(), &TransformRequest{
		Image:   "data:image/png;base64,AAAA",
		Options: StyleOptions{Hairstyle: "pixie cut", HairColor: "copper red"},
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("first"), result.Image.Data)
	assert.Equal(t, "image/png", result.Image.MIMEType)
	assert.Equal(t, "Here is the new look.", result.Text)
	assert.Equal(t, "fake-image", result.Provider)

	require.Equal(t, 1, generator.calls)
	assert.Equal(t, "image/png", generator.lastImage.MIMEType)
	assert.Equal(t, []byte{0, 0, 0}, generator.lastImage.Data)
	assert.Contains(t, generator.lastInstruction, "pixie cut")
	assert.Contains(t, generator.lastInstruction, "copper red")
	assert.Equal(t, generator.lastInstruction, result.Instruction)
}

func TestTransform_RawBase64DefaultsToJPEG(t *testing.T) {
	t.Parallel()

	generator := &fakeImageGenerator{}
	transformer := newTestTransformer(generator)

	_, err := transformer.Transform(context.Background(), &TransformRequest{Image: "AAAA"})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", generator.lastImage.MIMEType)
	assert.Contains(t, generator.lastInstruction, DefaultHairstyle)
	assert.NotContains(t, generator.lastInstruction, "hair color")
}

func TestTransform_Unconfigured(t *testing.T) {
	t.Parallel()

	transformer := newTestTransformer(nil)

	_, err := transformer.Transform(context.Background(), &TransformRequest{Image: "AAAA"})
	assert.ErrorIs(t, err, ErrProviderUnconfigured)
}

func TestTransform_InvalidImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		image string
	}{
		{"empty", ""},
		{"malformed data URI", "data:image/png,AAAA"},
		{"not base64", "data:image/png;base64,@@@@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			generator := &fakeImageGenerator{}
			transformer := newTestTransformer(generator)

			_, err := transformer.Transform(context.Background(), &TransformRequest{Image: tt.image})
			assert.ErrorIs(t, err, ErrInvalidImage)
			assert.Zero(t, generator.calls)
		})
	}
}

func TestTransform_NoImageReturned(t *testing.T) {
	t.Parallel()

	generator := &fakeImageGenerator{
		generateFn: func(ctx context.Context, instruction string, image *Image) ([]ContentPart, error) {
			return []ContentPart{{Text: "I can't edit this photo."}}, nil
		},
	}
	transformer := newTestTransformer(generator)

	_, err := transformer.Transform(context.Background(), &TransformRequest{Image: "AAAA"})
	assert.ErrorIs(t, err, ErrNoImageReturned)
}

func TestTransform_ClassifiesProviderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid key", errors.New("API key not valid. Please pass a valid API key."), ErrInvalidCredential},
		{"quota", errors.New("quota exceeded for this project"), ErrQuotaExceeded},
		{"safety", errors.New("blocked by safety filters"), ErrContentBlocked},
		{"other", errors.New("connection reset by peer"), ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			generator := &fakeImageGenerator{
				generateFn: func(ctx context.Context, instruction string, image *Image) ([]ContentPart, error) {
					return nil, tt.err
				},
			}
			transformer := newTestTransformer(generator)

			_, err := transformer.Transform(context.Background(), &TransformRequest{Image: "AAAA"})
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTransform_SanitizesStyleText(t *testing.T) {
	t.Parallel()

	generator := &fakeImageGenerator{}
	logger := zap.NewNop()
	transformer := NewImageTransformer(generator, utils.NewTextProcessor(logger), logger, TransformerConfig{MaxStyleLength: 10})

	_, err := transformer.Transform(context.Background(), &TransformRequest{
		Image:   "AAAA",
		Options: StyleOptions{Hairstyle: "long\n\tlayered   bob with bangs"},
	})
	require.NoError(t, err)
	assert.Contains(t, generator.lastInstruction, "a long layer hairstyle")
}
