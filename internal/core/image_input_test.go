package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantMIME    string
		wantPayload string
	}{
		{"png data URI", "data:image/png;base64,AAAA", "image/png", "AAAA"},
		{"webp data URI", "data:image/webp;base64,UklGRg==", "image/webp", "UklGRg=="},
		{"raw base64", "AAAA", "image/jpeg", "AAAA"},
		{"surrounding whitespace", "  data:image/png;base64,AAAA\n", "image/png", "AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img, err := DecodeImageInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, img.MIMEType)
			assert.Equal(t, tt.wantPayload, img.Payload)
		})
	}
}

func TestDecodeImageInput_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "data:image/png,AAAA", "data:;base64,AAAA", "data:image/png;base64,"} {
		_, err := DecodeImageInput(input)
		assert.ErrorIs(t, err, ErrInvalidImage, "input %q", input)
	}
}

func TestSourceImageBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    []byte
	}{
		{"padded", "aGk=", []byte("hi")},
		{"unpadded", "aGk", []byte("hi")},
		{"line wrapped", "AA\r\nAA", []byte{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := SourceImage{MIMEType: "image/png", Payload: tt.payload}.Bytes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestSourceImageBytes_Invalid(t *testing.T) {
	t.Parallel()

	_, err := SourceImage{Payload: "not base64!"}.Bytes()
	assert.ErrorIs(t, err, ErrInvalidImage)
}
