package core

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultImageMIMEType is assumed for inputs that are not data URIs
const DefaultImageMIMEType = "image/jpeg"

const (
	dataURIScheme = "data:"
	base64Marker  = ";base64,"
)

// DecodeImageInput splits a data URI into media type and payload.
// Anything that is not a data URI is treated as a bare payload of DefaultImageMIMEType.
func DecodeImageInput(input string) (SourceImage, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return SourceImage{}, fmt.Errorf("%w: empty input", ErrInvalidImage)
	}

	if !strings.HasPrefix(input, dataURIScheme) {
		return SourceImage{MIMEType: DefaultImageMIMEType, Payload: input}, nil
	}

	mimeType, payload, ok := strings.Cut(strings.TrimPrefix(input, dataURIScheme), base64Marker)
	if !ok || mimeType == "" || payload == "" {
		return SourceImage{}, fmt.Errorf("%w: malformed data URI", ErrInvalidImage)
	}

	return SourceImage{MIMEType: mimeType, Payload: payload}, nil
}

// Bytes decodes the base64 payload
func (s SourceImage) Bytes() ([]byte, error) {
	payload := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s.Payload)

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some clients strip the padding
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	return data, nil
}
