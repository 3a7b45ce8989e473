package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyProviderError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"api key", "Error 400, Message: API key not valid", ErrInvalidCredential},
		{"api key lowercase", "invalid api key provided", ErrInvalidCredential},
		{"quota", "quota exceeded", ErrQuotaExceeded},
		{"quota mixed case", "Error 429, Message: Quota exceeded for metric", ErrQuotaExceeded},
		{"safety", "safety filters", ErrContentBlocked},
		{"fallback", "internal error", ErrProvider},
		{"first rule wins", "API key quota exhausted", ErrInvalidCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := errors.New(tt.msg)
			err := ClassifyProviderError("gemini", raw)

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, raw)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Contains(t, err.Error(), "gemini")
		})
	}
}

func TestClassifyProviderError_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ClassifyProviderError("gemini", nil))
}

func TestProviderError_As(t *testing.T) {
	t.Parallel()

	err := ClassifyProviderError("openai", errors.New("quota exceeded"))

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "openai", perr.Provider)
	assert.Equal(t, ErrQuotaExceeded, perr.Kind)
	assert.NotErrorIs(t, err, ErrContentBlocked)
}
