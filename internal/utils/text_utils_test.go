package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTruncateText(t *testing.T) {
	t.Parallel()
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "short", tp.TruncateText("short", 10))
	assert.Equal(t, "exactly", tp.TruncateText("exactly", 7))
	assert.Equal(t, "héllo", tp.TruncateText("héllo wörld", 5))
	assert.Equal(t, "unlimited text", tp.TruncateText("unlimited text", 0))
}

func TestSanitizeUTF8(t *testing.T) {
	t.Parallel()
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "ab", tp.SanitizeUTF8("a\xffb"))
	assert.Equal(t, "ab", tp.SanitizeUTF8("a\x00b"))
	assert.Equal(t, "a b", tp.SanitizeUTF8("a\nb"))
	assert.Equal(t, "caramel blonde", tp.SanitizeUTF8("caramel blonde"))
}

func TestProcessText(t *testing.T) {
	t.Parallel()
	tp := NewTextProcessor(zap.NewNop())

	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"collapses whitespace", "  curtain \n\n bangs\t", 0, "curtain bangs"},
		{"normalizes to NFC", "blonde\u0301", 0, "blond\u00e9"},
		{"truncates", "very long shaggy mullet", 9, "very long"},
		{"drops control characters", "bob\x07 cut", 0, "bob cut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tp.ProcessText(tt.input, tt.maxRunes))
		})
	}
}
