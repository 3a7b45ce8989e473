package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// TextProcessor cleans up free-form user text before it is embedded in a provider prompt
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// TruncateText truncates text to at most maxRunes characters.
// A maxRunes of zero or less disables truncation.
func (tp *TextProcessor) TruncateText(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	truncated := strings.TrimSpace(string(runes[:maxRunes]))

	tp.logger.Debug("Text truncated",
		zap.Int("original_runes", len(runes)),
		zap.Int("max_runes", maxRunes))

	return truncated
}

// SanitizeUTF8 drops invalid UTF-8 sequences and control characters
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if r == utf8.RuneError || unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(text, ""))

	if sanitized != text {
		tp.logger.Debug("Text sanitized",
			zap.Int("original_size", len(text)),
			zap.Int("sanitized_size", len(sanitized)))
	}

	return sanitized
}

// ProcessText normalizes, sanitizes, collapses whitespace and truncates in one operation
func (tp *TextProcessor) ProcessText(text string, maxRunes int) string {
	normalized := norm.NFC.String(text)
	sanitized := tp.SanitizeUTF8(normalized)
	collapsed := strings.Join(strings.Fields(sanitized), " ")
	return tp.TruncateText(collapsed, maxRunes)
}
