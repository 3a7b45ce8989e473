package core

import (
	"strings"
)

// classificationRules maps substrings of provider error text to error classes.
// The first matching rule wins.
var classificationRules = []struct {
	substring string
	kind      error
}{
	{"api key", ErrInvalidCredential},
	{"quota", ErrQuotaExceeded},
	{"safety", ErrContentBlocked},
}

// ClassifyProviderError maps a raw image provider error to one of the error classes.
// Errors that match no rule are reported as ErrProvider with the raw message preserved.
func ClassifyProviderError(provider string, err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	for _, rule := range classificationRules {
		if strings.Contains(msg, rule.substring) {
			return &ProviderError{Kind: rule.kind, Provider: provider, Err: err}
		}
	}

	return &ProviderError{Kind: ErrProvider, Provider: provider, Err: err}
}
