package ai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		status  string
		message string
		want    Kind
	}{
		{"quota beats 429", 429, "RESOURCE_EXHAUSTED", "You exceeded your current quota, please check your plan", KindQuotaExhausted},
		{"per-minute 429 mentioning quota", 429, "RESOURCE_EXHAUSTED", "Resource has been exhausted (e.g. check quota).", KindQuotaExhausted},
		{"rate limited by code", 429, "", "", KindRateLimited},
		{"rate limited by status", 0, "resource_exhausted", "", KindRateLimited},
		{"rate limited by message", 0, "", "Too Many Requests", KindRateLimited},
		{"overloaded by code", 503, "", "", KindOverloaded},
		{"overloaded by status", 0, "UNAVAILABLE", "", KindOverloaded},
		{"overloaded by message", 500, "", "The model is overloaded. Please try again later.", KindOverloaded},
		{"bad key", 400, "INVALID_ARGUMENT", "API key not valid. Please pass a valid API key.", KindUnauthorized},
		{"forbidden", 403, "PERMISSION_DENIED", "", KindUnauthorized},
		{"malformed request", 400, "INVALID_ARGUMENT", "Invalid JSON payload", KindUnknown},
		{"nothing", 0, "", "", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.code, tt.status, tt.message))
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("ask: %w", &Error{Kind: KindOverloaded, Code: 503})

	assert.Equal(t, KindOverloaded, KindOf(err))
	assert.True(t, IsRetryable(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(ErrNotConfigured))
}

func TestErrorString(t *testing.T) {
	err := &Error{Kind: KindRateLimited, Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "slow down"}
	assert.Equal(t, "ai: rate_limited (429 RESOURCE_EXHAUSTED): slow down", err.Error())
	assert.Equal(t, "ai: unauthorized: API key is missing", ErrNotConfigured.Error())
}

func TestUserMessage(t *testing.T) {
	assert.Contains(t, UserMessage(&Error{Kind: KindRateLimited}), "overwhelmed")
	assert.Contains(t, UserMessage(ErrNotConfigured), "not configured")
	assert.Contains(t, UserMessage(ErrInvalidInput), "Please enter")
	assert.Contains(t, UserMessage(errors.New("x")), "depths of the AI ocean")
}
