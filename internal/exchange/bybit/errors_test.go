package bybit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	rateLimit := NewBybitError(ErrCodeRateLimitExceeded, "rate limit exceeded")
	badKey := NewBybitError(ErrCodeInvalidAPIKey, "invalid api key")
	serverErr := NewBybitError(502, "bad gateway")

	assert.True(t, IsRetryableError(rateLimit))
	assert.True(t, IsRetryableError(serverErr))
	assert.False(t, IsRetryableError(badKey))
	assert.False(t, IsRetryableError(errors.New("plain error")))

	assert.True(t, IsRateLimitError(rateLimit))
	assert.False(t, IsRateLimitError(badKey))

	assert.True(t, IsAuthenticationError(badKey))
	assert.False(t, IsAuthenticationError(rateLimit))
}

func TestParseAPIError(t *testing.T) {
	assert.NoError(t, ParseAPIError(0, "OK"))

	err := ParseAPIError(ErrCodeInvalidParams, "params error")
	var bybitErr *BybitError
	assert.ErrorAs(t, err, &bybitErr)
	assert.Equal(t, ErrCodeInvalidParams, bybitErr.Code)
	assert.Contains(t, err.Error(), "params error")
}

func TestWrapAPIErrorAddsOperationContext(t *testing.T) {
	assert.NoError(t, WrapAPIError("get ticker", nil))

	wrapped := WrapAPIError("get ticker", NewBybitError(ErrCodeRateLimitExceeded, "rate limit exceeded"))
	assert.Contains(t, wrapped.Error(), "get ticker")

	plain := WrapAPIError("get ticker", errors.New("timeout"))
	assert.Contains(t, plain.Error(), "get ticker failed")
}

func TestGetErrorDescription(t *testing.T) {
	assert.Equal(t, "Rate limit exceeded", GetErrorDescription(ErrCodeRateLimitExceeded))
	assert.Contains(t, GetErrorDescription(99999), "Unknown error code")
}
