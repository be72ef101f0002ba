package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sui-advisor/internal/types"
)

func TestRateLimiterSeparatesUsers(t *testing.T) {
	rl := NewRateLimiter(5, 50)

	a := rl.getLimiter("user-a", types.TierFree)
	b := rl.getLimiter("user-b", types.TierFree)
	assert.NotSame(t, a, b)

	// same user gets the same limiter back
	assert.Same(t, a, rl.getLimiter("user-a", types.TierFree))
}

func TestRateLimiterTierLimits(t *testing.T) {
	rl := NewRateLimiter(5, 50)

	free := rl.getLimiter("free-user", types.TierFree)
	paid := rl.getLimiter("paid-user", types.TierPaid)

	assert.Equal(t, float64(5), float64(free.Limit()))
	assert.Equal(t, float64(50), float64(paid.Limit()))
}

func TestRateLimitMiddlewareRejectsAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := RateLimitMiddleware(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var lastCode int
	limited := false
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest("GET", "/api/staking/opportunities", nil)
		req.Header.Set("X-User-ID", "burst-user")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		lastCode = rec.Code
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}

	require.True(t, limited, "expected a 429 once the burst was exhausted, last code %d", lastCode)
}

func TestRateLimitResponseEnvelope(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := RateLimitMiddleware(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var rejected *httptest.ResponseRecorder
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("X-User-ID", "envelope-user")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			rejected = rec
			break
		}
	}
	require.NotNil(t, rejected)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rejected.Body.Bytes(), &body))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", body.Error.Code)
}

func TestUnknownTierFallsBackToFree(t *testing.T) {
	rl := NewRateLimiter(5, 50)

	limiter := rl.getLimiter("mystery-user", types.UserTier("enterprise"))
	assert.Equal(t, float64(5), float64(limiter.Limit()))
}
