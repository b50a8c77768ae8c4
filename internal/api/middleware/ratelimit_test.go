package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sara/shopease/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := middleware.NewRateLimiter(3, 60)

	for i := 0; i < 3; i++ {
		ok, remaining := rl.Allow("client-a")
		assert.True(t, ok)
		assert.Equal(t, 2-i, remaining)
	}

	ok, remaining := rl.Allow("client-a")
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)

	// Other clients have their own window
	ok, _ = rl.Allow("client-b")
	assert.True(t, ok)
}

func TestRateLimit(t *testing.T) {
	handler := middleware.RateLimit(2, 60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)

		assert.Equal(t, "2", rr.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, fmt.Sprint(max(1-i, 0)), rr.Header().Get("X-RateLimit-Remaining"))
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different source address is not throttled
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
