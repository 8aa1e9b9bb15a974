package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/minutes-generator/errors"
)

type stubLimiter struct {
	allowed bool
	err     error
	gotKey  string
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	s.gotKey = key
	return s.allowed, s.err
}

func serveWithLimiter(t *testing.T, limiter Limiter) (*httptest.ResponseRecorder, *bool) {
	t.Helper()

	e := echo.New()
	handlerRan := false
	e.POST("/v1/minutes/generate", func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	}, RateLimit(limiter, nil))

	req := httptest.NewRequest(http.MethodPost, "/v1/minutes/generate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, &handlerRan
}

func TestRateLimit_Allowed(t *testing.T) {
	limiter := &stubLimiter{allowed: true}

	rec, handlerRan := serveWithLimiter(t, limiter)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *handlerRan)
	assert.NotEmpty(t, limiter.gotKey)
}

func TestRateLimit_DeniedReturns429(t *testing.T) {
	rec, handlerRan := serveWithLimiter(t, &stubLimiter{allowed: false})

	// The middleware writes the response itself; even a default Echo
	// instance with no custom error handler must emit 429.
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.False(t, *handlerRan)
	assert.Contains(t, rec.Body.String(),
		fmt.Sprintf(`"code":%d`, int(errors.ErrorCode_RATE_LIMITED)))
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
}

func TestRateLimit_FailsOpenOnLimiterError(t *testing.T) {
	limiter := &stubLimiter{err: fmt.Errorf("redis connection refused")}

	rec, handlerRan := serveWithLimiter(t, limiter)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *handlerRan)
}
