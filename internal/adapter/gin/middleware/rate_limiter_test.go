package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func setupRateLimiter(t *testing.T, cfg RateLimiterConfig) (*gin.Engine, *miniredis.Miniredis, *fakeClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	rl := NewRateLimiter(client, cfg, zaptest.NewLogger(t))
	rl.now = clock.Now

	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/api/users/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/api/users", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, mr, clock
}

func doRequest(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	r, _, _ := setupRateLimiter(t, RateLimiterConfig{Enabled: true, RequestsPerSecond: 1, BurstCapacity: 2})

	assert.Equal(t, http.StatusOK, doRequest(r, "/api/users/1").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "/api/users/2").Code)

	w := doRequest(r, "/api/users/3")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message":"Too Many Requests"}`, w.Body.String())
}

func TestRateLimiter_Refills(t *testing.T) {
	r, _, clock := setupRateLimiter(t, RateLimiterConfig{Enabled: true, RequestsPerSecond: 2, BurstCapacity: 1})

	require.Equal(t, http.StatusOK, doRequest(r, "/api/users").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(r, "/api/users").Code)

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, http.StatusOK, doRequest(r, "/api/users").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "/api/users").Code)
}

func TestRateLimiter_BucketPerRoute(t *testing.T) {
	r, mr, _ := setupRateLimiter(t, RateLimiterConfig{Enabled: true, RequestsPerSecond: 1, BurstCapacity: 1})

	require.Equal(t, http.StatusOK, doRequest(r, "/api/users").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "/api/users/1").Code)

	assert.True(t, mr.Exists("ratelimit:tb:GET:/api/users:192.0.2.1"))
	assert.True(t, mr.Exists("ratelimit:tb:GET:/api/users/:id:192.0.2.1"))
	assert.Equal(t, time.Duration(bucketTTLSeconds)*time.Second, mr.TTL("ratelimit:tb:GET:/api/users:192.0.2.1"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	r, mr, _ := setupRateLimiter(t, RateLimiterConfig{Enabled: false, RequestsPerSecond: 1, BurstCapacity: 1})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(r, "/api/users").Code)
	}
	assert.Empty(t, mr.Keys())
}

func TestRateLimiter_NilLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var rl *RateLimiter

	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/api/users", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRequest(r, "/api/users").Code)
}

func TestRateLimiter_FailOpen(t *testing.T) {
	r, mr, _ := setupRateLimiter(t, RateLimiterConfig{Enabled: true, RequestsPerSecond: 1, BurstCapacity: 1})
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(r, "/api/users").Code)
	}
}
