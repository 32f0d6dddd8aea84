package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter_WindowClamped(t *testing.T) {
	rl := NewRateLimiter(nil, 10, 0)
	assert.Equal(t, time.Minute, rl.window)

	rl = NewRateLimiter(nil, 10, -5*time.Second)
	assert.Equal(t, time.Minute, rl.window)

	rl = NewRateLimiter(nil, 10, 30*time.Second)
	assert.Equal(t, 30*time.Second, rl.window)
}

func TestRateLimiter_FailsOpenWhenRedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})

	rl := NewRateLimiter(client, 1, 0)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/probe", rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
