package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calverts/userhub/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

func limitedRouter(limit int, window time.Duration) *gin.Engine {
	r := gin.New()
	rl := middlewares.NewRateLimiter(limit, window)
	r.POST("/login", rl.Middleware(middlewares.KeyByIP), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func postLogin(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	r := limitedRouter(2, time.Minute)

	for i := 0; i < 2; i++ {
		if w := postLogin(r); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}

	w := postLogin(r)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestRateLimiterZeroLimitDisabled(t *testing.T) {
	r := limitedRouter(0, time.Minute)

	for i := 0; i < 5; i++ {
		if w := postLogin(r); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}
}
