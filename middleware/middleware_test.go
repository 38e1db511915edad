package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter(t *testing.T) {
	// 1 token per second, bucket of 2: third immediate request must be
	// rejected.
	rl := NewRateLimiter(1, 2)

	ip := "203.0.113.7"
	for i := 0; i < 2; i++ {
		if !rl.allow(ip) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow(ip) {
		t.Error("request past the bucket size should be rejected")
	}

	// A different client has its own bucket.
	if !rl.allow("198.51.100.1") {
		t.Error("other clients should not share the bucket")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimiter(1, 1).RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	if first.Code != http.StatusOK {
		t.Errorf("first request status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want %d", second.Code, http.StatusTooManyRequests)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	generated := httptest.NewRecorder()
	r.ServeHTTP(generated, httptest.NewRequest(http.MethodGet, "/", nil))
	if generated.Header().Get(HeaderRequestID) == "" {
		t.Error("request id should be generated when missing")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "client-supplied")
	echoed := httptest.NewRecorder()
	r.ServeHTTP(echoed, req)
	if got := echoed.Header().Get(HeaderRequestID); got != "client-supplied" {
		t.Errorf("request id = %q, want the client-supplied id", got)
	}
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
