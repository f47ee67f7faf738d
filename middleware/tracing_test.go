package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func tracingTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestTracingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestId": c.GetString("request_id")})
	})
	return router
}

func TestRequestTracingGeneratesID(t *testing.T) {
	router := tracingTestRouter()

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	id := w.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}
	if !strings.Contains(w.Body.String(), id) {
		t.Errorf("handler should see the same request ID, body: %s", w.Body.String())
	}
}

func TestRequestTracingKeepsUpstreamID(t *testing.T) {
	router := tracingTestRouter()

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "edge-proxy-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "edge-proxy-42" {
		t.Errorf("expected upstream request ID to be kept, got %q", got)
	}
}

func TestRequestSizeLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestSizeLimiter(64))
	router.POST("/echo", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	small := httptest.NewRequest("POST", "/echo", strings.NewReader(`{"ok":true}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, small)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for small body, got %d", w.Code)
	}

	big := httptest.NewRequest("POST", "/echo", strings.NewReader(strings.Repeat("x", 128)))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, big)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413 for oversized body, got %d", w.Code)
	}
}
