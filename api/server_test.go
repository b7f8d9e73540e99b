package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, fields map[string]interface{}) {}
func (noopLogger) Info(msg string, fields map[string]interface{})  {}
func (noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (noopLogger) Error(msg string, fields map[string]interface{}) {}

func TestNewAPI_ServesOpenAPISpec(t *testing.T) {
	_, router := NewAPI(APIConfig{Logger: noopLogger{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("GET /openapi.json status = %d, want 200", rec.Code)
	}
}

func TestNewAPI_AdminRoutesRequireToken(t *testing.T) {
	_, router := NewAPI(APIConfig{Logger: noopLogger{}, AdminToken: "secret"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/admin/search-opportunities", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated admin request status = %d, want 401", rec.Code)
	}
}

func TestNewAPI_RateLimiting(t *testing.T) {
	_, router := NewAPI(APIConfig{
		Logger:     noopLogger{},
		RateLimit:  1,
		RateWindow: time.Minute,
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("GET", "/openapi.json", nil))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("GET", "/openapi.json", nil))

	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}

func TestNewAPI_SetsRequestID(t *testing.T) {
	_, router := NewAPI(APIConfig{Logger: noopLogger{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("responses should carry X-Request-ID")
	}
}
