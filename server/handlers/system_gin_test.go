package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	db := newHandlersTestDB(t)
	handler := NewSystemHandler(db)

	router := setupGinTestRouter()
	router.GET("/health", handler.HandleHealth)

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != "ok" || response.Database != "ok" {
		t.Errorf("unexpected health payload: %+v", response)
	}
	if response.Time == "" {
		t.Error("expected a timestamp")
	}
}

func TestHealthEndpointWithoutDatabase(t *testing.T) {
	handler := NewSystemHandler(nil)

	router := setupGinTestRouter()
	router.GET("/health", handler.HandleHealth)

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != "degraded" {
		t.Errorf("unexpected status %q", response.Status)
	}
}
