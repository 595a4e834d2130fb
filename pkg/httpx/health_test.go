package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itsklemy/cercle-backend/pkg/httpx"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_allHealthy(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Database: pinger{},
		Redis:    pinger{},
		EventBus: pinger{},
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected ok status, got %q", body["status"])
	}
}

func TestHealthHandler_degradedOnRedisFailure(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Database: pinger{},
		Redis:    pinger{err: errors.New("connection refused")},
		EventBus: pinger{},
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["status"] != "degraded" {
		t.Errorf("expected degraded status, got %q", body["status"])
	}
	if body["redis"] != "unreachable" {
		t.Errorf("expected redis unreachable, got %q", body["redis"])
	}
	if body["database"] != "ok" {
		t.Errorf("database should still be ok, got %q", body["database"])
	}
}
