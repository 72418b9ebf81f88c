package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func serveReadiness(t *testing.T, h *HealthHandler) (int, readinessResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

	if err := h.Readiness(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body
}

func TestReadiness_NothingWired(t *testing.T) {
	code, body := serveReadiness(t, NewHealthHandler(nil, nil))

	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
	if body.Dependencies["mongodb"].Error != "not configured" {
		t.Fatalf("unexpected mongodb status: %+v", body.Dependencies["mongodb"])
	}
	if body.Dependencies["redis"].Status != "disabled" {
		t.Fatalf("unexpected redis status: %+v", body.Dependencies["redis"])
	}
}

func TestReadiness_AllHealthy(t *testing.T) {
	ok := func(context.Context) error { return nil }
	h := &HealthHandler{checks: []check{
		{name: "mongodb", required: true, ping: ok},
		{name: "redis"},
	}}

	code, body := serveReadiness(t, h)
	if code != http.StatusOK || body.Status != "ok" {
		t.Fatalf("expected 200 ok, got %d %s", code, body.Status)
	}
}

func TestReadiness_RequiredDependencyDown(t *testing.T) {
	h := &HealthHandler{checks: []check{
		{name: "mongodb", required: true, ping: func(context.Context) error { return errors.New("no reachable servers") }},
	}}

	code, body := serveReadiness(t, h)
	if code != http.StatusServiceUnavailable || body.Status != "degraded" {
		t.Fatalf("expected 503 degraded, got %d %s", code, body.Status)
	}
	if body.Dependencies["mongodb"].Error != "no reachable servers" {
		t.Fatalf("unexpected error text: %q", body.Dependencies["mongodb"].Error)
	}
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler(nil, nil).Liveness(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
