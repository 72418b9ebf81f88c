package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const readinessTimeout = 3 * time.Second

// check is one dependency probed by the readiness endpoint. A nil ping means
// the dependency is not wired in this process.
type check struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks []check
}

// NewHealthHandler probes MongoDB (required: the task and credential stores
// live there) and Redis (optional: only the login limiter uses it).
func NewHealthHandler(db *mongo.Database, rdb *redis.Client) *HealthHandler {
	mongoCheck := check{name: "mongodb", required: true}
	if db != nil {
		mongoCheck.ping = func(ctx context.Context) error {
			return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		}
	}

	redisCheck := check{name: "redis"}
	if rdb != nil {
		redisCheck.required = true
		redisCheck.ping = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	return &HealthHandler{checks: []check{mongoCheck, redisCheck}}
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready. It answers 503 when a required
// dependency is missing or unreachable.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	resp := readinessResponse{Status: "ok", Dependencies: make(map[string]dependencyStatus, len(h.checks))}
	code := http.StatusOK

	for _, chk := range h.checks {
		st := probe(ctx, chk)
		resp.Dependencies[chk.name] = st
		if chk.required && st.Status != "ok" {
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	return c.JSON(code, resp)
}

func probe(ctx context.Context, chk check) dependencyStatus {
	switch {
	case chk.ping == nil && chk.required:
		return dependencyStatus{Status: "unhealthy", Error: "not configured"}
	case chk.ping == nil:
		return dependencyStatus{Status: "disabled"}
	}
	if err := chk.ping(ctx); err != nil {
		return dependencyStatus{Status: "unhealthy", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}
