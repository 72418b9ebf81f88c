// Package metrics defines and registers the custom Prometheus metrics of the
// to-do API. HTTP request metrics come from the echoprometheus middleware;
// this package only holds business counters.
//
// All metrics register with the default Prometheus registry at package init.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/todoapp/task-manager/internal/core/domain"
)

const namespace = "todo"

// AuthRequestsTotal counts register and login outcomes.
// Labels:
//   - operation: "register" or "login"
//   - result: "success", "invalid_credentials", "user_exists", "missing_fields",
//     "locked_out" or "error"
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of register and login requests, by outcome.",
	},
	[]string{"operation", "result"},
)

// TaskOperationsTotal counts successful task mutations.
// Label:
//   - operation: "create", "update" or "delete"
var TaskOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_operations_total",
		Help:      "Total number of successful task mutations, by operation.",
	},
	[]string{"operation"},
)

// ResultLabel maps an auth error to its "result" label value.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserExists):
		return "user_exists"
	case errors.Is(err, domain.ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "locked_out"
	default:
		return "error"
	}
}
