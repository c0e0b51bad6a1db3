package server

import (
	"context"
	"net/http"

	custommiddleware "workout-store/internal/middleware"
)

// HealthChecker reports the status of one backing store.
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

// healthHandler replies 200 when every store is up and 503 otherwise.
func healthHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]interface{}{}

		for name, checker := range checkers {
			report := checker.Health(r.Context())
			if report["status"] != "up" {
				status = http.StatusServiceUnavailable
			}
			body[name] = report
		}

		if status == http.StatusOK {
			body["status"] = "ok"
		} else {
			body["status"] = "degraded"
		}

		custommiddleware.RespondWithJSON(w, status, body)
	}
}
