package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/userdash/pkg/logger"
)

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// HealthHandler responds 200 when every check passes and 503 otherwise,
// with a JSON body mapping check names to "ok" or the error text.
func HealthHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		results := make(map[string]string, len(checks))

		for _, c := range checks {
			if err := c.Fn(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				results[c.Name] = err.Error()
				log.LogAttrs(r.Context(), slog.LevelError, "readiness check failed",
					slog.String("check", c.Name),
					logger.Error(err),
				)
				continue
			}
			results[c.Name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": http.StatusText(status),
			"checks": results,
		})
	}
}
