package httpx

import (
	"context"
	"net/http"
	"time"
)

// Health probe states reported per dependency.
const (
	HealthOK          = "ok"
	HealthUnreachable = "unreachable"
	HealthDisabled    = "disabled"
)

// HealthChecker is satisfied by any dependency exposing Ping (slot drivers,
// RedisClient, EventBus).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks lists the dependencies probed by HealthHandler. A nil field is
// reported as disabled and does not degrade the overall status; leave a field
// unset rather than assigning a typed nil pointer.
type HealthChecks struct {
	Storage  HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Storage  string `json:"storage"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
}

// HealthHandler probes every configured checker with a 2s budget and answers
// 503 with status "degraded" if any of them fails.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		degraded := false
		probe := func(c HealthChecker) string {
			if c == nil {
				return HealthDisabled
			}
			if err := c.Ping(ctx); err != nil {
				degraded = true
				return HealthUnreachable
			}
			return HealthOK
		}
		resp.Storage = probe(checks.Storage)
		resp.Redis = probe(checks.Redis)
		resp.EventBus = probe(checks.EventBus)

		status := http.StatusOK
		if degraded {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
