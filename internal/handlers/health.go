package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"finitefield.org/staking-web/internal/observability"
)

// ReadinessCheck reports whether the server can serve pages.
type ReadinessCheck func(ctx context.Context) error

// HealthHandlers serves liveness and readiness probes.
type HealthHandlers struct {
	version string
	started time.Time
	now     func() time.Time
	ready   ReadinessCheck
}

// HealthOption customises HealthHandlers.
type HealthOption func(*HealthHandlers)

// WithHealthVersion sets the version reported by the probes.
func WithHealthVersion(version string) HealthOption {
	return func(h *HealthHandlers) {
		h.version = version
	}
}

// WithHealthClock overrides the clock; the first reading is the start time.
func WithHealthClock(now func() time.Time) HealthOption {
	return func(h *HealthHandlers) {
		if now != nil {
			h.now = now
			h.started = now()
		}
	}
}

// WithReadinessCheck sets the check run by /readyz.
func WithReadinessCheck(check ReadinessCheck) HealthOption {
	return func(h *HealthHandlers) {
		h.ready = check
	}
}

// NewHealthHandlers builds the probe handlers.
func NewHealthHandlers(opts ...HealthOption) *HealthHandlers {
	h := &HealthHandlers{version: "dev", now: time.Now}
	h.started = h.now()
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// Healthz reports liveness.
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	h.write(w, http.StatusOK, h.response("ok", nil))
}

// Readyz runs the readiness check and reports 503 when it fails.
func (h *HealthHandlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			observability.FromContext(r.Context()).Warn("readiness check failed", zap.Error(err))
			h.write(w, http.StatusServiceUnavailable, h.response("unavailable", err))
			return
		}
	}
	h.write(w, http.StatusOK, h.response("ok", nil))
}

func (h *HealthHandlers) response(status string, err error) healthResponse {
	now := h.now()
	resp := healthResponse{
		Status:    status,
		Version:   h.version,
		Uptime:    now.Sub(h.started).String(),
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func (h *HealthHandlers) write(w http.ResponseWriter, code int, body healthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
