package rest

import (
	"context"
	"net/http"
	"time"
)

// storePinger defines the minimal interface for store health checks.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness endpoints. Their bodies are written
// without the data envelope.
type HealthHandler struct {
	store   storePinger
	driver  string
	version string
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler for the store opened with driver.
func NewHealthHandler(store storePinger, driver, version string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, version: version, timeout: 3 * time.Second}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live reports liveness. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready reports readiness: 200 when the store answers a ping, 503
// otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.ping(r.Context())
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status.Status, Timestamp: time.Now()})
}

// Health reports the store status with ping latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, _ := h.ping(r.Context())
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"store": status},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) ping(ctx context.Context) (CompStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Driver: h.driver}, err
	}
	return CompStatus{Status: "ok", Driver: h.driver, Latency: time.Since(start).String()}, nil
}
