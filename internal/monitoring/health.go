package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// staleAfter marks the service degraded when no decision has been
// resolved for this long.
const staleAfter = 24 * time.Hour

type HealthChecker struct {
	mu           sync.RWMutex
	lastDecision time.Time
	lastPrice    float64
	isConnected  bool
	errors       []string
}

type HealthStatus struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	LastDecision time.Time `json:"last_decision"`
	LastPrice    float64   `json:"last_price"`
	IsConnected  bool      `json:"is_connected"`
	Uptime       string    `json:"uptime"`
	Errors       []string  `json:"errors,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		lastDecision: time.Now(),
		isConnected:  true,
		errors:       make([]string, 0),
	}
}

// RecordDecision marks a freshly resolved decision.
func (h *HealthChecker) RecordDecision(price float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastDecision = time.Now()
	h.lastPrice = price
}

// SetConnected reports whether the snapshot source is reachable.
func (h *HealthChecker) SetConnected(connected bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.isConnected = connected
}

// RecordHealthError appends an error to the health report.
func (h *HealthChecker) RecordHealthError(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, message)
}

// ClearErrors resets the health report after the operator intervened.
func (h *HealthChecker) ClearErrors() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = h.errors[:0]
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if !h.isConnected || time.Since(h.lastDecision) > staleAfter {
		status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if len(h.errors) > 0 {
		status = "unhealthy"
		w.WriteHeader(http.StatusInternalServerError)
	}

	health := HealthStatus{
		Status:       status,
		Timestamp:    time.Now(),
		LastDecision: h.lastDecision,
		LastPrice:    h.lastPrice,
		IsConnected:  h.isConnected,
		Uptime:       time.Since(startTime).String(),
		Errors:       h.errors,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
