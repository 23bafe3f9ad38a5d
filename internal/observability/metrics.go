package observability

import (
	"strconv"
	"sync"
	"time"
)

// RouteStats accumulates per-route request counters.
type RouteStats struct {
	Count        int64
	TotalLatency time.Duration
}

// Metrics keeps in-memory request and error counters, keyed by
// "path|method|status" for requests and "path|method|code" for errors.
// A nil *Metrics is a no-op so callers never have to guard.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]RouteStats
	errors   map[string]int64
}

func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]RouteStats),
		errors:   make(map[string]int64),
	}
}

// RecordRequest counts one completed request and accumulates its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.requests[key]
	stats.Count++
	stats.TotalLatency += duration
	m.requests[key] = stats
}

// RecordError counts one rejected request by its domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[key]++
}

// Snapshot copies the current counters for inspection.
func (m *Metrics) Snapshot() (map[string]RouteStats, map[string]int64) {
	if m == nil {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	requests := make(map[string]RouteStats, len(m.requests))
	for k, v := range m.requests {
		requests[k] = v
	}
	errors := make(map[string]int64, len(m.errors))
	for k, v := range m.errors {
		errors[k] = v
	}
	return requests, errors
}
