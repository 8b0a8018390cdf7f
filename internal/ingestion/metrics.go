package ingestion

import (
	"sync"
	"time"
)

// Metrics tracks pipeline throughput for the admin panel.
type Metrics struct {
	MessagesReceived  int64         `json:"messages_received"`
	MessagesProcessed int64         `json:"messages_processed"`
	MessagesFailed    int64         `json:"messages_failed"`
	EntriesInserted   int64         `json:"entries_inserted"`
	AlertsGenerated   int64         `json:"alerts_generated"`
	LastProcessedAt   time.Time     `json:"last_processed_at"`
	AverageProcessing time.Duration `json:"average_processing_ns"`
	BufferSize        int           `json:"buffer_size"`
}

// MetricsTracker is a goroutine-safe wrapper around Metrics.
type MetricsTracker struct {
	mu      sync.RWMutex
	metrics Metrics
}

func NewMetricsTracker() *MetricsTracker {
	return &MetricsTracker{}
}

// Update applies a mutation under the lock.
func (t *MetricsTracker) Update(fn func(*Metrics)) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.metrics)
}

// Snapshot returns a copy of the current metrics.
func (t *MetricsTracker) Snapshot() Metrics {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.metrics
}

// Reset clears accumulated metrics.
func (t *MetricsTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.metrics = Metrics{}
}
