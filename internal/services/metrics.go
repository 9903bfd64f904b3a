package services

import (
	"sync"
	"time"
)

// Metrics holds counters for the sync service
type Metrics struct {
	queueDepth     map[string]int64
	syncOperations map[string]int64
	syncFailures   map[string]int64
	lastSyncTime   map[string]time.Time
	mu             sync.RWMutex
}

// NewMetrics creates new metrics for the sync service
func NewMetrics() *Metrics {
	return &Metrics{
		queueDepth:     make(map[string]int64),
		syncOperations: make(map[string]int64),
		syncFailures:   make(map[string]int64),
		lastSyncTime:   make(map[string]time.Time),
	}
}

// RecordQueueDepth records the current queue depth
func (m *Metrics) RecordQueueDepth(queue string, depth int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queueDepth[queue] = depth
}

// GetQueueDepth returns the current queue depth
func (m *Metrics) GetQueueDepth(queue string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.queueDepth[queue]
}

// IncrementSyncOperations increments the sync operations counter
func (m *Metrics) IncrementSyncOperations(queue string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncOperations[queue]++
	m.lastSyncTime[queue] = time.Now()
}

// IncrementSyncFailures increments the sync failures counter
func (m *Metrics) IncrementSyncFailures(queue string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncFailures[queue]++
}

// GetSyncOperations returns the sync operations counter for a queue
func (m *Metrics) GetSyncOperations(queue string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.syncOperations[queue]
}

// GetSyncFailures returns the sync failures counter for a queue
func (m *Metrics) GetSyncFailures(queue string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.syncFailures[queue]
}

// GetLastSyncTime returns the last sync time for a queue
func (m *Metrics) GetLastSyncTime(queue string) time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastSyncTime[queue]
}

// GetAllMetrics returns all metrics as a map for monitoring
func (m *Metrics) GetAllMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metrics := make(map[string]interface{})

	for queue, depth := range m.queueDepth {
		metrics["exegese_sync_queue_depth_"+queue] = depth
	}
	for queue, count := range m.syncOperations {
		metrics["exegese_sync_operations_total_"+queue] = count
	}
	for queue, count := range m.syncFailures {
		metrics["exegese_sync_failures_total_"+queue] = count
	}

	return metrics
}
