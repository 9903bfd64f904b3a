package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_QueueDepth(t *testing.T) {
	m := NewMetrics()

	assert.Equal(t, int64(0), m.GetQueueDepth(TypeUserProfile))

	m.RecordQueueDepth(TypeUserProfile, 7)
	assert.Equal(t, int64(7), m.GetQueueDepth(TypeUserProfile))

	m.RecordQueueDepth(TypeUserProfile, 2)
	assert.Equal(t, int64(2), m.GetQueueDepth(TypeUserProfile))
}

func TestMetrics_SyncCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrementSyncOperations(TypeUserProfile)
	m.IncrementSyncOperations(TypeUserProfile)
	m.IncrementSyncFailures(TypeUserProfile)

	assert.Equal(t, int64(2), m.GetSyncOperations(TypeUserProfile))
	assert.Equal(t, int64(1), m.GetSyncFailures(TypeUserProfile))
	assert.False(t, m.GetLastSyncTime(TypeUserProfile).IsZero())
	assert.True(t, m.GetLastSyncTime(TypeFeedback).IsZero())
}

func TestMetrics_GetAllMetrics(t *testing.T) {
	m := NewMetrics()

	m.RecordQueueDepth(TypeFeedback, 3)
	m.IncrementSyncOperations(TypeFeedback)
	m.IncrementSyncFailures(TypeUserProfile)

	all := m.GetAllMetrics()
	assert.Equal(t, int64(3), all["exegese_sync_queue_depth_feedback"])
	assert.Equal(t, int64(1), all["exegese_sync_operations_total_feedback"])
	assert.Equal(t, int64(1), all["exegese_sync_failures_total_user_profile"])
}

func TestMetrics_ConcurrentAccess(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrementSyncOperations(TypeUserProfile)
			m.GetQueueDepth(TypeUserProfile)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), m.GetSyncOperations(TypeUserProfile))
}
