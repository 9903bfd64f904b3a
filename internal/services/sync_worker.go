package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// SyncWorker processes sync jobs from Redis queues
type SyncWorker struct {
	id       int
	redis    *redisclient.Client
	mongo    *mongo.Database
	logger   *zap.Logger
	metrics  *Metrics
	stopChan chan struct{}
	queues   []string
}

// NewSyncWorker creates a new sync worker
func NewSyncWorker(redis *redisclient.Client, mongo *mongo.Database, id int, logger *zap.Logger, metrics *Metrics) *SyncWorker {
	return &SyncWorker{
		id:       id,
		redis:    redis,
		mongo:    mongo,
		logger:   logger,
		metrics:  metrics,
		stopChan: make(chan struct{}),
		queues:   SyncQueues,
	}
}

// Start starts the worker
func (w *SyncWorker) Start() {
	w.logger.Info("sync worker started", zap.Int("worker_id", w.id))

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("sync worker stopped", zap.Int("worker_id", w.id))
			return
		case <-ticker.C:
			w.processQueues()
		}
	}
}

// Stop stops the worker
func (w *SyncWorker) Stop() {
	close(w.stopChan)
}

// processQueues drains a bounded number of jobs across all queues per cycle.
// Round-robin keeps one busy queue from starving the others.
func (w *SyncWorker) processQueues() {
	const maxJobsPerCycle = 3
	jobsProcessed := 0

	for _, queue := range w.queues {
		if jobsProcessed >= maxJobsPerCycle {
			break
		}

		job, err := w.getJobNonBlocking(queue)
		if err != nil {
			w.logger.Debug("error getting job from queue",
				zap.String("queue", queue),
				zap.Error(err))
			continue
		}

		if job != nil {
			w.processJob(job)
			jobsProcessed++
		}
	}
}

// getJobNonBlocking gets a job from a specific queue without blocking
func (w *SyncWorker) getJobNonBlocking(queue string) (*SyncJob, error) {
	queueKey := fmt.Sprintf("sync:queue:%s", queue)

	result, err := w.redis.RPop(context.Background(), queueKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var job SyncJob
	if err := json.Unmarshal([]byte(result), &job); err != nil {
		w.logger.Error("failed to unmarshal sync job",
			zap.String("queue", queue),
			zap.Error(err))
		return nil, err
	}

	return &job, nil
}

// processJob processes a single sync job
func (w *SyncWorker) processJob(job *SyncJob) {
	start := time.Now()

	w.logger.Info("processing sync job",
		zap.String("job_id", job.ID),
		zap.String("type", job.Type),
		zap.String("key", job.Key),
		zap.String("collection", job.Collection))

	err := w.syncToMongoDB(job)

	duration := time.Since(start)

	if err != nil {
		w.handleSyncFailure(job, err)
		w.metrics.IncrementSyncFailures(job.Type)
	} else {
		w.handleSyncSuccess(job)
		w.metrics.IncrementSyncOperations(job.Type)
	}

	w.logger.Info("sync job completed",
		zap.String("job_id", job.ID),
		zap.String("type", job.Type),
		zap.String("key", job.Key),
		zap.Duration("duration", duration),
		zap.Error(err))
}

// syncToMongoDB syncs a job to MongoDB
func (w *SyncWorker) syncToMongoDB(job *SyncJob) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dataBytes, err := json.Marshal(job.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal job data: %w", err)
	}

	var bsonData bson.M
	if err := json.Unmarshal(dataBytes, &bsonData); err != nil {
		return fmt.Errorf("failed to unmarshal to BSON: %w", err)
	}

	filter := filterForCollection(job.Collection, job.Key)
	update := bson.M{"$set": bsonData}
	opts := options.Update().SetUpsert(true)

	_, err = w.mongo.Collection(job.Collection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			w.logger.Debug("duplicate key during sync - data already exists",
				zap.String("job_id", job.ID),
				zap.String("type", job.Type),
				zap.String("key", job.Key),
				zap.String("collection", job.Collection))
			return nil
		}
		return fmt.Errorf("failed to sync to MongoDB: %w", err)
	}

	return nil
}

// handleSyncSuccess updates the read cache with the synced data and only then
// cleans up the write buffer, so readers never observe a gap.
func (w *SyncWorker) handleSyncSuccess(job *SyncJob) {
	ctx := context.Background()

	cacheKey := fmt.Sprintf("%s:cache:%s", job.Type, job.Key)
	dataBytes, err := json.Marshal(job.Data)
	if err != nil {
		w.logger.Error("failed to marshal data for cache update",
			zap.String("job_id", job.ID),
			zap.String("type", job.Type),
			zap.String("key", job.Key),
			zap.Error(err))
	} else {
		err = w.redis.Set(ctx, cacheKey, string(dataBytes), 3*time.Hour).Err()
		if err != nil {
			w.logger.Error("failed to update read cache after sync",
				zap.String("job_id", job.ID),
				zap.String("type", job.Type),
				zap.String("key", job.Key),
				zap.Error(err))
		}
	}

	writeKey := fmt.Sprintf("%s:write:%s", job.Type, job.Key)
	err = w.redis.Del(ctx, writeKey).Err()
	if err != nil {
		w.logger.Warn("failed to cleanup write buffer after sync",
			zap.String("job_id", job.ID),
			zap.String("type", job.Type),
			zap.String("key", job.Key),
			zap.Error(err))
	}
}

// handleSyncFailure handles a failed sync
func (w *SyncWorker) handleSyncFailure(job *SyncJob, err error) {
	job.RetryCount++

	if job.RetryCount >= job.MaxRetries {
		w.moveToDLQ(job, err)
	} else {
		w.requeueJob(job)
	}
}

// moveToDLQ moves a failed job to the dead letter queue
func (w *SyncWorker) moveToDLQ(job *SyncJob, err error) {
	dlqJob := DLQJob{
		OriginalJob: *job,
		Error:       err.Error(),
		FailedAt:    time.Now(),
	}

	dlqBytes, _ := json.Marshal(dlqJob)
	dlqKey := fmt.Sprintf("sync:dlq:%s", job.Type)

	w.redis.LPush(context.Background(), dlqKey, string(dlqBytes))

	w.logger.Error("job moved to DLQ",
		zap.String("job_id", job.ID),
		zap.String("type", job.Type),
		zap.String("key", job.Key),
		zap.Error(err))
}

// requeueJob re-queues a job for retry with exponential backoff
func (w *SyncWorker) requeueJob(job *SyncJob) {
	backoffDelay := time.Duration(job.RetryCount) * 5 * time.Second
	if backoffDelay > 60*time.Second {
		backoffDelay = 60 * time.Second
	}

	time.Sleep(backoffDelay)

	jobBytes, _ := json.Marshal(job)
	queueKey := fmt.Sprintf("sync:queue:%s", job.Type)

	w.redis.LPush(context.Background(), queueKey, string(jobBytes))

	w.logger.Info("job re-queued for retry",
		zap.String("job_id", job.ID),
		zap.String("type", job.Type),
		zap.String("key", job.Key),
		zap.Int("retry_count", job.RetryCount),
		zap.Duration("backoff_delay", backoffDelay))
}
