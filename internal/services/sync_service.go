package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/redisclient"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SyncService manages background sync operations from Redis to MongoDB
type SyncService struct {
	redis       *redisclient.Client
	mongo       *mongo.Database
	workers     []*SyncWorker
	workerCount int
	logger      *zap.Logger
	metrics     *Metrics
}

// NewSyncService creates a new sync service
func NewSyncService(redis *redisclient.Client, mongo *mongo.Database, workerCount int, logger *zap.Logger) *SyncService {
	return &SyncService{
		redis:       redis,
		mongo:       mongo,
		workerCount: workerCount,
		logger:      logger,
		metrics:     NewMetrics(),
	}
}

// Start starts the sync service
func (s *SyncService) Start() {
	s.logger.Info("starting sync service", zap.Int("worker_count", s.workerCount))

	for i := 0; i < s.workerCount; i++ {
		worker := NewSyncWorker(s.redis, s.mongo, i, s.logger, s.metrics)
		s.workers = append(s.workers, worker)
		go worker.Start()
	}

	go s.monitorDLQ()

	s.logger.Info("sync service started successfully")
}

// Stop stops the sync service
func (s *SyncService) Stop() {
	s.logger.Info("stopping sync service")

	for _, worker := range s.workers {
		worker.Stop()
	}

	s.logger.Info("sync service stopped")
}

// monitorDLQ monitors the dead letter queues
func (s *SyncService) monitorDLQ() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		for _, queue := range SyncQueues {
			dlqKey := fmt.Sprintf("sync:dlq:%s", queue)
			dlqSize, err := s.redis.LLen(context.Background(), dlqKey).Result()
			if err != nil {
				continue
			}

			if dlqSize > 0 {
				s.logger.Warn("DLQ has failed jobs",
					zap.String("queue", queue),
					zap.Int64("dlq_size", dlqSize))

				s.metrics.RecordQueueDepth("dlq_"+queue, dlqSize)
			}
		}
	}
}

// GetMetrics returns the metrics for monitoring
func (s *SyncService) GetMetrics() *Metrics {
	return s.metrics
}
