package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/redisclient"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Data type identifiers. Each type has its own write buffer, read cache and
// sync queue in Redis.
const (
	TypeUserProfile = "user_profile"
	TypeFeedback    = "feedback"
)

// SyncQueues lists every queue drained by the sync workers. Jobs within one
// key are serialized by queue order, so the remote store always converges to
// the last submitted value.
var SyncQueues = []string{TypeUserProfile, TypeFeedback}

// DataManager handles Redis/MongoDB operations with multi-level caching.
// Writes land in a Redis write buffer and are queued for background sync;
// reads check the write buffer, then the read cache, then MongoDB.
type DataManager struct {
	redis  *redisclient.Client
	mongo  *mongo.Database
	logger *zap.Logger
}

// NewDataManager creates a new data manager instance
func NewDataManager(redis *redisclient.Client, mongo *mongo.Database, logger *zap.Logger) *DataManager {
	return &DataManager{
		redis:  redis,
		mongo:  mongo,
		logger: logger,
	}
}

// Write writes data to the Redis write buffer and queues it for MongoDB sync
func (dm *DataManager) Write(ctx context.Context, dataType, key, collection string, data interface{}) error {
	writeKey := fmt.Sprintf("%s:write:%s", dataType, key)
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Write buffer outlives the read cache so a slow sync never loses data
	err = dm.redis.Set(ctx, writeKey, string(dataBytes), 6*time.Hour).Err()
	if err != nil {
		return fmt.Errorf("failed to write to Redis buffer: %w", err)
	}

	syncJob := SyncJob{
		ID:         utils.GenerateUUID(),
		Type:       dataType,
		Key:        key,
		Collection: collection,
		Data:       data,
		Timestamp:  time.Now(),
		RetryCount: 0,
		MaxRetries: 3,
	}

	jobBytes, err := json.Marshal(syncJob)
	if err != nil {
		return fmt.Errorf("failed to marshal sync job: %w", err)
	}

	queueKey := fmt.Sprintf("sync:queue:%s", dataType)
	err = dm.redis.LPush(ctx, queueKey, string(jobBytes)).Err()
	if err != nil {
		return fmt.Errorf("failed to queue sync job: %w", err)
	}

	dm.logger.Debug("data written to cache and queued for sync",
		zap.String("type", dataType),
		zap.String("key", key),
		zap.String("collection", collection))

	return nil
}

// Read reads data from cache layers, falling back to MongoDB
func (dm *DataManager) Read(ctx context.Context, dataType, key, collection string, result interface{}) error {
	// 1. Check the write buffer first, it holds the most recent data
	writeKey := fmt.Sprintf("%s:write:%s", dataType, key)
	if data, err := dm.redis.Get(ctx, writeKey).Result(); err == nil {
		if err := json.Unmarshal([]byte(data), result); err == nil {
			dm.logger.Debug("data read from write buffer",
				zap.String("type", dataType),
				zap.String("key", key))
			return nil
		}
		dm.logger.Warn("failed to unmarshal data from write buffer",
			zap.String("type", dataType),
			zap.String("key", key))
	}

	// 2. Check the read cache
	cacheKey := fmt.Sprintf("%s:cache:%s", dataType, key)
	if data, err := dm.redis.Get(ctx, cacheKey).Result(); err == nil {
		if err := json.Unmarshal([]byte(data), result); err == nil {
			dm.logger.Debug("data read from cache",
				zap.String("type", dataType),
				zap.String("key", key))
			return nil
		}
		dm.logger.Warn("failed to unmarshal data from read cache",
			zap.String("type", dataType),
			zap.String("key", key))
	}

	// 3. Fall back to MongoDB
	err := dm.mongo.Collection(collection).FindOne(ctx, filterForCollection(collection, key)).Decode(result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.ErrDocumentNotFound
		}
		dm.logger.Error("failed to read from MongoDB",
			zap.String("type", dataType),
			zap.String("key", key),
			zap.String("collection", collection),
			zap.Error(err))
		return fmt.Errorf("failed to read from MongoDB: %w", err)
	}

	// 4. Cache for future reads
	if dataBytes, err := json.Marshal(result); err == nil {
		dm.redis.Set(ctx, cacheKey, string(dataBytes), 3*time.Hour)
	}

	dm.logger.Debug("data read from MongoDB and cached",
		zap.String("type", dataType),
		zap.String("key", key),
		zap.String("collection", collection))

	return nil
}

// UpdateReadCache updates the read cache with fresh data
func (dm *DataManager) UpdateReadCache(ctx context.Context, dataType, key string, data interface{}) error {
	cacheKey := fmt.Sprintf("%s:cache:%s", dataType, key)
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data for cache: %w", err)
	}

	err = dm.redis.Set(ctx, cacheKey, string(dataBytes), 3*time.Hour).Err()
	if err != nil {
		return fmt.Errorf("failed to update read cache: %w", err)
	}

	return nil
}

// filterForCollection maps a logical key to the Mongo filter matching the
// collection's unique index.
func filterForCollection(collection, key string) bson.M {
	switch collection {
	case config.AppConfig.UsersCollection:
		return bson.M{"id": key}
	default:
		return bson.M{"_id": key}
	}
}
