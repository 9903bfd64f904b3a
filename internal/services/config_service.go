package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/observability"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const configCacheKey = "admin_config:cache:" + models.AdminConfigID

// ConfigService manages the global content configuration singleton. Unlike
// profile writes, config saves are awaited: the admin must know whether the
// save landed before the change goes live for everyone.
type ConfigService struct {
	redis  *redisclient.Client
	mongo  *mongo.Database
	logger *zap.Logger
}

// NewConfigService creates a new config service
func NewConfigService(redis *redisclient.Client, mongo *mongo.Database, logger *zap.Logger) *ConfigService {
	return &ConfigService{
		redis:  redis,
		mongo:  mongo,
		logger: logger,
	}
}

// GetConfig returns the global configuration, checking the cache first. When
// no document exists yet the built-in defaults are returned.
func (s *ConfigService) GetConfig(ctx context.Context) (*models.AdminConfig, error) {
	if data, err := s.redis.Get(ctx, configCacheKey).Result(); err == nil {
		var cfg models.AdminConfig
		if err := json.Unmarshal([]byte(data), &cfg); err == nil {
			observability.CacheHits.WithLabelValues("admin_config").Inc()
			return &cfg, nil
		}
	}

	var cfg models.AdminConfig
	err := s.mongo.Collection(config.AppConfig.ConfigCollection).
		FindOne(ctx, bson.M{"_id": models.AdminConfigID}).
		Decode(&cfg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			defaults := models.DefaultAdminConfig()
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	s.cacheConfig(ctx, cfg)
	return &cfg, nil
}

// SaveConfig upserts the configuration document and refreshes the cache. The
// MongoDB write is awaited; a cache failure afterwards only delays freshness.
func (s *ConfigService) SaveConfig(ctx context.Context, cfg models.AdminConfig) error {
	dataBytes, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var bsonData bson.M
	if err := json.Unmarshal(dataBytes, &bsonData); err != nil {
		return fmt.Errorf("failed to convert config: %w", err)
	}

	opts := options.Update().SetUpsert(true)
	_, err = s.mongo.Collection(config.AppConfig.ConfigCollection).
		UpdateOne(ctx, bson.M{"_id": models.AdminConfigID}, bson.M{"$set": bsonData}, opts)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("save_config", "error").Inc()
		return fmt.Errorf("failed to save config: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("save_config", "success").Inc()
	s.cacheConfig(ctx, cfg)

	s.logger.Info("config saved",
		zap.Bool("maintenance_mode", cfg.MaintenanceMode),
		zap.Int("active_modules", len(cfg.ActiveModules)))

	return nil
}

func (s *ConfigService) cacheConfig(ctx context.Context, cfg models.AdminConfig) {
	dataBytes, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, configCacheKey, string(dataBytes), 3*time.Hour).Err(); err != nil {
		s.logger.Warn("failed to cache config", zap.Error(err))
	}
}
