package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/observability"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CommunityService manages the shared study feed. The feed is append-only;
// a published study is never edited, only liked.
type CommunityService struct {
	mongo  *mongo.Database
	logger *zap.Logger
}

// NewCommunityService creates a new community service
func NewCommunityService(mongo *mongo.Database, logger *zap.Logger) *CommunityService {
	return &CommunityService{
		mongo:  mongo,
		logger: logger,
	}
}

// PublishStudy copies a study result into the community feed under the
// author's current name and avatar.
func (s *CommunityService) PublishStudy(ctx context.Context, study models.StudyResult, author models.UserProfile) (*models.SharedStudy, error) {
	shared := models.SharedStudy{
		ID:         utils.GenerateUUID(),
		Reference:  study.Reference,
		Theology:   study.Theology,
		Module:     study.Module,
		Content:    study.Content,
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.AvatarURL,
		Timestamp:  time.Now().UTC(),
		Likes:      0,
	}

	_, err := s.mongo.Collection(config.AppConfig.SharedStudiesCollection).InsertOne(ctx, shared)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("publish_study", "error").Inc()
		return nil, fmt.Errorf("failed to publish study: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("publish_study", "success").Inc()
	s.logger.Info("study published",
		zap.String("study_id", shared.ID),
		zap.String("user_id", author.ID),
		zap.String("reference", shared.Reference))

	return &shared, nil
}

// ListStudies returns the community feed, newest first.
func (s *CommunityService) ListStudies(ctx context.Context, page, perPage int64) ([]models.SharedStudy, int64, error) {
	collection := s.mongo.Collection(config.AppConfig.SharedStudiesCollection)

	total, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count shared studies: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip((page - 1) * perPage).
		SetLimit(perPage)

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shared studies: %w", err)
	}
	defer cursor.Close(ctx)

	var studies []models.SharedStudy
	if err := cursor.All(ctx, &studies); err != nil {
		return nil, 0, fmt.Errorf("failed to decode shared studies: %w", err)
	}

	return studies, total, nil
}

// LikeStudy increments the like counter of a shared study.
func (s *CommunityService) LikeStudy(ctx context.Context, studyID string) (int64, error) {
	collection := s.mongo.Collection(config.AppConfig.SharedStudiesCollection)

	var updated models.SharedStudy
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": studyID},
		bson.M{"$inc": bson.M{"likes": 1}},
		opts,
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, models.ErrDocumentNotFound
		}
		return 0, fmt.Errorf("failed to like study: %w", err)
	}

	return updated.Likes, nil
}

// CountStudies returns the size of the community feed.
func (s *CommunityService) CountStudies(ctx context.Context) (int64, error) {
	return s.mongo.Collection(config.AppConfig.SharedStudiesCollection).CountDocuments(ctx, bson.M{})
}
