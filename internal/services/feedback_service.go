package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// FeedbackService collects user feedback for the admin support screen.
// Submissions are fire-and-forget: they go through the write buffer and sync
// to MongoDB in the background.
type FeedbackService struct {
	data   *DataManager
	mongo  *mongo.Database
	logger *zap.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(data *DataManager, mongo *mongo.Database, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		data:   data,
		mongo:  mongo,
		logger: logger,
	}
}

// Submit stores a feedback message from a user.
func (s *FeedbackService) Submit(ctx context.Context, user models.UserProfile, message string) (*models.Feedback, error) {
	if result := utils.ValidateFeedback(message); !result.IsValid {
		return nil, fmt.Errorf("invalid feedback: %s", result.Errors[0].Message)
	}

	feedback := models.Feedback{
		ID:       utils.GenerateUUID(),
		UserID:   user.ID,
		UserName: user.Name,
		Message:  message,
		Date:     time.Now().UTC().Format(time.RFC3339),
	}

	err := s.data.Write(ctx, TypeFeedback, feedback.ID, config.AppConfig.FeedbackCollection, feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}

	s.logger.Info("feedback submitted",
		zap.String("feedback_id", feedback.ID),
		zap.String("user_id", user.ID))

	return &feedback, nil
}

// List returns feedback messages for the admin console, newest first.
func (s *FeedbackService) List(ctx context.Context, page, perPage int64) ([]models.Feedback, int64, error) {
	collection := s.mongo.Collection(config.AppConfig.FeedbackCollection)

	total, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip((page - 1) * perPage).
		SetLimit(perPage)

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Feedback
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, fmt.Errorf("failed to decode feedback: %w", err)
	}

	return messages, total, nil
}

// Count returns the number of stored feedback messages.
func (s *FeedbackService) Count(ctx context.Context) (int64, error) {
	return s.mongo.Collection(config.AppConfig.FeedbackCollection).CountDocuments(ctx, bson.M{})
}
