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

// ProfileService manages user profiles. Reads go through the cache tiers;
// writes land in the write buffer and sync to MongoDB in the background.
type ProfileService struct {
	data   *DataManager
	mongo  *mongo.Database
	logger *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(data *DataManager, mongo *mongo.Database, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		data:   data,
		mongo:  mongo,
		logger: logger,
	}
}

// GetProfile returns the profile for an identity id. The guest sentinel never
// touches storage.
func (s *ProfileService) GetProfile(ctx context.Context, id string) (*models.UserProfile, error) {
	if id == models.GuestID {
		profile := models.GuestProfile()
		return &profile, nil
	}

	var profile models.UserProfile
	err := s.data.Read(ctx, TypeUserProfile, id, config.AppConfig.UsersCollection, &profile)
	if err != nil {
		if err == models.ErrDocumentNotFound {
			return nil, models.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	return &profile, nil
}

// SaveProfile stores a profile. Guest profiles are session-local and are
// never persisted.
func (s *ProfileService) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	if profile.IsGuest() {
		return nil
	}

	err := s.data.Write(ctx, TypeUserProfile, profile.ID, config.AppConfig.UsersCollection, profile)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("save_profile", "error").Inc()
		return fmt.Errorf("failed to save profile: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("save_profile", "success").Inc()
	return nil
}

// Register promotes a session profile into a registered record. Validation
// happens before any write, so a rejected form leaves no partial state.
func (s *ProfileService) Register(ctx context.Context, id string, input models.RegistrationInput) (*models.UserProfile, error) {
	if result := utils.ValidateRegistration(input); !result.IsValid {
		return nil, fmt.Errorf("invalid registration: %s", result.Errors[0].Message)
	}

	whatsapp, err := utils.NormalizeWhatsApp(input.WhatsApp)
	if err != nil {
		return nil, fmt.Errorf("invalid whatsapp number: %w", err)
	}

	avatarURL := input.AvatarURL
	if avatarURL == "" {
		avatarURL = models.DefaultAvatarURL
	}

	profile := models.UserProfile{
		ID:               id,
		Name:             input.Name,
		Age:              input.Age,
		Church:           input.ResolvedChurch(),
		Role:             input.Role,
		WhatsApp:         whatsapp,
		AvatarURL:        avatarURL,
		IsRegistered:     true,
		RegistrationDate: models.NewRegistrationDate(time.Now()),
	}

	if err := s.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", id),
		zap.String("church", profile.Church))

	return &profile, nil
}

// ListProfiles returns registered profiles for the admin console, newest
// first.
func (s *ProfileService) ListProfiles(ctx context.Context, page, perPage int64) ([]models.UserProfile, int64, error) {
	collection := s.mongo.Collection(config.AppConfig.UsersCollection)

	total, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "registrationDate", Value: -1}}).
		SetSkip((page - 1) * perPage).
		SetLimit(perPage)

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.UserProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, 0, fmt.Errorf("failed to decode profiles: %w", err)
	}

	return profiles, total, nil
}

// CountProfiles returns the number of registered profiles.
func (s *ProfileService) CountProfiles(ctx context.Context) (int64, error) {
	return s.mongo.Collection(config.AppConfig.UsersCollection).CountDocuments(ctx, bson.M{"isRegistered": true})
}
