package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CacheService stores per-user client-local state: theme, reading settings,
// the saved study list and the personal notebook. These never reach MongoDB.
// Entries have no TTL; they live until the user changes or deletes them.
type CacheService struct {
	redis  *redisclient.Client
	logger *zap.Logger
}

// NewCacheService creates a new cache service
func NewCacheService(redis *redisclient.Client, logger *zap.Logger) *CacheService {
	return &CacheService{
		redis:  redis,
		logger: logger,
	}
}

func themeKey(userID string) string   { return fmt.Sprintf("theme:%s", userID) }
func readingKey(userID string) string { return fmt.Sprintf("reading_settings:%s", userID) }
func studiesKey(userID string) string { return fmt.Sprintf("studies:%s", userID) }
func notesKey(userID string) string   { return fmt.Sprintf("notes:%s", userID) }

// GetTheme returns the stored theme, defaulting to "light". A corrupt or
// missing entry never fails the caller.
func (s *CacheService) GetTheme(ctx context.Context, userID string) string {
	theme, err := s.redis.Get(ctx, themeKey(userID)).Result()
	if err != nil || (theme != "light" && theme != "dark") {
		return "light"
	}
	return theme
}

// SetTheme stores the theme preference.
func (s *CacheService) SetTheme(ctx context.Context, userID, theme string) error {
	return s.redis.Set(ctx, themeKey(userID), theme, 0).Err()
}

// GetReadingSettings returns the stored reading preferences, falling back to
// the defaults when nothing is stored or the entry cannot be decoded.
func (s *CacheService) GetReadingSettings(ctx context.Context, userID string) models.ReadingSettings {
	data, err := s.redis.Get(ctx, readingKey(userID)).Result()
	if err != nil {
		return models.DefaultReadingSettings()
	}

	var settings models.ReadingSettings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		s.logger.Warn("corrupt reading settings entry, using defaults",
			zap.String("user_id", userID))
		return models.DefaultReadingSettings()
	}

	return settings.Clamped()
}

// SetReadingSettings stores the reading preferences.
func (s *CacheService) SetReadingSettings(ctx context.Context, userID string, settings models.ReadingSettings) error {
	return s.setJSON(ctx, readingKey(userID), settings)
}

// GetStudies returns the user's saved study list, newest first.
func (s *CacheService) GetStudies(ctx context.Context, userID string) ([]models.StudyResult, error) {
	var studies []models.StudyResult
	if err := s.getJSON(ctx, studiesKey(userID), &studies); err != nil {
		return nil, err
	}
	if studies == nil {
		studies = []models.StudyResult{}
	}
	return studies, nil
}

// SaveStudy prepends a study to the user's saved list.
func (s *CacheService) SaveStudy(ctx context.Context, userID string, study models.StudyResult) error {
	studies, err := s.GetStudies(ctx, userID)
	if err != nil {
		return err
	}
	studies = append([]models.StudyResult{study}, studies...)
	return s.setJSON(ctx, studiesKey(userID), studies)
}

// DeleteStudy removes a study from the saved list. Deleting an unknown id is
// a no-op.
func (s *CacheService) DeleteStudy(ctx context.Context, userID, studyID string) error {
	studies, err := s.GetStudies(ctx, userID)
	if err != nil {
		return err
	}

	kept := studies[:0]
	for _, study := range studies {
		if study.ID != studyID {
			kept = append(kept, study)
		}
	}

	return s.setJSON(ctx, studiesKey(userID), kept)
}

// GetNotes returns the user's personal notebook.
func (s *CacheService) GetNotes(ctx context.Context, userID string) ([]models.PersonalNote, error) {
	var notes []models.PersonalNote
	if err := s.getJSON(ctx, notesKey(userID), &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.PersonalNote{}
	}
	return notes, nil
}

// SaveNote inserts or replaces a note by id, keeping the edited note first.
func (s *CacheService) SaveNote(ctx context.Context, userID string, note models.PersonalNote) error {
	notes, err := s.GetNotes(ctx, userID)
	if err != nil {
		return err
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.ID != note.ID {
			kept = append(kept, n)
		}
	}
	notes = append([]models.PersonalNote{note}, kept...)

	return s.setJSON(ctx, notesKey(userID), notes)
}

// DeleteNote removes a note from the notebook.
func (s *CacheService) DeleteNote(ctx context.Context, userID, noteID string) error {
	notes, err := s.GetNotes(ctx, userID)
	if err != nil {
		return err
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}

	return s.setJSON(ctx, notesKey(userID), kept)
}

func (s *CacheService) getJSON(ctx context.Context, key string, target interface{}) error {
	data, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		// Missing entry means an empty collection
		return nil
	}
	if err != nil {
		// A transient read failure must not masquerade as an empty list: a
		// read-modify-write caller would wipe the stored entries.
		return fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), target); err != nil {
		s.logger.Warn("corrupt cache entry, treating as empty", zap.String("key", key))
	}
	return nil
}

func (s *CacheService) setJSON(ctx context.Context, key string, value interface{}) error {
	dataBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	return s.redis.Set(ctx, key, string(dataBytes), 0).Err()
}
