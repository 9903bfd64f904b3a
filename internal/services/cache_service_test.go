package services

import (
	"context"
	"testing"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// unreachableCache returns a cache service whose Redis backend refuses
// connections, so every command fails with a transport error.
func unreachableCache() *CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewCacheService(redisclient.NewClient(client), zap.NewNop())
}

func TestCacheService_ReadFailureIsNotEmpty(t *testing.T) {
	cache := unreachableCache()
	ctx := context.Background()

	_, err := cache.GetStudies(ctx, "user-abc")
	assert.Error(t, err, "a transport error must not read as an empty list")

	_, err = cache.GetNotes(ctx, "user-abc")
	assert.Error(t, err)
}

func TestCacheService_WriteFailureDoesNotWipeList(t *testing.T) {
	cache := unreachableCache()
	ctx := context.Background()

	// The read-modify-write save must refuse to proceed when it cannot read
	// the current list; otherwise it would overwrite it with one entry.
	err := cache.SaveStudy(ctx, "user-abc", models.StudyResult{ID: "study-1"})
	assert.Error(t, err)

	err = cache.SaveNote(ctx, "user-abc", models.PersonalNote{ID: "note-1"})
	assert.Error(t, err)
}

func TestCacheService_PreferencesDegradeToDefaults(t *testing.T) {
	cache := unreachableCache()
	ctx := context.Background()

	assert.Equal(t, "light", cache.GetTheme(ctx, "user-abc"))
	assert.Equal(t, models.DefaultReadingSettings(), cache.GetReadingSettings(ctx, "user-abc"))
}
