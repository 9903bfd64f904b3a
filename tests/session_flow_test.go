package tests

import (
	"context"
	"testing"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/services"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func setupStore(t *testing.T) (*state.Store, *services.ProfileService) {
	logger := zap.NewNop()

	data := services.NewDataManager(config.Redis, config.MongoDB, logger)
	profiles := services.NewProfileService(data, config.MongoDB, logger)
	configs := services.NewConfigService(config.Redis, config.MongoDB, logger)
	cache := services.NewCacheService(config.Redis, logger)

	return state.NewStore(cache, profiles, configs, logger), profiles
}

func TestRegistrationFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	tc := SetupTestContainers(t)
	defer tc.Cleanup()

	ctx := context.Background()
	store, profiles := setupStore(t)

	// A known identity with no record lands on registration.
	session := store.Resolve(ctx, "user-maria")
	snap := session.Snapshot()
	assert.Equal(t, models.ViewRegister, snap.View)
	assert.Equal(t, "user-maria", snap.User.ID)
	assert.False(t, snap.User.IsRegistered)

	profile, err := profiles.Register(ctx, "user-maria", models.RegistrationInput{
		Name:     "Maria Souza",
		Age:      "34",
		Church:   "Igreja Batista Central",
		Role:     "Professora",
		WhatsApp: "+5521999887766",
	})
	require.NoError(t, err)
	assert.True(t, profile.IsRegistered)
	assert.Equal(t, "5521999887766", profile.WhatsApp)
	assert.Equal(t, models.DefaultAvatarURL, profile.AvatarURL)

	session.SetUser(ctx, *profile)
	session.SetView(models.ViewHome, models.ViewParams{})

	// A fresh store sees the registered profile through the write buffer
	// before any background sync has run.
	freshStore, _ := setupStore(t)
	fresh := freshStore.Resolve(ctx, "user-maria")
	snap = fresh.Snapshot()
	assert.Equal(t, models.ViewHome, snap.View)
	assert.Equal(t, "Maria Souza", snap.User.Name)
}

func TestSyncDrainsWriteBuffer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	tc := SetupTestContainers(t)
	defer tc.Cleanup()

	ctx := context.Background()
	_, profiles := setupStore(t)

	profile, err := profiles.Register(ctx, "user-joao", models.RegistrationInput{
		Name:         "João Lima",
		Age:          "28",
		Church:       "Nova Igreja",
		CustomChurch: "Comunidade da Graça",
		Role:         "Diácono",
		WhatsApp:     "21988776655",
	})
	require.NoError(t, err)
	assert.Equal(t, "Comunidade da Graça", profile.Church, "Nova Igreja resolves to the typed church name")

	// Nova Igreja without a custom name is rejected before any write.
	_, err = profiles.Register(ctx, "user-joao", models.RegistrationInput{
		Name:     "João Lima",
		Church:   "Nova Igreja",
		Role:     "Diácono",
		WhatsApp: "21988776655",
	})
	require.Error(t, err)

	syncService := services.NewSyncService(config.Redis, config.MongoDB, 2, zap.NewNop())
	syncService.Start()
	defer syncService.Stop()

	// The queued write lands in MongoDB within the worker cycle.
	deadline := time.Now().Add(10 * time.Second)
	var stored models.UserProfile
	for {
		err = config.MongoDB.Collection(config.AppConfig.UsersCollection).
			FindOne(ctx, bson.M{"id": "user-joao"}).Decode(&stored)
		if err == nil || time.Now().After(deadline) {
			break
		}
		time.Sleep(200 * time.Millisecond)
	}
	require.NoError(t, err, "profile was not synced to MongoDB")
	assert.Equal(t, "João Lima", stored.Name)
	assert.True(t, stored.IsRegistered)
}
