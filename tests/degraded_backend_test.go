package tests

import (
	"context"
	"testing"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/redisclient"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/services"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/state"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// unreachableStore wires a session store against backends that refuse
// connections. mongoTimeout bounds how long each failed Mongo call blocks.
func unreachableStore(t *testing.T, mongoTimeout time.Duration) *state.Store {
	config.AppConfig = &config.Config{
		UsersCollection:         "users",
		ConfigCollection:        "config",
		SharedStudiesCollection: "shared_studies",
		FeedbackCollection:      "feedback",
	}

	mongoClient, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(mongoTimeout).
		SetConnectTimeout(mongoTimeout))
	require.NoError(t, err)
	db := mongoClient.Database("exegese_offline")

	redisClient := redisclient.NewClient(goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))

	logger := zap.NewNop()
	data := services.NewDataManager(redisClient, db, logger)
	profiles := services.NewProfileService(data, db, logger)
	configs := services.NewConfigService(redisClient, db, logger)
	cache := services.NewCacheService(redisClient, logger)

	return state.NewStore(cache, profiles, configs, logger)
}

func TestInitWithUnreachableBackends(t *testing.T) {
	store := unreachableStore(t, 300*time.Millisecond)

	session := store.Resolve(context.Background(), "user-offline")
	snap := session.Snapshot()

	// A dead remote degrades to defaults and never leaves the session
	// stuck loading.
	assert.False(t, snap.IsLoading)
	assert.Equal(t, models.DefaultAdminConfig(), snap.Config)
	assert.Equal(t, models.ViewWelcome, snap.View)
	assert.Equal(t, "light", snap.Theme)
	assert.Equal(t, models.DefaultReadingSettings(), snap.Reading)
}

func TestResolveColdStartDoesNotBlockLookups(t *testing.T) {
	store := unreachableStore(t, 2*time.Second)

	done := make(chan struct{})
	go func() {
		store.Resolve(context.Background(), "user-slow")
		close(done)
	}()

	// The session must become visible to Get well before its init (which is
	// stuck on the dead Mongo backend) completes.
	visible := false
	deadline := time.Now().Add(1 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := store.Get("user-slow"); err == nil {
			visible = true
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, visible, "session was not visible while its init was in flight")

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("resolve never finished")
	}
}
