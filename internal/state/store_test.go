package state

import (
	"context"
	"testing"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestSession builds a session with defaults without going through Init,
// so no cache or database backends are touched.
func newTestSession(id string) *Session {
	return &Session{
		id:      id,
		view:    models.ViewWelcome,
		user:    models.GuestProfile(),
		config:  models.DefaultAdminConfig(),
		theme:   "light",
		reading: models.DefaultReadingSettings(),
		store:   NewStore(nil, nil, nil, zap.NewNop()),
	}
}

func TestSession_GuestDefaults(t *testing.T) {
	session := newTestSession(models.GuestID)
	snap := session.Snapshot()

	assert.Equal(t, models.ViewWelcome, snap.View)
	assert.True(t, snap.User.IsGuest())
	assert.False(t, snap.User.IsRegistered)
	assert.Equal(t, "light", snap.Theme)
	assert.Equal(t, models.DefaultReadingSettings(), snap.Reading)
	assert.False(t, snap.IsLoading)
}

func TestSession_SetView_KeepsOnlyLatestParams(t *testing.T) {
	session := newTestSession(models.GuestID)

	study := &models.StudyResult{ID: "study-1", Reference: "Romanos 8"}
	session.SetView(models.ViewExegesis, models.ViewParams{OpenStudy: study})

	snap := session.Snapshot()
	require.NotNil(t, snap.Params.OpenStudy)
	assert.Equal(t, "study-1", snap.Params.OpenStudy.ID)

	session.SetView(models.ViewHome, models.ViewParams{})

	snap = session.Snapshot()
	assert.Equal(t, models.ViewHome, snap.View)
	assert.Nil(t, snap.Params.OpenStudy, "previous params are discarded")
}

func TestSession_UpdateUser_Merges(t *testing.T) {
	session := newTestSession(models.GuestID)

	name := "Maria Souza"
	church := "Igreja Batista Central"
	merged := session.UpdateUser(context.Background(), models.UserProfilePatch{
		Name:   &name,
		Church: &church,
	})

	assert.Equal(t, name, merged.Name)
	assert.Equal(t, church, merged.Church)
	assert.Equal(t, models.GuestID, merged.ID, "a patch never changes the identity")
	assert.Equal(t, merged, session.User())
}

func TestSession_SignOut_ResetsUserKeepsView(t *testing.T) {
	session := newTestSession(models.GuestID)
	session.SetView(models.ViewBible, models.ViewParams{})

	name := "Maria Souza"
	session.UpdateUser(context.Background(), models.UserProfilePatch{Name: &name})

	session.SignOut()

	snap := session.Snapshot()
	assert.True(t, snap.User.IsGuest())
	assert.Empty(t, snap.User.Name)
	assert.Equal(t, models.ViewBible, snap.View, "sign-out does not navigate")
}

func TestSession_AdoptIdentity_FoundProfile(t *testing.T) {
	profile := &models.UserProfile{
		ID:           "user-123",
		Name:         "Maria Souza",
		IsRegistered: true,
	}

	// Parked on an entry view: redirect home.
	session := newTestSession("user-123")
	session.AdoptIdentity(profile, "user-123")

	snap := session.Snapshot()
	assert.Equal(t, "user-123", snap.User.ID)
	assert.Equal(t, models.ViewHome, snap.View)

	// Already deep in the app: adopt the profile, stay put.
	session = newTestSession("user-123")
	session.SetView(models.ViewCommunity, models.ViewParams{})
	session.AdoptIdentity(profile, "user-123")

	snap = session.Snapshot()
	assert.Equal(t, "user-123", snap.User.ID)
	assert.Equal(t, models.ViewCommunity, snap.View)
}

func TestSession_AdoptIdentity_MissingProfile(t *testing.T) {
	session := newTestSession("user-456")
	session.AdoptIdentity(nil, "user-456")

	snap := session.Snapshot()
	assert.Equal(t, "user-456", snap.User.ID)
	assert.False(t, snap.User.IsRegistered)
	assert.Equal(t, models.ViewRegister, snap.View)
}

func TestSession_SetConfig(t *testing.T) {
	session := newTestSession(models.GuestID)

	cfg := models.DefaultAdminConfig()
	cfg.MaintenanceMode = true
	cfg.Announcement = "Voltamos em breve"
	session.SetConfig(cfg)

	assert.True(t, session.Config().MaintenanceMode)
	assert.Equal(t, "Voltamos em breve", session.Config().Announcement)
}

func TestStore_GetAndDrop(t *testing.T) {
	store := NewStore(nil, nil, nil, zap.NewNop())

	_, err := store.Get("user-123")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	store.mu.Lock()
	store.sessions["user-123"] = newTestSession("user-123")
	store.mu.Unlock()

	session, err := store.Get("user-123")
	require.NoError(t, err)
	assert.Equal(t, "user-123", session.ID())

	store.Drop("user-123")
	_, err = store.Get("user-123")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}
