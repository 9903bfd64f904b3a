package state

import (
	"context"
	"sync"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/observability"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/services"
	"go.uber.org/zap"
)

// Snapshot is a read-only copy of a session, safe to hand out after the
// session mutex is released.
type Snapshot struct {
	View      models.AppView         `json:"view"`
	Params    models.ViewParams      `json:"params"`
	User      models.UserProfile     `json:"user"`
	Config    models.AdminConfig     `json:"config"`
	Theme     string                 `json:"theme"`
	Reading   models.ReadingSettings `json:"readingSettings"`
	IsLoading bool                   `json:"isLoading"`
}

// Session holds the live application state for one user. All mutations go
// through methods that take the session mutex, so each mutation is atomic
// and observers always see a consistent triple of view, params and data.
type Session struct {
	mu       sync.Mutex
	initOnce sync.Once

	id        string
	view      models.AppView
	params    models.ViewParams
	user      models.UserProfile
	config    models.AdminConfig
	theme     string
	reading   models.ReadingSettings
	isLoading bool

	store *Store
}

// Store manages sessions keyed by user id. It is constructed with its
// dependencies and carries no package-level state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cache    *services.CacheService
	profiles *services.ProfileService
	configs  *services.ConfigService
	logger   *zap.Logger
}

// NewStore creates a new session store
func NewStore(cache *services.CacheService, profiles *services.ProfileService, configs *services.ConfigService, logger *zap.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		cache:    cache,
		profiles: profiles,
		configs:  configs,
		logger:   logger,
	}
}

// Resolve returns the session for an identity id, creating and initializing
// it on first access. Init runs outside the store mutex so one slow cold
// start never blocks lookups for other users; concurrent resolvers of the
// same id all wait on the same one-time init.
func (s *Store) Resolve(ctx context.Context, id string) *Session {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		s.mu.Lock()
		session, ok = s.sessions[id]
		if !ok {
			session = &Session{
				id:      id,
				view:    models.ViewWelcome,
				user:    models.GuestProfile(),
				config:  models.DefaultAdminConfig(),
				theme:   "light",
				reading: models.DefaultReadingSettings(),
				store:   s,
			}
			s.sessions[id] = session
		}
		s.mu.Unlock()
	}

	session.initOnce.Do(func() { session.Init(ctx) })
	return session
}

// Get returns an existing session without creating one.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return session, nil
}

// Drop removes a session from the store.
func (s *Store) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Init hydrates the session from the cache tier synchronously, then kicks
// off a background config refresh from the remote store. The loading flag
// can never survive Init, whatever fails.
func (se *Session) Init(ctx context.Context) {
	se.mu.Lock()
	se.isLoading = true
	defer func() {
		se.isLoading = false
		se.mu.Unlock()
	}()

	store := se.store

	se.theme = store.cache.GetTheme(ctx, se.id)
	se.reading = store.cache.GetReadingSettings(ctx, se.id)

	if se.id != models.GuestID {
		profile, err := store.profiles.GetProfile(ctx, se.id)
		switch {
		case err == models.ErrProfileNotFound:
			// Known identity, no record yet: carry the id into registration
			se.user = models.GuestProfile()
			se.user.ID = se.id
			se.view = models.ViewRegister
		case err != nil:
			store.logger.Warn("profile load failed during init, staying on cached data",
				zap.String("user_id", se.id),
				zap.Error(err))
		default:
			se.user = *profile
			if profile.IsRegistered {
				se.view = models.ViewHome
			} else {
				se.view = models.ViewRegister
			}
		}
	}

	if cfg, err := store.configs.GetConfig(ctx); err == nil {
		se.config = *cfg
	} else {
		store.logger.Warn("config load failed during init, using defaults",
			zap.String("user_id", se.id),
			zap.Error(err))
	}

	go se.refreshConfig()

	observability.SessionMutations.WithLabelValues("init").Inc()
}

// refreshConfig re-reads the config from the remote store and overwrites the
// session copy on success. Failures only leave the session on its current
// data.
func (se *Session) refreshConfig() {
	cfg, err := se.store.configs.GetConfig(context.Background())
	if err != nil {
		se.store.logger.Debug("background config refresh failed",
			zap.String("user_id", se.id),
			zap.Error(err))
		return
	}

	se.mu.Lock()
	se.config = *cfg
	se.mu.Unlock()
}

// SetView replaces the current view and its one-shot params. There is no
// history stack; the previous pair is discarded.
func (se *Session) SetView(view models.AppView, params models.ViewParams) {
	se.mu.Lock()
	defer se.mu.Unlock()

	se.view = view
	se.params = params

	observability.SessionMutations.WithLabelValues("set_view").Inc()
}

// SetUser replaces the session user wholesale and persists the profile.
func (se *Session) SetUser(ctx context.Context, user models.UserProfile) {
	se.mu.Lock()
	se.user = user
	se.mu.Unlock()

	se.persistUser(ctx, user)
	observability.SessionMutations.WithLabelValues("set_user").Inc()
}

// UpdateUser merges a partial update into the session user. The session copy
// changes immediately; the remote upsert is enqueued and its failure is
// logged, never returned.
func (se *Session) UpdateUser(ctx context.Context, patch models.UserProfilePatch) models.UserProfile {
	se.mu.Lock()
	se.user = se.user.Merge(patch)
	merged := se.user
	se.mu.Unlock()

	se.persistUser(ctx, merged)
	observability.SessionMutations.WithLabelValues("update_user").Inc()
	return merged
}

func (se *Session) persistUser(ctx context.Context, user models.UserProfile) {
	if user.IsGuest() {
		return
	}
	if err := se.store.profiles.SaveProfile(ctx, user); err != nil {
		se.store.logger.Error("failed to persist profile update",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}
}

// SetConfig replaces the session config wholesale without persisting. Used
// when adopting a config loaded elsewhere.
func (se *Session) SetConfig(cfg models.AdminConfig) {
	se.mu.Lock()
	defer se.mu.Unlock()

	se.config = cfg
	observability.SessionMutations.WithLabelValues("set_config").Inc()
}

// UpdateConfig merges a partial update and saves the result. The remote
// write is awaited so the caller learns whether the save landed; the session
// copy is updated regardless of cache state.
func (se *Session) UpdateConfig(ctx context.Context, patch models.AdminConfigPatch) (models.AdminConfig, error) {
	se.mu.Lock()
	se.config = se.config.Merge(patch)
	merged := se.config
	se.mu.Unlock()

	err := se.store.configs.SaveConfig(ctx, merged)
	observability.SessionMutations.WithLabelValues("update_config").Inc()
	return merged, err
}

// SetTheme updates the theme and mirrors it to the cache.
func (se *Session) SetTheme(ctx context.Context, theme string) {
	if theme != "dark" {
		theme = "light"
	}

	se.mu.Lock()
	se.theme = theme
	se.mu.Unlock()

	if err := se.store.cache.SetTheme(ctx, se.id, theme); err != nil {
		se.store.logger.Warn("failed to persist theme",
			zap.String("user_id", se.id),
			zap.Error(err))
	}
	observability.SessionMutations.WithLabelValues("set_theme").Inc()
}

// SetReadingSettings clamps the settings into their valid ranges, updates
// the session and mirrors the result to the cache.
func (se *Session) SetReadingSettings(ctx context.Context, settings models.ReadingSettings) models.ReadingSettings {
	clamped := settings.Clamped()

	se.mu.Lock()
	se.reading = clamped
	se.mu.Unlock()

	if err := se.store.cache.SetReadingSettings(ctx, se.id, clamped); err != nil {
		se.store.logger.Warn("failed to persist reading settings",
			zap.String("user_id", se.id),
			zap.Error(err))
	}
	observability.SessionMutations.WithLabelValues("set_reading_settings").Inc()
	return clamped
}

// SignOut resets the session user to the guest sentinel. The current view is
// left untouched; the router decides where a guest may go.
func (se *Session) SignOut() {
	se.mu.Lock()
	defer se.mu.Unlock()

	se.user = models.GuestProfile()
	observability.SessionMutations.WithLabelValues("sign_out").Inc()
}

// AdoptIdentity applies a resolved sign-in to the session: a found profile
// is adopted and, when the user is parked on an entry view, redirected HOME;
// a missing profile forces registration with the identity id pre-filled.
func (se *Session) AdoptIdentity(profile *models.UserProfile, id string) {
	se.mu.Lock()
	defer se.mu.Unlock()

	if profile != nil {
		se.user = *profile
		if se.view == models.ViewWelcome || se.view == models.ViewRegister {
			se.view = models.ViewHome
			se.params = models.ViewParams{}
		}
	} else {
		se.user = models.GuestProfile()
		se.user.ID = id
		se.view = models.ViewRegister
		se.params = models.ViewParams{}
	}

	observability.SessionMutations.WithLabelValues("adopt_identity").Inc()
}

// ID returns the session's identity id.
func (se *Session) ID() string {
	return se.id
}

// User returns a copy of the session user.
func (se *Session) User() models.UserProfile {
	se.mu.Lock()
	defer se.mu.Unlock()
	return se.user
}

// Config returns a copy of the session config.
func (se *Session) Config() models.AdminConfig {
	se.mu.Lock()
	defer se.mu.Unlock()
	return se.config
}

// Snapshot returns a consistent copy of the whole session.
func (se *Session) Snapshot() Snapshot {
	se.mu.Lock()
	defer se.mu.Unlock()

	return Snapshot{
		View:      se.view,
		Params:    se.params,
		User:      se.user,
		Config:    se.config,
		Theme:     se.theme,
		Reading:   se.reading,
		IsLoading: se.isLoading,
	}
}
