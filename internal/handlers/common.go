package handlers

import (
	"strconv"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/services"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/state"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the error payload for every failing endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Pagination carries the page metadata of list responses.
type Pagination struct {
	Page    int64 `json:"page"`
	PerPage int64 `json:"per_page"`
	Total   int64 `json:"total"`
}

// API bundles the handler dependencies. Handlers are methods so nothing here
// depends on package-level state.
type API struct {
	store     *state.Store
	profiles  *services.ProfileService
	configs   *services.ConfigService
	cache     *services.CacheService
	community *services.CommunityService
	feedback  *services.FeedbackService
	assets    *services.AssetService
	ai        services.TextGenerator
	logger    *zap.Logger
}

// NewAPI creates the handler set
func NewAPI(
	store *state.Store,
	profiles *services.ProfileService,
	configs *services.ConfigService,
	cache *services.CacheService,
	community *services.CommunityService,
	feedback *services.FeedbackService,
	assets *services.AssetService,
	ai services.TextGenerator,
	logger *zap.Logger,
) *API {
	return &API{
		store:     store,
		profiles:  profiles,
		configs:   configs,
		cache:     cache,
		community: community,
		feedback:  feedback,
		assets:    assets,
		ai:        ai,
		logger:    logger,
	}
}

// parsePagination reads page/per_page query params with sane bounds.
func parsePagination(c *gin.Context) (int64, int64) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.ParseInt(c.DefaultQuery("per_page", "20"), 10, 64)
	if err != nil || perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	return page, perPage
}
