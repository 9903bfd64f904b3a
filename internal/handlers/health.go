package handlers

import (
	"net/http"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Health godoc
// @Summary Verificar saúde do serviço
// @Description Verifica a conectividade com MongoDB e Redis
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (a *API) Health(c *gin.Context) {
	ctx := c.Request.Context()
	services := map[string]string{}
	healthy := true

	if err := config.MongoDB.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		services["mongodb"] = "unhealthy"
		healthy = false
	} else {
		services["mongodb"] = "healthy"
	}

	if err := config.Redis.Ping(ctx).Err(); err != nil {
		services["redis"] = "unhealthy"
		healthy = false
	} else {
		services["redis"] = "healthy"
	}

	status := http.StatusOK
	overall := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		Services:  services,
	})
}
