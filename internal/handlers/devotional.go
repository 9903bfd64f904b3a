package handlers

import (
	"net/http"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/gin-gonic/gin"
)

// ListDevotionals godoc
// @Summary Listar devocionais
// @Description Retorna a lista de devocionais diários exibidos na tela inicial
// @Tags devotionals
// @Produce json
// @Success 200 {array} models.Devotional
// @Router /devotionals [get]
func (a *API) ListDevotionals(c *gin.Context) {
	c.JSON(http.StatusOK, models.SeedDevotionals())
}
