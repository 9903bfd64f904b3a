package handlers

import (
	"net/http"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/middleware"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedbackRequest is a message for the admin team.
type FeedbackRequest struct {
	Message string `json:"message" binding:"required"`
}

// SubmitFeedback godoc
// @Summary Enviar feedback
// @Description Envia uma mensagem para a equipe. A gravação remota acontece em segundo plano.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Mensagem"
// @Success 201 {object} models.Feedback
// @Failure 400 {object} utils.ValidationResult
// @Failure 500 {object} ErrorResponse
// @Router /feedback [post]
func (a *API) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	if result := utils.ValidateFeedback(req.Message); !result.IsValid {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	id := middleware.SessionID(c)
	session := a.store.Resolve(c.Request.Context(), id)

	feedback, err := a.feedback.Submit(c.Request.Context(), session.User(), req.Message)
	if err != nil {
		a.logger.Error("failed to submit feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível enviar o feedback"})
		return
	}

	c.JSON(http.StatusCreated, feedback)
}
