package handlers

import (
	"net/http"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/middleware"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SaveStudyRequest is a generated study the user wants to keep.
type SaveStudyRequest struct {
	Reference string                `json:"reference" binding:"required"`
	Theology  models.TheologyLine   `json:"theology" binding:"required"`
	Module    models.ExegesisModule `json:"module" binding:"required"`
	Content   string                `json:"content" binding:"required"`
}

// ListStudies godoc
// @Summary Listar estudos salvos
// @Description Retorna os estudos salvos do usuário, mais recentes primeiro
// @Tags studies
// @Produce json
// @Success 200 {array} models.StudyResult
// @Failure 500 {object} ErrorResponse
// @Router /studies [get]
func (a *API) ListStudies(c *gin.Context) {
	studies, err := a.cache.GetStudies(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		a.logger.Error("failed to list studies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, studies)
}

// SaveStudy godoc
// @Summary Salvar estudo
// @Description Guarda um estudo gerado na lista pessoal. O conteúdo é preservado exatamente como foi gerado.
// @Tags studies
// @Accept json
// @Produce json
// @Param request body SaveStudyRequest true "Estudo a salvar"
// @Success 201 {object} models.StudyResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /studies [post]
func (a *API) SaveStudy(c *gin.Context) {
	var req SaveStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	if !req.Theology.IsValid() || !req.Module.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Linha teológica ou módulo desconhecido"})
		return
	}

	study := models.StudyResult{
		ID:        utils.GenerateUUID(),
		Reference: req.Reference,
		Theology:  req.Theology,
		Module:    req.Module,
		Content:   req.Content,
		Date:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := a.cache.SaveStudy(c.Request.Context(), middleware.SessionID(c), study); err != nil {
		a.logger.Error("failed to save study", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível salvar o estudo"})
		return
	}

	c.JSON(http.StatusCreated, study)
}

// DeleteStudy godoc
// @Summary Excluir estudo salvo
// @Description Remove um estudo da lista pessoal. Excluir um id desconhecido não é um erro.
// @Tags studies
// @Produce json
// @Param id path string true "ID do estudo"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /studies/{id} [delete]
func (a *API) DeleteStudy(c *gin.Context) {
	if err := a.cache.DeleteStudy(c.Request.Context(), middleware.SessionID(c), c.Param("id")); err != nil {
		a.logger.Error("failed to delete study", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.Status(http.StatusNoContent)
}
