package handlers

import (
	"net/http"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/middleware"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SharedStudyListResponse is a page of the community feed.
type SharedStudyListResponse struct {
	Studies    []models.SharedStudy `json:"studies"`
	Pagination Pagination           `json:"pagination"`
}

// PublishStudyRequest is a study the user wants to share with the community.
type PublishStudyRequest struct {
	Reference string                `json:"reference" binding:"required"`
	Theology  models.TheologyLine   `json:"theology" binding:"required"`
	Module    models.ExegesisModule `json:"module" binding:"required"`
	Content   string                `json:"content" binding:"required"`
}

// LikeResponse carries the updated like count.
type LikeResponse struct {
	Likes int64 `json:"likes"`
}

// ListSharedStudies godoc
// @Summary Listar estudos da comunidade
// @Description Retorna o mural de estudos compartilhados, mais recentes primeiro
// @Tags community
// @Produce json
// @Param page query int false "Página" default(1)
// @Param per_page query int false "Itens por página" default(20)
// @Success 200 {object} SharedStudyListResponse
// @Failure 500 {object} ErrorResponse
// @Router /community/studies [get]
func (a *API) ListSharedStudies(c *gin.Context) {
	page, perPage := parsePagination(c)

	studies, total, err := a.community.ListStudies(c.Request.Context(), page, perPage)
	if err != nil {
		a.logger.Error("failed to list shared studies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, SharedStudyListResponse{
		Studies:    studies,
		Pagination: Pagination{Page: page, PerPage: perPage, Total: total},
	})
}

// PublishStudy godoc
// @Summary Compartilhar estudo
// @Description Publica um estudo no mural da comunidade com o nome e avatar atuais do autor
// @Tags community
// @Accept json
// @Produce json
// @Param request body PublishStudyRequest true "Estudo a compartilhar"
// @Security BearerAuth
// @Success 201 {object} models.SharedStudy
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 500 {object} ErrorResponse
// @Router /community/studies [post]
func (a *API) PublishStudy(c *gin.Context) {
	var req PublishStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	if !req.Theology.IsValid() || !req.Module.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Linha teológica ou módulo desconhecido"})
		return
	}

	id := middleware.SessionID(c)
	session := a.store.Resolve(c.Request.Context(), id)
	author := session.User()
	if author.IsGuest() {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Compartilhar exige cadastro"})
		return
	}

	study := models.StudyResult{
		Reference: req.Reference,
		Theology:  req.Theology,
		Module:    req.Module,
		Content:   req.Content,
	}

	shared, err := a.community.PublishStudy(c.Request.Context(), study, author)
	if err != nil {
		a.logger.Error("failed to publish study", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível compartilhar o estudo"})
		return
	}

	c.JSON(http.StatusCreated, shared)
}

// LikeSharedStudy godoc
// @Summary Curtir estudo compartilhado
// @Description Incrementa o contador de curtidas de um estudo do mural
// @Tags community
// @Produce json
// @Param id path string true "ID do estudo compartilhado"
// @Success 200 {object} LikeResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /community/studies/{id}/like [post]
func (a *API) LikeSharedStudy(c *gin.Context) {
	likes, err := a.community.LikeStudy(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == models.ErrDocumentNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estudo não encontrado"})
			return
		}
		a.logger.Error("failed to like study", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, LikeResponse{Likes: likes})
}
