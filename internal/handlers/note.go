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

// NoteRequest creates or updates a personal note.
type NoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// ListNotes godoc
// @Summary Listar anotações
// @Description Retorna o caderno de anotações pessoais do usuário
// @Tags notes
// @Produce json
// @Success 200 {array} models.PersonalNote
// @Failure 500 {object} ErrorResponse
// @Router /notes [get]
func (a *API) ListNotes(c *gin.Context) {
	notes, err := a.cache.GetNotes(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		a.logger.Error("failed to list notes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, notes)
}

// CreateNote godoc
// @Summary Criar anotação
// @Description Adiciona uma anotação ao caderno pessoal
// @Tags notes
// @Accept json
// @Produce json
// @Param request body NoteRequest true "Anotação"
// @Success 201 {object} models.PersonalNote
// @Failure 400 {object} utils.ValidationResult
// @Failure 500 {object} ErrorResponse
// @Router /notes [post]
func (a *API) CreateNote(c *gin.Context) {
	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	note := models.PersonalNote{
		ID:        utils.GenerateUUID(),
		Title:     req.Title,
		Content:   req.Content,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if result := utils.ValidateNote(note); !result.IsValid {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	if err := a.cache.SaveNote(c.Request.Context(), middleware.SessionID(c), note); err != nil {
		a.logger.Error("failed to save note", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível salvar a anotação"})
		return
	}

	c.JSON(http.StatusCreated, note)
}

// UpdateNote godoc
// @Summary Atualizar anotação
// @Description Substitui o título e o conteúdo de uma anotação existente
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "ID da anotação"
// @Param request body NoteRequest true "Anotação"
// @Success 200 {object} models.PersonalNote
// @Failure 400 {object} utils.ValidationResult
// @Failure 500 {object} ErrorResponse
// @Router /notes/{id} [put]
func (a *API) UpdateNote(c *gin.Context) {
	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	note := models.PersonalNote{
		ID:        c.Param("id"),
		Title:     req.Title,
		Content:   req.Content,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if result := utils.ValidateNote(note); !result.IsValid {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	if err := a.cache.SaveNote(c.Request.Context(), middleware.SessionID(c), note); err != nil {
		a.logger.Error("failed to update note", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível salvar a anotação"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote godoc
// @Summary Excluir anotação
// @Description Remove uma anotação do caderno pessoal
// @Tags notes
// @Produce json
// @Param id path string true "ID da anotação"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /notes/{id} [delete]
func (a *API) DeleteNote(c *gin.Context) {
	if err := a.cache.DeleteNote(c.Request.Context(), middleware.SessionID(c), c.Param("id")); err != nil {
		a.logger.Error("failed to delete note", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.Status(http.StatusNoContent)
}
