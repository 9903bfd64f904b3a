package handlers

import (
	"net/http"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/middleware"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Register godoc
// @Summary Completar cadastro
// @Description Valida o formulário de cadastro e promove a sessão a usuário registrado. Nenhum dado é gravado quando a validação falha.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.RegistrationInput true "Dados do cadastro"
// @Security BearerAuth
// @Success 200 {object} state.Snapshot
// @Failure 400 {object} utils.ValidationResult
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 500 {object} ErrorResponse
// @Router /register [post]
func (a *API) Register(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Register")
	defer span.End()

	id, err := middleware.IdentityFromContext(c)
	if err != nil || id == "" || id == models.GuestID {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Cadastro exige uma identidade autenticada"})
		return
	}
	span.SetAttributes(attribute.String("user.id", id))

	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	// Validation happens before any I/O
	if result := utils.ValidateRegistration(input); !result.IsValid {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	profile, err := a.profiles.Register(ctx, id, input)
	if err != nil {
		a.logger.Error("registration failed", zap.String("user_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível concluir o cadastro"})
		return
	}

	session := a.store.Resolve(ctx, id)
	session.SetUser(ctx, *profile)
	session.SetView(models.ViewHome, models.ViewParams{})

	c.JSON(http.StatusOK, session.Snapshot())
}

// GetProfile godoc
// @Summary Obter perfil
// @Description Retorna o perfil do usuário autenticado
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 404 {object} ErrorResponse
// @Router /profile [get]
func (a *API) GetProfile(c *gin.Context) {
	id, err := middleware.IdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Token de autenticação não fornecido ou inválido"})
		return
	}

	profile, err := a.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		if err == models.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Perfil não encontrado"})
			return
		}
		a.logger.Error("failed to get profile", zap.String("user_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Atualizar perfil
// @Description Aplica uma atualização parcial ao perfil. A sessão reflete a mudança imediatamente; a gravação remota é enfileirada.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.UserProfilePatch true "Campos a atualizar"
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Router /profile [patch]
func (a *API) UpdateProfile(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateProfile")
	defer span.End()

	id, err := middleware.IdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Token de autenticação não fornecido ou inválido"})
		return
	}

	var patch models.UserProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	session := a.store.Resolve(ctx, id)
	merged := session.UpdateUser(ctx, patch)

	c.JSON(http.StatusOK, merged)
}
