package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/middleware"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminLoginRequest is the admin console credential pair.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse carries the signed console token.
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// UserListResponse is a page of the user directory.
type UserListResponse struct {
	Users      []models.UserProfile `json:"users"`
	Pagination Pagination           `json:"pagination"`
}

// FeedbackListResponse is a page of feedback messages.
type FeedbackListResponse struct {
	Feedback   []models.Feedback `json:"feedback"`
	Pagination Pagination        `json:"pagination"`
}

// AnalyticsResponse aggregates the console dashboard counters.
type AnalyticsResponse struct {
	RegisteredUsers int64 `json:"registered_users"`
	SharedStudies   int64 `json:"shared_studies"`
	FeedbackCount   int64 `json:"feedback_count"`
}

// AdminLogin godoc
// @Summary Entrar no console administrativo
// @Description Valida as credenciais do administrador e emite um token de curta duração
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Credenciais"
// @Success 200 {object} AdminLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/login [post]
func (a *API) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	if config.AppConfig.AdminPassword == "" {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Console administrativo não configurado"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(config.AppConfig.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(config.AppConfig.AdminPassword)) == 1
	if !userOK || !passOK {
		a.logger.Warn("admin login rejected", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Credenciais inválidas"})
		return
	}

	token, err := middleware.IssueAdminToken(req.Username)
	if err != nil {
		a.logger.Error("failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, AdminLoginResponse{Token: token})
}

// ListUsers godoc
// @Summary Listar usuários
// @Description Retorna o diretório de usuários cadastrados, mais recentes primeiro
// @Tags admin
// @Produce json
// @Param page query int false "Página" default(1)
// @Param per_page query int false "Itens por página" default(20)
// @Security BearerAuth
// @Success 200 {object} UserListResponse
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse
// @Router /admin/users [get]
func (a *API) ListUsers(c *gin.Context) {
	page, perPage := parsePagination(c)

	users, total, err := a.profiles.ListProfiles(c.Request.Context(), page, perPage)
	if err != nil {
		a.logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, UserListResponse{
		Users:      users,
		Pagination: Pagination{Page: page, PerPage: perPage, Total: total},
	})
}

// ListFeedback godoc
// @Summary Listar feedback
// @Description Retorna as mensagens de feedback recebidas, mais recentes primeiro
// @Tags admin
// @Produce json
// @Param page query int false "Página" default(1)
// @Param per_page query int false "Itens por página" default(20)
// @Security BearerAuth
// @Success 200 {object} FeedbackListResponse
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse
// @Router /admin/feedback [get]
func (a *API) ListFeedback(c *gin.Context) {
	page, perPage := parsePagination(c)

	messages, total, err := a.feedback.List(c.Request.Context(), page, perPage)
	if err != nil {
		a.logger.Error("failed to list feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, FeedbackListResponse{
		Feedback:   messages,
		Pagination: Pagination{Page: page, PerPage: perPage, Total: total},
	})
}

// Analytics godoc
// @Summary Métricas do console
// @Description Retorna os contadores agregados exibidos no painel administrativo
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AnalyticsResponse
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse
// @Router /admin/analytics [get]
func (a *API) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := a.profiles.CountProfiles(ctx)
	if err != nil {
		a.logger.Error("failed to count users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	studies, err := a.community.CountStudies(ctx)
	if err != nil {
		a.logger.Error("failed to count shared studies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	feedbackCount, err := a.feedback.Count(ctx)
	if err != nil {
		a.logger.Error("failed to count feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, AnalyticsResponse{
		RegisteredUsers: users,
		SharedStudies:   studies,
		FeedbackCount:   feedbackCount,
	})
}
