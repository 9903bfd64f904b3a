package handlers

import (
	"net/http"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CoverUploadResponse carries the public URL of an uploaded cover image.
type CoverUploadResponse struct {
	URL string `json:"url"`
}

// GetConfig godoc
// @Summary Obter configuração do app
// @Description Retorna a configuração global de conteúdo (capa, anúncio, módulos ativos, manutenção)
// @Tags config
// @Produce json
// @Success 200 {object} models.AdminConfig
// @Failure 500 {object} ErrorResponse
// @Router /config [get]
func (a *API) GetConfig(c *gin.Context) {
	cfg, err := a.configs.GetConfig(c.Request.Context())
	if err != nil {
		a.logger.Error("failed to get config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// PutConfig godoc
// @Summary Salvar configuração do app
// @Description Grava a configuração global por inteiro. A gravação é aguardada: a resposta confirma que a mudança está no ar para todos.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.AdminConfig true "Configuração completa"
// @Security BearerAuth
// @Success 200 {object} models.AdminConfig
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse
// @Router /config [put]
func (a *API) PutConfig(c *gin.Context) {
	var cfg models.AdminConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	for _, module := range cfg.ActiveModules {
		if !module.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Módulo de estudo desconhecido: " + string(module)})
			return
		}
	}

	if err := a.configs.SaveConfig(c.Request.Context(), cfg); err != nil {
		a.logger.Error("failed to save config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível salvar a configuração"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UploadCover godoc
// @Summary Enviar imagem de capa
// @Description Envia uma imagem para o armazenamento e retorna a URL pública para uso na configuração
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Imagem de capa"
// @Security BearerAuth
// @Success 200 {object} CoverUploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse
// @Router /config/cover [post]
func (a *API) UploadCover(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Arquivo não enviado"})
		return
	}

	url, err := a.assets.UploadImage(fileHeader)
	if err != nil {
		a.logger.Error("cover upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível enviar a imagem"})
		return
	}

	c.JSON(http.StatusOK, CoverUploadResponse{URL: url})
}
