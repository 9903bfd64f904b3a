package handlers

import (
	"net/http"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/middleware"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/views"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// NavigateRequest is the payload of a view transition.
type NavigateRequest struct {
	View   models.AppView    `json:"view" binding:"required"`
	Params models.ViewParams `json:"params"`
}

// ResolveSession godoc
// @Summary Resolver sessão
// @Description Cria ou restaura a sessão do usuário a partir da identidade do token. Sem token, inicia uma sessão de visitante.
// @Tags session
// @Produce json
// @Success 200 {object} state.Snapshot
// @Router /session/resolve [post]
func (a *API) ResolveSession(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ResolveSession")
	defer span.End()

	id := middleware.SessionID(c)
	span.SetAttributes(attribute.String("session.id", id))

	session := a.store.Resolve(ctx, id)

	if id != models.GuestID {
		profile, err := a.profiles.GetProfile(ctx, id)
		if err != nil && err != models.ErrProfileNotFound {
			a.logger.Warn("profile lookup failed during resolve",
				zap.String("user_id", id),
				zap.Error(err))
		} else {
			session.AdoptIdentity(profile, id)
		}
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// GetSession godoc
// @Summary Obter estado da sessão
// @Description Retorna o snapshot completo do estado da sessão atual
// @Tags session
// @Produce json
// @Success 200 {object} state.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /session [get]
func (a *API) GetSession(c *gin.Context) {
	session, err := a.store.Get(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sessão não encontrada"})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// Navigate godoc
// @Summary Navegar entre telas
// @Description Substitui a tela atual e seus parâmetros. Não há pilha de histórico.
// @Tags session
// @Accept json
// @Produce json
// @Param request body NavigateRequest true "Destino da navegação"
// @Success 200 {object} state.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /session/navigate [post]
func (a *API) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	session, err := a.store.Get(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sessão não encontrada"})
		return
	}

	session.SetView(req.View, req.Params)
	c.JSON(http.StatusOK, session.Snapshot())
}

// GetScreen godoc
// @Summary Resolver tela atual
// @Description Retorna a tela que o cliente deve renderizar para o estado atual da sessão
// @Tags session
// @Produce json
// @Success 200 {object} views.Screen
// @Failure 404 {object} ErrorResponse
// @Router /session/screen [get]
func (a *API) GetScreen(c *gin.Context) {
	session, err := a.store.Get(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sessão não encontrada"})
		return
	}

	snap := session.Snapshot()
	screen := views.Resolve(snap.View, snap.Params, snap.User, snap.Config, snap.Theme)
	c.JSON(http.StatusOK, screen)
}

// SignOut godoc
// @Summary Encerrar sessão
// @Description Volta o usuário da sessão ao visitante. A tela atual não muda.
// @Tags session
// @Produce json
// @Success 200 {object} state.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /session/signout [post]
func (a *API) SignOut(c *gin.Context) {
	session, err := a.store.Get(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sessão não encontrada"})
		return
	}

	session.SignOut()
	c.JSON(http.StatusOK, session.Snapshot())
}

// ThemeRequest selects the UI theme.
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

// SetTheme godoc
// @Summary Alterar tema
// @Description Alterna entre tema claro e escuro; a preferência é persistida
// @Tags session
// @Accept json
// @Produce json
// @Param request body ThemeRequest true "Tema desejado"
// @Success 200 {object} state.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /session/theme [put]
func (a *API) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Tema inválido"})
		return
	}

	session, err := a.store.Get(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sessão não encontrada"})
		return
	}

	session.SetTheme(c.Request.Context(), req.Theme)
	c.JSON(http.StatusOK, session.Snapshot())
}

// SetReadingSettings godoc
// @Summary Ajustar preferências de leitura
// @Description Atualiza fonte, tamanho e entrelinha. Valores fora dos limites são ajustados para o limite mais próximo.
// @Tags session
// @Accept json
// @Produce json
// @Param request body models.ReadingSettings true "Preferências de leitura"
// @Success 200 {object} state.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /session/reading-settings [put]
func (a *API) SetReadingSettings(c *gin.Context) {
	var req models.ReadingSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	session, err := a.store.Get(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sessão não encontrada"})
		return
	}

	session.SetReadingSettings(c.Request.Context(), req)
	c.JSON(http.StatusOK, session.Snapshot())
}
