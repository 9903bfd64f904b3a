package handlers

import (
	"net/http"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// ChatRequest is a question for the Bible AI assistant.
type ChatRequest struct {
	Question string              `json:"question" binding:"required"`
	Theology models.TheologyLine `json:"theology" binding:"required"`
	Persona  string              `json:"persona"`
}

// ExegesisRequest asks for a generated study.
type ExegesisRequest struct {
	Reference string                `json:"reference" binding:"required"`
	Theology  models.TheologyLine   `json:"theology" binding:"required"`
	Module    models.ExegesisModule `json:"module" binding:"required"`
}

// AIResponse carries generated text. Failures arrive here too, as a
// user-facing message, never as an HTTP error.
type AIResponse struct {
	Content string `json:"content"`
}

// Chat godoc
// @Summary Perguntar à IA bíblica
// @Description Responde uma dúvida bíblica na persona escolhida (Conselheiro, Teólogo ou Professor) e na linha teológica da sessão
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Pergunta"
// @Success 200 {object} AIResponse
// @Failure 400 {object} ErrorResponse
// @Router /ai/chat [post]
func (a *API) Chat(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Chat")
	defer span.End()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	if !req.Theology.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Linha teológica desconhecida"})
		return
	}

	persona := req.Persona
	if persona == "" {
		persona = "Conselheiro"
	}
	span.SetAttributes(attribute.String("ai.persona", persona))

	content := a.ai.AskBibleAI(ctx, req.Question, req.Theology, persona)
	c.JSON(http.StatusOK, AIResponse{Content: content})
}

// Exegesis godoc
// @Summary Gerar estudo exegético
// @Description Gera um estudo para a referência bíblica no formato do módulo escolhido. Falhas da IA retornam 200 com uma mensagem explicativa no conteúdo.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ExegesisRequest true "Referência e módulo"
// @Success 200 {object} AIResponse
// @Failure 400 {object} ErrorResponse
// @Router /ai/exegesis [post]
func (a *API) Exegesis(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Exegesis")
	defer span.End()

	var req ExegesisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	if !req.Theology.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Linha teológica desconhecida"})
		return
	}
	if !req.Module.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Módulo de estudo desconhecido"})
		return
	}

	span.SetAttributes(
		attribute.String("ai.reference", req.Reference),
		attribute.String("ai.module", string(req.Module)),
	)

	content := a.ai.GenerateExegesis(ctx, req.Reference, req.Theology, req.Module)
	c.JSON(http.StatusOK, AIResponse{Content: content})
}
