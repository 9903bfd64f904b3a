package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubGenerator returns canned content and records what it was asked.
type stubGenerator struct {
	content      string
	lastQuestion string
	lastModule   models.ExegesisModule
}

func (s *stubGenerator) AskBibleAI(ctx context.Context, question string, theology models.TheologyLine, persona string) string {
	s.lastQuestion = question
	return s.content
}

func (s *stubGenerator) GenerateExegesis(ctx context.Context, reference string, theology models.TheologyLine, module models.ExegesisModule) string {
	s.lastModule = module
	return s.content
}

func aiTestRouter(gen *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	api := NewAPI(nil, nil, nil, nil, nil, nil, nil, gen, zap.NewNop())

	router := gin.New()
	router.POST("/v1/ai/chat", api.Chat)
	router.POST("/v1/ai/exegesis", api.Exegesis)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestChat_ReturnsGeneratedContent(t *testing.T) {
	gen := &stubGenerator{content: "A graça é o favor imerecido de Deus."}
	router := aiTestRouter(gen)

	w := postJSON(t, router, "/v1/ai/chat", ChatRequest{
		Question: "O que é graça?",
		Theology: models.TheologyCalvinist,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp AIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, gen.content, resp.Content)
	assert.Equal(t, "O que é graça?", gen.lastQuestion)
}

func TestChat_RejectsUnknownTheology(t *testing.T) {
	router := aiTestRouter(&stubGenerator{})

	w := postJSON(t, router, "/v1/ai/chat", ChatRequest{
		Question: "O que é graça?",
		Theology: models.TheologyLine("Gnóstica"),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExegesis_ReturnsGeneratedContent(t *testing.T) {
	gen := &stubGenerator{content: "## Exegese de Romanos 8\n..."}
	router := aiTestRouter(gen)

	w := postJSON(t, router, "/v1/ai/exegesis", ExegesisRequest{
		Reference: "Romanos 8",
		Theology:  models.TheologyArminian,
		Module:    models.ModuleFullExegesis,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp AIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, gen.content, resp.Content)
	assert.Equal(t, models.ModuleFullExegesis, gen.lastModule)
}

func TestExegesis_RejectsUnknownModule(t *testing.T) {
	router := aiTestRouter(&stubGenerator{})

	w := postJSON(t, router, "/v1/ai/exegesis", ExegesisRequest{
		Reference: "Romanos 8",
		Theology:  models.TheologyCalvinist,
		Module:    models.ExegesisModule("Numerologia"),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExegesis_RejectsMissingReference(t *testing.T) {
	router := aiTestRouter(&stubGenerator{})

	w := postJSON(t, router, "/v1/ai/exegesis", ExegesisRequest{
		Theology: models.TheologyCalvinist,
		Module:   models.ModuleFullExegesis,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
