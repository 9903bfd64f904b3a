package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGeminiService_MissingAPIKey(t *testing.T) {
	original := config.AppConfig
	config.AppConfig = &config.Config{}
	defer func() { config.AppConfig = original }()

	service := NewGeminiService(zap.NewNop())
	ctx := context.Background()

	answer := service.AskBibleAI(ctx, "O que é graça?", models.TheologyCalvinist, "Conselheiro")
	assert.Equal(t, MsgMissingAPIKey, answer)

	study := service.GenerateExegesis(ctx, "Romanos 8", models.TheologyCalvinist, models.ModuleFullExegesis)
	assert.Equal(t, MsgMissingAPIKey, study)
}

func TestGeminiService_Fallback(t *testing.T) {
	service := NewGeminiService(zap.NewNop())

	assert.Equal(t, MsgMissingAPIKey, service.fallback(errMissingAPIKey, MsgChatFailure))
	assert.Equal(t, MsgInvalidAPIKey, service.fallback(
		errors.New("googleapi: Error 400: API_KEY_INVALID"), MsgChatFailure))
}

func TestGeminiService_FallbackMessages(t *testing.T) {
	service := NewGeminiService(zap.NewNop())

	assert.Equal(t, MsgChatFailure, service.fallback(assert.AnError, MsgChatFailure))
	assert.Equal(t, MsgStudyFailure, service.fallback(assert.AnError, MsgStudyFailure))
}

func TestExegesisPrompt_PerModule(t *testing.T) {
	reference := "João 3:16"

	tests := []struct {
		module   models.ExegesisModule
		contains string
	}{
		{models.ModuleOriginals, "análise léxica"},
		{models.ModuleFullExegesis, "exegese completa"},
		{models.ModuleHomiletic, "esqueleto estrutural"},
		{models.ModuleTeacher, "plano de aula"},
		{models.ModuleDictionary, "dicionário bíblico"},
		{models.ModuleSyntax, "estrutura sintática"},
	}

	for _, tt := range tests {
		t.Run(string(tt.module), func(t *testing.T) {
			prompt := exegesisPrompt(reference, models.TheologyArminian, tt.module)
			assert.Contains(t, prompt, reference)
			assert.Contains(t, prompt, tt.contains)
		})
	}
}

func TestExegesisPrompt_FullExegesisCarriesTheology(t *testing.T) {
	prompt := exegesisPrompt("Efésios 2", models.TheologyPentecostal, models.ModuleFullExegesis)
	assert.Contains(t, prompt, string(models.TheologyPentecostal))
}
