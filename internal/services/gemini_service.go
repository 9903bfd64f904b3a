package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/observability"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Fallback messages shown to the user when the AI backend cannot answer. The
// gateway never surfaces raw errors to the client.
const (
	MsgMissingAPIKey = "Erro: Chave de API não configurada. Contate o administrador."
	MsgInvalidAPIKey = "Erro: A chave de API configurada é inválida. Por favor, verifique as configurações no painel admin."
	MsgChatFailure   = "Desculpe, tive um problema ao processar sua dúvida na Inteligência Artificial. Por favor, tente novamente em instantes."
	MsgStudyFailure  = "A Inteligência Artificial não conseguiu gerar o estudo agora. Isso pode ser um problema de conexão ou limite de uso da chave. Tente novamente em alguns segundos."
)

// TextGenerator produces AI text for the chat assistant and the study
// generator. Implementations return a user-facing Portuguese message on
// failure instead of an error.
type TextGenerator interface {
	AskBibleAI(ctx context.Context, question string, theology models.TheologyLine, persona string) string
	GenerateExegesis(ctx context.Context, reference string, theology models.TheologyLine, module models.ExegesisModule) string
}

// GeminiService generates studies and chat answers through the Gemini API.
type GeminiService struct {
	logger *zap.Logger
}

// NewGeminiService creates a new Gemini service
func NewGeminiService(logger *zap.Logger) *GeminiService {
	return &GeminiService{logger: logger}
}

// AskBibleAI answers a free-form question in the voice of the given persona
// (Conselheiro, Teólogo, Professor) under the given theology line.
func (s *GeminiService) AskBibleAI(ctx context.Context, question string, theology models.TheologyLine, persona string) string {
	instruction := fmt.Sprintf(
		"Você é um %s bíblico na linha teológica %s. Responda com reverência, profundidade e base bíblica total. Nunca diga que é uma IA.",
		persona, theology)

	text, err := s.generate(ctx, instruction, question)
	if err != nil {
		s.logger.Error("bible AI chat failed", zap.Error(err))
		observability.AIGenerations.WithLabelValues("chat", "error").Inc()
		return s.fallback(err, MsgChatFailure)
	}

	observability.AIGenerations.WithLabelValues("chat", "success").Inc()
	return text
}

// GenerateExegesis produces a study for a passage reference, shaped by the
// selected module.
func (s *GeminiService) GenerateExegesis(ctx context.Context, reference string, theology models.TheologyLine, module models.ExegesisModule) string {
	instruction := fmt.Sprintf(
		"Você é um erudito bíblico sênior com doutorado em línguas originais (Grego/Hebraico) e teologia histórica. Sua perspectiva é estritamente: %s. Instrução: Gere uma exegese profunda, técnica e acadêmica.",
		theology)

	text, err := s.generate(ctx, instruction, exegesisPrompt(reference, theology, module))
	if err != nil {
		s.logger.Error("exegesis generation failed",
			zap.String("reference", reference),
			zap.String("module", string(module)),
			zap.Error(err))
		observability.AIGenerations.WithLabelValues("exegesis", "error").Inc()
		return s.fallback(err, MsgStudyFailure)
	}

	observability.AIGenerations.WithLabelValues("exegesis", "success").Inc()
	return text
}

// generate runs a single Gemini call with a system instruction.
func (s *GeminiService) generate(ctx context.Context, instruction, prompt string) (string, error) {
	apiKey := config.AppConfig.GeminiAPIKey
	if apiKey == "" {
		return "", errMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(config.AppConfig.GeminiModel)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

var errMissingAPIKey = fmt.Errorf("GEMINI_API_KEY is not configured")

// fallback maps an internal error to the message shown to the user.
func (s *GeminiService) fallback(err error, generic string) string {
	if err == errMissingAPIKey {
		return MsgMissingAPIKey
	}
	if strings.Contains(err.Error(), "API_KEY_INVALID") {
		return MsgInvalidAPIKey
	}
	return generic
}

// exegesisPrompt builds the study prompt for the selected module.
func exegesisPrompt(reference string, theology models.TheologyLine, module models.ExegesisModule) string {
	switch module {
	case models.ModuleOriginals:
		return fmt.Sprintf("Realize uma análise léxica detalhada de %q. Inclua o termo em Grego/Hebraico, transliteração, significado raiz e nuance teológica.", reference)
	case models.ModuleFullExegesis:
		return fmt.Sprintf("Gere uma exegese completa e densa de %q cobrindo contexto histórico, análise literária e implicações doutrinárias sob a ótica %s.", reference, theology)
	case models.ModuleHomiletic:
		return fmt.Sprintf("Gere apenas o esqueleto estrutural (tópicos principais) para um sermão baseado em %q.", reference)
	case models.ModuleTeacher:
		return fmt.Sprintf("Crie um plano de aula pedagógico para ensinar o texto %q em uma classe de teologia.", reference)
	case models.ModuleDictionary:
		return fmt.Sprintf("Defina os principais conceitos teológicos presentes em %q como em um dicionário bíblico erudito.", reference)
	case models.ModuleSyntax:
		return fmt.Sprintf("Analise a estrutura sintática e a lógica gramatical das orações em %q.", reference)
	default:
		return fmt.Sprintf("Realize um estudo teológico profundo sobre %q focado em %s.", reference, module)
	}
}
