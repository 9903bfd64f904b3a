package utils

import (
	"strings"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// ValidateRegistration validates the registration form before any I/O is
// attempted. No partial write happens when this fails.
func ValidateRegistration(input models.RegistrationInput) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(input.Name) == "" {
		result.AddError("name", "Nome é obrigatório")
	}
	if strings.TrimSpace(input.Church) == "" {
		result.AddError("church", "Igreja é obrigatória")
	}
	if input.Church == "Nova Igreja" && strings.TrimSpace(input.CustomChurch) == "" {
		result.AddError("customChurch", "Informe o nome da sua igreja")
	}
	if strings.TrimSpace(input.Role) == "" {
		result.AddError("role", "Função é obrigatória")
	}
	if strings.TrimSpace(input.WhatsApp) == "" {
		result.AddError("whatsapp", "WhatsApp é obrigatório")
	} else if _, err := NormalizeWhatsApp(input.WhatsApp); err != nil {
		result.AddError("whatsapp", "Número de WhatsApp inválido")
	}

	return result
}

// ValidateNote validates a personal note before it is stored.
func ValidateNote(note models.PersonalNote) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(note.Title) == "" {
		result.AddError("title", "Título é obrigatório")
	}

	return result
}

// ValidateFeedback validates a feedback message before it is stored.
func ValidateFeedback(message string) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(message) == "" {
		result.AddError("message", "Mensagem é obrigatória")
	}

	return result
}
