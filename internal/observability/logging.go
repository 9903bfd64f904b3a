package observability

import (
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/logging"
	"go.uber.org/zap"
)

// Logger returns the global logger instance
func Logger() *zap.Logger {
	return logging.Logger
}

// MaskWhatsApp masks a WhatsApp number for logging
func MaskWhatsApp(phone string) string {
	if len(phone) < 4 {
		return "****"
	}
	return "****" + phone[len(phone)-4:]
}
