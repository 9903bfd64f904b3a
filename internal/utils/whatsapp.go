package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizeWhatsApp validates a WhatsApp number and returns it in E.164
// format without the leading plus sign, matching how the mobile client
// stores it. Numbers without a country code are assumed Brazilian.
func NormalizeWhatsApp(phone string) (string, error) {
	clean := strings.TrimSpace(phone)
	if clean == "" {
		return "", fmt.Errorf("empty phone number")
	}

	if !strings.HasPrefix(clean, "+") {
		if strings.HasPrefix(clean, "55") {
			clean = "+" + clean
		} else {
			clean = "+55" + clean
		}
	}

	num, err := phonenumbers.Parse(clean, "")
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %s", phone)
	}

	return strings.TrimPrefix(phonenumbers.Format(num, phonenumbers.E164), "+"), nil
}
