package llm

import (
	"codeberg.org/codive/server/internal/config"
)

// builds the Gemini client configuration from the server config
func GeminiConfigFrom(cfg *config.Config) GeminiConfig {
	return GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
	}
}
