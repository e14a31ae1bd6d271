package llm

import (
	"context"
	"net/http"
)

// message roles understood by the generator
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "system", "user" or "assistant"
	Content string `json:"content"` // message content
}

// inputs for one generation call
type TextGenerationRequest struct {
	Model           string
	Messages        []Message
	Temperature     float32
	MaxOutputTokens int32
}

// generates text from an ordered message list
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (string, error)
}

// holds configuration for the Gemini client
type GeminiConfig struct {
	APIKey string

	// optional overrides, mostly for tests
	BaseURL    string
	HTTPClient *http.Client
}
