package completion

import (
	"context"

	"codeberg.org/codive/server/internal/llm"
)

const (
	// the only model the service talks to
	Model = "gemini-2.0-flash-001"

	DefaultTemperature float32 = 0.7
	MaxOutputTokens    int32   = 2048
)

// forwards prompts to the provider and shapes the reply
type Forwarder struct {
	generator llm.TextGenerator
}

// contains all inputs for one completion
type CodeRequest struct {
	Prompt              string
	ConversationHistory []llm.Message
	Temperature         *float32 // nil means DefaultTemperature
	SystemInstruction   string
}

// what the caller sees, on success and on failure
type CodeResponse struct {
	Completion string `json:"completion"`
	TokensUsed int    `json:"tokens_used"`
	Model      string `json:"model"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// implemented by Forwarder, consumed by the HTTP layer
type Generator interface {
	Generate(ctx context.Context, req CodeRequest) (*CodeResponse, error)
}
