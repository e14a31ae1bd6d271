package completion

import (
	"context"
	"strings"

	"codeberg.org/codive/server/internal/llm"
)

func New(generator llm.TextGenerator) *Forwarder {
	return &Forwarder{generator: generator}
}

// sends the request to the provider and returns the completion.
// every error returned is a *ProviderFailure
func (f *Forwarder) Generate(ctx context.Context, req CodeRequest) (*CodeResponse, error) {
	// absent and explicit null both get 0.7; the provider's own default is never used
	temperature := DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	text, err := f.generator.GenerateText(ctx, llm.TextGenerationRequest{
		Model:           Model,
		Messages:        BuildMessages(req),
		Temperature:     temperature,
		MaxOutputTokens: MaxOutputTokens,
	})
	if err != nil {
		return nil, &ProviderFailure{Cause: err}
	}

	return &CodeResponse{
		Completion: text,
		TokensUsed: CountWords(text),
		Model:      Model,
		Success:    true,
	}, nil
}

// system instruction first, then history in order, then the prompt
func BuildMessages(req CodeRequest) []llm.Message {
	messages := make([]llm.Message, 0, len(req.ConversationHistory)+2)

	if req.SystemInstruction != "" {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: req.SystemInstruction})
	}

	messages = append(messages, req.ConversationHistory...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: req.Prompt})

	return messages
}

// whitespace-delimited word count, reported as tokens_used.
// this is not the provider's token count and must not become one
func CountWords(text string) int {
	return len(strings.Fields(text))
}
