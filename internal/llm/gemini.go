package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// talks to the Gemini API through the genai SDK.
// safe for concurrent use, build one per process
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(ctx context.Context, config GeminiConfig) (*GeminiGenerator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: config.HTTPClient,
	}

	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, req TextGenerationRequest) (string, error) {
	contents, systemInstruction := toContents(req.Messages)

	generateConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(req.Temperature),
		MaxOutputTokens:   req.MaxOutputTokens,
		SystemInstruction: systemInstruction,
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, contents, generateConfig)
	if err != nil {
		// callers report the provider's message verbatim
		return "", err
	}

	return responseText(resp)
}

// converts the message list into gemini contents.
// gemini takes system turns as a separate instruction and calls the assistant "model";
// relative order of every other turn is kept as-is
func toContents(messages []Message) ([]*genai.Content, *genai.Content) {
	contents := make([]*genai.Content, 0, len(messages))
	var systemInstruction *genai.Content

	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			if systemInstruction == nil {
				systemInstruction = &genai.Content{}
			}

			systemInstruction.Parts = append(systemInstruction.Parts, genai.NewPartFromText(msg.Content))

		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))

		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.Role(msg.Role)))
		}
	}

	return contents, systemInstruction
}

// joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("empty response")
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response (finish reason: %s)", candidate.FinishReason)
	}

	var text strings.Builder
	hasText := false

	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}

		text.WriteString(part.Text)
		hasText = true
	}

	if !hasText {
		return "", fmt.Errorf("response contains no text")
	}

	return text.String(), nil
}
