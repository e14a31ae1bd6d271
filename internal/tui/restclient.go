package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/codive/server/internal/completion"
	"codeberg.org/codive/server/internal/llm"
)

const (
	defaultEndpoint = "http://localhost:8000"

	// generous, the server itself never gives up on the provider
	generateRequestTimeout = 2 * time.Minute
)

// reads CODIVE_* variables
func SettingsFromEnv() Settings {
	endpoint := os.Getenv("CODIVE_API_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	settings := Settings{
		Endpoint:          strings.TrimRight(endpoint, "/"),
		SystemInstruction: os.Getenv("CODIVE_SYSTEM_INSTRUCTION"),
	}

	if tempStr := os.Getenv("CODIVE_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temperature := float32(val)
			settings.Temperature = &temperature
		}
	}

	return settings
}

// manages HTTP requests to the generate_code endpoint
type Client struct {
	settings   Settings
	httpClient *http.Client
}

func NewClient(settings Settings) *Client {
	if settings.Endpoint == "" {
		settings.Endpoint = defaultEndpoint
	}

	return &Client{
		settings: settings,
		httpClient: &http.Client{
			Timeout: generateRequestTimeout,
		},
	}
}

// sends one prompt along with the conversation so far
func (c *Client) Generate(ctx context.Context, prompt string, history []llm.Message) (*completion.CodeResponse, error) {
	payload := generateRequest{
		Prompt:              prompt,
		ConversationHistory: history,
		Temperature:         c.settings.Temperature,
		SystemInstruction:   c.settings.SystemInstruction,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.settings.Endpoint + "/generate_code"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var result completion.CodeResponse
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}

		return &result, nil

	case http.StatusInternalServerError:
		var failure failureResponse
		if err := json.Unmarshal(body, &failure); err == nil && failure.Detail.Error != "" {
			return nil, fmt.Errorf("generation failed: %s", failure.Detail.Error)
		}

	case http.StatusUnprocessableEntity:
		var invalid validationResponse
		if err := json.Unmarshal(body, &invalid); err == nil && len(invalid.Detail) > 0 {
			return nil, fmt.Errorf("invalid request: %s", invalid.Detail[0].Msg)
		}
	}

	return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
}

// returns a tea.Cmd that sends a generate request
func (c *Client) GenerateCmd(prompt string, history []llm.Message) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateRequestTimeout)
		defer cancel()

		resp, err := c.Generate(ctx, prompt, history)
		if err != nil {
			return GenerateErrorMsg{prompt: prompt, err: err}
		}

		return GenerateResponseMsg{prompt: prompt, response: *resp}
	}
}

// REST API request/response types

type generateRequest struct {
	Prompt              string        `json:"prompt"`
	ConversationHistory []llm.Message `json:"conversation_history,omitempty"`
	Temperature         *float32      `json:"temperature,omitempty"`
	SystemInstruction   string        `json:"system_instruction,omitempty"`
}

type failureResponse struct {
	Detail completion.CodeResponse `json:"detail"`
}

type validationResponse struct {
	Detail []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	} `json:"detail"`
}

// one-line summary shown under the conversation
func formatMetadata(resp completion.CodeResponse) string {
	return fmt.Sprintf("model: %s | tokens: %d", resp.Model, resp.TokensUsed)
}
