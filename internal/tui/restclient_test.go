package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/codive/server/internal/llm"
)

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("CODIVE_API_ENDPOINT", "http://codive.internal:9000/")
	t.Setenv("CODIVE_SYSTEM_INSTRUCTION", "answer in Go")
	t.Setenv("CODIVE_TEMPERATURE", "0.25")

	settings := SettingsFromEnv()

	assert.Equal(t, "http://codive.internal:9000", settings.Endpoint)
	assert.Equal(t, "answer in Go", settings.SystemInstruction)
	require.NotNil(t, settings.Temperature)
	assert.Equal(t, float32(0.25), *settings.Temperature)
}

func TestSettingsFromEnv_Defaults(t *testing.T) {
	t.Setenv("CODIVE_API_ENDPOINT", "")
	t.Setenv("CODIVE_SYSTEM_INSTRUCTION", "")
	t.Setenv("CODIVE_TEMPERATURE", "warm")

	settings := SettingsFromEnv()

	assert.Equal(t, defaultEndpoint, settings.Endpoint)
	assert.Empty(t, settings.SystemInstruction)
	assert.Nil(t, settings.Temperature, "unparseable temperature is ignored")
}

func TestClientGenerate_Success(t *testing.T) {
	var received generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate_code", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"completion":"x := 1","tokens_used":3,"model":"gemini-2.0-flash-001","success":true}`)) //nolint:errcheck
	}))
	defer srv.Close()

	temperature := float32(0.3)
	client := NewClient(Settings{Endpoint: srv.URL, SystemInstruction: "sys", Temperature: &temperature})

	history := []llm.Message{{Role: "user", Content: "a"}, {Role: "assistant", Content: "b"}}
	resp, err := client.Generate(context.Background(), "c", history)

	require.NoError(t, err)
	assert.Equal(t, "x := 1", resp.Completion)
	assert.Equal(t, 3, resp.TokensUsed)
	assert.True(t, resp.Success)

	assert.Equal(t, "c", received.Prompt)
	assert.Equal(t, history, received.ConversationHistory)
	assert.Equal(t, "sys", received.SystemInstruction)
	require.NotNil(t, received.Temperature)
	assert.Equal(t, float32(0.3), *received.Temperature)
}

func TestClientGenerate_OmitsUnsetFields(t *testing.T) {
	var raw map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"completion":"ok","tokens_used":1,"model":"m","success":true}`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := NewClient(Settings{Endpoint: srv.URL}).Generate(context.Background(), "hi", nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"prompt": "hi"}, raw)
}

func TestClientGenerate_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":{"completion":"","tokens_used":0,"model":"gemini-2.0-flash-001","success":false,"error":"quota exceeded"}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := NewClient(Settings{Endpoint: srv.URL}).Generate(context.Background(), "hi", nil)

	require.Error(t, err)
	assert.Equal(t, "generation failed: quota exceeded", err.Error())
}

func TestClientGenerate_ValidationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","conversation_history",0,"content"],"msg":"field required","type":"missing"}]}`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := NewClient(Settings{Endpoint: srv.URL}).Generate(context.Background(), "hi", nil)

	require.Error(t, err)
	assert.Equal(t, "invalid request: field required", err.Error())
}

func TestClientGenerate_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream down`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := NewClient(Settings{Endpoint: srv.URL}).Generate(context.Background(), "hi", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestGenerateCmd_ReturnsMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"completion":"done","tokens_used":1,"model":"m","success":true}`)) //nolint:errcheck
	}))
	defer srv.Close()

	msg := NewClient(Settings{Endpoint: srv.URL}).GenerateCmd("hi", nil)()

	resp, ok := msg.(GenerateResponseMsg)
	require.True(t, ok, "expected GenerateResponseMsg, got %T", msg)
	assert.Equal(t, "hi", resp.prompt)
	assert.Equal(t, "done", resp.response.Completion)

	srv.Close()
	msg = NewClient(Settings{Endpoint: srv.URL}).GenerateCmd("hi", nil)()

	_, isErr := msg.(GenerateErrorMsg)
	assert.True(t, isErr, "expected GenerateErrorMsg after server shutdown, got %T", msg)
}
