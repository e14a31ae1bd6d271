package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"codeberg.org/codive/server/internal/completion"
	"codeberg.org/codive/server/internal/llm"
)

// client-side options, read from the environment
type Settings struct {
	Endpoint          string
	SystemInstruction string
	Temperature       *float32
}

// main TUI application model.
// the conversation lives here, the server keeps none
type Model struct {
	client   *Client
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	history    []llm.Message
	metadata   string
	err        error
	isFetching bool
	ready      bool
	width      int
	height     int
}

// sent when the server returns a completion
type GenerateResponseMsg struct {
	prompt   string
	response completion.CodeResponse
}

// sent when the request fails, for any reason
type GenerateErrorMsg struct {
	prompt string
	err    error
}
