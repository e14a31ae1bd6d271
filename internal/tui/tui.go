package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/codive/server/internal/llm"
)

// rows taken by header, status, input box and help
const chromeHeight = 7

func NewApp(settings Settings) *Model {
	ti := textinput.New()
	ti.Placeholder = "ask for some code..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	return &Model{
		client:  NewClient(settings),
		input:   ti,
		spinner: sp,
		history: []llm.Message{},
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			return m, m.send()

		case "ctrl+l":
			m.history = []llm.Message{}
			m.metadata = ""
			m.err = nil
			m.refreshViewport()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case GenerateResponseMsg:
		m.isFetching = false
		m.err = nil
		m.history = append(m.history,
			llm.Message{Role: llm.RoleUser, Content: msg.prompt},
			llm.Message{Role: llm.RoleAssistant, Content: msg.response.Completion},
		)
		m.metadata = formatMetadata(msg.response)
		m.refreshViewport()
		return m, nil

	case GenerateErrorMsg:
		// the failed turn is not added, so the next send retries from the same history
		m.isFetching = false
		m.err = msg.err
		m.input.SetValue(msg.prompt)
		return m, nil

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)

	if m.ready {
		m.viewport, viewportCmd = m.viewport.Update(msg)
	}

	return m, tea.Batch(inputCmd, viewportCmd)
}

// starts a request for the current input, if any
func (m *Model) send() tea.Cmd {
	prompt := m.input.Value()
	if m.isFetching || strings.TrimSpace(prompt) == "" {
		return nil
	}

	m.isFetching = true
	m.err = nil
	m.input.SetValue("")

	history := append([]llm.Message(nil), m.history...)

	return tea.Batch(m.client.GenerateCmd(prompt, history), m.spinner.Tick)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(10, width-8)

	viewportHeight := max(3, height-chromeHeight)
	if !m.ready {
		m.viewport = viewport.New(width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = viewportHeight
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err == nil {
		m.renderer = renderer
	}

	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

func (m *Model) renderConversation() string {
	if len(m.history) == 0 {
		return infoStyle.Render(logo + "\n  type a prompt below and press enter.")
	}

	var b strings.Builder

	for _, msg := range m.history {
		if msg.Role == llm.RoleUser {
			b.WriteString(userLabelStyle.Render("you"))
			b.WriteString("\n")
			b.WriteString(msg.Content)
			b.WriteString("\n\n")
			continue
		}

		b.WriteString(assistantLabelStyle.Render("codive"))
		b.WriteString("\n")
		b.WriteString(m.renderMarkdown(msg.Content))
		b.WriteString("\n")
	}

	return b.String()
}

// completions are usually markdown with fenced code; fall back to raw text
func (m *Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content + "\n"
	}

	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content + "\n"
	}

	return rendered
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  initializing..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("CODIVE"))
	b.WriteString("  ")
	b.WriteString(infoStyle.Render(m.client.settings.Endpoint))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	switch {
	case m.isFetching:
		b.WriteString(m.spinner.View() + infoStyle.Render(" generating..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
	case m.metadata != "":
		b.WriteString(infoStyle.Render(m.metadata))
	}

	b.WriteString("\n")

	b.WriteString(inputBoxStyle.Width(max(10, m.width-4)).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[Enter: Send] [Ctrl+L: Clear] [PgUp/PgDn: Scroll] [Esc/Ctrl+C: Exit]"))

	return b.String()
}
