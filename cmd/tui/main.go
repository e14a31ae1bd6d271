package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/joho/godotenv"

	"codeberg.org/codive/server/internal/completion"
	"codeberg.org/codive/server/internal/llm"
	"codeberg.org/codive/server/internal/tui"
)

// satisfied by *tui.Client
type promptClient interface {
	Generate(ctx context.Context, prompt string, history []llm.Message) (*completion.CodeResponse, error)
}

func main() {
	_ = godotenv.Load() //nolint:errcheck

	settings := tui.SettingsFromEnv()

	// piped output or a prompt on the command line runs a single request
	if len(os.Args) > 1 || !term.IsTerminal(os.Stdout.Fd()) {
		client := tui.NewClient(settings)

		if err := runOnce(context.Background(), client, os.Args[1:], os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "codive: %v\n", err)
			os.Exit(1)
		}

		return
	}

	p := tea.NewProgram(tui.NewApp(settings), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running codive: %v\n", err)
		os.Exit(1)
	}
}

// sends one prompt, taken from args or else from stdin, and prints the completion
func runOnce(ctx context.Context, client promptClient, args []string, stdin io.Reader, stdout io.Writer) error {
	prompt := strings.TrimSpace(strings.Join(args, " "))

	if prompt == "" {
		input, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read prompt from stdin: %w", err)
		}

		prompt = strings.TrimSpace(string(input))
	}

	if prompt == "" {
		return fmt.Errorf("no prompt given")
	}

	resp, err := client.Generate(ctx, prompt, nil)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(stdout, resp.Completion); err != nil {
		return fmt.Errorf("failed to write completion: %w", err)
	}

	return nil
}
