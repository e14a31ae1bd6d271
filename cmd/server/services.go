package main

import (
	"context"
	"fmt"

	"codeberg.org/codive/server/internal/completion"
	"codeberg.org/codive/server/internal/config"
	"codeberg.org/codive/server/internal/llm"
)

// creates and configures all service clients
func InitializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	generator, err := llm.NewGeminiGenerator(ctx, llm.GeminiConfigFrom(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return NewServices(generator), nil
}

// wires the forwarder around an existing generator
func NewServices(generator llm.TextGenerator) *Services {
	return &Services{
		Forwarder: completion.New(generator),
	}
}
