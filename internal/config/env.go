package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8000"
	defaultEnvironment = "development"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	port := os.Getenv("PORT")
	environment := os.Getenv("ENVIRONMENT")

	if geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	if port == "" {
		port = defaultPort
	}

	if environment == "" {
		environment = defaultEnvironment
	}

	return &Config{
		GeminiAPIKey:       geminiKey,
		Port:               port,
		Environment:        environment,
		CORSAllowedOrigins: parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}, nil
}

// splits a comma-separated origin list, "*" when unset
func parseOrigins(raw string) []string {
	origins := make([]string, 0)

	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		return []string{"*"}
	}

	return origins
}
