package config

type Config struct {
	GeminiAPIKey       string
	Port               string
	Environment        string
	CORSAllowedOrigins []string
}

// true when running with ENVIRONMENT=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
