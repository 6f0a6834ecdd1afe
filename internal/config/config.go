package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"3000"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	OpenRouterAPIKey  string `envconfig:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string `envconfig:"OPENROUTER_BASE_URL" default:"https://openrouter.ai/api/v1"`
	AppReferer        string `envconfig:"APP_REFERER" default:"http://localhost:3000"`
	AppTitle          string `envconfig:"APP_TITLE" default:"Moshiur Portfolio Chat"`

	// ChatModel serves both modes; FallbackModel handles the general-mode
	// retry when a restricted reply looks unhelpful. CommandModel backs the
	// one-shot /ai-answer endpoint.
	ChatModel     string `envconfig:"CHAT_MODEL" default:"meta-llama/llama-3.1-8b-instruct:free"`
	FallbackModel string `envconfig:"FALLBACK_MODEL" default:"meta-llama/llama-3.1-8b-instruct:free"`
	CommandModel  string `envconfig:"COMMAND_MODEL" default:"openai/gpt-3.5-turbo"`

	ProfilePath string `envconfig:"PROFILE_PATH" default:"data/profile.json"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("PORTFOLIO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasOpenRouter() bool {
	return c.OpenRouterAPIKey != ""
}
