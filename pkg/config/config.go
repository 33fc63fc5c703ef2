package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Groq   GroqConfig
	Mail   MailConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// GroqConfig holds completion API configuration. An empty APIKey is a
// supported mode: summarization uses the local fallback instead.
type GroqConfig struct {
	APIKey  string        `envconfig:"GROQ_API_KEY"`
	BaseURL string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string        `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
	Timeout time.Duration `envconfig:"GROQ_TIMEOUT" default:"30s"`
}

// MailConfig holds email delivery configuration. An empty ResendAPIKey is a
// supported mode: sharing logs the intended delivery instead of sending.
type MailConfig struct {
	ResendAPIKey   string        `envconfig:"RESEND_API_KEY"`
	From           string        `envconfig:"MAIL_FROM" default:"Meeting Summarizer <onboarding@resend.dev>"`
	DefaultSubject string        `envconfig:"MAIL_DEFAULT_SUBJECT" default:"Meeting Summary"`
	SimulatedDelay time.Duration `envconfig:"MAIL_SIMULATED_DELAY" default:"1s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return &config, nil
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
