package config

import (
	"os"
	"strings"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderVertex = "vertex"
)

// Config is read once at process start and passed down explicitly.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	LogFile  string

	LLMProvider    string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	VertexProject  string
	VertexLocation string
}

// Load reads the server configuration from the environment. Callers load
// .env files beforehand.
func Load() Config {
	c := Config{
		Port:           getenv("PORT", "8080"),
		GinMode:        os.Getenv("GIN_MODE"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogFile:        os.Getenv("LOG_FILE"),
		LLMProvider:    strings.ToLower(getenv("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:  getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		VertexProject:  os.Getenv("VERTEX_PROJECT_ID"),
		VertexLocation: getenv("VERTEX_LOCATION", "us-central1"),
	}
	if c.LLMProvider != ProviderVertex {
		c.LLMProvider = ProviderOpenAI
	}
	return c
}

// Credential is what the selected provider cannot work without. Empty means
// the endpoint answers every request with a configuration error.
func (c Config) Credential() string {
	if c.LLMProvider == ProviderVertex {
		return c.VertexProject
	}
	return c.OpenAIAPIKey
}

// ClientConfig configures the terminal chat view.
type ClientConfig struct {
	ServerURL string
	TypeDelay time.Duration
}

func LoadClient() ClientConfig {
	c := ClientConfig{
		ServerURL: strings.TrimRight(getenv("CHAT_SERVER_URL", "http://localhost:8080"), "/"),
		TypeDelay: 30 * time.Millisecond,
	}
	if v := os.Getenv("CHAT_TYPE_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.TypeDelay = d
		}
	}
	return c
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
