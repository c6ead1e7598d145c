package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FILE", "LLM_PROVIDER", "OPENAI_API_KEY",
		"OPENAI_BASE_URL", "VERTEX_PROJECT_ID", "VERTEX_LOCATION", "CHAT_SERVER_URL", "CHAT_TYPE_DELAY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c := Load()
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, ProviderOpenAI, c.LLMProvider)
	assert.Equal(t, "https://api.openai.com/v1", c.OpenAIBaseURL)
	assert.Equal(t, "us-central1", c.VertexLocation)
	assert.Empty(t, c.Credential())
}

func TestLoad_OpenAICredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "  sk-test \n")
	t.Setenv("PORT", "9090")

	c := Load()
	assert.Equal(t, "sk-test", c.Credential())
	assert.Equal(t, "9090", c.Port)
}

func TestLoad_VertexCredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "Vertex")
	t.Setenv("OPENAI_API_KEY", "sk-ignored")
	t.Setenv("VERTEX_PROJECT_ID", "my-project")

	c := Load()
	assert.Equal(t, ProviderVertex, c.LLMProvider)
	assert.Equal(t, "my-project", c.Credential())
}

func TestLoad_UnknownProviderFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "llama")

	assert.Equal(t, ProviderOpenAI, Load().LLMProvider)
}

func TestLoadClient(t *testing.T) {
	clearEnv(t)

	c := LoadClient()
	assert.Equal(t, "http://localhost:8080", c.ServerURL)
	assert.Equal(t, 30*time.Millisecond, c.TypeDelay)

	t.Setenv("CHAT_SERVER_URL", "http://chat.local:9000/")
	t.Setenv("CHAT_TYPE_DELAY", "5ms")
	c = LoadClient()
	assert.Equal(t, "http://chat.local:9000", c.ServerURL)
	assert.Equal(t, 5*time.Millisecond, c.TypeDelay)

	t.Setenv("CHAT_TYPE_DELAY", "soon")
	assert.Equal(t, 30*time.Millisecond, LoadClient().TypeDelay)
}
