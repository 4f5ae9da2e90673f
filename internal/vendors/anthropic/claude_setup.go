package anthropic

import (
	"fmt"
	"net/http"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/rat/internal/models"
)

func (c *Claude) Setup() error {
	if c.APIKeyEnv == "" {
		c.APIKeyEnv = Default.APIKeyEnv
	}
	if c.URL == "" {
		c.URL = ClaudeURL
	}
	if c.AnthropicVersion == "" {
		c.AnthropicVersion = Default.AnthropicVersion
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = Default.MaxTokens
	}
	apiKey := os.Getenv(c.APIKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("%w: environment variable '%v' not set", models.ErrAuth, c.APIKeyEnv)
	}
	c.client = &http.Client{Timeout: c.Timeout}
	c.apiKey = apiKey
	if misc.Truthy(os.Getenv("DEBUG")) || misc.Truthy(os.Getenv("ANTHROPIC_DEBUG")) {
		c.debug = true
	}
	return nil
}
