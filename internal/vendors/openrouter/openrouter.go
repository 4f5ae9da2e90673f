package openrouter

import (
	"fmt"

	"github.com/baalimago/rat/internal/text/generic"
)

const ChatURL = "https://openrouter.ai/api/v1/chat/completions"

var Default = OpenRouter{
	Model:     "openai/gpt-4o-mini",
	URL:       ChatURL,
	APIKeyEnv: "OPENROUTER_API_KEY",
}

// OpenRouter is used as response backend only.
type OpenRouter struct {
	generic.StreamCompleter
	Model     string
	MaxTokens int
	URL       string
	APIKeyEnv string
}

func (o *OpenRouter) Setup() error {
	if o.APIKeyEnv == "" {
		o.APIKeyEnv = Default.APIKeyEnv
	}
	if o.URL == "" {
		o.URL = ChatURL
	}
	err := o.StreamCompleter.Setup(o.APIKeyEnv, o.URL, "OPENROUTER_DEBUG")
	if err != nil {
		return fmt.Errorf("failed to setup stream completer: %w", err)
	}
	o.StreamCompleter.Model = o.Model
	if o.MaxTokens > 0 {
		maxTokens := o.MaxTokens
		o.StreamCompleter.MaxTokens = &maxTokens
	}
	o.ExtraHeaders = map[string]string{
		"HTTP-Referer": "https://github.com/baalimago/rat",
		"X-Title":      "rat",
	}
	return nil
}
