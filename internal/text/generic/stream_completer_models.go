package generic

import (
	"net/http"
	"time"

	"github.com/baalimago/rat/internal/models"
)

// StreamCompleter is a client for any OpenAI compatible chat completions API,
// such as DeepSeek, OpenRouter and Akash.
type StreamCompleter struct {
	Model       string
	MaxTokens   *int
	Temperature *float64
	URL         string
	// ModelsURL is the model listing endpoint. Derived from URL when empty.
	ModelsURL    string
	Timeout      time.Duration
	ExtraHeaders map[string]string
	client       *http.Client
	apiKey       string
	debug        bool
}

// Completion is the result of a non-streaming call.
type Completion struct {
	Content   string
	Reasoning string
}

type chatCompletionChunk struct {
	ID      string    `json:"id"`
	Object  string    `json:"object"`
	Created int       `json:"created"`
	Model   string    `json:"model"`
	Choices []Choice  `json:"choices"`
	Error   *apiError `json:"error,omitempty"`
}

type chatCompletion struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Choices []completionChoice `json:"choices"`
	Error   *apiError          `json:"error,omitempty"`
}

type completionChoice struct {
	Index        int    `json:"index"`
	Message      Delta  `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type Choice struct {
	Index        int    `json:"index"`
	Delta        Delta  `json:"delta"`
	FinishReason string `json:"finish_reason"`
}

type Delta struct {
	Content string `json:"content"`
	Role    string `json:"role"`
	// ReasoningContent is set by deepseek-reasoner style models
	ReasoningContent string `json:"reasoning_content"`
	// Reasoning is the OpenRouter name of the same thing
	Reasoning string `json:"reasoning"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}

type modelList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type req struct {
	Model       string           `json:"model,omitempty"`
	Messages    []models.Message `json:"messages,omitempty"`
	Stream      bool             `json:"stream"`
	MaxTokens   *int             `json:"max_tokens,omitempty"`
	Temperature *float64         `json:"temperature,omitempty"`
}
