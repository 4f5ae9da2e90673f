package anthropic

import (
	"context"
)

type claudeMessage struct {
	Role    string      `json:"role"`
	Content []textBlock `json:"content"`
}

type textBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeResponse struct {
	Content    []textBlock `json:"content"`
	ID         string      `json:"id"`
	Model      string      `json:"model"`
	Role       string      `json:"role"`
	StopReason string      `json:"stop_reason"`
	Type       string      `json:"type"`
}

type delta struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// streamEvent is the union of the data payloads which are of interest.
type streamEvent struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
	Delta delta  `json:"delta"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// KnownModels are the claude models which are able to continue a prefill.
var KnownModels = []string{
	"claude-3-5-haiku-20241022",
	"claude-3-5-sonnet-20241022",
	"claude-3-7-sonnet-20250219",
	"claude-3-opus-20240229",
	"claude-sonnet-4-20250514",
}

// ListModels returns KnownModels. The models endpoint isn't queried, since its
// listing doesn't say which models accept a prefill.
func (c *Claude) ListModels(_ context.Context) ([]string, error) {
	ret := make([]string, len(KnownModels))
	copy(ret, KnownModels)
	return ret, nil
}
