package anthropic

import (
	"net/http"
	"strings"
	"time"

	"github.com/baalimago/rat/internal/models"
)

const ClaudeURL = "https://api.anthropic.com/v1/messages"

type Claude struct {
	Model            string        `json:"model"`
	MaxTokens        int           `json:"max_tokens"`
	URL              string        `json:"url"`
	AnthropicVersion string        `json:"anthropic-version"`
	APIKeyEnv        string        `json:"api_key_env"`
	Temperature      *float64      `json:"temperature,omitempty"`
	Timeout          time.Duration `json:"-"`
	client           *http.Client  `json:"-"`
	apiKey           string        `json:"-"`
	debug            bool          `json:"-"`
}

var Default = Claude{
	Model:            "claude-3-5-haiku-20241022",
	URL:              ClaudeURL,
	AnthropicVersion: "2023-06-01",
	APIKeyEnv:        "ANTHROPIC_API_KEY",
	MaxTokens:        8000,
}

type claudeReq struct {
	Model       string          `json:"model"`
	Messages    []claudeMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Stream      bool            `json:"stream"`
	System      string          `json:"system,omitempty"`
	Temperature *float64        `json:"temperature,omitempty"`
}

// claudifyMessages converts from 'normal' openai chat format into a format which claude prefers.
// The system prompt is returned separately, since claude wants it as a top level field.
// A trailing assistant message is kept, it's the prefill which claude continues from.
func claudifyMessages(msgs []models.Message) (string, []claudeMessage) {
	system := ""
	claudeMsgs := make([]claudeMessage, 0, len(msgs))
	for i, msg := range msgs {
		if msg.Role == models.RoleSystem {
			// If the first message is a system one, assume it's the system prompt and pop it
			if i == 0 {
				system = msg.Content
				continue
			}
			msg.Role = models.RoleAssistant
		}
		claudeMsgs = append(claudeMsgs, claudeMessage{
			Role:    msg.Role,
			Content: []textBlock{{Type: "text", Text: msg.Content}},
		})
	}

	// Merge consecutive messages of same role into the first one
	for i := 1; i < len(claudeMsgs); {
		if claudeMsgs[i].Role == claudeMsgs[i-1].Role {
			claudeMsgs[i-1].Content = append(claudeMsgs[i-1].Content, claudeMsgs[i].Content...)
			claudeMsgs = append(claudeMsgs[:i], claudeMsgs[i+1:]...)
		} else {
			i++
		}
	}

	// Final assistant content may not end with whitespace
	if n := len(claudeMsgs); n > 0 && claudeMsgs[n-1].Role == models.RoleAssistant {
		blocks := claudeMsgs[n-1].Content
		last := len(blocks) - 1
		blocks[last].Text = strings.TrimRight(blocks[last].Text, " \t\r\n")
	}
	return system, claudeMsgs
}

// SupportsPrefill is true, claude continues a trailing assistant message.
func (c *Claude) SupportsPrefill() bool {
	return true
}
