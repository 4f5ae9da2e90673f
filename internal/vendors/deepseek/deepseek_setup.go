package deepseek

import (
	"fmt"
)

const ChatURL = "https://api.deepseek.com/chat/completions"

func (d *Deepseek) Setup() error {
	if d.APIKeyEnv == "" {
		d.APIKeyEnv = Default.APIKeyEnv
	}
	if d.URL == "" {
		d.URL = ChatURL
	}
	err := d.StreamCompleter.Setup(d.APIKeyEnv, d.URL, "DEEPSEEK_DEBUG")
	if err != nil {
		return fmt.Errorf("failed to setup stream completer: %w", err)
	}
	d.StreamCompleter.Model = d.Model
	if d.MaxTokens > 0 {
		maxTokens := d.MaxTokens
		d.StreamCompleter.MaxTokens = &maxTokens
	}
	return nil
}
