package akash

import (
	"fmt"
)

func (a *Akash) Setup() error {
	if a.APIKeyEnv == "" {
		a.APIKeyEnv = Default.APIKeyEnv
	}
	if a.URL == "" {
		a.URL = ChatURL
	}
	err := a.StreamCompleter.Setup(a.APIKeyEnv, a.URL, "AKASH_DEBUG")
	if err != nil {
		return fmt.Errorf("failed to setup stream completer: %w", err)
	}
	a.StreamCompleter.Model = a.Model
	if a.MaxTokens > 0 {
		maxTokens := a.MaxTokens
		a.StreamCompleter.MaxTokens = &maxTokens
	}
	return nil
}
