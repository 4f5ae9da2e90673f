package generic

import (
	"context"
	"fmt"

	"github.com/baalimago/rat/internal/models"
)

// StreamResponse implements models.ResponseGenerator.
func (s *StreamCompleter) StreamResponse(ctx context.Context, msgs []models.Message, model string) (chan models.CompletionEvent, error) {
	return s.StreamCompletions(ctx, model, msgs)
}

// Complete implements models.ResponseGenerator.
func (s *StreamCompleter) Complete(ctx context.Context, msgs []models.Message, model string) (string, error) {
	c, err := s.Completion(ctx, model, msgs)
	if err != nil {
		return "", fmt.Errorf("failed to complete: %w", err)
	}
	return c.Content, nil
}

// SupportsPrefill is false: OpenAI compatible APIs answer a trailing assistant
// message with a new message instead of continuing it.
func (s *StreamCompleter) SupportsPrefill() bool {
	return false
}
