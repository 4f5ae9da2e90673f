package vendors

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/baalimago/rat/internal/models"
)

// MockReasoner deliberates without any backend. The trace is Trace if set,
// otherwise derived from the query.
type MockReasoner struct {
	Trace string
}

func (m *MockReasoner) Setup() error {
	return nil
}

func (m *MockReasoner) Extract(ctx context.Context, _ models.Chat, query models.Message, echo io.Writer) (models.ReasoningTrace, error) {
	if err := ctx.Err(); err != nil {
		return models.ReasoningTrace{}, fmt.Errorf("reasoning interrupted: %w", err)
	}
	text := m.Trace
	if text == "" {
		text = "considering: " + query.Content
	}
	if echo != nil {
		fmt.Fprint(echo, text)
	}
	return models.ReasoningTrace{
		Source:      "mock",
		Text:        text,
		ProducedFor: query,
		Elapsed:     time.Millisecond,
	}, nil
}

// MockResponder is a ResponseGenerator that streams back the content of the last
// user message, word by word.
type MockResponder struct {
	Prefill bool
}

func (m *MockResponder) Setup() error {
	return nil
}

func (m *MockResponder) answer(msgs []models.Message) string {
	chat := models.Chat{Messages: msgs}
	uMsg, _, _ := chat.LastOfRole(models.RoleUser)
	return uMsg.Content
}

func (m *MockResponder) StreamResponse(ctx context.Context, msgs []models.Message, _ string) (chan models.CompletionEvent, error) {
	ch := make(chan models.CompletionEvent)
	words := strings.SplitAfter(m.answer(msgs), " ")
	go func() {
		defer close(ch)
		for _, w := range words {
			select {
			case ch <- w:
			case <-ctx.Done():
				return
			}
		}
		select {
		case ch <- models.StopEvent{}:
		case <-ctx.Done():
		}
	}()
	return ch, nil
}

func (m *MockResponder) Complete(ctx context.Context, msgs []models.Message, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("failed to complete: %w", err)
	}
	return m.answer(msgs), nil
}

func (m *MockResponder) SupportsPrefill() bool {
	return m.Prefill
}

func (m *MockResponder) ListModels(_ context.Context) ([]string, error) {
	return []string{"mock"}, nil
}
