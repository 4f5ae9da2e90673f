package akash

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/baalimago/rat/internal/models"
)

// Extract streams the reasoner's answer and keeps what's inside the think block.
// The stream is abandoned as soon as the closing tag arrives, so the actual
// answer is never generated in full.
func (a *Akash) Extract(ctx context.Context, history models.Chat, query models.Message, echo io.Writer) (models.ReasoningTrace, error) {
	start := time.Now()
	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgs := append(history.Clone().Messages, query)
	completions, err := a.StreamCompletions(streamCtx, a.Model, msgs)
	if err != nil {
		return models.ReasoningTrace{}, fmt.Errorf("failed to stream reasoning: %w", err)
	}

	var parser thinkParser
	var separate strings.Builder
	write := func(s string) {
		if echo != nil && s != "" {
			fmt.Fprint(echo, s)
		}
	}
OUTER:
	for !parser.done {
		select {
		case <-ctx.Done():
			return models.ReasoningTrace{}, fmt.Errorf("reasoning interrupted: %w", ctx.Err())
		case ev, ok := <-completions:
			if !ok {
				break OUTER
			}
			switch cast := ev.(type) {
			case string:
				write(parser.feed(cast))
			case models.ReasoningChunk:
				// Some deployments send the deliberation in its own field
				separate.WriteString(string(cast))
				write(string(cast))
			case error:
				return models.ReasoningTrace{}, fmt.Errorf("reasoning stream error: %w", cast)
			case models.StopEvent:
				break OUTER
			}
		}
	}
	write(parser.rest())

	text := parser.text()
	if separate.Len() > 0 {
		text = strings.TrimSpace(separate.String())
	}
	return models.ReasoningTrace{
		Source:      "akash/" + a.Model,
		Text:        text,
		ProducedFor: query,
		Elapsed:     time.Since(start),
	}, nil
}
