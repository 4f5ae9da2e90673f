package deepseek

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/baalimago/rat/internal/models"
)

// Extract streams the reasoning_content of the reasoner. Answer content, if any
// slips through the max_tokens limit, is dropped.
func (d *Deepseek) Extract(ctx context.Context, history models.Chat, query models.Message, echo io.Writer) (models.ReasoningTrace, error) {
	start := time.Now()
	msgs := append(history.Clone().Messages, query)
	completions, err := d.StreamCompletions(ctx, d.Model, msgs)
	if err != nil {
		return models.ReasoningTrace{}, fmt.Errorf("failed to stream reasoning: %w", err)
	}

	var reasoning strings.Builder
OUTER:
	for {
		select {
		case <-ctx.Done():
			return models.ReasoningTrace{}, fmt.Errorf("reasoning interrupted: %w", ctx.Err())
		case ev, ok := <-completions:
			if !ok {
				break OUTER
			}
			switch cast := ev.(type) {
			case models.ReasoningChunk:
				reasoning.WriteString(string(cast))
				if echo != nil {
					fmt.Fprint(echo, string(cast))
				}
			case error:
				return models.ReasoningTrace{}, fmt.Errorf("reasoning stream error: %w", cast)
			case models.StopEvent:
				break OUTER
			}
		}
	}

	return models.ReasoningTrace{
		Source:      "deepseek/" + d.Model,
		Text:        reasoning.String(),
		ProducedFor: query,
		Elapsed:     time.Since(start),
	}, nil
}
