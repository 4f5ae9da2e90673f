package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/utils"
)

// Turn runs query through reasoning, injection and response. The query and the
// answer are committed to the history as a pair once the answer is complete. On
// any failure the history is left exactly as it was and the trace is dropped.
func (s *Session) Turn(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if err := s.begin(ReasoningInFlight); err != nil {
		return err
	}
	defer s.transition(Idle)

	s.mu.Lock()
	history := s.history.Clone()
	conf := s.config
	s.mu.Unlock()

	userMsg := models.Message{Role: models.RoleUser, Content: query}
	trace, err := s.reason(ctx, history, userMsg, conf.ShowReasoning)
	if err != nil {
		return fmt.Errorf("reasoning stage failed: %w", err)
	}

	s.transition(InjectingContext)
	req, err := s.injector.BuildRequest(history, userMsg, trace)
	if err != nil {
		return fmt.Errorf("failed to inject reasoning: %w", err)
	}

	s.transition(ResponseInFlight)
	answer, err := s.respond(ctx, req, conf.ResponseModel)
	if err != nil {
		return fmt.Errorf("response stage failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Messages = append(s.history.Messages,
		userMsg,
		models.Message{Role: models.RoleAssistant, Content: answer},
	)
	return nil
}

func (s *Session) reason(ctx context.Context, history models.Chat, userMsg models.Message, show bool) (models.ReasoningTrace, error) {
	var echo io.Writer
	if show {
		fmt.Fprintf(s.out, "\n%v\n%v\n", utils.ReasoningHeader(), utils.Rule(s.width))
		echo = reasoningWriter{s.out}
	}
	trace, err := s.extractor.Extract(ctx, history, userMsg, echo)
	if show {
		fmt.Fprintf(s.out, "\n%v\n", utils.Rule(s.width))
	}
	if err != nil {
		return models.ReasoningTrace{}, err
	}
	fmt.Fprintf(s.out, "Thought for %v\n\n", trace.ElapsedString())
	return trace, nil
}

// reasoningWriter styles deliberation chunks as they are echoed, line by line
// so newlines inside a chunk survive untouched.
type reasoningWriter struct {
	w io.Writer
}

func (r reasoningWriter) Write(p []byte) (int, error) {
	lines := strings.Split(string(p), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = utils.Reasoning(l)
		}
	}
	if _, err := fmt.Fprint(r.w, strings.Join(lines, "\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}

// respond renders the answer as it arrives and returns all of it. A stream which
// ends without any text is an empty answer, not a failure.
func (s *Session) respond(ctx context.Context, req []models.Message, model string) (string, error) {
	fmt.Fprintf(s.out, "%v ", utils.RoleLabel(models.RoleAssistant))
	if s.noStream {
		answer, err := s.generator.Complete(ctx, req, model)
		if err != nil {
			return "", err
		}
		fmt.Fprintln(s.out, answer)
		return answer, nil
	}

	completions, err := s.generator.StreamResponse(ctx, req, model)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	defer fmt.Fprintln(s.out)
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("response interrupted: %w", ctx.Err())
		case ev, ok := <-completions:
			if !ok {
				return sb.String(), nil
			}
			switch cast := ev.(type) {
			case string:
				sb.WriteString(cast)
				fmt.Fprint(s.out, cast)
			case error:
				return "", cast
			case models.StopEvent:
				return sb.String(), nil
			}
		}
	}
}
