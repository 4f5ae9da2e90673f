package generic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/rat/internal/models"
)

// Completion performs a non-streaming call.
func (s *StreamCompleter) Completion(ctx context.Context, model string, msgs []models.Message) (Completion, error) {
	req, err := s.createRequest(ctx, model, msgs, false)
	if err != nil {
		return Completion{}, fmt.Errorf("failed to create request: %w", err)
	}
	var comp chatCompletion
	if err := s.doJSON(req, &comp); err != nil {
		return Completion{}, err
	}
	if comp.Error != nil {
		return Completion{}, fmt.Errorf("%w: %v", models.ErrUpstream, comp.Error.Message)
	}
	if len(comp.Choices) == 0 {
		return Completion{}, fmt.Errorf("%w: response has no choices", models.ErrUpstream)
	}
	msg := comp.Choices[0].Message
	reasoning := msg.ReasoningContent
	if reasoning == "" {
		reasoning = msg.Reasoning
	}
	return Completion{Content: msg.Content, Reasoning: reasoning}, nil
}

// ListModels returns the ids of the models served at ModelsURL.
func (s *StreamCompleter) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.ModelsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", s.apiKey))
	var list modelList
	if err := s.doJSON(req, &list); err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(list.Data))
	for _, m := range list.Data {
		ret = append(ret, m.ID)
	}
	return ret, nil
}

func (s *StreamCompleter) doJSON(req *http.Request, v any) error {
	res, err := s.client.Do(req)
	if err != nil {
		return models.UpstreamErr("failed to execute request", err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return models.UpstreamErr("failed to read body", err)
	}
	if res.StatusCode != http.StatusOK {
		return models.ErrFromStatus(res.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", models.ErrUpstream, err)
	}
	if s.debug {
		ancli.PrintOK(fmt.Sprintf("generic response: %v\n", debug.IndentedJsonFmt(v)))
	}
	return nil
}
