package generic

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/rat/internal/models"
)

var dataPrefix = []byte("data: ")

// StreamCompletions using model, falling back to s.Model if empty. Answer text is sent
// as string, deliberation as models.ReasoningChunk. The channel is closed once the
// upstream is done, or ctx is cancelled.
func (s *StreamCompleter) StreamCompletions(ctx context.Context, model string, msgs []models.Message) (chan models.CompletionEvent, error) {
	req, err := s.createRequest(ctx, model, msgs, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	res, err := s.client.Do(req)
	if err != nil {
		return nil, models.UpstreamErr("failed to execute request", err)
	}
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()
		return nil, models.ErrFromStatus(res.StatusCode, string(body))
	}
	return s.handleStreamResponse(ctx, res), nil
}

func (s *StreamCompleter) createRequest(ctx context.Context, model string, msgs []models.Message, stream bool) (*http.Request, error) {
	if model == "" {
		model = s.Model
	}
	reqData := req{
		Model:       model,
		Messages:    msgs,
		Stream:      stream,
		MaxTokens:   s.MaxTokens,
		Temperature: s.Temperature,
	}
	if s.debug {
		ancli.PrintOK(fmt.Sprintf("generic streamcompleter request: %v\n", debug.IndentedJsonFmt(reqData)))
	}
	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", s.apiKey))
	if stream {
		req.Header.Set("Accept", "text/event-stream")
		req.Header.Set("Connection", "keep-alive")
	}
	for k, v := range s.ExtraHeaders {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (s *StreamCompleter) handleStreamResponse(ctx context.Context, res *http.Response) chan models.CompletionEvent {
	outChan := make(chan models.CompletionEvent)
	send := func(ev models.CompletionEvent) bool {
		select {
		case outChan <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}
	go func() {
		br := bufio.NewReader(res.Body)
		defer func() {
			res.Body.Close()
			close(outChan)
		}()
		for {
			token, err := br.ReadBytes('\n')
			if len(token) > 0 {
				ev := s.handleStreamChunk(token)
				switch ev.(type) {
				case models.NoopEvent:
				case models.StopEvent, error:
					send(ev)
					return
				default:
					if !send(ev) {
						return
					}
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					return
				}
				send(models.UpstreamErr("failed to read line", err))
				return
			}
		}
	}()

	return outChan
}

func (s *StreamCompleter) handleStreamChunk(token []byte) models.CompletionEvent {
	token = bytes.TrimSpace(token)
	// Empty lines separate events, lines starting with ':' are keep-alive comments
	if len(token) == 0 || token[0] == ':' || !bytes.HasPrefix(token, bytes.TrimSpace(dataPrefix)) {
		return models.NoopEvent{}
	}
	token = bytes.TrimSpace(bytes.TrimPrefix(token, bytes.TrimSpace(dataPrefix)))
	if string(token) == "[DONE]" {
		return models.StopEvent{}
	}

	if s.debug {
		ancli.PrintOK(fmt.Sprintf("token: %+v\n", string(token)))
	}
	var chunk chatCompletionChunk
	err := json.Unmarshal(token, &chunk)
	if err != nil {
		return fmt.Errorf("%w: malformed chunk: '%v', err: %w", models.ErrUpstream, string(token), err)
	}
	if chunk.Error != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstream, chunk.Error.Message)
	}

	for _, choice := range chunk.Choices {
		ev := handleChoice(choice)
		if _, isNoop := ev.(models.NoopEvent); !isNoop {
			return ev
		}
	}
	return models.NoopEvent{}
}

func handleChoice(choice Choice) models.CompletionEvent {
	switch {
	case choice.Delta.ReasoningContent != "":
		return models.ReasoningChunk(choice.Delta.ReasoningContent)
	case choice.Delta.Reasoning != "":
		return models.ReasoningChunk(choice.Delta.Reasoning)
	case choice.Delta.Content != "":
		return choice.Delta.Content
	}
	return models.NoopEvent{}
}
