package anthropic

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/rat/internal/models"
)

// StreamResponse implements models.ResponseGenerator. When msgs ends with an
// assistant message, only the continuation is streamed.
func (c *Claude) StreamResponse(ctx context.Context, msgs []models.Message, model string) (chan models.CompletionEvent, error) {
	req, err := c.constructRequest(ctx, msgs, model, true)
	if err != nil {
		return nil, fmt.Errorf("failed to construct request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, models.UpstreamErr("failed to do request", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, models.ErrFromStatus(resp.StatusCode, string(body))
	}
	return c.handleStreamResponse(ctx, resp), nil
}

func (c *Claude) handleStreamResponse(ctx context.Context, resp *http.Response) chan models.CompletionEvent {
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
		br := bufio.NewReader(resp.Body)
		defer func() {
			resp.Body.Close()
			close(outChan)
		}()
		for {
			token, err := br.ReadString('\n')
			if len(token) > 0 {
				ev := c.handleToken(strings.TrimSpace(token))
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

// handleToken converts one line of the event stream. The 'event:' lines are
// ignored, the type is read from the data payload instead.
func (c *Claude) handleToken(token string) models.CompletionEvent {
	data, found := strings.CutPrefix(token, "data:")
	if !found {
		return models.NoopEvent{}
	}
	data = strings.TrimSpace(data)
	var ev streamEvent
	if err := json.Unmarshal([]byte(data), &ev); err != nil {
		return models.UpstreamErr(fmt.Sprintf("failed to unmarshal event: '%v'", data), err)
	}
	if c.debug {
		ancli.PrintOK(fmt.Sprintf("claude event: %v\n", debug.IndentedJsonFmt(ev)))
	}
	switch ev.Type {
	case "content_block_delta":
		if ev.Delta.Type != "text_delta" || ev.Delta.Text == "" {
			return models.NoopEvent{}
		}
		return ev.Delta.Text
	case "message_stop":
		return models.StopEvent{}
	case "error":
		msg := "unknown error"
		if ev.Error != nil {
			msg = fmt.Sprintf("%v: %v", ev.Error.Type, ev.Error.Message)
		}
		return fmt.Errorf("%w: %v", models.ErrUpstream, msg)
	}
	return models.NoopEvent{}
}

func (c *Claude) constructRequest(ctx context.Context, msgs []models.Message, model string, stream bool) (*http.Request, error) {
	if model == "" {
		model = c.Model
	}
	system, claudified := claudifyMessages(msgs)
	reqData := claudeReq{
		Model:       model,
		Messages:    claudified,
		MaxTokens:   c.MaxTokens,
		Stream:      stream,
		System:      system,
		Temperature: c.Temperature,
	}
	if c.debug {
		ancli.PrintOK(fmt.Sprintf("claude request: %v\n", debug.IndentedJsonFmt(reqData)))
	}
	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claudeReq: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", c.AnthropicVersion)
	if stream {
		req.Header.Set("Accept", "text/event-stream")
	}
	return req, nil
}
