package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/baalimago/rat/internal/models"
)

// Complete implements models.ResponseGenerator, without streaming.
func (c *Claude) Complete(ctx context.Context, msgs []models.Message, model string) (string, error) {
	req, err := c.constructRequest(ctx, msgs, model, false)
	if err != nil {
		return "", fmt.Errorf("failed to construct request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", models.UpstreamErr("failed to do request", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", models.UpstreamErr("failed to read body", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", models.ErrFromStatus(resp.StatusCode, string(body))
	}
	var cr claudeResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", models.UpstreamErr("failed to decode response", err)
	}
	var sb strings.Builder
	for _, block := range cr.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
