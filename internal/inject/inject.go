// Package inject builds the request the response stage sees, from the durable
// history, the user's query and a reasoning trace. The scaffolding it adds is
// never meant to be persisted.
package inject

import (
	"fmt"
	"strings"

	"github.com/baalimago/rat/internal/models"
)

// Generic folds the trace into the final user message. Works with any chat
// completion API.
type Generic struct{}

// Prefill ends the request with a partial assistant message holding the trace,
// which the generator continues from. Requires a generator which supports prefill.
type Prefill struct{}

// New returns the injector for the variant.
func New(v models.Variant) models.ContextInjector {
	if v == models.VariantClaudePrefill {
		return Prefill{}
	}
	return Generic{}
}

func genericContent(query string, trace models.ReasoningTrace) string {
	if trace.Empty() {
		return query
	}
	return fmt.Sprintf("<question>%v</question>\n\n<thinking>%v</thinking>", query, trace.Text)
}

func prefillContent(trace models.ReasoningTrace) string {
	return strings.TrimRight(fmt.Sprintf("<thinking>%v</thinking>", trace.Text), " \t\r\n")
}

func base(history models.Chat, query models.Message) ([]models.Message, error) {
	if query.Role != models.RoleUser {
		return nil, fmt.Errorf("query has role '%v', expected '%v'", query.Role, models.RoleUser)
	}
	if err := history.Validate(); err != nil {
		return nil, fmt.Errorf("invalid history: %w", err)
	}
	return history.Clone().Messages, nil
}

func (Generic) BuildRequest(history models.Chat, query models.Message, trace models.ReasoningTrace) ([]models.Message, error) {
	msgs, err := base(history, query)
	if err != nil {
		return nil, err
	}
	msgs = append(msgs, models.Message{
		Role:    models.RoleUser,
		Content: genericContent(query.Content, trace),
	})
	if err := models.CheckNoConsecutiveUsers(msgs); err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return msgs, nil
}

func (Generic) RequiresPrefill() bool {
	return false
}

func (Prefill) BuildRequest(history models.Chat, query models.Message, trace models.ReasoningTrace) ([]models.Message, error) {
	msgs, err := base(history, query)
	if err != nil {
		return nil, err
	}
	msgs = append(msgs, query, models.Message{
		Role:    models.RoleAssistant,
		Content: prefillContent(trace),
	})
	return msgs, nil
}

func (Prefill) RequiresPrefill() bool {
	return true
}

// CheckCapability fails with models.ErrUnsupportedCapability if the injector
// needs prefill and the generator can't continue one.
func CheckCapability(inj models.ContextInjector, gen models.ResponseGenerator) error {
	if inj.RequiresPrefill() && !gen.SupportsPrefill() {
		return fmt.Errorf("%w: response backend can't continue a partial assistant message", models.ErrUnsupportedCapability)
	}
	return nil
}
