package models

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// CompletionEvent is anything sent on a completion channel. Expected types are
// string (answer text), ReasoningChunk, error, NoopEvent and StopEvent.
type CompletionEvent any

// ReasoningChunk is deliberation text, as opposed to answer text.
type ReasoningChunk string

type NoopEvent struct{}

// StopEvent signals that the upstream finished the message.
type StopEvent struct{}

// ReasoningExtractor calls a reasoning capable backend and returns only the
// deliberation it produced for query. Chunks are echoed to echo as they arrive,
// if echo is non-nil.
type ReasoningExtractor interface {
	Extract(ctx context.Context, history Chat, query Message, echo io.Writer) (ReasoningTrace, error)
}

// ContextInjector builds the exact message sequence the response stage sees.
type ContextInjector interface {
	BuildRequest(history Chat, query Message, trace ReasoningTrace) ([]Message, error)
	// RequiresPrefill is true for strategies which end the request in a partial
	// assistant message.
	RequiresPrefill() bool
}

// ResponseGenerator produces the final answer.
type ResponseGenerator interface {
	// StreamResponse returns a channel which is closed once the answer is complete.
	// It is consumed once and can't be restarted.
	StreamResponse(ctx context.Context, msgs []Message, model string) (chan CompletionEvent, error)
	// Complete is the non-streaming counterpart of StreamResponse.
	Complete(ctx context.Context, msgs []Message, model string) (string, error)
	// SupportsPrefill reports if generation may resume from a trailing assistant message.
	SupportsPrefill() bool
}

// ModelLister is implemented by backends which can list their models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// ReasoningTrace is produced once per turn and never stored in the history.
type ReasoningTrace struct {
	Source      string
	Text        string
	ProducedFor Message
	Elapsed     time.Duration
}

func (r ReasoningTrace) Empty() bool {
	return strings.TrimSpace(r.Text) == ""
}

// ElapsedString formats the thinking time the way it's shown to the user.
func (r ReasoningTrace) ElapsedString() string {
	if r.Elapsed >= time.Minute {
		return fmt.Sprintf("%.1f minutes", r.Elapsed.Minutes())
	}
	return fmt.Sprintf("%.1f seconds", r.Elapsed.Seconds())
}

// SessionConfig is mutated only through user commands.
type SessionConfig struct {
	ResponseModel string
	ShowReasoning bool
}

// Variant selects the extractor/injector/generator combination. Fixed at startup.
type Variant string

const (
	VariantStandard      Variant = "standard"
	VariantClaudePrefill Variant = "claude"
	VariantAkash         Variant = "akash"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantStandard, VariantClaudePrefill, VariantAkash:
		return v, nil
	case "":
		return VariantStandard, nil
	default:
		return "", fmt.Errorf("unknown variant: '%v', expected one of: standard, claude, akash", s)
	}
}
