// This file contains tests intended to be used by the implementations of the
// ReasoningExtractor and ResponseGenerator interfaces
package models

import (
	"context"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

// These tests are used in other places of code, an attempt at generic testing
// to ensure implementation standards are kept
func ReasoningExtractor_Context_Test(t *testing.T, r ReasoningExtractor) {
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		r.Extract(ctx, Chat{}, Message{Role: RoleUser, Content: "test"}, nil)
	}, time.Second)
}

func ResponseGenerator_Context_Test(t *testing.T, g ResponseGenerator) {
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		g.StreamResponse(ctx, []Message{{Role: RoleUser, Content: "test"}}, "test")
	}, time.Second)
}
