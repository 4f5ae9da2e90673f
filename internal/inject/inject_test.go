package inject

import (
	"errors"
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/vendors"
)

var (
	query = models.Message{Role: models.RoleUser, Content: "What is 2+2?"}
	trace = models.ReasoningTrace{Text: "2+2=4", ProducedFor: query}
)

func TestGeneric_BuildRequest(t *testing.T) {
	history := models.Chat{Messages: []models.Message{
		{Role: models.RoleSystem, Content: "be brief"},
		{Role: models.RoleUser, Content: "hi"},
		{Role: models.RoleAssistant, Content: "hello"},
	}}
	got, err := Generic{}.BuildRequest(history, query, trace)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 messages, got: %+v", got)
	}
	last := got[len(got)-1]
	testboil.FailTestIfDiff(t, last.Role, models.RoleUser)
	testboil.FailTestIfDiff(t, last.Content, "<question>What is 2+2?</question>\n\n<thinking>2+2=4</thinking>")
	if err := models.CheckNoConsecutiveUsers(got); err != nil {
		t.Fatal(err)
	}
	// History must be untouched
	testboil.FailTestIfDiff(t, len(history.Messages), 3)
}

func TestGeneric_EmptyTrace(t *testing.T) {
	got, err := Generic{}.BuildRequest(models.Chat{}, query, models.ReasoningTrace{Text: "  \n"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	testboil.FailTestIfDiff(t, len(got), 1)
	testboil.FailTestIfDiff(t, got[0].Content, query.Content)
}

func TestPrefill_BuildRequest(t *testing.T) {
	history := models.Chat{Messages: []models.Message{
		{Role: models.RoleUser, Content: "hi"},
		{Role: models.RoleAssistant, Content: "hello"},
	}}
	got, err := Prefill{}.BuildRequest(history, query, models.ReasoningTrace{Text: "2+2=4\n\n"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 messages, got: %+v", got)
	}
	testboil.FailTestIfDiff(t, got[2], query)
	last := got[3]
	testboil.FailTestIfDiff(t, last.Role, models.RoleAssistant)
	testboil.FailTestIfDiff(t, last.Content, "<thinking>2+2=4\n\n</thinking>")
	if strings.TrimRight(last.Content, " \n") != last.Content {
		t.Fatal("prefill must not end with whitespace")
	}
}

func TestBuildRequest_RejectsBrokenHistory(t *testing.T) {
	dangling := models.Chat{Messages: []models.Message{
		{Role: models.RoleUser, Content: "unanswered"},
	}}
	for name, inj := range map[string]models.ContextInjector{
		"generic": Generic{},
		"prefill": Prefill{},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := inj.BuildRequest(dangling, query, trace); err == nil {
				t.Fatal("expected error on dangling user message")
			}
			if _, err := inj.BuildRequest(models.Chat{}, models.Message{Role: models.RoleAssistant, Content: "x"}, trace); err == nil {
				t.Fatal("expected error on non-user query")
			}
		})
	}
}

func TestNew(t *testing.T) {
	testboil.FailTestIfDiff(t, New(models.VariantClaudePrefill).RequiresPrefill(), true)
	testboil.FailTestIfDiff(t, New(models.VariantStandard).RequiresPrefill(), false)
	testboil.FailTestIfDiff(t, New(models.VariantAkash).RequiresPrefill(), false)
}

func TestCheckCapability(t *testing.T) {
	err := CheckCapability(Prefill{}, &vendors.MockResponder{})
	if !errors.Is(err, models.ErrUnsupportedCapability) {
		t.Fatalf("expected ErrUnsupportedCapability, got: %v", err)
	}
	if err := CheckCapability(Prefill{}, &vendors.MockResponder{Prefill: true}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := CheckCapability(Generic{}, &vendors.MockResponder{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
