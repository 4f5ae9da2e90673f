package vendors_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/vendors"
	"github.com/baalimago/rat/internal/vendors/akash"
	"github.com/baalimago/rat/internal/vendors/anthropic"
	"github.com/baalimago/rat/internal/vendors/deepseek"
	"github.com/baalimago/rat/internal/vendors/openrouter"
	"github.com/baalimago/rat/internal/vendors/vendorstest"
)

type vendorFactory struct {
	name      string
	envVar    string
	newVendor func() vendorstest.Setupable
}

func Test_VendorSetup(t *testing.T) {
	vendors := []vendorFactory{
		{
			name:   "deepseek",
			envVar: "DEEPSEEK_API_KEY",
			newVendor: func() vendorstest.Setupable {
				v := deepseek.Default
				return &v
			},
		},
		{
			name:   "akash",
			envVar: "AKASH_API_KEY",
			newVendor: func() vendorstest.Setupable {
				v := akash.Default
				return &v
			},
		},
		{
			name:   "openrouter",
			envVar: "OPENROUTER_API_KEY",
			newVendor: func() vendorstest.Setupable {
				v := openrouter.Default
				return &v
			},
		},
		{
			name:   "anthropic",
			envVar: "ANTHROPIC_API_KEY",
			newVendor: func() vendorstest.Setupable {
				v := anthropic.Default
				return &v
			},
		},
	}
	for _, v := range vendors {
		t.Run(v.name, func(t *testing.T) {
			vendorstest.RunSetupTests(t, v.envVar, true, v.newVendor)
		})
	}
}

func Test_ReasonerImplementations(t *testing.T) {
	var _ models.ReasoningExtractor = &deepseek.Deepseek{}
	var _ models.ReasoningExtractor = &akash.Akash{}
	var _ models.ReasoningExtractor = &vendors.MockReasoner{}
}

func Test_ResponderImplementations(t *testing.T) {
	var _ models.ResponseGenerator = &openrouter.OpenRouter{}
	var _ models.ResponseGenerator = &akash.Akash{}
	var _ models.ResponseGenerator = &anthropic.Claude{}
	var _ models.ResponseGenerator = &vendors.MockResponder{}
}

func Test_MockReasoner(t *testing.T) {
	var echo bytes.Buffer
	r := vendors.MockReasoner{}
	trace, err := r.Extract(context.Background(), models.Chat{}, models.Message{Role: models.RoleUser, Content: "2+2"}, &echo)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	testboil.FailTestIfDiff(t, trace.Text, "considering: 2+2")
	testboil.FailTestIfDiff(t, echo.String(), trace.Text)
	models.ReasoningExtractor_Context_Test(t, &r)
}

func Test_MockResponder(t *testing.T) {
	g := vendors.MockResponder{}
	out, err := g.StreamResponse(context.Background(), []models.Message{
		{Role: models.RoleUser, Content: "echo this back"},
		{Role: models.RoleAssistant, Content: "<thinking>hm</thinking>"},
	}, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := ""
	for ev := range out {
		if s, ok := ev.(string); ok {
			got += s
		}
	}
	testboil.FailTestIfDiff(t, got, "echo this back")
	models.ResponseGenerator_Context_Test(t, &g)
}
