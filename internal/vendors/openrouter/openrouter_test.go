package openrouter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/vendors/vendorstest"
)

func TestSetup(t *testing.T) {
	vendorstest.RunSetupTests(t, "OPENROUTER_API_KEY", true, func() vendorstest.Setupable {
		v := Default
		return &v
	})
}

func TestStreamResponse_UsesRequestedModel(t *testing.T) {
	var gotTitle string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.Header.Get("X-Title")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"4\"}}]}\n\ndata: [DONE]\n\n")
	}))
	defer ts.Close()
	t.Setenv("OPENROUTER_API_KEY", "k")
	o := Default
	o.URL = ts.URL
	if err := o.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	out, err := o.StreamResponse(context.Background(), []models.Message{{Role: models.RoleUser, Content: "x"}}, "anthropic/claude-3.5-haiku")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := ""
	for ev := range out {
		if s, ok := ev.(string); ok {
			got += s
		}
	}
	testboil.FailTestIfDiff(t, got, "4")
	testboil.FailTestIfDiff(t, gotTitle, "rat")
}
