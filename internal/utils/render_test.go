package utils

import (
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func TestBanner(t *testing.T) {
	for _, nc := range []string{"", "true"} {
		t.Run("NO_COLOR="+nc, func(t *testing.T) {
			t.Setenv("NO_COLOR", nc)
			got := Banner("claude", "DeepSeek-R1", "claude-3-5-haiku-20241022")
			testboil.AssertStringContains(t, got, "variant:   claude")
			testboil.AssertStringContains(t, got, "reasoning: DeepSeek-R1")
			testboil.AssertStringContains(t, got, "response:  claude-3-5-haiku-20241022")
		})
	}
}

func TestRule(t *testing.T) {
	t.Setenv("NO_COLOR", "true")
	testboil.FailTestIfDiff(t, Rule(3), "───")
	testboil.FailTestIfDiff(t, Rule(0), strings.Repeat("─", 80))
}

func TestRoleLabel_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "true")
	testboil.FailTestIfDiff(t, RoleLabel("assistant"), "assistant:")
	testboil.FailTestIfDiff(t, Reasoning("hm"), "hm")
}

func TestTermWidth_ColumnsOverride(t *testing.T) {
	t.Setenv("COLUMNS", "42")
	testboil.FailTestIfDiff(t, TermWidth(), 42)
	t.Setenv("COLUMNS", "nope")
	if TermWidth() <= 0 {
		t.Fatal("expected positive fallback width")
	}
}
