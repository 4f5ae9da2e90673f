package internal

import (
	"testing"
)

func TestParseFlagsDefaultValues(t *testing.T) {
	result, rest, err := parseFlags(defaultFlags, []string{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result != defaultFlags {
		t.Fatalf("expected: %+v, got: %+v", defaultFlags, result)
	}
	if len(rest) != 0 {
		t.Fatalf("expected no args, got: %v", rest)
	}
}

func TestParseFlagsShortFlags(t *testing.T) {
	result, rest, err := parseFlags(defaultFlags, []string{"-v", "claude", "-m", "claude-3-5-sonnet-20241022", "-c", "/tmp/conf.yaml", "-ns", "-hr", "-ud", "help"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := Configurations{
		Variant:       "claude",
		Model:         "claude-3-5-sonnet-20241022",
		ConfigPath:    "/tmp/conf.yaml",
		NoStream:      true,
		HideReasoning: true,
		UseDeepseek:   true,
	}
	if result != want {
		t.Errorf("Unexpected values for short flags, got %+v", result)
	}
	if len(rest) != 1 || rest[0] != "help" {
		t.Fatalf("expected 'help' to remain, got: %v", rest)
	}
}

func TestParseFlagsLongFlags(t *testing.T) {
	result, _, err := parseFlags(defaultFlags, []string{"-variant", "akash", "-model", "x", "-config", "/c", "-no-stream", "-hide-reasoning", "-use-deepseek"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := Configurations{
		Variant:       "akash",
		Model:         "x",
		ConfigPath:    "/c",
		NoStream:      true,
		HideReasoning: true,
		UseDeepseek:   true,
	}
	if result != want {
		t.Errorf("Unexpected values for long flags, got %+v", result)
	}
}

func TestParseFlagsMutuallyExclusive(t *testing.T) {
	for _, args := range [][]string{
		{"-v", "claude", "-variant", "akash"},
		{"-m", "a", "-model", "b"},
		{"-c", "a", "-config", "b"},
	} {
		if _, _, err := parseFlags(defaultFlags, args); err == nil {
			t.Errorf("expected error for args: %v", args)
		}
	}
}

func TestParseFlagsUnknown(t *testing.T) {
	if _, _, err := parseFlags(defaultFlags, []string{"-nope"}); err == nil {
		t.Fatal("expected error on unknown flag")
	}
}
