package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

const answerWithCode = "Here you go:\n```go\nfmt.Println(\"a\")\n```\nand\n```\necho b\n```\n"

func TestCodeBlocks(t *testing.T) {
	got := codeBlocks(answerWithCode)
	if len(got) != 2 {
		t.Fatalf("expected 2 blocks, got: %q", got)
	}
	testboil.FailTestIfDiff(t, got[0], "fmt.Println(\"a\")")
	testboil.FailTestIfDiff(t, got[1], "echo b")

	unterminated := codeBlocks("text\n```py\nprint(1)\nprint(2)")
	if len(unterminated) != 1 {
		t.Fatalf("expected 1 block, got: %q", unterminated)
	}
	testboil.FailTestIfDiff(t, unterminated[0], "print(1)\nprint(2)")
	testboil.FailTestIfDiff(t, len(codeBlocks("no code here")), 0)
}

func TestSelectBlocks(t *testing.T) {
	blocks := []string{"one", "two"}
	tests := []struct {
		selector string
		want     string
		wantErr  bool
	}{
		{"1", "one", false},
		{"2", "two", false},
		{"a", "one\n\ntwo", false},
		{"0", "", true},
		{"3", "", true},
		{"x", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.selector, func(t *testing.T) {
			got, err := selectBlocks(blocks, tc.selector)
			if (err != nil) != tc.wantErr {
				t.Fatalf("selectBlocks() error = %v, wantErr %v", err, tc.wantErr)
			}
			testboil.FailTestIfDiff(t, got, tc.want)
		})
	}
	if _, err := selectBlocks(nil, "a"); err == nil {
		t.Fatal("expected error on no blocks")
	}
}

func TestDispatch_Copy(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	var clipboard string
	d.writeClipboard = func(s string) error {
		clipboard = s
		return nil
	}
	if err := d.Dispatch(context.Background(), "copy 1"); err == nil {
		t.Fatal("expected error when there's no answer yet")
	}

	// The mock responder echoes the question
	if err := d.Dispatch(context.Background(), answerWithCode); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := d.Dispatch(context.Background(), "copy 2"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	testboil.FailTestIfDiff(t, clipboard, "echo b")

	d.writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	if err := d.Dispatch(context.Background(), "copy a"); err == nil {
		t.Fatal("expected clipboard failure to surface")
	}
}
