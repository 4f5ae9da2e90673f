package chat

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/baalimago/rat/internal/inject"
	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/session"
	"github.com/baalimago/rat/internal/utils"
	"github.com/baalimago/rat/internal/vendors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"", Command{Kind: KindNoop}},
		{"   \t ", Command{Kind: KindNoop}},
		{"quit", Command{Kind: KindQuit}},
		{"  QUIT  ", Command{Kind: KindQuit}},
		{"exit", Command{Kind: KindQuit}},
		{"Reasoning", Command{Kind: KindToggleReasoning}},
		{"model openai/gpt-4o", Command{Kind: KindModel, Arg: "openai/gpt-4o"}},
		{"MODEL  Meta-Llama-3-3-70B-Instruct ", Command{Kind: KindModel, Arg: "Meta-Llama-3-3-70B-Instruct"}},
		{"model", Command{Kind: KindQuery, Arg: "model"}},
		{"models", Command{Kind: KindModels}},
		{"view_models", Command{Kind: KindModels}},
		{"clear", Command{Kind: KindClear}},
		{"copy 2", Command{Kind: KindCopy, Arg: "2"}},
		{"copy A", Command{Kind: KindCopy, Arg: "a"}},
		{"save", Command{Kind: KindSave}},
		{"help", Command{Kind: KindHelp}},
		{"What is 2+2?", Command{Kind: KindQuery, Arg: "What is 2+2?"}},
		{"  quit smoking tips  ", Command{Kind: KindQuery, Arg: "quit smoking tips"}},
		{"copy this sentence please", Command{Kind: KindQuery, Arg: "copy this sentence please"}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			testboil.FailTestIfDiff(t, Parse(tc.in), tc.want)
		})
	}
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *session.Session, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "true")
	out := &bytes.Buffer{}
	s, err := session.New(
		&vendors.MockReasoner{Trace: "adding 2 and 2 gives 4"},
		inject.Generic{},
		&vendors.MockResponder{},
		[]string{"a", "b"},
		models.SessionConfig{ResponseModel: "a"},
		session.Options{Out: out},
	)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	d := NewDispatcher(s, filepath.Join(t.TempDir(), "conversations"), out)
	return d, s, out
}

func TestDispatch_Query(t *testing.T) {
	d, s, _ := newTestDispatcher(t)
	if err := d.Dispatch(context.Background(), "  What is 2+2?  "); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	h := s.History()
	testboil.FailTestIfDiff(t, len(h.Messages), 2)
	testboil.FailTestIfDiff(t, h.Messages[0].Content, "What is 2+2?")
}

func TestDispatch_EmptyInputIsNoop(t *testing.T) {
	d, s, out := newTestDispatcher(t)
	if err := d.Dispatch(context.Background(), "   "); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	testboil.FailTestIfDiff(t, len(s.History().Messages), 0)
	testboil.FailTestIfDiff(t, out.Len(), 0)
}

func TestDispatch_Quit(t *testing.T) {
	d, s, _ := newTestDispatcher(t)
	err := d.Dispatch(context.Background(), "quit")
	if !errors.Is(err, utils.ErrUserInitiatedExit) {
		t.Fatalf("expected ErrUserInitiatedExit, got: %v", err)
	}
	testboil.FailTestIfDiff(t, s.State(), session.Stopped)
}

func TestDispatch_ToggleReasoning(t *testing.T) {
	d, s, _ := newTestDispatcher(t)
	orig := s.Config().ShowReasoning
	for i := 0; i < 2; i++ {
		if err := d.Dispatch(context.Background(), "reasoning"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	testboil.FailTestIfDiff(t, s.Config().ShowReasoning, orig)
	d.Dispatch(context.Background(), "REASONING")
	testboil.FailTestIfDiff(t, s.Config().ShowReasoning, !orig)
}

func TestDispatch_UnknownModel(t *testing.T) {
	d, s, _ := newTestDispatcher(t)
	err := d.Dispatch(context.Background(), "model gpt-nonexistent")
	if !errors.Is(err, models.ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got: %v", err)
	}
	testboil.FailTestIfDiff(t, s.Config().ResponseModel, "a")
	testboil.FailTestIfDiff(t, len(s.History().Messages), 0)

	if err := d.Dispatch(context.Background(), "model b"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	testboil.FailTestIfDiff(t, s.Config().ResponseModel, "b")
}

func TestDispatch_Models(t *testing.T) {
	d, _, out := newTestDispatcher(t)
	if err := d.Dispatch(context.Background(), "models"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	testboil.AssertStringContains(t, out.String(), "  * a\n")
	testboil.AssertStringContains(t, out.String(), "    b\n")
}

func TestDispatch_Clear(t *testing.T) {
	d, s, _ := newTestDispatcher(t)
	d.Dispatch(context.Background(), "hello")
	if err := d.Dispatch(context.Background(), "clear"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	testboil.FailTestIfDiff(t, len(s.History().Messages), 0)
}

func TestDispatch_SaveAndLoad(t *testing.T) {
	d, s, _ := newTestDispatcher(t)
	d.Dispatch(context.Background(), "hello there")
	if err := d.Dispatch(context.Background(), "save"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	h := s.History()
	got, err := FromPath(filepath.Join(d.convDir, h.ID+".json"))
	if err != nil {
		t.Fatalf("failed to read saved chat: %v", err)
	}
	testboil.FailTestIfDiff(t, got.ID, h.ID)
	testboil.FailTestIfDiff(t, len(got.Messages), 2)
	testboil.FailTestIfDiff(t, got.Messages[1], h.Messages[1])
}

func TestDispatch_Help(t *testing.T) {
	d, _, out := newTestDispatcher(t)
	if err := d.Dispatch(context.Background(), "help"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	testboil.AssertStringContains(t, out.String(), "model <name>")
	testboil.AssertStringContains(t, out.String(), d.convDir)
}
