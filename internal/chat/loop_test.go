package chat

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/baalimago/rat/internal/session"
)

func TestLoop_Run(t *testing.T) {
	d, s, out := newTestDispatcher(t)
	in := strings.NewReader("What is 2+2?\n\nreasoning\nmodel gpt-nonexistent\nmodel b\nAnd 3+3?\nquit\nnever read\n")
	l := Loop{Dispatcher: d, In: in, Out: out}
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	h := s.History()
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	testboil.FailTestIfDiff(t, len(h.Messages), 4)
	testboil.FailTestIfDiff(t, h.Messages[2].Content, "And 3+3?")
	testboil.FailTestIfDiff(t, s.Config().ResponseModel, "b")
	testboil.FailTestIfDiff(t, s.Config().ShowReasoning, true)
	testboil.FailTestIfDiff(t, s.State(), session.Stopped)
	testboil.AssertStringContains(t, out.String(), "Reasoning Process")
}

func TestLoop_EOFIsQuit(t *testing.T) {
	d, s, out := newTestDispatcher(t)
	l := Loop{Dispatcher: d, In: strings.NewReader("hello"), Out: out, Prompt: "> "}
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	testboil.FailTestIfDiff(t, len(s.History().Messages), 2)
	testboil.FailTestIfDiff(t, s.State(), session.Stopped)
	testboil.AssertStringContains(t, out.String(), "> ")
}

func TestLoop_Context(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })
	l := Loop{Dispatcher: d, In: r, Out: &bytes.Buffer{}}
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		l.Run(ctx)
	}, time.Second)
}
