package chat

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/rat/internal/session"
	"github.com/baalimago/rat/internal/utils"
)

const commandUsage = `Commands:
  quit                  End the session.
  reasoning             Toggle showing the reasoning before each answer.
  model <name>          Select the response model. Must be one of 'models'.
  models                List the known response models. (alias: view_models)
  clear                 Start over with an empty conversation.
  copy <n>|a            Copy the n:th code block of the last answer, or all of them, to clipboard.
  save                  Save the conversation to %v
  help                  Show this help.

Anything else is sent as a question.
`

type Kind int

const (
	KindNoop Kind = iota
	KindQuery
	KindQuit
	KindToggleReasoning
	KindModel
	KindModels
	KindClear
	KindCopy
	KindSave
	KindHelp
)

// Command is one parsed line of input.
type Command struct {
	Kind Kind
	// Arg is the model name for KindModel, the block selector for KindCopy and
	// the trimmed input for KindQuery.
	Arg string
}

// Parse a line of input. Command words are case-insensitive, and only match
// when they make up the whole line, or for 'model' and 'copy', are followed by
// exactly their argument.
func Parse(input string) Command {
	trimmed := strings.TrimSpace(input)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return Command{Kind: KindNoop}
	}
	word := strings.ToLower(fields[0])
	if len(fields) == 1 {
		switch word {
		case "quit", "exit":
			return Command{Kind: KindQuit}
		case "reasoning":
			return Command{Kind: KindToggleReasoning}
		case "models", "view_models":
			return Command{Kind: KindModels}
		case "clear":
			return Command{Kind: KindClear}
		case "save":
			return Command{Kind: KindSave}
		case "help":
			return Command{Kind: KindHelp}
		}
	}
	if len(fields) == 2 {
		switch word {
		case "model":
			return Command{Kind: KindModel, Arg: fields[1]}
		case "copy":
			return Command{Kind: KindCopy, Arg: strings.ToLower(fields[1])}
		}
	}
	return Command{Kind: KindQuery, Arg: trimmed}
}

// Dispatcher routes commands to the session, and queries into turns.
type Dispatcher struct {
	session *session.Session
	out     io.Writer
	convDir string
	debug   bool
	// writeClipboard is clipboard.WriteAll, unless replaced in tests
	writeClipboard func(string) error
}

func NewDispatcher(s *session.Session, convDir string, out io.Writer) *Dispatcher {
	if out == nil {
		out = os.Stdout
	}
	return &Dispatcher{
		session:        s,
		out:            out,
		convDir:        convDir,
		debug:          misc.Truthy(os.Getenv("DEBUG")),
		writeClipboard: clipboard.WriteAll,
	}
}

// Dispatch one line of input. Returns utils.ErrUserInitiatedExit once the session
// has been stopped by 'quit'. Any other error is recoverable: the session is back
// in Idle with its history untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, input string) error {
	cmd := Parse(input)
	if d.debug {
		ancli.PrintOK(fmt.Sprintf("dispatching: %+v\n", cmd))
	}
	switch cmd.Kind {
	case KindNoop:
		return nil
	case KindQuit:
		d.session.Stop()
		return utils.ErrUserInitiatedExit
	case KindToggleReasoning:
		show, err := d.session.ToggleReasoning()
		if err != nil {
			return fmt.Errorf("failed to toggle reasoning: %w", err)
		}
		state := "hidden"
		if show {
			state = "shown"
		}
		ancli.PrintOK(fmt.Sprintf("reasoning is now %v\n", state))
		return nil
	case KindModel:
		if err := d.session.SetModel(cmd.Arg); err != nil {
			return fmt.Errorf("failed to set model: %w", err)
		}
		ancli.PrintOK(fmt.Sprintf("response model set to: '%v'\n", cmd.Arg))
		return nil
	case KindModels:
		d.printModels()
		return nil
	case KindClear:
		if err := d.session.Clear(); err != nil {
			return fmt.Errorf("failed to clear conversation: %w", err)
		}
		ancli.PrintOK("conversation cleared\n")
		return nil
	case KindCopy:
		return d.copy(cmd.Arg)
	case KindSave:
		p, err := Save(d.convDir, d.session.History())
		if err != nil {
			return fmt.Errorf("failed to save conversation: %w", err)
		}
		ancli.PrintOK(fmt.Sprintf("conversation saved to: '%v'\n", p))
		return nil
	case KindHelp:
		fmt.Fprintf(d.out, commandUsage, d.convDir)
		return nil
	}
	return d.session.Turn(ctx, cmd.Arg)
}

func (d *Dispatcher) printModels() {
	current := d.session.Config().ResponseModel
	fmt.Fprintln(d.out, "Known response models:")
	for _, m := range d.session.KnownModels() {
		marker := " "
		if m == current {
			marker = "*"
		}
		fmt.Fprintf(d.out, "  %v %v\n", marker, m)
	}
}
