package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/utils"
)

// Loop reads one command or query per line until quit, EOF or ctx is done.
type Loop struct {
	Dispatcher *Dispatcher
	In         io.Reader
	Out        io.Writer
	// Prompt is printed before each line is read. Empty when input isn't a terminal.
	Prompt string
}

type line struct {
	text string
	err  error
}

func readLines(in io.Reader) chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- line{text: scanner.Text()}
		}
		if err := scanner.Err(); err != nil {
			lines <- line{err: err}
		}
	}()
	return lines
}

// Run blocks until the session ends. Quit and EOF are clean exits and return nil.
// Failed turns and commands are reported and the loop carries on.
func (l *Loop) Run(ctx context.Context) error {
	lines := readLines(l.In)
	for {
		if l.Prompt != "" {
			fmt.Fprint(l.Out, l.Prompt)
		}
		var input line
		var open bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case input, open = <-lines:
		}
		if !open {
			l.Dispatcher.session.Stop()
			return nil
		}
		if input.err != nil {
			return fmt.Errorf("failed to read user input: %w", input.err)
		}
		err := l.Dispatcher.Dispatch(ctx, input.text)
		switch {
		case err == nil:
		case errors.Is(err, utils.ErrUserInitiatedExit):
			return nil
		case errors.Is(err, models.ErrSessionStopped):
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			ancli.PrintErr(fmt.Sprintf("%v\n", err))
		}
	}
}
