// Package session owns the conversation history and session config, and runs
// one turn at a time through the reasoning and response stages.
package session

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/baalimago/rat/internal/inject"
	"github.com/baalimago/rat/internal/models"
	"github.com/google/uuid"
)

type State int

const (
	Idle State = iota
	ReasoningInFlight
	InjectingContext
	ResponseInFlight
	CommandInFlight
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case ReasoningInFlight:
		return "ReasoningInFlight"
	case InjectingContext:
		return "InjectingContext"
	case ResponseInFlight:
		return "ResponseInFlight"
	case CommandInFlight:
		return "CommandInFlight"
	case Stopped:
		return "Stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Options struct {
	// Out receives the rendered reasoning block and the streamed answer. Defaults
	// to os.Stdout.
	Out io.Writer
	// NoStream makes the response stage wait for the complete answer.
	NoStream bool
	// SystemPrompt, if set, is kept as the first message of the history.
	SystemPrompt string
	// Width of the rule delimiting the reasoning block.
	Width int
}

type Session struct {
	mu          sync.Mutex
	state       State
	history     models.Chat
	config      models.SessionConfig
	knownModels []string

	extractor models.ReasoningExtractor
	injector  models.ContextInjector
	generator models.ResponseGenerator

	out          io.Writer
	noStream     bool
	systemPrompt string
	width        int
}

// New session, starting in Idle with an empty history. It fails if the injector
// and generator are incompatible, or if conf.ResponseModel isn't known.
func New(
	extractor models.ReasoningExtractor,
	injector models.ContextInjector,
	generator models.ResponseGenerator,
	knownModels []string,
	conf models.SessionConfig,
	opts Options,
) (*Session, error) {
	if err := inject.CheckCapability(injector, generator); err != nil {
		return nil, err
	}
	if !slices.Contains(knownModels, conf.ResponseModel) {
		return nil, fmt.Errorf("%w: '%v', known models: %v", models.ErrModelNotFound, conf.ResponseModel, knownModels)
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	s := &Session{
		config:       conf,
		knownModels:  slices.Clone(knownModels),
		extractor:    extractor,
		injector:     injector,
		generator:    generator,
		out:          opts.Out,
		noStream:     opts.NoStream,
		systemPrompt: opts.SystemPrompt,
		width:        opts.Width,
	}
	s.history = s.newChat()
	return s, nil
}

func (s *Session) newChat() models.Chat {
	c := models.Chat{
		ID:      uuid.NewString(),
		Created: time.Now(),
	}
	if s.systemPrompt != "" {
		c.Messages = []models.Message{{Role: models.RoleSystem, Content: s.systemPrompt}}
	}
	return c
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns a copy of the durable history.
func (s *Session) History() models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Clone()
}

func (s *Session) Config() models.SessionConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

func (s *Session) KnownModels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.knownModels)
}

// begin moves from Idle to next, failing if another turn or command holds the session.
func (s *Session) begin(next State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case Idle:
		s.state = next
		return nil
	case Stopped:
		return models.ErrSessionStopped
	}
	return fmt.Errorf("%w: state: %v", models.ErrTurnInProgress, s.state)
}

func (s *Session) transition(next State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Stopped {
		s.state = next
	}
}
