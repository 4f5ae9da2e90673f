package session

import (
	"fmt"
	"slices"

	"github.com/baalimago/rat/internal/models"
)

func (s *Session) command(f func()) error {
	if err := s.begin(CommandInFlight); err != nil {
		return err
	}
	defer s.transition(Idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	f()
	return nil
}

// ToggleReasoning flips ShowReasoning and returns the new value.
func (s *Session) ToggleReasoning() (bool, error) {
	var show bool
	err := s.command(func() {
		s.config.ShowReasoning = !s.config.ShowReasoning
		show = s.config.ShowReasoning
	})
	return show, err
}

// SetModel selects the response model. A name outside the known set fails with
// models.ErrModelNotFound, leaving the config as is.
func (s *Session) SetModel(name string) error {
	var err error
	cmdErr := s.command(func() {
		if !slices.Contains(s.knownModels, name) {
			err = fmt.Errorf("%w: '%v', known models: %v", models.ErrModelNotFound, name, s.knownModels)
			return
		}
		s.config.ResponseModel = name
	})
	if cmdErr != nil {
		return cmdErr
	}
	return err
}

// Clear starts a new conversation. The system prompt is kept.
func (s *Session) Clear() error {
	return s.command(func() {
		s.history = s.newChat()
	})
}

// Stop is terminal. Any further turn or command fails with models.ErrSessionStopped.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Stopped
}
