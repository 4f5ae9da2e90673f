package models

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat is the conversation history. Messages are only ever appended, and after
// an optional leading system message roles alternate user/assistant.
type Chat struct {
	ID       string    `json:"id"`
	Created  time.Time `json:"created,omitempty"`
	Messages []Message `json:"messages"`
}

// Clone returns a deep copy, so that callers may append without aliasing.
func (c Chat) Clone() Chat {
	c.Messages = slices.Clone(c.Messages)
	return c
}

// FirstSystemMessage returns the first encountered Message with role 'system'
func (c *Chat) FirstSystemMessage() (Message, error) {
	for _, msg := range c.Messages {
		if msg.Role == RoleSystem {
			return msg, nil
		}
	}
	return Message{}, errors.New("failed to find any system message")
}

func (c *Chat) LastOfRole(role string) (Message, int, error) {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		msg := c.Messages[i]
		if msg.Role == role {
			return msg, i, nil
		}
	}
	return Message{}, -1, fmt.Errorf("failed to find any %v message", role)
}

// Validate checks the role alternation invariant.
func (c *Chat) Validate() error {
	msgs := c.Messages
	if len(msgs) > 0 && msgs[0].Role == RoleSystem {
		msgs = msgs[1:]
	}
	want := RoleUser
	for i, m := range msgs {
		if m.Role != want {
			return fmt.Errorf("message %v has role '%v', expected '%v'", i, m.Role, want)
		}
		if want == RoleUser {
			want = RoleAssistant
		} else {
			want = RoleUser
		}
	}
	if want == RoleAssistant {
		return errors.New("history ends with an unanswered user message")
	}
	return nil
}

// CheckNoConsecutiveUsers returns an error if two user messages follow each other.
func CheckNoConsecutiveUsers(msgs []Message) error {
	for i := 1; i < len(msgs); i++ {
		if msgs[i].Role == RoleUser && msgs[i-1].Role == RoleUser {
			return fmt.Errorf("messages %v and %v are both from user", i-1, i)
		}
	}
	return nil
}
