// Package models contains the chat data types shared by folderchat packages.
package models

import (
	"fmt"
	"strings"
	"time"

	apierrors "github.com/diogo/folderchat/internal/errors"
)

// Role identifies who wrote a message. It changes how a message is styled,
// never how its content is formatted.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// AI providers reported by the backend in ai_provider / provider
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderUnknown   = "unknown"
)

// ParseRole converts a backend role/type value into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAssistant:
		return RoleAssistant, nil
	default:
		return "", apierrors.NewParseError(fmt.Sprintf("unknown role %q", s), "")
	}
}

// Label returns the display label for the role
func (r Role) Label() string {
	if r == RoleUser {
		return "You"
	}
	return "Assistant"
}

// Message represents a single chat turn in a folder conversation
type Message struct {
	ID        string    `json:"id,omitempty"`
	Role      Role      `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Provider  string    `json:"provider,omitempty"`
}

// IsUser reports whether the message was written by the user
func (m *Message) IsUser() bool {
	return m != nil && m.Role == RoleUser
}

// Transcript is the ordered chat history of one folder
type Transcript struct {
	FolderID string    `json:"folder_id,omitempty"`
	Messages []Message `json:"messages"`
}

// Len returns the number of messages
func (t *Transcript) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Messages)
}
